package config

import (
	"strings"
	"testing"

	"github.com/banshee-data/orbit.report/internal/fsutil"
	"github.com/banshee-data/orbit.report/internal/units"
)

func TestEmptyOrbitConfigDefaults(t *testing.T) {
	cfg := EmptyOrbitConfig()

	if cfg.GetDataPath() != "public/data.json" {
		t.Errorf("GetDataPath() = %s, want public/data.json", cfg.GetDataPath())
	}
	if cfg.GetPlanetKey() != "Planet" || cfg.GetSatelliteKey() != "Satellite" {
		t.Errorf("keys = %s/%s, want Planet/Satellite", cfg.GetPlanetKey(), cfg.GetSatelliteKey())
	}
	if cfg.GetPlaybackRate() != 1.0 {
		t.Errorf("GetPlaybackRate() = %f, want 1.0", cfg.GetPlaybackRate())
	}
	if cfg.GetTrajectoryLookAhead() != 10 {
		t.Errorf("GetTrajectoryLookAhead() = %d, want 10", cfg.GetTrajectoryLookAhead())
	}
	if cfg.GetVelocityScale() != units.SimStepToKMPS {
		t.Errorf("GetVelocityScale() = %f, want %f", cfg.GetVelocityScale(), units.SimStepToKMPS)
	}
	if cfg.GetDisplayUnits() != units.KMPS {
		t.Errorf("GetDisplayUnits() = %s, want kmps", cfg.GetDisplayUnits())
	}
	if cfg.GetDisplayPrecision() != 3 {
		t.Errorf("GetDisplayPrecision() = %d, want 3", cfg.GetDisplayPrecision())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty config should validate: %v", err)
	}
}

func TestDefaultOrbitConfigMatchesDefaultsFile(t *testing.T) {
	fromFile, err := LoadOrbitConfig(fsutil.OSFileSystem{}, "../../"+DefaultConfigPath)
	if err != nil {
		t.Fatalf("failed to load %s: %v", DefaultConfigPath, err)
	}
	def := DefaultOrbitConfig()

	if fromFile.GetDataPath() != def.GetDataPath() ||
		fromFile.GetPlanetKey() != def.GetPlanetKey() ||
		fromFile.GetSatelliteKey() != def.GetSatelliteKey() ||
		fromFile.GetPlaybackRate() != def.GetPlaybackRate() ||
		fromFile.GetTrajectoryLookAhead() != def.GetTrajectoryLookAhead() ||
		fromFile.GetVelocityScale() != def.GetVelocityScale() ||
		fromFile.GetDisplayUnits() != def.GetDisplayUnits() ||
		fromFile.GetDisplayPrecision() != def.GetDisplayPrecision() {
		t.Errorf("defaults file drifted from code defaults:\nfile: %+v\ncode: %+v", fromFile, def)
	}
}

func TestLoadOrbitConfig(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("cfg/partial.json", []byte(`{
  "satellite_key": "Moon",
  "playback_rate": 2.5,
  "display_units": "mps"
}`))

	cfg, err := LoadOrbitConfig(fsys, "cfg/partial.json")
	if err != nil {
		t.Fatalf("LoadOrbitConfig: %v", err)
	}
	if cfg.GetSatelliteKey() != "Moon" {
		t.Errorf("GetSatelliteKey() = %s, want Moon", cfg.GetSatelliteKey())
	}
	if cfg.GetPlaybackRate() != 2.5 {
		t.Errorf("GetPlaybackRate() = %f, want 2.5", cfg.GetPlaybackRate())
	}
	if cfg.GetDisplayUnits() != units.MPS {
		t.Errorf("GetDisplayUnits() = %s, want mps", cfg.GetDisplayUnits())
	}
	// Omitted fields keep defaults.
	if cfg.GetPlanetKey() != "Planet" || cfg.GetTrajectoryLookAhead() != 10 {
		t.Errorf("omitted fields lost defaults: %+v", cfg)
	}

	b := cfg.Binding()
	if b.PlanetKey != "Planet" || b.SatelliteKey != "Moon" {
		t.Errorf("Binding() = %+v", b)
	}
}

func TestLoadOrbitConfig_Errors(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("bad.json", []byte(`{"playback_rate": `))
	fsys.WriteFile("invalid.json", []byte(`{"display_units": "parsecs"}`))
	fsys.WriteFile("config.yaml", []byte(`playback_rate: 1`))
	fsys.WriteFile("huge.json", []byte(`{"data_path": "`+strings.Repeat("a", maxConfigSize)+`"}`))

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"wrong extension", "config.yaml", ".json extension"},
		{"missing file", "missing.json", "failed to load"},
		{"bad json", "bad.json", "failed to parse"},
		{"invalid value", "invalid.json", "display_units"},
		{"too large", "huge.json", "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOrbitConfig(fsys, tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OrbitConfig
		wantErr bool
	}{
		{"empty", OrbitConfig{}, false},
		{"defaults", *DefaultOrbitConfig(), false},
		{"empty planet key", OrbitConfig{PlanetKey: ptrString("")}, true},
		{"empty satellite key", OrbitConfig{SatelliteKey: ptrString("")}, true},
		{"same keys", OrbitConfig{SatelliteKey: ptrString("Planet")}, true},
		{"zero rate", OrbitConfig{PlaybackRate: ptrFloat64(0)}, true},
		{"negative rate", OrbitConfig{PlaybackRate: ptrFloat64(-1)}, true},
		{"zero look-ahead", OrbitConfig{TrajectoryLookAhead: ptrInt(0)}, true},
		{"zero scale", OrbitConfig{VelocityScale: ptrFloat64(0)}, true},
		{"bad units", OrbitConfig{DisplayUnits: ptrString("knots")}, true},
		{"mph units", OrbitConfig{DisplayUnits: ptrString(units.MPH)}, false},
		{"negative precision", OrbitConfig{DisplayPrecision: ptrInt(-1)}, true},
		{"excess precision", OrbitConfig{DisplayPrecision: ptrInt(11)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()

	cfg, err := LoadOrDefault(fs, "")
	if err != nil {
		t.Fatalf("LoadOrDefault without a defaults file: %v", err)
	}
	if cfg.GetDataPath() != "public/data.json" {
		t.Errorf("GetDataPath() = %s, want public/data.json", cfg.GetDataPath())
	}

	fs.WriteFile(DefaultConfigPath, []byte(`{"playback_rate": 4}`))
	cfg, err = LoadOrDefault(fs, "")
	if err != nil {
		t.Fatalf("LoadOrDefault with a defaults file: %v", err)
	}
	if cfg.GetPlaybackRate() != 4 {
		t.Errorf("GetPlaybackRate() = %f, want 4", cfg.GetPlaybackRate())
	}

	if _, err := LoadOrDefault(fs, "missing.json"); err == nil {
		t.Error("expected error for an explicit missing path")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultOrbitConfig()
	if err := cfg.ApplyOverrides("fixtures/orbit.json", "mph"); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if cfg.GetDataPath() != "fixtures/orbit.json" || cfg.GetDisplayUnits() != "mph" {
		t.Errorf("overrides not applied: %s %s", cfg.GetDataPath(), cfg.GetDisplayUnits())
	}

	if err := cfg.ApplyOverrides("", ""); err != nil {
		t.Fatalf("empty ApplyOverrides: %v", err)
	}
	if cfg.GetDataPath() != "fixtures/orbit.json" {
		t.Errorf("empty override replaced data path: %s", cfg.GetDataPath())
	}

	if err := cfg.ApplyOverrides("", "furlongs"); err == nil {
		t.Error("expected error for invalid units")
	}
}
