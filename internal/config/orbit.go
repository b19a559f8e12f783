package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/orbit.report/internal/fsutil"
	"github.com/banshee-data/orbit.report/internal/snapshot"
	"github.com/banshee-data/orbit.report/internal/units"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/orbit.defaults.json"

// maxConfigSize caps config files at 1MB.
const maxConfigSize = 1 * 1024 * 1024

// OrbitConfig holds the playback and display settings. Every field is
// optional; the Get* methods supply defaults for anything left out, so
// partial files are safe.
type OrbitConfig struct {
	// Input binding
	DataPath     *string `json:"data_path,omitempty"`
	PlanetKey    *string `json:"planet_key,omitempty"`
	SatelliteKey *string `json:"satellite_key,omitempty"`

	// Playback
	PlaybackRate        *float64 `json:"playback_rate,omitempty"` // frames per second
	TrajectoryLookAhead *int     `json:"trajectory_look_ahead,omitempty"`

	// Analytics and display
	VelocityScale    *float64 `json:"velocity_scale,omitempty"` // sim units per step -> km/s
	DisplayUnits     *string  `json:"display_units,omitempty"`
	DisplayPrecision *int     `json:"display_precision,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyOrbitConfig returns an OrbitConfig with all fields unset.
func EmptyOrbitConfig() *OrbitConfig {
	return &OrbitConfig{}
}

// DefaultOrbitConfig returns a config with every field set to its default.
func DefaultOrbitConfig() *OrbitConfig {
	c := EmptyOrbitConfig()
	return &OrbitConfig{
		DataPath:            ptrString(c.GetDataPath()),
		PlanetKey:           ptrString(c.GetPlanetKey()),
		SatelliteKey:        ptrString(c.GetSatelliteKey()),
		PlaybackRate:        ptrFloat64(c.GetPlaybackRate()),
		TrajectoryLookAhead: ptrInt(c.GetTrajectoryLookAhead()),
		VelocityScale:       ptrFloat64(c.GetVelocityScale()),
		DisplayUnits:        ptrString(c.GetDisplayUnits()),
		DisplayPrecision:    ptrInt(c.GetDisplayPrecision()),
	}
}

// LoadOrbitConfig loads an OrbitConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadOrbitConfig(fsys fsutil.FileSystem, path string) (*OrbitConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := fsutil.ReadFileLimited(fsys, cleanPath, maxConfigSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := EmptyOrbitConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *OrbitConfig) Validate() error {
	if c.PlanetKey != nil && *c.PlanetKey == "" {
		return fmt.Errorf("planet_key must not be empty")
	}
	if c.SatelliteKey != nil && *c.SatelliteKey == "" {
		return fmt.Errorf("satellite_key must not be empty")
	}
	if c.GetPlanetKey() == c.GetSatelliteKey() {
		return fmt.Errorf("planet_key and satellite_key must differ, both are %q", c.GetPlanetKey())
	}

	if c.PlaybackRate != nil && *c.PlaybackRate <= 0 {
		return fmt.Errorf("playback_rate must be positive, got %f", *c.PlaybackRate)
	}
	if c.TrajectoryLookAhead != nil && *c.TrajectoryLookAhead < 1 {
		return fmt.Errorf("trajectory_look_ahead must be at least 1, got %d", *c.TrajectoryLookAhead)
	}
	if c.VelocityScale != nil && *c.VelocityScale <= 0 {
		return fmt.Errorf("velocity_scale must be positive, got %f", *c.VelocityScale)
	}
	if c.DisplayUnits != nil && !units.IsValid(*c.DisplayUnits) {
		return fmt.Errorf("display_units must be one of %s, got %q", units.GetValidUnitsString(), *c.DisplayUnits)
	}
	if c.DisplayPrecision != nil && (*c.DisplayPrecision < 0 || *c.DisplayPrecision > 10) {
		return fmt.Errorf("display_precision must be between 0 and 10, got %d", *c.DisplayPrecision)
	}

	return nil
}

// Binding returns the agent key binding for snapshot ingestion.
func (c *OrbitConfig) Binding() snapshot.Binding {
	return snapshot.Binding{
		PlanetKey:    c.GetPlanetKey(),
		SatelliteKey: c.GetSatelliteKey(),
	}
}

// GetDataPath returns the data_path value or the default.
func (c *OrbitConfig) GetDataPath() string {
	if c.DataPath == nil || *c.DataPath == "" {
		return "public/data.json"
	}
	return *c.DataPath
}

// GetPlanetKey returns the planet_key value or the default.
func (c *OrbitConfig) GetPlanetKey() string {
	if c.PlanetKey == nil {
		return string(snapshot.Planet)
	}
	return *c.PlanetKey
}

// GetSatelliteKey returns the satellite_key value or the default.
func (c *OrbitConfig) GetSatelliteKey() string {
	if c.SatelliteKey == nil {
		return string(snapshot.Satellite)
	}
	return *c.SatelliteKey
}

// GetPlaybackRate returns the playback_rate value or the default.
func (c *OrbitConfig) GetPlaybackRate() float64 {
	if c.PlaybackRate == nil {
		return 1.0
	}
	return *c.PlaybackRate
}

// GetTrajectoryLookAhead returns the trajectory_look_ahead value or the default.
func (c *OrbitConfig) GetTrajectoryLookAhead() int {
	if c.TrajectoryLookAhead == nil {
		return 10
	}
	return *c.TrajectoryLookAhead
}

// GetVelocityScale returns the velocity_scale value or the default.
func (c *OrbitConfig) GetVelocityScale() float64 {
	if c.VelocityScale == nil {
		return units.SimStepToKMPS
	}
	return *c.VelocityScale
}

// GetDisplayUnits returns the display_units value or the default.
func (c *OrbitConfig) GetDisplayUnits() string {
	if c.DisplayUnits == nil {
		return units.KMPS
	}
	return *c.DisplayUnits
}

// GetDisplayPrecision returns the display_precision value or the default.
func (c *OrbitConfig) GetDisplayPrecision() int {
	if c.DisplayPrecision == nil {
		return 3
	}
	return *c.DisplayPrecision
}

// LoadOrDefault loads path, or DefaultConfigPath when path is empty. A
// missing default file yields DefaultOrbitConfig; an explicit path must exist.
func LoadOrDefault(fsys fsutil.FileSystem, path string) (*OrbitConfig, error) {
	if path == "" {
		if !fsys.Exists(DefaultConfigPath) {
			return DefaultOrbitConfig(), nil
		}
		path = DefaultConfigPath
	}
	return LoadOrbitConfig(fsys, path)
}

// ApplyOverrides sets the command-line overrides that are non-empty and
// revalidates.
func (c *OrbitConfig) ApplyOverrides(dataPath, displayUnits string) error {
	if dataPath != "" {
		c.DataPath = ptrString(dataPath)
	}
	if displayUnits != "" {
		c.DisplayUnits = ptrString(displayUnits)
	}
	return c.Validate()
}
