// Command orbit-stats prints the eccentricity and velocity statistics of a
// snapshot file and optionally plots both bodies' paths to a PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/orbit.report/internal/analytics"
	"github.com/banshee-data/orbit.report/internal/chart"
	"github.com/banshee-data/orbit.report/internal/config"
	"github.com/banshee-data/orbit.report/internal/fsutil"
	"github.com/banshee-data/orbit.report/internal/snapshot"
	"github.com/banshee-data/orbit.report/internal/units"
)

var (
	dataPath   = flag.String("data", "", "Snapshot JSON file (overrides data_path)")
	configPath = flag.String("config", "", "Orbit config JSON (default "+config.DefaultConfigPath+" if present)")
	unitsFlag  = flag.String("units", "", "Velocity display units: "+units.GetValidUnitsString())
	pngPath    = flag.String("png", "", "Write an orbit plot to this PNG file")
)

func main() {
	flag.Parse()

	fsys := fsutil.OSFileSystem{}
	cfg, err := config.LoadOrDefault(fsys, *configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.ApplyOverrides(*dataPath, *unitsFlag); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	series, err := snapshot.Load(fsys, cfg.GetDataPath(), cfg.Binding())
	if err != nil {
		log.Fatalf("failed to load snapshot data: %v", err)
	}

	sum := analytics.Summarize(series, cfg.GetVelocityScale())
	printSummary(os.Stdout, sum, cfg.GetDisplayUnits(), cfg.GetDisplayPrecision())

	if *pngPath != "" {
		if err := writePlot(fsys, *pngPath, series); err != nil {
			log.Fatalf("failed to write plot: %v", err)
		}
		log.Printf("wrote orbit plot to %s", *pngPath)
	}
}

func printSummary(w io.Writer, sum analytics.Summary, unit string, precision int) {
	fmt.Fprintf(w, "Frames: %d\n", sum.Frames)
	fmt.Fprintf(w, "Orbital Eccentricity: %s\n", units.Format(sum.Eccentricity, precision))
	if !sum.VelocityOK {
		fmt.Fprintln(w, "Velocity: insufficient data")
		return
	}
	label := units.Label(unit)
	for _, row := range []struct {
		name string
		kmps float64
	}{
		{"Avg Velocity", sum.Velocity.Average},
		{"Max Velocity", sum.Velocity.Max},
		{"Min Velocity", sum.Velocity.Min},
	} {
		fmt.Fprintf(w, "%s: %s %s\n", row.name, units.Format(units.ConvertSpeed(row.kmps, unit), precision), label)
	}
	if sum.Velocity.Skipped > 0 {
		fmt.Fprintf(w, "Skipped non-finite steps: %d\n", sum.Velocity.Skipped)
	}
}

func writePlot(fsys fsutil.FileSystem, path string, series *snapshot.Series) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if err := chart.WritePNG(f, series, 8*vg.Inch); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
