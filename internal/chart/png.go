package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/orbit.report/internal/snapshot"
)

var (
	planetColor    = color.RGBA{R: 0x94, G: 0xd2, B: 0xbd, A: 255}
	satelliteColor = color.RGBA{R: 0xca, G: 0xf0, B: 0xf8, A: 255}
	gridColor      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 60}
)

// WritePNG draws the planet and satellite paths as lines and writes a
// size x size inch PNG to w.
func WritePNG(w io.Writer, s *snapshot.Series, size vg.Length) error {
	if s.Empty() {
		return fmt.Errorf("no frames to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Orbit (%d frames)", s.Len())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	tracks := []struct {
		agent snapshot.AgentID
		color color.Color
	}{
		{snapshot.Planet, planetColor},
		{snapshot.Satellite, satelliteColor},
	}
	for _, tr := range tracks {
		line, err := plotter.NewLine(toXYs(s.Track(tr.agent)))
		if err != nil {
			return fmt.Errorf("%s line: %w", tr.agent, err)
		}
		line.Color = tr.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(string(tr.agent), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func toXYs(ps []snapshot.Position) plotter.XYs {
	xys := make(plotter.XYs, len(ps))
	for i, pos := range ps {
		xys[i].X = pos.X
		xys[i].Y = pos.Y
	}
	return xys
}
