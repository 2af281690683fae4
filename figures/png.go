package figures

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChristopherRabotin/otp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// PNG renders figures as line charts in Dir.
type PNG struct {
	Dir           string
	Width, Height vg.Length // Default to 6x4 inches
}

// NewPNG returns a PNG renderer writing into dir.
func NewPNG(dir string) PNG {
	return PNG{Dir: dir, Width: defaultWidth, Height: defaultHeight}
}

// Render implements otp.Sink.
func (r PNG) Render(fig otp.Figure) (string, error) {
	if len(fig.Series) == 0 {
		return "", errors.New("figures: nothing to plot in " + fig.Name)
	}
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Vertical.Color = plotutil.Color(7)
	grid.Horizontal.Color = plotutil.Color(7)
	p.Add(grid)

	for i, series := range fig.Series {
		if series.Len() == 0 {
			return "", fmt.Errorf("figures: series %q of %s is empty", series.Label, fig.Name)
		}
		xys := make(plotter.XYs, series.Len())
		for j := range xys {
			xys[j].X = series.X[j]
			xys[j].Y = series.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", fmt.Errorf("figures: series %q of %s: %w", series.Label, fig.Name, err)
		}
		line.Width = vg.Points(2)
		line.Color = plotutil.Color(i)
		p.Add(line)
		if len(fig.Series) > 1 {
			p.Legend.Add(series.Label, line)
		}
	}
	p.Legend.Top = true

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("figures: %w", err)
	}
	w, h := r.Width, r.Height
	if w == 0 || h == 0 {
		w, h = defaultWidth, defaultHeight
	}
	path := filepath.Join(r.Dir, fig.Name+".png")
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("figures: saving %s: %w", path, err)
	}
	return path, nil
}
