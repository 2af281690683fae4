package figures

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ChristopherRabotin/otp"
	"github.com/soniakeys/meeus/v3/julian"
)

// CSV writes each figure as <name>.csv in Dir, one row per point, to be plotted by an external tool.
type CSV struct {
	Dir string
	Now func() time.Time // Creation date of the header, defaults to time.Now

	create func(path string) (io.WriteCloser, error) // defaults to os.Create
}

// Render implements otp.Sink.
func (r CSV) Render(fig otp.Figure) (string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("figures: %w", err)
	}
	path := filepath.Join(r.Dir, fig.Name+".csv")
	create := r.create
	if create == nil {
		create = func(path string) (io.WriteCloser, error) { return os.Create(path) }
	}
	f, err := create(path)
	if err != nil {
		return "", fmt.Errorf("figures: %w", err)
	}
	if err := r.write(f, fig); err != nil {
		f.Close()
		return "", fmt.Errorf("figures: %w", err)
	}
	// The data may only hit the disk now.
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("figures: closing %s: %w", path, err)
	}
	return path, nil
}

func (r CSV) write(f io.Writer, fig otp.Figure) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	created := now().UTC()
	// Header
	if _, err := fmt.Fprintf(f, `# Creation date (UTC): %s
# Creation date (JD): %f
# %s
# x: %s
# y: %s
`, created, julian.TimeToJD(created), fig.Title, fig.XLabel, fig.YLabel); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for _, series := range fig.Series {
		for _, pt := range series.Points() {
			record := []string{series.Label, strconv.FormatFloat(pt[0], 'f', -1, 64), strconv.FormatFloat(pt[1], 'f', -1, 64)}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
