package figures

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChristopherRabotin/otp"
	kitlog "github.com/go-kit/kit/log"
)

// Multi renders a figure with each sink in turn and returns the path from the first one.
type Multi []otp.Sink

// Render implements otp.Sink.
func (m Multi) Render(fig otp.Figure) (string, error) {
	if len(m) == 0 {
		return "", errors.New("figures: no sink configured")
	}
	var first string
	for i, sink := range m {
		path, err := sink.Render(fig)
		if err != nil {
			return first, err
		}
		if i == 0 {
			first = path
		}
	}
	return first, nil
}

// FromFormats returns the sink writing the listed formats ("png", "csv") into dir.
func FromFormats(dir string, formats []string) (otp.Sink, error) {
	var sinks Multi
	for _, format := range formats {
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "png":
			sinks = append(sinks, NewPNG(dir))
		case "csv":
			sinks = append(sinks, CSV{Dir: dir})
		default:
			return nil, fmt.Errorf("figures: unknown format '%s'", format)
		}
	}
	switch len(sinks) {
	case 0:
		return nil, errors.New("figures: no output format")
	case 1:
		return sinks[0], nil
	}
	return sinks, nil
}

// Logged logs every render of the wrapped sink.
type Logged struct {
	Sink    otp.Sink
	Logger  kitlog.Logger
	Verbose bool // Also log the statistics of each series
}

// NewLogged wraps the sink, tagging its logs with the "figures" subsystem.
func NewLogged(sink otp.Sink, logger kitlog.Logger, verbose bool) Logged {
	return Logged{sink, kitlog.With(logger, "subsys", "figures"), verbose}
}

// Render implements otp.Sink.
func (l Logged) Render(fig otp.Figure) (string, error) {
	path, err := l.Sink.Render(fig)
	if err != nil {
		l.Logger.Log("level", "error", "figure", fig.Name, "err", err)
		return path, err
	}
	if l.Verbose {
		for _, series := range fig.Series {
			sum := series.Summary()
			l.Logger.Log("level", "debug", "figure", fig.Name, "series", series.Label, "points", series.Len(), "min", sum.Min, "max", sum.Max, "mean", sum.Mean)
		}
	}
	l.Logger.Log("level", "info", "figure", fig.Name, "file", path)
	return path, nil
}
