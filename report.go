package otp

// Sink renders a figure somewhere (an image, a data file...) and returns where it went.
type Sink interface {
	Render(fig Figure) (string, error)
}

// RenderAll sends each figure to the sink, in order, and stops at the first failure.
// The paths of the figures rendered so far are returned in all cases.
func RenderAll(sink Sink, figs ...Figure) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for _, fig := range figs {
		path, err := sink.Render(fig)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
