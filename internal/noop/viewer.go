package noop

import "context"

// Viewer does not open anything, and is used when
// opening the image is disabled.
type Viewer struct {
	name string
}

func New(name string) *Viewer {
	return &Viewer{
		name: name,
	}
}

func (v *Viewer) String() string {
	return v.name + " (no-op)"
}

func (v *Viewer) Open(_ context.Context, _ string) (err error) {
	return nil
}
