package core

// ButtonVisual is the on-screen representation of one physical
// button: its label and whether it is drawn in the held-down style.
type ButtonVisual struct {
	Label   string
	Pressed bool
}

// Renderer is the abstract display interface that core code uses.
// Implementations fully redraw the affected region on each call and
// are treated as infallible.
type Renderer interface {
	// DrawFrame redraws the stopwatch readout. The fields are whole
	// quotients of the elapsed time (see Stopwatch).
	DrawFrame(hours, minutes, seconds, milliseconds uint32, running bool)

	// DrawButtonLabel redraws one on-screen button box.
	DrawButtonLabel(pin ButtonPin, label string, pressed bool)
}

// Global singleton used by core code.
var renderer Renderer

// SetRenderer is called by target-specific code to register its
// display implementation.
func SetRenderer(r Renderer) {
	renderer = r
}

// MustRenderer returns the configured renderer or panics if missing.
func MustRenderer() Renderer {
	if renderer == nil {
		panic("renderer not configured")
	}
	return renderer
}
