package core

// Frame is the set of values the display shows.
type Frame struct {
	Hours        uint32
	Minutes      uint32
	Seconds      uint32
	Milliseconds uint32
	Running      bool
}

// RenderScheduler decides once per loop iteration whether the screen
// needs a redraw. It keeps a snapshot of the last-rendered frame
// (detection state only, never authoritative) and a refresh-cadence
// sampler that bounds how stale an unchanged screen may get.
type RenderScheduler struct {
	r       Renderer
	last    Frame
	refresh *ElapsedSampler
}

// NewRenderScheduler returns a scheduler whose first Update always
// draws: the snapshot starts at sentinel values no real frame can
// match.
func NewRenderScheduler(r Renderer) *RenderScheduler {
	return &RenderScheduler{
		r: r,
		last: Frame{
			Hours:        ^uint32(0),
			Minutes:      ^uint32(0),
			Seconds:      ^uint32(0),
			Milliseconds: ^uint32(0),
			Running:      true,
		},
		refresh: NewElapsedSampler(),
	}
}

// Update redraws when any frame field changed since the last render or
// the refresh cadence elapsed, and reports whether it drew. On redraw
// the whole visible state goes out: the readout plus every button box,
// in pin order.
func (rs *RenderScheduler) Update(f Frame, buttons []ButtonVisual) bool {
	if f == rs.last && rs.refresh.Sample() < DisplayRefreshMs {
		return false
	}
	rs.r.DrawFrame(f.Hours, f.Minutes, f.Seconds, f.Milliseconds, f.Running)
	for i := range buttons {
		rs.r.DrawButtonLabel(ButtonPin(i), buttons[i].Label, buttons[i].Pressed)
	}
	rs.last = f
	rs.refresh.Reset()
	return true
}
