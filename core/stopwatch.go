package core

// Stopwatch owns the accumulated elapsed time and the running flag.
// It starts Stopped at zero and is only ever mutated from the main
// loop.
type Stopwatch struct {
	accumulatedMs uint32
	running       bool
}

// Toggle flips between Stopped and Running. Nothing else changes the
// running flag.
func (s *Stopwatch) Toggle() {
	s.running = !s.running
}

// Running reports whether time is currently accumulating.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Clear zeroes the accumulated time. It applies even while Running.
func (s *Stopwatch) Clear() {
	s.accumulatedMs = 0
}

// Advance credits the sampler's delta while Running. While Stopped the
// sampler is rebaselined instead, so time spent Stopped is never
// credited by a later start.
func (s *Stopwatch) Advance(tick *ElapsedSampler) {
	if !s.running {
		tick.Reset()
		return
	}
	if delta := tick.Sample(); delta > 0 {
		s.accumulatedMs += delta
		tick.Reset()
	}
}

// Display fields are whole quotients of the accumulated time, not
// clock remainders; the renderer shows each field as a free-running
// total.

// Seconds returns total elapsed whole seconds.
func (s *Stopwatch) Seconds() uint32 {
	return s.accumulatedMs / 1000
}

// Minutes returns total elapsed whole minutes.
func (s *Stopwatch) Minutes() uint32 {
	return s.accumulatedMs / 60000
}

// Hours returns total elapsed whole hours.
func (s *Stopwatch) Hours() uint32 {
	return s.accumulatedMs / 3600000
}

// Milliseconds returns total elapsed milliseconds.
func (s *Stopwatch) Milliseconds() uint32 {
	return s.accumulatedMs
}

// Frame returns the values the display shows for the current state.
func (s *Stopwatch) Frame() Frame {
	return Frame{
		Hours:        s.Hours(),
		Minutes:      s.Minutes(),
		Seconds:      s.Seconds(),
		Milliseconds: s.Milliseconds(),
		Running:      s.running,
	}
}
