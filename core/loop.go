package core

// Button labels shown on screen.
const (
	labelPlay  = "PLAY"
	labelPause = "PAUSE"
	labelReset = "RESET"
)

// Loop is the cooperative main-loop context. It owns every piece of
// mutable state: the two buttons and their on-screen visuals, the
// stopwatch, the sampler baselines, and the render scheduler. The only
// state shared with the hardware time hook is the tick counter behind
// Now, which the loop never writes.
type Loop struct {
	playPause *Button
	reset     *Button
	visuals   [NumButtons]ButtonVisual

	stopwatch Stopwatch

	buttonTick    *ElapsedSampler
	stopwatchTick *ElapsedSampler

	scheduler *RenderScheduler
}

// NewLoop wires a loop against the registered input driver and
// renderer. Buttons start released and the stopwatch starts Stopped
// at zero.
func NewLoop() (*Loop, error) {
	playPause, err := NewButton(PinPlayPause)
	if err != nil {
		return nil, err
	}
	reset, err := NewButton(PinReset)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		playPause:     playPause,
		reset:         reset,
		buttonTick:    NewElapsedSampler(),
		stopwatchTick: NewElapsedSampler(),
		scheduler:     NewRenderScheduler(MustRenderer()),
	}
	l.visuals[PinPlayPause] = ButtonVisual{Label: labelPlay}
	l.visuals[PinReset] = ButtonVisual{Label: labelReset}
	return l, nil
}

// RunOnce performs one loop iteration: poll buttons on their cadence,
// drain edge events, advance the stopwatch, then evaluate the render
// decision. The ordering means a press is reflected in the same
// iteration's accumulation and redraw. It reports whether a frame was
// drawn.
func (l *Loop) RunOnce() bool {
	if l.buttonTick.Sample() >= ButtonTickMs {
		l.playPause.Tick()
		l.reset.Tick()
		l.buttonTick.Reset()
	}

	if l.playPause.WasPressed() {
		l.visuals[PinPlayPause].Pressed = true
		l.stopwatch.Toggle()
		if l.stopwatch.Running() {
			// Discard the delta that accrued while Stopped so the
			// stopped period is never credited.
			l.stopwatchTick.Reset()
			l.visuals[PinPlayPause].Label = labelPause
		} else {
			l.visuals[PinPlayPause].Label = labelPlay
		}
	}
	if l.playPause.WasReleased() {
		l.visuals[PinPlayPause].Pressed = false
	}

	if l.reset.WasPressed() {
		l.visuals[PinReset].Pressed = true
		l.stopwatch.Clear()
	}
	if l.reset.WasReleased() {
		l.visuals[PinReset].Pressed = false
	}

	l.stopwatch.Advance(l.stopwatchTick)

	return l.scheduler.Update(l.stopwatch.Frame(), l.visuals[:])
}

// Stopwatch exposes the controller for status reporting.
func (l *Loop) Stopwatch() *Stopwatch {
	return &l.stopwatch
}
