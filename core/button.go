package core

// Button debounces one physical push-button. The switches short their
// pin to ground, so the raw level is high when idle and low when held
// down.
type Button struct {
	pin ButtonPin

	stableLevel bool   // debounced level, true = high
	candidate   bool   // raw level currently diverging from stableLevel
	lastChange  uint32 // tick when the divergence was first seen

	pendingPress   bool
	pendingRelease bool
}

// NewButton configures the pin and returns a button in the released,
// stable state.
func NewButton(pin ButtonPin) (*Button, error) {
	if err := MustInput().ConfigureInputPullUp(pin); err != nil {
		return nil, err
	}
	return &Button{pin: pin, stableLevel: true}, nil
}

// Tick samples the raw level once. Call it on the button cadence
// (every ButtonTickMs). A divergence from the stable level that holds
// for DebounceMs commits the new level and raises exactly one edge
// event; a divergence that reverts sooner is discarded as bounce. A
// level oscillating faster than the window therefore produces no
// events until it settles.
func (b *Button) Tick() {
	raw := MustInput().ReadPin(b.pin)
	if raw == b.stableLevel {
		b.candidate = false
		return
	}
	if !b.candidate {
		b.candidate = true
		b.lastChange = Now()
		return
	}
	if Now()-b.lastChange < DebounceMs {
		return
	}
	b.stableLevel = raw
	b.candidate = false
	if b.Pressed() {
		b.pendingPress = true
	} else {
		b.pendingRelease = true
	}
}

// Pressed reports the debounced state. Low level means pressed.
func (b *Button) Pressed() bool {
	return !b.stableLevel
}

// WasPressed reports and clears the pending press event. Each
// physical press is reported at most once.
func (b *Button) WasPressed() bool {
	pressed := b.pendingPress
	b.pendingPress = false
	return pressed
}

// WasReleased reports and clears the pending release event.
func (b *Button) WasReleased() bool {
	released := b.pendingRelease
	b.pendingRelease = false
	return released
}
