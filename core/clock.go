// Package core implements the stopwatch logic: the millisecond tick
// counter view, elapsed-time samplers, button debouncing, the
// stopwatch state machine, and the render scheduler. It contains no
// hardware access; targets register drivers for input and display and
// publish hardware time through SetNow.
package core

// Now returns the free-running millisecond tick counter. The counter
// wraps modulo 2^32; consumers must measure intervals with unsigned
// subtraction.
func Now() uint32 {
	return getTickMillis()
}

// SetNow publishes a new counter value. On hardware the target's time
// hook calls this once per main-loop iteration; tests drive it
// directly.
func SetNow(ms uint32) {
	setTickMillis(ms)
}
