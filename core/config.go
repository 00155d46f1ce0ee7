package core

// Timing configuration. All values are milliseconds of wall time as
// measured by the tick counter.
const (
	// ButtonTickMs is the sampling cadence for button debouncing.
	ButtonTickMs = 20

	// DebounceMs is the minimum time a raw level must hold at a new
	// value before a press or release is committed.
	DebounceMs = 30

	// DisplayRefreshMs bounds how long the display may go without a
	// redraw even when nothing visible changed.
	DisplayRefreshMs = 50
)
