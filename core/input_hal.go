package core

// ButtonPin identifies a physical push-button input.
type ButtonPin uint8

const (
	PinPlayPause ButtonPin = iota
	PinReset

	// NumButtons is the number of physical buttons on the device.
	NumButtons
)

// InputDriver is the abstract digital-input interface that core code
// uses. Target-specific implementations read the actual pins.
type InputDriver interface {
	// ConfigureInputPullUp configures a button pin as an input with
	// pull-up resistor.
	ConfigureInputPullUp(pin ButtonPin) error

	// ReadPin returns the raw digital level (true = high).
	ReadPin(pin ButtonPin) bool
}

// Global singleton used by core code.
var inputDriver InputDriver

// SetInputDriver is called by target-specific code to register its
// driver.
func SetInputDriver(d InputDriver) {
	inputDriver = d
}

// MustInput returns the configured driver or panics if missing.
func MustInput() InputDriver {
	if inputDriver == nil {
		panic("input driver not configured")
	}
	return inputDriver
}
