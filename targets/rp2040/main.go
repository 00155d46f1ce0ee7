//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"stopclock/core"
	"stopclock/protocol"
)

// Reused across iterations so steady-state telemetry never allocates.
var telemetry = protocol.NewScratchOutput()

func main() {
	// Clear any watchdog state left over from a previous reset.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	core.SetInputDriver(pinInputDriver{})

	display, err := newDisplay()
	if err != nil {
		hang("display init failed", err)
	}
	core.SetRenderer(display)

	updateSystemTime()

	loop, err := core.NewLoop()
	if err != nil {
		hang("loop init failed", err)
	}

	for {
		updateSystemTime()

		if loop.RunOnce() {
			emitStatus(loop.Stopwatch())
		}

		// Yield to other goroutines.
		time.Sleep(100 * time.Microsecond)
	}
}

// emitStatus pushes one telemetry frame to the USB CDC link. Write
// failures are dropped; the loop never blocks on the host.
func emitStatus(sw *core.Stopwatch) {
	telemetry.Reset()
	protocol.EncodeStatus(telemetry, protocol.Status{
		ElapsedMs: sw.Milliseconds(),
		Running:   sw.Running(),
	})
	machine.Serial.Write(telemetry.Result())
}

// hang reports a fatal init error forever. Initialization is one-shot
// and pre-loop; there is no recovery path.
func hang(msg string, err error) {
	for {
		println(msg+":", err.Error())
		time.Sleep(time.Second)
	}
}
