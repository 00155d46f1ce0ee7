//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"stopclock/core"
)

// RP2040/RP2350 timer peripheral: a 64-bit free-running microsecond
// counter at 1MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareMicros reads the full 64-bit microsecond counter. The high
// word is read on both sides of the low word to detect a rollover
// between the two halves.
func hardwareMicros() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
		// Rollover happened mid-read, retry.
	}
}

// updateSystemTime publishes hardware time to the core millisecond
// clock. Called once per main-loop iteration.
func updateSystemTime() {
	core.SetNow(uint32(hardwareMicros() / 1000))
}
