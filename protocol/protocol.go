// Package protocol implements the stopclock telemetry link: compact
// binary status frames the firmware emits over USB CDC and the host
// monitor decodes. A frame is
//
//	[sync][payload length][payload][crc16 hi][crc16 lo]
//
// where the payload carries the elapsed time as a VLQ integer followed
// by a flags byte. The CRC covers the payload only; receivers
// resynchronize on the sync byte after noise or truncation.
package protocol

// Version identifies the telemetry protocol revision.
const Version = "0.1.0"

const (
	// SyncByte marks the start of a frame.
	SyncByte = 0x7E

	// FrameMax caps the payload length a receiver will accept. Bogus
	// length bytes beyond it are treated as noise.
	FrameMax = 16

	// MessageMax is the scratch output buffer size, enough for several
	// frames between flushes.
	MessageMax = 64
)

// Status flag bits.
const (
	FlagRunning = 1 << 0
)
