package protocol

// Status is one stopwatch telemetry report.
type Status struct {
	ElapsedMs uint32
	Running   bool
}

// EncodeStatus appends one status frame to out. The length byte is
// backpatched after the payload is written, since the VLQ width of the
// elapsed time varies.
func EncodeStatus(out OutputBuffer, st Status) {
	out.Output([]byte{SyncByte, 0})
	lenPos := out.CurPosition() - 1
	payloadStart := out.CurPosition()

	EncodeVLQUint(out, st.ElapsedMs)
	var flags byte
	if st.Running {
		flags |= FlagRunning
	}
	out.Output([]byte{flags})

	payload := out.DataSince(payloadStart)
	out.Update(lenPos, byte(len(payload)))
	crc := CRC16(payload)
	out.Output([]byte{byte(crc >> 8), byte(crc)})
}

// DecodeStatus parses a frame payload (the bytes between the length
// byte and the CRC).
func DecodeStatus(payload []byte) (Status, error) {
	ms, err := DecodeVLQUint(&payload)
	if err != nil {
		return Status{}, err
	}
	if len(payload) < 1 {
		return Status{}, ErrTruncated
	}
	flags := payload[0]
	return Status{ElapsedMs: ms, Running: flags&FlagRunning != 0}, nil
}

// Scanner extracts status frames from a raw byte stream. Noise,
// truncated frames, and CRC failures are skipped by resynchronizing on
// the next sync byte.
type Scanner struct {
	buf []byte
}

// Feed appends raw bytes read from the link.
func (s *Scanner) Feed(p []byte) {
	s.buf = append(s.buf, p...)
}

// Next returns the next valid status frame, or ok=false when no
// complete frame is buffered yet.
func (s *Scanner) Next() (st Status, ok bool) {
	for {
		// Drop noise before the next sync byte.
		start := 0
		for start < len(s.buf) && s.buf[start] != SyncByte {
			start++
		}
		s.buf = s.buf[start:]

		if len(s.buf) < 2 {
			return Status{}, false
		}
		n := int(s.buf[1])
		if n == 0 || n > FrameMax {
			// Bogus length: this sync byte was noise.
			s.buf = s.buf[1:]
			continue
		}
		total := 2 + n + 2
		if len(s.buf) < total {
			return Status{}, false
		}

		payload := s.buf[2 : 2+n]
		crc := uint16(s.buf[2+n])<<8 | uint16(s.buf[2+n+1])
		if CRC16(payload) != crc {
			s.buf = s.buf[1:]
			continue
		}

		st, err := DecodeStatus(payload)
		s.buf = s.buf[total:]
		if err != nil {
			continue
		}
		return st, true
	}
}
