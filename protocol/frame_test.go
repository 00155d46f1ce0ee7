package protocol

import "testing"

func encodeFrame(st Status) []byte {
	out := NewScratchOutput()
	EncodeStatus(out, st)
	frame := make([]byte, len(out.Result()))
	copy(frame, out.Result())
	return frame
}

func TestStatusRoundTrip(t *testing.T) {
	testCases := []Status{
		{ElapsedMs: 0, Running: false},
		{ElapsedMs: 1, Running: true},
		{ElapsedMs: 30, Running: true},
		{ElapsedMs: 3725004, Running: false},
		{ElapsedMs: ^uint32(0), Running: true},
	}

	for _, expected := range testCases {
		var s Scanner
		s.Feed(encodeFrame(expected))

		got, ok := s.Next()
		if !ok {
			t.Errorf("no frame decoded for %+v", expected)
			continue
		}
		if got != expected {
			t.Errorf("round trip: got %+v, want %+v", got, expected)
		}
		if _, ok := s.Next(); ok {
			t.Errorf("spurious extra frame after %+v", expected)
		}
	}
}

func TestScannerMultipleFramesInOneFeed(t *testing.T) {
	var s Scanner
	want := []Status{
		{ElapsedMs: 10, Running: true},
		{ElapsedMs: 20, Running: true},
		{ElapsedMs: 30, Running: false},
	}
	for _, st := range want {
		s.Feed(encodeFrame(st))
	}

	for i, expected := range want {
		got, ok := s.Next()
		if !ok {
			t.Fatalf("frame %d missing", i)
		}
		if got != expected {
			t.Errorf("frame %d: got %+v, want %+v", i, got, expected)
		}
	}
}

func TestScannerByteAtATime(t *testing.T) {
	frame := encodeFrame(Status{ElapsedMs: 123456, Running: true})

	var s Scanner
	for i, b := range frame {
		s.Feed([]byte{b})
		st, ok := s.Next()
		if i < len(frame)-1 {
			if ok {
				t.Fatalf("frame decoded after only %d bytes", i+1)
			}
			continue
		}
		if !ok {
			t.Fatal("no frame after feeding all bytes")
		}
		if st.ElapsedMs != 123456 || !st.Running {
			t.Errorf("decoded %+v", st)
		}
	}
}

func TestScannerSkipsNoiseAndBadCRC(t *testing.T) {
	good := encodeFrame(Status{ElapsedMs: 42, Running: true})

	corrupted := encodeFrame(Status{ElapsedMs: 7, Running: false})
	corrupted[2] ^= 0xFF // flip a payload byte, CRC no longer matches

	var s Scanner
	s.Feed([]byte{0x00, 0x13, 0x37}) // leading noise
	s.Feed(corrupted)
	s.Feed(good)

	st, ok := s.Next()
	if !ok {
		t.Fatal("no frame recovered after noise and corruption")
	}
	if st.ElapsedMs != 42 || !st.Running {
		t.Errorf("recovered wrong frame %+v", st)
	}
}

func TestScannerResyncsOnEmbeddedSyncByte(t *testing.T) {
	// A status whose payload legitimately contains the sync byte value
	// must still frame correctly.
	st := Status{ElapsedMs: uint32(SyncByte), Running: false}
	var s Scanner
	s.Feed(encodeFrame(st))

	got, ok := s.Next()
	if !ok {
		t.Fatal("no frame decoded")
	}
	if got != st {
		t.Errorf("got %+v, want %+v", got, st)
	}
}
