package protocol

// OutputBuffer abstracts the destination frames are encoded into. The
// Update/DataSince pair lets the encoder backpatch the length byte
// once the payload size is known.
type OutputBuffer interface {
	// Output appends data to the buffer.
	Output(data []byte)

	// CurPosition returns the current write position.
	CurPosition() int

	// Update modifies a byte at a specific position.
	Update(pos int, val byte)

	// DataSince returns data from a specific position to current.
	DataSince(pos int) []byte
}

// ScratchOutput implements OutputBuffer on a fixed-size scratch
// buffer. The firmware reuses one instance per loop, so steady-state
// telemetry never allocates.
type ScratchOutput struct {
	buf [MessageMax]byte
	pos int
}

// NewScratchOutput creates an empty ScratchOutput.
func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

func (s *ScratchOutput) Output(data []byte) {
	n := copy(s.buf[s.pos:], data)
	s.pos += n
}

func (s *ScratchOutput) CurPosition() int {
	return s.pos
}

func (s *ScratchOutput) Update(pos int, val byte) {
	if pos < len(s.buf) {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos > s.pos {
		return nil
	}
	return s.buf[pos:s.pos]
}

// Result returns the accumulated output data.
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

// Reset discards the accumulated data.
func (s *ScratchOutput) Reset() {
	s.pos = 0
}
