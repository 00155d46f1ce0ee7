package core

// ElapsedSampler measures milliseconds elapsed since its baseline.
// Each cadence consumer owns its own instance; baselines are never
// shared.
type ElapsedSampler struct {
	baseline uint32
}

// NewElapsedSampler returns a sampler baselined at the current tick.
func NewElapsedSampler() *ElapsedSampler {
	return &ElapsedSampler{baseline: Now()}
}

// Sample returns milliseconds since the last Reset. The subtraction is
// unsigned, so a counter wrap between baseline and now still yields
// the correct small delta.
func (s *ElapsedSampler) Sample() uint32 {
	return Now() - s.baseline
}

// Reset moves the baseline to the current tick.
func (s *ElapsedSampler) Reset() {
	s.baseline = Now()
}
