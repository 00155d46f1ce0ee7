//go:build tinygo

package core

import "sync/atomic"

// The time hook may run concurrently with goroutines that read the
// counter, so the tinygo build uses atomic access to rule out torn
// reads.
var tickMillis uint32

func getTickMillis() uint32 {
	return atomic.LoadUint32(&tickMillis)
}

func setTickMillis(ms uint32) {
	atomic.StoreUint32(&tickMillis, ms)
}
