//go:build !tinygo

package core

// Host builds (tests) drive the counter from a single goroutine.
var tickMillis uint32

func getTickMillis() uint32 {
	return tickMillis
}

func setTickMillis(ms uint32) {
	tickMillis = ms
}
