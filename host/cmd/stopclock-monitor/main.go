// Command stopclock-monitor tails the stopwatch telemetry stream from
// a connected device and prints one line per received frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"stopclock/host/serial"
	"stopclock/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Print raw frame values")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("stopclock-monitor: listening on %s (protocol %s)\n", *device, protocol.Version)

	var scanner protocol.Scanner
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "error: read: %v\n", err)
			os.Exit(1)
		}
		if n == 0 {
			// Read timeout, keep polling.
			continue
		}

		scanner.Feed(buf[:n])
		for {
			st, ok := scanner.Next()
			if !ok {
				break
			}
			printStatus(st)
		}
	}
}

func printStatus(st protocol.Status) {
	state := "STOPPED"
	if st.Running {
		state = "RUNNING"
	}

	ms := st.ElapsedMs
	fmt.Printf("%02d:%02d:%02d.%03d  %s\n",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000, state)

	if *verbose {
		fmt.Printf("  raw: elapsed=%dms running=%v\n", st.ElapsedMs, st.Running)
	}
}
