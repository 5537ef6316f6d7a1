// Command pedalcanvas edits knob placement on a pedal panel. It can open an
// interactive window, replay recorded pointer scripts headless, and print the
// hit regions of a layout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
