//go:build linux
// +build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// measureInstructions runs f under the hardware retired-instruction counter.
// Needs perf_event_paranoid to allow counting; otherwise f runs unmeasured.
func measureInstructions(name string, f func()) {
	pv, err := perf.CPUInstructions(f)
	if err != nil {
		fmt.Printf("%s: perf counters unavailable (%s), running unmeasured\n", name, err.Error())
		f()
		return
	}
	fmt.Printf("%s: %d retired instructions (%d ns enabled, %d ns running)\n",
		name, pv.Value, pv.TimeEnabled, pv.TimeRunning)
}
