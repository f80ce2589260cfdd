//go:build !linux
// +build !linux

package cmd

import (
	"fmt"
)

func measureInstructions(name string, f func()) {
	fmt.Printf("%s: hardware counters need linux perf events, running unmeasured\n", name)
	f()
}
