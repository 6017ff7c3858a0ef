// Package searchtime is a small duration-logging utility named out of
// core scope in spec §1. comet itself never logs (it's a library); this
// mirrors the defer-based timer idiom used by driver code around a
// library call, writing through the standard log package since nothing
// else in the pack's dependency surface is a plausible logging import
// for a library that otherwise carries none.
package searchtime

import (
	"log"
	"time"
)

// Track starts a timer labeled label and returns a function that logs
// the elapsed duration when called. Typical use:
//
//	defer searchtime.Track("find_top")()
func Track(label string) func() {
	start := time.Now()
	return func() {
		log.Printf("%s took %s", label, time.Since(start))
	}
}
