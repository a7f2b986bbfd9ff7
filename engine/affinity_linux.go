package engine

import (
	"golang.org/x/sys/unix"
)

// setAffinity pins the calling OS thread to a single processor. The caller must have locked the
// goroutine to its thread.
func setAffinity(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
