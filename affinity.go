//go:build linux

package jobqueue

import (
	"golang.org/x/sys/unix"
)

// PinToCPU restricts the calling thread to a single CPU core. Callers
// must hold the OS thread with runtime.LockOSThread first.
func PinToCPU(cpu int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}
