//go:build !linux

package engine

import (
	mn "github.com/sharnoff/multinet"
)

func setAffinity(cpu int) error {
	return mn.UnsupportedError{Strategy: "this platform", Operation: "processor affinity"}
}
