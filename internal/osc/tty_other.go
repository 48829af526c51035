//go:build !linux && !darwin

package osc

import "fmt"

// Open reports that no OSC-capable terminal device exists on this platform.
func Open(path string) (Terminal, error) {
	return nil, fmt.Errorf("%w: %s unsupported on this platform", ErrNoTerminal, path)
}
