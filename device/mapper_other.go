//go:build !linux

package device

import "github.com/neuromorph/ained/mmio"

// defaultMapper falls back to simulated memory off the target board.
func defaultMapper() mmio.Mapper { return mmio.NewSim() }
