//go:build linux

package device

import "github.com/neuromorph/ained/mmio"

// defaultMapper maps through /dev/mem on the target board.
func defaultMapper() mmio.Mapper { return mmio.NewDevMem() }
