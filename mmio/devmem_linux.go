//go:build linux

package mmio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DevMem maps physical address windows through /dev/mem. It requires
// root or CAP_SYS_RAWIO and is only meaningful on the target board;
// everything else should use Sim.
type DevMem struct {
	path string
}

// NewDevMem creates a Mapper over /dev/mem.
func NewDevMem() *DevMem {
	return &DevMem{path: "/dev/mem"}
}

// Map mmaps length bytes at physical address phys, read/write, shared,
// with O_SYNC so accesses reach the fabric uncached. The request is
// page-aligned internally; the returned Region covers exactly the
// requested window.
func (m *DevMem) Map(phys uint64, length int) (*Region, error) {
	if length <= 0 || length%8 != 0 {
		return nil, ErrBadLength
	}
	f, err := os.OpenFile(m.path, os.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMap, m.path, err)
	}
	defer f.Close()

	page := uint64(unix.Getpagesize())
	base := phys &^ (page - 1)
	skew := int(phys - base)
	raw, err := unix.Mmap(int(f.Fd()), int64(base), skew+length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap 0x%08X+%d: %v", ErrMap, phys, length, err)
	}
	return &Region{buf: raw[skew : skew+length], raw: raw}, nil
}

// Unmap releases the full page-aligned mapping behind r.
func (m *DevMem) Unmap(r *Region) error {
	if r == nil || r.raw == nil {
		return nil
	}
	err := unix.Munmap(r.raw)
	r.raw = nil
	r.buf = nil
	return err
}
