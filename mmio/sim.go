package mmio

import "fmt"

// Sim is a Mapper backed by plain process memory. Regions mapped at the
// same physical address share one zero-initialised backing buffer, so
// state written through one handle survives into the next — mirroring
// how the fabric's registers persist across reopen.
type Sim struct {
	backing map[uint64][]byte
}

// NewSim creates an empty simulated address space.
func NewSim() *Sim {
	return &Sim{backing: make(map[uint64][]byte)}
}

// Map exposes length bytes at phys, allocating the backing buffer on
// first use. Remapping an existing window with a larger length grows
// the backing and carries the old contents over — but the growth is a
// fresh array, so a Region still mapped at that address keeps the old
// one and stops observing writes made through the new Region. Unmap
// before remapping larger.
func (s *Sim) Map(phys uint64, length int) (*Region, error) {
	if length <= 0 || length%8 != 0 {
		return nil, ErrBadLength
	}
	buf, ok := s.backing[phys]
	if !ok || len(buf) < length {
		grown := make([]byte, length)
		copy(grown, buf)
		s.backing[phys] = grown
		buf = grown
	}
	return &Region{buf: buf[:length]}, nil
}

// Unmap releases a simulated Region. The backing buffer is retained so
// a later Map at the same address sees the same contents.
func (s *Sim) Unmap(r *Region) error {
	if r == nil {
		return fmt.Errorf("mmio: unmap of nil region")
	}
	r.buf = nil
	return nil
}
