package mmio

import (
	"encoding/binary"
	"fmt"
)

// Mapper establishes and releases access to physical address windows.
// Two implementations exist: DevMem (hardware) and Sim (in-memory).
type Mapper interface {
	// Map exposes length bytes starting at physical address phys.
	// Returns ErrBadLength or an error wrapping ErrMap.
	Map(phys uint64, length int) (*Region, error)
	// Unmap releases a Region previously returned by Map.
	Unmap(r *Region) error
}

// Region is a word-granular view over a mapped byte range. The backing
// memory may change asynchronously from the device side; accessors
// always decode from the mapping and never cache.
//
// Indices are word indices (not byte offsets). Out-of-range indices
// panic: public APIs validate user input before computing offsets.
type Region struct {
	buf []byte // the window handed to callers
	raw []byte // full mapping, page-aligned (nil for Sim regions)
}

// Len reports the window size in bytes.
func (r *Region) Len() int { return len(r.buf) }

// Words32 reports the number of addressable 32-bit words.
func (r *Region) Words32() int { return len(r.buf) / 4 }

// Words64 reports the number of addressable 64-bit words.
func (r *Region) Words64() int { return len(r.buf) / 8 }

// Uint32 reads the 32-bit word at index i.
func (r *Region) Uint32(i int) uint32 {
	r.check32(i)
	return binary.LittleEndian.Uint32(r.buf[i*4:])
}

// SetUint32 writes the 32-bit word at index i.
func (r *Region) SetUint32(i int, v uint32) {
	r.check32(i)
	binary.LittleEndian.PutUint32(r.buf[i*4:], v)
}

// Uint64 reads the 64-bit word at index i.
func (r *Region) Uint64(i int) uint64 {
	r.check64(i)
	return binary.LittleEndian.Uint64(r.buf[i*8:])
}

// SetUint64 writes the 64-bit word at index i.
func (r *Region) SetUint64(i int, v uint64) {
	r.check64(i)
	binary.LittleEndian.PutUint64(r.buf[i*8:], v)
}

func (r *Region) check32(i int) {
	if i < 0 || i >= len(r.buf)/4 {
		panic(fmt.Sprintf("mmio: 32-bit word index %d outside region of %d words", i, len(r.buf)/4))
	}
}

func (r *Region) check64(i int) {
	if i < 0 || i >= len(r.buf)/8 {
		panic(fmt.Sprintf("mmio: 64-bit word index %d outside region of %d words", i, len(r.buf)/8))
	}
}
