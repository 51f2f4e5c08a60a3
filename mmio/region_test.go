package mmio_test

import (
	"errors"
	"testing"

	"github.com/neuromorph/ained/mmio"
)

//----------------------------------------------------------------------------//
// Sim mapper tests
//----------------------------------------------------------------------------//

// TestSim_MapErrors verifies that bad window lengths are rejected.
func TestSim_MapErrors(t *testing.T) {
	cases := []struct {
		name   string
		length int
	}{
		{"Zero", 0},
		{"Negative", -8},
		{"Unaligned", 12},
	}
	sim := mmio.NewSim()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sim.Map(0x1000, tc.length)
			if !errors.Is(err, mmio.ErrBadLength) {
				t.Errorf("Map(0x1000, %d) error = %v; want ErrBadLength", tc.length, err)
			}
		})
	}
}

// TestSim_WordAccess checks 32/64-bit reads and writes share one backing store.
func TestSim_WordAccess(t *testing.T) {
	sim := mmio.NewSim()
	r, err := sim.Map(0x2000, 64)
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	if r.Words64() != 8 || r.Words32() != 16 {
		t.Fatalf("Words64=%d Words32=%d; want 8, 16", r.Words64(), r.Words32())
	}

	r.SetUint64(1, 0x1122334455667788)
	if got := r.Uint64(1); got != 0x1122334455667788 {
		t.Errorf("Uint64(1) = %016X; want 1122334455667788", got)
	}
	// Little-endian split of the same word through the 32-bit view.
	if lo := r.Uint32(2); lo != 0x55667788 {
		t.Errorf("Uint32(2) = %08X; want 55667788", lo)
	}
	if hi := r.Uint32(3); hi != 0x11223344 {
		t.Errorf("Uint32(3) = %08X; want 11223344", hi)
	}
}

// TestSim_BackingPersists verifies contents survive unmap/remap at one address.
func TestSim_BackingPersists(t *testing.T) {
	sim := mmio.NewSim()
	r1, err := sim.Map(0x3000, 32)
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	r1.SetUint32(5, 0xDEADBEEF)
	if err = sim.Unmap(r1); err != nil {
		t.Fatalf("Unmap error: %v", err)
	}

	r2, err := sim.Map(0x3000, 32)
	if err != nil {
		t.Fatalf("remap error: %v", err)
	}
	if got := r2.Uint32(5); got != 0xDEADBEEF {
		t.Errorf("Uint32(5) after remap = %08X; want DEADBEEF", got)
	}
}

// TestSim_GrowKeepsContents verifies remapping a window with a larger
// length carries the old contents into the grown backing.
func TestSim_GrowKeepsContents(t *testing.T) {
	sim := mmio.NewSim()
	r1, err := sim.Map(0x5000, 16)
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	r1.SetUint64(1, 0xCAFEF00D)
	if err = sim.Unmap(r1); err != nil {
		t.Fatalf("Unmap error: %v", err)
	}

	r2, err := sim.Map(0x5000, 64)
	if err != nil {
		t.Fatalf("grown remap error: %v", err)
	}
	if got := r2.Uint64(1); got != 0xCAFEF00D {
		t.Errorf("Uint64(1) after growth = %X; want CAFEF00D", got)
	}
	if r2.Words64() != 8 {
		t.Errorf("Words64 after growth = %d; want 8", r2.Words64())
	}
}

// TestRegion_BoundsPanic confirms out-of-range word indices panic.
func TestRegion_BoundsPanic(t *testing.T) {
	sim := mmio.NewSim()
	r, err := sim.Map(0x4000, 16)
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Uint64(2) on a 2-word region did not panic")
		}
	}()
	_ = r.Uint64(2)
}
