package device

import (
	"fmt"

	"github.com/neuromorph/ained/mmio"
)

// Dipoles returns the number of hardware random generators detected at
// open. Zero is a degenerate but legal count.
func (d *Device) Dipoles() int { return d.numDipoles }

// DipoleRNG reads dipole's current 32-bit output and its three
// Tausworthe seed words. The index must be strictly below Dipoles();
// the slot after the first zero generator id has no defined meaning, so
// the bound is strict.
func (d *Device) DipoleRNG(dipole int) (out, s0, s1, s2 uint32, err error) {
	if dipole < 0 || dipole >= d.numDipoles {
		return 0, 0, 0, 0, fmt.Errorf("%w: only %d dipoles in the system, requested %d",
			ErrOutOfRange, d.numDipoles, dipole)
	}
	base := dipoleBase + dipole*dipoleStride
	return d.regs.Uint32(base), d.regs.Uint32(base + 1), d.regs.Uint32(base + 2), d.regs.Uint32(base + 3), nil
}

// SetDipoleRNG seeds dipole's Tausworthe generator. The current output
// register is read-only and left untouched.
func (d *Device) SetDipoleRNG(dipole int, s0, s1, s2 uint32) error {
	if dipole < 0 || dipole >= d.numDipoles {
		return fmt.Errorf("%w: only %d dipoles in the system, requested %d",
			ErrOutOfRange, d.numDipoles, dipole)
	}
	base := dipoleBase + dipole*dipoleStride
	d.regs.SetUint32(base+1, s0)
	d.regs.SetUint32(base+2, s1)
	d.regs.SetUint32(base+3, s2)
	return nil
}

// PrimeSim writes n non-zero dipole generator ids into a simulated
// register window at the default address, so a subsequent Open against
// the same Sim detects them. Call it before Open; only meaningful for
// hardware-free operation.
func PrimeSim(sim *mmio.Sim, n int) error {
	r, err := sim.Map(DefaultRegisterAddr, DefaultRegisterLen)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		r.SetUint32(dipoleBase+i*dipoleStride, uint32(i+1))
	}
	return sim.Unmap(r)
}
