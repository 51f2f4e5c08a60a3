package device

// SetBypass toggles raw-memory interpretation of lattice writes.
// Enabling writes the bypass register and forces the write mask to
// all-ones, so every bit is always writable and the lattice behaves as
// ordinary memory. Disabling clears the mask to all-zeros: writes then
// require an explicit mask, letting the fabric's update logic
// participate.
func (d *Device) SetBypass(enable bool) {
	if enable {
		d.regs.SetUint32(regBypass, 1)
		d.setMask64(^uint64(0))
	} else {
		d.regs.SetUint32(regBypass, 0)
		d.setMask64(0)
	}
}

// Bypass reports the current state of the bypass register.
func (d *Device) Bypass() bool {
	return d.regs.Uint32(regBypass) != 0
}

// ClearMemory zeroes every lattice word. Clearing is defined to occur
// under bypass, so the call enables it, wipes all 128 words, and
// disables it again — bypass is left disabled on exit regardless of its
// state on entry.
func (d *Device) ClearMemory() {
	d.SetBypass(true)
	for i := 0; i < Words; i++ {
		d.mem.SetUint64(i, 0)
	}
	d.SetBypass(false)
}
