package device

import (
	"fmt"
	"log/slog"

	"github.com/neuromorph/ained/mmio"
)

// Device is the exclusively-owned handle to the AiNed fabric. It holds
// the two mapped regions (registers and lattice memory) and the dipole
// count detected at open. Do not copy a Device; do not share one across
// goroutines without external serialization.
type Device struct {
	mapper mmio.Mapper
	regs   *mmio.Region
	mem    *mmio.Region

	numDipoles int
	log        *slog.Logger
}

// Open maps the register and memory regions and scans the dipole block.
// On any mapping failure it releases partial mappings and returns an
// error wrapping ErrMapFailed; the failure is permanent for the handle.
func Open(opts ...Option) (*Device, error) {
	o := gatherOptions(opts...)

	regs, err := o.mapper.Map(o.regAddr, o.regLen)
	if err != nil {
		return nil, fmt.Errorf("%w: registers at 0x%08X: %v", ErrMapFailed, o.regAddr, err)
	}
	mem, err := o.mapper.Map(o.memAddr, o.memLen)
	if err != nil {
		_ = o.mapper.Unmap(regs)
		return nil, fmt.Errorf("%w: memory at 0x%08X: %v", ErrMapFailed, o.memAddr, err)
	}

	d := &Device{mapper: o.mapper, regs: regs, mem: mem, log: o.log}
	d.numDipoles = d.scanDipoles()
	d.log.Info("ained device opened",
		"registers", fmt.Sprintf("0x%08X", o.regAddr),
		"memory", fmt.Sprintf("0x%08X", o.memAddr),
		"dipoles", d.numDipoles)
	return d, nil
}

// Close releases both mapped regions. Safe to call on a nil handle.
func (d *Device) Close() error {
	if d == nil {
		return nil
	}
	errRegs := d.mapper.Unmap(d.regs)
	errMem := d.mapper.Unmap(d.mem)
	if errRegs != nil {
		return errRegs
	}
	return errMem
}

// scanDipoles walks the dipole block until the first zero generator-id
// slot or the end of the register region. A scan that immediately reads
// zero yields a degenerate but legal count of zero.
func (d *Device) scanDipoles() int {
	limit := (d.regs.Words32() - dipoleBase) / dipoleStride
	n := 0
	for n < limit && d.regs.Uint32(dipoleBase+n*dipoleStride) != 0 {
		n++
	}
	return n
}

// inLattice reports whether (row, col) addresses a lattice bit.
func inLattice(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Bit reads a single lattice bit. Returns ErrOutOfRange outside the
// 128×64 lattice.
func (d *Device) Bit(row, col int) (bool, error) {
	if !inLattice(row, col) {
		return false, fmt.Errorf("%w: bit (%d,%d)", ErrOutOfRange, row, col)
	}
	word := d.mem.Uint64(WordIndex(row, col))
	return word&(1<<uint(BitIndex(row, col))) != 0, nil
}

// FlipBit XOR-toggles a single lattice bit by direct memory access.
// The caller must hold bypass: direct toggling under bypass is the only
// write path guaranteed to be a pure bit flip — a masked commit on the
// normal path does not behave as a simple memory write.
func (d *Device) FlipBit(row, col int) error {
	if !inLattice(row, col) {
		return fmt.Errorf("%w: bit (%d,%d)", ErrOutOfRange, row, col)
	}
	w := WordIndex(row, col)
	d.mem.SetUint64(w, d.mem.Uint64(w)^(1<<uint(BitIndex(row, col))))
	return nil
}

// SetWriteMask writes the 64-bit write mask register directly, for raw
// word writes through Memory word access outside the Txn path.
func (d *Device) SetWriteMask(mask uint64) {
	d.setMask64(mask)
}

// setMask64 lands the write mask as one 64-bit store, the access width
// the fabric expects for the mask register.
func (d *Device) setMask64(mask uint64) {
	d.regs.SetUint64(regMask64, mask)
}

// MemoryWords returns a snapshot copy of all 128 lattice words.
func (d *Device) MemoryWords() []uint64 {
	out := make([]uint64, Words)
	for i := range out {
		out[i] = d.mem.Uint64(i)
	}
	return out
}

// Registers returns a snapshot copy of the fixed 32-bit register block.
func (d *Device) Registers() []uint32 {
	out := make([]uint32, numRegs)
	for i := range out {
		out[i] = d.regs.Uint32(i)
	}
	return out
}
