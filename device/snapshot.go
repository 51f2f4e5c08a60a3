package device

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Snapshot persistence. Two images exist, owned by the caller as files
// or any other byte sink:
//
//   - memory image: exactly 128 little-endian 64-bit lattice words;
//   - state image: the 15 fixed 32-bit registers followed by
//     dipoles×4 32-bit dipole registers, in that order.
//
// Short reads and writes surface as errors wrapping ErrShortImage, and
// a truncated image is never partially applied: both readers decode the
// full image into scratch memory before touching the fabric.

// WriteMemoryImage streams the lattice contents to w.
func (d *Device) WriteMemoryImage(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, d.MemoryWords()); err != nil {
		return fmt.Errorf("%w: memory image: %v", ErrShortImage, err)
	}
	return nil
}

// ReadMemoryImage restores the lattice contents from r. The restore
// happens under bypass — the words must land as plain memory writes —
// and bypass is left disabled afterwards.
func (d *Device) ReadMemoryImage(r io.Reader) error {
	words := make([]uint64, Words)
	if err := binary.Read(r, binary.LittleEndian, words); err != nil {
		return fmt.Errorf("%w: memory image: %v", ErrShortImage, err)
	}
	d.SetBypass(true)
	for i, v := range words {
		d.mem.SetUint64(i, v)
	}
	d.SetBypass(false)
	return nil
}

// WriteStateImage streams the register block and dipole block to w.
func (d *Device) WriteStateImage(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, d.Registers()); err != nil {
		return fmt.Errorf("%w: state image registers: %v", ErrShortImage, err)
	}
	dip := make([]uint32, d.numDipoles*dipoleStride)
	for i := range dip {
		dip[i] = d.regs.Uint32(dipoleBase + i)
	}
	if err := binary.Write(w, binary.LittleEndian, dip); err != nil {
		return fmt.Errorf("%w: state image dipoles: %v", ErrShortImage, err)
	}
	return nil
}

// ReadStateImage restores the register block and dipole block from r.
// The dipole section length is defined by the count detected at open.
func (d *Device) ReadStateImage(r io.Reader) error {
	regs := make([]uint32, numRegs)
	if err := binary.Read(r, binary.LittleEndian, regs); err != nil {
		return fmt.Errorf("%w: state image registers: %v", ErrShortImage, err)
	}
	dip := make([]uint32, d.numDipoles*dipoleStride)
	if err := binary.Read(r, binary.LittleEndian, dip); err != nil {
		return fmt.Errorf("%w: state image dipoles: %v", ErrShortImage, err)
	}
	for i, v := range regs {
		d.regs.SetUint32(i, v)
	}
	for i, v := range dip {
		d.regs.SetUint32(dipoleBase+i, v)
	}
	return nil
}
