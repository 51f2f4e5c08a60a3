package device

import "fmt"

// noWord marks an empty transaction.
const noWord = -1

// Txn is a single pending masked write: one target lattice word, the
// mask of bits eligible to change, and the values to write where
// masked. A Txn is an explicit value passed to Device.Commit rather
// than hidden handle state, so the single-pending-word invariant is
// visible at the type level.
//
// The zero Txn is NOT ready to use; create one with NewTxn.
type Txn struct {
	word  int
	mask  uint64
	value uint64
}

// NewTxn returns an empty transaction.
func NewTxn() *Txn {
	return &Txn{word: noWord}
}

// Pending reports whether a target word has been staged.
func (t *Txn) Pending() bool { return t.word != noWord }

// TargetWord returns the staged lattice word index, or -1 when empty.
func (t *Txn) TargetWord() int { return t.word }

// Mask returns the staged write mask.
func (t *Txn) Mask() uint64 { return t.mask }

// Value returns the staged value bits.
func (t *Txn) Value() uint64 { return t.value }

// Reset clears the transaction to empty without committing.
func (t *Txn) Reset() {
	t.word, t.mask, t.value = noWord, 0, 0
}

// StageBit stages one bit change. Multiple calls accumulate into the
// mask/value pair as long as every bit belongs to the same 64-bit word;
// staging a bit of a different word returns ErrConflictingTarget and
// leaves the pending state untouched. Coordinates outside the lattice
// return ErrOutOfRange.
func (t *Txn) StageBit(row, col int, set bool) error {
	if !inLattice(row, col) {
		return fmt.Errorf("%w: bit (%d,%d)", ErrOutOfRange, row, col)
	}
	w := WordIndex(row, col)
	if t.word != noWord && t.word != w {
		return fmt.Errorf("%w: word %d pending, bit (%d,%d) is in word %d",
			ErrConflictingTarget, t.word, row, col, w)
	}
	b := uint(BitIndex(row, col))
	t.word = w
	t.mask |= 1 << b
	if set {
		t.value |= 1 << b
	} else {
		t.value &^= 1 << b
	}
	return nil
}

// StageWord replaces the transaction with a whole-word write, bypassing
// the per-bit conflict check: the caller asserts single-word intent.
// Returns ErrOutOfRange for an offset outside the lattice.
func (t *Txn) StageWord(offset int, word, mask uint64) error {
	if offset < 0 || offset >= Words {
		return fmt.Errorf("%w: word offset %d", ErrOutOfRange, offset)
	}
	t.word, t.value, t.mask = offset, word, mask
	return nil
}

// Commit applies a staged transaction: the mask register is written
// first, then the value lands on the target lattice word — the fabric
// interprets a word write through whatever mask is resident, so this
// ordering is required. On success the transaction resets to empty.
// Returns ErrNothingPending when nothing is staged.
//
// With bypass disabled the fabric's own logic interprets the write;
// with bypass enabled it is an unconditional memory write.
func (d *Device) Commit(t *Txn) error {
	if !t.Pending() {
		return ErrNothingPending
	}
	d.setMask64(t.mask)
	d.mem.SetUint64(t.word, t.value)
	t.Reset()
	return nil
}
