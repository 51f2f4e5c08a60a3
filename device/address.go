package device

// Bit addressing: the lattice is tiled in 8×8 blocks, one block per
// 64-bit word, 8 blocks per block-row. These three functions are the
// single source of truth for the tiling scheme; no other code computes
// addressing independently.
//
// All three are pure and have no error path. Callers are responsible
// for bounds (row < Rows, col < Cols); the public Device and lightsout
// APIs validate before calling.

// WordIndex maps a bit coordinate to its 64-bit lattice word index.
func WordIndex(row, col int) int {
	return (row/tile)*8 + col/tile
}

// BitIndex maps a bit coordinate to its bit position within the word.
func BitIndex(row, col int) int {
	return (row%tile)*8 + col%tile
}

// Coord inverts WordIndex/BitIndex, recovering the bit coordinate from
// a (word, bit) pair.
func Coord(word, bit int) (row, col int) {
	return (word/8)*tile + bit/8, (word%8)*tile + bit%8
}
