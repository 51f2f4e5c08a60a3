// Package device is the handle to the AiNed lattice: 128×64 bits stored
// as 128 addressable 64-bit words, each holding an 8×8 tile.
//
// What:
//
//   - WordIndex/BitIndex/Coord: the single source of truth for the
//     row/col ↔ (word, bit) tiling scheme.
//   - Txn: an explicit masked-write transaction — stage bits of one
//     word, then Commit, which lands the mask register before the word
//     (the fabric interprets a word write through the resident mask).
//   - SetBypass/ClearMemory: switch the lattice between raw memory and
//     computed interpretation; clearing always runs under bypass and
//     leaves it disabled.
//   - GenerateKernel/Coefficient: the 5×5 decay-weighted coefficient
//     kernels (high/low) packed into six 32-bit groups each.
//   - Dipoles/DipoleRNG: the per-cell Tausworthe generators detected by
//     scanning the dipole register block at open.
//   - Write/ReadMemoryImage, Write/ReadStateImage: binary snapshot
//     persistence of the lattice and register block.
//
// Errors:
//
//   - ErrMapFailed: a region could not be mapped (permanent; Open fails).
//   - ErrConflictingTarget: a second word targeted before Commit.
//   - ErrNothingPending: Commit with nothing staged.
//   - ErrOutOfRange: coordinate, group or dipole index outside the
//     valid set; the operation is a no-op.
//   - ErrShortImage: truncated snapshot read/write.
//
// The Device is an exclusively-owned resource: the hardware supports a
// single coherent view, so open exactly one handle and do not share it
// across goroutines without external serialization. Operations are
// direct memory accesses — synchronous, non-blocking, no retries.
package device
