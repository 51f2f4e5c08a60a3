// Package lightsout layers a deterministic Lights-Out puzzle on a
// rectangular window of the AiNed lattice, treating each bit as a
// light.
//
// What:
//
//   - Engine binds a device handle to a caller-chosen sub-board
//     (startRow, startCol, rows, cols). The engine itself is stateless:
//     the board IS the lattice window.
//   - Click implements the canonical toggle rule — the clicked cell and
//     its in-bounds orthogonal neighbours flip, nothing else moves.
//   - Reconstruct writes a full board snapshot back into the window.
//   - The solver applies 5×5 deterministic Lights-Out theory: quiet
//     patterns, a pseudo-inverse solve, and three driving strategies
//     (deterministic, chase, greedy).
//
// Why the click sequence looks the way it does: staged masked commits
// on the normal (non-bypass) write path do not behave as simple memory
// writes on this fabric. Click therefore snapshots the window, zeroes
// the lattice, pushes a single commit through the normal path to flush
// pending device state, and then XOR-toggles everything under bypass —
// the only write path guaranteed to be a pure bit flip. Do not simplify
// this sequence without demonstrating the equivalence on the target
// platform.
//
// The engine always operates the lattice in bypass/raw mode for its
// toggles and never depends on computed-mode behavior.
//
// Errors:
//
//   - ErrBadWindow: the sub-board does not fit the 128×64 lattice.
//   - ErrOutOfBounds: a click outside the sub-board (no-op).
//   - ErrBadBoard: a reconstruct snapshot of the wrong size.
//   - ErrSolverSize: solver routines invoked off a 5×5 board.
//   - ErrUnsolved: a strategy hit its move cap before clearing.
package lightsout
