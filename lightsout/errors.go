package lightsout

import "errors"

// Sentinel errors for lightsout operations.
var (
	// ErrBadWindow indicates the requested sub-board does not fit inside
	// the 128×64 lattice.
	ErrBadWindow = errors.New("lightsout: sub-board does not fit the lattice")
	// ErrOutOfBounds indicates a click outside the sub-board. The board
	// is not mutated.
	ErrOutOfBounds = errors.New("lightsout: click outside the sub-board")
	// ErrBadBoard indicates a snapshot whose length does not match the
	// sub-board.
	ErrBadBoard = errors.New("lightsout: board size does not match the sub-board")
	// ErrSolverSize indicates a solver routine was applied to a board
	// that is not 5×5; the deterministic theory matrices are 5×5 only.
	ErrSolverSize = errors.New("lightsout: solver requires a 5x5 board")
	// ErrUnsolved indicates a strategy reached its move cap with lights
	// still on.
	ErrUnsolved = errors.New("lightsout: move cap reached before the board cleared")
)
