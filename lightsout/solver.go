package lightsout

import (
	"fmt"
	"math/rand/v2"
)

// Deterministic 5×5 Lights-Out theory. A 5×5 board is a vector in
// GF(2)^25; clicking is addition of a cross pattern. The click matrix
// is singular with a 2-dimensional null space, spanned by the quiet
// patterns below: pressing a full quiet pattern leaves the board
// unchanged, and a board is solvable iff it is orthogonal (mod 2) to
// every quiet pattern.

// SolverSize is the board edge length the solver matrices cover.
const SolverSize = 5

// solverCells is the number of cells on a solver board.
const solverCells = SolverSize * SolverSize

// DefaultMoveCap bounds strategy runs when the caller passes no cap.
const DefaultMoveCap = 4096

// quietPatterns spans the null space of the 5×5 click matrix.
var quietPatterns = [3][solverCells]int{
	{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1},
	{1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1},
	{0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0},
}

// aInv is the pseudo-inverse of the 5×5 click matrix over GF(2):
// aInv·board yields a press pattern that clears the board (when one
// exists).
var aInv = [solverCells][solverCells]int{
	{0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
	{1, 1, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{1, 0, 1, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0},
	{1, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	{0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0, 0},
	{1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 1, 1, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	{0, 1, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0},
	{1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0},
	{0, 0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0},
	{0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0},
	{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0},
	{0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 0, 1, 0, 0, 0},
	{0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0},
	{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1},
}

// checkSolverBoard validates a flat board for the 5×5 routines.
func checkSolverBoard(board []int) error {
	if len(board) != solverCells {
		return fmt.Errorf("%w: got %d cells", ErrSolverSize, len(board))
	}
	return nil
}

// Solvable reports whether a 5×5 board is solvable in the deterministic
// game: its overlap with every quiet pattern must be even.
func Solvable(board []int) (bool, error) {
	if err := checkSolverBoard(board); err != nil {
		return false, err
	}
	for _, qp := range quietPatterns {
		overlap := 0
		for i, v := range qp {
			overlap += board[i] * v
		}
		if overlap%2 != 0 {
			return false, nil
		}
	}
	return true, nil
}

// BasicSolve returns the pseudo-inverse press pattern for a 5×5 board.
// The pattern clears the board when it is solvable.
func BasicSolve(board []int) ([]int, error) {
	if err := checkSolverBoard(board); err != nil {
		return nil, err
	}
	presses := make([]int, solverCells)
	for i := 0; i < solverCells; i++ {
		sum := 0
		for j := 0; j < solverCells; j++ {
			sum += aInv[i][j] * board[j]
		}
		presses[i] = sum % 2
	}
	return presses, nil
}

// OptimalSolve returns the press pattern with the fewest presses,
// found by superimposing each quiet pattern on the basic solve.
func OptimalSolve(board []int) ([]int, error) {
	best, err := BasicSolve(board)
	if err != nil {
		return nil, err
	}
	for _, qp := range quietPatterns {
		cand := make([]int, solverCells)
		for i := range cand {
			cand[i] = (best[i] + qp[i]) % 2
		}
		if countPresses(cand) < countPresses(best) {
			best = cand
		}
	}
	return best, nil
}

func countPresses(pattern []int) int {
	n := 0
	for _, v := range pattern {
		n += v
	}
	return n
}

// RandomBoard draws random 5×5 boards until one is solvable in the
// deterministic game.
func RandomBoard(rng *rand.Rand) []int {
	for {
		board := make([]int, solverCells)
		for i := range board {
			board[i] = rng.IntN(2)
		}
		if ok, _ := Solvable(board); ok {
			return board
		}
	}
}
