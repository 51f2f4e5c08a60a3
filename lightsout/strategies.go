package lightsout

// Strategies drive an Engine until no light remains, returning the
// number of clicks spent. Every strategy takes a move cap (<= 0 selects
// DefaultMoveCap) and returns ErrUnsolved when the cap is reached with
// lights still on — on stochastic hardware a run can stall, and the cap
// keeps the driver honest.

// SolveDeterministic computes the optimal press pattern for the current
// board and plays it in full — cross toggles commute, so on hardware
// that applies every toggle faithfully a single pass clears the board.
// Replaying a pattern press by press and recomputing in between does
// not converge: a press can re-enter the next recomputed pattern and
// the loop oscillates. If lights remain after a pass (stochastic
// updates disturbing cells mid-run) the pattern is recomputed from the
// new state; a state with no deterministic solution gets a rotating
// probe press before the retry. Requires a 5×5 engine window.
func SolveDeterministic(e *Engine, moveCap int) (int, error) {
	if e.rows != SolverSize || e.cols != SolverSize {
		return 0, ErrSolverSize
	}
	if moveCap <= 0 {
		moveCap = DefaultMoveCap
	}
	moves := 0
	for e.IsActive() {
		pattern, err := OptimalSolve(e.Board())
		if err != nil {
			return moves, err
		}
		pressed := false
		for i, p := range pattern {
			if p != 1 {
				continue
			}
			if moves >= moveCap {
				return moves, ErrUnsolved
			}
			if err = e.Click(i/SolverSize, i%SolverSize); err != nil {
				return moves, err
			}
			moves++
			pressed = true
		}
		if !pressed {
			// No deterministic solution from this state: probe a cell
			// and recompute.
			if moves >= moveCap {
				return moves, ErrUnsolved
			}
			if err = e.Click(moves%SolverSize, (moves/SolverSize)%SolverSize); err != nil {
				return moves, err
			}
			moves++
		}
	}
	return moves, nil
}

// SolveChase light-chases: find the first lit cell in row-major order
// and press below it (pressing (r+1,c) toggles (r,c)), falling back to
// the right neighbour or the cell itself at the board edges. Works on
// any window size.
func SolveChase(e *Engine, moveCap int) (int, error) {
	if moveCap <= 0 {
		moveCap = DefaultMoveCap
	}
	moves := 0
	for e.IsActive() {
		if moves >= moveCap {
			return moves, ErrUnsolved
		}
		board := e.Board()
		for i, lit := range board {
			if lit != 1 {
				continue
			}
			r, c := i/e.cols, i%e.cols
			var err error
			switch {
			case r < e.rows-1:
				err = e.Click(r+1, c)
			case c < e.cols-1:
				err = e.Click(r, c+1)
			default:
				err = e.Click(r, c)
			}
			if err != nil {
				return moves, err
			}
			moves++
			break
		}
	}
	return moves, nil
}

// SolveGreedy scores every possible press by the device's kernel
// weights — the probability mass a press puts on lit cells (turning
// them off) minus the mass on unlit cells (turning them on) — and
// plays the best-scoring press each round. Requires a 5×5 engine
// window; weights come from Device.KernelWeights.
func SolveGreedy(e *Engine, weights [25]float64, moveCap int) (int, error) {
	if e.rows != SolverSize || e.cols != SolverSize {
		return 0, ErrSolverSize
	}
	if moveCap <= 0 {
		moveCap = DefaultMoveCap
	}
	moves := 0
	for e.IsActive() {
		if moves >= moveCap {
			return moves, ErrUnsolved
		}
		board := e.Board()
		bestRow, bestCol, bestValue := 0, 0, float64(-1<<30)
		for row := 0; row < SolverSize; row++ {
			for col := 0; col < SolverSize; col++ {
				value := 0.0
				for i, lit := range board {
					w := pressWeight(weights, row, col, i/SolverSize, i%SolverSize)
					if lit == 1 {
						value += w
					} else {
						value -= w
					}
				}
				if value > bestValue {
					bestRow, bestCol, bestValue = row, col, value
				}
			}
		}
		if err := e.Click(bestRow, bestCol); err != nil {
			return moves, err
		}
		moves++
	}
	return moves, nil
}

// pressWeight is the kernel weight a press at (pr,pc) exerts on cell
// (r,c): the quadrant weight at the absolute offset, with the flip
// cross fixed at 1.
func pressWeight(weights [25]float64, pr, pc, r, c int) float64 {
	dr, dc := r-pr, c-pc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr+dc == 1 {
		return 1 // part of the cross
	}
	if dr > 4 || dc > 4 {
		return 0
	}
	return weights[dr*5+dc]
}
