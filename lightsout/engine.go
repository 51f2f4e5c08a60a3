package lightsout

import (
	"fmt"

	"github.com/neuromorph/ained/device"
)

// Engine plays Lights-Out on a rectangular window of the lattice. It
// keeps no state of its own: the sub-board's bit pattern is the game.
type Engine struct {
	dev      *device.Device
	startRow int
	startCol int
	rows     int
	cols     int
}

// New binds a device handle to the window with top-left corner
// (startRow, startCol) spanning rows×cols bits. Returns ErrBadWindow
// when the window is empty or escapes the lattice.
func New(dev *device.Device, startRow, startCol, rows, cols int) (*Engine, error) {
	if rows < 1 || cols < 1 ||
		startRow < 0 || startCol < 0 ||
		startRow+rows > device.Rows || startCol+cols > device.Cols {
		return nil, fmt.Errorf("%w: (%d,%d)+%dx%d", ErrBadWindow, startRow, startCol, rows, cols)
	}
	return &Engine{dev: dev, startRow: startRow, startCol: startCol, rows: rows, cols: cols}, nil
}

// Rows reports the sub-board height.
func (e *Engine) Rows() int { return e.rows }

// Cols reports the sub-board width.
func (e *Engine) Cols() int { return e.cols }

// inBoard reports whether (row, col) lies inside the sub-board.
func (e *Engine) inBoard(row, col int) bool {
	return row >= 0 && row < e.rows && col >= 0 && col < e.cols
}

// Board reads the sub-board into a flat row-major 0/1 snapshot. Pure
// read, no side effects.
func (e *Engine) Board() []int {
	board := make([]int, e.rows*e.cols)
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			on, _ := e.dev.Bit(e.startRow+r, e.startCol+c)
			if on {
				board[r*e.cols+c] = 1
			}
		}
	}
	return board
}

// IsActive reports whether any light in the sub-board is on — the
// puzzle's not-solved predicate.
func (e *Engine) IsActive() bool {
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			if on, _ := e.dev.Bit(e.startRow+r, e.startCol+c); on {
				return true
			}
		}
	}
	return false
}

// Click toggles the light at sub-board coordinate (row, col) and each
// in-bounds orthogonal neighbour; out-of-board neighbours are skipped,
// no wraparound. A click outside the sub-board returns ErrOutOfBounds
// without mutating anything.
//
// The write sequence is deliberate (see the package comment): snapshot,
// zero the lattice, push the clicked cell through one normal-path
// commit to flush pending device state, then XOR-toggle the rest under
// bypass. Bypass is left disabled.
func (e *Engine) Click(row, col int) error {
	if !e.inBoard(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, e.rows, e.cols)
	}

	snapshot := e.Board()
	e.dev.ClearMemory()

	tx := device.NewTxn()
	if err := tx.StageBit(e.startRow+row, e.startCol+col, true); err != nil {
		return err
	}
	if err := e.dev.Commit(tx); err != nil {
		return err
	}
	// One read on the normal path before switching modes.
	_, _ = e.dev.Bit(0, 0)

	e.dev.SetBypass(true)
	for i, lit := range snapshot {
		if lit == 1 {
			_ = e.dev.FlipBit(e.startRow+i/e.cols, e.startCol+i%e.cols)
		}
	}
	// The outer cells of the cross.
	if row > 0 {
		_ = e.dev.FlipBit(e.startRow+row-1, e.startCol+col)
	}
	if row < e.rows-1 {
		_ = e.dev.FlipBit(e.startRow+row+1, e.startCol+col)
	}
	if col > 0 {
		_ = e.dev.FlipBit(e.startRow+row, e.startCol+col-1)
	}
	if col < e.cols-1 {
		_ = e.dev.FlipBit(e.startRow+row, e.startCol+col+1)
	}
	e.dev.SetBypass(false)
	return nil
}

// Reconstruct writes a full row-major snapshot back into the sub-board
// under bypass, one whole-word commit per touched tile. The staged
// value merges the resident word outside the window's mask, so lattice
// bits sharing a tile with the sub-board survive. Returns ErrBadBoard
// when the snapshot does not match the window.
func (e *Engine) Reconstruct(board []int) error {
	if len(board) != e.rows*e.cols {
		return fmt.Errorf("%w: got %d cells, want %d", ErrBadBoard, len(board), e.rows*e.cols)
	}

	var mask, bits [device.Words]uint64
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			w := device.WordIndex(e.startRow+r, e.startCol+c)
			b := uint(device.BitIndex(e.startRow+r, e.startCol+c))
			mask[w] |= 1 << b
			if board[r*e.cols+c] != 0 {
				bits[w] |= 1 << b
			}
		}
	}

	e.dev.SetBypass(true)
	defer e.dev.SetBypass(false)

	resident := e.dev.MemoryWords()
	tx := device.NewTxn()
	for w, m := range mask {
		if m == 0 {
			continue
		}
		if err := tx.StageWord(w, (resident[w]&^m)|bits[w], m); err != nil {
			return err
		}
		if err := e.dev.Commit(tx); err != nil {
			return err
		}
	}
	return nil
}
