package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/lightsout"
)

// newGame opens the device and binds a Lights-Out engine to the window
// selected by the board flags, optionally scrambling it first. The
// caller owns the returned device handle.
func newGame() (*device.Device, *lightsout.Engine, error) {
	dev, err := openDevice()
	if err != nil {
		return nil, nil, err
	}
	game, err := lightsout.New(dev, boardRow, boardCol, boardRows, boardCols)
	if err != nil {
		dev.Close()
		return nil, nil, err
	}
	if scramble {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		if err := game.Reconstruct(lightsout.RandomBoard(rng)); err != nil {
			dev.Close()
			return nil, nil, err
		}
	}
	return dev, game, nil
}

func renderBoard(board []int, cols int) string {
	var b strings.Builder
	for i, v := range board {
		if v == 1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func runBoard(cmd *cobra.Command, args []string) error {
	dev, game, err := newGame()
	if err != nil {
		return err
	}
	defer dev.Close()
	fmt.Print(renderBoard(game.Board(), game.Cols()))
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	dev, game, err := newGame()
	if err != nil {
		return err
	}
	defer dev.Close()

	var moves int
	switch solveMethod {
	case "deterministic":
		moves, err = lightsout.SolveDeterministic(game, solveMoveCap)
	case "chase":
		moves, err = lightsout.SolveChase(game, solveMoveCap)
	case "greedy":
		moves, err = lightsout.SolveGreedy(game, dev.KernelWeights(device.KernelHigh), solveMoveCap)
	default:
		return fmt.Errorf("solve: unknown strategy %q", solveMethod)
	}
	if err != nil {
		return fmt.Errorf("after %d moves: %w", moves, err)
	}
	fmt.Printf("cleared in %d moves\n", moves)
	return nil
}
