package lightsout_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuromorph/ained/lightsout"
)

// applyPresses plays a press pattern on a 5×5 board by plain GF(2)
// cross addition, independent of the solver matrices.
func applyPresses(board, presses []int) []int {
	out := make([]int, len(board))
	copy(out, board)
	for i, p := range presses {
		if p != 1 {
			continue
		}
		r, c := i/5, i%5
		out[i] ^= 1
		if r > 0 {
			out[i-5] ^= 1
		}
		if r < 4 {
			out[i+5] ^= 1
		}
		if c > 0 {
			out[i-1] ^= 1
		}
		if c < 4 {
			out[i+1] ^= 1
		}
	}
	return out
}

func crossBoard(r, c int) []int {
	return applyPresses(make([]int, 25), pressAt(r, c))
}

func pressAt(r, c int) []int {
	p := make([]int, 25)
	p[r*5+c] = 1
	return p
}

func TestSolvable(t *testing.T) {
	cases := []struct {
		name  string
		board []int
		want  bool
	}{
		{"AllDark", make([]int, 25), true},
		{"SingleCross", crossBoard(2, 2), true},
		{"TwoCrosses", applyPresses(crossBoard(0, 0), pressAt(4, 4)), true},
		{"LoneCorner", pressAt(0, 0), false},
		{"LoneCenter", pressAt(2, 2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lightsout.Solvable(tc.board)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSolvable_BadSize(t *testing.T) {
	_, err := lightsout.Solvable(make([]int, 24))
	require.ErrorIs(t, err, lightsout.ErrSolverSize)
}

// TestBasicSolve_Clears checks the pseudo-inverse against independent
// cross addition: its pattern must clear every solvable board.
func TestBasicSolve_Clears(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		board := lightsout.RandomBoard(rng)
		presses, err := lightsout.BasicSolve(board)
		require.NoError(t, err)
		require.Equal(t, make([]int, 25), applyPresses(board, presses))
	}
}

// TestOptimalSolve_Clears checks the optimal pattern still clears and
// never uses more presses than the basic one.
func TestOptimalSolve_Clears(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 50; trial++ {
		board := lightsout.RandomBoard(rng)
		basic, err := lightsout.BasicSolve(board)
		require.NoError(t, err)
		optimal, err := lightsout.OptimalSolve(board)
		require.NoError(t, err)

		require.Equal(t, make([]int, 25), applyPresses(board, optimal))
		require.LessOrEqual(t, count(optimal), count(basic))
	}
}

func count(pattern []int) int {
	n := 0
	for _, v := range pattern {
		n += v
	}
	return n
}

// TestBasicSolve_LoneCenter pins the lone-centre board: it overlaps
// every quiet pattern evenly, so it is solvable, and the pseudo-inverse
// clears it with an 11-press pattern.
func TestBasicSolve_LoneCenter(t *testing.T) {
	board := pressAt(2, 2)
	presses, err := lightsout.BasicSolve(board)
	require.NoError(t, err)
	require.Equal(t, 11, count(presses))
	require.Equal(t, make([]int, 25), applyPresses(board, presses))
}

// TestOptimalSolve_SingleCross wants the one-press answer back.
func TestOptimalSolve_SingleCross(t *testing.T) {
	presses, err := lightsout.OptimalSolve(crossBoard(1, 3))
	require.NoError(t, err)
	require.Equal(t, pressAt(1, 3), presses)
}

func TestRandomBoard_Solvable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 20; trial++ {
		board := lightsout.RandomBoard(rng)
		require.Len(t, board, 25)
		ok, err := lightsout.Solvable(board)
		require.NoError(t, err)
		require.True(t, ok)
	}
}
