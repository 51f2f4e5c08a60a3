package lightsout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/lightsout"
	"github.com/neuromorph/ained/mmio"
)

// newEngineDev returns a fresh simulated device and an engine bound to
// the given window.
func newEngineDev(t *testing.T, startRow, startCol, rows, cols int) (*device.Device, *lightsout.Engine) {
	t.Helper()
	sim := mmio.NewSim()
	require.NoError(t, device.PrimeSim(sim, 2))
	dev, err := device.Open(device.WithMapper(sim))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, dev.Close()) })
	dev.ClearMemory()

	e, err := lightsout.New(dev, startRow, startCol, rows, cols)
	require.NoError(t, err)
	return dev, e
}

func newEngine(t *testing.T, startRow, startCol, rows, cols int) *lightsout.Engine {
	t.Helper()
	_, e := newEngineDev(t, startRow, startCol, rows, cols)
	return e
}

// TestNew_WindowValidation rejects windows escaping the lattice.
func TestNew_WindowValidation(t *testing.T) {
	sim := mmio.NewSim()
	dev, err := device.Open(device.WithMapper(sim))
	require.NoError(t, err)
	defer dev.Close()

	cases := []struct {
		name                 string
		startRow, startCol   int
		rows, cols           int
	}{
		{"ZeroRows", 0, 0, 0, 5},
		{"NegativeStart", -1, 0, 5, 5},
		{"RowOverflow", 125, 0, 5, 5},
		{"ColOverflow", 0, 62, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lightsout.New(dev, tc.startRow, tc.startCol, tc.rows, tc.cols)
			require.ErrorIs(t, err, lightsout.ErrBadWindow)
		})
	}

	// Touching the far edge is fine.
	_, err = lightsout.New(dev, 123, 59, 5, 5)
	require.NoError(t, err)
}

// TestClick_Center verifies the canonical cross on a 3×3 board: the
// center click lights exactly five cells, a second click clears them.
func TestClick_Center(t *testing.T) {
	e := newEngine(t, 0, 0, 3, 3)

	require.NoError(t, e.Click(1, 1))
	require.Equal(t, []int{
		0, 1, 0,
		1, 1, 1,
		0, 1, 0,
	}, e.Board())
	require.True(t, e.IsActive())

	require.NoError(t, e.Click(1, 1))
	require.Equal(t, make([]int, 9), e.Board())
	require.False(t, e.IsActive())
}

// TestClick_Corner verifies out-of-board neighbours are skipped: a
// corner click toggles the corner and its two in-bounds neighbours.
func TestClick_Corner(t *testing.T) {
	e := newEngine(t, 0, 0, 3, 3)

	require.NoError(t, e.Click(0, 0))
	require.Equal(t, []int{
		1, 1, 0,
		1, 0, 0,
		0, 0, 0,
	}, e.Board())
}

// TestClick_OutOfBounds verifies clicks outside the window are rejected
// without mutating the board.
func TestClick_OutOfBounds(t *testing.T) {
	e := newEngine(t, 0, 0, 3, 3)
	require.NoError(t, e.Click(1, 1))
	before := e.Board()

	for _, at := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {7, 7}} {
		require.ErrorIs(t, e.Click(at[0], at[1]), lightsout.ErrOutOfBounds)
	}
	require.Equal(t, before, e.Board())
}

// TestClick_AcrossTiles verifies the cross toggles correctly when the
// window straddles 8×8 tile boundaries.
func TestClick_AcrossTiles(t *testing.T) {
	e := newEngine(t, 6, 6, 5, 5)

	// (1,1) relative is lattice (7,7), the corner of four tiles'
	// meeting point for its cross.
	require.NoError(t, e.Click(1, 1))
	require.Equal(t, []int{
		0, 1, 0, 0, 0,
		1, 1, 1, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, e.Board())

	require.NoError(t, e.Click(1, 1))
	require.False(t, e.IsActive())
}

// TestReconstruct_RoundTrip verifies Reconstruct(Board()) is a no-op,
// both inside one tile and across tile boundaries.
func TestReconstruct_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name               string
		startRow, startCol int
	}{
		{"SingleTile", 0, 0},
		{"AcrossTiles", 5, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, tc.startRow, tc.startCol, 5, 5)
			require.NoError(t, e.Click(2, 2))
			require.NoError(t, e.Click(0, 4))

			before := e.Board()
			require.NoError(t, e.Reconstruct(before))
			require.Equal(t, before, e.Board())
		})
	}
}

// TestReconstruct_KeepsEveryCell verifies a multi-tile snapshot lands
// whole: each lattice word the window touches must carry all of its
// window rows after the write, not just the last one staged.
func TestReconstruct_KeepsEveryCell(t *testing.T) {
	// 5×5 window at (5,5) spans four lattice words.
	e := newEngine(t, 5, 5, 5, 5)

	want := make([]int, 25)
	for i := 0; i < 25; i += 3 {
		want[i] = 1
	}
	require.NoError(t, e.Reconstruct(want))
	require.Equal(t, want, e.Board())
}

// TestReconstruct_PreservesNeighbours verifies lattice bits that share
// a word with the window but sit outside it survive a reconstruct.
func TestReconstruct_PreservesNeighbours(t *testing.T) {
	dev, e := newEngineDev(t, 0, 0, 3, 3)

	// (5,5) lives in the window's word but outside the window.
	dev.SetBypass(true)
	require.NoError(t, dev.FlipBit(5, 5))
	dev.SetBypass(false)

	want := []int{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	require.NoError(t, e.Reconstruct(want))
	require.Equal(t, want, e.Board())

	on, err := dev.Bit(5, 5)
	require.NoError(t, err)
	require.True(t, on, "bit outside the window must survive")
}

// TestReconstruct_BadBoard rejects snapshots of the wrong size.
func TestReconstruct_BadBoard(t *testing.T) {
	e := newEngine(t, 0, 0, 3, 3)
	require.ErrorIs(t, e.Reconstruct(make([]int, 8)), lightsout.ErrBadBoard)
}

// TestReconstruct_WritesPattern verifies an arbitrary pattern lands.
func TestReconstruct_WritesPattern(t *testing.T) {
	e := newEngine(t, 0, 0, 4, 4)
	want := []int{
		1, 0, 0, 1,
		0, 1, 1, 0,
		0, 1, 1, 0,
		1, 0, 0, 1,
	}
	require.NoError(t, e.Reconstruct(want))
	require.Equal(t, want, e.Board())
}
