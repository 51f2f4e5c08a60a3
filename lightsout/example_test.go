package lightsout_test

import (
	"fmt"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/lightsout"
	"github.com/neuromorph/ained/mmio"
)

// Example plays a two-click game on a simulated 3×3 sub-board.
func Example() {
	sim := mmio.NewSim()
	dev, err := device.Open(device.WithMapper(sim))
	if err != nil {
		fmt.Println("open:", err)
		return
	}
	defer dev.Close()
	dev.ClearMemory()

	game, err := lightsout.New(dev, 0, 0, 3, 3)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	_ = game.Click(1, 1)
	fmt.Println("lit after centre click:", litCount(game.Board()))

	_ = game.Click(1, 1)
	fmt.Println("active after undo:", game.IsActive())

	// Output:
	// lit after centre click: 5
	// active after undo: false
}

func litCount(board []int) int {
	n := 0
	for _, v := range board {
		n += v
	}
	return n
}
