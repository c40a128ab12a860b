package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// ExampleShortestPath finds the fewest button presses that light ".##." when
// each button toggles the listed indicator positions.
func ExampleShortestPath() {
	buttons, _ := transition.NewToggleFromPositions([][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}})
	target, _ := state.Encode(".##.")

	res, err := bfs.ShortestPath(buttons, 0, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("presses:", res.Steps)
	for _, i := range res.Ops {
		fmt.Println("press", buttons.Op(i).Positions())
	}
	// Output:
	// presses: 2
	// press [1 3]
	// press [2 3]
}

// ExampleShortestPath_noSolution shows the definite negative result.
func ExampleShortestPath_noSolution() {
	buttons, _ := transition.NewToggleFromPositions([][]int{{0, 1}, {1, 2}})
	target, _ := state.Encode("#..")

	_, err := bfs.ShortestPath(buttons, 0, target)
	fmt.Println(errors.Is(err, bfs.ErrNoSolution))
	// Output:
	// true
}
