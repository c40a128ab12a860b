package state_test

import (
	"fmt"

	"github.com/katalvlaran/bitsearch/state"
)

// ExampleApply toggles the indicator lights of ".##." with the operation {1,3}.
func ExampleApply() {
	lights, _ := state.Encode(".##.")
	op, _ := state.FromPositions(1, 3)

	next := state.Apply(lights, op)
	fmt.Println(next.Pattern(4), next.Positions())
	// Output:
	// ..## [2 3]
}
