package typos_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdrpinto/typos"
	"github.com/pdrpinto/typos/word"
)

// ExampleFindShortestPath prefers two one-letter steps and a two-letter step
// over any ladder containing a three-letter jump.
func ExampleFindShortestPath() {
	candidates := []string{"banan", "table", "chaise", "lit", "banon"}

	result, err := typos.FindShortestPath(context.Background(), "banane", "ano", candidates, typos.BestFirst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (%s)\n", strings.Join(result.Path, "->"), result.Cost)
	// Output:
	// banane->banan->banon->ano (1 2-letter mutation + 2 1-letter mutation)
}

// ExampleNewStepper prints each expansion of a best-first search.
func ExampleNewStepper() {
	g := typos.NewWordGraph("banana", []string{"table", "banane"}, typos.WithWorkers(1))
	stepper := typos.NewStepper[string, word.Cost](g, "banane", g.Heuristic, g.IsGoal)
	for !stepper.Done() {
		snapshot := stepper.Step()
		fmt.Printf("step %d: %s (done=%t)\n", snapshot.StepIndex, snapshot.Current, snapshot.Done)
	}
	// Output:
	// step 1: banane (done=false)
	// step 2: banana (done=true)
}
