package typos

import (
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/typos/word"
)

// minChunk is the smallest slice of candidates handed to one worker.
const minChunk = 256

// expandTask scores one contiguous range of candidates against a word.
type expandTask struct {
	from       string
	candidates []string
	out        []Neighbor[string, word.Cost]
}

func (t expandTask) run() {
	for i, candidate := range t.candidates {
		t.out[i] = Neighbor[string, word.Cost]{ID: candidate, Cost: word.StepCost(t.from, candidate)}
	}
}

// expandNeighbors scores every candidate against from using up to workers
// goroutines. Each task writes its own range of the output, so the result
// order matches the candidate order whatever the worker count.
func expandNeighbors(from string, candidates []string, workers int) []Neighbor[string, word.Cost] {
	out := make([]Neighbor[string, word.Cost], len(candidates))
	if workers <= 1 || len(candidates) < 2*minChunk {
		expandTask{from: from, candidates: candidates, out: out}.run()
		return out
	}

	chunk := max(minChunk, (len(candidates)+workers-1)/workers)
	var group errgroup.Group
	group.SetLimit(workers)
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := min(lo+chunk, len(candidates))
		task := expandTask{from: from, candidates: candidates[lo:hi], out: out[lo:hi]}
		group.Go(func() error {
			task.run()
			return nil
		})
	}
	// tasks never return an error
	group.Wait() //nolint:errcheck
	return out
}
