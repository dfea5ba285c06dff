package typos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/typos/word"
)

// ErrInconsistent is returned by Verify when algorithms disagree.
var ErrInconsistent = errors.New("typos: algorithms disagree")

// Ladder is the outcome of a word ladder search.
type Ladder = Result[string, word.Cost]

// WordGraph is the implicit complete graph over a candidate list. Every
// candidate is a neighbor of every word, weighted by word.StepCost.
// It is read-only and safe for concurrent searches.
type WordGraph struct {
	target     string
	candidates []string
	workers    int
}

// NewWordGraph builds the graph for reaching target. The target is prepended
// to the candidates so that it is always reachable; duplicates are kept.
func NewWordGraph(target string, candidates []string, options ...Option) *WordGraph {
	all := make([]string, 0, len(candidates)+1)
	all = append(all, target)
	all = append(all, candidates...)
	return &WordGraph{
		target:     target,
		candidates: all,
		workers:    buildOptions(options).NumberOfWorkers,
	}
}

// Neighbors returns every candidate, the word itself included, with the cost
// of the step from word. Candidate order is preserved.
func (g *WordGraph) Neighbors(from string) []Neighbor[string, word.Cost] {
	return expandNeighbors(from, g.candidates, g.workers)
}

// Heuristic is the edit distance from w to the target.
func (g *WordGraph) Heuristic(w string) word.Cost {
	return word.Distance(w, g.target)
}

// IsGoal reports whether w is the target.
func (g *WordGraph) IsGoal(w string) bool {
	return w == g.target
}

// Candidates returns the candidate list, target first.
func (g *WordGraph) Candidates() []string {
	return slices.Clone(g.candidates)
}

// FindShortestPath searches for the cheapest ladder from start to target
// through candidates. Words are compared as given; callers normalize case.
func FindShortestPath(
	ctx context.Context,
	start, target string,
	candidates []string,
	algorithm Algorithm,
	options ...Option,
) (Ladder, error) {
	ctx, span := tracer.Start(ctx, "typos.FindShortestPath", trace.WithAttributes(
		attribute.String("target", target),
		attribute.Int("candidates", len(candidates)),
	))
	defer span.End()

	graph := NewWordGraph(target, candidates, options...)
	return Search[string, word.Cost](ctx, algorithm, graph, start, graph.Heuristic, graph.IsGoal, options...)
}

// Verify runs every algorithm concurrently on the same input and checks that
// they agree on whether a ladder exists, on its path and on its cost.
// The per-algorithm results are returned even when they disagree.
func Verify(
	ctx context.Context,
	start, target string,
	candidates []string,
	options ...Option,
) (map[Algorithm]Ladder, error) {
	graph := NewWordGraph(target, candidates, options...)
	logger := buildOptions(options).Logger

	var mu sync.Mutex
	results := make(map[Algorithm]Ladder, len(Algorithms()))
	group, groupCtx := errgroup.WithContext(ctx)
	for _, algorithm := range Algorithms() {
		group.Go(func() error {
			result, err := Search[string, word.Cost](groupCtx, algorithm, graph, start, graph.Heuristic, graph.IsGoal, options...)
			if err != nil {
				return fmt.Errorf("%s: %w", algorithm, err)
			}
			mu.Lock()
			results[algorithm] = result
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}

	reference := results[UniformCost]
	for _, algorithm := range Algorithms() {
		result := results[algorithm]
		if result.Found != reference.Found || result.Cost != reference.Cost || !slices.Equal(result.Path, reference.Path) {
			logger.WarnContext(ctx, "verify: algorithms disagree",
				slog.String("algorithm", algorithm.String()),
				slog.Any("path", result.Path),
				slog.String("cost", result.Cost.String()),
				slog.Any("reference_path", reference.Path),
				slog.String("reference_cost", reference.Cost.String()),
			)
			return results, fmt.Errorf("%w: %s found %v (%s), %s found %v (%s)", ErrInconsistent,
				algorithm, result.Path, result.Cost, UniformCost, reference.Path, reference.Cost)
		}
	}
	return results, nil
}
