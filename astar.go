package typos

import (
	"context"
)

// AStar runs best-first search ordered by accumulated cost plus heuristic.
// With an admissible heuristic the returned path is optimal.
func AStar[N comparable, C Cost[C]](
	ctx context.Context,
	graph Graph[N, C],
	start N,
	heuristic Heuristic[N, C],
	goal Goal[N],
	options ...Option,
) (result Result[N, C], err error) {
	return bestFirst(ctx, BestFirst, graph, start, heuristic, goal, options)
}

// Dijkstra runs uniform-cost search: best-first search without heuristic.
// It is optimal regardless of heuristic quality.
func Dijkstra[N comparable, C Cost[C]](
	ctx context.Context,
	graph Graph[N, C],
	start N,
	goal Goal[N],
	options ...Option,
) (result Result[N, C], err error) {
	return bestFirst(ctx, UniformCost, graph, start, nil, goal, options)
}

func bestFirst[N comparable, C Cost[C]](
	ctx context.Context,
	algorithm Algorithm,
	graph Graph[N, C],
	start N,
	heuristic Heuristic[N, C],
	goal Goal[N],
	options []Option,
) (result Result[N, C], err error) {
	searchOptions := buildOptions(options)
	ctx, done := observe[N, C](ctx, algorithm, start, searchOptions.Logger)
	defer func() { done(&result, &err) }()

	expansions := budget{ctx: ctx, max: searchOptions.MaxExpansions}
	stepper := NewStepper(graph, start, heuristic, goal)
	for {
		snapshot := stepper.Step()
		result.Expanded = snapshot.StepIndex
		if snapshot.Done {
			if snapshot.Found {
				result.Path = snapshot.Path
				result.Cost = snapshot.Cost
				result.Found = true
			}
			return result, nil
		}
		if err := expansions.expand(); err != nil {
			return Result[N, C]{Expanded: result.Expanded}, err
		}
	}
}
