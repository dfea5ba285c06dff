package typos

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
)

// IDAStar runs iterative-deepening A*. Each round is a depth-first search
// that prunes nodes whose cost plus heuristic exceeds the bound; the next
// round raises the bound to the smallest value that was pruned. Memory use
// is linear in the path length, plus one entry per dead end once the
// optimal cost is known.
//
// Rounds visit successors cheapest f first. When a round reaches the goal,
// one more depth-first pass at that bound walks successors in Neighbors
// order, so the returned path is the optimal one whose edge positions are
// lexicographically smallest.
func IDAStar[N comparable, C Cost[C]](
	ctx context.Context,
	graph Graph[N, C],
	start N,
	heuristic Heuristic[N, C],
	goal Goal[N],
	options ...Option,
) (result Result[N, C], err error) {
	searchOptions := buildOptions(options)
	if heuristic == nil {
		heuristic = zeroHeuristic[N, C]
	}
	ctx, done := observe[N, C](ctx, IterativeDeepening, start, searchOptions.Logger)
	defer func() { done(&result, &err) }()

	r := &idaRunner[N, C]{
		graph:     graph,
		heuristic: heuristic,
		goal:      goal,
		path:      []N{start},
		onPath:    map[N]bool{start: true},
		budget:    budget{ctx: ctx, max: searchOptions.MaxExpansions},
	}

	var zero C
	bound := heuristic(start)
	for round := 1; ; round++ {
		outcome, err := r.search(zero, bound)
		if err != nil {
			return Result[N, C]{Expanded: r.budget.expanded}, err
		}
		if outcome.found {
			path, err := r.settle(start, outcome.cost)
			if err != nil {
				return Result[N, C]{Expanded: r.budget.expanded}, err
			}
			return Result[N, C]{
				Path:     path,
				Cost:     outcome.cost,
				Expanded: r.budget.expanded,
				Found:    true,
			}, nil
		}
		if !outcome.pruned {
			return Result[N, C]{Expanded: r.budget.expanded}, nil
		}
		searchOptions.Logger.DebugContext(ctx, "idastar: raising bound",
			slog.Int("round", round),
			slog.Int("expanded", r.budget.expanded),
		)
		bound = outcome.nextBound
	}
}

type idaRunner[N comparable, C Cost[C]] struct {
	graph     Graph[N, C]
	heuristic Heuristic[N, C]
	goal      Goal[N]
	path      []N
	onPath    map[N]bool
	budget    budget
}

// idaOutcome is the result of one bounded depth-first search. When found is
// unset and pruned is set, nextBound is the smallest f that exceeded the
// bound.
type idaOutcome[C any] struct {
	found     bool
	cost      C
	pruned    bool
	nextBound C
}

type idaSuccessor[N comparable, C any] struct {
	node N
	g    C
	f    C
	rank int
}

func (r *idaRunner[N, C]) search(g, bound C) (idaOutcome[C], error) {
	node := r.path[len(r.path)-1]
	f := g.Add(r.heuristic(node))
	if f.Compare(bound) > 0 {
		return idaOutcome[C]{pruned: true, nextBound: f}, nil
	}
	if r.goal(node) {
		return idaOutcome[C]{found: true, cost: g}, nil
	}
	if err := r.budget.expand(); err != nil {
		return idaOutcome[C]{}, err
	}

	successors := r.successors(node, g)
	slices.SortStableFunc(successors, func(a, b idaSuccessor[N, C]) int {
		return a.f.Compare(b.f)
	})

	var best idaOutcome[C]
	for _, successor := range successors {
		r.push(successor.node)
		outcome, err := r.search(successor.g, bound)
		if err != nil || outcome.found {
			return outcome, err
		}
		r.pop()

		if outcome.pruned && (!best.pruned || outcome.nextBound.Compare(best.nextBound) < 0) {
			best.pruned = true
			best.nextBound = outcome.nextBound
		}
	}
	return best, nil
}

// settle restarts from start and returns the first path, in Neighbors
// order, that reaches a goal within optimal.
func (r *idaRunner[N, C]) settle(start N, optimal C) ([]N, error) {
	found := slices.Clone(r.path)
	r.path = append(r.path[:0], start)
	clear(r.onPath)
	r.onPath[start] = true

	var zero C
	ok, err := r.walk(zero, optimal, make(map[N]C))
	if err != nil {
		return nil, err
	}
	if !ok {
		return found, nil
	}
	return slices.Clone(r.path), nil
}

// walk is the depth-first pass behind settle. dead records the lowest cost
// at which a node led to no goal within optimal; reaching it again at that
// cost or more cannot do better.
func (r *idaRunner[N, C]) walk(g, optimal C, dead map[N]C) (bool, error) {
	node := r.path[len(r.path)-1]
	if g.Add(r.heuristic(node)).Compare(optimal) > 0 {
		return false, nil
	}
	if r.goal(node) {
		return true, nil
	}
	if known, ok := dead[node]; ok && g.Compare(known) >= 0 {
		return false, nil
	}
	if err := r.budget.expand(); err != nil {
		return false, err
	}

	successors := r.successors(node, g)
	slices.SortFunc(successors, func(a, b idaSuccessor[N, C]) int {
		return cmp.Compare(a.rank, b.rank)
	})
	for _, successor := range successors {
		r.push(successor.node)
		found, err := r.walk(successor.g, optimal, dead)
		if err != nil || found {
			return found, err
		}
		r.pop()
	}

	if known, ok := dead[node]; !ok || g.Compare(known) < 0 {
		dead[node] = g
	}
	return false, nil
}

// successors lists the neighbors of node that are off the current path, in
// Neighbors order.
func (r *idaRunner[N, C]) successors(node N, g C) []idaSuccessor[N, C] {
	neighbors := r.graph.Neighbors(node)
	successors := make([]idaSuccessor[N, C], 0, len(neighbors))
	index := make(map[N]int, len(neighbors))
	for rank, neighbor := range neighbors {
		if r.onPath[neighbor.ID] {
			continue
		}
		successorG := g.Add(neighbor.Cost)
		if i, seen := index[neighbor.ID]; seen {
			// parallel edges: keep the cheapest, earliest on ties
			if successorG.Compare(successors[i].g) < 0 {
				successors[i].g = successorG
				successors[i].f = successorG.Add(r.heuristic(neighbor.ID))
				successors[i].rank = rank
			}
			continue
		}
		index[neighbor.ID] = len(successors)
		successors = append(successors, idaSuccessor[N, C]{
			node: neighbor.ID,
			g:    successorG,
			f:    successorG.Add(r.heuristic(neighbor.ID)),
			rank: rank,
		})
	}
	return successors
}

func (r *idaRunner[N, C]) push(node N) {
	r.path = append(r.path, node)
	r.onPath[node] = true
}

func (r *idaRunner[N, C]) pop() {
	delete(r.onPath, r.path[len(r.path)-1])
	r.path = r.path[:len(r.path)-1]
}
