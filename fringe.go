package typos

import (
	"container/list"
	"context"
	"log/slog"

	"github.com/pdrpinto/typos/internal"
)

// FringeSearch runs fringe search. Nodes whose cost plus heuristic exceeds
// the current threshold move from the now list to the later list; when now
// runs dry the lists swap and the threshold rises to the smallest deferred
// value. Unlike IDAStar, best known costs are cached so nothing is searched
// twice within a round.
//
// A goal within the threshold does not stop the round: the remaining nodes
// may still reach a goal by an equally cheap path with smaller edge
// positions. The best goal label is returned once the round is over.
func FringeSearch[N comparable, C Cost[C]](
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
	ctx, done := observe[N, C](ctx, Fringe, start, searchOptions.Logger)
	defer func() { done(&result, &err) }()

	f := &fringe[N, C]{
		now:     list.New(),
		later:   list.New(),
		cache:   make(map[N]*fringeEntry[N, C]),
		parents: make(map[N]N),
	}
	expansions := budget{ctx: ctx, max: searchOptions.MaxExpansions}

	var zero C
	f.insertFront(start, zero, nil)
	threshold := heuristic(start)

	var (
		found    bool
		goalNode N
	)
	for round := 1; f.now.Len() > 0; round++ {
		var nextThreshold C
		deferred := false

		for f.now.Len() > 0 {
			node := f.popFront()
			entry := f.cache[node]
			fCost := entry.g.Add(heuristic(node))
			if fCost.Compare(threshold) > 0 {
				if !deferred || fCost.Compare(nextThreshold) < 0 {
					nextThreshold = fCost
					deferred = true
				}
				entry.element = f.later.PushBack(node)
				entry.list = f.later
				continue
			}

			if goal(node) {
				if !found || compareLabels(entry.g, entry.ranks, f.cache[goalNode].g, f.cache[goalNode].ranks) <= 0 {
					goalNode = node
					found = true
				}
				continue
			}
			if err := expansions.expand(); err != nil {
				return Result[N, C]{Expanded: expansions.expanded}, err
			}

			// walk backwards so that pushing to the front keeps neighbor order
			neighbors := graph.Neighbors(node)
			for rank := len(neighbors) - 1; rank >= 0; rank-- {
				neighbor := neighbors[rank]
				g := entry.g.Add(neighbor.Cost)
				if cached, ok := f.cache[neighbor.ID]; ok && !improves(g, entry.ranks, rank, cached.g, cached.ranks) {
					continue
				}
				f.parents[neighbor.ID] = node
				f.insertFront(neighbor.ID, g, internal.AppendRank(entry.ranks, rank))
			}
		}

		if found {
			return Result[N, C]{
				Path:     internal.ReconstructPath(f.parents, goalNode, start),
				Cost:     f.cache[goalNode].g,
				Expanded: expansions.expanded,
				Found:    true,
			}, nil
		}
		if !deferred {
			break
		}
		searchOptions.Logger.DebugContext(ctx, "fringe: raising threshold",
			slog.Int("round", round),
			slog.Int("deferred", f.later.Len()),
			slog.Int("expanded", expansions.expanded),
		)
		f.now, f.later = f.later, f.now
		threshold = nextThreshold
	}

	return Result[N, C]{Expanded: expansions.expanded}, nil
}

type fringe[N comparable, C Cost[C]] struct {
	now     *list.List
	later   *list.List
	cache   map[N]*fringeEntry[N, C]
	parents map[N]N
}

// fringeEntry is the best known label of a node and its position in the now
// or later list, if any.
type fringeEntry[N comparable, C any] struct {
	g       C
	ranks   []int
	element *list.Element
	list    *list.List
}

// insertFront records the label of node and moves it to the front of now.
func (f *fringe[N, C]) insertFront(node N, g C, ranks []int) {
	entry, ok := f.cache[node]
	if !ok {
		entry = &fringeEntry[N, C]{}
		f.cache[node] = entry
	}
	if entry.element != nil {
		entry.list.Remove(entry.element)
	}
	entry.g = g
	entry.ranks = ranks
	entry.element = f.now.PushFront(node)
	entry.list = f.now
}

func (f *fringe[N, C]) popFront() N {
	element := f.now.Front()
	node := f.now.Remove(element).(N)
	entry := f.cache[node]
	entry.element = nil
	entry.list = nil
	return node
}
