package typos

import (
	"container/heap"

	"github.com/pdrpinto/typos/internal"
)

// StepSnapshot exposes the per-iteration state of a best-first search.
type StepSnapshot[N comparable, C any] struct {
	Current     N
	StepIndex   int
	OpenCount   int
	ClosedCount int
	Done        bool
	Found       bool
	Path        []N
	Cost        C
}

// Stepper runs best-first search one node expansion at a time.
// It is not safe for concurrent use.
type Stepper[N comparable, C Cost[C]] struct {
	graph     Graph[N, C]
	start     N
	heuristic Heuristic[N, C]
	goal      Goal[N]

	openSet    PriorityQueue[N, C]
	openSetMap map[N]*PriorityQueueItem[N, C]
	closedSet  map[N]bool
	cameFrom   map[N]N
	gScore     map[N]C
	ranks      map[N][]int

	stepCount int
	done      bool
	found     bool
	path      []N
	cost      C
	current   N
}

// NewStepper creates a stepper positioned before the first expansion of
// start. A nil heuristic searches by path cost alone.
func NewStepper[N comparable, C Cost[C]](
	graph Graph[N, C],
	start N,
	heuristic Heuristic[N, C],
	goal Goal[N],
) *Stepper[N, C] {
	if heuristic == nil {
		heuristic = zeroHeuristic[N, C]
	}

	var zero C
	s := &Stepper[N, C]{
		graph:      graph,
		start:      start,
		heuristic:  heuristic,
		goal:       goal,
		openSet:    make(PriorityQueue[N, C], 0),
		openSetMap: make(map[N]*PriorityQueueItem[N, C]),
		closedSet:  make(map[N]bool),
		cameFrom:   make(map[N]N),
		gScore:     map[N]C{start: zero},
		ranks:      map[N][]int{start: nil},
	}

	heap.Init(&s.openSet)
	s.push(start, zero, heuristic(start), nil)
	return s
}

// Done reports whether the search reached a terminal state.
func (s *Stepper[N, C]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the terminal snapshot.
func (s *Stepper[N, C]) Step() StepSnapshot[N, C] {
	for !s.done {
		if s.openSet.Len() == 0 {
			s.done = true
			break
		}

		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem[N, C])
		current := currentItem.Node
		delete(s.openSetMap, current)
		if s.closedSet[current] {
			continue
		}
		s.closedSet[current] = true
		s.stepCount++
		s.current = current

		if s.goal(current) {
			s.done = true
			s.found = true
			s.path = internal.ReconstructPath(s.cameFrom, current, s.start)
			s.cost = currentItem.GScore
			break
		}

		s.relax(current, currentItem.GScore)
		return s.snapshot()
	}

	return s.snapshot()
}

func (s *Stepper[N, C]) relax(current N, currentG C) {
	prefix := s.ranks[current]
	for rank, neighbor := range s.graph.Neighbors(current) {
		tentativeG := currentG.Add(neighbor.Cost)
		if previousG, seen := s.gScore[neighbor.ID]; seen &&
			!improves(tentativeG, prefix, rank, previousG, s.ranks[neighbor.ID]) {
			continue
		}
		ranks := internal.AppendRank(prefix, rank)
		s.gScore[neighbor.ID] = tentativeG
		s.ranks[neighbor.ID] = ranks
		s.cameFrom[neighbor.ID] = current

		f := tentativeG.Add(s.heuristic(neighbor.ID))
		if item, inOpen := s.openSetMap[neighbor.ID]; inOpen {
			item.GScore = tentativeG
			item.FCost = f
			item.Ranks = ranks
			heap.Fix(&s.openSet, item.IndexInQueue)
			continue
		}
		// a better label reopens a closed node
		delete(s.closedSet, neighbor.ID)
		s.push(neighbor.ID, tentativeG, f, ranks)
	}
}

func (s *Stepper[N, C]) push(node N, g, f C, ranks []int) {
	item := &PriorityQueueItem[N, C]{
		Node:   node,
		GScore: g,
		FCost:  f,
		Ranks:  ranks,
	}
	heap.Push(&s.openSet, item)
	s.openSetMap[node] = item
}

func (s *Stepper[N, C]) snapshot() StepSnapshot[N, C] {
	return StepSnapshot[N, C]{
		Current:     s.current,
		StepIndex:   s.stepCount,
		OpenCount:   len(s.openSetMap),
		ClosedCount: len(s.closedSet),
		Done:        s.done,
		Found:       s.found,
		Path:        s.path,
		Cost:        s.cost,
	}
}

func zeroHeuristic[N comparable, C any](N) C {
	var zero C
	return zero
}
