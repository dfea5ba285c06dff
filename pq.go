package typos

import "slices"

type PriorityQueueItem[N comparable, C Cost[C]] struct {
	Node         N
	GScore       C
	FCost        C
	Ranks        []int
	IndexInQueue int
}

// PriorityQueue orders items by FCost, then by path label (GScore, then
// Ranks). Popping the cheaper g first on equal f means a node's optimal
// predecessors are expanded before it under a consistent heuristic.
type PriorityQueue[N comparable, C Cost[C]] []*PriorityQueueItem[N, C]

func (queue PriorityQueue[N, C]) Len() int { return len(queue) }

func (queue PriorityQueue[N, C]) Less(i, j int) bool {
	if c := queue[i].FCost.Compare(queue[j].FCost); c != 0 {
		return c < 0
	}
	return compareLabels(queue[i].GScore, queue[i].Ranks, queue[j].GScore, queue[j].Ranks) < 0
}

func (queue PriorityQueue[N, C]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[N, C]) Push(x any) {
	item := x.(*PriorityQueueItem[N, C])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[N, C]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// compareLabels orders two paths by cost, then by the positions of their
// edges in the Neighbors lists walked from the start.
func compareLabels[C Cost[C]](g C, ranks []int, otherG C, otherRanks []int) int {
	if c := g.Compare(otherG); c != 0 {
		return c
	}
	return slices.Compare(ranks, otherRanks)
}
