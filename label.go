package typos

import "github.com/pdrpinto/typos/internal"

// A path label is its cost plus its ranks: the position of each edge in the
// Neighbors list it was taken from, starting at the start node. Labels order
// by cost, then lexicographically by ranks, so among equally cheap paths
// every algorithm settles on the same one whatever order it explores in.

// improves reports whether the path ending with the edge at position rank
// after prefix, at cost g, orders before the known label of the same node.
func improves[C Cost[C]](g C, prefix []int, rank int, knownG C, known []int) bool {
	if c := g.Compare(knownG); c != 0 {
		return c < 0
	}
	return internal.CompareRanks(prefix, rank, known) < 0
}
