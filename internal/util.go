package internal

import (
	"cmp"
	"slices"
)

// ReconstructPath follows parent links from current back to start and
// returns the path in start-to-current order. The walk stops early at a node
// without a parent.
func ReconstructPath[N comparable](parents map[N]N, current, start N) []N {
	path := []N{current}
	for current != start {
		previous, ok := parents[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}

// AppendRank returns ranks followed by rank. The result never shares memory
// with ranks.
func AppendRank(ranks []int, rank int) []int {
	return append(ranks[:len(ranks):len(ranks)], rank)
}

// CompareRanks compares prefix followed by rank with other, element by
// element. A proper prefix orders first, as with slices.Compare.
func CompareRanks(prefix []int, rank int, other []int) int {
	n := len(prefix)
	if c := slices.Compare(prefix, other[:min(n, len(other))]); c != 0 {
		return c
	}
	if len(other) == n {
		return 1
	}
	if c := cmp.Compare(rank, other[n]); c != 0 {
		return c
	}
	if len(other) == n+1 {
		return 0
	}
	return -1
}
