// Package word derives path costs from the Levenshtein distance between two
// words.
//
// Distance is a true metric and serves as an admissible heuristic. StepCost
// is the cost of a single ladder step: one unit recorded at the granularity of
// the edit, so a chain of one-letter steps is cheaper than a single large
// jump even when the jump is shorter in raw edit distance.
package word

import (
	"github.com/pdrpinto/typos/cost"
)

// EditDistance is the counter type used in word costs.
type EditDistance = uint8

// Cost is the path cost between words.
type Cost = cost.Vector[EditDistance]

// Distance returns the Levenshtein distance between a and b, clamped to
// cost.Dimensions-1 and stored in the least significant bucket.
func Distance(a, b string) Cost {
	d := min(Levenshtein(a, b), cost.Dimensions-1)
	return cost.New(EditDistance(d), 0)
}

// StepCost returns the cost of moving from a to b in one step. Identical
// words cost cost.Min. Otherwise the step costs one unit in the bucket
// matching the number of letters changed.
func StepCost(a, b string) Cost {
	d := Levenshtein(a, b)
	if d == 0 {
		return cost.Min[EditDistance]()
	}
	return cost.New(EditDistance(1), min(d, cost.Dimensions)-1)
}

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions that turn source into target.
func Levenshtein(source, target string) int {
	sr := []rune(source)
	tr := []rune(target)
	if len(sr) == 0 {
		return len(tr)
	}
	if len(tr) == 0 {
		return len(sr)
	}

	prevRow := make([]int, len(tr)+1)
	curRow := make([]int, len(tr)+1)
	for j := range prevRow {
		prevRow[j] = j
	}

	for i := 1; i <= len(sr); i++ {
		curRow[0] = i
		for j := 1; j <= len(tr); j++ {
			substitution := prevRow[j-1]
			if sr[i-1] != tr[j-1] {
				substitution++
			}
			curRow[j] = min(prevRow[j]+1, curRow[j-1]+1, substitution)
		}
		prevRow, curRow = curRow, prevRow
	}

	return prevRow[len(tr)]
}
