package cost

import (
	"fmt"
	"strings"
)

// Dimensions is the number of buckets in a Vector. Raising it supports longer
// single-step edits at the price of a larger value.
const Dimensions = 20

// Vector is a fixed-size cost with one counter per edit granularity.
// Bucket 0 is the least significant.
type Vector[U Scalar] struct {
	buckets [Dimensions]U
}

// Term is one non-zero bucket of a Vector: Count steps that each changed
// Letters letters.
type Term[U Scalar] struct {
	Count   U
	Letters int
}

// Zero returns the all-zero vector.
func Zero[U Scalar]() Vector[U] {
	return Vector[U]{}
}

// New returns a vector holding value at bucket, every other bucket zero.
// The bucket index is clamped into [0, Dimensions-1].
func New[U Scalar](value U, bucket int) Vector[U] {
	var v Vector[U]
	v.buckets[clampBucket(bucket)] = value
	return v
}

// Min returns the smallest vector. It equals Zero.
func Min[U Scalar]() Vector[U] {
	return New(U(0), 0)
}

// Max returns the largest vector: every bucket holds MaxScalar.
func Max[U Scalar]() Vector[U] {
	var v Vector[U]
	for i := range v.buckets {
		v.buckets[i] = MaxScalar[U]()
	}
	return v
}

// Add returns the per-bucket saturating sum of v and other.
func (v Vector[U]) Add(other Vector[U]) Vector[U] {
	for i, u := range other.buckets {
		v.buckets[i] = SaturatingAdd(v.buckets[i], u)
	}
	return v
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to or
// greater than other. Buckets are compared from the most significant down.
func (v Vector[U]) Compare(other Vector[U]) int {
	for i := Dimensions - 1; i >= 0; i-- {
		switch {
		case v.buckets[i] < other.buckets[i]:
			return -1
		case v.buckets[i] > other.buckets[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether v orders strictly before other.
func (v Vector[U]) Less(other Vector[U]) bool {
	return v.Compare(other) < 0
}

// IsZero reports whether every bucket is zero.
func (v Vector[U]) IsZero() bool {
	for _, u := range v.buckets {
		if u != 0 {
			return false
		}
	}
	return true
}

// Bucket returns the counter stored at the clamped bucket index.
func (v Vector[U]) Bucket(bucket int) U {
	return v.buckets[clampBucket(bucket)]
}

// Sparse lists the non-zero buckets, most significant first.
func (v Vector[U]) Sparse() []Term[U] {
	var terms []Term[U]
	for i := Dimensions - 1; i >= 0; i-- {
		if v.buckets[i] == 0 {
			continue
		}
		terms = append(terms, Term[U]{Count: v.buckets[i], Letters: i + 1})
	}
	return terms
}

// String renders the vector as a sum of mutations, for example
// "1 2-letter mutation + 2 1-letter mutation". The zero vector renders as
// "0 mutation".
func (v Vector[U]) String() string {
	terms := v.Sparse()
	if len(terms) == 0 {
		return "0 mutation"
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, fmt.Sprintf("%d %d-letter mutation", t.Count, t.Letters))
	}
	return strings.Join(parts, " + ")
}

func clampBucket(bucket int) int {
	return min(max(bucket, 0), Dimensions-1)
}
