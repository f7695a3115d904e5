// Package kappa computes Fleiss' Kappa inter-rater agreement statistics
// for aggregated three-category survey responses and maps the resulting
// values onto the Landis & Koch (1977) qualitative agreement bands.
package kappa

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Counts holds the per-category response totals for a single question.
type Counts struct {
	A int
	B int
	C int
}

// Total returns the number of responses across all three categories.
func (c Counts) Total() int {
	return c.A + c.B + c.C
}

// RatingMatrix expands counts into a (total x 3) one-hot subject matrix:
// rows 0..A-1 mark column 0, the next B rows column 1, the final C rows
// column 2. Returns nil when the question has no responses.
//
// The kappa formula depends only on the total rating count, the sum of
// squared entries, and the column sums, so the value computed from this
// matrix is invariant under any reordering of its rows.
func RatingMatrix(c Counts) *mat.Dense {
	total := c.Total()
	if total == 0 {
		return nil
	}

	m := mat.NewDense(total, 3, nil)
	row := 0
	for i := 0; i < c.A; i++ {
		m.Set(row, 0, 1)
		row++
	}
	for i := 0; i < c.B; i++ {
		m.Set(row, 1, 1)
		row++
	}
	for i := 0; i < c.C; i++ {
		m.Set(row, 2, 1)
		row++
	}
	return m
}

// Compute calculates Fleiss' Kappa for a subject-by-category matrix of
// non-negative rating counts:
//
//	kappa = (P - Pe) / (1 - Pe)
//
// where P is the observed agreement, sum(entry^2) / (N * (n-1)), and Pe
// is the expected agreement by chance, sum(colSum^2) / N^2, with N the
// total number of ratings and n the number of subjects.
//
// Degenerate inputs resolve to NaN rather than an error: a nil or empty
// matrix, zero total ratings, a single subject (the n-1 divisor is zero),
// or Pe == 1 (zero-variance input, e.g. every rating in one category).
// The function is pure and never panics on non-negative input.
func Compute(m *mat.Dense) float64 {
	if m == nil {
		return math.NaN()
	}

	n, k := m.Dims()
	if n == 0 || k == 0 {
		return math.NaN()
	}

	var total, sumSq float64
	colSums := make([]float64, k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			v := m.At(i, j)
			total += v
			sumSq += v * v
			colSums[j] += v
		}
	}

	if total == 0 {
		return math.NaN()
	}
	if n == 1 {
		return math.NaN()
	}

	p := sumSq / (total * float64(n-1))

	var pe float64
	for _, cs := range colSums {
		pe += cs * cs
	}
	pe /= total * total

	if pe == 1 {
		return math.NaN()
	}
	return (p - pe) / (1 - pe)
}

// ComputeCounts is the closed-form reduction of Compute over the one-hot
// matrix RatingMatrix would build for c: every entry is 0 or 1, so the
// total rating count and the sum of squared entries both equal the number
// of responses, and the column sums are the counts themselves. It avoids
// materialising the matrix; RatingMatrix+Compute is kept as the reference
// path and the two are cross-checked in tests.
func ComputeCounts(c Counts) float64 {
	n := c.Total()
	if n == 0 || n == 1 {
		return math.NaN()
	}

	total := float64(n)
	p := total / (total * float64(n-1))

	a, b, cc := float64(c.A), float64(c.B), float64(c.C)
	pe := (a*a + b*b + cc*cc) / (total * total)

	if pe == 1 {
		return math.NaN()
	}
	return (p - pe) / (1 - pe)
}
