package kappa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRatingMatrixShape(t *testing.T) {
	c := Counts{A: 3, B: 2, C: 1}
	m := RatingMatrix(c)
	require.NotNil(t, m)

	rows, cols := m.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 3, cols)

	// A-block, then B-block, then C-block, each row one-hot.
	wantCol := []int{0, 0, 0, 1, 1, 2}
	for i := 0; i < rows; i++ {
		rowSum := 0.0
		for j := 0; j < cols; j++ {
			rowSum += m.At(i, j)
		}
		assert.Equal(t, 1.0, rowSum, "row %d should sum to 1", i)
		assert.Equal(t, 1.0, m.At(i, wantCol[i]), "row %d should mark column %d", i, wantCol[i])
	}
}

func TestRatingMatrixColumnSums(t *testing.T) {
	c := Counts{A: 7, B: 4, C: 9}
	m := RatingMatrix(c)
	require.NotNil(t, m)

	var colSums [3]float64
	var total float64
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < 3; j++ {
			colSums[j] += m.At(i, j)
			total += m.At(i, j)
		}
	}

	assert.Equal(t, float64(c.A), colSums[0])
	assert.Equal(t, float64(c.B), colSums[1])
	assert.Equal(t, float64(c.C), colSums[2])
	assert.Equal(t, float64(c.Total()), total)
}

func TestRatingMatrixZeroResponses(t *testing.T) {
	assert.Nil(t, RatingMatrix(Counts{}))
}

func TestComputeZeroResponses(t *testing.T) {
	assert.True(t, math.IsNaN(Compute(RatingMatrix(Counts{}))))
	assert.True(t, math.IsNaN(Compute(nil)))
	assert.True(t, math.IsNaN(ComputeCounts(Counts{})))
}

func TestComputeSingleRespondent(t *testing.T) {
	// n == 1 makes the n-1 divisor zero; guarded to NaN.
	assert.True(t, math.IsNaN(Compute(RatingMatrix(Counts{B: 1}))))
	assert.True(t, math.IsNaN(ComputeCounts(Counts{B: 1})))
}

func TestComputeUnanimousAgreement(t *testing.T) {
	// Every response in one category gives Pe == 1, which the source
	// formula treats as undefined rather than perfect agreement.
	c := Counts{A: 10}
	k := ComputeCounts(c)
	assert.True(t, math.IsNaN(k))
	assert.True(t, math.IsNaN(Compute(RatingMatrix(c))))
	assert.Equal(t, NoData, Interpret(k))
}

func TestComputeEvenSplit(t *testing.T) {
	// A=5, B=5: P = 1/9, Pe = 1/2, kappa = (1/9 - 1/2)/(1/2) = -7/9.
	c := Counts{A: 5, B: 5}
	want := -7.0 / 9.0

	assert.InDelta(t, want, ComputeCounts(c), 1e-9)
	assert.InDelta(t, want, Compute(RatingMatrix(c)), 1e-9)
}

func TestComputeGeneralCounts(t *testing.T) {
	// The formula supports arbitrary non-negative counts, not just
	// one-hot rows: N=6, sum(entry^2)=14, P=7/3, Pe=5/9, kappa=4.
	m := mat.NewDense(2, 3, []float64{
		2, 1, 0,
		0, 3, 0,
	})
	assert.InDelta(t, 4.0, Compute(m), 1e-12)
}

func TestComputePermutationInvariance(t *testing.T) {
	c := Counts{A: 4, B: 3, C: 3}
	m := RatingMatrix(c)
	require.NotNil(t, m)
	want := Compute(m)

	rows, cols := m.Dims()
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		perm := rng.Perm(rows)
		shuffled := mat.NewDense(rows, cols, nil)
		for i, p := range perm {
			for j := 0; j < cols; j++ {
				shuffled.Set(i, j, m.At(p, j))
			}
		}
		// Entries are all 0/1, so the sums involved are exact and the
		// reordered value is identical, not merely close.
		assert.Equal(t, want, Compute(shuffled), "permutation %d changed kappa", trial)
	}
}

func TestClosedFormMatchesMatrixPath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		c := Counts{A: rng.Intn(20), B: rng.Intn(20), C: rng.Intn(20)}

		fromMatrix := Compute(RatingMatrix(c))
		fromCounts := ComputeCounts(c)

		if math.IsNaN(fromMatrix) {
			assert.True(t, math.IsNaN(fromCounts), "counts %+v: matrix path NaN but closed form %v", c, fromCounts)
			continue
		}
		assert.Equal(t, fromMatrix, fromCounts, "counts %+v", c)
	}
}
