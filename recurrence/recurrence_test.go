package recurrence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwru-phys-250/p250-spring-2019/recurrence"
)

// TestP_NegativeLength verifies that a negative n is rejected before any
// computation.
func TestP_NegativeLength(t *testing.T) {
	_, err := recurrence.P(-1)
	assert.ErrorIs(t, err, recurrence.ErrNegativeLength, "n<0 must error")

	_, err = recurrence.Q(-5)
	assert.ErrorIs(t, err, recurrence.ErrNegativeLength, "n<0 must error")

	_, err = recurrence.Reference(-1)
	assert.ErrorIs(t, err, recurrence.ErrNegativeLength, "n<0 must error")
}

// TestP_BoundaryLengths checks the n=0 and n=1 degenerate sequences.
func TestP_BoundaryLengths(t *testing.T) {
	p, err := recurrence.P(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, p, "n=0 must yield the single seed [1]")

	q, err := recurrence.Q(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, q, "n=0 must yield the single seed [1]")

	p, err = recurrence.P(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.0 / 3.0}, p, "n=1 must yield both seeds exactly")
}

// TestPQ_ExactSeeds verifies that both generators share the exact seeds
// 1 and 1/3 for any valid n ≥ 1.
func TestPQ_ExactSeeds(t *testing.T) {
	for _, n := range []int{1, 2, 10, 40} {
		p, err := recurrence.P(n)
		require.NoError(t, err)
		q, err := recurrence.Q(n)
		require.NoError(t, err)

		assert.Len(t, p, n+1, "P length must be n+1")
		assert.Len(t, q, n+1, "Q length must be n+1")
		assert.Equal(t, 1.0, p[0], "P seed 0")
		assert.Equal(t, 1.0, q[0], "Q seed 0")
		assert.Equal(t, 1.0/3.0, p[1], "P seed 1")
		assert.Equal(t, 1.0/3.0, q[1], "Q seed 1")
	}
}

// TestPQ_SmallN verifies the concrete n=4 values: both recurrences are
// still accurate approximations of 3⁻ʲ at small index.
func TestPQ_SmallN(t *testing.T) {
	want := []float64{1, 0.333333, 0.111111, 0.037037, 0.012346}

	p, err := recurrence.P(4)
	require.NoError(t, err)
	q, err := recurrence.Q(4)
	require.NoError(t, err)

	for j := range want {
		assert.InDelta(t, want[j], p[j], 1e-6, "P[%d]", j)
		assert.InDelta(t, p[j], q[j], 1e-10, "Q[%d] must still track P at small n", j)
	}
}

// TestReference_RoundTrip checks that the closed-form reference agrees
// with an independently computed floating power for j ≤ 50.
func TestReference_RoundTrip(t *testing.T) {
	ref, err := recurrence.Reference(50)
	require.NoError(t, err)

	for j := 0; j <= 50; j++ {
		direct := 1.0 / pow3(j)
		assert.InEpsilon(t, direct, ref[j], 1e-12, "reference mismatch at j=%d", j)
	}
}

// pow3 computes 3ʲ by repeated float multiplication, deliberately
// independent of both math.Pow and the recurrences.
func pow3(j int) float64 {
	v := 1.0
	for i := 0; i < j; i++ {
		v *= 3
	}

	return v
}
