package benchmarkresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateInvariants(t *testing.T) {
	times := []float64{0.10, 0.12, 0.09, 0.11, 0.13}
	r := Aggregate("echo hi", nil, times, times, times, []int{0, 0, 0, 0, 0}, false)

	require.Len(t, r.Times, r.Runs)
	assert.LessOrEqual(t, r.Min, r.Median)
	assert.LessOrEqual(t, r.Median, r.Max)
	assert.LessOrEqual(t, r.Min, r.Mean)
	assert.LessOrEqual(t, r.Mean, r.Max)
	require.NotNil(t, r.Stddev)
	assert.GreaterOrEqual(t, *r.Stddev, 0.0)
}

func TestAggregateSingleRunHasNoStddev(t *testing.T) {
	r := Aggregate("echo hi", nil, []float64{0.1}, []float64{0.1}, []float64{0.0}, []int{0}, false)
	assert.Nil(t, r.Stddev)
	assert.Equal(t, 1, r.Runs)
}

func TestAggregateEvenMedianIsAverageOfMiddleTwo(t *testing.T) {
	r := Aggregate("echo hi", nil, []float64{1, 2, 3, 4}, []float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}, []int{0, 0, 0, 0}, false)
	assert.Equal(t, 2.5, r.Median)
}

func TestAggregateDuplicationPreservesMeanAndMinMax(t *testing.T) {
	times := []float64{0.1, 0.2, 0.3}
	doubled := append(append([]float64{}, times...), times...)
	r1 := Aggregate("x", nil, times, times, times, []int{0, 0, 0}, false)
	r2 := Aggregate("x", nil, doubled, doubled, doubled, []int{0, 0, 0, 0, 0, 0}, false)

	assert.InDelta(t, r1.Mean, r2.Mean, 1e-12)
	assert.Equal(t, r1.Min, r2.Min)
	assert.Equal(t, r1.Max, r2.Max)
}
