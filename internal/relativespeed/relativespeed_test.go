package relativespeed

import (
	"testing"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stddevPtr(v float64) *float64 { return &v }

func TestComputeFastestIsBaseline(t *testing.T) {
	results := []benchmarkresult.Result{
		{Command: "a", Mean: 1.0, Stddev: stddevPtr(0.1)},
		{Command: "b", Mean: 2.0, Stddev: stddevPtr(0.2)},
	}
	annotated, ok := Compute(results)
	require.True(t, ok)
	require.Len(t, annotated, 2)

	assert.Equal(t, "a", annotated[0].Result.Command)
	assert.Equal(t, 1.0, annotated[0].RelativeSpeed)
	require.NotNil(t, annotated[0].RelativeStdev)
	assert.Equal(t, 0.0, *annotated[0].RelativeStdev)

	assert.Equal(t, "b", annotated[1].Result.Command)
	assert.InDelta(t, 2.0, annotated[1].RelativeSpeed, 1e-9)
	require.NotNil(t, annotated[1].RelativeStdev)
	assert.InDelta(t, 0.2828, *annotated[1].RelativeStdev, 1e-3)
}

func TestComputeUncomputableOnZeroMean(t *testing.T) {
	results := []benchmarkresult.Result{
		{Command: "a", Mean: 0},
		{Command: "b", Mean: 2.0},
	}
	_, ok := Compute(results)
	assert.False(t, ok)
}

func TestComputeMissingStddevOmitsPropagation(t *testing.T) {
	results := []benchmarkresult.Result{
		{Command: "a", Mean: 1.0},
		{Command: "b", Mean: 2.0},
	}
	annotated, ok := Compute(results)
	require.True(t, ok)
	assert.Nil(t, annotated[1].RelativeStdev)
}
