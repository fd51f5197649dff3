package warnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contains(kinds []Kind, k Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

func TestDetectZeroMeasurement(t *testing.T) {
	found := Detect([]float64{0.01, 0.0, 0.02}, []int{0, 0, 0}, false)
	assert.True(t, contains(found, ZeroMeasurement))
}

func TestDetectFastExecutionTime(t *testing.T) {
	found := Detect([]float64{0.001, 0.002, 0.001}, []int{0, 0, 0}, false)
	assert.True(t, contains(found, FastExecutionTime))
}

func TestDetectSlowInitialRun(t *testing.T) {
	times := []float64{1.0, 0.1, 0.1, 0.1, 0.1}
	found := Detect(times, []int{0, 0, 0, 0, 0}, false)
	assert.True(t, contains(found, SlowInitialRun))
}

func TestDetectNoAnomaliesOnSmallClean(t *testing.T) {
	found := Detect([]float64{0.05}, []int{0}, false)
	assert.False(t, contains(found, OutliersDetected))
	assert.False(t, contains(found, FastExecutionTime))
	assert.False(t, contains(found, ZeroMeasurement))
}

func TestDetectOutliers(t *testing.T) {
	times := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 5.0}
	found := Detect(times, make([]int, len(times)), false)
	assert.True(t, contains(found, OutliersDetected))
}

func TestDetectNonZeroExitCodeOnlyWhenIgnoring(t *testing.T) {
	found := Detect([]float64{0.05}, []int{1}, false)
	assert.False(t, contains(found, NonZeroExitCode))
	found = Detect([]float64{0.05}, []int{1}, true)
	assert.True(t, contains(found, NonZeroExitCode))
}
