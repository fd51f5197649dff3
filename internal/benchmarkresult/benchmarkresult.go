// Package benchmarkresult defines BenchmarkResult, the per-command
// aggregate produced by the benchmark driver, and the statistics helpers
// used to build it.
package benchmarkresult

import (
	"math"
	"sort"

	"github.com/khmarbaise/hyperfine/internal/command"
	"github.com/khmarbaise/hyperfine/internal/warnings"
)

// Result is one command's finished benchmark: timing statistics, CPU
// means, exit codes, raw per-run times, and detected warnings.
type Result struct {
	Command    string
	Parameters []command.NameValue

	Runs   int
	Mean   float64
	Stddev *float64 // nil when Runs < 2
	Median float64
	Min    float64
	Max    float64

	MeanUser   float64
	MeanSystem float64

	ExitCodes []int
	Times     []float64
	Warnings  []warnings.Kind
}

// Aggregate builds a Result from the raw per-run data collected by the
// driver. Invariants held: min <= median <= max, min <= mean <= max,
// len(times) == runs, stddev >= 0.
func Aggregate(commandString string, parameters []command.NameValue, times, userTimes, systemTimes []float64, exitCodes []int, ignoreFailures bool) Result {
	n := len(times)
	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)

	var sum float64
	for _, t := range times {
		sum += t
	}
	mean := sum / float64(n)

	var userSum, systemSum float64
	for i := range userTimes {
		userSum += userTimes[i]
		systemSum += systemTimes[i]
	}

	result := Result{
		Command:    commandString,
		Parameters: parameters,
		Runs:       n,
		Mean:       mean,
		Median:     medianOf(sorted),
		Min:        sorted[0],
		Max:        sorted[n-1],
		MeanUser:   userSum / float64(n),
		MeanSystem: systemSum / float64(n),
		ExitCodes:  exitCodes,
		Times:      times,
	}

	if n >= 2 {
		stddev := sampleStddev(times, mean)
		result.Stddev = &stddev
	}

	result.Warnings = warnings.Detect(times, exitCodes, ignoreFailures)

	return result
}

func medianOf(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStddev computes the Bessel-corrected (n-1) sample standard
// deviation.
func sampleStddev(times []float64, mean float64) float64 {
	var sq float64
	for _, t := range times {
		d := t - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(times)-1))
}
