// Package relativespeed ranks a set of BenchmarkResults by mean wall time
// and computes each one's speed relative to the fastest, propagating
// uncertainty.
package relativespeed

import (
	"math"
	"sort"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
)

// Annotated pairs a Result with its relative speed (and, where both
// stddevs are known, the propagated stddev of that ratio; the fastest
// result always gets a stddev of 0).
type Annotated struct {
	Result        benchmarkresult.Result
	RelativeSpeed float64
	RelativeStdev *float64
}

// Compute ranks results ascending by mean and computes relative speeds
// against the fastest. Returns (nil, false) if any mean is <= 0 ("the
// comparison could not be computed").
func Compute(results []benchmarkresult.Result) ([]Annotated, bool) {
	for _, r := range results {
		if r.Mean <= 0 {
			return nil, false
		}
	}

	sorted := append([]benchmarkresult.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Mean < sorted[j].Mean })

	fastest := sorted[0]
	out := make([]Annotated, 0, len(sorted))
	zero := 0.0
	out = append(out, Annotated{Result: fastest, RelativeSpeed: 1.0, RelativeStdev: &zero})

	for _, r := range sorted[1:] {
		speed := r.Mean / fastest.Mean
		var stdev *float64
		if r.Stddev != nil && fastest.Stddev != nil {
			ri := *r.Stddev / r.Mean
			fi := *fastest.Stddev / fastest.Mean
			s := speed * math.Sqrt(ri*ri+fi*fi)
			stdev = &s
		}
		out = append(out, Annotated{Result: r, RelativeSpeed: speed, RelativeStdev: stdev})
	}

	return out, true
}
