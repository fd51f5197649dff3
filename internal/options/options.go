// Package options defines HyperfineOptions, the immutable configuration
// assembled once from CLI flags before any benchmark runs.
package options

import (
	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/khmarbaise/hyperfine/internal/shellopt"
	"github.com/khmarbaise/hyperfine/internal/units"
	"github.com/pkg/errors"
)

// FailureAction controls what happens when a measured run exits non-zero.
type FailureAction int

const (
	RaiseError FailureAction = iota
	Ignore
)

// OutputStyle controls the amount/color of interactive console output.
type OutputStyle int

const (
	Full OutputStyle = iota
	Basic
	NoColor
	Color
	Disabled
)

// RunBounds is the measured-run-count window.
type RunBounds struct {
	Min uint64
	Max *uint64 // nil means "unbounded, governed by MinBenchmarkingTimeSeconds"
}

// Options is the full, immutable configuration for one hyperfine
// invocation.
type Options struct {
	WarmupCount  uint64
	Runs         RunBounds
	MinBenchmarkingTimeSeconds float64

	SetupCommand        string
	PreparationCommands  []string // len 1 (shared) or len N (one per command)
	CleanupCommand       string

	FailureAction FailureAction
	OutputStyle   OutputStyle
	Shell         shellopt.Option
	ShowOutput    bool
	TimeUnit      units.Unit
}

// Default returns the zero-value defaults matching spec.md §3: no
// warmups, min-runs 10, no max, 3 second time budget, shell spawn via the
// platform default shell.
func Default() Options {
	return Options{
		WarmupCount:                0,
		Runs:                       RunBounds{Min: 10},
		MinBenchmarkingTimeSeconds: 3.0,
		FailureAction:              RaiseError,
		OutputStyle:                Basic,
		Shell:                      shellopt.Default(),
		TimeUnit:                   units.Auto,
	}
}

// Validate checks cross-field invariants not expressible per-flag,
// returning a cmderr.UserInput error on violation.
func (o Options) Validate() error {
	if o.Runs.Max != nil && o.Runs.Min > *o.Runs.Max {
		return cmderr.New(cmderr.UserInput, "empty runs range: --min-runs is greater than --max-runs")
	}
	if o.Runs.Min == 0 {
		return cmderr.New(cmderr.UserInput, "--min-runs must be at least 1")
	}
	return nil
}

// ValidatePreparationCount checks the "--prepare" 1-or-N rule against the
// number of benchmarked commands.
func ValidatePreparationCount(preparationCommands []string, commandCount int) error {
	if len(preparationCommands) > 1 && len(preparationCommands) != commandCount {
		return cmderr.New(cmderr.UserInput, errors.New(
			"the '--prepare' option has to be provided just once or N times, "+
				"where N is the number of benchmark commands").Error())
	}
	return nil
}

// PreparationCommandFor returns the preparation command to run before
// warmups/runs of command index i, or "" if none configured.
func PreparationCommandFor(preparationCommands []string, i int) string {
	if len(preparationCommands) == 0 {
		return ""
	}
	if len(preparationCommands) == 1 {
		return preparationCommands[0]
	}
	return preparationCommands[i]
}
