// Package shelladapter turns a command string plus a shell option into a
// concrete process invocation, and calibrates the cost of merely spawning
// the configured shell.
package shelladapter

import (
	"context"
	"math"

	"github.com/khmarbaise/hyperfine/internal/shellopt"
	"github.com/khmarbaise/hyperfine/internal/timer"
)

// Correction is the shell-spawn calibration: mean and stddev (seconds) of
// spawning the configured shell and immediately exiting.
type Correction struct {
	Mean   float64
	Stddev float64
}

// Adapter spawns commands under a fixed shell option.
type Adapter struct {
	Opt        shellopt.Option
	ShowOutput bool
}

// New builds an Adapter for the given shell option.
func New(opt shellopt.Option, showOutput bool) Adapter {
	return Adapter{Opt: opt, ShowOutput: showOutput}
}

// Spawn measures one invocation of commandString under the adapter's shell
// option.
func (a Adapter) Spawn(ctx context.Context, commandString string) (timer.Result, error) {
	argv, err := shellopt.BuildArgv(a.Opt, commandString)
	if err != nil {
		return timer.Result{}, err
	}
	return timer.Run(ctx, argv, a.ShowOutput, nil)
}

// Calibrate measures the shell-spawn overhead by running an empty command
// through the shell `runs` times (minimum 3, default 10). If the option is
// Direct (no shell), the correction is always zero.
func (a Adapter) Calibrate(ctx context.Context, runs int) (Correction, error) {
	if _, ok := a.Opt.(shellopt.Direct); ok {
		return Correction{}, nil
	}
	if runs < 3 {
		runs = 3
	}

	times := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		res, err := a.Spawn(ctx, "")
		if err != nil {
			return Correction{}, err
		}
		times = append(times, res.WallSeconds)
	}

	var sum float64
	for _, t := range times {
		sum += t
	}
	mean := sum / float64(len(times))

	var sq float64
	for _, t := range times {
		d := t - mean
		sq += d * d
	}
	var stddev float64
	if len(times) > 1 {
		stddev = math.Sqrt(sq / float64(len(times)-1))
	}

	return Correction{Mean: mean, Stddev: stddev}, nil
}
