// Package benchmark implements the driver: the warmup/measurement loop
// that shells out a command many times, corrects for shell-spawn
// overhead, adapts run count to a measured-time budget, and produces a
// BenchmarkResult.
package benchmark

import (
	"context"
	"time"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/khmarbaise/hyperfine/internal/command"
	"github.com/khmarbaise/hyperfine/internal/options"
	"github.com/khmarbaise/hyperfine/internal/progress"
	"github.com/khmarbaise/hyperfine/internal/shelladapter"
	"github.com/rs/zerolog"
)

// Driver orchestrates the benchmark protocol for a sequence of commands.
type Driver struct {
	Adapter    shelladapter.Adapter
	Options    options.Options
	Logger     zerolog.Logger
	NewSink    func(label string) progress.Sink // nil means progress.Null()
}

// shellSpawnCalibrationRuns is the fixed batch size used to estimate
// shell-spawn overhead (spec §4.1: "≥3, default ~10").
const shellSpawnCalibrationRuns = 10

// Run executes setup, warmup, the measured runs, cleanup and aggregation
// for one command and returns its BenchmarkResult. Appending the result to
// the accumulator and exporting it are left to the caller.
func (d Driver) Run(ctx context.Context, cmd command.Command, preparationCommand string) (benchmarkresult.Result, error) {
	correction, err := d.Adapter.Calibrate(ctx, shellSpawnCalibrationRuns)
	if err != nil {
		return benchmarkresult.Result{}, cmderr.Wrap(cmderr.SystemSpawn, err, "calibrating shell-spawn overhead")
	}
	d.Logger.Debug().Float64("mean", correction.Mean).Float64("stddev", correction.Stddev).Msg("shell spawn calibration")

	if d.Options.SetupCommand != "" {
		if _, err := d.Adapter.Spawn(ctx, d.Options.SetupCommand); err != nil {
			return benchmarkresult.Result{}, cmderr.Wrap(cmderr.SystemSpawn, err, "running setup command")
		}
	}

	if err := d.warmup(ctx, cmd, preparationCommand); err != nil {
		return benchmarkresult.Result{}, err
	}

	sink := progress.Null()
	if d.NewSink != nil {
		sink = d.NewSink(cmd.GetName())
	}

	times, userTimes, systemTimes, exitCodes, err := d.measure(ctx, cmd, preparationCommand, correction, sink)
	if cleanupErr := d.cleanup(ctx); cleanupErr != nil {
		d.Logger.Warn().Err(cleanupErr).Msg("cleanup command failed")
	}
	if err != nil {
		return benchmarkresult.Result{}, err
	}

	ignore := d.Options.FailureAction == options.Ignore
	result := benchmarkresult.Aggregate(cmd.GetShellCommand(), cmd.ParameterStrings(), times, userTimes, systemTimes, exitCodes, ignore)
	for _, w := range result.Warnings {
		d.Logger.Warn().Stringer("kind", w).Str("command", cmd.GetShellCommand()).Msg("anomaly detected")
	}
	return result, nil
}

func (d Driver) warmup(ctx context.Context, cmd command.Command, preparationCommand string) error {
	for i := uint64(0); i < d.Options.WarmupCount; i++ {
		if preparationCommand != "" {
			prep, err := d.Adapter.Spawn(ctx, preparationCommand)
			if err != nil {
				return cmderr.Wrap(cmderr.SystemSpawn, err, "running preparation command during warmup")
			}
			if prep.ExitCode != 0 && d.Options.FailureAction == options.RaiseError {
				return cmderr.New(cmderr.CommandFailure, "preparation command exited with a non-zero status")
			}
		}
		res, err := d.Adapter.Spawn(ctx, cmd.GetShellCommand())
		if err != nil {
			return cmderr.Wrap(cmderr.SystemSpawn, err, "warmup run")
		}
		if res.ExitCode != 0 && d.Options.FailureAction == options.RaiseError {
			return cmderr.New(cmderr.CommandFailure, "warmup run exited with a non-zero status")
		}
	}
	return nil
}

func (d Driver) measure(
	ctx context.Context,
	cmd command.Command,
	preparationCommand string,
	correction shelladapter.Correction,
	sink progress.Sink,
) (times, userTimes, systemTimes []float64, exitCodes []int, err error) {
	var runCount int
	if d.Options.Runs.Max != nil {
		runCount = int(*d.Options.Runs.Max)
	} else {
		runCount = int(d.Options.Runs.Min)
	}
	sink.Start(runCount)
	defer sink.Finish()

	var accumulatedWall float64
	var meanSoFar float64

	i := 0
	for {
		if preparationCommand != "" {
			prep, perr := d.Adapter.Spawn(ctx, preparationCommand)
			if perr != nil {
				err = cmderr.Wrap(cmderr.SystemSpawn, perr, "running preparation command")
				return
			}
			if prep.ExitCode != 0 && d.Options.FailureAction == options.RaiseError {
				err = cmderr.New(cmderr.CommandFailure, "preparation command exited with a non-zero status")
				return
			}
		}

		res, rerr := d.Adapter.Spawn(ctx, cmd.GetShellCommand())
		if rerr != nil {
			err = cmderr.Wrap(cmderr.SystemSpawn, rerr, "measured run")
			return
		}
		if res.ExitCode != 0 && d.Options.FailureAction == options.RaiseError {
			err = cmderr.New(cmderr.CommandFailure, "command terminated with a non-zero exit code")
			return
		}

		correctedWall := res.WallSeconds - correction.Mean
		d.Logger.Debug().Float64("raw", res.WallSeconds).Float64("corrected", correctedWall).Msg("measured run")

		times = append(times, correctedWall)
		userTimes = append(userTimes, res.UserSeconds)
		systemTimes = append(systemTimes, res.SystemSeconds)
		exitCodes = append(exitCodes, res.ExitCode)

		accumulatedWall += correctedWall
		i++
		meanSoFar = accumulatedWall / float64(i)

		remaining := runCount - i
		if remaining < 0 {
			remaining = 0
		}
		sink.Tick(time.Duration(meanSoFar*float64(time.Second)), remaining)

		if d.shouldStop(i, accumulatedWall) {
			break
		}
	}

	return
}

// shouldStop implements the adaptive stop condition (spec §4.4 step 4):
// always do at least Runs.Min; stop at Runs.Max if set; otherwise continue
// past Runs.Min only while accumulated measured wall time is below
// MinBenchmarkingTimeSeconds.
func (d Driver) shouldStop(runsSoFar int, accumulatedWall float64) bool {
	if uint64(runsSoFar) < d.Options.Runs.Min {
		return false
	}
	if d.Options.Runs.Max != nil {
		return uint64(runsSoFar) >= *d.Options.Runs.Max
	}
	return accumulatedWall >= d.Options.MinBenchmarkingTimeSeconds
}

func (d Driver) cleanup(ctx context.Context) error {
	if d.Options.CleanupCommand == "" {
		return nil
	}
	_, err := d.Adapter.Spawn(ctx, d.Options.CleanupCommand)
	return err
}
