package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/khmarbaise/hyperfine/internal/benchmark"
	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/khmarbaise/hyperfine/internal/command"
	"github.com/khmarbaise/hyperfine/internal/export"
	"github.com/khmarbaise/hyperfine/internal/logging"
	"github.com/khmarbaise/hyperfine/internal/options"
	"github.com/khmarbaise/hyperfine/internal/paramvalue"
	"github.com/khmarbaise/hyperfine/internal/progress"
	"github.com/khmarbaise/hyperfine/internal/relativespeed"
	"github.com/khmarbaise/hyperfine/internal/shelladapter"
	"github.com/khmarbaise/hyperfine/internal/shellopt"
	"github.com/khmarbaise/hyperfine/internal/units"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	registry, err := buildExportRegistry(opts.TimeUnit)
	if err != nil {
		return err
	}

	commands, err := buildCommands(args)
	if err != nil {
		return err
	}
	if err := options.ValidatePreparationCount(flagPrepare, len(commands)); err != nil {
		return err
	}

	applyOutputStyle(opts.OutputStyle, flagShowOutput)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.New(os.Stderr, flagDebug)

	shellAdapter := shelladapter.New(opts.Shell, flagShowOutput)
	driver := benchmark.Driver{
		Adapter: shellAdapter,
		Options: opts,
		Logger:  logger,
		NewSink: func(label string) progress.Sink {
			if opts.OutputStyle == options.Disabled {
				return progress.Null()
			}
			return progress.NewTerminal(label)
		},
	}

	var results []benchmarkresult.Result
	for i, c := range commands {
		fmt.Fprintf(color.Output, "Benchmark %d: %s\n", i+1, c.GetName())

		prepCmd := options.PreparationCommandFor(flagPrepare, i)
		result, runErr := driver.Run(ctx, c, prepCmd)
		if runErr != nil {
			if ctx.Err() != nil {
				return cmderr.Wrap(cmderr.CommandFailure, ctx.Err(), "benchmark interrupted")
			}
			return runErr
		}
		printResult(result)
		results = append(results, result)

		if registry.Len() > 0 {
			if err := registry.WriteAll(results); err != nil {
				return err
			}
		}
	}

	if opts.OutputStyle != options.Disabled {
		writeComparison(results)
	}

	return nil
}

func buildOptions() (options.Options, error) {
	opts := options.Default()
	opts.WarmupCount = flagWarmup

	minRuns, maxRuns := flagMinRuns, flagMaxRuns
	if flagRuns > 0 {
		minRuns, maxRuns = flagRuns, flagRuns
	}
	switch {
	case minRuns > 0 && maxRuns > 0:
		opts.Runs.Min = minRuns
		m := maxRuns
		opts.Runs.Max = &m
	case minRuns > 0:
		opts.Runs.Min = minRuns
	case maxRuns > 0:
		if opts.Runs.Min > maxRuns {
			opts.Runs.Min = maxRuns
		}
		m := maxRuns
		opts.Runs.Max = &m
	}

	opts.SetupCommand = flagSetup
	opts.PreparationCommands = flagPrepare
	opts.CleanupCommand = flagCleanup
	opts.ShowOutput = flagShowOutput

	if flagIgnoreFailure {
		opts.FailureAction = options.Ignore
	}

	opts.TimeUnit = units.ParseUnit(flagTimeUnit)
	opts.OutputStyle = resolveOutputStyle(flagStyle, flagShowOutput)

	if flagShell != "" {
		shellOpt, err := shellopt.Parse(flagShell)
		if err != nil {
			return options.Options{}, cmderr.Wrap(cmderr.UserInput, err, "parsing --shell")
		}
		opts.Shell = shellOpt
	}

	if err := opts.Validate(); err != nil {
		return options.Options{}, err
	}
	return opts, nil
}

func resolveOutputStyle(style string, showOutput bool) options.OutputStyle {
	switch style {
	case "full":
		return options.Full
	case "basic":
		return options.Basic
	case "nocolor":
		return options.NoColor
	case "color":
		return options.Color
	case "none":
		return options.Disabled
	default:
		if !showOutput && isTerminal(os.Stdout) {
			return options.Full
		}
		return options.Basic
	}
}

func applyOutputStyle(style options.OutputStyle, showOutput bool) {
	switch style {
	case options.Basic, options.NoColor:
		color.NoColor = true
	case options.Full, options.Color:
		color.NoColor = false
	}
}

func buildCommands(args []string) ([]command.Command, error) {
	if len(flagParameterScan) > 0 {
		if len(flagParameterScan) != 3 {
			return nil, cmderr.New(cmderr.UserInput, "--parameter-scan requires exactly 3 arguments: name start end")
		}
		list, err := command.BuildParameterScan(command.ParameterScan{
			Name:  flagParameterScan[0],
			Start: flagParameterScan[1],
			End:   flagParameterScan[2],
			Step:  flagParameterStepSize,
		})
		if err != nil {
			return nil, err
		}
		return command.Expand(args, flagCommandName, []command.ParameterList{list})
	}

	if len(flagParameterList) > 0 {
		if len(flagParameterList)%2 != 0 {
			return nil, cmderr.New(cmderr.UserInput, "--parameter-list requires pairs of (name, comma-list)")
		}
		var lists []command.ParameterList
		for i := 0; i < len(flagParameterList); i += 2 {
			name := flagParameterList[i]
			tokens := command.Tokenize(flagParameterList[i+1])
			values := make([]paramvalue.Value, len(tokens))
			for j, tok := range tokens {
				values[j] = paramvalue.NewText(tok)
			}
			lists = append(lists, command.ParameterList{Name: name, Values: values})
		}
		return command.Expand(args, flagCommandName, lists)
	}

	return command.ExpandUnparametrized(args, flagCommandName)
}

func buildExportRegistry(unit units.Unit) (*export.Registry, error) {
	registry := export.NewRegistry(unit)
	if flagExportJSON != "" {
		registry.Add(export.JSONExporter{}, flagExportJSON)
	}
	if flagExportCSV != "" {
		registry.Add(export.CSVExporter{}, flagExportCSV)
	}
	if flagExportMarkdown != "" {
		registry.Add(export.MarkdownExporter{}, flagExportMarkdown)
	}
	if flagExportAsciidoc != "" {
		registry.Add(export.AsciiDocExporter{}, flagExportAsciidoc)
	}
	return registry, nil
}

func writeComparison(results []benchmarkresult.Result) {
	if len(results) < 2 {
		return
	}

	annotated, ok := relativespeed.Compute(results)
	if !ok {
		fmt.Fprintf(color.Output, "%s The benchmark comparison could not be computed because some benchmark times are zero. "+
			"Try re-running on a quiet system.\n", color.New(color.Bold, color.FgRed).Sprint("Note:"))
		return
	}

	fmt.Fprintln(color.Output, color.New(color.Bold).Sprint("Summary"))
	fastest := annotated[0]
	fmt.Fprintf(color.Output, "  '%s' ran\n", color.CyanString(fastest.Result.Command))

	for _, item := range annotated[1:] {
		if item.RelativeStdev != nil {
			fmt.Fprintf(color.Output, "%s ± %s times faster than '%s'\n",
				color.New(color.Bold, color.FgGreen).Sprintf("%8.2f", item.RelativeSpeed),
				color.GreenString("%.2f", *item.RelativeStdev),
				color.MagentaString(item.Result.Command))
		} else {
			fmt.Fprintf(color.Output, "%s times faster than '%s'\n",
				color.New(color.Bold, color.FgGreen).Sprintf("%8.2f", item.RelativeSpeed),
				color.MagentaString(item.Result.Command))
		}
	}
}

// exitCodeFor maps a returned error to a process exit code: 130 on an
// interrupted (SIGINT/SIGTERM) context, 1 for any other fatal error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
