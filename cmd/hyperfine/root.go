// Package main implements the hyperfine command-line interface: flag
// binding, validation, parameter expansion, driver invocation, comparison
// printing, and export wiring.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/spf13/cobra"
)

const appName = "hyperfine"

var examples = []string{
	fmt.Sprintf("  Compare two commands:                 $ %s 'sleep 0.1' 'sleep 0.2'", appName),
	fmt.Sprintf("  Sweep a numeric parameter:            $ %s -P threads -P 1 -P 8 'make -j{threads}'", appName),
	fmt.Sprintf("  Export results to JSON and Markdown:  $ %s --export-json out.json --export-markdown out.md 'ls'", appName),
}

var rootCmd = &cobra.Command{
	Use:           appName + " [OPTIONS] <command>...",
	Short:         "A command-line benchmarking tool",
	Example:       strings.Join(examples, "\n"),
	Args:          cobra.MinimumNArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagCommandName       []string
	flagWarmup            uint64
	flagMinRuns           uint64
	flagMaxRuns           uint64
	flagRuns              uint64
	flagSetup             string
	flagPrepare           []string
	flagCleanup           string
	flagParameterScan     []string
	flagParameterStepSize string
	flagParameterList     []string
	flagShell             string
	flagIgnoreFailure     bool
	flagStyle             string
	flagShowOutput        bool
	flagTimeUnit          string
	flagExportJSON        string
	flagExportCSV         string
	flagExportMarkdown    string
	flagExportAsciidoc    string
	flagDebug             bool
)

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&flagCommandName, "command-name", "n", nil, "display-name template(s)")
	f.Uint64Var(&flagWarmup, "warmup", 0, "number of unmeasured warmup runs")
	f.Uint64Var(&flagMinRuns, "min-runs", 0, "minimum number of measured runs")
	f.Uint64Var(&flagMaxRuns, "max-runs", 0, "maximum number of measured runs")
	f.Uint64Var(&flagRuns, "runs", 0, "exact number of measured runs (sets both min and max)")
	f.StringVar(&flagSetup, "setup", "", "command to run once before a command's warmups/runs")
	f.StringArrayVar(&flagPrepare, "prepare", nil, "command to run before every warmup/measured run (1 or N times)")
	f.StringVar(&flagCleanup, "cleanup", "", "command to run once after a command's runs complete")
	f.StringArrayVarP(&flagParameterScan, "parameter-scan", "P", nil, "expand a numeric range; give the flag three times: name, start, end")
	f.StringVar(&flagParameterStepSize, "parameter-step-size", "", "step size for --parameter-scan")
	f.StringArrayVarP(&flagParameterList, "parameter-list", "L", nil, "expand a textual list; give the flag twice per list: name, then comma-list")
	f.StringVarP(&flagShell, "shell", "S", "", "shell to use, or 'none' for direct execution")
	f.BoolVar(&flagIgnoreFailure, "ignore-failure", false, "do not treat a non-zero exit code as fatal")
	f.StringVar(&flagStyle, "style", "", "full|basic|nocolor|color|none")
	f.BoolVar(&flagShowOutput, "show-output", false, "inherit the benchmarked command's stdout/stderr")
	f.StringVar(&flagTimeUnit, "time-unit", "", "millisecond|second")
	f.StringVar(&flagExportJSON, "export-json", "", "write results as JSON to the given path")
	f.StringVar(&flagExportCSV, "export-csv", "", "write results as CSV to the given path")
	f.StringVar(&flagExportMarkdown, "export-markdown", "", "write results as a Markdown table to the given path")
	f.StringVar(&flagExportAsciidoc, "export-asciidoc", "", "write results as an AsciiDoc table to the given path")
	f.BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(exitCodeFor(err))
	}
}

func printError(err error) {
	if cmderr.Is(err, cmderr.Export) {
		fmt.Fprintf(os.Stderr, "%s %s (run aborted: an export write failed)\n", color.RedString("Error:"), err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
}
