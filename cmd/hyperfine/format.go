package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/units"
	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal, following the
// teacher's atty-style TTY check (here via golang.org/x/term, the
// teacher's own dependency).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printResult renders the "Time (mean ± σ): ... Range (min … max): ..."
// block for one finished benchmark, in the teacher's own summary style.
func printResult(r benchmarkresult.Result) {
	unit := units.Resolve(units.Auto, []float64{r.Mean})

	meanStr := color.GreenString("%.3f %s", units.FromSeconds(r.Mean, unit), unit.Suffix())
	var stddevStr string
	if r.Stddev != nil {
		stddevStr = color.GreenString("%.3f %s", units.FromSeconds(*r.Stddev, unit), unit.Suffix())
	} else {
		stddevStr = color.GreenString("N/A")
	}

	fmt.Fprintf(color.Output, "  Time (%s ± %s):    %s ± %s    [User: %s, System: %s]\n",
		color.GreenString("mean"), color.GreenString("σ"),
		meanStr, stddevStr,
		color.CyanString("%.3f %s", units.FromSeconds(r.MeanUser, unit), unit.Suffix()),
		color.CyanString("%.3f %s", units.FromSeconds(r.MeanSystem, unit), unit.Suffix()))

	fmt.Fprintf(color.Output, "  Range (%s … %s):    %s … %s    %s\n",
		color.CyanString("min"), color.RedString("max"),
		color.CyanString("%.3f %s", units.FromSeconds(r.Min, unit), unit.Suffix()),
		color.RedString("%.3f %s", units.FromSeconds(r.Max, unit), unit.Suffix()),
		color.HiBlackString("%d runs", r.Runs))

	for _, w := range r.Warnings {
		fmt.Fprintf(color.Output, "  %s %s\n", color.New(color.Bold, color.FgYellow).Sprint("Warning:"), w)
	}
	fmt.Fprintln(color.Output)
}
