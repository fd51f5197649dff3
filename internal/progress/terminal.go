package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// terminalSink renders an ETA-aware progress bar to stderr, following the
// teacher's "current estimate + ETA" line but via a real progress-bar
// widget instead of hand-drawn block characters.
type terminalSink struct {
	label string
	bar   *progressbar.ProgressBar
}

// NewTerminal builds a Sink that draws a progress bar labeled with the
// command being benchmarked.
func NewTerminal(label string) Sink {
	return &terminalSink{label: label}
}

func (t *terminalSink) Start(total int) {
	t.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(t.label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
}

func (t *terminalSink) Tick(meanEstimate time.Duration, remaining int) {
	if t.bar == nil {
		return
	}
	eta := time.Duration(int64(meanEstimate) * int64(remaining))
	t.bar.Describe(fmt.Sprintf("%s (ETA %s)", t.label, formatETA(eta)))
	_ = t.bar.Add(1)
}

func (t *terminalSink) Finish() {
	if t.bar == nil {
		return
	}
	_ = t.bar.Finish()
}

func formatETA(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
