// Package progress provides an observation-only progress-reporting side
// channel for the benchmark driver: a capability set (Start/Tick/Finish)
// injected into the driver so tests can pass a null sink and the CLI can
// wire up a real terminal backend.
package progress

import "time"

// Sink is the injected progress-reporting capability.
type Sink interface {
	// Start announces the total number of measured runs about to happen.
	Start(total int)
	// Tick reports the current mean-estimate and how many runs remain.
	Tick(meanEstimate time.Duration, remaining int)
	// Finish clears/completes the progress display.
	Finish()
}

// nullSink discards all progress events.
type nullSink struct{}

func (nullSink) Start(int) {}

func (nullSink) Tick(time.Duration, int) {}

func (nullSink) Finish() {}

// Null returns a Sink that does nothing, for tests and non-interactive use.
func Null() Sink { return nullSink{} }
