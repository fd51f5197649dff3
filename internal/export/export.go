// Package export holds the multi-format exporter registry: each
// registered exporter serializes the accumulated BenchmarkResults on
// demand and writes the result atomically (temp file + rename) to its
// destination path, so a disrupted sweep still leaves a usable partial
// dataset on disk.
package export

import (
	"github.com/google/renameio/v2"
	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/cmderr"
	"github.com/khmarbaise/hyperfine/internal/units"
	"github.com/pkg/errors"
)

// Exporter serializes the full set of accumulated results for one output
// format.
type Exporter interface {
	Serialize(results []benchmarkresult.Result, unit units.Unit) ([]byte, error)
}

// entry pairs a registered exporter with its destination path.
type entry struct {
	exporter Exporter
	path     string
}

// Registry is the ordered list of exporters the CLI registered via
// --export-json/--export-csv/--export-markdown/--export-asciidoc.
type Registry struct {
	entries  []entry
	timeUnit units.Unit
}

// NewRegistry builds an empty registry targeting the given preferred
// display unit (units.Auto for automatic per-export selection).
func NewRegistry(timeUnit units.Unit) *Registry {
	return &Registry{timeUnit: timeUnit}
}

// Add registers an exporter against a destination path.
func (r *Registry) Add(exporter Exporter, path string) {
	r.entries = append(r.entries, entry{exporter: exporter, path: path})
}

// Len reports how many exporters are registered.
func (r *Registry) Len() int { return len(r.entries) }

// WriteAll re-serializes results through every registered exporter and
// atomically writes each to its destination. Any failure is fatal
// (spec §7: silently losing results is worse than stopping) and aborts
// on the first error encountered.
func (r *Registry) WriteAll(results []benchmarkresult.Result) error {
	for _, e := range r.entries {
		data, err := e.exporter.Serialize(results, r.timeUnit)
		if err != nil {
			return cmderr.Wrap(cmderr.Export, err, "serializing results for "+e.path)
		}
		if err := renameio.WriteFile(e.path, data, 0o644); err != nil {
			return cmderr.Wrap(cmderr.Export, errors.Wrap(err, "atomic write"), "writing "+e.path)
		}
	}
	return nil
}
