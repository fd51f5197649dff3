package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/units"
)

// CSVExporter writes a header row followed by one row per result in the
// resolved display unit. No third-party CSV-writer library appears
// anywhere in the retrieval pack, so the standard library's encoding/csv
// is the grounded choice here (see DESIGN.md).
type CSVExporter struct{}

func (CSVExporter) Serialize(results []benchmarkresult.Result, unit units.Unit) ([]byte, error) {
	resolved := unit
	if resolved == units.Auto {
		means := make([]float64, len(results))
		for i, r := range results {
			means[i] = r.Mean
		}
		resolved = units.Resolve(units.Auto, means)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"command", "mean", "stddev", "median", "user", "system", "min", "max"}); err != nil {
		return nil, err
	}

	for _, r := range results {
		stddev := ""
		if r.Stddev != nil {
			stddev = formatFloat(units.FromSeconds(*r.Stddev, resolved))
		}
		row := []string{
			r.Command,
			formatFloat(units.FromSeconds(r.Mean, resolved)),
			stddev,
			formatFloat(units.FromSeconds(r.Median, resolved)),
			formatFloat(units.FromSeconds(r.MeanUser, resolved)),
			formatFloat(units.FromSeconds(r.MeanSystem, resolved)),
			formatFloat(units.FromSeconds(r.Min, resolved)),
			formatFloat(units.FromSeconds(r.Max, resolved)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
