package export

import (
	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/units"
)

// AsciiDocExporter renders the same results table as MarkdownExporter
// using AsciiDoc table syntax. See MarkdownExporter for grounding.
type AsciiDocExporter struct{}

const asciidocTemplate = `[cols="4,1,1,1,1", options="header"]
|===
|Command |Mean [{{.Unit}}] |Min [{{.Unit}}] |Max [{{.Unit}}] |Relative
{{range .Rows}}
|` + "`{{.Command}}`" + `
|{{.Mean}}
|{{.Min}}
|{{.Max}}
|{{.Relative}}
{{end}}
|===
`

func (AsciiDocExporter) Serialize(results []benchmarkresult.Result, unit units.Unit) ([]byte, error) {
	return renderTable(asciidocTemplate, results, unit)
}
