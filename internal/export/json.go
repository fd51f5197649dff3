package export

import (
	"encoding/json"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/units"
)

// JSONExporter serializes results to the authoritative JSON shape (spec
// §4.6). JSON always retains raw seconds regardless of display unit.
type JSONExporter struct{}

type jsonDocument struct {
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	Command    string            `json:"command"`
	Parameters map[string]string `json:"parameters"`
	Mean       float64           `json:"mean"`
	Stddev     *float64          `json:"stddev"`
	Median     float64           `json:"median"`
	Min        float64           `json:"min"`
	Max        float64           `json:"max"`
	User       float64           `json:"user"`
	System     float64           `json:"system"`
	Times      []float64         `json:"times"`
	ExitCodes  []*int            `json:"exit_codes"`
}

func (JSONExporter) Serialize(results []benchmarkresult.Result, _ units.Unit) ([]byte, error) {
	doc := jsonDocument{Results: make([]jsonResult, 0, len(results))}
	for _, r := range results {
		params := make(map[string]string, len(r.Parameters))
		for _, p := range r.Parameters {
			params[p.Name] = p.Value
		}
		exitCodes := make([]*int, len(r.ExitCodes))
		for i, c := range r.ExitCodes {
			v := c
			exitCodes[i] = &v
		}
		doc.Results = append(doc.Results, jsonResult{
			Command:    r.Command,
			Parameters: params,
			Mean:       r.Mean,
			Stddev:     r.Stddev,
			Median:     r.Median,
			Min:        r.Min,
			Max:        r.Max,
			User:       r.MeanUser,
			System:     r.MeanSystem,
			Times:      r.Times,
			ExitCodes:  exitCodes,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
