package export

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/khmarbaise/hyperfine/internal/benchmarkresult"
	"github.com/khmarbaise/hyperfine/internal/command"
	"github.com/khmarbaise/hyperfine/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stddevPtr(v float64) *float64 { return &v }

func sampleResults() []benchmarkresult.Result {
	return []benchmarkresult.Result{
		{
			Command:    "echo 1",
			Parameters: []command.NameValue{{Name: "val", Value: "1"}},
			Runs:       3,
			Mean:       0.1,
			Stddev:     stddevPtr(0.01),
			Median:     0.1,
			Min:        0.09,
			Max:        0.11,
			MeanUser:   0.05,
			MeanSystem: 0.02,
			Times:      []float64{0.09, 0.1, 0.11},
			ExitCodes:  []int{0, 0, 0},
		},
		{
			Command:    "echo 2",
			Parameters: []command.NameValue{{Name: "val", Value: "2"}},
			Runs:       2,
			Mean:       0.2,
			Median:     0.2,
			Min:        0.19,
			Max:        0.21,
			MeanUser:   0.1,
			MeanSystem: 0.03,
			Times:      []float64{0.19, 0.21},
			ExitCodes:  []int{0, 0},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	results := sampleResults()
	data, err := JSONExporter{}.Serialize(results, units.Auto)
	require.NoError(t, err)

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Results, 2)

	assert.Equal(t, results[0].Command, doc.Results[0].Command)
	assert.Equal(t, results[0].Mean, doc.Results[0].Mean)
	assert.Equal(t, results[0].Median, doc.Results[0].Median)
	assert.Equal(t, results[0].Min, doc.Results[0].Min)
	assert.Equal(t, results[0].Max, doc.Results[0].Max)
	assert.Equal(t, results[0].Times, doc.Results[0].Times)
	require.NotNil(t, doc.Results[0].Stddev)
	assert.Equal(t, *results[0].Stddev, *doc.Results[0].Stddev)
	assert.Nil(t, doc.Results[1].Stddev)
	assert.Equal(t, "1", doc.Results[0].Parameters["val"])
	for i, c := range results[0].ExitCodes {
		require.NotNil(t, doc.Results[0].ExitCodes[i])
		assert.Equal(t, c, *doc.Results[0].ExitCodes[i])
	}
}

func TestJSONIdempotent(t *testing.T) {
	results := sampleResults()
	a, err := JSONExporter{}.Serialize(results, units.Auto)
	require.NoError(t, err)
	b, err := JSONExporter{}.Serialize(results, units.Auto)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCSVHasHeaderAndRows(t *testing.T) {
	results := sampleResults()
	data, err := CSVExporter{}.Serialize(results, units.Second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command,mean,stddev,median,user,system,min,max")
	assert.Contains(t, string(data), "echo 1")
	assert.Contains(t, string(data), "echo 2")
}

func TestMarkdownRendersTable(t *testing.T) {
	results := sampleResults()
	data, err := MarkdownExporter{}.Serialize(results, units.Second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Command |")
	assert.Contains(t, string(data), "echo 1")
}

func TestAsciiDocRendersTable(t *testing.T) {
	results := sampleResults()
	data, err := AsciiDocExporter{}.Serialize(results, units.Second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "|===")
	assert.Contains(t, string(data), "echo 2")
}

func TestRegistryWriteAllIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.json"

	reg := NewRegistry(units.Auto)
	reg.Add(JSONExporter{}, path)

	require.NoError(t, reg.WriteAll(sampleResults()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, reg.WriteAll(sampleResults()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
