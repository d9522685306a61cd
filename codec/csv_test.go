package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/codec"
	"github.com/warp/value-engine/config"
)

// =============================================================================
// CSV EXPORT TESTS
// =============================================================================

func TestExportCSV_HeaderAndKnownKeyOrder(t *testing.T) {
	// GIVEN: A mapping with known keys supplied in no particular order
	// WHEN: Exporting
	// THEN: Header row, then known keys in stable export order

	data, err := codec.ExportCSV(map[string]any{
		"platform_cost": 200000,
		"alert_volume":  100000,
		"solution_name": "AIOps",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Parameter,Value,Description", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "solution_name,AIOps,"))
	assert.True(t, strings.HasPrefix(lines[2], "alert_volume,100000,"))
	assert.True(t, strings.HasPrefix(lines[3], "platform_cost,200000,"))
}

func TestExportCSV_DescriptionsFromCatalog(t *testing.T) {
	data, err := codec.ExportCSV(map[string]any{"alert_volume": 100000})
	require.NoError(t, err)

	assert.Contains(t, string(data), config.Descriptions["alert_volume"])
}

func TestExportCSV_ListKeysAfterScalars(t *testing.T) {
	data, err := codec.ExportCSV(map[string]any{
		"platform_cost":         200000,
		"platform_costs_year_1": 10000,
		"platform_costs_year_2": 20000,
	})
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, "platform_cost,"), strings.Index(out, "platform_costs_year_1"))
	assert.Less(t, strings.Index(out, "platform_costs_year_1"), strings.Index(out, "platform_costs_year_2"))
}

// =============================================================================
// CSV IMPORT TESTS
// =============================================================================

func TestImportCSV_CoercesValues(t *testing.T) {
	in := strings.NewReader(
		"Parameter,Value,Description\n" +
			"alert_volume,100000,Total Infrastructure Alerts per Year\n" +
			"alert_ftes,2.5,Total FTEs Managing Alerts\n" +
			"solution_name,AIOps,Solution Name\n")

	params, err := codec.ImportCSV(in)
	require.NoError(t, err)

	assert.Equal(t, 100000, params["alert_volume"])
	assert.Equal(t, 2.5, params["alert_ftes"])
	assert.Equal(t, "AIOps", params["solution_name"])
}

func TestImportCSV_TwoColumnRowsAccepted(t *testing.T) {
	// Hand-edited files often drop the description column.
	in := strings.NewReader("Parameter,Value\nplatform_cost,200000\n")

	params, err := codec.ImportCSV(in)
	require.NoError(t, err)
	assert.Equal(t, 200000, params["platform_cost"])
}

func TestImportCSV_NoHeader_FirstRowIsData(t *testing.T) {
	in := strings.NewReader("platform_cost,200000,whatever\n")

	params, err := codec.ImportCSV(in)
	require.NoError(t, err)
	assert.Equal(t, 200000, params["platform_cost"])
}

func TestImportCSV_Empty_Error(t *testing.T) {
	_, err := codec.ImportCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCSV_RoundTripThroughParameters(t *testing.T) {
	// GIVEN: A typed parameter record
	// WHEN: Exporting to CSV and importing back through FromMap
	// THEN: The record survives unchanged

	p := config.Defaults()
	p.AlertVolume = 100000
	p.AlertFTEs = 2.5
	p.SolutionName = "AIOps Platform"
	p.PlatformCostsByYear = []float64{10000, 20000, 30000}

	data, err := codec.ExportCSV(p.ToMap())
	require.NoError(t, err)

	imported, err := codec.ImportCSV(strings.NewReader(string(data)))
	require.NoError(t, err)

	back, issues := config.FromMap(imported)
	assert.Empty(t, issues)
	assert.Equal(t, p, back)
}
