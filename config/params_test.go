package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/config"
)

// =============================================================================
// DEFAULTS TESTS
// =============================================================================

func TestDefaults_CanonicalValues(t *testing.T) {
	p := config.Defaults()

	assert.Equal(t, 6, p.ImplementationDelayMonths)
	assert.Equal(t, 3, p.RampUpMonths)
	assert.Equal(t, 1, p.BillingStartMonth)
	assert.Equal(t, 3, p.EvaluationYears)
	assert.Equal(t, 10.0, p.DiscountRatePct)
	assert.Equal(t, 0.10, p.DiscountRate())
	assert.Equal(t, 36, p.EvaluationMonths())

	// Full-time allocation unless the user says otherwise.
	assert.Equal(t, 100.0, p.AlertFTETimePct)
	assert.Equal(t, 100.0, p.IncidentFTETimePct)
	assert.Equal(t, 100.0, p.AssetFTETimePct)
}

// =============================================================================
// FLAT MAPPING TESTS
// =============================================================================

func TestFromMap_CoercesNumericStrings(t *testing.T) {
	// GIVEN: A mapping where every value arrives as a string (CSV import)
	// WHEN: Building Parameters
	// THEN: Values are coerced to their typed fields

	p, issues := config.FromMap(map[string]any{
		"alert_volume":   "100000",
		"alert_ftes":     "2.5",
		"platform_cost":  "200000",
		"discount_rate":  "12.5",
		"solution_name":  "AIOps Platform",
		"weeks_per_year": "48",
	})

	assert.Empty(t, issues)
	assert.Equal(t, 100000, p.AlertVolume)
	assert.Equal(t, 2.5, p.AlertFTEs)
	assert.Equal(t, 200000.0, p.PlatformCost)
	assert.Equal(t, 12.5, p.DiscountRatePct)
	assert.Equal(t, "AIOps Platform", p.SolutionName)
	assert.Equal(t, 48, p.WeeksPerYear)
}

func TestFromMap_MissingKeysKeepDefaults(t *testing.T) {
	p, _ := config.FromMap(map[string]any{"alert_volume": 5000})

	assert.Equal(t, 5000, p.AlertVolume)
	assert.Equal(t, 6, p.ImplementationDelayMonths, "untouched keys keep defaults")
	assert.Equal(t, 3, p.EvaluationYears)
}

func TestFromMap_UnknownKey_WarningNotFailure(t *testing.T) {
	_, issues := config.FromMap(map[string]any{"no_such_parameter": 42})

	require.Len(t, issues, 1)
	assert.Equal(t, config.LevelWarning, issues[0].Level)
	assert.Equal(t, "no_such_parameter", issues[0].Field)
}

func TestFromMap_ListKeysReassembledBySuffixOrder(t *testing.T) {
	// GIVEN: Per-year keys supplied out of order
	// THEN: The slice is rebuilt in numeric suffix order

	p, issues := config.FromMap(map[string]any{
		"platform_costs_year_3": 30000,
		"platform_costs_year_1": "10000",
		"platform_costs_year_2": 20000,
		"fte_pattern_year_2":    4.0,
		"fte_pattern_year_1":    5.0,
	})

	assert.Empty(t, issues)
	assert.Equal(t, []float64{10000, 20000, 30000}, p.PlatformCostsByYear)
	assert.Equal(t, []float64{5, 4}, p.FTEPatternByYear)
}

func TestToMapFromMap_RoundTrip(t *testing.T) {
	p := config.Defaults()
	p.AlertVolume = 100000
	p.AlertFTEs = 2.5
	p.PlatformCost = 200000
	p.PlatformCostsByYear = []float64{10000, 20000}

	back, issues := config.FromMap(p.ToMap())

	assert.Empty(t, issues)
	assert.Equal(t, p, back)
}

// =============================================================================
// COERCION TESTS
// =============================================================================

func TestCoerce(t *testing.T) {
	assert.Equal(t, 42, config.Coerce("42"))
	assert.Equal(t, 3.14, config.Coerce("3.14"))
	assert.Equal(t, 42, config.Coerce(" 42 "), "whitespace is trimmed")
	assert.Equal(t, "AIOps", config.Coerce("AIOps"), "non-numeric strings pass through")
	assert.Equal(t, "", config.Coerce(""))
	assert.Equal(t, 7, config.Coerce(7), "non-strings pass through")
}
