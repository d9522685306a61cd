package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/engine"
)

// =============================================================================
// SCENARIO TESTS
// =============================================================================

func testBaseline() engine.ScenarioBaseline {
	return engine.ScenarioBaseline{
		TotalAnnualBenefits: decimal.NewFromInt(500000),
		AnnualPlatformCost:  decimal.NewFromInt(100000),
		OneTimeServicesCost: decimal.NewFromInt(50000),
		DelayMonths:         6,
		RampMonths:          3,
		BillingStartMonth:   1,
		EvaluationYears:     3,
		DiscountRate:        0.10,
	}
}

func TestDefaultScenarios_ThreeInDisplayOrder(t *testing.T) {
	defs := engine.DefaultScenarios()
	require.Len(t, defs, 3)
	assert.Equal(t, "Conservative", defs[0].Name)
	assert.Equal(t, "Expected", defs[1].Name)
	assert.Equal(t, "Optimistic", defs[2].Name)

	assert.Equal(t, 0.7, defs[0].BenefitsMultiplier)
	assert.Equal(t, 1.3, defs[0].DelayMultiplier)
	assert.Equal(t, 1.0, defs[1].BenefitsMultiplier)
	assert.Equal(t, 1.0, defs[1].DelayMultiplier)
	assert.Equal(t, 1.2, defs[2].BenefitsMultiplier)
	assert.Equal(t, 0.8, defs[2].DelayMultiplier)
}

func TestRunScenario_AppliesMultipliers(t *testing.T) {
	// GIVEN: Conservative multipliers (benefits x0.7, delay x1.3)
	// WHEN: Running against a 500k / 6mo baseline
	// THEN: Benefits scale to 350k, delay truncates to 7 months

	base := testBaseline()
	result := engine.RunScenario(engine.DefaultScenarios()[0], base)

	assert.InDelta(t, 350000.0, result.AnnualBenefits.InexactFloat64(), 0.01)
	assert.Equal(t, 7, result.ImplementationDelayMonths) // int(6 * 1.3)
	assert.Len(t, result.CashFlows, 3)
}

func TestRunScenario_ExpectedIsBaselineUnchanged(t *testing.T) {
	base := testBaseline()
	result := engine.RunScenario(engine.DefaultScenarios()[1], base)

	assert.InDelta(t, 500000.0, result.AnnualBenefits.InexactFloat64(), 0.01)
	assert.Equal(t, 6, result.ImplementationDelayMonths)
}

func TestRunScenarios_ResultsOrderedAndRanked(t *testing.T) {
	// Higher benefits with shorter delay must never produce a worse NPV.
	results := engine.RunScenarios(engine.DefaultScenarios(), testBaseline())
	require.Len(t, results, 3)

	conservative := results[0].NPV.InexactFloat64()
	expected := results[1].NPV.InexactFloat64()
	optimistic := results[2].NPV.InexactFloat64()

	assert.LessOrEqual(t, conservative, expected)
	assert.LessOrEqual(t, expected, optimistic)
}

func TestRunScenarios_Independent(t *testing.T) {
	// GIVEN: All three scenarios computed from one baseline
	// WHEN: Mutating one result's cash flows
	// THEN: The other results are unaffected

	results := engine.RunScenarios(engine.DefaultScenarios(), testBaseline())
	before := results[1].CashFlows[0].NetCashFlow

	results[0].CashFlows[0].NetCashFlow = decimal.NewFromInt(-999999)

	assert.True(t, results[1].CashFlows[0].NetCashFlow.Equal(before),
		"scenarios must not share cash-flow storage")
}

func TestRunScenario_DelayNeverNegative(t *testing.T) {
	base := testBaseline()
	base.DelayMonths = 0

	result := engine.RunScenario(engine.ScenarioDefinition{
		Name: "weird", BenefitsMultiplier: 1, DelayMultiplier: -2,
	}, base)

	assert.Equal(t, 0, result.ImplementationDelayMonths)
}
