package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/engine"
)

// =============================================================================
// MONTE CARLO TESTS
// =============================================================================

func testMonteCarloInput() engine.MonteCarloInput {
	return engine.MonteCarloInput{
		Trials: 500,
		Seed:   engine.DefaultSeed,

		AlertVolume:         100000,
		IncidentVolume:      20000,
		MajorIncidentVolume: 24,

		CostPerAlert:    12,
		CostPerIncident: 60,

		AlertReductionPct:    40,
		IncidentReductionPct: 30,
		MTTRImprovementPct:   25,

		AvgMTTRHours:                8,
		AvgMajorIncidentCostPerHour: 10000,

		FlatBenefits: 100000,

		ImplementationDelayMonths: 6,
		PlatformCost:              200000,
		ServicesCost:              100000,
		EvaluationYears:           3,
		DiscountRate:              0.10,
	}
}

func TestRunMonteCarlo_SameSeedSameResults(t *testing.T) {
	// GIVEN: Two runs with identical inputs and seed
	// THEN: Per-trial vectors are identical, so summaries are too

	ctx := context.Background()
	in := testMonteCarloInput()

	first, err := engine.RunMonteCarlo(ctx, in)
	require.NoError(t, err)
	second, err := engine.RunMonteCarlo(ctx, in)
	require.NoError(t, err)

	require.Len(t, first.ROI, 500)
	assert.Equal(t, first.ROI, second.ROI)
	assert.Equal(t, first.NPV, second.NPV)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestRunMonteCarlo_DifferentSeedDifferentResults(t *testing.T) {
	ctx := context.Background()
	in := testMonteCarloInput()

	first, err := engine.RunMonteCarlo(ctx, in)
	require.NoError(t, err)

	in.Seed = 777
	second, err := engine.RunMonteCarlo(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ROI, second.ROI)
}

func TestRunMonteCarlo_DefaultsWhenUnset(t *testing.T) {
	ctx := context.Background()
	in := testMonteCarloInput()
	in.Trials = 0
	in.Seed = 0

	result, err := engine.RunMonteCarlo(ctx, in)
	require.NoError(t, err)
	assert.Len(t, result.ROI, engine.DefaultTrials)
	assert.Len(t, result.NPV, engine.DefaultTrials)
}

func TestRunMonteCarlo_SummaryBounds(t *testing.T) {
	ctx := context.Background()
	result, err := engine.RunMonteCarlo(ctx, testMonteCarloInput())
	require.NoError(t, err)

	s := result.Summary
	assert.GreaterOrEqual(t, s.ProbPositiveNPV, 0.0)
	assert.LessOrEqual(t, s.ProbPositiveNPV, 1.0)

	// Percentile ordering must hold by construction.
	assert.LessOrEqual(t, s.ROIP2, s.MedianROI)
	assert.LessOrEqual(t, s.MedianROI, s.ROIP97)
	assert.LessOrEqual(t, s.NPVP2, s.MedianNPV)
	assert.LessOrEqual(t, s.MedianNPV, s.NPVP97)

	// Sampled delay is clamped to at least one month.
	assert.GreaterOrEqual(t, s.MeanDelayMonths, 1.0)
}

func TestRunMonteCarlo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunMonteCarlo(ctx, testMonteCarloInput())
	assert.Error(t, err)
}
