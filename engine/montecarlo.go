/*
montecarlo.go - Randomized sensitivity simulation

PURPOSE:
  Re-samples the uncertain inputs around the user's values and recomputes
  a simplified benefit total and NPV/ROI per trial, producing the
  distribution behind the risk analysis view.

SAMPLING MODEL:
  Each stochastic input is drawn independently from a normal distribution
  centered on the user value:
    reduction / improvement percentages: std dev = 20% of mean, clamped to [0,100]
    implementation delay:                std dev = 15% of mean, clamped to >= 1
    platform cost:                       std dev = 10% of mean, clamped to >= 0
    services cost:                       std dev = 15% of mean, clamped to >= 0

  The per-trial model is deliberately simplified: full benefits in every
  year, no phasing, undiscounted cost base for ROI. The deterministic
  scenario engine remains the source of truth for point estimates.

DETERMINISM:
  Trials are embarrassingly parallel. Each trial derives its RNG from
  baseSeed + trialIndex, so the output is bit-identical for a given seed
  regardless of worker count. This is a testability requirement.

CANCELLATION:
  The only long-running engine operation. Cancelling the context discards
  partial results and returns the context error.
*/
package engine

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultTrials is the standard simulation size.
const DefaultTrials = 1000

// DefaultSeed keeps repeated runs with identical inputs reproducible.
const DefaultSeed int64 = 42

// MonteCarloInput is the simulation's own flat input record. Costed
// values arrive as float64: per-trial arithmetic does not need decimal
// precision and the sampler works in floats throughout.
type MonteCarloInput struct {
	Trials int
	Seed   int64

	AlertVolume         int
	IncidentVolume      int
	MajorIncidentVolume int

	CostPerAlert    float64
	CostPerIncident float64

	AlertReductionPct    float64
	IncidentReductionPct float64
	MTTRImprovementPct   float64

	AvgMTTRHours                float64
	AvgMajorIncidentCostPerHour float64

	// Flat additive benefits (tool savings, people efficiency, FTE
	// avoidance, SLA penalty avoidance, revenue growth, CAPEX, OPEX).
	FlatBenefits float64

	ImplementationDelayMonths int
	PlatformCost              float64
	ServicesCost              float64
	EvaluationYears           int
	DiscountRate              float64
}

// MonteCarloResult carries the full per-trial vectors plus derived
// summary statistics.
type MonteCarloResult struct {
	ROI []float64 `json:"roi"`
	NPV []float64 `json:"npv"`

	Summary MonteCarloSummary `json:"summary"`
}

// MonteCarloSummary holds the distribution statistics the API reports.
type MonteCarloSummary struct {
	MedianROI float64 `json:"median_roi"`
	ROIP2     float64 `json:"roi_p2_5"`
	ROIP97    float64 `json:"roi_p97_5"`

	MedianNPV float64 `json:"median_npv"`
	NPVP2     float64 `json:"npv_p2_5"`
	NPVP97    float64 `json:"npv_p97_5"`

	ProbPositiveNPV float64 `json:"prob_positive_npv"`

	// Mean sampled go-live delay, the uncertainty view of the timeline.
	MeanDelayMonths float64 `json:"mean_delay_months"`
}

// RunMonteCarlo executes the simulation. Trials run in parallel across
// CPUs; results land in preallocated per-trial slots so no locking is
// needed.
func RunMonteCarlo(ctx context.Context, in MonteCarloInput) (*MonteCarloResult, error) {
	trials := in.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	seed := in.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	rois := make([]float64, trials)
	npvs := make([]float64, trials)
	delays := make([]float64, trials)

	g, ctx := errgroup.WithContext(ctx)
	workers := runtime.GOMAXPROCS(0)
	if workers > trials {
		workers = trials
	}
	chunk := (trials + workers - 1) / workers

	for start := 0; start < trials; start += chunk {
		start := start
		end := start + chunk
		if end > trials {
			end = trials
		}
		g.Go(func() error {
			for trial := start; trial < end; trial++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewSource(seed + int64(trial)))
				rois[trial], npvs[trial], delays[trial] = runTrial(rng, in)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MonteCarloResult{
		ROI:     rois,
		NPV:     npvs,
		Summary: summarize(rois, npvs, delays),
	}, nil
}

// runTrial samples one set of inputs and computes the simplified metrics.
// Sampling order is fixed so a given seed always produces the same draw.
func runTrial(rng *rand.Rand, in MonteCarloInput) (roi, npv, delay float64) {
	alertReduction := clamp(normal(rng, in.AlertReductionPct, 0.20), 0, 100)
	incidentReduction := clamp(normal(rng, in.IncidentReductionPct, 0.20), 0, 100)
	mttrImprovement := clamp(normal(rng, in.MTTRImprovementPct, 0.20), 0, 100)
	delay = math.Max(1, normal(rng, float64(in.ImplementationDelayMonths), 0.15))
	platformCost := math.Max(0, normal(rng, in.PlatformCost, 0.10))
	servicesCost := math.Max(0, normal(rng, in.ServicesCost, 0.15))

	alertSavings := float64(in.AlertVolume) * alertReduction / 100 * in.CostPerAlert
	incidentSavings := float64(in.IncidentVolume) * incidentReduction / 100 * in.CostPerIncident
	mttrSavings := float64(in.MajorIncidentVolume) * mttrImprovement / 100 * in.AvgMTTRHours * in.AvgMajorIncidentCostPerHour

	totalBenefits := alertSavings + incidentSavings + mttrSavings + in.FlatBenefits

	for year := 1; year <= in.EvaluationYears; year++ {
		net := totalBenefits - platformCost
		if year == 1 {
			net -= servicesCost
		}
		npv += net / math.Pow(1+in.DiscountRate, float64(year))
	}

	totalCosts := platformCost*float64(in.EvaluationYears) + servicesCost
	if totalCosts > 0 {
		roi = npv / totalCosts * 100
	}
	return roi, npv, delay
}

// normal draws from N(mean, relStd*mean). A zero mean collapses to zero,
// matching the degrade-to-zero policy for absent inputs.
func normal(rng *rand.Rand, mean, relStd float64) float64 {
	return mean + rng.NormFloat64()*mean*relStd
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// =============================================================================
// SUMMARY STATISTICS
// =============================================================================

func summarize(rois, npvs, delays []float64) MonteCarloSummary {
	positive := 0
	meanDelay := 0.0
	for i, npv := range npvs {
		if npv > 0 {
			positive++
		}
		meanDelay += delays[i]
	}
	n := float64(len(npvs))

	return MonteCarloSummary{
		MedianROI:       percentile(rois, 50),
		ROIP2:           percentile(rois, 2.5),
		ROIP97:          percentile(rois, 97.5),
		MedianNPV:       percentile(npvs, 50),
		NPVP2:           percentile(npvs, 2.5),
		NPVP97:          percentile(npvs, 97.5),
		ProbPositiveNPV: float64(positive) / n,
		MeanDelayMonths: meanDelay / n,
	}
}

// percentile computes the p-th percentile over a copy of values using
// nearest-rank with linear interpolation.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
