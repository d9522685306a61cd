/*
Package engine implements the financial projection core of the value
assessment.

PURPOSE:
  Converts operational inputs (alert/incident volumes, FTE staffing,
  salaries) into cost baselines, applies improvement percentages, projects
  multi-year cash flows under time-phased realization curves, and derives
  NPV, ROI and payback under named scenarios, Monte Carlo sampling, and a
  set of heuristic diagnostics.

KEY CONCEPTS IN THIS FILE (types.go):
  - WorkloadCategory / BenefitCategory: the fixed category vocabulary
  - BenefitLineItem / BenefitStatement: annual savings by category
  - Decimal helpers: currency math uses shopspring/decimal throughout

DESIGN PRINCIPLES:
  1. Purity: the engine is stateless; Compute takes an immutable parameter
     record and returns a fresh Results value.
  2. Precision: currency values use decimal.Decimal; ratios, percentages
     and phase factors are float64.
  3. Degrade to zero: every division that could see a zero denominator
     short-circuits to zero. The worst outcome is an all-zero result that
     the diagnostics layer explains; nothing here fails.

SEE ALSO:
  - allocation.go: cost-per-unit and utilization from workload + staffing
  - cashflow.go:   per-year cash flow assembly
  - metrics.go:    NPV, ROI, payback search
  - scenario.go:   deterministic scenario runs
  - montecarlo.go: randomized sensitivity runs
  - diagnostics.go: red flags, health checks, quality score
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// CATEGORY VOCABULARY
// =============================================================================

// WorkloadCategory identifies a cost-allocated task category.
type WorkloadCategory string

const (
	WorkloadAlerts         WorkloadCategory = "alerts"
	WorkloadIncidents      WorkloadCategory = "incidents"
	WorkloadAssetDiscovery WorkloadCategory = "asset-discovery"
)

// BenefitCategory names one source of annual savings. The set is open:
// callers may add categories without touching the engine, which only ever
// sums and reports them.
type BenefitCategory string

const (
	BenefitAlertReduction      BenefitCategory = "alert-reduction"
	BenefitAlertTriage         BenefitCategory = "alert-triage"
	BenefitIncidentReduction   BenefitCategory = "incident-reduction"
	BenefitIncidentTriage      BenefitCategory = "incident-triage"
	BenefitMTTRImprovement     BenefitCategory = "mttr-improvement"
	BenefitAssetDiscovery      BenefitCategory = "asset-discovery"
	BenefitToolConsolidation   BenefitCategory = "tool-consolidation"
	BenefitPeopleEfficiency    BenefitCategory = "people-efficiency"
	BenefitFTEAvoidance        BenefitCategory = "fte-avoidance"
	BenefitSLAPenaltyAvoidance BenefitCategory = "sla-penalty-avoidance"
	BenefitRevenueGrowth       BenefitCategory = "revenue-growth"
	BenefitCapex               BenefitCategory = "capex"
	BenefitOpex                BenefitCategory = "opex"
)

// BenefitLineItem is one category's annual value.
type BenefitLineItem struct {
	Category    BenefitCategory `json:"category"`
	AnnualValue decimal.Decimal `json:"annual_value"`
}

// BenefitStatement is an ordered collection of line items. Order is the
// order of insertion so reports render categories consistently.
type BenefitStatement struct {
	Items []BenefitLineItem
}

// Add appends a line item. Zero-valued items are kept so the breakdown
// always shows the full category set.
func (s *BenefitStatement) Add(category BenefitCategory, value decimal.Decimal) {
	s.Items = append(s.Items, BenefitLineItem{Category: category, AnnualValue: value})
}

// Value returns the annual value for a category, zero if absent.
func (s *BenefitStatement) Value(category BenefitCategory) decimal.Decimal {
	for _, it := range s.Items {
		if it.Category == category {
			return it.AnnualValue
		}
	}
	return decimal.Zero
}

// Total sums every line item.
func (s *BenefitStatement) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.AnnualValue)
	}
	return total
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

var twelve = decimal.NewFromInt(12)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// pct converts a 0-100 percentage to a decimal fraction.
func pct(p float64) decimal.Decimal { return decimal.NewFromFloat(p / 100) }

// safeDiv returns a/b, or zero when b is zero.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}
