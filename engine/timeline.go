/*
timeline.go - Time-phasing primitives

PURPOSE:
  Every cash-flow calculation composes two per-month factor functions:

  BenefitRealizationFactor: what fraction of steady-state benefits is
    realized in a given month. Zero during implementation, linear during
    ramp-up, one afterwards.

  PlatformCostFactor: whether platform billing is active in a given month.
    A step function at the billing start month.

  Both are pure, total, stepwise-linear, monotonic and idempotent. Months
  are 1-indexed from project start; callers guarantee month >= 1.

  MonthlyTimeline expands the factors into a per-month series of realized
  benefit and platform cost, the input to the chart renderer's
  implementation-timeline visual.
*/
package engine

import "github.com/shopspring/decimal"

// BenefitRealizationFactor returns the fraction of benefits realized in
// the given month (1-indexed). Returns 0 through the implementation
// delay, ramps linearly over rampMonths, then holds at 1.
func BenefitRealizationFactor(month, delayMonths, rampMonths int) float64 {
	if month <= delayMonths {
		return 0
	}
	if rampMonths == 0 {
		return 1
	}
	f := float64(month-delayMonths) / float64(rampMonths)
	if f > 1 {
		return 1
	}
	return f
}

// PlatformCostFactor returns 1 when platform billing is active in the
// given month, 0 before the billing start month.
func PlatformCostFactor(month, billingStartMonth int) float64 {
	if month >= billingStartMonth {
		return 1
	}
	return 0
}

// averageFactors returns the mean benefit and cost factor over the 12
// months of evaluation year y (1-indexed). Year rows and month-level
// payback search both build on the same per-month primitives, so the two
// granularities agree at year boundaries.
func averageFactors(year, delayMonths, rampMonths, billingStartMonth int) (benefit, cost float64) {
	start := (year-1)*12 + 1
	for month := start; month < start+12; month++ {
		benefit += BenefitRealizationFactor(month, delayMonths, rampMonths)
		cost += PlatformCostFactor(month, billingStartMonth)
	}
	return benefit / 12, cost / 12
}

// =============================================================================
// TIMELINE SERIES - Chart renderer input
// =============================================================================

// TimelinePoint is one month of the implementation timeline.
type TimelinePoint struct {
	Month               int             `json:"month"`
	BenefitFactor       float64         `json:"benefit_factor"`
	CostFactor          float64         `json:"cost_factor"`
	MonthlyBenefit      decimal.Decimal `json:"monthly_benefit"`
	MonthlyPlatformCost decimal.Decimal `json:"monthly_platform_cost"`
}

// MonthlyTimeline expands annual benefits and platform cost into the
// per-month realized series over the whole evaluation horizon.
func MonthlyTimeline(annualBenefits, annualPlatformCost decimal.Decimal, delayMonths, rampMonths, billingStartMonth, evaluationYears int) []TimelinePoint {
	months := evaluationYears * 12
	points := make([]TimelinePoint, 0, months)
	monthlyBenefit := annualBenefits.Div(twelve)
	monthlyCost := annualPlatformCost.Div(twelve)

	for month := 1; month <= months; month++ {
		bf := BenefitRealizationFactor(month, delayMonths, rampMonths)
		cf := PlatformCostFactor(month, billingStartMonth)
		points = append(points, TimelinePoint{
			Month:               month,
			BenefitFactor:       bf,
			CostFactor:          cf,
			MonthlyBenefit:      monthlyBenefit.Mul(dec(bf)),
			MonthlyPlatformCost: monthlyCost.Mul(dec(cf)),
		})
	}
	return points
}
