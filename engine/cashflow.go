/*
cashflow.go - Cash-flow projector

PURPOSE:
  Assembles the per-year net cash flow from annual benefits, recurring
  platform cost and the one-time services cost, under the time-phasing
  factors. Each year's factors are the average of its 12 monthly factors,
  so the yearly table stays consistent with the month-granular payback
  search in metrics.go.

LIFECYCLE:
  A projection returns a fresh []CashFlowYear; rows are never mutated
  after creation. Scenario recomputation always builds a new sequence.
*/
package engine

import "github.com/shopspring/decimal"

// CashFlowYear is one evaluation year's realized flows.
type CashFlowYear struct {
	Year                     int             `json:"year"`
	Benefits                 decimal.Decimal `json:"benefits"`
	PlatformCost             decimal.Decimal `json:"platform_cost"`
	ServicesCost             decimal.Decimal `json:"services_cost"`
	NetCashFlow              decimal.Decimal `json:"net_cash_flow"`
	BenefitRealizationFactor float64         `json:"benefit_realization_factor"`
	CostFactor               float64         `json:"cost_factor"`
}

// ProjectionInput carries everything a projection needs; one value, no
// shared state.
type ProjectionInput struct {
	AnnualBenefits      decimal.Decimal
	AnnualPlatformCost  decimal.Decimal
	OneTimeServicesCost decimal.Decimal

	// Optional per-year platform cost override, one entry per evaluation
	// year. Years beyond the slice fall back to AnnualPlatformCost.
	PlatformCostByYear []decimal.Decimal

	DelayMonths       int
	RampMonths        int
	BillingStartMonth int
	EvaluationYears   int
}

// platformCostFor returns the annual platform cost applying to year y.
func (in ProjectionInput) platformCostFor(year int) decimal.Decimal {
	if year-1 < len(in.PlatformCostByYear) {
		return in.PlatformCostByYear[year-1]
	}
	return in.AnnualPlatformCost
}

// ProjectCashFlows builds the yearly cash-flow table. Services cost is
// charged in year 1 only.
func ProjectCashFlows(in ProjectionInput) []CashFlowYear {
	flows := make([]CashFlowYear, 0, in.EvaluationYears)

	for year := 1; year <= in.EvaluationYears; year++ {
		benefitFactor, costFactor := averageFactors(year, in.DelayMonths, in.RampMonths, in.BillingStartMonth)

		benefits := in.AnnualBenefits.Mul(dec(benefitFactor))
		platform := in.platformCostFor(year).Mul(dec(costFactor))
		services := decimal.Zero
		if year == 1 {
			services = in.OneTimeServicesCost
		}

		flows = append(flows, CashFlowYear{
			Year:                     year,
			Benefits:                 benefits,
			PlatformCost:             platform,
			ServicesCost:             services,
			NetCashFlow:              benefits.Sub(platform).Sub(services),
			BenefitRealizationFactor: benefitFactor,
			CostFactor:               costFactor,
		})
	}
	return flows
}
