/*
metrics.go - Discounting and investment metrics

PURPOSE:
  NPV, ROI and payback period from a cash-flow series and a discount rate.

CONVENTIONS:
  NPV  = sum over years of net cash flow / (1+rate)^year.
  ROI  = NPV / total discounted costs * 100, zero when costs are zero.
  Payback is searched month by month with the same factor primitives as
  the yearly table. The cumulative flow is seeded with -servicesCost
  before month 1; services cost is never charged again inside the loop.
  When cumulative flow never reaches zero within the horizon, the result
  is the "beyond evaluation period" sentinel, not an error.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NPV discounts the net cash flows at the given annual rate.
func NPV(flows []CashFlowYear, discountRate float64) decimal.Decimal {
	onePlusRate := dec(1 + discountRate)
	npv := decimal.Zero
	for _, cf := range flows {
		factor := onePlusRate.Pow(decimal.NewFromInt(int64(cf.Year)))
		npv = npv.Add(cf.NetCashFlow.Div(factor))
	}
	return npv
}

// TotalDiscountedCosts discounts platform plus services cost per year.
func TotalDiscountedCosts(flows []CashFlowYear, discountRate float64) decimal.Decimal {
	onePlusRate := dec(1 + discountRate)
	total := decimal.Zero
	for _, cf := range flows {
		factor := onePlusRate.Pow(decimal.NewFromInt(int64(cf.Year)))
		total = total.Add(cf.PlatformCost.Add(cf.ServicesCost).Div(factor))
	}
	return total
}

// ROI returns NPV over total discounted costs as a percentage. Zero-cost
// configurations yield 0 rather than a division fault.
func ROI(npv, totalDiscountedCosts decimal.Decimal) float64 {
	if totalDiscountedCosts.IsZero() {
		return 0
	}
	return npv.Div(totalDiscountedCosts).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// =============================================================================
// PAYBACK SEARCH
// =============================================================================

// PaybackResult reports the first month at which cumulative net cash flow
// becomes non-negative. Found is false when that never happens within the
// evaluation horizon.
type PaybackResult struct {
	Found bool `json:"found"`
	Month int  `json:"month"`
}

// Label renders the result for reports.
func (p PaybackResult) Label() string {
	if !p.Found {
		return "beyond evaluation period"
	}
	return fmt.Sprintf("%d months", p.Month)
}

// PaybackMonth walks months 1..maxMonths accumulating monthly benefit
// minus monthly platform cost under the phasing factors. The one-time
// services cost seeds the cumulative flow as the initial investment.
func PaybackMonth(annualBenefits, annualPlatformCost, oneTimeServicesCost decimal.Decimal, delayMonths, rampMonths, billingStartMonth, maxMonths int) PaybackResult {
	monthlyBenefit := annualBenefits.Div(twelve)
	monthlyPlatform := annualPlatformCost.Div(twelve)

	cumulative := oneTimeServicesCost.Neg()
	for month := 1; month <= maxMonths; month++ {
		benefit := monthlyBenefit.Mul(dec(BenefitRealizationFactor(month, delayMonths, rampMonths)))
		cost := monthlyPlatform.Mul(dec(PlatformCostFactor(month, billingStartMonth)))
		cumulative = cumulative.Add(benefit).Sub(cost)

		if cumulative.Sign() >= 0 {
			return PaybackResult{Found: true, Month: month}
		}
	}
	return PaybackResult{}
}
