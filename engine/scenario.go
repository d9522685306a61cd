/*
scenario.go - Deterministic scenario engine

PURPOSE:
  Re-runs the cash-flow projection and metrics under named parameter
  multipliers. Each scenario owns its own cash-flow sequence and result
  object; computing one scenario never mutates state read by another.

DEFAULT SCENARIOS:
  Conservative: benefits x0.7, implementation delay x1.3
  Expected:     baseline as entered
  Optimistic:   benefits x1.2, implementation delay x0.8
*/
package engine

import "github.com/shopspring/decimal"

// ScenarioDefinition names a pair of multipliers applied to the baseline.
type ScenarioDefinition struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	BenefitsMultiplier float64 `json:"benefits_multiplier"`
	DelayMultiplier    float64 `json:"delay_multiplier"`
}

// DefaultScenarios returns the three standard scenarios in display order.
func DefaultScenarios() []ScenarioDefinition {
	return []ScenarioDefinition{
		{
			Name:               "Conservative",
			Description:        "Benefits 30% lower, implementation 30% longer",
			BenefitsMultiplier: 0.7,
			DelayMultiplier:    1.3,
		},
		{
			Name:               "Expected",
			Description:        "Baseline assumptions as entered",
			BenefitsMultiplier: 1.0,
			DelayMultiplier:    1.0,
		},
		{
			Name:               "Optimistic",
			Description:        "Benefits 20% higher, implementation 20% faster",
			BenefitsMultiplier: 1.2,
			DelayMultiplier:    0.8,
		},
	}
}

// ScenarioBaseline carries the unscaled inputs every scenario starts from.
type ScenarioBaseline struct {
	TotalAnnualBenefits decimal.Decimal
	AnnualPlatformCost  decimal.Decimal
	OneTimeServicesCost decimal.Decimal
	PlatformCostByYear  []decimal.Decimal

	DelayMonths       int
	RampMonths        int
	BillingStartMonth int
	EvaluationYears   int
	DiscountRate      float64
}

// ScenarioResult is one scenario's complete projection. Created fresh on
// every recomputation; never mutated afterwards.
type ScenarioResult struct {
	Name                      string          `json:"name"`
	Description               string          `json:"description"`
	AnnualBenefits            decimal.Decimal `json:"annual_benefits"`
	ImplementationDelayMonths int             `json:"implementation_delay_months"`
	NPV                       decimal.Decimal `json:"npv"`
	ROI                       float64         `json:"roi"`
	Payback                   PaybackResult   `json:"payback"`
	CashFlows                 []CashFlowYear  `json:"cash_flows"`
}

// RunScenario applies the definition's multipliers to the baseline and
// computes the full projection. Delay months scale by truncation and
// never go negative.
func RunScenario(def ScenarioDefinition, base ScenarioBaseline) ScenarioResult {
	benefits := base.TotalAnnualBenefits.Mul(dec(def.BenefitsMultiplier))
	delay := int(float64(base.DelayMonths) * def.DelayMultiplier)
	if delay < 0 {
		delay = 0
	}

	flows := ProjectCashFlows(ProjectionInput{
		AnnualBenefits:      benefits,
		AnnualPlatformCost:  base.AnnualPlatformCost,
		OneTimeServicesCost: base.OneTimeServicesCost,
		PlatformCostByYear:  base.PlatformCostByYear,
		DelayMonths:         delay,
		RampMonths:          base.RampMonths,
		BillingStartMonth:   base.BillingStartMonth,
		EvaluationYears:     base.EvaluationYears,
	})

	npv := NPV(flows, base.DiscountRate)
	costs := TotalDiscountedCosts(flows, base.DiscountRate)

	payback := PaybackMonth(
		benefits,
		base.AnnualPlatformCost,
		base.OneTimeServicesCost,
		delay,
		base.RampMonths,
		base.BillingStartMonth,
		base.EvaluationYears*12,
	)

	return ScenarioResult{
		Name:                      def.Name,
		Description:               def.Description,
		AnnualBenefits:            benefits,
		ImplementationDelayMonths: delay,
		NPV:                       npv,
		ROI:                       ROI(npv, costs),
		Payback:                   payback,
		CashFlows:                 flows,
	}
}

// RunScenarios computes every definition against the same baseline. The
// results are mutually independent: each owns its own cash flows.
func RunScenarios(defs []ScenarioDefinition, base ScenarioBaseline) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(defs))
	for _, def := range defs {
		results = append(results, RunScenario(def, base))
	}
	return results
}
