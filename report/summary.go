/*
Package report assembles the computed-result contract consumed by the
report and chart renderers.

PURPOSE:
  Renderers are external collaborators: they lay out documents and draw
  charts but never compute. This package flattens an engine.Results into
  plain read-only values (floats, strings, simple series) so renderers
  need no knowledge of decimal arithmetic or engine internals.

CONTENTS:
  - Executive metrics per scenario (NPV, ROI, payback)
  - Benefit breakdown with category shares
  - Before/after operational comparison
  - Break-even requirements per benefit lever
  - FTE equivalency of operational savings
  - Staffing outlook (per-year FTE pattern echo)
  - Diagnostics and quality score
  - Narrative headline

The returned Summary is a value; renderers must treat it as read-only.
*/
package report

import (
	"fmt"

	"github.com/warp/value-engine/config"
	"github.com/warp/value-engine/engine"
)

// Summary is the full renderer-facing result contract.
type Summary struct {
	SolutionName string `json:"solution_name"`
	Currency     string `json:"currency"`

	Headline string `json:"headline"`

	Scenarios []ScenarioMetrics `json:"scenarios"`

	TotalAnnualBenefits float64           `json:"total_annual_benefits"`
	BenefitBreakdown    []BenefitShare    `json:"benefit_breakdown"`
	BeforeAfter         BeforeAfter       `json:"before_after"`
	BreakEven           []BreakEvenPoint  `json:"break_even"`
	FTEEquivalency      FTEEquivalency    `json:"fte_equivalency"`
	StaffingOutlook     []StaffingYear    `json:"staffing_outlook,omitempty"`
	Findings            []engine.Finding  `json:"findings"`
	InputIssues         []config.InputIssue `json:"input_issues"`
	QualityScore        int               `json:"quality_score"`
	QualityRating       string            `json:"quality_rating"`
	Timeline            []TimelineSample  `json:"timeline"`
}

// ScenarioMetrics is the per-scenario executive view.
type ScenarioMetrics struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	NPV           float64        `json:"npv"`
	ROI           float64        `json:"roi"`
	PaybackMonths int            `json:"payback_months"`
	PaybackLabel  string         `json:"payback_label"`
	CashFlows     []CashFlowView `json:"cash_flows"`
}

// CashFlowView is one year of a scenario's table, in plain floats.
type CashFlowView struct {
	Year          int     `json:"year"`
	Benefits      float64 `json:"benefits"`
	PlatformCost  float64 `json:"platform_cost"`
	ServicesCost  float64 `json:"services_cost"`
	NetCashFlow   float64 `json:"net_cash_flow"`
	BenefitFactor float64 `json:"benefit_factor"`
	CostFactor    float64 `json:"cost_factor"`
}

// BenefitShare is one category's annual value and share of the total.
type BenefitShare struct {
	Category string  `json:"category"`
	Annual   float64 `json:"annual_value"`
	SharePct float64 `json:"share_pct"`
}

// BeforeAfter compares operational metrics with and without the platform.
type BeforeAfter struct {
	AlertsBefore    int     `json:"alerts_before"`
	AlertsAfter     int     `json:"alerts_after"`
	IncidentsBefore int     `json:"incidents_before"`
	IncidentsAfter  int     `json:"incidents_after"`
	MTTRBefore      float64 `json:"mttr_hours_before"`
	MTTRAfter       float64 `json:"mttr_hours_after"`
}

// BreakEvenPoint is the improvement percentage a single lever would need
// to cover the annualized platform investment on its own.
type BreakEvenPoint struct {
	Lever       string  `json:"lever"`
	RequiredPct float64 `json:"required_pct"`
}

// FTEEquivalency expresses operational savings as repurposable headcount.
type FTEEquivalency struct {
	OperationalSavings float64 `json:"operational_savings"`
	EffectiveSalary    float64 `json:"effective_salary"`
	EquivalentFTEs     float64 `json:"equivalent_ftes"`
}

// StaffingYear echoes the per-year FTE plan for the staffing outlook
// table when the parameter mapping supplies one.
type StaffingYear struct {
	Year int     `json:"year"`
	FTEs float64 `json:"ftes"`
}

// TimelineSample is one month of the chart renderer's timeline series.
type TimelineSample struct {
	Month          int     `json:"month"`
	BenefitFactor  float64 `json:"benefit_factor"`
	MonthlyBenefit float64 `json:"monthly_benefit"`
	MonthlyCost    float64 `json:"monthly_cost"`
}

// Build flattens a computation pass into the renderer contract.
func Build(p config.Parameters, r *engine.Results) Summary {
	s := Summary{
		SolutionName:        p.SolutionName,
		Currency:            p.Currency,
		TotalAnnualBenefits: r.TotalAnnualBenefits.InexactFloat64(),
		Findings:            append(append([]engine.Finding{}, r.RedFlags...), r.Warnings...),
		InputIssues:         r.InputIssues,
		QualityScore:        r.QualityScore,
		QualityRating:       r.QualityRating,
	}

	for _, sc := range r.Scenarios {
		m := ScenarioMetrics{
			Name:          sc.Name,
			Description:   sc.Description,
			NPV:           sc.NPV.InexactFloat64(),
			ROI:           sc.ROI,
			PaybackMonths: sc.Payback.Month,
			PaybackLabel:  sc.Payback.Label(),
		}
		for _, cf := range sc.CashFlows {
			m.CashFlows = append(m.CashFlows, CashFlowView{
				Year:          cf.Year,
				Benefits:      cf.Benefits.InexactFloat64(),
				PlatformCost:  cf.PlatformCost.InexactFloat64(),
				ServicesCost:  cf.ServicesCost.InexactFloat64(),
				NetCashFlow:   cf.NetCashFlow.InexactFloat64(),
				BenefitFactor: cf.BenefitRealizationFactor,
				CostFactor:    cf.CostFactor,
			})
		}
		s.Scenarios = append(s.Scenarios, m)
	}

	total := s.TotalAnnualBenefits
	for _, item := range r.Benefits.Items {
		annual := item.AnnualValue.InexactFloat64()
		share := 0.0
		if total > 0 {
			share = annual / total * 100
		}
		s.BenefitBreakdown = append(s.BenefitBreakdown, BenefitShare{
			Category: string(item.Category),
			Annual:   annual,
			SharePct: share,
		})
	}

	s.BeforeAfter = beforeAfter(p)
	s.BreakEven = breakEven(p, r)
	s.FTEEquivalency = fteEquivalency(p, r)

	for i, ftes := range p.FTEPatternByYear {
		s.StaffingOutlook = append(s.StaffingOutlook, StaffingYear{Year: i + 1, FTEs: ftes})
	}

	for _, tp := range r.Timeline {
		s.Timeline = append(s.Timeline, TimelineSample{
			Month:          tp.Month,
			BenefitFactor:  tp.BenefitFactor,
			MonthlyBenefit: tp.MonthlyBenefit.InexactFloat64(),
			MonthlyCost:    tp.MonthlyPlatformCost.InexactFloat64(),
		})
	}

	s.Headline = headline(p, r)
	return s
}

// headline renders the one-sentence executive takeaway from the Expected
// scenario.
func headline(p config.Parameters, r *engine.Results) string {
	expected := r.Scenario("Expected")
	if expected == nil {
		return ""
	}
	return fmt.Sprintf(
		"Adopting %s is projected to deliver %s%.0f in annual benefits, an NPV of %s%.0f over %d years (ROI %.0f%%), with payback %s.",
		p.SolutionName,
		p.Currency, r.TotalAnnualBenefits.InexactFloat64(),
		p.Currency, expected.NPV.InexactFloat64(),
		p.EvaluationYears,
		expected.ROI,
		expected.Payback.Label(),
	)
}

func beforeAfter(p config.Parameters) BeforeAfter {
	return BeforeAfter{
		AlertsBefore:    p.AlertVolume,
		AlertsAfter:     int(float64(p.AlertVolume) * (1 - p.AlertReductionPct/100)),
		IncidentsBefore: p.IncidentVolume,
		IncidentsAfter:  int(float64(p.IncidentVolume) * (1 - p.IncidentReductionPct/100)),
		MTTRBefore:      p.AvgMTTRHours,
		MTTRAfter:       p.AvgMTTRHours * (1 - p.MTTRImprovementPct/100),
	}
}

// breakEven computes, per benefit lever, the improvement percentage that
// would cover the annualized investment by itself. Levers with no cost
// baseline are omitted; results cap at 100%.
func breakEven(p config.Parameters, r *engine.Results) []BreakEvenPoint {
	if p.EvaluationYears == 0 {
		return nil
	}
	annualCost := p.PlatformCost + p.ServicesCost/float64(p.EvaluationYears)

	var points []BreakEvenPoint
	add := func(lever string, denominator float64) {
		if denominator <= 0 {
			return
		}
		required := annualCost / denominator * 100
		if required > 100 {
			required = 100
		}
		points = append(points, BreakEvenPoint{Lever: lever, RequiredPct: required})
	}

	add("alert-reduction", float64(p.AlertVolume)*r.Alerts.CostPerUnit.InexactFloat64())
	add("incident-reduction", float64(p.IncidentVolume)*r.Incidents.CostPerUnit.InexactFloat64())
	add("mttr-improvement", float64(p.MajorIncidentVolume)*p.AvgMTTRHours*p.AvgMajorIncidentCostPerHour)
	return points
}

func fteEquivalency(p config.Parameters, r *engine.Results) FTEEquivalency {
	var effective float64
	switch {
	case p.AvgAlertFTESalary > 0 && p.AvgIncidentFTESalary > 0:
		effective = (p.AvgAlertFTESalary + p.AvgIncidentFTESalary) / 2
	case p.AvgAlertFTESalary > 0:
		effective = p.AvgAlertFTESalary
	case p.AvgIncidentFTESalary > 0:
		effective = p.AvgIncidentFTESalary
	}
	return FTEEquivalency{
		OperationalSavings: r.OperationalSavings.InexactFloat64(),
		EffectiveSalary:    effective,
		EquivalentFTEs:     r.EquivalentFTEs,
	}
}
