/*
compute.go - Top-level computation pass

PURPOSE:
  The single entry point the hosting application calls on every input
  change: an explicit recompute over an immutable parameter record. All
  intermediate values are local to one pass; the returned Results value is
  the only thing published downstream, and callers treat it as read-only.

PIPELINE:
  parameters -> cost allocation -> benefit statement -> scenario runs
             -> diagnostics -> timeline series

  Running Compute twice with equal parameters yields equal results; there
  is no hidden state.
*/
package engine

import (
	"github.com/shopspring/decimal"
	"github.com/warp/value-engine/config"
)

// Results is one computation pass's complete output.
type Results struct {
	// Boundary validation of the inputs this pass ran with.
	InputIssues []config.InputIssue `json:"input_issues"`

	WorkingHoursPerFTE float64 `json:"working_hours_per_fte"`

	// Cost baselines per workload category.
	Alerts         AllocationResult `json:"alerts"`
	Incidents      AllocationResult `json:"incidents"`
	AssetDiscovery AllocationResult `json:"asset_discovery"`

	Benefits            BenefitStatement `json:"benefits"`
	TotalAnnualBenefits decimal.Decimal  `json:"total_annual_benefits"`

	// One result per scenario, Conservative / Expected / Optimistic order.
	Scenarios []ScenarioResult `json:"scenarios"`

	RedFlags      []Finding `json:"red_flags"`
	Warnings      []Finding `json:"warnings"`
	HealthIssues  []string  `json:"health_issues"`
	QualityScore  int       `json:"quality_score"`
	QualityRating string    `json:"quality_rating"`

	// Per-month series for the chart renderer, baseline timing.
	Timeline []TimelinePoint `json:"timeline"`

	// Savings that come from time freed inside the operations team, and
	// their expression as repurposable headcount.
	OperationalSavings decimal.Decimal `json:"operational_savings"`
	EquivalentFTEs     float64         `json:"equivalent_ftes"`
}

// Scenario returns the named scenario result, nil if absent.
func (r *Results) Scenario(name string) *ScenarioResult {
	for i := range r.Scenarios {
		if r.Scenarios[i].Name == name {
			return &r.Scenarios[i]
		}
	}
	return nil
}

// Compute runs the full pipeline over a parameter record. It never fails:
// degenerate inputs degrade to zero-valued outputs that the diagnostics
// explain.
func Compute(p config.Parameters) *Results {
	cal := WorkforceCalendar{
		HoursPerDay:     p.HoursPerDay,
		DaysPerWeek:     p.DaysPerWeek,
		WeeksPerYear:    p.WeeksPerYear,
		HolidaySickDays: p.HolidaySickDays,
	}

	// Cost baselines.
	alerts := AllocateCosts(WorkloadInput{
		Category:           WorkloadAlerts,
		Volume:             p.AlertVolume,
		FTEs:               p.AlertFTEs,
		FTETimePct:         p.AlertFTETimePct,
		AvgHandlingMinutes: p.AvgAlertTriageMinutes,
		AvgAnnualSalary:    p.AvgAlertFTESalary,
	}, cal)

	incidents := AllocateCosts(WorkloadInput{
		Category:           WorkloadIncidents,
		Volume:             p.IncidentVolume,
		FTEs:               p.IncidentFTEs,
		FTETimePct:         p.IncidentFTETimePct,
		AvgHandlingMinutes: p.AvgIncidentTriageMinutes,
		AvgAnnualSalary:    p.AvgIncidentFTESalary,
	}, cal)

	// Discovery cycles are the unit of work; handling time is the cycle
	// length. No assets under management means no discovery workload.
	discoveryWorkload := WorkloadInput{Category: WorkloadAssetDiscovery}
	if p.AssetVolume > 0 {
		discoveryWorkload = WorkloadInput{
			Category:           WorkloadAssetDiscovery,
			Volume:             p.DiscoveryCyclesPerYear,
			FTEs:               p.AssetFTEs,
			FTETimePct:         p.AssetFTETimePct,
			AvgHandlingMinutes: p.HoursPerDiscoveryCycle * 60,
			AvgAnnualSalary:    p.AvgAssetFTESalary,
		}
	}
	discovery := AllocateCosts(discoveryWorkload, cal)

	// Benefit statement: derived categories first, then the flat inputs.
	var benefits BenefitStatement

	alertReduction, alertTriage := WorkloadSavings(p.AlertVolume, alerts.CostPerUnit, p.AlertReductionPct, p.AlertTriageTimeSavedPct)
	benefits.Add(BenefitAlertReduction, alertReduction)
	benefits.Add(BenefitAlertTriage, alertTriage)

	incidentReduction, incidentTriage := WorkloadSavings(p.IncidentVolume, incidents.CostPerUnit, p.IncidentReductionPct, p.IncidentTriageTimeSavedPct)
	benefits.Add(BenefitIncidentReduction, incidentReduction)
	benefits.Add(BenefitIncidentTriage, incidentTriage)

	benefits.Add(BenefitMTTRImprovement, MTTRSavings(p.MajorIncidentVolume, p.MTTRImprovementPct, p.AvgMTTRHours, p.AvgMajorIncidentCostPerHour))
	benefits.Add(BenefitAssetDiscovery, AutomationSavings(discovery.TotalAllocatedCost, p.AssetDiscoveryAutomationPct))

	benefits.Add(BenefitToolConsolidation, dec(p.ToolSavings))
	benefits.Add(BenefitPeopleEfficiency, dec(p.PeopleEfficiency))
	benefits.Add(BenefitFTEAvoidance, dec(p.FTEAvoidance))
	benefits.Add(BenefitSLAPenaltyAvoidance, dec(p.SLAPenaltyAvoidance))
	benefits.Add(BenefitRevenueGrowth, dec(p.RevenueGrowth))
	benefits.Add(BenefitCapex, dec(p.CapexSavings))
	benefits.Add(BenefitOpex, dec(p.OpexSavings))

	totalBenefits := benefits.Total()

	// Scenario runs over the shared baseline.
	var platformByYear []decimal.Decimal
	for _, v := range p.PlatformCostsByYear {
		platformByYear = append(platformByYear, dec(v))
	}

	base := ScenarioBaseline{
		TotalAnnualBenefits: totalBenefits,
		AnnualPlatformCost:  dec(p.PlatformCost),
		OneTimeServicesCost: dec(p.ServicesCost),
		PlatformCostByYear:  platformByYear,
		DelayMonths:         p.ImplementationDelayMonths,
		RampMonths:          p.RampUpMonths,
		BillingStartMonth:   p.BillingStartMonth,
		EvaluationYears:     p.EvaluationYears,
		DiscountRate:        p.DiscountRate(),
	}
	scenarios := RunScenarios(DefaultScenarios(), base)

	// Diagnostics over the computed state.
	redFlags, warnings := DetectFindings(p, alerts, incidents, totalBenefits)
	score := QualityScore(redFlags, warnings)

	// Operational savings: the time-freed categories only.
	operational := benefits.Value(BenefitAlertReduction).
		Add(benefits.Value(BenefitAlertTriage)).
		Add(benefits.Value(BenefitIncidentReduction)).
		Add(benefits.Value(BenefitIncidentTriage)).
		Add(benefits.Value(BenefitMTTRImprovement))

	return &Results{
		InputIssues:         config.Validate(p),
		WorkingHoursPerFTE:  cal.WorkingHoursPerFTE(),
		Alerts:              alerts,
		Incidents:           incidents,
		AssetDiscovery:      discovery,
		Benefits:            benefits,
		TotalAnnualBenefits: totalBenefits,
		Scenarios:           scenarios,
		RedFlags:            redFlags,
		Warnings:            warnings,
		HealthIssues:        HealthCheck(p, alerts, incidents, totalBenefits),
		QualityScore:        score,
		QualityRating:       QualityRating(score),
		Timeline: MonthlyTimeline(totalBenefits, dec(p.PlatformCost),
			p.ImplementationDelayMonths, p.RampUpMonths, p.BillingStartMonth, p.EvaluationYears),
		OperationalSavings: operational,
		EquivalentFTEs:     equivalentFTEs(operational, p),
	}
}

// equivalentFTEs expresses operational savings as headcount using the
// average of the alert and incident salaries, whichever are set.
func equivalentFTEs(operationalSavings decimal.Decimal, p config.Parameters) float64 {
	var effectiveSalary float64
	switch {
	case p.AvgAlertFTESalary > 0 && p.AvgIncidentFTESalary > 0:
		effectiveSalary = (p.AvgAlertFTESalary + p.AvgIncidentFTESalary) / 2
	case p.AvgAlertFTESalary > 0:
		effectiveSalary = p.AvgAlertFTESalary
	case p.AvgIncidentFTESalary > 0:
		effectiveSalary = p.AvgIncidentFTESalary
	}
	if effectiveSalary == 0 {
		return 0
	}
	return operationalSavings.InexactFloat64() / effectiveSalary
}

// MonteCarloInputFrom builds the simulation input from the parameter
// record and the computed cost baselines, using default trial count and
// seed. The flat-benefit sum mirrors the direct user-entered categories.
func MonteCarloInputFrom(p config.Parameters, r *Results) MonteCarloInput {
	flat := p.ToolSavings + p.PeopleEfficiency + p.FTEAvoidance +
		p.SLAPenaltyAvoidance + p.RevenueGrowth + p.CapexSavings + p.OpexSavings

	return MonteCarloInput{
		Trials: DefaultTrials,
		Seed:   DefaultSeed,

		AlertVolume:         p.AlertVolume,
		IncidentVolume:      p.IncidentVolume,
		MajorIncidentVolume: p.MajorIncidentVolume,

		CostPerAlert:    r.Alerts.CostPerUnit.InexactFloat64(),
		CostPerIncident: r.Incidents.CostPerUnit.InexactFloat64(),

		AlertReductionPct:    p.AlertReductionPct,
		IncidentReductionPct: p.IncidentReductionPct,
		MTTRImprovementPct:   p.MTTRImprovementPct,

		AvgMTTRHours:                p.AvgMTTRHours,
		AvgMajorIncidentCostPerHour: p.AvgMajorIncidentCostPerHour,

		FlatBenefits: flat,

		ImplementationDelayMonths: p.ImplementationDelayMonths,
		PlatformCost:              p.PlatformCost,
		ServicesCost:              p.ServicesCost,
		EvaluationYears:           p.EvaluationYears,
		DiscountRate:              p.DiscountRate(),
	}
}
