/*
diagnostics.go - Calculation red flags, health checks and quality score

PURPOSE:
  Inspects computed intermediate values (utilization, cost per unit,
  benefit-to-cost ratio) against heuristic thresholds and emits structured
  findings. Findings never block computation; they explain degenerate or
  suspicious numbers so the user can self-diagnose without re-deriving the
  math. Every finding embeds the inputs and intermediates that produced
  it, and its message is a worked calculation, not just a verdict.

RULES:
  Red flags:
    cost per alert > 100           -> high
    cost per incident > 500        -> high
    utilization ratio > 1.0        -> critical ("over-allocated")
    benefits > 3x total FTE costs  -> medium ("disproportionate benefits")
  Warnings:
    utilization in (0, 0.1)        -> low ("under-utilized")
    alert:incident ratio < 2       -> medium ("unusual ratio")

QUALITY SCORE:
  100 minus 30 per critical, 20 per high, 10 per medium red flag and 5
  per warning, floored at 0.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/value-engine/config"
)

// =============================================================================
// FINDING MODEL
// =============================================================================

// FindingKind separates hard red flags from advisory warnings.
type FindingKind string

const (
	KindRedFlag FindingKind = "red_flag"
	KindWarning FindingKind = "warning"
)

// Severity ranks a finding. The quality score penalizes by severity.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Finding is one structured diagnostic. Computed carries the intermediate
// values behind the message so renderers can show the breakdown.
type Finding struct {
	Kind     FindingKind        `json:"kind"`
	Category string             `json:"category"`
	Severity Severity           `json:"severity"`
	Value    string             `json:"value"`
	Message  string             `json:"message"`
	Computed map[string]float64 `json:"computed_values"`
}

// Finding categories. Stable identifiers the tests and renderers key on.
const (
	CategoryHighCostPerAlert    = "high-cost-per-alert"
	CategoryHighCostPerIncident = "high-cost-per-incident"
	CategoryOverAllocated       = "over-allocated"
	CategoryDisproportionate    = "disproportionate-benefits"
	CategoryUnderUtilized       = "under-utilized"
	CategoryUnusualRatio        = "unusual-alert-incident-ratio"
)

// Cost-per-unit thresholds in currency units.
const (
	costPerAlertThreshold    = 100.0
	costPerIncidentThreshold = 500.0
)

// =============================================================================
// RED FLAG DETECTION
// =============================================================================

// DetectFindings evaluates every rule against the computed state and
// returns red flags and warnings separately.
func DetectFindings(p config.Parameters, alerts, incidents AllocationResult, totalAnnualBenefits decimal.Decimal) (redFlags, warnings []Finding) {
	cur := p.Currency

	// High cost per unit, with the reconstruction of how it was derived.
	if f, ok := highCostFinding(CategoryHighCostPerAlert, "alert", cur, alerts, p.AlertVolume, p.AlertFTEs, p.AlertFTETimePct, p.AvgAlertFTESalary, costPerAlertThreshold); ok {
		redFlags = append(redFlags, f)
	}
	if f, ok := highCostFinding(CategoryHighCostPerIncident, "incident", cur, incidents, p.IncidentVolume, p.IncidentFTEs, p.IncidentFTETimePct, p.AvgIncidentFTESalary, costPerIncidentThreshold); ok {
		redFlags = append(redFlags, f)
	}

	// Over-allocation: workload needs more hours than were budgeted.
	if f, ok := overAllocationFinding("alert", alerts, p.AlertFTEs, p.AlertFTETimePct, p.AvgAlertTriageMinutes, p.AlertVolume); ok {
		redFlags = append(redFlags, f)
	}
	if f, ok := overAllocationFinding("incident", incidents, p.IncidentFTEs, p.IncidentFTETimePct, p.AvgIncidentTriageMinutes, p.IncidentVolume); ok {
		redFlags = append(redFlags, f)
	}

	// Disproportionately high benefits against the FTE cost base.
	totalFTECosts := p.AlertFTEs*p.AvgAlertFTESalary + p.IncidentFTEs*p.AvgIncidentFTESalary
	benefits := totalAnnualBenefits.InexactFloat64()
	if totalFTECosts > 0 && benefits > totalFTECosts*3 {
		ratio := benefits / totalFTECosts
		redFlags = append(redFlags, Finding{
			Kind:     KindRedFlag,
			Category: CategoryDisproportionate,
			Severity: SeverityMedium,
			Value:    fmt.Sprintf("%s%.0f", cur, benefits),
			Message: fmt.Sprintf(
				"Total annual benefits (%s%.0f) are %.1fx total FTE costs (%s%.0f). "+
					"Typical ratios run 0.5x-3.0x; check improvement percentages and double-counted benefits.",
				cur, benefits, ratio, cur, totalFTECosts),
			Computed: map[string]float64{
				"total_annual_benefits": benefits,
				"total_fte_costs":       totalFTECosts,
				"ratio":                 ratio,
			},
		})
	}

	// Very low utilization of the allocated time.
	if f, ok := underUtilizationFinding("alert", alerts, p.AlertFTETimePct); ok {
		warnings = append(warnings, f)
	}
	if f, ok := underUtilizationFinding("incident", incidents, p.IncidentFTETimePct); ok {
		warnings = append(warnings, f)
	}

	// Alert-to-incident ratio sanity.
	if p.AlertVolume > 0 && p.IncidentVolume > 0 {
		ratio := float64(p.AlertVolume) / float64(p.IncidentVolume)
		if ratio < 2 {
			warnings = append(warnings, Finding{
				Kind:     KindWarning,
				Category: CategoryUnusualRatio,
				Severity: SeverityMedium,
				Value:    fmt.Sprintf("%.1f:1", ratio),
				Message: fmt.Sprintf(
					"Alert-to-incident ratio is %.1f:1 (%d alerts / %d incidents). "+
						"Typical environments run 5:1 to 50:1; alerts may actually be incidents, or there is a data collection issue.",
					ratio, p.AlertVolume, p.IncidentVolume),
				Computed: map[string]float64{
					"alert_volume":    float64(p.AlertVolume),
					"incident_volume": float64(p.IncidentVolume),
					"ratio":           ratio,
				},
			})
		}
	}

	return redFlags, warnings
}

func highCostFinding(category, label, cur string, alloc AllocationResult, volume int, ftes, timePct, salary, threshold float64) (Finding, bool) {
	costPerUnit := alloc.CostPerUnit.InexactFloat64()
	if costPerUnit <= threshold {
		return Finding{}, false
	}
	annualFTECost := ftes * salary
	allocated := alloc.TotalAllocatedCost.InexactFloat64()
	return Finding{
		Kind:     KindRedFlag,
		Category: category,
		Severity: SeverityHigh,
		Value:    fmt.Sprintf("%s%.2f", cur, costPerUnit),
		Message: fmt.Sprintf(
			"Calculated cost per %s is %s%.2f, above the %s%.0f threshold. "+
				"Derivation: annual FTE cost %s%.0f x %.0f%% time allocated = %s%.0f allocated cost, divided by %d %ss. "+
				"Check whether the time percentage, FTE count or salaries are realistic for this volume.",
			label, cur, costPerUnit, cur, threshold,
			cur, annualFTECost, timePct, cur, allocated, volume, label),
		Computed: map[string]float64{
			"cost_per_unit":   costPerUnit,
			"annual_fte_cost": annualFTECost,
			"fte_time_pct":    timePct,
			"allocated_cost":  allocated,
			"volume":          float64(volume),
		},
	}, true
}

func overAllocationFinding(label string, alloc AllocationResult, ftes, timePct, handlingMinutes float64, volume int) (Finding, bool) {
	if alloc.UtilizationRatio <= 1.0 {
		return Finding{}, false
	}
	return Finding{
		Kind:     KindRedFlag,
		Category: CategoryOverAllocated,
		Severity: SeverityCritical,
		Value:    fmt.Sprintf("%.1f%% utilization of allocated time", alloc.UtilizationRatio*100),
		Message: fmt.Sprintf(
			"The %s workload requires more time than was allocated. "+
				"Time needed: %d units x %.0f min = %.0f hours/year. "+
				"Time allocated: %.1f FTEs x %.0f hours x %.0f%% = %.0f hours/year. "+
				"Utilization: %.0f / %.0f = %.1f%%. "+
				"Increase the time percentage or FTE count, or reduce handling time or volume.",
			label,
			volume, handlingMinutes, alloc.HoursRequired,
			ftes, alloc.WorkingHoursPerFTE, timePct, alloc.HoursAllocated,
			alloc.HoursRequired, alloc.HoursAllocated, alloc.UtilizationRatio*100),
		Computed: map[string]float64{
			"hours_required":    alloc.HoursRequired,
			"hours_allocated":   alloc.HoursAllocated,
			"utilization_ratio": alloc.UtilizationRatio,
			"ftes":              ftes,
			"fte_time_pct":      timePct,
		},
	}, true
}

func underUtilizationFinding(label string, alloc AllocationResult, timePct float64) (Finding, bool) {
	u := alloc.UtilizationRatio
	if u <= 0 || u >= 0.1 {
		return Finding{}, false
	}
	return Finding{
		Kind:     KindWarning,
		Category: CategoryUnderUtilized,
		Severity: SeverityLow,
		Value:    fmt.Sprintf("%.1f%%", u*100),
		Message: fmt.Sprintf(
			"The %s workload uses only %.1f%% of the FTE time allocated to it "+
				"(%.0f hours needed of %.0f allocated). The %.0f%% time allocation may be too high, "+
				"or handling time and volume may be underestimated.",
			label, u*100, alloc.HoursRequired, alloc.HoursAllocated, timePct),
		Computed: map[string]float64{
			"hours_required":    alloc.HoursRequired,
			"hours_allocated":   alloc.HoursAllocated,
			"utilization_ratio": u,
			"fte_time_pct":      timePct,
		},
	}, true
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// HealthCheck returns short sanity messages shown at the top of the
// assessment. Stricter benefit threshold (2x) than the red-flag detector,
// matching its role as an early caution rather than a finding.
func HealthCheck(p config.Parameters, alerts, incidents AllocationResult, totalAnnualBenefits decimal.Decimal) []string {
	var issues []string

	if alerts.UtilizationRatio > 1.0 {
		issues = append(issues, fmt.Sprintf(
			"Alert management requires %.1f%% of allocated FTE time (>100%%)", alerts.UtilizationRatio*100))
	}
	if incidents.UtilizationRatio > 1.0 {
		issues = append(issues, fmt.Sprintf(
			"Incident management requires %.1f%% of allocated FTE time (>100%%)", incidents.UtilizationRatio*100))
	}

	totalFTECosts := p.AlertFTEs*p.AvgAlertFTESalary + p.IncidentFTEs*p.AvgIncidentFTESalary
	if totalFTECosts > 0 && totalAnnualBenefits.InexactFloat64() > totalFTECosts*2 {
		issues = append(issues, "Total annual benefits exceed 2x total FTE costs - please verify assumptions")
	}

	return issues
}

// =============================================================================
// DATA QUALITY SCORE
// =============================================================================

// Fixed penalties per finding severity.
const (
	penaltyCritical = 30
	penaltyHigh     = 20
	penaltyMedium   = 10
	penaltyWarning  = 5
)

// QualityScore derives the composite 0-100 data quality score.
func QualityScore(redFlags, warnings []Finding) int {
	score := 100
	for _, f := range redFlags {
		switch f.Severity {
		case SeverityCritical:
			score -= penaltyCritical
		case SeverityHigh:
			score -= penaltyHigh
		case SeverityMedium:
			score -= penaltyMedium
		}
	}
	score -= len(warnings) * penaltyWarning
	if score < 0 {
		score = 0
	}
	return score
}

// QualityRating maps a score to its display band.
func QualityRating(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "needs-review"
	default:
		return "poor"
	}
}
