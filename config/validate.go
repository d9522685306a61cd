/*
validate.go - Pre-computation input validation

PURPOSE:
  Checks a Parameters record for inputs that are wrong (errors) or
  suspicious (warnings) before the engine runs. Nothing here blocks
  computation: errors are surfaced as blocking messages to the user while
  the engine proceeds with best-effort values.

RULE CATEGORIES:
  1. Negative costs                        -> error
  2. Billing start beyond the horizon      -> error
  3. Unrealistic improvement percentages   -> warning
  4. Zero-cost configurations              -> warning
  5. Volume without FTEs / triage time     -> warning
  6. Working-hours sanity bounds           -> warning
  7. Timeline ordering mismatches          -> warning

SEE ALSO:
  - engine diagnostics: post-computation red flags over computed values
*/
package config

import "fmt"

// Validate runs every input rule and returns the collected issues.
// An empty slice means the inputs passed all checks.
func Validate(p Parameters) []InputIssue {
	var issues []InputIssue

	errf := func(field, format string, args ...any) {
		issues = append(issues, InputIssue{Level: LevelError, Field: field, Message: fmt.Sprintf(format, args...)})
	}
	warnf := func(field, format string, args ...any) {
		issues = append(issues, InputIssue{Level: LevelWarning, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Negative values where they make no sense
	if p.PlatformCost < 0 {
		errf("platform_cost", "platform cost cannot be negative")
	}
	if p.ServicesCost < 0 {
		errf("services_cost", "services cost cannot be negative")
	}

	// Unrealistic percentages
	if p.AlertReductionPct > 90 {
		warnf("alert_reduction_pct", "alert reduction >90%% may be unrealistic")
	}
	if p.IncidentReductionPct > 90 {
		warnf("incident_reduction_pct", "incident reduction >90%% may be unrealistic")
	}
	if p.MTTRImprovementPct > 80 {
		warnf("mttr_improvement_pct", "MTTR improvement >80%% may be unrealistic")
	}

	// Missing critical inputs
	if p.PlatformCost == 0 && p.ServicesCost == 0 {
		warnf("platform_cost", "both platform and services costs are zero - is this correct?")
	}

	// Inconsistent FTE data
	if p.AlertVolume > 0 && p.AlertFTEs == 0 {
		warnf("alert_ftes", "alert volume is set but no FTEs are assigned to alerts")
	}
	if p.IncidentVolume > 0 && p.IncidentFTEs == 0 {
		warnf("incident_ftes", "incident volume is set but no FTEs are assigned to incidents")
	}

	// Working hours sanity
	hours := workingHoursPerFTE(p)
	if hours < 1000 {
		warnf("holiday_sick_days", "working hours per FTE seems very low (<1000 hours/year)")
	}
	if hours > 3000 {
		warnf("hours_per_day", "working hours per FTE seems very high (>3000 hours/year)")
	}

	// Triage time logic
	if p.AlertVolume > 0 && p.AvgAlertTriageMinutes == 0 {
		warnf("avg_alert_triage_time", "alert volume exists but triage time is zero")
	}
	if p.IncidentVolume > 0 && p.AvgIncidentTriageMinutes == 0 {
		warnf("avg_incident_triage_time", "incident volume exists but triage time is zero")
	}

	// Timeline alignment
	if p.BillingStartMonth < p.ImplementationDelayMonths {
		warnf("billing_start_month",
			"platform costs start at month %d but benefits start at month %d",
			p.BillingStartMonth, p.ImplementationDelayMonths+1)
	}
	if p.BillingStartMonth > p.EvaluationMonths() {
		errf("billing_start_month",
			"billing start month (%d) is beyond the evaluation period (%d months)",
			p.BillingStartMonth, p.EvaluationMonths())
	}
	if p.BillingStartMonth > p.ImplementationDelayMonths+p.RampUpMonths {
		warnf("billing_start_month",
			"billing starts (month %d) after full benefit realization (month %d) - unusual scenario",
			p.BillingStartMonth, p.ImplementationDelayMonths+p.RampUpMonths)
	}

	return issues
}

// HasErrors reports whether any issue is at error level.
func HasErrors(issues []InputIssue) bool {
	for _, i := range issues {
		if i.Level == LevelError {
			return true
		}
	}
	return false
}

func workingHoursPerFTE(p Parameters) float64 {
	days := float64(p.WeeksPerYear*p.DaysPerWeek - p.HolidaySickDays)
	if days < 0 {
		days = 0
	}
	return days * p.HoursPerDay
}
