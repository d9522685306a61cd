/*
benefits.go - Benefit calculator

PURPOSE:
  Applies reduction and efficiency percentages to a costed workload, and
  converts MTTR improvement and process automation into annual savings.

FORMULAS:
  Reduction:  avoided units eliminate their full per-unit cost.
  Efficiency: the units that remain get cheaper by the efficiency pct.
  MTTR:       hours saved per event * event volume * cost per hour.
  Automation: a flat pct of the allocated process cost.

  Flat additive categories (tool consolidation, FTE avoidance, SLA penalty
  avoidance, revenue growth, CAPEX/OPEX) are user-entered annual values
  added directly to the statement; no formula applies.
*/
package engine

import "github.com/shopspring/decimal"

// WorkloadSavings returns the reduction and efficiency savings for a
// costed workload.
//
//	avoided units      = volume * reductionPct/100
//	reduction savings  = avoided units * cost per unit
//	efficiency savings = remaining units * cost per unit * efficiencyPct/100
func WorkloadSavings(volume int, costPerUnit decimal.Decimal, reductionPct, efficiencyPct float64) (reduction, efficiency decimal.Decimal) {
	vol := decimal.NewFromInt(int64(volume))
	avoided := vol.Mul(pct(reductionPct))
	remaining := vol.Sub(avoided)

	reduction = avoided.Mul(costPerUnit)
	efficiency = remaining.Mul(costPerUnit).Mul(pct(efficiencyPct))
	return reduction, efficiency
}

// MTTRSavings returns the annual value of resolving major incidents
// faster: hours saved per event scaled by volume and cost per hour.
func MTTRSavings(majorIncidentVolume int, mttrImprovementPct, avgMTTRHours, costPerHour float64) decimal.Decimal {
	hoursSavedPerEvent := (mttrImprovementPct / 100) * avgMTTRHours
	totalHoursSaved := float64(majorIncidentVolume) * hoursSavedPerEvent
	return dec(totalHoursSaved).Mul(dec(costPerHour))
}

// AutomationSavings returns the flat share of an allocated process cost
// that automation eliminates.
func AutomationSavings(totalAllocatedCost decimal.Decimal, automationPct float64) decimal.Decimal {
	return totalAllocatedCost.Mul(pct(automationPct))
}
