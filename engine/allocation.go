/*
allocation.go - Cost-allocation engine

PURPOSE:
  Converts raw workload (volume x handling time) and FTE staffing
  (headcount x salary x %-time-allocated) into a fully-loaded cost per
  unit of work and a utilization ratio.

KEY INSIGHT:
  Cost allocation is driven by the user-declared FTE time percentage, not
  by computed utilization. "How much time the workload needs" and "how
  much time is billed to this cost center" are decoupled on purpose:
  utilization is a diagnostic signal (over- or under-allocation), never a
  divisor for cost.

GUARDS:
  volume == 0 or ftes == 0 yields an all-zero result. That is
  "insufficient data", not an error; the diagnostics layer explains
  degenerate outputs to the user.
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// INPUTS
// =============================================================================

// WorkloadInput describes one task category's volume and staffing.
// Immutable per calculation pass.
type WorkloadInput struct {
	Category           WorkloadCategory
	Volume             int     // units of work per year
	FTEs               float64 // headcount assigned to the category
	FTETimePct         float64 // declared % of FTE time billed to the category
	AvgHandlingMinutes float64 // average minutes per unit of work
	AvgAnnualSalary    float64 // fully-loaded annual salary per FTE
}

// WorkforceCalendar derives the working hours available per FTE per year.
type WorkforceCalendar struct {
	HoursPerDay     float64
	DaysPerWeek     int
	WeeksPerYear    int
	HolidaySickDays int
}

// WorkingHoursPerFTE returns (weeks*days - holidaySickDays) * hoursPerDay,
// floored at zero. A non-positive calendar makes every allocation ratio
// undefined; the zero floor turns that into zero cost rather than a fault.
func (c WorkforceCalendar) WorkingHoursPerFTE() float64 {
	days := float64(c.WeeksPerYear*c.DaysPerWeek - c.HolidaySickDays)
	if days < 0 {
		days = 0
	}
	return days * c.HoursPerDay
}

// =============================================================================
// OUTPUT
// =============================================================================

// AllocationResult is the computed cost baseline for one workload.
type AllocationResult struct {
	Category           WorkloadCategory `json:"category"`
	CostPerUnit        decimal.Decimal  `json:"cost_per_unit"`
	TotalAllocatedCost decimal.Decimal  `json:"total_allocated_cost"`
	UtilizationRatio   float64          `json:"utilization_ratio"`
	WorkingHoursPerFTE float64          `json:"working_hours_per_fte"`
	HoursRequired      float64          `json:"hours_required"`
	HoursAllocated     float64          `json:"hours_allocated"`
}

// AllocateCosts computes the cost baseline for one workload category.
//
//	hours required   = volume * handling minutes / 60
//	hours allocated  = ftes * working hours * (time pct / 100)
//	utilization      = required / allocated           (0 if allocated == 0)
//	allocated cost   = ftes * salary * (time pct / 100)
//	cost per unit    = allocated cost / volume        (0 if volume == 0)
//
// UtilizationRatio > 1.0 means the workload needs more hours than were
// budgeted; the diagnostics engine flags it, this function does not.
func AllocateCosts(w WorkloadInput, cal WorkforceCalendar) AllocationResult {
	result := AllocationResult{
		Category:           w.Category,
		CostPerUnit:        decimal.Zero,
		TotalAllocatedCost: decimal.Zero,
		WorkingHoursPerFTE: cal.WorkingHoursPerFTE(),
	}

	if w.Volume == 0 || w.FTEs == 0 {
		return result
	}

	result.HoursRequired = float64(w.Volume) * w.AvgHandlingMinutes / 60

	hoursAvailable := w.FTEs * result.WorkingHoursPerFTE
	result.HoursAllocated = hoursAvailable * (w.FTETimePct / 100)

	if result.HoursAllocated > 0 {
		result.UtilizationRatio = result.HoursRequired / result.HoursAllocated
	}

	totalCost := dec(w.FTEs).Mul(dec(w.AvgAnnualSalary))
	result.TotalAllocatedCost = totalCost.Mul(pct(w.FTETimePct))
	result.CostPerUnit = safeDiv(result.TotalAllocatedCost, decimal.NewFromInt(int64(w.Volume)))

	return result
}
