/*
Package config defines the typed input contract of the value engine.

PURPOSE:
  The engine computes everything from a single Parameters record. This
  package owns that record: its named fields, its explicit defaults, and
  the round-trip to the flat string-keyed mapping that the input surface
  and the export/import codec speak.

KEY CONCEPTS:
  - Parameters: strongly-typed assessment inputs, one field per parameter
  - Defaults(): the canonical default values, applied once at the boundary
  - FromMap / ToMap: conversion to and from the flat parameter mapping,
    with numeric coercion of string values on the way in
  - List-valued keys: per-year values (platform_costs_year_<i>,
    fte_pattern_year_<i>) flattened to suffixed keys and reassembled by
    numeric suffix order

DESIGN PRINCIPLES:
  1. One boundary: untyped data is parsed and defaulted exactly once here;
     downstream code only ever sees the typed record.
  2. Tolerance: unknown keys and malformed values produce InputIssues,
     never failures. The engine is a warning-then-continue system.

SEE ALSO:
  - validate.go: pre-computation validation rules
  - templates.go: industry benchmark presets
  - codec package: CSV/JSON serialization of the flat mapping
*/
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// PARAMETERS - Typed assessment inputs
// =============================================================================

// Parameters holds every input the engine consumes. Field groups mirror
// the sections of the assessment: timeline, workforce calendar, the three
// workload categories, additional benefits, costs, financial settings.
type Parameters struct {
	// Basic configuration
	SolutionName     string
	IndustryTemplate string
	Currency         string

	// Implementation timeline
	ImplementationDelayMonths int
	RampUpMonths              int
	BillingStartMonth         int

	// Workforce calendar
	HoursPerDay     float64
	DaysPerWeek     int
	WeeksPerYear    int
	HolidaySickDays int

	// Alert management
	AlertVolume             int
	AlertFTEs               float64
	AlertFTETimePct         float64
	AvgAlertTriageMinutes   float64
	AvgAlertFTESalary       float64
	AlertReductionPct       float64
	AlertTriageTimeSavedPct float64

	// Incident management
	IncidentVolume             int
	IncidentFTEs               float64
	IncidentFTETimePct         float64
	AvgIncidentTriageMinutes   float64
	AvgIncidentFTESalary       float64
	IncidentReductionPct       float64
	IncidentTriageTimeSavedPct float64

	// Major incidents
	MajorIncidentVolume         int
	AvgMajorIncidentCostPerHour float64
	AvgMTTRHours                float64
	MTTRImprovementPct          float64

	// Asset discovery
	AssetVolume                 int
	DiscoveryCyclesPerYear      int
	HoursPerDiscoveryCycle      float64
	AssetFTEs                   float64
	AssetFTETimePct             float64
	AvgAssetFTESalary           float64
	AssetDiscoveryAutomationPct float64

	// Additional benefits (direct annual values, not derived)
	ToolSavings         float64
	PeopleEfficiency    float64
	FTEAvoidance        float64
	SLAPenaltyAvoidance float64
	RevenueGrowth       float64
	CapexSavings        float64
	OpexSavings         float64

	// Costs
	PlatformCost float64
	ServicesCost float64

	// Per-year overrides and patterns (one entry per evaluation year).
	// Empty means "use the flat annual values".
	PlatformCostsByYear []float64
	FTEPatternByYear    []float64

	// Financial settings
	EvaluationYears int
	DiscountRatePct float64
}

// DiscountRate returns the discount rate as a fraction in [0,1).
func (p Parameters) DiscountRate() float64 {
	return p.DiscountRatePct / 100
}

// EvaluationMonths returns the evaluation horizon in months.
func (p Parameters) EvaluationMonths() int {
	return p.EvaluationYears * 12
}

// Defaults returns the canonical default parameter set.
func Defaults() Parameters {
	return Parameters{
		SolutionName:     "AIOps",
		IndustryTemplate: "Custom",
		Currency:         "$",

		ImplementationDelayMonths: 6,
		RampUpMonths:              3,
		BillingStartMonth:         1,

		HoursPerDay:     8.0,
		DaysPerWeek:     5,
		WeeksPerYear:    52,
		HolidaySickDays: 25,

		AlertFTETimePct:    100,
		IncidentFTETimePct: 100,
		AssetFTETimePct:    100,

		EvaluationYears: 3,
		DiscountRatePct: 10,
	}
}

// =============================================================================
// INPUT ISSUES
// =============================================================================

// IssueLevel separates blocking messages from advisory ones. Neither level
// stops computation; errors are surfaced to the user as blocking messages
// while the engine proceeds with best-effort values.
type IssueLevel string

const (
	LevelError   IssueLevel = "error"
	LevelWarning IssueLevel = "warning"
)

// InputIssue is a structured validation or parsing message tied to an
// input field.
type InputIssue struct {
	Level   IssueLevel `json:"level"`
	Field   string     `json:"field"`
	Message string     `json:"message"`
}

// =============================================================================
// FLAT MAPPING - Stable string keys
// =============================================================================

// Scalar parameter keys, in export order. List-valued families
// (platform_costs_year, fte_pattern_year) are handled separately.
var scalarKeys = []string{
	"solution_name", "industry_template", "currency",
	"implementation_delay", "benefits_ramp_up", "billing_start_month",
	"hours_per_day", "days_per_week", "weeks_per_year", "holiday_sick_days",
	"alert_volume", "alert_ftes", "alert_fte_time_pct", "avg_alert_triage_time", "avg_alert_fte_salary",
	"alert_reduction_pct", "alert_triage_time_saved_pct",
	"incident_volume", "incident_ftes", "incident_fte_time_pct", "avg_incident_triage_time", "avg_incident_fte_salary",
	"incident_reduction_pct", "incident_triage_time_savings_pct",
	"major_incident_volume", "avg_major_incident_cost", "avg_mttr_hours", "mttr_improvement_pct",
	"asset_volume", "manual_discovery_cycles_per_year", "hours_per_discovery_cycle",
	"asset_management_ftes", "asset_mgmt_fte_time_pct", "avg_asset_mgmt_fte_salary", "asset_discovery_automation_pct",
	"tool_savings", "people_efficiency", "fte_avoidance", "sla_penalty",
	"revenue_growth", "capex_savings", "opex_savings",
	"platform_cost", "services_cost",
	"evaluation_years", "discount_rate",
}

// listKeyFamilies maps a list-valued key prefix to an accessor pair.
var listKeyFamilies = []string{"platform_costs_year", "fte_pattern_year"}

// Keys returns every scalar parameter key in stable export order.
func Keys() []string {
	out := make([]string, len(scalarKeys))
	copy(out, scalarKeys)
	return out
}

// Descriptions maps parameter keys to human-readable labels for exports.
var Descriptions = map[string]string{
	"solution_name":                    "Solution Name",
	"industry_template":                "Industry Template",
	"currency":                         "Currency Symbol",
	"implementation_delay":             "Implementation Delay (months)",
	"benefits_ramp_up":                 "Benefits Ramp-up Period (months)",
	"billing_start_month":              "Billing Start Month",
	"hours_per_day":                    "Working Hours per Day",
	"days_per_week":                    "Working Days per Week",
	"weeks_per_year":                   "Working Weeks per Year",
	"holiday_sick_days":                "Holiday + Sick Days per Year",
	"alert_volume":                     "Total Infrastructure Alerts per Year",
	"alert_ftes":                       "Total FTEs Managing Alerts",
	"alert_fte_time_pct":               "% of FTE Time on Alerts",
	"avg_alert_triage_time":            "Average Alert Triage Time (minutes)",
	"avg_alert_fte_salary":             "Average Annual Salary per Alert FTE",
	"alert_reduction_pct":              "% Alert Reduction",
	"alert_triage_time_saved_pct":      "% Alert Triage Time Reduction",
	"incident_volume":                  "Total Infrastructure Incidents per Year",
	"incident_ftes":                    "Total FTEs Managing Incidents",
	"incident_fte_time_pct":            "% of FTE Time on Incidents",
	"avg_incident_triage_time":         "Average Incident Triage Time (minutes)",
	"avg_incident_fte_salary":          "Average Annual Salary per Incident FTE",
	"incident_reduction_pct":           "% Incident Reduction",
	"incident_triage_time_savings_pct": "% Incident Triage Time Reduction",
	"major_incident_volume":            "Major Incidents per Year (Sev1)",
	"avg_major_incident_cost":          "Average Major Incident Cost per Hour",
	"avg_mttr_hours":                   "Average MTTR (hours)",
	"mttr_improvement_pct":             "MTTR Improvement Percentage",
	"asset_volume":                     "Total IT Assets Under Management",
	"manual_discovery_cycles_per_year": "Manual Discovery Cycles per Year",
	"hours_per_discovery_cycle":        "Hours per Manual Discovery Cycle",
	"asset_management_ftes":            "Total FTEs Managing IT Assets",
	"asset_mgmt_fte_time_pct":          "% of FTE Time on Asset Discovery",
	"avg_asset_mgmt_fte_salary":        "Average Annual Salary per Asset FTE",
	"asset_discovery_automation_pct":   "% Asset Discovery Process Automated",
	"tool_savings":                     "Tool Consolidation Savings",
	"people_efficiency":                "People Efficiency Gains",
	"fte_avoidance":                    "FTE Avoidance (annualized value)",
	"sla_penalty":                      "SLA Penalty Avoidance",
	"revenue_growth":                   "Revenue Growth",
	"capex_savings":                    "Capital Expenditure Savings",
	"opex_savings":                     "Operational Expenditure Savings",
	"platform_cost":                    "Annual Subscription Cost",
	"services_cost":                    "Implementation & Services (One-Time)",
	"evaluation_years":                 "Evaluation Period (Years)",
	"discount_rate":                    "NPV Discount Rate (%)",
}

// ToMap flattens the parameters into the stable string-keyed mapping.
// List-valued fields are emitted as key_<index> entries, 1-based.
func (p Parameters) ToMap() map[string]any {
	m := map[string]any{
		"solution_name":     p.SolutionName,
		"industry_template": p.IndustryTemplate,
		"currency":          p.Currency,

		"implementation_delay": p.ImplementationDelayMonths,
		"benefits_ramp_up":     p.RampUpMonths,
		"billing_start_month":  p.BillingStartMonth,

		"hours_per_day":     p.HoursPerDay,
		"days_per_week":     p.DaysPerWeek,
		"weeks_per_year":    p.WeeksPerYear,
		"holiday_sick_days": p.HolidaySickDays,

		"alert_volume":                p.AlertVolume,
		"alert_ftes":                  p.AlertFTEs,
		"alert_fte_time_pct":          p.AlertFTETimePct,
		"avg_alert_triage_time":       p.AvgAlertTriageMinutes,
		"avg_alert_fte_salary":        p.AvgAlertFTESalary,
		"alert_reduction_pct":         p.AlertReductionPct,
		"alert_triage_time_saved_pct": p.AlertTriageTimeSavedPct,

		"incident_volume":                  p.IncidentVolume,
		"incident_ftes":                    p.IncidentFTEs,
		"incident_fte_time_pct":            p.IncidentFTETimePct,
		"avg_incident_triage_time":         p.AvgIncidentTriageMinutes,
		"avg_incident_fte_salary":          p.AvgIncidentFTESalary,
		"incident_reduction_pct":           p.IncidentReductionPct,
		"incident_triage_time_savings_pct": p.IncidentTriageTimeSavedPct,

		"major_incident_volume":   p.MajorIncidentVolume,
		"avg_major_incident_cost": p.AvgMajorIncidentCostPerHour,
		"avg_mttr_hours":          p.AvgMTTRHours,
		"mttr_improvement_pct":    p.MTTRImprovementPct,

		"asset_volume":                     p.AssetVolume,
		"manual_discovery_cycles_per_year": p.DiscoveryCyclesPerYear,
		"hours_per_discovery_cycle":        p.HoursPerDiscoveryCycle,
		"asset_management_ftes":            p.AssetFTEs,
		"asset_mgmt_fte_time_pct":          p.AssetFTETimePct,
		"avg_asset_mgmt_fte_salary":        p.AvgAssetFTESalary,
		"asset_discovery_automation_pct":   p.AssetDiscoveryAutomationPct,

		"tool_savings":      p.ToolSavings,
		"people_efficiency": p.PeopleEfficiency,
		"fte_avoidance":     p.FTEAvoidance,
		"sla_penalty":       p.SLAPenaltyAvoidance,
		"revenue_growth":    p.RevenueGrowth,
		"capex_savings":     p.CapexSavings,
		"opex_savings":      p.OpexSavings,

		"platform_cost": p.PlatformCost,
		"services_cost": p.ServicesCost,

		"evaluation_years": p.EvaluationYears,
		"discount_rate":    p.DiscountRatePct,
	}

	for i, v := range p.PlatformCostsByYear {
		m[fmt.Sprintf("platform_costs_year_%d", i+1)] = v
	}
	for i, v := range p.FTEPatternByYear {
		m[fmt.Sprintf("fte_pattern_year_%d", i+1)] = v
	}
	return m
}

// FromMap builds Parameters from a flat mapping, starting from Defaults().
// String values that look numeric are coerced; unknown keys and
// uncoercible values become warnings, never failures.
func FromMap(m map[string]any) (Parameters, []InputIssue) {
	p := Defaults()
	var issues []InputIssue

	// Collect list-valued entries first so suffix ordering is stable
	// regardless of map iteration order.
	lists := map[string][]listEntry{}

	for key, raw := range m {
		if family, index, ok := splitListKey(key); ok {
			lists[family] = append(lists[family], listEntry{index: index, value: toFloat(Coerce(raw))})
			continue
		}
		if !p.set(key, Coerce(raw)) {
			issues = append(issues, InputIssue{
				Level:   LevelWarning,
				Field:   key,
				Message: fmt.Sprintf("unknown parameter %q ignored", key),
			})
		}
	}

	for family, entries := range lists {
		sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })
		values := make([]float64, len(entries))
		for i, e := range entries {
			values[i] = e.value
		}
		switch family {
		case "platform_costs_year":
			p.PlatformCostsByYear = values
		case "fte_pattern_year":
			p.FTEPatternByYear = values
		}
	}

	return p, issues
}

type listEntry struct {
	index int
	value float64
}

// splitListKey recognizes key_<index> entries belonging to a declared
// list-valued family.
func splitListKey(key string) (family string, index int, ok bool) {
	for _, f := range listKeyFamilies {
		prefix := f + "_"
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		n, err := strconv.Atoi(key[len(prefix):])
		if err != nil || n < 1 {
			continue
		}
		return f, n, true
	}
	return "", 0, false
}

// set assigns a coerced value to the field behind key. Returns false for
// unknown keys.
func (p *Parameters) set(key string, v any) bool {
	switch key {
	case "solution_name":
		p.SolutionName = toString(v)
	case "industry_template":
		p.IndustryTemplate = toString(v)
	case "currency":
		p.Currency = toString(v)
	case "implementation_delay":
		p.ImplementationDelayMonths = toInt(v)
	case "benefits_ramp_up":
		p.RampUpMonths = toInt(v)
	case "billing_start_month":
		p.BillingStartMonth = toInt(v)
	case "hours_per_day":
		p.HoursPerDay = toFloat(v)
	case "days_per_week":
		p.DaysPerWeek = toInt(v)
	case "weeks_per_year":
		p.WeeksPerYear = toInt(v)
	case "holiday_sick_days":
		p.HolidaySickDays = toInt(v)
	case "alert_volume":
		p.AlertVolume = toInt(v)
	case "alert_ftes":
		p.AlertFTEs = toFloat(v)
	case "alert_fte_time_pct":
		p.AlertFTETimePct = toFloat(v)
	case "avg_alert_triage_time":
		p.AvgAlertTriageMinutes = toFloat(v)
	case "avg_alert_fte_salary":
		p.AvgAlertFTESalary = toFloat(v)
	case "alert_reduction_pct":
		p.AlertReductionPct = toFloat(v)
	case "alert_triage_time_saved_pct":
		p.AlertTriageTimeSavedPct = toFloat(v)
	case "incident_volume":
		p.IncidentVolume = toInt(v)
	case "incident_ftes":
		p.IncidentFTEs = toFloat(v)
	case "incident_fte_time_pct":
		p.IncidentFTETimePct = toFloat(v)
	case "avg_incident_triage_time":
		p.AvgIncidentTriageMinutes = toFloat(v)
	case "avg_incident_fte_salary":
		p.AvgIncidentFTESalary = toFloat(v)
	case "incident_reduction_pct":
		p.IncidentReductionPct = toFloat(v)
	case "incident_triage_time_savings_pct":
		p.IncidentTriageTimeSavedPct = toFloat(v)
	case "major_incident_volume":
		p.MajorIncidentVolume = toInt(v)
	case "avg_major_incident_cost":
		p.AvgMajorIncidentCostPerHour = toFloat(v)
	case "avg_mttr_hours":
		p.AvgMTTRHours = toFloat(v)
	case "mttr_improvement_pct":
		p.MTTRImprovementPct = toFloat(v)
	case "asset_volume":
		p.AssetVolume = toInt(v)
	case "manual_discovery_cycles_per_year":
		p.DiscoveryCyclesPerYear = toInt(v)
	case "hours_per_discovery_cycle":
		p.HoursPerDiscoveryCycle = toFloat(v)
	case "asset_management_ftes":
		p.AssetFTEs = toFloat(v)
	case "asset_mgmt_fte_time_pct":
		p.AssetFTETimePct = toFloat(v)
	case "avg_asset_mgmt_fte_salary":
		p.AvgAssetFTESalary = toFloat(v)
	case "asset_discovery_automation_pct":
		p.AssetDiscoveryAutomationPct = toFloat(v)
	case "tool_savings":
		p.ToolSavings = toFloat(v)
	case "people_efficiency":
		p.PeopleEfficiency = toFloat(v)
	case "fte_avoidance":
		p.FTEAvoidance = toFloat(v)
	case "sla_penalty":
		p.SLAPenaltyAvoidance = toFloat(v)
	case "revenue_growth":
		p.RevenueGrowth = toFloat(v)
	case "capex_savings":
		p.CapexSavings = toFloat(v)
	case "opex_savings":
		p.OpexSavings = toFloat(v)
	case "platform_cost":
		p.PlatformCost = toFloat(v)
	case "services_cost":
		p.ServicesCost = toFloat(v)
	case "evaluation_years":
		p.EvaluationYears = toInt(v)
	case "discount_rate":
		p.DiscountRatePct = toFloat(v)
	default:
		return false
	}
	return true
}

// =============================================================================
// COERCION - Import values arrive as strings
// =============================================================================

// Coerce converts a numeric-looking string to int or float64 and leaves
// everything else alone. Import formats (CSV in particular) carry all
// values as strings.
func Coerce(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f
	default:
		return 0
	}
}

func toInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	case float32:
		return int(x)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return int(f)
	default:
		return 0
	}
}
