/*
templates.go - Industry benchmark templates

PURPOSE:
  Pre-built parameter overlays seeding an assessment with typical volumes,
  triage times and improvement percentages for a vertical. Templates
  provide baseline values for estimation only; every field remains
  user-adjustable afterwards.

AVAILABLE TEMPLATES:
  Custom:             no overlay
  Financial Services: high alert volume, strong automation potential
  Retail:             moderate volumes
  MSP:                very high multi-tenant volumes
  Healthcare:         regulated, moderate volumes
  Telecom:            high volumes, long triage times

ADDING NEW TEMPLATES:
  Add an entry to the templates map. Only set the fields that the vertical
  benchmark actually covers; everything else keeps the current value.
*/
package config

import "sort"

// Template is a partial parameter overlay. Zero-valued fields are not
// applied, so a template only overrides what it declares.
type Template struct {
	Name        string
	Description string

	AlertVolume           int
	AvgAlertTriageMinutes float64
	AlertReductionPct     float64

	IncidentVolume           int
	AvgIncidentTriageMinutes float64
	IncidentReductionPct     float64

	MajorIncidentVolume int
	MTTRImprovementPct  float64

	AssetVolume                 int
	DiscoveryCyclesPerYear      int
	HoursPerDiscoveryCycle      float64
	AssetDiscoveryAutomationPct float64
}

var templates = map[string]Template{
	"Custom": {
		Name:        "Custom",
		Description: "No benchmark overlay; enter all values manually",
	},
	"Financial Services": {
		Name:                        "Financial Services",
		Description:                 "Large regulated estate with heavy alert noise",
		AlertVolume:                 1_200_000,
		AvgAlertTriageMinutes:       25,
		AlertReductionPct:           40,
		IncidentVolume:              400_000,
		AvgIncidentTriageMinutes:    30,
		IncidentReductionPct:        40,
		MajorIncidentVolume:         140,
		MTTRImprovementPct:          40,
		AssetVolume:                 15000,
		DiscoveryCyclesPerYear:      4,
		HoursPerDiscoveryCycle:      120,
		AssetDiscoveryAutomationPct: 70,
	},
	"Retail": {
		Name:                        "Retail",
		Description:                 "Seasonal traffic, mid-sized operations team",
		AlertVolume:                 600_000,
		AvgAlertTriageMinutes:       20,
		AlertReductionPct:           30,
		IncidentVolume:              200_000,
		AvgIncidentTriageMinutes:    25,
		IncidentReductionPct:        30,
		MajorIncidentVolume:         80,
		MTTRImprovementPct:          30,
		AssetVolume:                 8000,
		DiscoveryCyclesPerYear:      6,
		HoursPerDiscoveryCycle:      80,
		AssetDiscoveryAutomationPct: 60,
	},
	"MSP": {
		Name:                        "MSP",
		Description:                 "Multi-tenant managed service provider",
		AlertVolume:                 2_500_000,
		AvgAlertTriageMinutes:       35,
		AlertReductionPct:           50,
		IncidentVolume:              800_000,
		AvgIncidentTriageMinutes:    35,
		IncidentReductionPct:        50,
		MajorIncidentVolume:         200,
		MTTRImprovementPct:          50,
		AssetVolume:                 25000,
		DiscoveryCyclesPerYear:      12,
		HoursPerDiscoveryCycle:      200,
		AssetDiscoveryAutomationPct: 80,
	},
	"Healthcare": {
		Name:                        "Healthcare",
		Description:                 "Clinical systems with strict change control",
		AlertVolume:                 800_000,
		AvgAlertTriageMinutes:       30,
		AlertReductionPct:           35,
		IncidentVolume:              300_000,
		AvgIncidentTriageMinutes:    30,
		IncidentReductionPct:        35,
		MajorIncidentVolume:         100,
		MTTRImprovementPct:          35,
		AssetVolume:                 12000,
		DiscoveryCyclesPerYear:      3,
		HoursPerDiscoveryCycle:      100,
		AssetDiscoveryAutomationPct: 65,
	},
	"Telecom": {
		Name:                        "Telecom",
		Description:                 "Network-heavy estate with long triage chains",
		AlertVolume:                 1_800_000,
		AvgAlertTriageMinutes:       35,
		AlertReductionPct:           45,
		IncidentVolume:              600_000,
		AvgIncidentTriageMinutes:    35,
		IncidentReductionPct:        40,
		MajorIncidentVolume:         160,
		MTTRImprovementPct:          45,
		AssetVolume:                 20000,
		DiscoveryCyclesPerYear:      6,
		HoursPerDiscoveryCycle:      150,
		AssetDiscoveryAutomationPct: 75,
	},
}

// TemplateNames returns all template names sorted, "Custom" first.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		if name == "Custom" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{"Custom"}, names...)
}

// GetTemplate looks up a template by name.
func GetTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// ApplyTemplate overlays the named template onto p. Unknown names leave p
// untouched and return false.
func ApplyTemplate(p *Parameters, name string) bool {
	t, ok := templates[name]
	if !ok {
		return false
	}
	p.IndustryTemplate = t.Name
	if t.AlertVolume > 0 {
		p.AlertVolume = t.AlertVolume
	}
	if t.AvgAlertTriageMinutes > 0 {
		p.AvgAlertTriageMinutes = t.AvgAlertTriageMinutes
	}
	if t.AlertReductionPct > 0 {
		p.AlertReductionPct = t.AlertReductionPct
	}
	if t.IncidentVolume > 0 {
		p.IncidentVolume = t.IncidentVolume
	}
	if t.AvgIncidentTriageMinutes > 0 {
		p.AvgIncidentTriageMinutes = t.AvgIncidentTriageMinutes
	}
	if t.IncidentReductionPct > 0 {
		p.IncidentReductionPct = t.IncidentReductionPct
	}
	if t.MajorIncidentVolume > 0 {
		p.MajorIncidentVolume = t.MajorIncidentVolume
	}
	if t.MTTRImprovementPct > 0 {
		p.MTTRImprovementPct = t.MTTRImprovementPct
	}
	if t.AssetVolume > 0 {
		p.AssetVolume = t.AssetVolume
	}
	if t.DiscoveryCyclesPerYear > 0 {
		p.DiscoveryCyclesPerYear = t.DiscoveryCyclesPerYear
	}
	if t.HoursPerDiscoveryCycle > 0 {
		p.HoursPerDiscoveryCycle = t.HoursPerDiscoveryCycle
	}
	if t.AssetDiscoveryAutomationPct > 0 {
		p.AssetDiscoveryAutomationPct = t.AssetDiscoveryAutomationPct
	}
	return true
}
