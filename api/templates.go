/*
templates.go - Industry template endpoints

PURPOSE:
  Exposes the built-in industry benchmark templates so a client can
  pre-fill an assessment instead of entering every volume by hand.
  Applying a template overlays only the fields the benchmark covers;
  everything else keeps the caller's value (or the default).

ENDPOINTS:
  GET  /api/templates          List templates (Custom first)
  GET  /api/templates/{name}   One template with its overrides
  POST /api/templates/apply    Overlay a template onto a mapping

SEE ALSO:
  - config/templates.go: Template definitions and overlay semantics
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/value-engine/config"
)

// ListTemplates returns every industry template.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	names := config.TemplateNames()
	dtos := make([]TemplateDTO, 0, len(names))
	for _, name := range names {
		t, _ := config.GetTemplate(name)
		dtos = append(dtos, TemplateDTO{
			Name:        t.Name,
			Description: t.Description,
			Overrides:   templateOverrides(t),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTemplateByName returns one template.
func (h *Handler) GetTemplateByName(w http.ResponseWriter, r *http.Request) {
	t, ok := config.GetTemplate(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "Template not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, TemplateDTO{
		Name:        t.Name,
		Description: t.Description,
		Overrides:   templateOverrides(t),
	})
}

// ApplyTemplate overlays a template onto the supplied parameters and
// returns the merged mapping.
func (h *Handler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req ApplyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, issues, ok := buildParameters(req.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ValidateResponse{Valid: false, Issues: issues})
		return
	}

	if !config.ApplyTemplate(&params, req.Template) {
		writeError(w, http.StatusNotFound, "Template not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"template":   req.Template,
		"parameters": params.ToMap(),
	})
}

// templateOverrides flattens the non-zero template fields into the
// parameter keys they overlay.
func templateOverrides(t config.Template) map[string]any {
	m := map[string]any{}
	add := func(key string, v any) {
		switch n := v.(type) {
		case int:
			if n != 0 {
				m[key] = n
			}
		case float64:
			if n != 0 {
				m[key] = n
			}
		}
	}

	add("alert_volume", t.AlertVolume)
	add("avg_alert_triage_time", t.AvgAlertTriageMinutes)
	add("alert_reduction_pct", t.AlertReductionPct)

	add("incident_volume", t.IncidentVolume)
	add("avg_incident_triage_time", t.AvgIncidentTriageMinutes)
	add("incident_reduction_pct", t.IncidentReductionPct)

	add("major_incident_volume", t.MajorIncidentVolume)
	add("mttr_improvement_pct", t.MTTRImprovementPct)

	add("asset_volume", t.AssetVolume)
	add("manual_discovery_cycles_per_year", t.DiscoveryCyclesPerYear)
	add("hours_per_discovery_cycle", t.HoursPerDiscoveryCycle)
	add("asset_discovery_automation_pct", t.AssetDiscoveryAutomationPct)
	return m
}
