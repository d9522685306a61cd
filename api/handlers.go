/*
handlers.go - HTTP API handlers for the business value assessment service

PURPOSE:
  Exposes the valuation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Model:
    GET    /api/defaults               Default parameter mapping
    POST   /api/validate               Validate a parameter mapping
    POST   /api/compute                Run the full assessment
    POST   /api/montecarlo             Run the Monte Carlo simulation

  Assessments:
    GET    /api/assessments            List saved assessments
    POST   /api/assessments            Save a new assessment
    GET    /api/assessments/{id}       Get one assessment
    PUT    /api/assessments/{id}       Update an assessment
    DELETE /api/assessments/{id}       Delete an assessment
    POST   /api/assessments/{id}/compute  Compute and snapshot results

  Templates:
    GET    /api/templates              List industry templates
    GET    /api/templates/{name}       Get one template
    POST   /api/templates/apply        Overlay a template onto parameters

  Transfer:
    POST   /api/export/csv             Download parameters as CSV
    POST   /api/export/json            Download parameters as JSON
    POST   /api/import                 Upload a CSV or JSON configuration

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Assessment persistence

REQUEST FLOW:
  1. Parse HTTP request
  2. Build Parameters from the flat mapping (defaults fill gaps)
  3. Validate; reject on hard errors, carry warnings through
  4. Call domain logic (engine.Compute, engine.RunMonteCarlo)
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - templates.go: Industry template endpoints
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/value-engine/codec"
	"github.com/warp/value-engine/config"
	"github.com/warp/value-engine/engine"
	"github.com/warp/value-engine/report"
	"github.com/warp/value-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// buildParameters turns a flat mapping into validated Parameters.
// Warnings accumulate; a hard error stops the request.
func buildParameters(m map[string]any) (config.Parameters, []config.InputIssue, bool) {
	params, issues := config.FromMap(m)
	issues = append(issues, config.Validate(params)...)
	return params, issues, !config.HasErrors(issues)
}

// =============================================================================
// MODEL HANDLERS
// =============================================================================

// GetDefaults returns the default parameter mapping.
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.Defaults().ToMap())
}

// ValidateParameters checks a parameter mapping without computing.
func (h *Handler) ValidateParameters(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	_, issues, ok := buildParameters(req.Parameters)
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: ok, Issues: issues})
}

// Compute runs the full assessment over a parameter mapping.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, ok := h.compute(req.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) compute(m map[string]any) (*ComputeResponse, bool) {
	params, issues, ok := buildParameters(m)
	if !ok {
		return &ComputeResponse{Parameters: m, Issues: issues}, false
	}

	results := engine.Compute(params)
	results.InputIssues = issues
	summary := report.Build(params, results)

	return &ComputeResponse{
		Parameters: params.ToMap(),
		Issues:     issues,
		Results:    results,
		Summary:    &summary,
	}, true
}

// MonteCarlo runs the probabilistic simulation.
func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req MonteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, issues, ok := buildParameters(req.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ValidateResponse{Valid: false, Issues: issues})
		return
	}

	results := engine.Compute(params)
	in := engine.MonteCarloInputFrom(params, results)
	in.Trials = req.Trials
	in.Seed = req.Seed

	mc, err := engine.RunMonteCarlo(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Simulation failed", err)
		return
	}

	resp := MonteCarloResponse{
		Trials:  len(mc.ROI),
		Seed:    in.Seed,
		Summary: mc.Summary,
	}
	if in.Seed == 0 {
		resp.Seed = engine.DefaultSeed
	}
	if r.URL.Query().Get("include") == "trials" {
		resp.ROI = mc.ROI
		resp.NPV = mc.NPV
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// ASSESSMENT HANDLERS
// =============================================================================

// ListAssessments returns all saved assessments (without parameter
// bodies, to keep the listing small).
func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.Store.ListAssessments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list assessments", err)
		return
	}

	dtos := make([]AssessmentDTO, len(assessments))
	for i, a := range assessments {
		dtos[i] = AssessmentDTO{
			ID:        a.ID,
			Name:      a.Name,
			Computed:  len(a.Results) > 0,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
			UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateAssessment saves a new named assessment.
func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req SaveAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Assessment name is required", nil)
		return
	}

	_, issues, ok := buildParameters(req.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ValidateResponse{Valid: false, Issues: issues})
		return
	}

	now := time.Now()
	a := sqlite.Assessment{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Parameters: req.Parameters,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.Store.SaveAssessment(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save assessment", err)
		return
	}

	writeJSON(w, http.StatusCreated, AssessmentDTO{
		ID:         a.ID,
		Name:       a.Name,
		Parameters: a.Parameters,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	})
}

// GetAssessment returns one assessment with its parameters and, when
// present, the stored results snapshot.
func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.Store.GetAssessment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get assessment", err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "Assessment not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// UpdateAssessment replaces the name and parameters of an assessment.
// Any stored results snapshot is discarded: it no longer matches.
func (h *Handler) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SaveAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	existing, err := h.Store.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get assessment", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Assessment not found", nil)
		return
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = existing.Name
	}

	a := sqlite.Assessment{
		ID:         id,
		Name:       name,
		Parameters: req.Parameters,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  time.Now(),
	}
	if err := h.Store.SaveAssessment(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update assessment", err)
		return
	}
	writeJSON(w, http.StatusOK, AssessmentDTO{
		ID:         a.ID,
		Name:       a.Name,
		Parameters: a.Parameters,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	})
}

// DeleteAssessment removes an assessment.
func (h *Handler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteAssessment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete assessment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// ComputeAssessment runs the model for a saved assessment and stores
// the result snapshot alongside it.
func (h *Handler) ComputeAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.Store.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get assessment", err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "Assessment not found", nil)
		return
	}

	resp, ok := h.compute(a.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	snapshot, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode results", err)
		return
	}
	a.Results = snapshot
	a.UpdatedAt = time.Now()
	if err := h.Store.SaveAssessment(r.Context(), *a); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store results", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// TRANSFER HANDLERS
// =============================================================================

// ExportCSV renders a parameter mapping as a downloadable CSV file.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	params, ok := h.exportParams(w, r)
	if !ok {
		return
	}

	data, err := codec.ExportCSV(params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export CSV", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", exportFilename("csv"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportJSON renders a parameter mapping as a downloadable JSON file.
func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	params, ok := h.exportParams(w, r)
	if !ok {
		return
	}

	data, err := codec.ExportJSON(params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export JSON", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", exportFilename("json"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportParams reads the request body and normalizes the mapping
// through Parameters so exports always carry the complete key set.
func (h *Handler) exportParams(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}

	params, issues, ok := buildParameters(req.Parameters)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ValidateResponse{Valid: false, Issues: issues})
		return nil, false
	}
	return params.ToMap(), true
}

func exportFilename(ext string) string {
	return fmt.Sprintf(`attachment; filename="assessment_%s.%s"`,
		time.Now().Format("20060102_150405"), ext)
}

// Import parses an uploaded CSV or JSON configuration and returns the
// recovered parameter mapping with validation issues. The format comes
// from the ?format= query parameter, falling back to content sniffing.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read upload", err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		if len(body) > 0 && (body[0] == '{' || body[0] == '[') {
			format = "json"
		} else {
			format = "csv"
		}
	}

	var params map[string]any
	switch format {
	case "json":
		params, err = codec.ImportJSON(body)
	case "csv":
		params, err = codec.ImportCSV(strings.NewReader(string(body)))
	default:
		writeError(w, http.StatusBadRequest, "Unsupported format (use csv or json)", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse configuration", err)
		return
	}

	_, issues, _ := buildParameters(params)
	writeJSON(w, http.StatusOK, ImportResponse{
		Format:     format,
		Parameters: params,
		Issues:     issues,
	})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ResetDatabase clears all saved assessments (dev only).
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
