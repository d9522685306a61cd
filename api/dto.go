/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Compute:
    ComputeRequest, ComputeResponse, ValidateResponse

  Monte Carlo:
    MonteCarloRequest, MonteCarloResponse

  Assessments:
    AssessmentDTO, SaveAssessmentRequest

  Templates:
    TemplateDTO, ApplyTemplateRequest

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - report/summary.go: Summary type embedded in ComputeResponse
*/
package api

import (
	"github.com/warp/value-engine/config"
	"github.com/warp/value-engine/engine"
	"github.com/warp/value-engine/report"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ComputeRequest carries a flat parameter mapping. Missing keys take
// their defaults; unknown keys are reported as warnings, not rejected.
type ComputeRequest struct {
	Parameters map[string]any `json:"parameters"`
}

// ComputeResponse is the full assessment output.
type ComputeResponse struct {
	Parameters map[string]any      `json:"parameters"`
	Issues     []config.InputIssue `json:"issues,omitempty"`
	Results    *engine.Results     `json:"results"`
	Summary    *report.Summary     `json:"summary"`
}

// ValidateResponse reports input issues without running the model.
type ValidateResponse struct {
	Valid  bool                `json:"valid"`
	Issues []config.InputIssue `json:"issues,omitempty"`
}

// MonteCarloRequest runs the simulation over a parameter mapping.
// Trials and Seed are optional; zero values take the engine defaults.
type MonteCarloRequest struct {
	Parameters map[string]any `json:"parameters"`
	Trials     int            `json:"trials,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
}

// MonteCarloResponse wraps the simulation summary. Per-trial arrays are
// included only when the client asks for them via ?include=trials.
type MonteCarloResponse struct {
	Trials  int                      `json:"trials"`
	Seed    int64                    `json:"seed"`
	Summary engine.MonteCarloSummary `json:"summary"`
	ROI     []float64                `json:"roi,omitempty"`
	NPV     []float64                `json:"npv,omitempty"`
}

// AssessmentDTO represents a saved assessment in API responses.
type AssessmentDTO struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Computed   bool           `json:"computed"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// SaveAssessmentRequest creates or updates a named assessment.
type SaveAssessmentRequest struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// TemplateDTO describes an industry template.
type TemplateDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Overrides   map[string]any `json:"overrides,omitempty"`
}

// ApplyTemplateRequest overlays a template onto a parameter mapping.
// Parameters may be empty, in which case the template applies to the
// defaults.
type ApplyTemplateRequest struct {
	Template   string         `json:"template"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ImportResponse returns the parameter mapping recovered from an
// uploaded configuration file.
type ImportResponse struct {
	Format     string              `json:"format"`
	Parameters map[string]any      `json:"parameters"`
	Issues     []config.InputIssue `json:"issues,omitempty"`
}
