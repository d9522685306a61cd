package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/api"
	"github.com/warp/value-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

// validParams is a small assessment that passes validation cleanly.
func validParams() map[string]any {
	return map[string]any{
		"alert_volume":             100000,
		"alert_ftes":               5,
		"avg_alert_triage_time":    5,
		"avg_alert_fte_salary":     60000,
		"alert_reduction_pct":      40,
		"incident_volume":          20000,
		"incident_ftes":            4,
		"avg_incident_triage_time": 20,
		"avg_incident_fte_salary":  70000,
		"incident_reduction_pct":   30,
		"platform_cost":            200000,
		"services_cost":            100000,
		"billing_start_month":      6,
	}
}

// =============================================================================
// MODEL ENDPOINT TESTS
// =============================================================================

func TestGetDefaults(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/defaults")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var defaults map[string]any
	decode(t, resp, &defaults)
	assert.EqualValues(t, 6, defaults["implementation_delay"])
	assert.EqualValues(t, 3, defaults["evaluation_years"])
	assert.EqualValues(t, 10, defaults["discount_rate"])
}

func TestCompute_ValidInputs(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/compute", api.ComputeRequest{Parameters: validParams()})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.ComputeResponse
	decode(t, resp, &out)

	require.NotNil(t, out.Results)
	require.NotNil(t, out.Summary)
	assert.Len(t, out.Results.Scenarios, 3)
	assert.Greater(t, out.Results.TotalAnnualBenefits.InexactFloat64(), 0.0)
	assert.Equal(t, out.Results.QualityScore, out.Summary.QualityScore)
	assert.NotEmpty(t, out.Summary.Headline)
}

func TestCompute_NegativeCost_Rejected(t *testing.T) {
	params := validParams()
	params["platform_cost"] = -1

	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/compute", api.ComputeRequest{Parameters: params})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidate_ReportsIssuesWithoutComputing(t *testing.T) {
	params := validParams()
	params["alert_reduction_pct"] = 95

	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/validate", api.ComputeRequest{Parameters: params})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.ValidateResponse
	decode(t, resp, &out)
	assert.True(t, out.Valid, "warnings alone do not invalidate")
	assert.NotEmpty(t, out.Issues)
}

func TestMonteCarlo_DeterministicForSeed(t *testing.T) {
	srv := newTestServer(t)
	req := api.MonteCarloRequest{Parameters: validParams(), Trials: 200, Seed: 42}

	var first, second api.MonteCarloResponse

	resp := postJSON(t, srv.URL+"/api/montecarlo", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &first)

	resp = postJSON(t, srv.URL+"/api/montecarlo", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &second)

	assert.Equal(t, 200, first.Trials)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Empty(t, first.ROI, "per-trial vectors only on request")
}

func TestMonteCarlo_IncludeTrials(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/montecarlo?include=trials",
		api.MonteCarloRequest{Parameters: validParams(), Trials: 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.MonteCarloResponse
	decode(t, resp, &out)
	assert.Len(t, out.ROI, 100)
	assert.Len(t, out.NPV, 100)
}

// =============================================================================
// ASSESSMENT ENDPOINT TESTS
// =============================================================================

func TestAssessments_CRUDLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create
	resp := postJSON(t, srv.URL+"/api/assessments",
		api.SaveAssessmentRequest{Name: "Q3 case", Parameters: validParams()})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.AssessmentDTO
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Q3 case", created.Name)

	// List
	resp, err := http.Get(srv.URL + "/api/assessments")
	require.NoError(t, err)
	var listed []api.AssessmentDTO
	decode(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Computed)

	// Compute and snapshot
	resp, err = http.Post(srv.URL+"/api/assessments/"+created.ID+"/compute", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var computed api.ComputeResponse
	decode(t, resp, &computed)
	assert.NotNil(t, computed.Results)

	resp, err = http.Get(srv.URL + "/api/assessments")
	require.NoError(t, err)
	decode(t, resp, &listed)
	assert.True(t, listed[0].Computed, "snapshot stored after compute")

	// Delete
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/assessments/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/assessments/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAssessment_RequiresName(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/assessments",
		api.SaveAssessmentRequest{Name: "  ", Parameters: validParams()})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// TEMPLATE ENDPOINT TESTS
// =============================================================================

func TestListTemplates_CustomFirst(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/templates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var templates []api.TemplateDTO
	decode(t, resp, &templates)
	require.NotEmpty(t, templates)
	assert.Equal(t, "Custom", templates[0].Name)
	assert.Empty(t, templates[0].Overrides)
}

func TestApplyTemplate_MergesOntoParameters(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/templates/apply", api.ApplyTemplateRequest{
		Template:   "Financial Services",
		Parameters: map[string]any{"avg_alert_fte_salary": 85000},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Parameters map[string]any `json:"parameters"`
	}
	decode(t, resp, &out)
	assert.EqualValues(t, 1200000, out.Parameters["alert_volume"])
	assert.EqualValues(t, 85000, out.Parameters["avg_alert_fte_salary"])
}

func TestGetTemplate_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/templates/Nonexistent")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// TRANSFER ENDPOINT TESTS
// =============================================================================

func TestExportCSVThenImport_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/export/csv", api.ComputeRequest{Parameters: validParams()})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	var csvBody bytes.Buffer
	_, err := csvBody.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(csvBody.String(), "Parameter,Value,Description"))

	resp, err = http.Post(srv.URL+"/api/import?format=csv", "text/csv", &csvBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var imported api.ImportResponse
	decode(t, resp, &imported)
	assert.Equal(t, "csv", imported.Format)
	assert.EqualValues(t, 100000, imported.Parameters["alert_volume"])
}

func TestImport_SniffsJSON(t *testing.T) {
	srv := newTestServer(t)

	body := `{"configuration": {"platform_cost": "200000"}}`
	resp, err := http.Post(srv.URL+"/api/import", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var imported api.ImportResponse
	decode(t, resp, &imported)
	assert.Equal(t, "json", imported.Format)
	assert.EqualValues(t, 200000, imported.Parameters["platform_cost"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
