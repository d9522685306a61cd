package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/value-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testAssessment(name string) sqlite.Assessment {
	now := time.Now()
	return sqlite.Assessment{
		ID:   uuid.NewString(),
		Name: name,
		Parameters: map[string]any{
			"alert_volume":  float64(100000),
			"platform_cost": float64(200000),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// ASSESSMENT STORE TESTS
// =============================================================================

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAssessment("Q3 business case")
	require.NoError(t, store.SaveAssessment(ctx, a))

	got, err := store.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Q3 business case", got.Name)
	assert.Equal(t, a.Parameters, got.Parameters)
	assert.Nil(t, got.Results, "no results snapshot until computed")
}

func TestStore_Get_Missing_NilNotError(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAssessment(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveTwice_Upserts(t *testing.T) {
	// GIVEN: A saved assessment
	// WHEN: Saving again under the same ID with new values
	// THEN: The row is replaced, not duplicated

	store := newTestStore(t)
	ctx := context.Background()

	a := testAssessment("draft")
	require.NoError(t, store.SaveAssessment(ctx, a))

	a.Name = "final"
	a.Parameters["platform_cost"] = float64(250000)
	require.NoError(t, store.SaveAssessment(ctx, a))

	all, err := store.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "final", all[0].Name)
	assert.Equal(t, float64(250000), all[0].Parameters["platform_cost"])
}

func TestStore_ResultsSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAssessment("with results")
	a.Results = json.RawMessage(`{"quality_score": 70}`)
	require.NoError(t, store.SaveAssessment(ctx, a))

	got, err := store.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"quality_score": 70}`, string(got.Results))
}

func TestStore_List_MostRecentlyUpdatedFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := testAssessment("older")
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := testAssessment("newer")

	require.NoError(t, store.SaveAssessment(ctx, older))
	require.NoError(t, store.SaveAssessment(ctx, newer))

	all, err := store.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].Name)
	assert.Equal(t, "older", all[1].Name)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAssessment("to delete")
	require.NoError(t, store.SaveAssessment(ctx, a))
	require.NoError(t, store.DeleteAssessment(ctx, a.ID))

	got, err := store.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting a missing ID is a no-op.
	assert.NoError(t, store.DeleteAssessment(ctx, "no-such-id"))
}

func TestStore_Reset_ClearsEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAssessment(ctx, testAssessment("a")))
	require.NoError(t, store.SaveAssessment(ctx, testAssessment("b")))
	require.NoError(t, store.Reset(ctx))

	all, err := store.ListAssessments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
