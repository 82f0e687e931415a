package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect/internal/domain"
	apperrors "github.com/careconnect/careconnect/internal/errors"
)

func TestCreateRefillRequestSnapshotsMedication(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	req, err := s.CreateRefillRequest(ctx, "1")
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "1", req.MedicationID)
	assert.Equal(t, "Lisinopril", req.MedicationName)
	assert.Equal(t, "CVS Pharmacy - Main St", req.Pharmacy)
	assert.Equal(t, domain.RefillPending, req.Status)
	assert.Equal(t, 1, req.Step)
	assert.False(t, req.RequestDate.IsZero())
}

func TestCreateRefillRequestUnknownMedication(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.CreateRefillRequest(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrMedicationNotFound)

	refills, err := s.RefillRequests()
	require.NoError(t, err)
	assert.Empty(t, refills)
}

func TestRefillSnapshotDoesNotFollowMedicationEdits(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	req, err := s.CreateRefillRequest(ctx, "1")
	require.NoError(t, err)

	name := "Renamed"
	require.NoError(t, s.UpdateMedication(ctx, "1", domain.MedicationPatch{Name: &name}))

	refills, err := s.RefillRequests()
	require.NoError(t, err)
	require.Len(t, refills, 1)
	assert.Equal(t, req.MedicationName, refills[0].MedicationName)
}

func TestUpdateRefillRequest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	req, err := s.CreateRefillRequest(ctx, "2")
	require.NoError(t, err)

	status := domain.RefillReady
	require.NoError(t, s.UpdateRefillRequest(ctx, req.ID, domain.RefillRequestPatch{Status: &status}))

	refills, err := s.RefillRequests()
	require.NoError(t, err)
	require.Len(t, refills, 1)
	assert.Equal(t, domain.RefillReady, refills[0].Status)
	// Step untouched by the partial update.
	assert.Equal(t, 1, refills[0].Step)
}

func TestAdvanceRefillRequestProgression(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	req, err := s.CreateRefillRequest(ctx, "1")
	require.NoError(t, err)

	step := func() domain.RefillRequest {
		refills, err := s.RefillRequests()
		require.NoError(t, err)
		require.Len(t, refills, 1)
		return refills[0]
	}

	require.NoError(t, s.AdvanceRefillRequest(ctx, req.ID))
	assert.Equal(t, 2, step().Step)

	require.NoError(t, s.AdvanceRefillRequest(ctx, req.ID))
	assert.Equal(t, 3, step().Step)
	assert.Equal(t, domain.RefillPending, step().Status)

	// The final advance submits the request.
	require.NoError(t, s.AdvanceRefillRequest(ctx, req.ID))
	assert.Equal(t, 3, step().Step)
	assert.Equal(t, domain.RefillProcessing, step().Status)
}

func TestAddWellnessEntry(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	entry, err := s.AddWellnessEntry(ctx, domain.WellnessEntry{
		Date:   "2026-03-10",
		Mood:   domain.MoodGood,
		Energy: domain.EnergyMedium,
		Pain:   domain.PainMild,
		Notes:  "slept well",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	entries, err := s.WellnessEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.MoodGood, entries[0].Mood)
}

func TestWellnessEntriesAppendInOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first, err := s.AddWellnessEntry(ctx, domain.WellnessEntry{Date: "2026-03-09", Mood: domain.MoodOkay})
	require.NoError(t, err)
	second, err := s.AddWellnessEntry(ctx, domain.WellnessEntry{Date: "2026-03-10", Mood: domain.MoodGreat})
	require.NoError(t, err)

	entries, err := s.WellnessEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}
