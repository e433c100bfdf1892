package onboarding

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundryos/backend/models"
)

var t0 = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// walk fills every required field and advances to the signing step.
func walk(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.PatchProfile(models.ProfilePatch{
		Name: ptr("Jane Doe"), Email: ptr("jane@x.com"), Country: ptr("Canada"),
	}))
	advance(t, w)
	require.NoError(t, w.PatchFields(models.FieldsPatch{Covenant: ptr("gospel")}))
	advance(t, w)
	require.NoError(t, w.PatchStartup(models.StartupPatch{
		ProjectName: ptr("Seedline"), MissionStatement: ptr("Restore soil"),
	}))
	advance(t, w)
	require.NoError(t, w.PatchMission(models.MissionPatch{WeeklyFocus: ptr("Stewardship")}))
	advance(t, w)
	advance(t, w)
	require.Equal(t, StepSigning, w.CurrentStep)
}

func advance(t *testing.T, w *Wizard) {
	t.Helper()
	done, err := w.Next(t0)
	require.NoError(t, err)
	require.False(t, done)
}

func TestWizard_FullFlow(t *testing.T) {
	w := NewWizard("s1", t0)
	walk(t, w)

	require.NoError(t, w.PatchFields(models.FieldsPatch{
		DigitalSignature: ptr("Jane Doe"), AcceptTerms: ptr(true),
	}))
	done, err := w.Next(t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, w.Finalized)

	rec := w.Snapshot()
	assert.True(t, rec.IsFinalized())
	_, err = uuid.Parse(rec.FounderID)
	assert.NoError(t, err)
	assert.Equal(t, t0.Add(time.Minute), *rec.CompletedAt)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, rec.CompletedSteps)
}

func TestWizard_FailedNextChangesNothing(t *testing.T) {
	w := NewWizard("s1", t0)
	require.NoError(t, w.PatchProfile(models.ProfilePatch{Name: ptr("Jane")}))
	before := w.Clone()

	done, err := w.Next(t0.Add(time.Hour))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, done)
	assert.Equal(t, []string{"email", "country"}, verr.Missing)
	assert.Equal(t, before, w)
}

func TestWizard_FinalizeRejectsUnacceptedTerms(t *testing.T) {
	w := NewWizard("s1", t0)
	walk(t, w)
	require.NoError(t, w.PatchFields(models.FieldsPatch{
		DigitalSignature: ptr("Jane Doe"), AcceptTerms: ptr(false),
	}))

	err := w.Finalize(t0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"accept_terms"}, verr.Missing)
	assert.False(t, w.Finalized)
	assert.Empty(t, w.Record.FounderID)
}

func TestWizard_FinalizeIsSingleUse(t *testing.T) {
	w := NewWizard("s1", t0)
	walk(t, w)
	require.NoError(t, w.PatchFields(models.FieldsPatch{DigitalSignature: ptr("J"), AcceptTerms: ptr(true)}))
	require.NoError(t, w.Finalize(t0))
	id := w.Record.FounderID

	assert.ErrorIs(t, w.Finalize(t0.Add(time.Hour)), ErrAlreadyFinalized)
	_, err := w.Next(t0)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Equal(t, id, w.Record.FounderID)
	assert.ErrorIs(t, w.PatchProfile(models.ProfilePatch{Name: ptr("x")}), ErrFinalized)
	assert.ErrorIs(t, w.Back(t0), ErrFinalized)
}

func TestWizard_FinalizeBeforeLastStep(t *testing.T) {
	w := NewWizard("s1", t0)
	w.Record = completeRecord()
	assert.ErrorIs(t, w.Finalize(t0), ErrIncomplete)

	// reaching the last step without passing earlier ones
	w.CurrentStep = TotalSteps
	assert.ErrorIs(t, w.Finalize(t0), ErrIncomplete)
	assert.False(t, w.Finalized)
}

func TestWizard_BackIsBounded(t *testing.T) {
	w := NewWizard("s1", t0)
	require.NoError(t, w.Back(t0))
	assert.Equal(t, StepProfile, w.CurrentStep)

	walk(t, w)
	require.NoError(t, w.Back(t0))
	assert.Equal(t, StepMarketplace, w.CurrentStep)
	assert.Contains(t, w.Record.CompletedSteps, StepMarketplace)
}

func TestWizard_PatchFieldsUnknownCovenant(t *testing.T) {
	w := NewWizard("s1", t0)
	require.NoError(t, w.PatchFields(models.FieldsPatch{Covenant: ptr("stoic")}))

	err := w.PatchFields(models.FieldsPatch{Covenant: ptr("druid"), DigitalSignature: ptr("x")})
	assert.ErrorIs(t, err, models.ErrUnknownCovenant)
	assert.Equal(t, models.CovenantStoic, w.Record.Covenant)
	assert.Empty(t, w.Record.DigitalSignature)

	require.NoError(t, w.PatchFields(models.FieldsPatch{Covenant: ptr("")}))
	assert.Empty(t, w.Record.Covenant)
}

func TestWizard_PatchIsShallowMerge(t *testing.T) {
	w := NewWizard("s1", t0)
	require.NoError(t, w.PatchMarketplace(models.MarketplacePatch{IsPublic: ptr(true), FundingStage: ptr("seed")}))
	require.NoError(t, w.PatchMarketplace(models.MarketplacePatch{FundingAmount: ptr("$50k")}))

	assert.Equal(t, models.MarketplaceSettings{IsPublic: true, FundingStage: "seed", FundingAmount: "$50k"},
		w.Record.MarketplaceSettings)
	assert.Equal(t, "ideation", w.Record.StartupDetails.Stage)
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Hour)
	now := t0
	s.now = func() time.Time { return now }

	w := NewWizard("abc", t0)
	require.NoError(t, s.Create(ctx, w))
	assert.Error(t, s.Create(ctx, w))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	require.NoError(t, got.PatchProfile(models.ProfilePatch{Name: ptr("Jane")}))

	again, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, again.Record.FounderProfile.Name, "unsaved changes must not leak into the store")

	require.NoError(t, s.Save(ctx, got))
	again, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.Record.FounderProfile.Name)

	now = now.Add(2 * time.Hour)
	_, err = s.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.Save(ctx, got), ErrSessionNotFound)

	now = t0
	require.NoError(t, s.Create(ctx, NewWizard("def", t0)))
	require.NoError(t, s.Delete(ctx, "def"))
	_, err = s.Get(ctx, "def")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_SaveKeepsExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Hour)
	now := t0
	s.now = func() time.Time { return now }

	w := NewWizard("abc", t0)
	require.NoError(t, s.Create(ctx, w))

	now = t0.Add(50 * time.Minute)
	require.NoError(t, s.Save(ctx, w))

	now = t0.Add(61 * time.Minute)
	_, err := s.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_ClaimFinalize(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Hour)
	require.NoError(t, s.Create(ctx, NewWizard("abc", t0)))

	assert.ErrorIs(t, s.ClaimFinalize(ctx, "missing"), ErrSessionNotFound)

	require.NoError(t, s.ClaimFinalize(ctx, "abc"))
	assert.ErrorIs(t, s.ClaimFinalize(ctx, "abc"), ErrAlreadyFinalized)

	require.NoError(t, s.ReleaseFinalize(ctx, "abc"))
	require.NoError(t, s.ClaimFinalize(ctx, "abc"))

	done := NewWizard("def", t0)
	done.Finalized = true
	require.NoError(t, s.Create(ctx, done))
	assert.ErrorIs(t, s.ClaimFinalize(ctx, "def"), ErrAlreadyFinalized)
}

func TestMemorySessionStore_ClaimFinalizeConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Hour)
	require.NoError(t, s.Create(ctx, NewWizard("abc", t0)))

	const n = 16
	var wg sync.WaitGroup
	var won atomic.Int32
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.ClaimFinalize(ctx, "abc") == nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, won.Load())
}

func TestCovenantDocument(t *testing.T) {
	r := completeRecord()
	c, err := models.LookupCovenant("gospel")
	require.NoError(t, err)

	doc := CovenantDocument(r, c, t0)
	assert.Contains(t, doc, "Founder: Jane Doe\n")
	assert.Contains(t, doc, "Covenant: Gospel Covenant\n")
	assert.Contains(t, doc, "Project: Seedline\n")
	assert.Contains(t, doc, "Date: October 18, 2026\n")
	assert.Contains(t, doc, "• Kingdom First\n")
	assert.Contains(t, doc, "- Matthew 6:33")
	assert.Contains(t, doc, "Digital Signature: Jane Doe\n")

	assert.Equal(t, "Jane_Doe_Covenant.txt", CovenantFilename(r))
	r.FounderProfile.Name = "  "
	assert.Equal(t, "Founder_Covenant.txt", CovenantFilename(r))
}
