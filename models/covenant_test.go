package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCovenantKindHasContent(t *testing.T) {
	for _, k := range CovenantKinds() {
		t.Run(string(k), func(t *testing.T) {
			c, err := LookupCovenant(string(k))
			require.NoError(t, err)
			assert.Equal(t, k, c.ID)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.CoreVerse.Text)
			assert.Len(t, c.Principles, 4)
			assert.NotEmpty(t, c.DailyScriptures)
			assert.NotEmpty(t, c.WeeklyFocusAreas)
			assert.NotEmpty(t, c.ReflectionPrompts)
			assert.NotEmpty(t, c.WeeklyPrompt)
			assert.NotEmpty(t, c.IntentionLabel)
		})
	}
	assert.Len(t, AllCovenants(), 3)
}

func TestLookupCovenant_Unknown(t *testing.T) {
	for _, id := range []string{"", "GOSPEL", "buddhist"} {
		_, err := LookupCovenant(id)
		assert.ErrorIs(t, err, ErrUnknownCovenant, "id %q", id)
	}
	_, err := ParseCovenantKind("nope")
	assert.ErrorIs(t, err, ErrUnknownCovenant)
}

func TestCovenantPrincipleNames(t *testing.T) {
	c, err := LookupCovenant("stoic")
	require.NoError(t, err)
	assert.Equal(t, []string{"Virtue Ethics", "Wisdom", "Resilience", "Personal Growth"}, c.PrincipleNames())
}

func TestQuoteString(t *testing.T) {
	q := Quote{Reference: "Psalm 24:1", Text: "The earth is the Lord's"}
	assert.Equal(t, `"The earth is the Lord's" - Psalm 24:1`, q.String())
}

func TestDailyGuidance(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	g, err := DailyGuidance(CovenantGospel, now)
	require.NoError(t, err)

	c, _ := LookupCovenant("gospel")
	assert.Equal(t, c.DailyScriptures[18%5], g.Scripture)
	assert.Equal(t, c.ReflectionPrompts[18%5], g.ReflectionPrompt)
	week := int(now.Unix() / (7 * 24 * 60 * 60))
	assert.Equal(t, c.WeeklyFocusAreas[week%6], g.WeeklyFocus)

	_, err = DailyGuidance("", now)
	assert.ErrorIs(t, err, ErrUnknownCovenant)
}

func TestOnboardingRecord_CloneIsIndependent(t *testing.T) {
	score := 90
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewOnboardingRecord()
	r.CompletedSteps = []int{1, 2}
	r.MissionTracker.Score = &score
	r.CompletedAt = &at

	c := r.Clone()
	c.CompletedSteps[0] = 9
	*c.MissionTracker.Score = 1
	*c.CompletedAt = at.Add(time.Hour)

	assert.Equal(t, []int{1, 2}, r.CompletedSteps)
	assert.Equal(t, 90, *r.MissionTracker.Score)
	assert.Equal(t, at, *r.CompletedAt)
}

func TestOnboardingRecord_JSONRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	r := OnboardingRecord{
		FounderID: "8b0c6f0e-8f4e-4a4a-9d6e-0c6c1f2b3a4d",
		FounderProfile: FounderProfile{
			Name: "Jane Doe", Email: "jane@x.com", Country: "Canada", Region: "Ontario",
			FaithTradition: "Christian", Bio: "Builder", Calling: "Serve", WebsiteURL: "https://jane.example",
		},
		Covenant: CovenantEcological,
		StartupDetails: StartupDetails{
			ProjectName: "Seedline", MissionStatement: "Restore soil", ImpactType: "Environment",
			RegionOfOperation: "North America", Stage: "mvp", Readiness: "ready", ProblemDescription: "Erosion",
		},
		MissionTracker:      MissionTracker{WeeklyFocus: "Hiring", Reflection: "Good week", PrayerIntention: "Patience"},
		MarketplaceSettings: MarketplaceSettings{IsPublic: true, FundingStage: "seed", FundingAmount: "$250k"},
		DigitalSignature:    "Jane Doe",
		AcceptTerms:         true,
		CompletedSteps:      []int{1, 2, 3, 4, 5, 6},
		CompletedAt:         &at,
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var got OnboardingRecord
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, r, got)
}

func TestProfilePatch_PreservesUnsetFields(t *testing.T) {
	fp := FounderProfile{Name: "Jane", Email: "jane@x.com", Bio: "old"}
	name := "Jane Doe"
	bio := ""
	ProfilePatch{Name: &name, Bio: &bio}.Apply(&fp)

	assert.Equal(t, "Jane Doe", fp.Name)
	assert.Equal(t, "jane@x.com", fp.Email)
	assert.Equal(t, "", fp.Bio)
}
