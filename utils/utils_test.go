package utils

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"foundryos/backend/models"
	"foundryos/backend/scoring"
)

const testSecret = "test-secret-key"

func TestJWTRoundTrip(t *testing.T) {
	tok, err := GenerateJWT(testSecret, "session-1", ScopeWizard, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.Subject)
	assert.Equal(t, ScopeWizard, claims.Scope)
}

func TestParseJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT(testSecret, "s", ScopeWizard, -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(testSecret, expired)
	assert.Error(t, err)

	other, err := GenerateJWT("another-secret", "s", ScopeWizard, time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(testSecret, other)
	assert.Error(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Scope: ScopeDashboard}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseJWT(testSecret, noSubject)
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Scope:            ScopeDashboard,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "s"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(testSecret, none)
	assert.Error(t, err)
}

func TestStaticGuide(t *testing.T) {
	c, err := models.LookupCovenant("ecological")
	require.NoError(t, err)
	text, err := StaticGuide(context.Background(), c, models.Reflection{})
	require.NoError(t, err)
	assert.Contains(t, text, c.WeeklyPrompt)
}

func TestDashboardWorkbook(t *testing.T) {
	at := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	rec := models.NewOnboardingRecord()
	rec.FounderID = "f-1"
	rec.CompletedAt = &at
	rec.FounderProfile.Name = "Jane Doe"
	rec.StartupDetails.ProjectName = "Seedline"
	rec.CompletedSteps = []int{1, 2, 3, 4, 5, 6}
	cov, err := models.LookupCovenant("gospel")
	require.NoError(t, err)
	m := scoring.Compute(rec, at.Add(72*time.Hour))

	buf, err := DashboardWorkbook(rec, cov, m)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{recordSheet, metricsSheet}, f.GetSheetList())

	v, err := f.GetCellValue(recordSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", v)

	v, err = f.GetCellValue(recordSheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "Gospel Covenant", v)

	v, err = f.GetCellValue(metricsSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "85", v)

	v, err = f.GetCellValue(metricsSheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, m.Label, v)
}

func TestDashboardWorkbook_UnknownCovenant(t *testing.T) {
	at := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	rec := models.NewOnboardingRecord()
	rec.FounderID = "f-2"
	rec.CompletedAt = &at
	rec.Covenant = "druid"
	rec.MissionTracker.PrayerIntention = "Clarity"

	buf, err := DashboardWorkbook(rec, models.Covenant{}, scoring.Compute(rec, at))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue(recordSheet, "A19")
	require.NoError(t, err)
	assert.Equal(t, "Intention", label)
	v, err := f.GetCellValue(recordSheet, "B19")
	require.NoError(t, err)
	assert.Equal(t, "Clarity", v)
}
