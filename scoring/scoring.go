// Package scoring derives the dashboard's purpose-progress percentages from a
// finalized onboarding record. Nothing here is stored.
package scoring

import (
	"math"
	"strings"
	"time"

	"foundryos/backend/models"
)

type NextStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type Metrics struct {
	ProfileCompletion float64    `json:"profile_completion"`
	StartupCompletion float64    `json:"startup_completion"`
	Clarity           int        `json:"clarity"`
	CovenantDepth     int        `json:"covenant_depth"`
	Execution         int        `json:"execution"`
	Consistency       int        `json:"consistency"`
	SocialProof       int        `json:"social_proof"`
	Overall           int        `json:"overall"`
	Label             string     `json:"label"`
	DaysSinceJoining  int        `json:"days_since_joining"`
	NextSteps         []NextStep `json:"next_steps"`
}

func Compute(r models.OnboardingRecord, now time.Time) Metrics {
	m := Metrics{
		ProfileCompletion: ProfileCompletion(r),
		StartupCompletion: StartupCompletion(r),
		Clarity:           Clarity(r),
		CovenantDepth:     CovenantDepth(r),
		Execution:         Execution(r),
		Consistency:       Consistency(r, now),
		SocialProof:       SocialProof(r),
		DaysSinceJoining:  DaysSinceJoining(r, now),
	}
	m.Overall = Overall(m.Clarity, m.CovenantDepth, m.Execution, m.Consistency, m.SocialProof)
	m.Label = Label(m.Overall)
	m.NextSteps = nextSteps(m)
	return m
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func fraction(fields ...string) float64 {
	n := 0
	for _, f := range fields {
		if present(f) {
			n++
		}
	}
	return float64(n) / float64(len(fields))
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}

// ProfileCompletion tracks name, email, country, bio and calling.
func ProfileCompletion(r models.OnboardingRecord) float64 {
	p := r.FounderProfile
	return fraction(p.Name, p.Email, p.Country, p.Bio, p.Calling)
}

// StartupCompletion tracks project name, mission statement and impact type.
func StartupCompletion(r models.OnboardingRecord) float64 {
	s := r.StartupDetails
	return fraction(s.ProjectName, s.MissionStatement, s.ImpactType)
}

func Clarity(r models.OnboardingRecord) int {
	return percent((ProfileCompletion(r) + StartupCompletion(r)) / 2)
}

func CovenantDepth(r models.OnboardingRecord) int {
	mt := r.MissionTracker
	signals := 0
	for _, ok := range []bool{present(mt.Reflection), present(mt.WeeklyFocus), present(mt.PrayerIntention), r.Covenant != ""} {
		if ok {
			signals++
		}
	}
	return percent(float64(signals) / 4)
}

func Execution(r models.OnboardingRecord) int {
	score := 0
	for _, ok := range []bool{
		present(r.StartupDetails.ProjectName),
		present(r.StartupDetails.MissionStatement),
		present(r.MissionTracker.Reflection),
		present(r.MissionTracker.WeeklyFocus),
	} {
		if ok {
			score += 25
		}
	}
	return min(score, 100)
}

// DaysSinceJoining counts whole days since completion. Missing or future
// timestamps count as zero.
func DaysSinceJoining(r models.OnboardingRecord, now time.Time) int {
	if r.CompletedAt == nil {
		return 0
	}
	d := now.Sub(*r.CompletedAt)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// Consistency is a fixed banding on days since joining, not a decay curve.
func Consistency(r models.OnboardingRecord, now time.Time) int {
	switch days := DaysSinceJoining(r, now); {
	case days < 7:
		return 85
	case days < 14:
		return 78
	default:
		return 72
	}
}

func SocialProof(r models.OnboardingRecord) int {
	score := 0
	if r.MarketplaceSettings.IsPublic {
		score += 50
	}
	if r.MarketplaceSettings.AllowInvestorContact {
		score += 30
	}
	if len(r.CompletedSteps) >= 5 {
		score += 20
	}
	return min(score, 100)
}

func Overall(scores ...int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func Label(overall int) string {
	switch {
	case overall >= 90:
		return "Excellent"
	case overall >= 80:
		return "Strong"
	case overall >= 70:
		return "Good"
	case overall >= 60:
		return "Developing"
	default:
		return "Building"
	}
}

func nextSteps(m Metrics) []NextStep {
	steps := []NextStep{}
	if m.Clarity < 80 {
		steps = append(steps, NextStep{
			Title:       "Complete your profile",
			Description: "Add missing details to your founder and startup profiles",
			Priority:    "high",
		})
	}
	if m.CovenantDepth < 70 {
		steps = append(steps, NextStep{
			Title:       "Deepen spiritual practices",
			Description: "Submit weekly reflections and set prayer intentions",
			Priority:    "high",
		})
	}
	if m.Execution < 75 {
		steps = append(steps, NextStep{
			Title:       "Track mission progress",
			Description: "Set weekly goals and track your startup milestones",
			Priority:    "medium",
		})
	}
	if m.SocialProof < 60 {
		steps = append(steps, NextStep{
			Title:       "Join the community",
			Description: "Make your project visible and connect with other founders",
			Priority:    "medium",
		})
	}
	return steps
}
