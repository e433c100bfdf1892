package models

import (
	"slices"
	"time"
)

type FounderProfile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	FaithTradition string `json:"faith_tradition"`
	Bio            string `json:"bio"`
	Calling        string `json:"calling"`
	LinkedInURL    string `json:"linkedin_url,omitempty"`
	WebsiteURL     string `json:"website_url,omitempty"`
}

type StartupDetails struct {
	ProjectName        string `json:"project_name"`
	MissionStatement   string `json:"mission_statement"`
	ImpactType         string `json:"impact_type"`
	RegionOfOperation  string `json:"region_of_operation"`
	Stage              string `json:"stage"`
	Readiness          string `json:"readiness"`
	ProblemDescription string `json:"problem_description"`
}

// MissionTracker is the founder's first weekly entry. Score stays nil until a
// real alignment score exists.
type MissionTracker struct {
	WeeklyFocus     string `json:"weekly_focus"`
	Reflection      string `json:"reflection"`
	PrayerIntention string `json:"prayer_intention"`
	Score           *int   `json:"score"`
}

type MarketplaceSettings struct {
	IsPublic             bool   `json:"is_public"`
	AllowInvestorContact bool   `json:"allow_investor_contact"`
	FundingStage         string `json:"funding_stage"`
	FundingAmount        string `json:"funding_amount"`
}

// OnboardingRecord is everything the wizard collects. FounderID and
// CompletedAt are only set once the record is finalized.
type OnboardingRecord struct {
	FounderID           string              `json:"founder_id,omitempty"`
	FounderProfile      FounderProfile      `json:"founder_profile"`
	Covenant            CovenantKind        `json:"covenant"`
	StartupDetails      StartupDetails      `json:"startup_details"`
	MissionTracker      MissionTracker      `json:"mission_tracker"`
	MarketplaceSettings MarketplaceSettings `json:"marketplace_settings"`
	DigitalSignature    string              `json:"digital_signature"`
	AcceptTerms         bool                `json:"accept_terms"`
	CompletedSteps      []int               `json:"completed_steps"`
	CompletedAt         *time.Time          `json:"completed_at,omitempty"`
}

func NewOnboardingRecord() OnboardingRecord {
	return OnboardingRecord{
		StartupDetails: StartupDetails{Stage: "ideation"},
		CompletedSteps: []int{},
	}
}

// Clone returns a copy that shares no pointers or slices with r.
func (r OnboardingRecord) Clone() OnboardingRecord {
	out := r
	out.CompletedSteps = slices.Clone(r.CompletedSteps)
	if out.CompletedSteps == nil {
		out.CompletedSteps = []int{}
	}
	if r.MissionTracker.Score != nil {
		s := *r.MissionTracker.Score
		out.MissionTracker.Score = &s
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

func (r OnboardingRecord) IsFinalized() bool {
	return r.FounderID != "" && r.CompletedAt != nil
}

// Reflection is a weekly mission-tracker entry submitted from the dashboard.
type Reflection struct {
	ID              int64     `json:"id"`
	FounderID       string    `json:"founder_id"`
	WeeklyFocus     string    `json:"weekly_focus"`
	Reflection      string    `json:"reflection"`
	PrayerIntention string    `json:"prayer_intention"`
	Guidance        string    `json:"guidance"`
	AlignmentScore  *int      `json:"alignment_score"`
	CreatedAt       time.Time `json:"created_at"`
}
