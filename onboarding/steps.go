package onboarding

import "errors"

var (
	ErrSessionNotFound  = errors.New("onboarding session not found")
	ErrFinalized        = errors.New("onboarding already finalized; record is read-only")
	ErrAlreadyFinalized = errors.New("onboarding already finalized")
	ErrInvalidStep      = errors.New("invalid step")
	ErrIncomplete       = errors.New("onboarding incomplete")
)

const (
	StepProfile = iota + 1
	StepCovenant
	StepStartup
	StepMission
	StepMarketplace
	StepSigning

	TotalSteps = StepSigning
)

type stepInfo struct {
	title  string
	prompt string
	fields []string
}

var steps = map[int]stepInfo{
	StepProfile: {
		title:  "Founder Profile",
		prompt: "Please complete your profile",
		fields: []string{"name", "email", "country", "region", "faith_tradition", "bio", "calling", "linkedin_url", "website_url"},
	},
	StepCovenant: {
		title:  "Choose Your Covenant",
		prompt: "Please select a covenant",
		fields: []string{"covenant"},
	},
	StepStartup: {
		title:  "Startup Details",
		prompt: "Please complete startup details",
		fields: []string{"project_name", "mission_statement", "impact_type", "region_of_operation", "stage", "readiness", "problem_description"},
	},
	StepMission: {
		title:  "Mission Tracker",
		prompt: "Please set your weekly focus",
		fields: []string{"weekly_focus", "reflection", "prayer_intention"},
	},
	StepMarketplace: {
		title:  "Capital Marketplace",
		prompt: "Please review your marketplace settings",
		fields: []string{"is_public", "allow_investor_contact", "funding_stage", "funding_amount"},
	},
	StepSigning: {
		title:  "Covenant Acceptance",
		prompt: "Please complete the covenant acceptance",
		fields: []string{"digital_signature", "accept_terms"},
	},
}

func validStep(step int) bool {
	return step >= 1 && step <= TotalSteps
}

// StepTitle returns the heading shown for a step, or "" outside 1..TotalSteps.
func StepTitle(step int) string {
	return steps[step].title
}

// StepFields lists the JSON fields a step edits, so a client knows which
// inputs to render.
func StepFields(step int) ([]string, error) {
	info, ok := steps[step]
	if !ok {
		return nil, ErrInvalidStep
	}
	out := make([]string, len(info.fields))
	copy(out, info.fields)
	return out, nil
}
