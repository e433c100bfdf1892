package onboarding

import (
	"fmt"
	"strings"

	"foundryos/backend/models"
)

// ValidationError reports the required fields a step is still missing.
type ValidationError struct {
	Step    int
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateStep checks only the fields owned by step. It returns nil when the
// step may be left, a *ValidationError when required fields are missing and
// ErrInvalidStep for steps outside 1..TotalSteps.
func ValidateStep(step int, r models.OnboardingRecord) error {
	if !validStep(step) {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	var missing []string
	need := func(field string, ok bool) {
		if !ok {
			missing = append(missing, field)
		}
	}

	switch step {
	case StepProfile:
		need("name", !blank(r.FounderProfile.Name))
		need("email", !blank(r.FounderProfile.Email))
		need("country", !blank(r.FounderProfile.Country))
	case StepCovenant:
		need("covenant", r.Covenant != "")
	case StepStartup:
		need("project_name", !blank(r.StartupDetails.ProjectName))
		need("mission_statement", !blank(r.StartupDetails.MissionStatement))
	case StepMission:
		need("weekly_focus", !blank(r.MissionTracker.WeeklyFocus))
	case StepMarketplace:
		// every marketplace field is optional
	case StepSigning:
		need("digital_signature", !blank(r.DigitalSignature))
		need("accept_terms", r.AcceptTerms)
	}

	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{
		Step:    step,
		Missing: missing,
		Message: steps[step].prompt + ": missing " + strings.Join(missing, ", "),
	}
}
