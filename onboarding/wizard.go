package onboarding

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"foundryos/backend/models"
)

// Wizard is one founder's in-progress onboarding session. It is a plain
// value so a SessionStore can persist it between requests.
type Wizard struct {
	ID          string                  `json:"id"`
	CurrentStep int                     `json:"current_step"`
	Record      models.OnboardingRecord `json:"record"`
	Finalized   bool                    `json:"finalized"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func NewWizard(id string, now time.Time) *Wizard {
	return &Wizard{
		ID:          id,
		CurrentStep: StepProfile,
		Record:      models.NewOnboardingRecord(),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
}

func (w *Wizard) Clone() *Wizard {
	out := *w
	out.Record = w.Record.Clone()
	return &out
}

// Snapshot returns a copy of the current record.
func (w *Wizard) Snapshot() models.OnboardingRecord {
	return w.Record.Clone()
}

func (w *Wizard) writable() error {
	if w.Finalized {
		return ErrFinalized
	}
	return nil
}

func (w *Wizard) PatchProfile(p models.ProfilePatch) error {
	if err := w.writable(); err != nil {
		return err
	}
	p.Apply(&w.Record.FounderProfile)
	return nil
}

func (w *Wizard) PatchStartup(p models.StartupPatch) error {
	if err := w.writable(); err != nil {
		return err
	}
	p.Apply(&w.Record.StartupDetails)
	return nil
}

func (w *Wizard) PatchMission(p models.MissionPatch) error {
	if err := w.writable(); err != nil {
		return err
	}
	p.Apply(&w.Record.MissionTracker)
	return nil
}

func (w *Wizard) PatchMarketplace(p models.MarketplacePatch) error {
	if err := w.writable(); err != nil {
		return err
	}
	p.Apply(&w.Record.MarketplaceSettings)
	return nil
}

// PatchFields updates covenant, signature and terms. An unknown covenant id
// rejects the whole patch.
func (w *Wizard) PatchFields(p models.FieldsPatch) error {
	if err := w.writable(); err != nil {
		return err
	}
	covenant := w.Record.Covenant
	if p.Covenant != nil {
		if *p.Covenant == "" {
			covenant = ""
		} else {
			k, err := models.ParseCovenantKind(*p.Covenant)
			if err != nil {
				return err
			}
			covenant = k
		}
	}
	w.Record.Covenant = covenant
	if p.DigitalSignature != nil {
		w.Record.DigitalSignature = *p.DigitalSignature
	}
	if p.AcceptTerms != nil {
		w.Record.AcceptTerms = *p.AcceptTerms
	}
	return nil
}

func (w *Wizard) markCompleted(step int) {
	if slices.Contains(w.Record.CompletedSteps, step) {
		return
	}
	w.Record.CompletedSteps = append(w.Record.CompletedSteps, step)
	slices.Sort(w.Record.CompletedSteps)
}

// Next validates the current step. On failure nothing changes. On the last
// step it finalizes and reports true.
func (w *Wizard) Next(now time.Time) (bool, error) {
	if w.Finalized {
		return false, ErrAlreadyFinalized
	}
	if w.CurrentStep == TotalSteps {
		if err := w.Finalize(now); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := ValidateStep(w.CurrentStep, w.Record); err != nil {
		return false, err
	}
	w.markCompleted(w.CurrentStep)
	w.CurrentStep++
	w.UpdatedAt = now.UTC()
	return false, nil
}

// Back moves one step backwards, never below the first step.
func (w *Wizard) Back(now time.Time) error {
	if w.Finalized {
		return ErrFinalized
	}
	if w.CurrentStep > StepProfile {
		w.CurrentStep--
		w.UpdatedAt = now.UTC()
	}
	return nil
}

// Finalize freezes the record, assigns a founder id and stamps the
// completion time. It only runs once per wizard.
func (w *Wizard) Finalize(now time.Time) error {
	if w.Finalized {
		return ErrAlreadyFinalized
	}
	if w.CurrentStep != TotalSteps {
		return fmt.Errorf("%w: on step %d of %d", ErrIncomplete, w.CurrentStep, TotalSteps)
	}
	if err := ValidateStep(TotalSteps, w.Record); err != nil {
		return err
	}
	for s := StepProfile; s < TotalSteps; s++ {
		if !slices.Contains(w.Record.CompletedSteps, s) {
			return fmt.Errorf("%w: step %d not completed", ErrIncomplete, s)
		}
	}

	at := now.UTC()
	w.markCompleted(TotalSteps)
	w.Record.FounderID = uuid.NewString()
	w.Record.CompletedAt = &at
	w.Finalized = true
	w.UpdatedAt = at
	return nil
}
