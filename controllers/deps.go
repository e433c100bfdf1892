package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foundryos/backend/config"
	"foundryos/backend/database"
	"foundryos/backend/logger"
	"foundryos/backend/metrics"
	"foundryos/backend/models"
	"foundryos/backend/onboarding"
	"foundryos/backend/utils"
)

// Deps is what every handler factory closes over.
type Deps struct {
	Cfg      config.Config
	Sessions onboarding.SessionStore
	Records  database.RecordStore
	Guide    utils.GuideFunc
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func storeCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

type wizardState struct {
	SessionID   string                  `json:"session_id"`
	CurrentStep int                     `json:"current_step"`
	TotalSteps  int                     `json:"total_steps"`
	StepTitle   string                  `json:"step_title"`
	StepFields  []string                `json:"step_fields"`
	Finalized   bool                    `json:"finalized"`
	Record      models.OnboardingRecord `json:"record"`
}

func stateOf(w *onboarding.Wizard) wizardState {
	fields, _ := onboarding.StepFields(w.CurrentStep)
	return wizardState{
		SessionID:   w.ID,
		CurrentStep: w.CurrentStep,
		TotalSteps:  onboarding.TotalSteps,
		StepTitle:   onboarding.StepTitle(w.CurrentStep),
		StepFields:  fields,
		Finalized:   w.Finalized,
		Record:      w.Snapshot(),
	}
}

// respondError maps domain errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *onboarding.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.ValidationFailures.WithLabelValues(strconv.Itoa(verr.Step)).Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "step": verr.Step, "missing": verr.Missing})
	case errors.Is(err, onboarding.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "onboarding session not found; start again"})
	case errors.Is(err, database.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "onboarding record not found"})
	case errors.Is(err, onboarding.ErrFinalized), errors.Is(err, onboarding.ErrAlreadyFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, onboarding.ErrIncomplete), errors.Is(err, onboarding.ErrInvalidStep):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnknownCovenant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.FromGin(c).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
