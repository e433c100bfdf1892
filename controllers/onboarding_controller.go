package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"foundryos/backend/logger"
	"foundryos/backend/metrics"
	"foundryos/backend/middlewares"
	"foundryos/backend/models"
	"foundryos/backend/onboarding"
	"foundryos/backend/utils"
)

func StartOnboarding(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		w := onboarding.NewWizard(uuid.NewString(), d.now())
		ctx, cancel := storeCtx(c)
		defer cancel()
		if err := d.Sessions.Create(ctx, w); err != nil {
			respondError(c, err)
			return
		}
		token, err := utils.GenerateJWT(d.Cfg.JWTSecret, w.ID, utils.ScopeWizard, d.Cfg.SessionTTL)
		if err != nil {
			respondError(c, err)
			return
		}
		metrics.WizardStarts.Inc()
		logger.FromGin(c).Info("onboarding started", zap.String("session_id", w.ID))
		c.JSON(http.StatusCreated, gin.H{"session_token": token, "state": stateOf(w)})
	}
}

func GetOnboarding(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := storeCtx(c)
		defer cancel()
		w, err := d.Sessions.Get(ctx, c.GetString(middlewares.SubjectKey))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateOf(w))
	}
}

// updateWizard loads the caller's session, applies fn and saves it back.
// Nothing is saved when fn fails.
func updateWizard(c *gin.Context, d Deps, fn func(w *onboarding.Wizard) error) {
	ctx, cancel := storeCtx(c)
	defer cancel()
	w, err := d.Sessions.Get(ctx, c.GetString(middlewares.SubjectKey))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := fn(w); err != nil {
		respondError(c, err)
		return
	}
	w.UpdatedAt = d.now().UTC()
	if err := d.Sessions.Save(ctx, w); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateOf(w))
}

func PatchProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.ProfilePatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.PatchProfile(p) })
	}
}

func PatchStartup(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.StartupPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.PatchStartup(p) })
	}
}

func PatchMission(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.MissionPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.PatchMission(p) })
	}
}

func PatchMarketplace(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.MarketplacePatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.PatchMarketplace(p) })
	}
}

func PatchFields(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.FieldsPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.PatchFields(p) })
	}
}

func PreviousStep(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateWizard(c, d, func(w *onboarding.Wizard) error { return w.Back(d.now()) })
	}
}

// NextStep validates the current step and advances. On the last step it
// finalizes: the session's finalize claim is taken, the record is persisted,
// the finalized session is kept until it expires so a repeated submit is
// refused, and a dashboard token is issued.
func NextStep(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromGin(c)
		ctx, cancel := storeCtx(c)
		defer cancel()
		w, err := d.Sessions.Get(ctx, c.GetString(middlewares.SubjectKey))
		if err != nil {
			respondError(c, err)
			return
		}
		done, err := w.Next(d.now())
		if err != nil {
			respondError(c, err)
			return
		}
		if !done {
			if err := d.Sessions.Save(ctx, w); err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, stateOf(w))
			return
		}

		// Two submits can both get this far; only the claim winner persists.
		if err := d.Sessions.ClaimFinalize(ctx, w.ID); err != nil {
			respondError(c, err)
			return
		}
		rec := w.Snapshot()
		if err := d.Records.SaveRecord(ctx, rec); err != nil {
			if rerr := d.Sessions.ReleaseFinalize(ctx, w.ID); rerr != nil {
				log.Warn("release finalize claim", zap.String("session_id", w.ID), zap.Error(rerr))
			}
			respondError(c, err)
			return
		}
		if err := d.Sessions.Save(ctx, w); err != nil {
			log.Warn("keep finalized session", zap.String("session_id", w.ID), zap.Error(err))
		}
		token, err := utils.GenerateJWT(d.Cfg.JWTSecret, rec.FounderID, utils.ScopeDashboard, d.Cfg.DashboardTokenTTL)
		if err != nil {
			respondError(c, err)
			return
		}
		metrics.Finalizations.Inc()
		log.Info("onboarding finalized",
			zap.String("session_id", w.ID),
			zap.String("founder_id", rec.FounderID),
			zap.String("covenant", string(rec.Covenant)),
		)
		c.JSON(http.StatusCreated, gin.H{"dashboard_token": token, "record": rec})
	}
}

func AbandonOnboarding(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := storeCtx(c)
		defer cancel()
		if err := d.Sessions.Delete(ctx, c.GetString(middlewares.SubjectKey)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
