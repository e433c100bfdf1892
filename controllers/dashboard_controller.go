package controllers

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foundryos/backend/logger"
	"foundryos/backend/metrics"
	"foundryos/backend/middlewares"
	"foundryos/backend/models"
	"foundryos/backend/onboarding"
	"foundryos/backend/scoring"
	"foundryos/backend/utils"
)

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}

func loadRecord(c *gin.Context, d Deps) (models.OnboardingRecord, bool) {
	ctx, cancel := storeCtx(c)
	defer cancel()
	rec, err := d.Records.GetRecord(ctx, c.GetString(middlewares.SubjectKey))
	if err != nil {
		respondError(c, err)
		return models.OnboardingRecord{}, false
	}
	return rec, true
}

// Dashboard returns the finalized record with its derived scores. A record
// whose covenant is no longer known still renders, without covenant data.
func Dashboard(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := loadRecord(c, d)
		if !ok {
			return
		}
		now := d.now()
		m := scoring.Compute(rec, now)
		resp := gin.H{
			"record":             rec,
			"metrics":            m,
			"days_since_joining": m.DaysSinceJoining,
			"covenant":           nil,
		}
		if cov, err := models.LookupCovenant(string(rec.Covenant)); err == nil {
			resp["covenant"] = cov
			if g, err := models.DailyGuidance(cov.ID, now); err == nil {
				resp["guidance"] = g
			}
		} else {
			logger.FromGin(c).Warn("dashboard covenant lookup", zap.String("covenant", string(rec.Covenant)), zap.Error(err))
			resp["covenant_error"] = "covenant details are unavailable"
		}
		c.JSON(http.StatusOK, resp)
	}
}

func DownloadCovenant(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := loadRecord(c, d)
		if !ok {
			return
		}
		cov, err := models.LookupCovenant(string(rec.Covenant))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "covenant not found"})
			return
		}
		attachment(c, onboarding.CovenantFilename(rec))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(onboarding.CovenantDocument(rec, cov, d.now())))
	}
}

func ExportDashboard(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := loadRecord(c, d)
		if !ok {
			return
		}
		cov, _ := models.LookupCovenant(string(rec.Covenant))
		buf, err := utils.DashboardWorkbook(rec, cov, scoring.Compute(rec, d.now()))
		if err != nil {
			respondError(c, err)
			return
		}
		attachment(c, "foundry_dashboard_"+rec.FounderID+".xlsx")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

// SubmitReflection records a weekly mission entry. The alignment score is
// left null; it is not computed yet.
func SubmitReflection(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReflectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		var missing []string
		if strings.TrimSpace(req.WeeklyFocus) == "" {
			missing = append(missing, "weekly_focus")
		}
		if strings.TrimSpace(req.Reflection) == "" {
			missing = append(missing, "reflection")
		}
		if len(missing) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Please complete required fields: missing " + strings.Join(missing, ", "),
				"missing": missing,
			})
			return
		}

		rec, ok := loadRecord(c, d)
		if !ok {
			return
		}
		ref := models.Reflection{
			FounderID:       rec.FounderID,
			WeeklyFocus:     req.WeeklyFocus,
			Reflection:      req.Reflection,
			PrayerIntention: req.PrayerIntention,
		}

		log := logger.FromGin(c)
		if cov, err := models.LookupCovenant(string(rec.Covenant)); err == nil {
			guide := d.Guide
			if guide == nil {
				guide = utils.StaticGuide
			}
			gctx, gcancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
			text, err := guide(gctx, cov, ref)
			gcancel()
			if err != nil {
				log.Warn("reflection guidance failed; using static prompt", zap.Error(err))
				text, _ = utils.StaticGuide(c.Request.Context(), cov, ref)
			}
			ref.Guidance = text
		}

		ctx, cancel := storeCtx(c)
		defer cancel()
		if err := d.Records.SaveReflection(ctx, &ref); err != nil {
			respondError(c, err)
			return
		}
		metrics.Reflections.Inc()
		c.JSON(http.StatusCreated, gin.H{"reflection": ref})
	}
}

func ListReflections(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		if offset < 0 {
			offset = 0
		}
		ctx, cancel := storeCtx(c)
		defer cancel()
		out, err := d.Records.ListReflections(ctx, c.GetString(middlewares.SubjectKey), limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reflections": out, "limit": limit, "offset": offset})
	}
}
