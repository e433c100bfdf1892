package routes

import (
	"github.com/gin-gonic/gin"

	"foundryos/backend/controllers"
	"foundryos/backend/metrics"
	"foundryos/backend/middlewares"
	"foundryos/backend/utils"
)

func Register(r *gin.Engine, d controllers.Deps) {
	r.GET("/healthz", controllers.Health())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/covenants", controllers.ListCovenants())
		api.GET("/covenants/:id", controllers.GetCovenant())
		api.GET("/covenants/:id/guidance", controllers.CovenantGuidance(d))

		// Opens a wizard session and returns its bearer token
		api.POST("/onboarding/start", controllers.StartOnboarding(d))

		wizard := api.Group("/onboarding")
		wizard.Use(middlewares.Auth(d.Cfg.JWTSecret, utils.ScopeWizard))
		wizard.GET("", controllers.GetOnboarding(d))
		wizard.DELETE("", controllers.AbandonOnboarding(d))
		// Shallow merge into one section of the record
		wizard.PATCH("/profile", controllers.PatchProfile(d))
		wizard.PATCH("/startup", controllers.PatchStartup(d))
		wizard.PATCH("/mission", controllers.PatchMission(d))
		wizard.PATCH("/marketplace", controllers.PatchMarketplace(d))
		wizard.PATCH("/fields", controllers.PatchFields(d))
		// Validates the current step; finalizes on the last one
		wizard.POST("/next", controllers.NextStep(d))
		wizard.POST("/back", controllers.PreviousStep(d))

		dash := api.Group("/dashboard")
		dash.Use(middlewares.Auth(d.Cfg.JWTSecret, utils.ScopeDashboard))
		dash.GET("", controllers.Dashboard(d))
		// Downloads
		dash.GET("/covenant.txt", controllers.DownloadCovenant(d))
		dash.GET("/export.xlsx", controllers.ExportDashboard(d))
		dash.GET("/reflections", controllers.ListReflections(d))
		dash.POST("/reflections", controllers.SubmitReflection(d))
	}
}
