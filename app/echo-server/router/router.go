package router

import (
	"streamPulse/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	analytics := api.Group("/analytics")

	analytics.POST("/pareto", handler.ComputePareto)
	analytics.GET("/pareto", handler.StoredPareto)
	analytics.POST("/pareto/validate", handler.ValidatePareto)
	analytics.POST("/root-cause", handler.AnalyzeRootCause)
	analytics.POST("/forecast", handler.Forecast)
}

func SetupCampaignRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	campaigns := api.Group("/campaigns")

	campaigns.POST("", handler.GenerateCampaign)
}

func SetupSnapshotRoutes(api *echo.Group, handler *rest.SnapshotHandler) {
	cohorts := api.Group("/cohorts")
	cohorts.GET("", handler.GetAllCohorts)
	cohorts.POST("", handler.CreateCohort)

	themes := api.Group("/complaint-themes")
	themes.GET("", handler.GetAllComplaintThemes)
	themes.POST("", handler.CreateComplaintTheme)

	issues := api.Group("/production-issues")
	issues.GET("", handler.GetAllProductionIssues)
	issues.POST("", handler.CreateProductionIssue)

	shows := api.Group("/content-shows")
	shows.GET("", handler.GetAllContentShows)
	shows.POST("", handler.CreateContentShow)
}
