package routes

import (
	"consultoria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEngagements = "/engagements"
	PathDashboard   = "/dashboard"
)

func addEngagementRoutes(rg *gin.RouterGroup, h *handlers.EngagementHandler) {
	engagements := rg.Group(PathEngagements)
	{
		engagements.GET("", h.ListEngagements)
		engagements.POST("", h.CreateEngagement)
		engagements.GET("/:id", h.GetEngagement)
		engagements.PATCH("/:id", h.UpdateEngagement)
		engagements.DELETE("/:id", h.DeleteEngagement)

		// Lifecycle transitions.
		engagements.POST("/:id/pause", h.PauseEngagement)
		engagements.POST("/:id/resume", h.ResumeEngagement)
		engagements.POST("/:id/complete", h.CompleteEngagement)
		engagements.POST("/:id/cancel", h.CancelEngagement)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/breakdown/:dimension", h.GetBreakdown)
	}
}
