package routes

import (
	"net/http"

	"availcal/handlers"
	"availcal/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the sessionless availability reads.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.GetMonthHandler)
		api.GET("/day", hb.GetDayHandler)
	}
}

// RegisterViewRoutes registers the calendar view-state endpoints.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/view")
	{
		api.POST("/session", hb.CreateSessionHandler)
		api.GET("/session/:sessionID", hb.GetSessionHandler)
		api.POST("/session/:sessionID/navigate", hb.NavigateMonthHandler)
		api.POST("/session/:sessionID/theme", hb.ToggleThemeHandler)
		api.POST("/session/:sessionID/refresh", hb.RequestRefreshHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterViewRoutes(r, hb)
}
