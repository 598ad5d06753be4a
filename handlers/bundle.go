package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the route handlers wired in main.
type HandlerBundle struct {
	// Availability endpoints.
	GetMonthHandler gin.HandlerFunc
	GetDayHandler   gin.HandlerFunc

	// View-session endpoints.
	CreateSessionHandler  gin.HandlerFunc
	GetSessionHandler     gin.HandlerFunc
	NavigateMonthHandler  gin.HandlerFunc
	ToggleThemeHandler    gin.HandlerFunc
	RequestRefreshHandler gin.HandlerFunc
}
