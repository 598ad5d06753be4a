package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"availcal/services/view"
	"availcal/utils"
)

// ViewSessionHandler exposes the calendar view-state transitions.
type ViewSessionHandler struct {
	Sessions view.SessionService
	Logger   *zap.Logger
}

func NewViewSessionHandler(sessions view.SessionService, logger *zap.Logger) *ViewSessionHandler {
	return &ViewSessionHandler{Sessions: sessions, Logger: logger}
}

// CreateSessionHandler opens a view session on the current month.
// POST /api/view/session {"resource": "..."}
func (h *ViewSessionHandler) CreateSessionHandler(c *gin.Context) {
	var input struct {
		Resource string `json:"resource" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, ma, err := h.Sessions.CreateSession(c.Request.Context(), input.Resource)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create view session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "availability": ma})
}

// GetSessionHandler returns the current session state.
// GET /api/view/session/:sessionID
func (h *ViewSessionHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "view session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// NavigateMonthHandler shifts the visible month and refetches.
// POST /api/view/session/:sessionID/navigate {"delta": -1}
func (h *ViewSessionHandler) NavigateMonthHandler(c *gin.Context) {
	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, ma, err := h.Sessions.NavigateMonth(c.Request.Context(), c.Param("sessionID"), input.Delta)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to navigate month", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "availability": ma})
}

// ToggleThemeHandler flips the light/dark preference.
// POST /api/view/session/:sessionID/theme
func (h *ViewSessionHandler) ToggleThemeHandler(c *gin.Context) {
	sess, err := h.Sessions.ToggleTheme(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to toggle theme", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// RequestRefreshHandler forces a fresh fetch cycle for the visible month.
// POST /api/view/session/:sessionID/refresh
func (h *ViewSessionHandler) RequestRefreshHandler(c *gin.Context) {
	sess, ma, err := h.Sessions.RequestRefresh(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to refresh availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "availability": ma})
}
