package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"availcal/services/availability"
	"availcal/utils"
)

// AvailabilityHandler serves merged availability for direct (sessionless) reads.
type AvailabilityHandler struct {
	Service availability.Service
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.Service, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetMonthHandler returns merged availability for one month.
// GET /api/availability?resource=<id>&month=YYYY-MM
func (h *AvailabilityHandler) GetMonthHandler(c *gin.Context) {
	resource := c.Query("resource")
	month := c.Query("month")
	if resource == "" || month == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "resource and month query parameters are required")
		return
	}

	ma, err := h.Service.MonthAvailability(c.Request.Context(), resource, month)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", err.Error())
		return
	}
	c.JSON(http.StatusOK, ma)
}

// GetDayHandler returns the merged intervals for one calendar cell.
// GET /api/availability/day?resource=<id>&date=YYYY-MM-DD
func (h *AvailabilityHandler) GetDayHandler(c *gin.Context) {
	resource := c.Query("resource")
	date := c.Query("date")
	if resource == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "resource and date query parameters are required")
		return
	}

	intervals, err := h.Service.DayAvailability(c.Request.Context(), resource, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "intervals": intervals})
}
