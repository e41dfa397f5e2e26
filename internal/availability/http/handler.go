package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
)

type Handler struct {
	source availability.Source
	logger *zap.Logger
}

func NewHandler(source availability.Source, logger *zap.Logger) *Handler {
	return &Handler{source: source, logger: logger}
}

// DayRequest defines query parameters for a day's slot availability.
type DayRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type DayResponse struct {
	Date  string               `json:"date"`
	Slots availability.Grouped `json:"slots"`
}

func (h *Handler) Day(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	slots, err := h.source.Fetch(c.Request.Context(), date)
	if err != nil {
		// Availability failures degrade to an empty slot list.
		h.logger.Warn("availability fetch failed", zap.String("date", req.Date), zap.Error(err))
		slots = nil
	}

	c.JSON(http.StatusOK, DayResponse{
		Date:  req.Date,
		Slots: availability.Group(slots),
	})
}
