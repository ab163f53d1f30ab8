package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	placeRepo "roomly/database/repository/place"
	"roomly/services/availability"
	"roomly/services/booking"
	"roomly/utils"
)

// AvailabilityHandler exposes the availability service over HTTP. Hours on
// the wire use the "HH:00" clock form the pickers display.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc booking.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetStartTimes handles GET /api/availability/:placeID/start-times?date=
func (h *AvailabilityHandler) GetStartTimes(c *gin.Context) {
	placeID := c.Param("placeID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date is required")
		return
	}

	res, err := h.Service.GetStartTimes(c.Request.Context(), placeID, date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetEndTimes handles GET /api/availability/:placeID/end-times?date=&start=
func (h *AvailabilityHandler) GetEndTimes(c *gin.Context) {
	placeID := c.Param("placeID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date is required")
		return
	}
	startHour, err := availability.ParseHour(c.Query("start"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	res, err := h.Service.GetEndTimes(c.Request.Context(), placeID, date, startHour)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckRange handles GET /api/availability/:placeID/check?date=&start=&end=
func (h *AvailabilityHandler) CheckRange(c *gin.Context) {
	placeID := c.Param("placeID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date is required")
		return
	}
	startHour, err := availability.ParseHour(c.Query("start"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	endHour, err := availability.ParseHour(c.Query("end"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	res, err := h.Service.CheckRange(c.Request.Context(), placeID, date, startHour, endHour)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetDaySummary handles GET /api/availability/:placeID/day?date=
func (h *AvailabilityHandler) GetDaySummary(c *gin.Context) {
	placeID := c.Param("placeID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date is required")
		return
	}

	res, err := h.Service.GetDaySummary(c.Request.Context(), placeID, date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetCalendar handles GET /api/availability/:placeID/calendar?from=&to=
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	placeID := c.Param("placeID")
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing range", "query parameters from and to are required")
		return
	}

	days, err := h.Service.GetCalendar(c.Request.Context(), placeID, from, to)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"placeId": placeID, "days": days})
}

func (h *AvailabilityHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, placeRepo.ErrPlaceNotFound) {
		utils.JSONError(c, http.StatusNotFound, "place not found", err.Error())
		return
	}
	if code := availability.ErrorCode(err); code != "" {
		utils.JSONError(c, http.StatusBadRequest, code, err.Error())
		return
	}
	h.Logger.Error("availability query failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to compute availability")
}
