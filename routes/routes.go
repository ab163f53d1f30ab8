package routes

import (
	"github.com/gin-gonic/gin"

	"roomly/handlers"
)

// RegisterRoutes registers all endpoints of the availability service.
func RegisterRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler) {
	r.GET("/healthz", handlers.HealthHandler)
	RegisterAvailabilityRoutes(r, availabilityHandler)
}

// RegisterAvailabilityRoutes registers the availability query endpoints the
// booking widget, host calendar, and detail panel consume.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:placeID/start-times", h.GetStartTimes)
		api.GET("/:placeID/end-times", h.GetEndTimes)
		api.GET("/:placeID/check", h.CheckRange)
		api.GET("/:placeID/day", h.GetDaySummary)
		api.GET("/:placeID/calendar", h.GetCalendar)
	}
}
