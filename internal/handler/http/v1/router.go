package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Инциденты
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.POST("/:id/close", h.closeIncident)
		incidents.POST("/:id/focus", h.focusIncident)
	}

	// Подразделения
	forces := api.Group("/forces")
	{
		forces.GET("", h.listForces)
		forces.POST("/deploy", h.deployForce)
		forces.POST("/:id/return", h.returnForce)
		forces.POST("/:id/focus", h.focusForce)
	}

	// Округа и ротация
	divisions := api.Group("/divisions")
	{
		divisions.GET("", h.listDivisions)
		divisions.GET("/rotation", h.rotationSummary)
		divisions.GET("/:id", h.getDivision)
		divisions.POST("/:id/rotate", h.rotateDivision)
		divisions.PUT("/:id/fatigue", h.setFatigue)
	}

	// Фокус карты
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("", h.getMapFocus)
		mapGroup.PUT("/center", h.setMapCenter)
		mapGroup.PUT("/type", h.setMapType)
		mapGroup.POST("/overlays/:id/toggle", h.toggleOverlay)
	}

	// Безопасные зоны
	safeZones := api.Group("/safezones")
	{
		safeZones.GET("", h.listSafeZones)
		safeZones.GET("/routes", h.listEvacuationRoutes)
		safeZones.POST("/:id/focus", h.focusSafeZone)
	}

	// Лента обнаруженных событий
	events := api.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("/:id/incident", h.promoteEvent)
	}

	api.GET("/notifications", h.listNotifications)
	api.GET("/stream", h.streamEvents)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
