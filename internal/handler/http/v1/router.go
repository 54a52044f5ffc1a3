package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	adminAuth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты жизненного цикла наблюдений
	observations := api.Group("/observations")
	{
		observations.POST("", h.createObservation)
		observations.GET("", h.listObservations)
		observations.GET("/stats", adminAuth, h.getStats)
		observations.GET("/:id", h.getObservation)
		observations.POST("/:id/acknowledge", h.acknowledgeObservation)
		observations.POST("/:id/enrich", h.enrichObservation)

		// Действия администратора
		observations.POST("/:id/instruction", adminAuth, h.sendInstruction)
		observations.POST("/:id/resolve", adminAuth, h.resolveObservation)
	}

	// Маршруты карты мероприятия
	waypoints := api.Group("/waypoints")
	{
		waypoints.GET("", h.listWaypoints)
		waypoints.GET("/:id", h.getWaypoint)
		waypoints.GET("/:id/paths", h.getEvacuationPaths)

		waypoints.POST("", adminAuth, h.createWaypoint)
		waypoints.PUT("/:id", adminAuth, h.updateWaypoint)
		waypoints.DELETE("/:id", adminAuth, h.deleteWaypoint)
		waypoints.POST("/:id/connections/:targetId", adminAuth, h.toggleConnection)
		waypoints.PUT("/:id/assignments", adminAuth, h.setAssignments)
	}

	// Конфигурация мероприятия
	api.GET("/config/boundary", h.getBoundary)
	api.PUT("/config/boundary", adminAuth, h.saveBoundary)

	// Журнал аудита
	api.GET("/audit-logs", h.listAuditLogs)

	// Системные маршруты
	api.GET("/system/health", h.healthCheck)
	api.POST("/system/sweep", adminAuth, h.runSweep)
}
