package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
)

func SetupHealthRoutes(engine *gin.Engine, healthHandler *handlers.HealthHandler) {
	engine.GET("/health", healthHandler.Health)
}
