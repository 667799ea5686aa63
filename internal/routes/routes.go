package routes

import (
	"careercode_backend/internal/handlers"
	"careercode_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Маршруты обслуживаются от корня, без префикса версии.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.SystemHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
		appHandlers.ApplicationHandler.RegisterRoutes(root)
	}
	logger.Debug("HTTP routes registered", "count", len(ginRouter.Routes()))
}
