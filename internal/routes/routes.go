package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workwise_backend/internal/handlers"
	"workwise_backend/internal/middleware"
)

// RegisterRoutes mounts every HTTP route on the engine.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.UnionHandler.RegisterRoutes(api)

		// Per-user resources. Authentication plus self-or-admin on the
		// whole subtree; handlers read :user_id themselves.
		users := api.Group("/users/:user_id")
		users.Use(middleware.AuthMiddleware())
		users.Use(middleware.RequireSelfOrAdmin())
		{
			appHandlers.ProfileHandler.RegisterRoutes(users)
			appHandlers.CVHandler.RegisterRoutes(users)
			appHandlers.QualificationHandler.RegisterRoutes(users)
			appHandlers.SavedJobHandler.RegisterRoutes(users)
		}
	}
}
