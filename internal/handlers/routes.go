package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/projectdeck/project-management-api/internal/middleware"
	"github.com/projectdeck/project-management-api/internal/token"
)

// Register wires all routes onto the engine. The refresh endpoint is the
// only one verified against the refresh secret; everything else behind
// auth uses the access secret.
func Register(
	r *gin.Engine,
	tokens *token.Service,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	projectHandler *ProjectHandler,
	taskHandler *TaskHandler,
) {
	auth := r.Group("/auth")
	{
		auth.POST("/local/register", authHandler.Register)
		auth.POST("/local/login", authHandler.Login)
		auth.POST("/logout", middleware.RequireAuth(tokens), authHandler.Logout)
		auth.POST("/refresh", middleware.RequireRefreshAuth(tokens), authHandler.Refresh)
	}

	users := r.Group("/users")
	users.Use(middleware.RequireAuth(tokens))
	{
		users.GET("/me", userHandler.GetMe)
	}

	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:projectId", projectHandler.Get)
		projects.GET("/:projectId/members", projectHandler.GetMembers)
		projects.PATCH("/:projectId", projectHandler.Update)
		projects.DELETE("/:projectId", projectHandler.Delete)

		tasks := projects.Group("/:projectId/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/:taskId", taskHandler.Get)
			tasks.PATCH("/:taskId", taskHandler.Update)
			tasks.DELETE("/:taskId", taskHandler.Delete)
		}
	}
}
