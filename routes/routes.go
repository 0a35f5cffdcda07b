package routes

import (
	"net/http"

	"techquiz/handlers"
	"techquiz/middleware"
	"techquiz/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	sessionHandler *handlers.SessionHandler,
	liveHandler *handlers.LiveHandler,
	authService *services.AuthService,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/login", authHandler.Login)

		// Public content reads for the home view
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)

		// Quiz session flow (public)
		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionHandler.StartSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/select", sessionHandler.SelectAnswer)
			sessions.POST("/:id/advance", sessionHandler.AdvanceSession)
			sessions.DELETE("/:id", sessionHandler.EndSession)
		}

		// Admin routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			protected.GET("/auth/session", authHandler.Session)
			protected.POST("/auth/logout", authHandler.Logout)

			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			questions := protected.Group("/questions")
			{
				questions.GET("", questionHandler.ListQuestions)
				questions.GET("/:id", questionHandler.GetQuestion)
				questions.POST("", questionHandler.CreateQuestion)
				questions.PUT("/:id", questionHandler.UpdateQuestion)
				questions.DELETE("/:id", questionHandler.DeleteQuestion)
			}
		}
	}

	// WebSocket endpoint for driving a session interactively
	router.GET("/ws/sessions/:id", liveHandler.ServeSession)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
