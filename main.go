package main

import (
	"log"

	"techquiz/config"
	"techquiz/handlers"
	"techquiz/middleware"
	"techquiz/routes"
	"techquiz/services"
	"techquiz/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Open local durable storage
	store, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()

	// Initialize services
	contentService, err := services.NewContentService(store)
	if err != nil {
		log.Fatal("Failed to initialize content store:", err)
	}
	sessionService := services.NewSessionService(contentService)

	var tokens services.TokenStore = services.NewMemoryTokenStore()
	if cfg.RedisEnabled() {
		tokens = services.NewRedisTokenStore(config.InitRedis(cfg))
	}
	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, tokens, cfg.SessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(contentService)
	questionHandler := handlers.NewQuestionHandler(contentService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	liveHandler := handlers.NewLiveHandler(sessionService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, categoryHandler, questionHandler, sessionHandler, liveHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
