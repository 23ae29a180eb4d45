package main

import (
	"github.com/labstack/echo/v4"
	"github.com/migrmrz/social-app-backend/internal/repositories"
	"github.com/migrmrz/social-app-backend/internal/router"
	"github.com/migrmrz/social-app-backend/internal/validators"
	"github.com/migrmrz/social-app-backend/pkg/config"
	"github.com/migrmrz/social-app-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	var userRepo repositories.UserRepository
	var commentRepo repositories.CommentRepository

	if cfg.MongoURI != "" {
		// Initialize database connection
		db, err := config.InitDB(cfg.MongoURI)
		if err != nil {
			logger.Log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.CloseDB() // Ensure database connection is closed when main exits

		mongoDB := db.Mongo.Database(cfg.MongoDatabase)
		userRepo = repositories.NewMongoUserRepository(mongoDB)
		commentRepo = repositories.NewMongoCommentRepository(mongoDB)
	} else {
		// No store configured: fall back to the in-memory repository
		logger.Log.Warn("MONGO_URI not set, using in-memory store; data will not survive restarts.")
		memRepo := repositories.NewMemoryRepository()
		userRepo = memRepo
		commentRepo = memRepo
	}

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, userRepo, commentRepo)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
