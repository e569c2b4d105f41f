package main

import (
	"log"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/config"
	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/handlers"
	"github.com/maatcore/backend/internal/middleware"
	"github.com/maatcore/backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load("maattube", "8003")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	// Connect to database
	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db.DB, database.VideoMigrations); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository and handler
	videoRepo := repository.NewVideoRepository(db)
	videoHandler := handlers.NewVideoHandler(videoRepo, logger)

	// Rate limiter for the administrative seed endpoint
	adminLimiter := middleware.NewRateLimiter(cfg.API.AdminRateLimitPerSec)
	adminLimiter.Cleanup()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	if cfg.Server.Env != "production" {
		pprof.Register(router)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "maattube"})
	})

	// Video routes
	router.GET("/videos", videoHandler.GetVideos)
	router.GET("/videos/search/:query", videoHandler.SearchVideos)
	router.GET("/videos/:id", videoHandler.GetVideo)
	router.POST("/videos", videoHandler.CreateVideo)
	router.DELETE("/videos/:id", videoHandler.DeleteVideo)
	router.POST("/videos/seed", middleware.RateLimitMiddleware(adminLimiter), videoHandler.SeedVideos)

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Infof("Starting maattube service on %s (env: %s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
