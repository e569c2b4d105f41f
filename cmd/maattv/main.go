package main

import (
	"log"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/config"
	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/handlers"
	"github.com/maatcore/backend/internal/imdb"
	"github.com/maatcore/backend/internal/middleware"
	"github.com/maatcore/backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load("maattv", "8002")
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
	if err := database.RunMigrations(db.DB, database.ContentMigrations); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository, provider client and handler
	contentRepo := repository.NewContentRepository(db)
	imdbClient := imdb.NewClient(cfg.IMDB.BaseURL, cfg.IMDB.APIKey, logger)
	importer := imdb.NewImporter(imdbClient, contentRepo, logger)
	contentHandler := handlers.NewContentHandler(contentRepo, importer, cfg.IMDB.APIKey, logger)

	// Rate limiter for the administrative import endpoint
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
		c.JSON(200, gin.H{"status": "healthy", "service": "maattv"})
	})

	// VOD routes
	tv := router.Group("/tv")
	{
		tv.GET("/vod/list", contentHandler.ListContent)
		tv.GET("/vod/item/:id", contentHandler.GetContent)
		tv.POST("/vod", contentHandler.CreateContent)
		tv.PUT("/vod/item/:id", contentHandler.UpdateContent)
		tv.DELETE("/vod/item/:id", contentHandler.DeleteContent)
		tv.POST("/vod/import", middleware.RateLimitMiddleware(adminLimiter), contentHandler.ImportContent)
		tv.GET("/api-key/imdb", contentHandler.GetAPIKey)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Infof("Starting maattv service on %s (env: %s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
