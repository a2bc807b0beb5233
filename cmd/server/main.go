// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobapp-back/internal/config"
	"jobapp-back/internal/database"
	"jobapp-back/internal/handlers"
	"jobapp-back/internal/middleware"
	"jobapp-back/internal/pdf"
	"jobapp-back/internal/repository"
	"jobapp-back/internal/service"
	"jobapp-back/internal/storage"
	"jobapp-back/internal/validation"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.InitDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate models
	if err := database.MigrateDB(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize file storage
	var store storage.Store
	switch cfg.StorageBackend {
	case "minio":
		store, err = storage.NewMinIO(context.Background(), storage.MinIOConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
		})
	default:
		store, err = storage.NewLocal(cfg.StorageRoot)
	}
	if err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	// Wire the application service once; everything downstream shares it.
	users := repository.NewGormUsers(db)
	subs := repository.NewGormSubmissions(db)
	renderer := pdf.NewRenderer()
	app := service.NewApplication(users, subs, store, renderer, logger, cfg.BaseURL, validation.FileRules{
		MaxSize:      cfg.MaxUploadSize,
		AllowedMimes: cfg.AllowedMimeTypes,
	})

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/healthz", handlers.Health(db))

	api := r.Group("/api")
	{
		api.POST("/submissions", handlers.CreateSubmission(app))
		api.GET("/submissions", handlers.ListSubmissions(app))
		api.GET("/submissions/:id", handlers.GetSubmission(app))
		api.DELETE("/submissions/:id", handlers.DeleteSubmission(app))
		api.POST("/submissions/:id/reprocess", handlers.ReprocessSubmission(app))
		api.GET("/submissions/:id/download", handlers.DownloadSubmission(app))
		api.GET("/users/:id/submissions", handlers.ListUserSubmissions(app))
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
