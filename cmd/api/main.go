package main

import (
	"fmt"
	"log"

	"github.com/mazyaa/API-ML-RFC/config"
	"github.com/mazyaa/API-ML-RFC/handlers"
	"github.com/mazyaa/API-ML-RFC/middleware"
	"github.com/mazyaa/API-ML-RFC/models"
	"github.com/mazyaa/API-ML-RFC/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Load .env if present, then config
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.Database.Path, err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	// Load model artifact; the service cannot run without it
	clf, err := services.LoadClassifier(cfg.Model.Path)
	if err != nil {
		log.Fatalf("Failed to load model %s: %v", cfg.Model.Path, err)
	}
	log.Printf("model loaded: version=%s features=%d classes=%v",
		clf.Version(), clf.NumFeatures(), clf.Classes())

	// Redis is optional; without it caching and the live feed are disabled
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
	}
	defer cache.Close()

	store := services.NewPredictionStore(db)
	authService := services.NewAuthService(cfg.JWT)

	predictionHandler := handlers.NewPredictionHandler(store, clf, cache)
	importHandler := handlers.NewImportHandler(store, cache)
	adminHandler := handlers.NewAdminHandler(store, cache)
	authHandler := handlers.NewAuthHandler(db, authService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Stock Prediction API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/predict", predictionHandler.Predict)
	router.GET("/get-all-predictions", predictionHandler.GetAllPredictions)
	router.GET("/ws/predictions", handlers.LiveWebSocket(cache, authService, cfg.Auth.Required))

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	// Destructive endpoints; guarded only when AUTH_REQUIRED is set
	admin := router.Group("/")
	if cfg.Auth.Required {
		admin.Use(middleware.RequireAuth(authService))
	}
	admin.POST("/import-csv", importHandler.ImportCSV)
	admin.POST("/create-table", adminHandler.CreateTable)
	admin.DELETE("/delete-all-data", adminHandler.DeleteAllData)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
