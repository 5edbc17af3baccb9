package main

import (
	"context"
	"time"

	v1 "github.com/designsync-api/api/v1"
	"github.com/designsync-api/config"
	"github.com/designsync-api/database"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/lib/storage"
	"github.com/designsync-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		utils.Logger.Fatal("❌ JWT_SECRET is required")
	}

	if err := database.Initialize(cfg.DatabaseURL); err != nil {
		utils.Logger.Fatalf("❌ Failed to initialize database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The API still serves reads without an image backend; uploads will fail until it is configured
	if err := storage.Initialize(ctx, cfg); err != nil {
		utils.Logger.WithError(err).Warn("⚠️ Image storage unavailable")
	} else {
		utils.Logger.Infof("🖼️ Image storage: %s", storage.Store.Name())
	}

	if err := cache.Initialize(ctx, cfg.RedisURL, cfg.CacheTTL); err != nil {
		utils.Logger.WithError(err).Warn("⚠️ Redis unavailable, caching disabled")
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", v1.HealthCheck)
	v1.RegisterRoutes(router.Group("/api"), cfg)

	utils.Logger.Infof("🚀 DesignSync API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatalf("Failed to start server: %v", err)
	}
}

// requestLogger logs one line per request through the application logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.Logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
