package v1

import (
	"github.com/designsync-api/config"
	"github.com/designsync-api/middleware"
	"github.com/designsync-api/models"
	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("platform", validatePlatform); err != nil {
			utils.Logger.WithError(err).Error("Failed to register platform validator")
		}
	}
}

func validatePlatform(fl validator.FieldLevel) bool {
	return models.Platform(fl.Field().String()).Valid()
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, cfg config.Config) {
	designService.MaxImageBytes = cfg.MaxUploadBytes()

	// Health check endpoint
	router.GET("/health", HealthCheck)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", SignUp)
		authGroup.POST("/signin", SignIn)
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.GET("/mine", middleware.AuthMiddleware(), ListMyProjects)
		projectGroup.GET("/:id", GetProject)
		projectGroup.GET("/:id/designs", ListDesigns)
		projectGroup.GET("/:id/questions", ListQuestions)
		projectGroup.GET("/:id/feedbacks", ListFeedbacks)
		projectGroup.GET("/:id/ratings", GetRatings)
	}

	ownerGroup := router.Group("/projects")
	ownerGroup.Use(middleware.AuthMiddleware())
	{
		ownerGroup.POST("", CreateProject)
		ownerGroup.PUT("/:id", UpdateProject)
		ownerGroup.PATCH("/:id/status", UpdateProjectStatus)
		ownerGroup.DELETE("/:id", DeleteProject)
		ownerGroup.POST("/:id/designs",
			middleware.LimitUploadSize(services.MaxDesignImages, cfg.MaxUploadBytes()),
			CreateDesign,
		)
	}

	router.POST("/feedbacks", middleware.AuthMiddleware(), CreateFeedback)

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/stats", GetPlatformStats)
	}

	testGroup := router.Group("/test")
	{
		testGroup.GET("/database", TestDatabase)
		testGroup.GET("/storage", TestStorage)
		testGroup.GET("/env", TestEnv)
		testGroup.GET("/all", TestAll)
	}
}
