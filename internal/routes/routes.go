package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/config"
	"github.com/karmic-solutions/canteen-api/internal/controllers"
	"github.com/karmic-solutions/canteen-api/internal/middleware"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Register wires every service, controller and middleware onto the router.
// All state flows from the injected db handle; nothing here is global.
func Register(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userService := services.NewUserService(db)
	menuService := services.NewMenuService(db)
	selectionService := services.NewSelectionService(db)
	feedbackService := services.NewFeedbackService(db)
	inventoryService := services.NewInventoryService(db)
	notificationService := services.NewNotificationService(db)
	analyticsService := services.NewAnalyticsService(db, cfg.WasteBaselineKgPerMeal, cfg.WasteReductionFactor)

	secureCookie := config.GetEnvWithDefault("APP_ENV", "development") == "production"
	authController := controllers.NewAuthController(userService, cfg.JWTSecret, secureCookie)
	menuController := controllers.NewMenuController(menuService, analyticsService)
	selectionController := controllers.NewSelectionController(selectionService, menuService, analyticsService)
	feedbackController := controllers.NewFeedbackController(feedbackService)
	inventoryController := controllers.NewInventoryController(inventoryService)
	notificationController := controllers.NewNotificationController(notificationService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Authentication endpoints are the only public API surface
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Everything else requires a session (cookie first, bearer fallback)
	protected := router.Group("/")
	protected.Use(middleware.SessionAuth(cfg.JWTSecret, userService))
	{
		protected.GET("/auth/me", authController.Me)

		protected.GET("/menus", menuController.GetMenus)

		protected.GET("/selections", selectionController.GetSelections)
		protected.POST("/selections", selectionController.UpsertSelection)

		protected.GET("/feedback", feedbackController.GetFeedback)
		protected.POST("/feedback", feedbackController.SubmitFeedback)

		protected.GET("/inventory", inventoryController.GetInventory)

		// Notification POST dispatches internally: mark-as-read is open to
		// any session, creation checks the admin role itself
		protected.GET("/notifications", notificationController.GetNotifications)
		protected.POST("/notifications", notificationController.PostNotification)

		// Admin-only routes fail closed with 403 for employee sessions
		admin := protected.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/menus", menuController.CreateMenu)
			admin.PUT("/menus/:id", menuController.UpdateMenu)
			admin.DELETE("/menus/:id", menuController.DeleteMenu)

			admin.POST("/inventory", inventoryController.SaveInventory)

			admin.GET("/analytics", analyticsController.GetAnalytics)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "canteen-api",
	})
}
