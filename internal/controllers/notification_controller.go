package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/middleware"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// NotificationController handles announcements and read markers.
type NotificationController struct {
	notifications services.NotificationService
}

func NewNotificationController(notifications services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param scope query string false "Audience scope (employee, admin, all)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	scope := c.Query("scope")
	if !models.ValidNotificationScope(scope) {
		// Unknown scopes fall back to an unfiltered listing
		scope = ""
	}

	notifications, err := nc.notifications.List(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// PostNotification godoc
// @Summary Mark a notification read, or create one
// @Description action "read" records the caller as a reader (any session);
// @Description otherwise a new announcement is created, which is admin-only
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /notifications [post]
func (nc *NotificationController) PostNotification(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Action         string `json:"action"`
		NotificationID string `json:"notificationId"`
		Title          string `json:"title"`
		Message        string `json:"message"`
		Type           string `json:"type"`
		Scope          string `json:"scope"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Action == "read" {
		if body.NotificationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notificationId required."})
			return
		}
		if err := nc.notifications.MarkRead(body.NotificationID, user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update notification."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	if body.Title == "" || body.Message == "" || body.Type == "" || body.Scope == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, message, type, and scope are required."})
		return
	}
	if !models.ValidNotificationType(body.Type) || !models.ValidNotificationScope(body.Scope) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification type or scope."})
		return
	}

	notification, err := nc.notifications.Create(models.Notification{
		Title:   body.Title,
		Message: body.Message,
		Type:    models.NotificationType(body.Type),
		Scope:   models.NotificationScope(body.Scope),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create notification."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
