package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/middleware"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// FeedbackController handles meal ratings.
type FeedbackController struct {
	feedback services.FeedbackService
}

func NewFeedbackController(feedback services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

// GetFeedback godoc
// @Summary List feedback for a menu
// @Tags feedback
// @Produce json
// @Param menuId query string true "Menu ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /feedback [get]
func (fc *FeedbackController) GetFeedback(c *gin.Context) {
	menuID := c.Query("menuId")
	if menuID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menuId query param required."})
		return
	}

	feedback, err := fc.feedback.ForMenu(menuID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

// SubmitFeedback godoc
// @Summary Rate a meal
// @Description Submit a 1-5 rating with optional comments; a repeat rating
// @Description for the same menu replaces the previous one
// @Tags feedback
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /feedback [post]
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		MenuID   string `json:"menuId"`
		Rating   *int   `json:"rating"`
		Comments string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.MenuID == "" || body.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menuId and rating are required."})
		return
	}
	// Validate before the store is touched; the store trusts its callers
	if *body.Rating < 1 || *body.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be 1-5."})
		return
	}

	feedback, err := fc.feedback.Upsert(user.ID, body.MenuID, *body.Rating, body.Comments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to submit feedback."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
