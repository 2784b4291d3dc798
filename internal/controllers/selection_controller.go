package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/middleware"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// SelectionController handles meal attendance votes.
type SelectionController struct {
	selections services.SelectionService
	menus      services.MenuService
	analytics  *services.AnalyticsService
}

func NewSelectionController(selections services.SelectionService, menus services.MenuService, analytics *services.AnalyticsService) *SelectionController {
	return &SelectionController{selections: selections, menus: menus, analytics: analytics}
}

// GetSelections godoc
// @Summary List selections
// @Description Returns the caller's own selections, or the cross-menu
// @Description aggregate view with aggregate=true (admin only)
// @Tags selections
// @Produce json
// @Param aggregate query bool false "Aggregate across menus (admin)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /selections [get]
func (sc *SelectionController) GetSelections(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if c.Query("aggregate") == "true" {
		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		aggregated, err := sc.analytics.AggregatedSelections()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate selections"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"selections": aggregated})
		return
	}

	selections, err := sc.selections.ForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve selections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selections": selections})
}

// UpsertSelection godoc
// @Summary Record a meal selection
// @Description Opt in or out of a meal service; a repeat vote for the same
// @Description menu replaces the previous one
// @Tags selections
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /selections [post]
func (sc *SelectionController) UpsertSelection(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		MenuID string `json:"menuId"`
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.MenuID == "" || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu ID and status are required."})
		return
	}
	if !models.ValidMealStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status."})
		return
	}
	if _, err := sc.menus.GetByID(body.MenuID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found."})
		return
	}

	selection, err := sc.selections.Upsert(user.ID, body.MenuID, models.MealStatus(body.Status), body.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update meal selection."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": selection})
}
