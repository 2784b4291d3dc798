package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// MenuController handles HTTP requests related to meal services
type MenuController interface {
	// GetMenus lists menus with engagement stats
	GetMenus(c *gin.Context)
	// CreateMenu publishes a new meal service
	CreateMenu(c *gin.Context)
	// UpdateMenu revises an existing meal service
	UpdateMenu(c *gin.Context)
	// DeleteMenu removes a meal service and everything keyed to it
	DeleteMenu(c *gin.Context)
}

type menuController struct {
	menus     services.MenuService
	analytics *services.AnalyticsService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(menus services.MenuService, analytics *services.AnalyticsService) *menuController {
	return &menuController{menus: menus, analytics: analytics}
}

type menuWithStats struct {
	models.Menu
	Stats services.MenuStats `json:"stats"`
}

// GetMenus godoc
// @Summary List menus
// @Description List menus from today onward (or all with includePast),
// @Description each enriched with opt-in/opt-out/feedback stats
// @Tags menus
// @Produce json
// @Param includePast query bool false "Include past menus"
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Param mealType query string false "Filter by meal type"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /menus [get]
func (mc *menuController) GetMenus(c *gin.Context) {
	opts := services.MenuListOptions{
		IncludePast: c.Query("includePast") == "true",
		Date:        c.Query("date"),
	}
	if mealType := c.Query("mealType"); models.ValidMealType(mealType) {
		opts.MealType = mealType
	}

	menus, err := mc.menus.List(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menus"})
		return
	}

	enriched := make([]menuWithStats, 0, len(menus))
	for _, menu := range menus {
		stats, err := mc.analytics.MenuStats(menu.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menus"})
			return
		}
		enriched = append(enriched, menuWithStats{Menu: menu, Stats: stats})
	}

	c.JSON(http.StatusOK, gin.H{"menus": enriched})
}

type menuPayload struct {
	Date            string                  `json:"date"`
	MealType        string                  `json:"mealType"`
	Dishes          []models.Dish           `json:"dishes"`
	NutritionalInfo *models.NutritionalInfo `json:"nutritionalInfo"`
	SpecialNotes    *string                 `json:"specialNotes"`
}

// normalizeMenuDate reduces an ISO timestamp or plain day to YYYY-MM-DD.
func normalizeMenuDate(value string) (string, bool) {
	if len(value) > 10 {
		value = value[:10]
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", false
	}
	return value, true
}

// CreateMenu godoc
// @Summary Create a menu
// @Description Publish a meal service for a (date, mealType) pair
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body menuPayload true "Menu payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /menus [post]
func (mc *menuController) CreateMenu(c *gin.Context) {
	var body menuPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	date, ok := normalizeMenuDate(body.Date)
	if body.Date == "" || !ok || !models.ValidMealType(body.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu payload."})
		return
	}
	if len(body.Dishes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one dish is required."})
		return
	}
	if body.NutritionalInfo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nutritional information is required."})
		return
	}

	menu := models.Menu{
		Date:            date,
		MealType:        models.MealType(body.MealType),
		Dishes:          body.Dishes,
		NutritionalInfo: *body.NutritionalInfo,
	}
	if body.SpecialNotes != nil {
		menu.SpecialNotes = *body.SpecialNotes
	}

	created, err := mc.menus.Create(menu)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": created})
}

// UpdateMenu godoc
// @Summary Update a menu
// @Description Revise an existing meal service; omitted fields keep their
// @Description current values
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Param menu body menuPayload true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /menus/{id} [put]
func (mc *menuController) UpdateMenu(c *gin.Context) {
	id := c.Param("id")
	existing, err := mc.menus.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found."})
		return
	}

	var body menuPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if body.MealType != "" && !models.ValidMealType(body.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal type."})
		return
	}

	payload := *existing
	if body.Date != "" {
		date, ok := normalizeMenuDate(body.Date)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu payload."})
			return
		}
		payload.Date = date
	}
	if body.MealType != "" {
		payload.MealType = models.MealType(body.MealType)
	}
	if len(body.Dishes) > 0 {
		payload.Dishes = body.Dishes
	}
	if body.NutritionalInfo != nil {
		payload.NutritionalInfo = *body.NutritionalInfo
	}
	if body.SpecialNotes != nil {
		payload.SpecialNotes = *body.SpecialNotes
	}

	updated, err := mc.menus.Update(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update menu."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": updated})
}

// DeleteMenu godoc
// @Summary Delete a menu
// @Description Remove a meal service; its selections and feedback go with it
// @Tags menus
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /menus/{id} [delete]
func (mc *menuController) DeleteMenu(c *gin.Context) {
	id := c.Param("id")
	if _, err := mc.menus.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found."})
		return
	}

	if err := mc.menus.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to delete menu."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
