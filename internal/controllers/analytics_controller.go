package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// AnalyticsController serves the admin dashboard aggregates.
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GetAnalytics godoc
// @Summary Engagement analytics
// @Description Dashboard metrics, per-day trend series and the top-rated
// @Description menus, recomputed from the store on every call
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	metrics, err := ac.analytics.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	trend, err := ac.analytics.Trend()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	topMenus, err := ac.analytics.TopMenus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics":  metrics,
		"trend":    trend,
		"topMenus": topMenus,
	})
}
