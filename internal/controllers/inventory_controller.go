package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// InventoryController handles kitchen stock management. Reads are open to
// any session; mutations are wired behind the admin role gate.
type InventoryController struct {
	inventory services.InventoryService
}

func NewInventoryController(inventory services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// GetInventory godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /inventory [get]
func (ic *InventoryController) GetInventory(c *gin.Context) {
	items, err := ic.inventory.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SaveInventory godoc
// @Summary Create, update or delete an inventory item
// @Description One admin endpoint dispatching on the action flag: "delete"
// @Description removes the item, anything else creates (no id) or updates
// @Description (id present) it
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /inventory [post]
func (ic *InventoryController) SaveInventory(c *gin.Context) {
	var body struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Quantity  *float64 `json:"quantity"`
		Unit      string   `json:"unit"`
		Threshold *float64 `json:"threshold"`
		Notes     string   `json:"notes"`
		Action    string   `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Action == "delete" {
		if body.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Inventory ID required."})
			return
		}
		if err := ic.inventory.Delete(body.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update inventory."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if body.Name == "" || body.Quantity == nil || body.Unit == "" || body.Threshold == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, quantity, unit, and threshold are required."})
		return
	}

	payload := models.InventoryItem{
		Name:      body.Name,
		Quantity:  *body.Quantity,
		Unit:      body.Unit,
		Threshold: *body.Threshold,
		Notes:     body.Notes,
	}

	var (
		item models.InventoryItem
		err  error
	)
	if body.ID != "" {
		item, err = ic.inventory.Update(body.ID, payload)
	} else {
		item, err = ic.inventory.Create(payload)
	}
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update inventory."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}
