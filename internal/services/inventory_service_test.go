package services

import (
	"testing"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryCreateAndList(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	item, err := svc.Create(models.InventoryItem{
		Name:      "Organic Vegetables",
		Quantity:  85,
		Unit:      "kg",
		Threshold: 40,
		Notes:     "Sufficient for two days",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Organic Vegetables", items[0].Name)
}

func TestInventoryUpdate(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	item, err := svc.Create(models.InventoryItem{Name: "Dairy Supplies", Quantity: 30, Unit: "liters", Threshold: 15})
	require.NoError(t, err)

	updated, err := svc.Update(item.ID, models.InventoryItem{Name: "Dairy Supplies", Quantity: 12, Unit: "liters", Threshold: 15, Notes: "Reorder"})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, 12.0, updated.Quantity)
	assert.Equal(t, "Reorder", updated.Notes)
}

func TestInventoryUpdateMissing(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	_, err := svc.Update("no-such-item", models.InventoryItem{Name: "Ghost", Unit: "kg"})
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestInventoryDeleteAbsentIsNoOp(t *testing.T) {
	svc := NewInventoryService(setupTestDB(t))

	item, err := svc.Create(models.InventoryItem{Name: "Millets Assorted", Quantity: 45, Unit: "kg", Threshold: 25})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))
	assert.NoError(t, svc.Delete(item.ID), "deleting an absent item is not an error")

	items, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}
