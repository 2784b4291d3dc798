package services

import (
	"testing"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserFindByEmailCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Name:  "Priya Sharma",
		Email: "jane@karmic.solutions",
		Role:  models.RoleEmployee,
	}).Error)

	svc := NewUserService(db)

	user, err := svc.FindByEmail("  Jane@Karmic.Solutions ")
	require.NoError(t, err)
	assert.Equal(t, "jane@karmic.solutions", user.Email)
	assert.Equal(t, models.RoleEmployee, user.Role)
}

func TestUserFindByEmailUnknown(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.FindByEmail("nobody@karmic.solutions")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserGetByID(t *testing.T) {
	db := setupTestDB(t)
	seeded := models.User{Name: "Rahul Mehta", Email: "admin@karmic.solutions", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&seeded).Error)

	svc := NewUserService(db)

	user, err := svc.GetByID(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Mehta", user.Name)

	_, err = svc.GetByID("no-such-user")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
