package database

import (
	"testing"
	"time"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeededDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))
	return db
}

func TestSeedPopulatesDemoData(t *testing.T) {
	db := setupSeededDB(t)

	var userCount, menuCount, inventoryCount, notificationCount, seatingCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Menu{}).Count(&menuCount).Error)
	require.NoError(t, db.Model(&models.InventoryItem{}).Count(&inventoryCount).Error)
	require.NoError(t, db.Model(&models.Notification{}).Count(&notificationCount).Error)
	require.NoError(t, db.Model(&models.SeatingCapacity{}).Count(&seatingCount).Error)

	assert.EqualValues(t, 2, userCount)
	assert.EqualValues(t, 15, menuCount, "three meal services across five days")
	assert.EqualValues(t, 3, inventoryCount)
	assert.EqualValues(t, 2, notificationCount)
	assert.EqualValues(t, 2, seatingCount)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeededDB(t)

	require.NoError(t, Seed(db))

	var userCount, menuCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Menu{}).Count(&menuCount).Error)
	assert.EqualValues(t, 2, userCount)
	assert.EqualValues(t, 15, menuCount)
}

func TestSeedCredentialsVerify(t *testing.T) {
	db := setupSeededDB(t)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@karmic.solutions").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	var employee models.User
	require.NoError(t, db.Where("email = ?", "jane@karmic.solutions").First(&employee).Error)
	assert.Equal(t, models.RoleEmployee, employee.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("employee123")))
}

func TestSeedMenusStartToday(t *testing.T) {
	db := setupSeededDB(t)

	today := time.Now().Format("2006-01-02")
	var todayCount int64
	require.NoError(t, db.Model(&models.Menu{}).Where("date = ?", today).Count(&todayCount).Error)
	assert.EqualValues(t, 3, todayCount, "breakfast, lunch and snacks for today")

	var dishless int64
	require.NoError(t, db.Model(&models.Menu{}).Where("dishes IS NULL OR dishes = ''").Count(&dishless).Error)
	assert.Zero(t, dishless, "every seeded menu carries dishes")
}
