package services

import (
	"testing"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalytics(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(db, 0.08, 0.6)
}

func insertMenu(t *testing.T, db *gorm.DB, date string, mealType models.MealType) models.Menu {
	menu := models.Menu{Date: date, MealType: mealType, Dishes: []models.Dish{{Name: "Dal Tadka"}}}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func insertSelection(t *testing.T, db *gorm.DB, userID, menuID string, status models.MealStatus) {
	require.NoError(t, db.Create(&models.MealSelection{UserID: userID, MenuID: menuID, Status: status}).Error)
}

func insertFeedback(t *testing.T, db *gorm.DB, userID, menuID string, rating int) {
	require.NoError(t, db.Create(&models.Feedback{UserID: userID, MenuID: menuID, Rating: rating}).Error)
}

func TestEstimateWaste(t *testing.T) {
	svc := newAnalytics(setupTestDB(t))

	assert.Equal(t, 0.0, svc.EstimateWaste(0, 0))

	// 10 opt-ins less half a meal for 5 opt-outs: 9.5 * 0.08 * 0.6
	assert.Equal(t, 0.46, svc.EstimateWaste(10, 5))

	// Opt-outs alone can never push the estimate negative
	assert.Equal(t, 0.0, svc.EstimateWaste(0, 100))
	assert.Equal(t, 0.0, svc.EstimateWaste(1, 10))

	assert.Greater(t, svc.EstimateWaste(20, 0), svc.EstimateWaste(10, 0))
}

func TestMenuStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)
	menu := insertMenu(t, db, "2025-01-02", models.MealLunch)

	stats, err := svc.MenuStats(menu.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.OptIns)
	assert.Zero(t, stats.OptOuts)
	assert.Zero(t, stats.FeedbackCount)
	assert.Zero(t, stats.AverageRating, "no feedback means 0, not NaN")
}

func TestMenuStatsTallies(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)
	menu := insertMenu(t, db, "2025-01-02", models.MealLunch)

	insertSelection(t, db, "user-1", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-2", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-3", menu.ID, models.StatusOptOut)
	insertFeedback(t, db, "user-1", menu.ID, 4)
	insertFeedback(t, db, "user-2", menu.ID, 5)
	insertFeedback(t, db, "user-3", menu.ID, 3)

	stats, err := svc.MenuStats(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.OptIns)
	assert.Equal(t, 1, stats.OptOuts)
	assert.Equal(t, 3, stats.FeedbackCount)
	assert.Equal(t, 4.0, stats.AverageRating)
}

func TestDashboardMetrics(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)
	menu := insertMenu(t, db, "2025-01-02", models.MealLunch)

	insertSelection(t, db, "user-1", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-2", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-3", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-4", menu.ID, models.StatusOptOut)
	insertFeedback(t, db, "user-1", menu.ID, 4)
	insertFeedback(t, db, "user-2", menu.ID, 5)
	insertFeedback(t, db, "user-3", menu.ID, 3)

	metrics, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalOptIns)
	assert.Equal(t, 1, metrics.TotalOptOuts)
	assert.Equal(t, 75.0, metrics.OptInRate)
	assert.Equal(t, 4.0, metrics.AverageRating)
	// (3 - 1*0.1) * 0.08 * 0.6 rounded to two decimals
	assert.Equal(t, 0.14, metrics.WasteEstimateKg)
}

func TestDashboardEmptyStore(t *testing.T) {
	svc := newAnalytics(setupTestDB(t))

	metrics, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Zero(t, metrics.OptInRate)
	assert.Zero(t, metrics.AverageRating)
	assert.Zero(t, metrics.WasteEstimateKg)
}

func TestTrendGroupsByDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)

	lunch := insertMenu(t, db, "2025-01-02", models.MealLunch)
	snacks := insertMenu(t, db, "2025-01-02", models.MealSnacks)
	nextDay := insertMenu(t, db, "2025-01-03", models.MealLunch)

	insertSelection(t, db, "user-1", lunch.ID, models.StatusOptIn)
	insertSelection(t, db, "user-2", snacks.ID, models.StatusOptIn)
	insertSelection(t, db, "user-1", nextDay.ID, models.StatusOptOut)
	insertFeedback(t, db, "user-1", lunch.ID, 5)
	insertFeedback(t, db, "user-2", snacks.ID, 4)
	insertFeedback(t, db, "user-3", snacks.ID, 4)

	trend, err := svc.Trend()
	require.NoError(t, err)
	require.Len(t, trend, 2, "menus on the same day share one point")

	assert.Equal(t, "Jan 2", trend[0].Label)
	assert.Equal(t, 2, trend[0].OptIns)
	assert.Zero(t, trend[0].OptOuts)
	// (5 + 4 + 4) / 3, weighted by feedback count rather than per menu
	assert.Equal(t, 4.3, trend[0].AverageRating)

	assert.Equal(t, "Jan 3", trend[1].Label)
	assert.Equal(t, 1, trend[1].OptOuts)
	assert.Zero(t, trend[1].AverageRating)
}

func TestTopMenusRankingAndCap(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)

	best := insertMenu(t, db, "2025-01-02", models.MealBreakfast)
	tiedFirst := insertMenu(t, db, "2025-01-02", models.MealLunch)
	tiedSecond := insertMenu(t, db, "2025-01-02", models.MealSnacks)
	insertFeedback(t, db, "user-1", best.ID, 5)
	insertFeedback(t, db, "user-1", tiedFirst.ID, 4)
	insertFeedback(t, db, "user-1", tiedSecond.ID, 4)

	for _, date := range []string{"2025-01-03", "2025-01-04", "2025-01-05", "2025-01-06"} {
		insertMenu(t, db, date, models.MealLunch)
	}

	top, err := svc.TopMenus()
	require.NoError(t, err)
	require.Len(t, top, 5, "ranking keeps the top five")

	assert.Equal(t, best.ID, top[0].ID)
	assert.Equal(t, tiedFirst.ID, top[1].ID, "ties keep listing order")
	assert.Equal(t, tiedSecond.ID, top[2].ID)
	assert.Equal(t, 1, top[0].TotalFeedback)
}

func TestAggregatedSelections(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)

	capped := insertMenu(t, db, "2025-01-02", models.MealLunch)
	uncapped := insertMenu(t, db, "2025-01-03", models.MealLunch)
	require.NoError(t, db.Create(&models.SeatingCapacity{Date: "2025-01-02", Capacity: 120}).Error)

	insertSelection(t, db, "user-1", capped.ID, models.StatusOptIn)
	insertSelection(t, db, "user-2", capped.ID, models.StatusOptIn)
	insertSelection(t, db, "user-3", capped.ID, models.StatusOptOut)

	aggregated, err := svc.AggregatedSelections()
	require.NoError(t, err)
	require.Len(t, aggregated, 2)

	assert.Equal(t, capped.ID, aggregated[0].Menu.ID)
	assert.Equal(t, 2, aggregated[0].OptInCount)
	assert.Equal(t, 1, aggregated[0].OptOutCount)
	require.NotNil(t, aggregated[0].Capacity)
	assert.Equal(t, 120, *aggregated[0].Capacity)
	assert.Equal(t, 118, aggregated[0].PendingCount)

	assert.Equal(t, uncapped.ID, aggregated[1].Menu.ID)
	assert.Nil(t, aggregated[1].Capacity, "no seating record means null capacity")
	assert.Zero(t, aggregated[1].PendingCount)
}

func TestPendingCountNeverNegative(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalytics(db)

	menu := insertMenu(t, db, "2025-01-02", models.MealLunch)
	require.NoError(t, db.Create(&models.SeatingCapacity{Date: "2025-01-02", Capacity: 1}).Error)
	insertSelection(t, db, "user-1", menu.ID, models.StatusOptIn)
	insertSelection(t, db, "user-2", menu.ID, models.StatusOptIn)

	aggregated, err := svc.AggregatedSelections()
	require.NoError(t, err)
	require.Len(t, aggregated, 1)
	assert.Zero(t, aggregated[0].PendingCount)
}
