package services

import (
	"math"
	"sort"
	"time"

	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/gorm"
)

// AnalyticsService derives read-only statistics from the store. Nothing is
// cached; every call recomputes from the current collections, so a mutation
// is visible to the very next aggregate read.
type AnalyticsService struct {
	db *gorm.DB

	// Waste policy knobs. 0.08 kg per effective meal and a 0.6 reduction
	// factor reproduce the canteen's historical reporting; they are
	// heuristics, not measurements.
	baselineWastePerMealKg float64
	wasteReductionFactor   float64
}

func NewAnalyticsService(db *gorm.DB, baselineWastePerMealKg, wasteReductionFactor float64) *AnalyticsService {
	return &AnalyticsService{
		db:                     db,
		baselineWastePerMealKg: baselineWastePerMealKg,
		wasteReductionFactor:   wasteReductionFactor,
	}
}

// MenuStats summarizes engagement for a single meal service.
type MenuStats struct {
	OptIns        int     `json:"optIns"`
	OptOuts       int     `json:"optOuts"`
	FeedbackCount int     `json:"feedbackCount"`
	AverageRating float64 `json:"averageRating"`
}

// DashboardMetrics is the admin landing-page summary.
type DashboardMetrics struct {
	TotalOptIns     int     `json:"totalOptIns"`
	TotalOptOuts    int     `json:"totalOptOuts"`
	OptInRate       float64 `json:"optInRate"`
	AverageRating   float64 `json:"averageRating"`
	WasteEstimateKg float64 `json:"wasteEstimateKg"`
}

// TrendPoint is one day's aggregated engagement, labeled like "Jan 2".
type TrendPoint struct {
	Label         string  `json:"label"`
	OptIns        int     `json:"optIns"`
	OptOuts       int     `json:"optOuts"`
	AverageRating float64 `json:"averageRating"`
}

// TopMenu is one entry of the best-rated ranking.
type TopMenu struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	MealType      models.MealType `json:"mealType"`
	AverageRating float64         `json:"averageRating"`
	TotalFeedback int             `json:"totalFeedback"`
	OptIns        int             `json:"optIns"`
}

// AggregatedSelection is the admin per-menu attendance view. Capacity is nil
// when no seating record exists for the menu's date, and PendingCount is 0
// in that case.
type AggregatedSelection struct {
	Menu         models.Menu `json:"menu"`
	OptInCount   int         `json:"optInCount"`
	OptOutCount  int         `json:"optOutCount"`
	PendingCount int         `json:"pendingCount"`
	Capacity     *int        `json:"capacity"`
}

// MenuStats computes opt-in/opt-out/feedback tallies for one menu. Missing
// data degrades to zeroes, never to an error.
func (s *AnalyticsService) MenuStats(menuID string) (MenuStats, error) {
	var selections []models.MealSelection
	if err := s.db.Where("menu_id = ?", menuID).Find(&selections).Error; err != nil {
		return MenuStats{}, err
	}
	var feedback []models.Feedback
	if err := s.db.Where("menu_id = ?", menuID).Find(&feedback).Error; err != nil {
		return MenuStats{}, err
	}

	stats := MenuStats{
		FeedbackCount: len(feedback),
		AverageRating: aggregateRating(feedback),
	}
	for _, selection := range selections {
		if selection.Status == models.StatusOptIn {
			stats.OptIns++
		} else {
			stats.OptOuts++
		}
	}
	return stats, nil
}

// Dashboard computes the cross-menu engagement metrics.
func (s *AnalyticsService) Dashboard() (DashboardMetrics, error) {
	var selections []models.MealSelection
	if err := s.db.Find(&selections).Error; err != nil {
		return DashboardMetrics{}, err
	}
	var feedback []models.Feedback
	if err := s.db.Find(&feedback).Error; err != nil {
		return DashboardMetrics{}, err
	}

	metrics := DashboardMetrics{AverageRating: aggregateRating(feedback)}
	for _, selection := range selections {
		if selection.Status == models.StatusOptIn {
			metrics.TotalOptIns++
		} else {
			metrics.TotalOptOuts++
		}
	}
	if len(selections) > 0 {
		metrics.OptInRate = round1(float64(metrics.TotalOptIns) / float64(len(selections)) * 100)
	}
	metrics.WasteEstimateKg = s.EstimateWaste(metrics.TotalOptIns, metrics.TotalOptOuts)
	return metrics, nil
}

// EstimateWaste applies the waste policy: every opt-out shaves a tenth of a
// meal off the effective count, and each effective meal contributes the
// baseline kg scaled by the reduction factor.
func (s *AnalyticsService) EstimateWaste(optInCount, optOutCount int) float64 {
	effectiveMeals := math.Max(float64(optInCount)-float64(optOutCount)*0.1, 0)
	return round2(effectiveMeals * s.baselineWastePerMealKg * s.wasteReductionFactor)
}

// Trend groups menus by formatted day label, summing opt-ins and opt-outs
// and averaging ratings weighted by feedback count. Labels appear in menu
// order (date ascending).
func (s *AnalyticsService) Trend() ([]TrendPoint, error) {
	menus, selections, feedback, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		optIns, optOuts int
		feedbackCount   int
		scoreTotal      int
	}
	order := []string{}
	buckets := map[string]*bucket{}

	for _, menu := range menus {
		label := trendLabel(menu.Date)
		entry, ok := buckets[label]
		if !ok {
			entry = &bucket{}
			buckets[label] = entry
			order = append(order, label)
		}
		for _, selection := range selections {
			if selection.MenuID != menu.ID {
				continue
			}
			if selection.Status == models.StatusOptIn {
				entry.optIns++
			} else {
				entry.optOuts++
			}
		}
		for _, item := range feedback {
			if item.MenuID != menu.ID {
				continue
			}
			entry.feedbackCount++
			entry.scoreTotal += item.Rating
		}
	}

	trend := make([]TrendPoint, 0, len(order))
	for _, label := range order {
		entry := buckets[label]
		point := TrendPoint{Label: label, OptIns: entry.optIns, OptOuts: entry.optOuts}
		if entry.feedbackCount > 0 {
			point.AverageRating = round1(float64(entry.scoreTotal) / float64(entry.feedbackCount))
		}
		trend = append(trend, point)
	}
	return trend, nil
}

// TopMenus ranks menus by average rating, best first, and keeps the top
// five. The sort is stable so ties keep their listing order.
func (s *AnalyticsService) TopMenus() ([]TopMenu, error) {
	menus, selections, feedback, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	ranked := make([]TopMenu, 0, len(menus))
	for _, menu := range menus {
		entry := TopMenu{ID: menu.ID, Date: menu.Date, MealType: menu.MealType}
		var menuFeedback []models.Feedback
		for _, item := range feedback {
			if item.MenuID == menu.ID {
				menuFeedback = append(menuFeedback, item)
			}
		}
		entry.TotalFeedback = len(menuFeedback)
		entry.AverageRating = aggregateRating(menuFeedback)
		for _, selection := range selections {
			if selection.MenuID == menu.ID && selection.Status == models.StatusOptIn {
				entry.OptIns++
			}
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked, nil
}

// AggregatedSelections builds the admin attendance view across every menu,
// joining in the seating capacity for each menu's date when one exists.
func (s *AnalyticsService) AggregatedSelections() ([]AggregatedSelection, error) {
	menus, selections, _, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	var seating []models.SeatingCapacity
	if err := s.db.Find(&seating).Error; err != nil {
		return nil, err
	}
	capacityByDate := map[string]int{}
	for _, record := range seating {
		capacityByDate[record.Date] = record.Capacity
	}

	aggregated := make([]AggregatedSelection, 0, len(menus))
	for _, menu := range menus {
		entry := AggregatedSelection{Menu: menu}
		for _, selection := range selections {
			if selection.MenuID != menu.ID {
				continue
			}
			if selection.Status == models.StatusOptIn {
				entry.OptInCount++
			} else {
				entry.OptOutCount++
			}
		}
		if capacity, ok := capacityByDate[menu.Date]; ok {
			entry.Capacity = &capacity
			entry.PendingCount = int(math.Max(float64(capacity-entry.OptInCount), 0))
		}
		aggregated = append(aggregated, entry)
	}
	return aggregated, nil
}

// loadAll fetches the three collections every cross-menu aggregate needs,
// menus sorted the same way listings are.
func (s *AnalyticsService) loadAll() ([]models.Menu, []models.MealSelection, []models.Feedback, error) {
	var menus []models.Menu
	if err := s.db.Order("date, meal_type").Find(&menus).Error; err != nil {
		return nil, nil, nil, err
	}
	var selections []models.MealSelection
	if err := s.db.Find(&selections).Error; err != nil {
		return nil, nil, nil, err
	}
	var feedback []models.Feedback
	if err := s.db.Find(&feedback).Error; err != nil {
		return nil, nil, nil, err
	}
	return menus, selections, feedback, nil
}

// aggregateRating averages ratings to one decimal, 0 when there is none.
func aggregateRating(feedback []models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	total := 0
	for _, item := range feedback {
		total += item.Rating
	}
	return round1(float64(total) / float64(len(feedback)))
}

func trendLabel(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2")
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
