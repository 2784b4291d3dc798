package database

import (
	"time"

	"github.com/karmic-solutions/canteen-api/internal/config"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultSeatingCapacity is the per-day cap applied when seeding.
const DefaultSeatingCapacity = 120

// Seed populates an empty store with the demo canteen data set: two users,
// a five-day menu plan, starter inventory, announcements and seating caps.
// It is a no-op when users already exist, so restarts of a durable backend
// keep their data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")

	employeeHash, err := bcrypt.GenerateFromPassword(
		[]byte(config.GetEnvWithDefault("SEED_EMPLOYEE_PASSWORD", "employee123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminHash, err := bcrypt.GenerateFromPassword(
		[]byte(config.GetEnvWithDefault("SEED_ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Name:         "Priya Sharma",
			Email:        "jane@karmic.solutions",
			Role:         models.RoleEmployee,
			PasswordHash: string(employeeHash),
			Department:   "Engineering",
		},
		{
			Name:         "Rahul Mehta",
			Email:        "admin@karmic.solutions",
			Role:         models.RoleAdmin,
			PasswordHash: string(adminHash),
			Department:   "Operations",
		},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	today := time.Now()
	for _, menu := range seedMenus(today) {
		menu := menu
		if err := db.Create(&menu).Error; err != nil {
			return err
		}
	}

	inventory := []models.InventoryItem{
		{Name: "Organic Vegetables", Quantity: 85, Unit: "kg", Threshold: 40, Notes: "Sufficient for two days"},
		{Name: "Millets Assorted", Quantity: 45, Unit: "kg", Threshold: 25, Notes: "Reorder within this week"},
		{Name: "Dairy Supplies", Quantity: 30, Unit: "liters", Threshold: 15, Notes: "Low-fat options stocked"},
	}
	for i := range inventory {
		if err := db.Create(&inventory[i]).Error; err != nil {
			return err
		}
	}

	notifications := []models.Notification{
		{
			Title:   "Update Your Lunch Preference",
			Message: "Please confirm your lunch preference by 9 PM today to avoid food wastage.",
			Type:    models.NotificationWarning,
			Scope:   models.ScopeAll,
		},
		{
			Title:   "Weekend Special Menu",
			Message: "Chef's special millet and greens menu planned for Saturday!",
			Type:    models.NotificationInfo,
			Scope:   models.ScopeEmployee,
		},
	}
	for i := range notifications {
		if err := db.Create(&notifications[i]).Error; err != nil {
			return err
		}
	}

	seating := []models.SeatingCapacity{
		{Date: dayString(today), Capacity: DefaultSeatingCapacity},
		{Date: dayString(today.AddDate(0, 0, 1)), Capacity: DefaultSeatingCapacity},
	}
	for i := range seating {
		if err := db.Create(&seating[i]).Error; err != nil {
			return err
		}
	}

	log.Info("Database seeded successfully")
	return nil
}

func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// seedMenus builds the five-day rotating menu plan starting today.
func seedMenus(today time.Time) []models.Menu {
	menus := []models.Menu{
		{
			Date:     dayString(today),
			MealType: models.MealBreakfast,
			Dishes: []models.Dish{
				{
					Name:        "Masala Oats Bowl",
					Description: "High fiber oats with seasonal vegetables",
					Ingredients: []string{"Oats", "Carrot", "Beans", "Peas", "Spices"},
					Allergens:   []string{"Gluten"},
				},
				{
					Name:        "Fresh Fruit Platter",
					Ingredients: []string{"Papaya", "Banana", "Apple", "Seasonal fruits"},
					Allergens:   []string{},
				},
			},
			NutritionalInfo: models.NutritionalInfo{Calories: 320, Protein: 14, Carbs: 45, Fats: 9},
			SpecialNotes:    "Includes sugar-free options",
		},
		{
			Date:     dayString(today),
			MealType: models.MealLunch,
			Dishes: []models.Dish{
				{
					Name:        "Millet Veg Biryani",
					Description: "Foxtail millet cooked with mixed vegetables",
					Ingredients: []string{"Millet", "Carrot", "Beans", "Spices"},
					Allergens:   []string{},
				},
				{
					Name:        "Dal Tadka",
					Ingredients: []string{"Lentils", "Ghee", "Spices"},
					Allergens:   []string{"Dairy"},
				},
			},
			NutritionalInfo: models.NutritionalInfo{Calories: 540, Protein: 22, Carbs: 68, Fats: 16},
			SpecialNotes:    "Served with raita and roasted papad",
		},
		{
			Date:     dayString(today),
			MealType: models.MealSnacks,
			Dishes: []models.Dish{
				{
					Name:        "Sprout Chaat",
					Ingredients: []string{"Green gram", "Onions", "Tomato", "Spices"},
					Allergens:   []string{},
				},
				{
					Name:        "Masala Chai",
					Ingredients: []string{"Tea leaves", "Milk", "Spices"},
					Allergens:   []string{"Dairy"},
				},
			},
			NutritionalInfo: models.NutritionalInfo{Calories: 280, Protein: 12, Carbs: 34, Fats: 8},
			SpecialNotes:    "Low sugar option available",
		},
	}

	for i := 1; i <= 4; i++ {
		day := dayString(today.AddDate(0, 0, i))
		menus = append(menus,
			models.Menu{
				Date:     day,
				MealType: models.MealBreakfast,
				Dishes: []models.Dish{
					{
						Name:        "Rava Idli with Chutney",
						Description: "Steamed semolina cakes with coconut chutney",
						Ingredients: []string{"Semolina", "Coconut", "Curd"},
						Allergens:   []string{"Gluten", "Dairy"},
					},
					{
						Name:        "Seasonal Fruit Juice",
						Ingredients: []string{"Watermelon", "Mint", "Lime"},
						Allergens:   []string{},
					},
				},
				NutritionalInfo: models.NutritionalInfo{Calories: 350, Protein: 11, Carbs: 58, Fats: 8},
				SpecialNotes:    "Includes gluten-free millet option",
			},
			models.Menu{
				Date:     day,
				MealType: models.MealLunch,
				Dishes: []models.Dish{
					{
						Name:        "Paneer Tikka Bowl",
						Description: "Grilled paneer with quinoa and greens",
						Ingredients: []string{"Paneer", "Quinoa", "Bell peppers", "Spices"},
						Allergens:   []string{"Dairy"},
					},
					{
						Name:        "Lemon Coriander Soup",
						Ingredients: []string{"Vegetable stock", "Lemon", "Coriander"},
						Allergens:   []string{},
					},
				},
				NutritionalInfo: models.NutritionalInfo{Calories: 560, Protein: 26, Carbs: 62, Fats: 18},
				SpecialNotes:    "Vegan tofu alternative available",
			},
			models.Menu{
				Date:     day,
				MealType: models.MealSnacks,
				Dishes: []models.Dish{
					{
						Name:        "Baked Samosa",
						Ingredients: []string{"Whole wheat flour", "Potato", "Peas"},
						Allergens:   []string{"Gluten"},
					},
					{
						Name:        "Herbal Infusion",
						Ingredients: []string{"Lemongrass", "Tulsi", "Ginger"},
						Allergens:   []string{},
					},
				},
				NutritionalInfo: models.NutritionalInfo{Calories: 260, Protein: 9, Carbs: 35, Fats: 8},
				SpecialNotes:    "Air-fried for lower oil content",
			},
		)
	}

	return menus
}
