package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/karmic-solutions/canteen-api/internal/auth"
	"github.com/karmic-solutions/canteen-api/internal/config"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mints a long-lived session token for API testing against a file-backed
// store. Run the server with DB_PATH pointing at the same file first so
// the seeded users exist.
func main() {
	role := flag.String("role", "admin", "Session role (admin or employee)")
	dbPath := flag.String("db", "canteen.sqlite", "Path to the sqlite store")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}

	email := "admin@karmic.solutions"
	if *role == "employee" {
		email = "jane@karmic.solutions"
	}

	var user models.User
	if err := db.Where("LOWER(email) = ?", email).First(&user).Error; err != nil {
		log.Fatalf("No seeded user for role %q — start the server against %s first: %v", *role, *dbPath, err)
	}

	secret := config.GetEnvWithDefault("AUTH_SECRET", "karmic-canteen-demo-secret")
	token, err := auth.CreateSessionToken(secret, &user)
	if err != nil {
		log.Fatal("Failed to sign session token:", err)
	}

	fmt.Printf("Session token for %s (%s), valid %s:\n\n%s\n\n", user.Name, user.Role, auth.SessionTTL, token)
	fmt.Println("Use it as a bearer token:")
	fmt.Printf("curl http://localhost:8080/auth/me \\\n")
	fmt.Printf("  -H 'Authorization: Bearer %s'\n", token)
}
