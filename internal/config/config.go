package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration. The default driver is sqlite with an
	// in-memory path, so the store resets on every restart.
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security configuration
	JWTSecret string `json:"jwt_secret"`

	// Waste estimation policy. These are heuristic tuning knobs, not
	// measured quantities; the defaults match the canteen's historical
	// reporting so changing them changes every dashboard figure.
	WasteBaselineKgPerMeal float64 `json:"waste_baseline_kg_per_meal"`
	WasteReductionFactor   float64 `json:"waste_reduction_factor"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], WasteBaselineKgPerMeal: %g, WasteReductionFactor: %g}",
		c.Port, c.Host, c.DBDriver, c.DBPath, c.DBHost, c.DBName, c.DBUser, c.LogLevel, c.WasteBaselineKgPerMeal, c.WasteReductionFactor)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable has an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	baseline, err := strconv.ParseFloat(GetEnvWithDefault("WASTE_BASELINE_KG_PER_MEAL", "0.08"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WASTE_BASELINE_KG_PER_MEAL: %w", err)
	}
	reduction, err := strconv.ParseFloat(GetEnvWithDefault("WASTE_REDUCTION_FACTOR", "0.6"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WASTE_REDUCTION_FACTOR: %w", err)
	}

	config := &Config{
		Port:                   port,
		Host:                   GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:               GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:                 GetEnvWithDefault("DB_PATH", "file::memory:?cache=shared"),
		DBHost:                 GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:                 GetEnvWithDefault("DB_PORT", "5432"),
		DBName:                 GetEnvWithDefault("DB_NAME", "canteen"),
		DBUser:                 GetEnvWithDefault("DB_USER", "canteen"),
		DBPassword:             GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:              GetEnvWithDefault("DB_SSL_MODE", "disable"),
		LogLevel:               GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:              GetEnvWithDefault("AUTH_SECRET", "karmic-canteen-demo-secret"),
		WasteBaselineKgPerMeal: baseline,
		WasteReductionFactor:   reduction,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
