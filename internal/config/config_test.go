package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	// Helper function to set multiple env vars
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("AUTH_SECRET", "super_secret_jwt_key")
		os.Setenv("WASTE_BASELINE_KG_PER_MEAL", "0.1")
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "LOG_LEVEL", "AUTH_SECRET",
			"WASTE_BASELINE_KG_PER_MEAL", "WASTE_REDUCTION_FACTOR",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		// Should not return error
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		// Verify all values
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.JWTSecret != "super_secret_jwt_key" {
			t.Errorf("JWTSecret = %s, expected super_secret_jwt_key", config.JWTSecret)
		}
		if config.WasteBaselineKgPerMeal != 0.1 {
			t.Errorf("WasteBaselineKgPerMeal = %g, expected 0.1", config.WasteBaselineKgPerMeal)
		}
	})

	t.Run("defaults applied when env not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.DBPath != "file::memory:?cache=shared" {
			t.Errorf("DBPath = %s, expected in-memory default", config.DBPath)
		}
		if config.WasteBaselineKgPerMeal != 0.08 {
			t.Errorf("WasteBaselineKgPerMeal = %g, expected default 0.08", config.WasteBaselineKgPerMeal)
		}
		if config.WasteReductionFactor != 0.6 {
			t.Errorf("WasteReductionFactor = %g, expected default 0.6", config.WasteReductionFactor)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("LoadConfig() should return nil config on error")
		}
	})

	t.Run("should fail with invalid waste baseline", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("WASTE_BASELINE_KG_PER_MEAL", "lots")
		defer cleanupTestEnv()

		_, err := LoadConfig()
		if err == nil {
			t.Error("LoadConfig() should return error when WASTE_BASELINE_KG_PER_MEAL is invalid")
		}
	})
}
