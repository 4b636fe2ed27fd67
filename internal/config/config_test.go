package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name     string
		setEnv   bool
		envValue string
		expected time.Duration
	}{
		{
			name:     "valid duration",
			setEnv:   true,
			envValue: "10s",
			expected: 10 * time.Second,
		},
		{
			name:     "invalid duration falls back",
			setEnv:   true,
			envValue: "not-a-duration",
			expected: 5 * time.Second,
		},
		{
			name:     "not set falls back",
			setEnv:   false,
			expected: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv("TEST_DURATION", tt.envValue)
				defer os.Unsetenv("TEST_DURATION")
			}

			result := getDuration("TEST_DURATION", 5*time.Second)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			Name:     "spellingbee",
			User:     "spellingbee",
			Password: "secret",
		},
	}

	expected := "host=localhost port=5432 user=spellingbee password=secret dbname=spellingbee sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}
