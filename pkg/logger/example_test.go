package logger_test

import (
	"errors"

	"github.com/lunarium/arcana/pkg/config"
	"github.com/lunarium/arcana/pkg/logger"
)

// Example_basic demonstrates basic logger usage
func Example_basic() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := logger.New(cfg)

	// Basic logging
	log.Debug("This won't appear (level is info)")
	log.Info("Application started")
	log.Warn("Catalog cache is stale")
	log.Error("Failed to connect")

	// Formatted logging
	log.Infof("User %s registered", "6f1c9e2a")
	log.Warnf("Retry attempt %d of %d", 3, 5)

}

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	// Add single field
	userLog := log.WithField("user_id", "12345")
	userLog.Info("Profile calculated")

	// Add multiple fields
	readingLog := log.WithFields(map[string]interface{}{
		"user_id":  "12345",
		"card_id":  "major-17",
		"reversed": false,
		"type":     "daily",
	})
	readingLog.Info("Reading generated")

}

// Example_withError demonstrates error logging
func Example_withError() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "error",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	err := errors.New("database connection timeout")
	log.WithError(err).Error("Failed to load card catalog")

	// Combine error with fields
	log.WithError(err).
		WithFields(map[string]interface{}{
			"retry_count": 3,
			"timeout_ms":  5000,
		}).
		Error("Connection failed after retries")

}
