// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"auction-engine/utils"
)

// Config holds every runtime setting the server needs
type Config struct {
	// Port the HTTP server listens on
	Port string
	// DBPath is the sqlite database file; empty selects the in-memory store
	DBPath string
	// SchedulerInterval is how often the lifecycle scheduler sweeps
	SchedulerInterval time.Duration
}

// Defaults
const (
	defaultPort              = "8080"
	defaultSchedulerInterval = 60 * time.Second
)

// Load reads the .env file if present, then resolves settings from the
// environment. Missing values fall back to defaults; a malformed interval is
// logged and replaced rather than aborting startup.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		utils.Warn("could not load .env file", map[string]any{"error": err.Error()})
	}
	utils.ApplyLogLevel()

	cfg := Config{
		Port:              defaultPort,
		DBPath:            os.Getenv("DB_PATH"),
		SchedulerInterval: defaultSchedulerInterval,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if raw := os.Getenv("SCHEDULER_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			utils.Warn("invalid SCHEDULER_INTERVAL_SECONDS, using default", map[string]any{
				"value": raw,
			})
		} else {
			cfg.SchedulerInterval = time.Duration(seconds) * time.Second
		}
	}
	return cfg
}
