package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the settings that come from the process environment. Command
// line flags override every field.
type Env struct {
	// Store selects the persistence backend (see store.Open).
	Store string
	Debug bool
	// LogDir receives pong.log when Debug is set. Empty means the user
	// cache dir.
	LogDir string
	// Seed fixes the serve RNG. 0 means time-based.
	Seed uint64
	// FreezeTimersOnPause mirrors --freeze-timers-on-pause.
	FreezeTimersOnPause bool
}

// Load reads .env (if present) and the PONG_* variables.
func Load() Env {
	// Load .env file if it exists
	_ = godotenv.Load()

	return Env{
		Store:               getEnv("PONG_STORE", ""),
		Debug:               getEnvBool("PONG_DEBUG", false),
		LogDir:              getEnv("PONG_LOG_DIR", ""),
		Seed:                getEnvUint("PONG_SEED", 0),
		FreezeTimersOnPause: getEnvBool("PONG_FREEZE_TIMERS_ON_PAUSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
