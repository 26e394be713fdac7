package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth    int    // Default maze width in cells
	MazeHeight   int    // Default maze height in cells
	CellSize     int    // Default horizontal scale of the text output
	Seed         int64  // Default random seed; 0 picks one from the clock
	LogLevel     string // Log level (e.g., debug, info, warning, error)
	LogTimestamp bool   // Whether log lines carry a timestamp
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:    getEnvAsIntWithDefault("MAZE_WIDTH", 10),
		MazeHeight:   getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		CellSize:     getEnvAsIntWithDefault("MAZE_CELL_SIZE", 1),
		Seed:         int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		LogTimestamp: getEnvWithDefault("LOG_TIMESTAMP", "false") == "true",
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue if it is not set. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
