package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string        // Host IP for the server
	RESTPort           int           // Port for the REST API
	GinMode            string        // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret          string        // Secret key for session token signing
	JWTIssuer          string        // Issuer claim for session tokens
	TokenTTL           time.Duration // Lifetime of a session token
	SessionIdleTimeout time.Duration // Sessions untouched for this long are dropped
	LogFile            string        // Optional rotated log file
	Maze               MazeDefaults  // Defaults for new mazes
}

// MazeDefaults are the session options used when a request leaves them out.
type MazeDefaults struct {
	Height            int
	Width             int
	Vision            int
	PersistVisibility bool
	ResponsiveBorder  bool
	Seed              int64 // 0 picks a time based seed per session
}

// Load reads a .env file when one exists and then the environment.
func Load(files ...string) (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(files...)

	var errs []error
	c := Config{
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsInt("REST_PORT", 8080, &errs),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:          getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "vinom-fog"),
		TokenTTL:           getEnvAsDuration("TOKEN_TTL", time.Hour, &errs),
		SessionIdleTimeout: getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute, &errs),
		LogFile:            getEnvWithDefault("LOG_FILE", ""),
		Maze: MazeDefaults{
			Height:            getEnvAsInt("MAZE_HEIGHT", 5, &errs),
			Width:             getEnvAsInt("MAZE_WIDTH", 5, &errs),
			Vision:            getEnvAsInt("MAZE_VISION", 3, &errs),
			PersistVisibility: getEnvAsBool("MAZE_PERSIST", true, &errs),
			ResponsiveBorder:  getEnvAsBool("MAZE_RESPONSIVE", true, &errs),
			Seed:              int64(getEnvAsInt("MAZE_SEED", 0, &errs)),
		},
	}

	return c, errors.Join(errs...)
}

// RequireServer checks the values only the HTTP server needs.
func (c Config) RequireServer() error {
	if c.JWTSecret == "" {
		return errors.New("environment variable JWT_SECRET is not set")
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool, errs *[]error) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be a boolean: %w", key, err))
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be a duration: %w", key, err))
		return defaultValue
	}
	return value
}
