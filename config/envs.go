package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingKey   = errors.New("missing required key")
	ErrInvalidValue = errors.New("invalid value")
)

// Config holds the server's configuration values.
type Config struct {
	HostIP        string        // Host IP for the server
	RESTPort      int           // Port for the REST API
	GinMode       string        // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr     string        // host:port of the maze cache
	RedisPassword string        // Password of the maze cache, may be empty
	CacheTTL      time.Duration // Lifetime of cached mazes
	DBHost        string        // Hostname or IP address for the database
	DBPort        int           // Port number for the database
	DBUser        string        // Username for the database
	DBPassword    string        // Password for the database
	DBName        string        // Name of the database
}

// Envs loads a .env file if one exists and reads the server configuration from the
// environment.
func Envs() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return envConfig(os.LookupEnv)
}

type lookupFunc func(key string) (string, bool)

func envConfig(lookup lookupFunc) (Config, error) {
	r := envReader{lookup: lookup}

	c := Config{
		HostIP:        r.mustGet("HOST_IP"),
		RESTPort:      r.mustGetInt("REST_PORT"),
		GinMode:       r.getWithDefault("GIN_MODE", "release"),
		RedisAddr:     r.mustGet("REDIS_ADDR"),
		RedisPassword: r.getWithDefault("REDIS_PASSWORD", ""),
		CacheTTL:      time.Duration(r.getIntWithDefault("CACHE_TTL_SECONDS", 600)) * time.Second,
		DBHost:        r.mustGet("DB_HOST"),
		DBPort:        r.mustGetInt("DB_PORT"),
		DBUser:        r.mustGet("DB_USER"),
		DBPassword:    r.mustGet("DB_PASS"),
		DBName:        r.mustGet("DB_NAME"),
	}
	if r.err != nil {
		return Config{}, r.err
	}
	return c, nil
}

// envReader keeps the first error so a whole config can be read before checking it.
type envReader struct {
	lookup lookupFunc
	err    error
}

// mustGet retrieves a required value.
func (r *envReader) mustGet(key string) string {
	value, exists := r.lookup(key)
	if !exists {
		r.fail(fmt.Errorf("%w: environment variable %s is not set", ErrMissingKey, key))
	}
	return value
}

// mustGetInt retrieves a required value as an integer.
func (r *envReader) mustGetInt(key string) int {
	valueStr := r.mustGet(key)
	if r.err != nil {
		return 0
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.fail(fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalidValue, key, err))
	}
	return value
}

// getWithDefault retrieves a value or returns defaultValue if it is not set.
func (r *envReader) getWithDefault(key, defaultValue string) string {
	if value, exists := r.lookup(key); exists {
		return value
	}
	return defaultValue
}

func (r *envReader) getIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := r.lookup(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		r.fail(fmt.Errorf("%w: environment variable %s must be a positive integer", ErrInvalidValue, key))
	}
	return value
}

func (r *envReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
