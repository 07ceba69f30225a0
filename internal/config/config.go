// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets and identifiers are strings; durations
// are parsed with time.ParseDuration.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	MongoURI   string // MongoDB connection string
	MongoDB    string // database name holding the movies collection
	JWTSecret  string // secret used to verify bearer tokens
	GenAIKey   string // Gemini API key for poster enhancement
	GenAIModel string // image-capable Gemini model name
	AMQPURL    string // RabbitMQ URL for catalog events (optional)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       must("APP_PORT"),
		MongoURI:   must("MONGO_URI"),
		MongoDB:    getenv("MONGO_DB", "moviecatalog"),
		JWTSecret:  must("JWT_SECRET"),
		GenAIKey:   os.Getenv("GEMINI_API_KEY"), // empty disables enhancement
		GenAIModel: getenv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
		AMQPURL:    os.Getenv("RABBITMQ_URL"), // empty disables event publishing
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}
