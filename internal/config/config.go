// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults mirror a local development setup.
const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 8000
	DefaultOrigins    = "http://localhost:5173,http://localhost:3000"
	DefaultGifsDir    = "ISL_Gifs"
	DefaultLettersDir = "letters"
)

// Config holds the server configuration.
type Config struct {
	// Host and Port the HTTP server binds to.
	Host string
	Port int
	// AllowedOrigins for CORS. A single "*" allows any origin.
	AllowedOrigins []string
	// GifsDir is the directory holding phrase GIF assets.
	GifsDir string
	// LettersDir is the directory holding letter image assets.
	LettersDir string
	// LogFile is the log destination (empty = stdout).
	LogFile string
	// DotEnvLoaded reports whether a .env file was found and applied.
	DotEnvLoaded bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; its absence is not an error.
func Load() Config {
	err := godotenv.Load()

	return Config{
		Host:           getEnv("HOST", DefaultHost),
		Port:           getEnvInt("PORT", DefaultPort),
		AllowedOrigins: ParseOrigins(getEnv("ALLOWED_ORIGINS", DefaultOrigins)),
		GifsDir:        getEnv("GIFS_DIR", DefaultGifsDir),
		LettersDir:     getEnv("LETTERS_DIR", DefaultLettersDir),
		LogFile:        getEnv("LOG_FILE", ""),
		DotEnvLoaded:   err == nil,
	}
}

// ParseOrigins splits a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
