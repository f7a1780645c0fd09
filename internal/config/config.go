package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds service configuration.
// Precedence: defaults, then the YAML file, then environment variables.
type Config struct {
	Port string `yaml:"port"`

	Odds  OddsConfig  `yaml:"odds"`
	NHL   NHLConfig   `yaml:"nhl"`
	Teams TeamsConfig `yaml:"teams"`

	RedisURL    string   `yaml:"redis_url"` // empty keeps the team cache in memory
	CORSOrigins []string `yaml:"cors_origins"`
}

// OddsConfig configures The Odds API client
type OddsConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// NHLConfig configures the NHL stats client
type NHLConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TeamsConfig configures the team directory
type TeamsConfig struct {
	CacheTTL        time.Duration `yaml:"cache_ttl"`        // 0 keeps teams until invalidated
	RefreshInterval time.Duration `yaml:"refresh_interval"` // 0 disables background refresh
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port: ":8080",
		Odds: OddsConfig{
			BaseURL: "https://api.the-odds-api.com",
			Timeout: 10 * time.Second,
		},
		NHL: NHLConfig{
			BaseURL: "https://statsapi.web.nhl.com/api/v1",
			Timeout: 8 * time.Second,
		},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded first if present, then the YAML file named by NHLBETS_CONFIG.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("NHLBETS_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile overlays a YAML file onto cfg
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// applyEnv overlays environment variables onto cfg
func applyEnv(cfg *Config) error {
	cfg.Port = normalizePort(getEnv("PORT", cfg.Port))
	cfg.Odds.APIKey = getEnv("THEODDSAPI_KEY", cfg.Odds.APIKey)
	cfg.Odds.BaseURL = getEnv("ODDS_API_BASE_URL", cfg.Odds.BaseURL)
	cfg.NHL.BaseURL = getEnv("NHL_API_BASE_URL", cfg.NHL.BaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"ODDS_TIMEOUT", &cfg.Odds.Timeout},
		{"NHL_TIMEOUT", &cfg.NHL.Timeout},
		{"TEAM_CACHE_TTL", &cfg.Teams.CacheTTL},
		{"TEAM_REFRESH_INTERVAL", &cfg.Teams.RefreshInterval},
	}
	for _, d := range durations {
		if err := getEnvDuration(d.key, d.dst); err != nil {
			return err
		}
	}

	return nil
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration variable into dst when it is set
func getEnvDuration(key string, dst *time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*dst = parsed
	return nil
}

// normalizePort accepts both "8080" and ":8080"
func normalizePort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
