package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Goal      GoalConfig
	PriceFeed PriceFeedConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// GoalConfig holds the savings-goal assumptions: the down-payment target
// band, the assumed annual return, and the assumed monthly contribution.
// Loaded once at startup and passed into the engine per call.
type GoalConfig struct {
	TargetLow           float64
	TargetHigh          float64
	AnnualReturn        float64
	MonthlyContribution float64
}

// PriceFeedConfig holds price feed configuration: the refresh schedule for
// the price cache and the per-symbol fallback prices used when a quote
// cannot be fetched.
type PriceFeedConfig struct {
	RefreshSpec   string
	DefaultPrices map[string]float64
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/etf_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Goal: GoalConfig{
			TargetLow:           getEnvFloat("GOAL_TARGET_LOW", 6_500_000),
			TargetHigh:          getEnvFloat("GOAL_TARGET_HIGH", 7_500_000),
			AnnualReturn:        getEnvFloat("GOAL_ANNUAL_RETURN", 0.06),
			MonthlyContribution: getEnvFloat("GOAL_MONTHLY_DCA", 5000),
		},
		PriceFeed: PriceFeedConfig{
			RefreshSpec:   getEnv("PRICE_REFRESH_SPEC", "@hourly"),
			DefaultPrices: parsePrices(getEnv("DEFAULT_PRICES", "0050=150.0,0056=35.0,00878=23.0,00919=24.0")),
		},
	}

	if config.Goal.AnnualReturn <= 0 {
		return nil, fmt.Errorf("GOAL_ANNUAL_RETURN must be positive, got %v", config.Goal.AnnualReturn)
	}
	if config.Goal.TargetLow > config.Goal.TargetHigh {
		return nil, fmt.Errorf("GOAL_TARGET_LOW (%v) must not exceed GOAL_TARGET_HIGH (%v)",
			config.Goal.TargetLow, config.Goal.TargetHigh)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a numeric environment variable or returns a default value.
// Unparseable values fall back to the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// parsePrices parses a "SYMBOL=PRICE,SYMBOL=PRICE" list into a map.
// Malformed pairs are skipped.
func parsePrices(raw string) map[string]float64 {
	prices := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		symbol, priceStr, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			continue
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			continue
		}
		prices[symbol] = price
	}
	return prices
}
