package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Application struct {
	Name        string
	Environment string
	Debug       bool
	Port        int
	Timeout     time.Duration
}

type CORS struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	MaxAge           int
	AllowCredentials bool
}

type Catalog struct {
	MenuFile    string
	RewardsFile string
}

type Pricing struct {
	LargeCupUpcharge float64
	ColdUpcharge     float64
}

type Order struct {
	EstimatedPrepDuration time.Duration
}

type Payment struct {
	ProcessingDelay time.Duration
}

type Rewards struct {
	SeedPoints     int64
	SeedTotalSpent float64
	SeedVisits     int64
}

type Config struct {
	Application Application
	CORS        CORS
	Catalog     Catalog
	Pricing     Pricing
	Order       Order
	Payment     Payment
	Rewards     Rewards
}

var (
	once sync.Once
	c    *Config
)

func Get() *Config {
	once.Do(func() {
		godotenv.Load()
		c = load()
	})

	return c
}

func load() *Config {
	cfg := &Config{}

	cfg.Application.Name = getString("APP_NAME", "kopitiam")
	cfg.Application.Environment = getString("APP_ENVIRONMENT", "development")
	cfg.Application.Debug = getBool("APP_DEBUG", true)
	cfg.Application.Port = getInt("APP_PORT", 8080)
	cfg.Application.Timeout = getDuration("APP_TIMEOUT", 10*time.Second)

	cfg.CORS.AllowedOrigins = getSlice("CORS_ALLOWED_ORIGINS", []string{"*"})
	cfg.CORS.AllowedMethods = getSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	cfg.CORS.AllowedHeaders = getSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "X-Session-Token"})
	cfg.CORS.ExposedHeaders = getSlice("CORS_EXPOSED_HEADERS", []string{"X-Session-Token"})
	cfg.CORS.MaxAge = getInt("CORS_MAX_AGE", 300)
	cfg.CORS.AllowCredentials = getBool("CORS_ALLOW_CREDENTIALS", false)

	cfg.Catalog.MenuFile = getString("CATALOG_MENU_FILE", "catalog/menu.yaml")
	cfg.Catalog.RewardsFile = getString("CATALOG_REWARDS_FILE", "catalog/rewards.yaml")

	cfg.Pricing.LargeCupUpcharge = getFloat("PRICING_LARGE_CUP_UPCHARGE", 0.50)
	cfg.Pricing.ColdUpcharge = getFloat("PRICING_COLD_UPCHARGE", 0.30)

	cfg.Order.EstimatedPrepDuration = getDuration("ORDER_ESTIMATED_PREP_DURATION", 15*time.Minute)

	cfg.Payment.ProcessingDelay = getDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second)

	cfg.Rewards.SeedPoints = int64(getInt("REWARDS_SEED_POINTS", 0))
	cfg.Rewards.SeedTotalSpent = getFloat("REWARDS_SEED_TOTAL_SPENT", 0)
	cfg.Rewards.SeedVisits = int64(getInt("REWARDS_SEED_VISITS", 0))

	return cfg
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return parsed
}

func getFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}

	return parsed
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}

	return parsed
}

func getSlice(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
