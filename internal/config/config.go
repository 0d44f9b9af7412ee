package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string
	Server  ServerConfig
	Catalog CatalogConfig
	Planner PlannerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CatalogConfig struct {
	MealsCSV     string
	ExercisesCSV string
}

type PlannerConfig struct {
	TimeLimit          time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Minute)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	cfg.Catalog = CatalogConfig{
		MealsCSV:     getEnv("MEALS_CSV", "data/meals.csv"),
		ExercisesCSV: getEnv("EXERCISES_CSV", "data/exercises.csv"),
	}

	timeLimit, err := parseDurationEnv("SOLVER_TIME_LIMIT", 5*time.Minute)
	if err != nil {
		return cfg, err
	}

	rateLimitPerMinute, err := parseIntEnv("OPTIMIZE_RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return cfg, err
	}

	rateLimitBurst, err := parseIntEnv("OPTIMIZE_RATE_LIMIT_BURST", 5)
	if err != nil {
		return cfg, err
	}

	cfg.Planner = PlannerConfig{
		TimeLimit:          timeLimit,
		RateLimitPerMinute: rateLimitPerMinute,
		RateLimitBurst:     rateLimitBurst,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	if c.Catalog.MealsCSV == "" {
		return fmt.Errorf("MEALS_CSV is required")
	}

	if c.Catalog.ExercisesCSV == "" {
		return fmt.Errorf("EXERCISES_CSV is required")
	}

	if c.Planner.TimeLimit <= 0 {
		return fmt.Errorf("SOLVER_TIME_LIMIT must be greater than 0")
	}

	if c.Planner.RateLimitPerMinute <= 0 {
		return fmt.Errorf("OPTIMIZE_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.Planner.RateLimitBurst <= 0 {
		return fmt.Errorf("OPTIMIZE_RATE_LIMIT_BURST must be greater than 0")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
