package config

import (
	"testing"
	"time"
)

// TestLoadDefaults проверяет значения по умолчанию без переменных окружения.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Planner.TimeLimit != 5*time.Minute {
		t.Fatalf("expected default time limit 5m, got %v", cfg.Planner.TimeLimit)
	}
	if cfg.Catalog.MealsCSV != "data/meals.csv" {
		t.Fatalf("unexpected meals path %q", cfg.Catalog.MealsCSV)
	}
	if cfg.Planner.RateLimitPerMinute != 30 {
		t.Fatalf("unexpected rate limit %d", cfg.Planner.RateLimitPerMinute)
	}
}

// TestLoadOverrides проверяет чтение переопределенных значений.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SOLVER_TIME_LIMIT", "30s")
	t.Setenv("MEALS_CSV", "/srv/meals.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Planner.TimeLimit != 30*time.Second {
		t.Fatalf("expected time limit 30s, got %v", cfg.Planner.TimeLimit)
	}
	if cfg.Catalog.MealsCSV != "/srv/meals.csv" {
		t.Fatalf("unexpected meals path %q", cfg.Catalog.MealsCSV)
	}
}

// TestLoadInvalidInt проверяет ошибку на нечисловом значении.
func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SERVER_PORT")
	}
}

// TestLoadInvalidDuration проверяет ошибку на неразбираемой длительности.
func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("SOLVER_TIME_LIMIT", "fast")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SOLVER_TIME_LIMIT")
	}
}

// TestValidate проверяет проверку обязательных полей конфигурации.
func TestValidate(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080},
		Catalog: CatalogConfig{MealsCSV: "meals.csv", ExercisesCSV: "exercises.csv"},
		Planner: PlannerConfig{TimeLimit: time.Minute, RateLimitPerMinute: 30, RateLimitBurst: 5},
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	broken := cfg
	broken.Catalog.ExercisesCSV = ""
	if err := broken.validate(); err == nil {
		t.Fatal("expected error for missing EXERCISES_CSV")
	}

	broken = cfg
	broken.Planner.TimeLimit = 0
	if err := broken.validate(); err == nil {
		t.Fatal("expected error for zero SOLVER_TIME_LIMIT")
	}
}
