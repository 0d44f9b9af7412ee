package metrics

import (
	"errors"
	"testing"
	"time"

	"example.com/fitness-planner/backend/internal/models"
)

func sampleProfile(now time.Time) models.UserProfile {
	return models.UserProfile{
		Name:           "wei",
		Age:            41,
		Sex:            models.SexMale,
		HeightCM:       170,
		WeightKG:       70,
		ActivityLevel:  "Sedentary",
		GoalType:       models.GoalWeightGain,
		GoalWeightKG:   75,
		GoalTargetDate: now.AddDate(0, 0, 10),
	}
}

// TestCompute проверяет формулы BMR/TDEE и целевых калорий.
func TestCompute(t *testing.T) {
	now := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	m, err := Compute(sampleProfile(now), now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if m.BMR != 1562.5 {
		t.Fatalf("unexpected BMR: %v", m.BMR)
	}
	if m.TDEE != 1562.5*1.2 {
		t.Fatalf("unexpected TDEE: %v", m.TDEE)
	}
	if m.DaysToTarget != 10 {
		t.Fatalf("unexpected days to target: %d", m.DaysToTarget)
	}
	if m.CalorieChangePerDay != 7700*5.0/10 {
		t.Fatalf("unexpected calorie change: %v", m.CalorieChangePerDay)
	}
	if m.TargetCaloriesPerDay != m.TDEE+3850 {
		t.Fatalf("unexpected target calories: %v", m.TargetCaloriesPerDay)
	}
}

// TestComputeDeterministic проверяет, что повторный расчет дает идентичный результат.
func TestComputeDeterministic(t *testing.T) {
	now := time.Date(2025, 4, 12, 8, 30, 0, 0, time.UTC)
	profile := sampleProfile(now)

	first, err := Compute(profile, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := Compute(profile, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first != second {
		t.Fatalf("expected identical metrics, got %+v and %+v", first, second)
	}
}

// TestComputeSexOffset проверяет смещение формулы для не-мужских категорий.
func TestComputeSexOffset(t *testing.T) {
	now := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	profile := sampleProfile(now)
	profile.Sex = models.SexFemale

	m, err := Compute(profile, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if m.BMR != 1562.5-5-161 {
		t.Fatalf("unexpected BMR for female profile: %v", m.BMR)
	}
}

// TestComputeUnknownActivityLevel проверяет откат к сидячему множителю.
func TestComputeUnknownActivityLevel(t *testing.T) {
	now := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	profile := sampleProfile(now)
	profile.ActivityLevel = "astronaut"

	m, err := Compute(profile, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if m.TDEE != m.BMR*1.2 {
		t.Fatalf("expected sedentary fallback, got TDEE %v for BMR %v", m.TDEE, m.BMR)
	}
}

// TestComputeHorizonFloor проверяет минимум горизонта в один день.
func TestComputeHorizonFloor(t *testing.T) {
	now := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	profile := sampleProfile(now)
	profile.GoalTargetDate = now.Add(6 * time.Hour)

	m, err := Compute(profile, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if m.DaysToTarget != 1 {
		t.Fatalf("expected horizon of 1 day, got %d", m.DaysToTarget)
	}
}

// TestComputeInvalidProfile проверяет ошибки валидации профиля.
func TestComputeInvalidProfile(t *testing.T) {
	now := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	cases := map[string]func(*models.UserProfile){
		"non-positive weight": func(p *models.UserProfile) { p.WeightKG = 0 },
		"non-positive height": func(p *models.UserProfile) { p.HeightCM = -1 },
		"non-positive age":    func(p *models.UserProfile) { p.Age = 0 },
		"past target date":    func(p *models.UserProfile) { p.GoalTargetDate = now.AddDate(0, 0, -1) },
	}

	for name, mutate := range cases {
		profile := sampleProfile(now)
		mutate(&profile)

		if _, err := Compute(profile, now); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("%s: expected ErrInvalidProfile, got %v", name, err)
		}
	}
}

// TestRounded проверяет округление представления до 2 знаков.
func TestRounded(t *testing.T) {
	m := UserMetrics{BMR: 1562.513, TDEE: 1875.0012, CalorieChangePerDay: 3849.999, TargetCaloriesPerDay: 5725.0001, DaysToTarget: 10}

	r := m.Rounded()
	if r.BMR != 1562.51 || r.TDEE != 1875.0 || r.CalorieChangePerDay != 3850.0 || r.TargetCaloriesPerDay != 5725.0 {
		t.Fatalf("unexpected rounding: %+v", r)
	}
	if r.DaysToTarget != 10 {
		t.Fatalf("days to target must pass through, got %d", r.DaysToTarget)
	}
}
