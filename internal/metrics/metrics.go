package metrics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"example.com/fitness-planner/backend/internal/models"
)

var ErrInvalidProfile = errors.New("invalid profile")

const (
	// kcal на килограмм массы тела (дефицит/профицит).
	caloriesPerKG = 7700

	maleOffset   = 5.0
	femaleOffset = -161.0

	defaultActivityMultiplier = 1.2
)

// Множители активности по Mifflin-St Jeor, ключи нормализованы в нижний регистр.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
	"extra active":      1.9,
}

type UserMetrics struct {
	BMR                  float64 `json:"bmr"`
	TDEE                 float64 `json:"tdee"`
	WeightChangeKG       float64 `json:"weight_change_kg"`
	DaysToTarget         int     `json:"days_to_target"`
	CalorieChangePerDay  float64 `json:"calorie_change_per_day"`
	TargetCaloriesPerDay float64 `json:"target_calorie_per_day"`
}

// Compute вычисляет энергетические показатели пользователя на момент now.
func Compute(profile models.UserProfile, now time.Time) (UserMetrics, error) {
	if profile.WeightKG <= 0 {
		return UserMetrics{}, fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if profile.HeightCM <= 0 {
		return UserMetrics{}, fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	if profile.Age <= 0 {
		return UserMetrics{}, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if !profile.GoalTargetDate.After(now) {
		return UserMetrics{}, fmt.Errorf("%w: goal target date must be in the future", ErrInvalidProfile)
	}

	sexOffset := femaleOffset
	if profile.Sex == models.SexMale {
		sexOffset = maleOffset
	}

	bmr := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.Age) + sexOffset
	tdee := bmr * activityMultiplier(profile.ActivityLevel)

	days := daysUntil(now, profile.GoalTargetDate)
	weightChange := profile.GoalWeightKG - profile.WeightKG
	calorieChange := caloriesPerKG * weightChange / float64(days)

	return UserMetrics{
		BMR:                  bmr,
		TDEE:                 tdee,
		WeightChangeKG:       weightChange,
		DaysToTarget:         days,
		CalorieChangePerDay:  calorieChange,
		TargetCaloriesPerDay: tdee + calorieChange,
	}, nil
}

// Rounded возвращает копию метрик, округленную до 2 знаков для выдачи наружу.
func (m UserMetrics) Rounded() UserMetrics {
	return UserMetrics{
		BMR:                  round2(m.BMR),
		TDEE:                 round2(m.TDEE),
		WeightChangeKG:       round2(m.WeightChangeKG),
		DaysToTarget:         m.DaysToTarget,
		CalorieChangePerDay:  round2(m.CalorieChangePerDay),
		TargetCaloriesPerDay: round2(m.TargetCaloriesPerDay),
	}
}

// Неизвестный уровень активности трактуется как сидячий образ жизни.
func activityMultiplier(level string) float64 {
	if multiplier, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(level))]; ok {
		return multiplier
	}

	return defaultActivityMultiplier
}

// Горизонт планирования: дни до цели, округление вверх, минимум один день.
func daysUntil(now, target time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}

	return days
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
