package models

import "time"

type GoalType string

type Sex string

const (
	GoalWeightLoss GoalType = "weight_loss"
	GoalWeightGain GoalType = "weight_gain"
	GoalEndurance  GoalType = "endurance"

	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type UserProfile struct {
	Name                 string
	Age                  int
	Sex                  Sex
	HeightCM             float64
	WeightKG             float64
	ActivityLevel        string
	FreeTimeHours        float64
	WorkoutDaysPerWeek   int
	GoalType             GoalType
	GoalWeightKG         float64
	GoalTargetDate       time.Time
	MealPrepTimeMinutes  float64
	MealsPerDay          int
	DietRestrictions     []string
	CuisinePreferences   []string
	PreferredLocation    string
	PreferredWorkoutType string
}

// FreeTimeMinutes возвращает дневной бюджет свободного времени в минутах.
func (p UserProfile) FreeTimeMinutes() float64 {
	return p.FreeTimeHours * 60
}

// MealPrepBudgetMinutes возвращает дневной бюджет времени на готовку в минутах.
func (p UserProfile) MealPrepBudgetMinutes() float64 {
	return p.MealPrepTimeMinutes * float64(p.MealsPerDay)
}
