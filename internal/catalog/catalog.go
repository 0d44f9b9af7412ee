package catalog

import "strings"

// Подстановочное значение "без фильтра" в пользовательских предпочтениях.
const noPreference = "none"

type Meal struct {
	Recipe           string  `csv:"recipe" json:"recipe"`
	DietType         string  `csv:"diet_type" json:"diet_type"`
	CuisineType      string  `csv:"cuisine_type" json:"cuisine_type"`
	TotalTimeMinutes float64 `csv:"total_time_in_minutes" json:"total_time_in_minutes"`
	Calories         float64 `csv:"calories" json:"calories"`
	Fat              float64 `csv:"fat" json:"fat"`
	Carbs            float64 `csv:"carbs" json:"carbs"`
	Protein          float64 `csv:"protein" json:"protein"`
}

type Exercise struct {
	Name           string  `csv:"exercise_name" json:"exercise_name"`
	Location       string  `csv:"workout_location" json:"workout_location"`
	CaloriesPerMin float64 `csv:"calories_burned_per_min" json:"calories_burned_per_min"`
	ActivityType   string  `csv:"activity_type" json:"activity_type"`
}

// Snapshot — неизменяемый каталог кандидатов, общий для всех запросов.
// Фильтрация всегда возвращает копии строк, сами данные не мутируются.
type Snapshot struct {
	meals     []Meal
	exercises []Exercise
}

type Filter struct {
	DietRestrictions   []string
	CuisinePreferences []string
	WorkoutLocation    string
	WorkoutType        string
}

// NewSnapshot создает каталог из готовых списков блюд и упражнений.
func NewSnapshot(meals []Meal, exercises []Exercise) *Snapshot {
	s := &Snapshot{
		meals:     make([]Meal, len(meals)),
		exercises: make([]Exercise, len(exercises)),
	}
	copy(s.meals, meals)
	copy(s.exercises, exercises)

	return s
}

// MealCount возвращает число блюд в каталоге.
func (s *Snapshot) MealCount() int {
	return len(s.meals)
}

// ExerciseCount возвращает число упражнений в каталоге.
func (s *Snapshot) ExerciseCount() int {
	return len(s.exercises)
}

// FilterMeals возвращает копии блюд, проходящих диетические и кухонные предпочтения.
func (s *Snapshot) FilterMeals(f Filter) []Meal {
	diets := normalizePreferences(f.DietRestrictions)
	cuisines := normalizePreferences(f.CuisinePreferences)

	out := make([]Meal, 0, len(s.meals))
	for _, meal := range s.meals {
		if diets != nil {
			if _, ok := diets[strings.ToLower(meal.DietType)]; !ok {
				continue
			}
		}
		if cuisines != nil {
			if _, ok := cuisines[strings.ToLower(meal.CuisineType)]; !ok {
				continue
			}
		}
		out = append(out, meal)
	}

	return out
}

// FilterExercises возвращает копии упражнений по месту и типу тренировки.
func (s *Snapshot) FilterExercises(f Filter) []Exercise {
	location := normalizePreference(f.WorkoutLocation)
	workoutType := normalizePreference(f.WorkoutType)

	out := make([]Exercise, 0, len(s.exercises))
	for _, exercise := range s.exercises {
		if location != "" && strings.ToLower(exercise.Location) != location {
			continue
		}
		if workoutType != "" && strings.ToLower(exercise.ActivityType) != workoutType {
			continue
		}
		out = append(out, exercise)
	}

	return out
}

func normalizePreference(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == noPreference {
		return ""
	}

	return trimmed
}

// nil означает отсутствие фильтра.
func normalizePreferences(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed == "" || trimmed == noPreference {
			continue
		}
		out[trimmed] = struct{}{}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
