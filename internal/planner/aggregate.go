package planner

import (
	"time"

	"example.com/fitness-planner/backend/internal/catalog"
	"example.com/fitness-planner/backend/internal/mip"
	"example.com/fitness-planner/backend/internal/models"
)

const selectedThreshold = 0.5

// aggregate разворачивает решение в дневные планы, начиная с даты now.
func aggregate(solution mip.Solution, vars modelVars, meals []catalog.Meal, exercises []catalog.Exercise, now time.Time) []DayPlan {
	days := make([]DayPlan, 0, len(vars.selectMeal))

	for d := range vars.selectMeal {
		day := DayPlan{
			Day:        now.AddDate(0, 0, d),
			Meals:      []PlannedMeal{},
			Exercises:  []PlannedExercise{},
			WorkoutDay: solution.Values[vars.workoutDay[d]] > selectedThreshold,
		}

		intake := 0.0
		for i, meal := range meals {
			if solution.Values[vars.selectMeal[d][i]] <= selectedThreshold {
				continue
			}

			day.Meals = append(day.Meals, PlannedMeal{
				Recipe:           meal.Recipe,
				Calories:         meal.Calories,
				Fat:              meal.Fat,
				Carbs:            meal.Carbs,
				Protein:          meal.Protein,
				TotalTimeMinutes: meal.TotalTimeMinutes,
			})
			intake += meal.Calories
			day.TotalTimeUsed += meal.TotalTimeMinutes
		}

		burned := 0.0
		for j, exercise := range exercises {
			if solution.Values[vars.performExercise[d][j]] <= selectedThreshold {
				continue
			}

			duration := solution.Values[vars.exerciseDuration[d][j]]
			if duration < 0 {
				duration = 0
			}

			day.Exercises = append(day.Exercises, PlannedExercise{
				Name:                    exercise.Name,
				ActivityType:            exercise.ActivityType,
				Location:                exercise.Location,
				DurationMinutes:         duration,
				EstimatedCaloriesBurned: exercise.CaloriesPerMin * duration,
			})
			burned += exercise.CaloriesPerMin * duration
			day.TotalTimeUsed += duration
		}

		day.NetCalories = intake - burned
		days = append(days, day)
	}

	return days
}

// summarize агрегирует первые семь дней плана в недельную сводку.
// Средние по нулю дней определены как 0.
func summarize(days []DayPlan, profile models.UserProfile) WeeklySummary {
	summary := WeeklySummary{
		FreeTimeWeek: profile.FreeTimeHours * 60 * float64(profile.WorkoutDaysPerWeek),
		MealsPerDay:  profile.MealsPerDay,
	}

	window := len(days)
	if window > 7 {
		window = 7
	}
	if window == 0 {
		return summary
	}

	totalTime := 0.0
	totalWorkout := 0.0
	totalNet := 0.0
	for _, day := range days[:window] {
		totalTime += day.TotalTimeUsed
		totalNet += day.NetCalories
		for _, exercise := range day.Exercises {
			totalWorkout += exercise.DurationMinutes
		}
	}

	summary.AvgFreeTimeUsed = totalTime / float64(window)
	summary.AvgWorkoutDuration = totalWorkout / float64(window)
	summary.AvgNetCalories = totalNet / float64(window)

	return summary
}
