package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

var ErrEmptyCatalog = errors.New("empty catalog")

const (
	// Строки с большей калорийностью считаются браком исходных данных.
	maxMealCalories = 40000

	// Замена для блюд с нулевым временем приготовления.
	defaultMealTimeMinutes = 20
)

// Load читает CSV-файлы каталога, чистит их и возвращает снапшот.
func Load(mealsPath, exercisesPath string) (*Snapshot, error) {
	var meals []Meal
	if err := readCSV(mealsPath, &meals); err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}

	var exercises []Exercise
	if err := readCSV(exercisesPath, &exercises); err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}

	meals = cleanMeals(meals)
	exercises = cleanExercises(exercises)

	if len(meals) == 0 {
		return nil, fmt.Errorf("%w: no usable meals in %s", ErrEmptyCatalog, mealsPath)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: no usable exercises in %s", ErrEmptyCatalog, exercisesPath)
	}

	return &Snapshot{meals: meals, exercises: exercises}, nil
}

func readCSV(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.UnmarshalFile(file, out)
}

func cleanMeals(meals []Meal) []Meal {
	out := make([]Meal, 0, len(meals))
	for _, meal := range meals {
		if meal.Calories <= 0 || meal.Calories > maxMealCalories {
			continue
		}
		if strings.TrimSpace(meal.Recipe) == "" {
			continue
		}

		if meal.TotalTimeMinutes <= 0 {
			meal.TotalTimeMinutes = defaultMealTimeMinutes
		}
		meal.DietType = strings.ToLower(strings.TrimSpace(meal.DietType))
		meal.CuisineType = strings.ToLower(strings.TrimSpace(meal.CuisineType))

		out = append(out, meal)
	}

	return out
}

func cleanExercises(exercises []Exercise) []Exercise {
	out := make([]Exercise, 0, len(exercises))
	for _, exercise := range exercises {
		if exercise.CaloriesPerMin <= 0 {
			continue
		}
		if strings.TrimSpace(exercise.Name) == "" {
			continue
		}

		exercise.Location = strings.ToLower(strings.TrimSpace(exercise.Location))
		exercise.ActivityType = strings.ToLower(strings.TrimSpace(exercise.ActivityType))

		out = append(out, exercise)
	}

	return out
}
