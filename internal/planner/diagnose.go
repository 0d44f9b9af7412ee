package planner

import (
	"fmt"
	"math"

	"example.com/fitness-planner/backend/internal/catalog"
	"example.com/fitness-planner/backend/internal/metrics"
	"example.com/fitness-planner/backend/internal/models"
)

const (
	// Пороговые значения эвристики "слишком агрессивная цель".
	aggressiveWeightChangeKG = 10.0
	aggressiveHorizonDays    = 14

	RecommendationNoMeals     = "no meals match the current filters; broaden the diet or cuisine preferences"
	RecommendationNoExercises = "no exercises match the current filters; broaden the preferred workout type or location"
	RecommendationAllFeasible = "all inputs appear feasible; the conflict may come from constraint interactions these checks do not cover"
)

// diagnose запускает независимые эвристики и объясняет вероятные причины
// несовместности. Проверки приблизительные: они смотрят на границы каталога,
// а не на совместную выполнимость всех ограничений.
func diagnose(profile models.UserProfile, m metrics.UserMetrics, meals []catalog.Meal, exercises []catalog.Exercise) []string {
	out := []string{fmt.Sprintf(
		"no feasible plan over a %d-day horizon: target %.2f kcal/day, %.0f min free time/day, %.0f min prep budget/day, %d meals/day",
		m.DaysToTarget, m.TargetCaloriesPerDay, profile.FreeTimeMinutes(), profile.MealPrepBudgetMinutes(), profile.MealsPerDay,
	)}
	fired := false

	if math.Abs(m.WeightChangeKG) > aggressiveWeightChangeKG && m.DaysToTarget < aggressiveHorizonDays {
		out = append(out, fmt.Sprintf(
			"a %.1f kg change in %d days is aggressive; extend the target date or reduce the goal weight change",
			math.Abs(m.WeightChangeKG), m.DaysToTarget,
		))
		fired = true
	}

	if len(meals) == 0 {
		out = append(out, RecommendationNoMeals)
		fired = true
	} else {
		minCalories, maxCalories := calorieBounds(meals)
		mealsPerDay := float64(profile.MealsPerDay)

		if m.TargetCaloriesPerDay < minCalories*mealsPerDay {
			out = append(out, fmt.Sprintf(
				"planned intake too low for %d meals/day: even the lightest meals total %.0f kcal against a %.0f kcal target; reduce meals per day or adjust the target date",
				profile.MealsPerDay, minCalories*mealsPerDay, m.TargetCaloriesPerDay,
			))
			fired = true
		}
		if m.TargetCaloriesPerDay > maxCalories*mealsPerDay {
			out = append(out, fmt.Sprintf(
				"planned intake too high for %d meals/day: the richest meals total %.0f kcal against a %.0f kcal target; increase meals per day or adjust the target date",
				profile.MealsPerDay, maxCalories*mealsPerDay, m.TargetCaloriesPerDay,
			))
			fired = true
		}

		if fastest := fastestPrepTime(meals) * mealsPerDay; fastest > profile.MealPrepBudgetMinutes() {
			out = append(out, fmt.Sprintf(
				"the fastest %d meals need %.0f min, over the %.0f min daily prep budget; relax the meal prep time",
				profile.MealsPerDay, fastest, profile.MealPrepBudgetMinutes(),
			))
			fired = true
		}

		if fitting := countMacroFits(meals, policyFor(profile.GoalType)); fitting < profile.MealsPerDay {
			out = append(out, fmt.Sprintf(
				"only %d of %d candidate meals fit the %s macro profile, fewer than the %d meals needed per day; increase meals per day or broaden the diet filters",
				fitting, len(meals), profile.GoalType, profile.MealsPerDay,
			))
			fired = true
		}
	}

	if len(exercises) == 0 {
		out = append(out, RecommendationNoExercises)
		fired = true
	}

	if !fired {
		out = append(out, RecommendationAllFeasible)
	}

	return out
}

func calorieBounds(meals []catalog.Meal) (float64, float64) {
	minCalories := meals[0].Calories
	maxCalories := meals[0].Calories
	for _, meal := range meals[1:] {
		minCalories = math.Min(minCalories, meal.Calories)
		maxCalories = math.Max(maxCalories, meal.Calories)
	}

	return minCalories, maxCalories
}

func fastestPrepTime(meals []catalog.Meal) float64 {
	fastest := meals[0].TotalTimeMinutes
	for _, meal := range meals[1:] {
		fastest = math.Min(fastest, meal.TotalTimeMinutes)
	}

	return fastest
}

// countMacroFits считает блюда, чей собственный макросостав попадает в окно цели.
// Это приближенная оценка достаточности кандидатов, не доказательство.
func countMacroFits(meals []catalog.Meal, policy macroPolicy) int {
	count := 0
	for _, meal := range meals {
		total := meal.Fat*kcalPerGramFat + meal.Carbs*kcalPerGramCarbs + meal.Protein*kcalPerGramProtein
		if total <= 0 {
			continue
		}

		fatShare := meal.Fat * kcalPerGramFat / total
		carbShare := meal.Carbs * kcalPerGramCarbs / total
		proteinShare := meal.Protein * kcalPerGramProtein / total

		if fatShare >= policy.fat.lo && fatShare <= policy.fat.hi &&
			carbShare >= policy.carbs.lo && carbShare <= policy.carbs.hi &&
			proteinShare >= policy.protein.lo && proteinShare <= policy.protein.hi {
			count++
		}
	}

	return count
}
