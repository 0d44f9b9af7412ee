package planner

import (
	"math"

	"example.com/fitness-planner/backend/internal/catalog"
	"example.com/fitness-planner/backend/internal/metrics"
	"example.com/fitness-planner/backend/internal/mip"
	"example.com/fitness-planner/backend/internal/models"
)

const (
	kcalPerGramFat     = 9.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramProtein = 4.0

	// Допуск по чистым калориям для цели endurance.
	enduranceBandCalories = 50.0

	// Доля доступных упражнений, ниже которой день не считается тренировочным.
	// Эмпирическая настроечная константа, как и лимиты длительности ниже.
	workoutActivityShare = 0.10
)

type macroRange struct {
	lo float64
	hi float64
}

type macroPolicy struct {
	fat     macroRange
	carbs   macroRange
	protein macroRange
}

// Доли макронутриентов от целевых калорий по типу цели.
func policyFor(goal models.GoalType) macroPolicy {
	if goal == models.GoalWeightGain {
		return macroPolicy{
			fat:     macroRange{lo: 0.15, hi: 0.30},
			carbs:   macroRange{lo: 0.45, hi: 0.60},
			protein: macroRange{lo: 0.30, hi: 0.35},
		}
	}

	return macroPolicy{
		fat:     macroRange{lo: 0.20, hi: 0.35},
		carbs:   macroRange{lo: 0.45, hi: 0.65},
		protein: macroRange{lo: 0.10, hi: 0.35},
	}
}

// Потолок длительности одной сессии в минутах по типу активности.
func durationCap(activityType string) float64 {
	switch activityType {
	case "cardio":
		return 60
	case "strength":
		return 30
	default:
		return 20
	}
}

type modelVars struct {
	selectMeal       [][]mip.Var // [день][блюдо]
	performExercise  [][]mip.Var // [день][упражнение]
	exerciseDuration [][]mip.Var // [день][упражнение], минуты
	workoutDay       []mip.Var
	deviation        mip.Var
}

// buildModel собирает MIP одного запроса планирования.
func buildModel(profile models.UserProfile, m metrics.UserMetrics, meals []catalog.Meal, exercises []catalog.Exercise) (*mip.Model, modelVars) {
	horizon := m.DaysToTarget
	target := m.TargetCaloriesPerDay
	policy := policyFor(profile.GoalType)

	model := mip.NewModel()
	vars := modelVars{
		selectMeal:       make([][]mip.Var, horizon),
		performExercise:  make([][]mip.Var, horizon),
		exerciseDuration: make([][]mip.Var, horizon),
		workoutDay:       make([]mip.Var, horizon),
	}

	for d := 0; d < horizon; d++ {
		vars.selectMeal[d] = make([]mip.Var, len(meals))
		for i := range meals {
			vars.selectMeal[d][i] = model.AddBinary()
		}

		vars.performExercise[d] = make([]mip.Var, len(exercises))
		vars.exerciseDuration[d] = make([]mip.Var, len(exercises))
		for j, exercise := range exercises {
			vars.performExercise[d][j] = model.AddBinary()
			vars.exerciseDuration[d][j] = model.AddContinuous(durationCap(exercise.ActivityType))
		}

		vars.workoutDay[d] = model.AddBinary()
	}

	vars.deviation = model.AddContinuous(math.Inf(1))
	model.SetObjectiveCoef(vars.deviation, 1)

	totalBalance := make([]mip.Term, 0, horizon*(len(meals)+len(exercises))+1)

	for d := 0; d < horizon; d++ {
		mealCount := make([]mip.Term, 0, len(meals))
		dayBalance := make([]mip.Term, 0, len(meals)+len(exercises))
		prepTime := make([]mip.Term, 0, len(meals))
		dayTime := make([]mip.Term, 0, len(meals)+len(exercises))
		fat := make([]mip.Term, 0, len(meals))
		carbs := make([]mip.Term, 0, len(meals))
		protein := make([]mip.Term, 0, len(meals))

		for i, meal := range meals {
			v := vars.selectMeal[d][i]
			mealCount = append(mealCount, mip.Term{Var: v, Coef: 1})
			dayBalance = append(dayBalance, mip.Term{Var: v, Coef: meal.Calories})
			totalBalance = append(totalBalance, mip.Term{Var: v, Coef: meal.Calories})
			prepTime = append(prepTime, mip.Term{Var: v, Coef: meal.TotalTimeMinutes})
			dayTime = append(dayTime, mip.Term{Var: v, Coef: meal.TotalTimeMinutes})
			fat = append(fat, mip.Term{Var: v, Coef: meal.Fat * kcalPerGramFat})
			carbs = append(carbs, mip.Term{Var: v, Coef: meal.Carbs * kcalPerGramCarbs})
			protein = append(protein, mip.Term{Var: v, Coef: meal.Protein * kcalPerGramProtein})
		}

		for j, exercise := range exercises {
			duration := vars.exerciseDuration[d][j]
			dayBalance = append(dayBalance, mip.Term{Var: duration, Coef: -exercise.CaloriesPerMin})
			totalBalance = append(totalBalance, mip.Term{Var: duration, Coef: -exercise.CaloriesPerMin})
			dayTime = append(dayTime, mip.Term{Var: duration, Coef: 1})

			// Длительность допустима только при выполненном упражнении.
			model.AddConstraint([]mip.Term{
				{Var: duration, Coef: 1},
				{Var: vars.performExercise[d][j], Coef: -durationCap(exercise.ActivityType)},
			}, mip.LessEq, 0)
		}

		model.AddConstraint(mealCount, mip.Equal, float64(profile.MealsPerDay))

		switch profile.GoalType {
		case models.GoalWeightLoss:
			model.AddConstraint(dayBalance, mip.LessEq, target)
		case models.GoalWeightGain:
			model.AddConstraint(dayBalance, mip.GreaterEq, target)
		case models.GoalEndurance:
			model.AddConstraint(dayBalance, mip.LessEq, target+enduranceBandCalories)
			model.AddConstraint(dayBalance, mip.GreaterEq, target-enduranceBandCalories)
		}

		model.AddConstraint(fat, mip.GreaterEq, policy.fat.lo*target)
		model.AddConstraint(fat, mip.LessEq, policy.fat.hi*target)
		model.AddConstraint(carbs, mip.GreaterEq, policy.carbs.lo*target)
		model.AddConstraint(carbs, mip.LessEq, policy.carbs.hi*target)
		model.AddConstraint(protein, mip.GreaterEq, policy.protein.lo*target)
		model.AddConstraint(protein, mip.LessEq, policy.protein.hi*target)

		model.AddConstraint(prepTime, mip.LessEq, profile.MealPrepBudgetMinutes())
		model.AddConstraint(dayTime, mip.LessEq, profile.FreeTimeMinutes())

		performed := make([]mip.Term, 0, len(exercises)+1)
		for j := range exercises {
			performed = append(performed, mip.Term{Var: vars.performExercise[d][j], Coef: 1})
		}

		// День считается тренировочным, только если выполнено хоть что-то,
		// и не считается им при активности ниже порога. Связка идет через
		// факт выполнения, а не длительность: тренировочный день с нулевой
		// суммарной длительностью допустим и не исправляется моделью.
		model.AddConstraint(append(performed, mip.Term{Var: vars.workoutDay[d], Coef: -1}), mip.GreaterEq, 0)
		model.AddConstraint(append(performed, mip.Term{Var: vars.workoutDay[d], Coef: -workoutActivityShare * float64(len(exercises))}), mip.GreaterEq, 0)
	}

	// Одно и то же блюдо или упражнение не идет два дня подряд.
	for d := 0; d+1 < horizon; d++ {
		for i := range meals {
			model.AddConstraint([]mip.Term{
				{Var: vars.selectMeal[d][i], Coef: 1},
				{Var: vars.selectMeal[d+1][i], Coef: 1},
			}, mip.LessEq, 1)
		}
		for j := range exercises {
			model.AddConstraint([]mip.Term{
				{Var: vars.performExercise[d][j], Coef: 1},
				{Var: vars.performExercise[d+1][j], Coef: 1},
			}, mip.LessEq, 1)
		}
	}

	// Недельная квота тренировочных дней: полные недели строго, хвост не выше.
	for start := 0; start < horizon; start += 7 {
		end := start + 7
		sense := mip.Equal
		if end > horizon {
			end = horizon
			sense = mip.LessEq
		}

		block := make([]mip.Term, 0, end-start)
		for d := start; d < end; d++ {
			block = append(block, mip.Term{Var: vars.workoutDay[d], Coef: 1})
		}
		model.AddConstraint(block, sense, float64(profile.WorkoutDaysPerWeek))
	}

	// Линеаризация |суммарный баланс - горизонт*цель|: отклонение мажорирует обе стороны.
	horizonTarget := float64(horizon) * target
	model.AddConstraint(append(totalBalance, mip.Term{Var: vars.deviation, Coef: -1}), mip.LessEq, horizonTarget)
	model.AddConstraint(append(totalBalance, mip.Term{Var: vars.deviation, Coef: 1}), mip.GreaterEq, horizonTarget)

	return model, vars
}
