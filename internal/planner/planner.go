// Package planner — ядро генерации расписаний: сборка и решение MIP,
// агрегация решения по дням и диагностика несовместных ограничений.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"example.com/fitness-planner/backend/internal/catalog"
	"example.com/fitness-planner/backend/internal/metrics"
	"example.com/fitness-planner/backend/internal/mip"
	"example.com/fitness-planner/backend/internal/models"
)

type PlannedMeal struct {
	Recipe           string
	Calories         float64
	Fat              float64
	Carbs            float64
	Protein          float64
	TotalTimeMinutes float64
}

type PlannedExercise struct {
	Name                    string
	ActivityType            string
	Location                string
	DurationMinutes         float64
	EstimatedCaloriesBurned float64
}

type DayPlan struct {
	Day           time.Time
	Meals         []PlannedMeal
	Exercises     []PlannedExercise
	WorkoutDay    bool
	TotalTimeUsed float64
	NetCalories   float64
}

type WeeklySummary struct {
	FreeTimeWeek       float64
	AvgFreeTimeUsed    float64
	AvgWorkoutDuration float64
	MealsPerDay        int
	AvgNetCalories     float64
}

// Result всегда в одном из двух состояний: непустой план с решенным статусом
// либо пустой план с непустыми рекомендациями.
type Result struct {
	Status          string
	Days            []DayPlan
	Weekly          WeeklySummary
	Recommendations []string
}

type Planner struct {
	timeLimit time.Duration
	logger    *slog.Logger
}

// New создает планировщик с лимитом времени на решение одной задачи.
func New(timeLimit time.Duration, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{timeLimit: timeLimit, logger: logger}
}

// Plan строит модель по профилю и каталогу, решает ее и собирает результат.
// Каждый вызов работает на собственном экземпляре модели и не держит состояния.
func (p *Planner) Plan(ctx context.Context, profile models.UserProfile, m metrics.UserMetrics, meals []catalog.Meal, exercises []catalog.Exercise, now time.Time) Result {
	model, vars := buildModel(profile, m, meals, exercises)

	started := time.Now()
	solution := model.Solve(ctx, p.timeLimit)

	p.logger.Info("planning model solved",
		slog.String("status", solution.Status.String()),
		slog.Int("horizon_days", m.DaysToTarget),
		slog.Int("meals", len(meals)),
		slog.Int("exercises", len(exercises)),
		slog.Duration("elapsed", time.Since(started)),
	)

	switch solution.Status {
	case mip.StatusOptimal, mip.StatusTimeLimit:
		days := aggregate(solution, vars, meals, exercises, now)
		return Result{
			Status:          solution.Status.String(),
			Days:            days,
			Weekly:          summarize(days, profile),
			Recommendations: []string{},
		}
	case mip.StatusInfeasible:
		return Result{
			Status:          solution.Status.String(),
			Days:            []DayPlan{},
			Recommendations: diagnose(profile, m, meals, exercises),
		}
	default:
		return Result{
			Status:          solution.Status.String(),
			Days:            []DayPlan{},
			Recommendations: []string{fmt.Sprintf("the solver finished with status %s and produced no usable plan; retry with adjusted inputs", solution.Status)},
		}
	}
}
