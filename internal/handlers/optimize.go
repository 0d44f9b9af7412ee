package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/fitness-planner/backend/internal/catalog"
	"example.com/fitness-planner/backend/internal/metrics"
	"example.com/fitness-planner/backend/internal/models"
	"example.com/fitness-planner/backend/internal/planner"
)

const dateLayout = "2006-01-02"

type OptimizeHandler struct {
	Catalog *catalog.Snapshot
	Planner *planner.Planner
}

// NewOptimizeHandler создает обработчик планирования.
func NewOptimizeHandler(snapshot *catalog.Snapshot, p *planner.Planner) *OptimizeHandler {
	return &OptimizeHandler{Catalog: snapshot, Planner: p}
}

type OptimizeRequest struct {
	Name                 string   `json:"name"`
	Age                  int      `json:"age" validate:"required,gt=0"`
	Gender               string   `json:"gender" validate:"required,oneof=male female other"`
	Height               float64  `json:"height" validate:"required,gt=0"`
	Weight               float64  `json:"weight" validate:"required,gt=0,lt=200"`
	ActivityLevel        string   `json:"activityLevel" validate:"required"`
	FreeTime             float64  `json:"freeTime" validate:"gte=0"`
	DaysWeek             int      `json:"daysWeek" validate:"required,min=1,max=7"`
	GoalType             string   `json:"goalType" validate:"required,oneof=weight_loss weight_gain endurance"`
	GoalWeight           float64  `json:"goalWeight" validate:"required,gt=0,lt=200"`
	GoalTargetDate       string   `json:"goalTargetDate" validate:"required"`
	FitnessLevel         string   `json:"fitnessLevel"`
	PreferredLocation    string   `json:"preferredLocation"`
	PreferredWorkoutType string   `json:"preferredWorkoutType"`
	DietRestrictions     []string `json:"dietRestrictions"`
	VarietyPreferences   []string `json:"varietyPreferences"`
	MealPrepTime         float64  `json:"mealPrepTime" validate:"required,gt=0,lte=120"`
	MealsPerDay          int      `json:"mealsPerDay" validate:"required,gt=0"`
}

type MacrosResponse struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

type MealResponse struct {
	Recipe    string         `json:"recipe"`
	Calories  float64        `json:"calories"`
	Macros    MacrosResponse `json:"macros"`
	TotalTime float64        `json:"total_time"`
}

type ExerciseResponse struct {
	Name                    string  `json:"name"`
	Type                    string  `json:"type"`
	Location                string  `json:"location"`
	Duration                float64 `json:"duration"`
	EstimatedCaloriesBurned float64 `json:"estimated_calories_burned"`
}

type DailyPlanResponse struct {
	Day               string             `json:"day"`
	SelectedMeals     []MealResponse     `json:"selected_meals"`
	SelectedExercises []ExerciseResponse `json:"selected_exercises"`
	TotalTimeUsed     float64            `json:"total_time_used"`
	TotalNetCalories  float64            `json:"total_net_calories"`
}

type WeeklyInfoResponse struct {
	FreeTimeWeek       float64 `json:"free_time_week"`
	AvgFreeTimeUsed    float64 `json:"avg_free_time_used"`
	AvgWorkoutDuration float64 `json:"avg_workout_duration"`
	MealsPerDay        int     `json:"meals_per_day"`
	AvgNetCalories     float64 `json:"avg_net_calories"`
}

type OptimizeResponse struct {
	PlanID          uuid.UUID           `json:"plan_id"`
	Status          string              `json:"status"`
	Metrics         metrics.UserMetrics `json:"metrics"`
	Plan            []DailyPlanResponse `json:"plan"`
	WeeklyInfo      WeeklyInfoResponse  `json:"weekly_info"`
	Recommendations []string            `json:"recommendations"`
}

// Optimize строит персональный план питания и тренировок по профилю.
func (h *OptimizeHandler) Optimize(c echo.Context) error {
	var req OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	targetDate, err := time.Parse(time.RFC3339, strings.TrimSpace(req.GoalTargetDate))
	if err != nil {
		return badRequest(c, "invalid goalTargetDate format")
	}

	profile := toProfile(req, targetDate)
	now := time.Now().UTC()

	userMetrics, err := metrics.Compute(profile, now)
	if err != nil {
		if errors.Is(err, metrics.ErrInvalidProfile) {
			return badRequest(c, err.Error())
		}
		return serverError(c)
	}

	filter := catalog.Filter{
		DietRestrictions:   profile.DietRestrictions,
		CuisinePreferences: profile.CuisinePreferences,
		WorkoutLocation:    profile.PreferredLocation,
		WorkoutType:        profile.PreferredWorkoutType,
	}
	meals := h.Catalog.FilterMeals(filter)
	exercises := h.Catalog.FilterExercises(filter)

	result := h.Planner.Plan(c.Request().Context(), profile, userMetrics, meals, exercises, now)

	return c.JSON(http.StatusOK, toOptimizeResponse(result, userMetrics))
}

func toProfile(req OptimizeRequest, targetDate time.Time) models.UserProfile {
	return models.UserProfile{
		Name:                 strings.TrimSpace(req.Name),
		Age:                  req.Age,
		Sex:                  models.Sex(strings.ToLower(req.Gender)),
		HeightCM:             req.Height,
		WeightKG:             req.Weight,
		ActivityLevel:        req.ActivityLevel,
		FreeTimeHours:        req.FreeTime,
		WorkoutDaysPerWeek:   req.DaysWeek,
		GoalType:             models.GoalType(req.GoalType),
		GoalWeightKG:         req.GoalWeight,
		GoalTargetDate:       targetDate,
		MealPrepTimeMinutes:  req.MealPrepTime,
		MealsPerDay:          req.MealsPerDay,
		DietRestrictions:     req.DietRestrictions,
		CuisinePreferences:   req.VarietyPreferences,
		PreferredLocation:    req.PreferredLocation,
		PreferredWorkoutType: req.PreferredWorkoutType,
	}
}

func toOptimizeResponse(result planner.Result, userMetrics metrics.UserMetrics) OptimizeResponse {
	plan := make([]DailyPlanResponse, 0, len(result.Days))
	for _, day := range result.Days {
		entry := DailyPlanResponse{
			Day:               day.Day.Format(dateLayout),
			SelectedMeals:     make([]MealResponse, 0, len(day.Meals)),
			SelectedExercises: make([]ExerciseResponse, 0, len(day.Exercises)),
			TotalTimeUsed:     day.TotalTimeUsed,
			TotalNetCalories:  day.NetCalories,
		}

		for _, meal := range day.Meals {
			entry.SelectedMeals = append(entry.SelectedMeals, MealResponse{
				Recipe:   meal.Recipe,
				Calories: meal.Calories,
				Macros: MacrosResponse{
					Carbs:   meal.Carbs,
					Protein: meal.Protein,
					Fat:     meal.Fat,
				},
				TotalTime: meal.TotalTimeMinutes,
			})
		}

		for _, exercise := range day.Exercises {
			entry.SelectedExercises = append(entry.SelectedExercises, ExerciseResponse{
				Name:                    exercise.Name,
				Type:                    exercise.ActivityType,
				Location:                exercise.Location,
				Duration:                exercise.DurationMinutes,
				EstimatedCaloriesBurned: exercise.EstimatedCaloriesBurned,
			})
		}

		plan = append(plan, entry)
	}

	return OptimizeResponse{
		PlanID:  uuid.New(),
		Status:  result.Status,
		Metrics: userMetrics.Rounded(),
		Plan:    plan,
		WeeklyInfo: WeeklyInfoResponse{
			FreeTimeWeek:       result.Weekly.FreeTimeWeek,
			AvgFreeTimeUsed:    result.Weekly.AvgFreeTimeUsed,
			AvgWorkoutDuration: result.Weekly.AvgWorkoutDuration,
			MealsPerDay:        result.Weekly.MealsPerDay,
			AvgNetCalories:     result.Weekly.AvgNetCalories,
		},
		Recommendations: result.Recommendations,
	}
}
