package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestSummarize проверяет недельную сводку по первым семи дням.
func TestSummarize(t *testing.T) {
	profile := lossProfile(2, 4)

	days := make([]DayPlan, 9)
	for d := range days {
		days[d] = DayPlan{
			Day:           testNow.AddDate(0, 0, d),
			TotalTimeUsed: 60,
			NetCalories:   -100,
			Exercises: []PlannedExercise{
				{Name: "Running", DurationMinutes: 30, EstimatedCaloriesBurned: 300},
			},
		}
	}
	// Дни за пределами недели не должны влиять на средние.
	days[7].NetCalories = 10000
	days[8].TotalTimeUsed = 10000

	got := summarize(days, profile)
	want := WeeklySummary{
		FreeTimeWeek:       2 * 60 * 4,
		AvgFreeTimeUsed:    60,
		AvgWorkoutDuration: 30,
		MealsPerDay:        2,
		AvgNetCalories:     -100,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

// TestSummarizeShortHorizon проверяет усреднение по горизонту короче недели.
func TestSummarizeShortHorizon(t *testing.T) {
	profile := lossProfile(3, 2)

	days := []DayPlan{
		{TotalTimeUsed: 30, NetCalories: 1200},
		{TotalTimeUsed: 90, NetCalories: 1500},
	}

	got := summarize(days, profile)
	if got.AvgFreeTimeUsed != 60 {
		t.Fatalf("expected avg time 60, got %v", got.AvgFreeTimeUsed)
	}
	if got.AvgNetCalories != 1350 {
		t.Fatalf("expected avg net 1350, got %v", got.AvgNetCalories)
	}
	if got.AvgWorkoutDuration != 0 {
		t.Fatalf("expected avg workout 0, got %v", got.AvgWorkoutDuration)
	}
}

// TestSummarizeEmpty проверяет нулевые средние для пустого плана.
func TestSummarizeEmpty(t *testing.T) {
	profile := lossProfile(3, 2)

	got := summarize(nil, profile)
	if got.AvgFreeTimeUsed != 0 || got.AvgWorkoutDuration != 0 || got.AvgNetCalories != 0 {
		t.Fatalf("expected zeroed averages, got %+v", got)
	}
	if got.FreeTimeWeek != 2*60*2 {
		t.Fatalf("expected weekly free time from the profile, got %v", got.FreeTimeWeek)
	}
	if got.MealsPerDay != 3 {
		t.Fatalf("expected meals per day pass-through, got %d", got.MealsPerDay)
	}
}
