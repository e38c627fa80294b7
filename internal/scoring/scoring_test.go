package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/thrive/internal/models"
)

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func bestHabits() models.HabitsData {
	return models.HabitsData{
		Sleep:        models.Sleep{Hours: 8, Quality: models.SleepExcellent},
		Exercise:     models.Exercise{Frequency: 7, Intensity: models.IntensityVigorous, Duration: 60},
		Nutrition:    models.Nutrition{MealsPerDay: 3, WaterGlasses: 8, Fruits: 3, Vegetables: 3},
		MentalHealth: models.MentalHealth{StressLevel: 1, MindfulnessMinutes: 30, SocialConnections: 8},
		Productivity: models.Productivity{FocusHours: 10, GoalsCompleted: 3, ScreenTimeHours: 0},
	}
}

func TestSleepScore(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		quality models.SleepQuality
		want    float64
	}{
		{"optimal lower bound excellent", 7, models.SleepExcellent, 25},
		{"optimal upper bound excellent", 9, models.SleepExcellent, 25},
		{"optimal good", 8, models.SleepGood, 23},
		{"six hours fair", 6, models.SleepFair, 17},
		{"ten hours fair", 10, models.SleepFair, 17},
		{"five hours poor", 5, models.SleepPoor, 10},
		{"eleven hours good", 11, models.SleepGood, 16},
		{"minimum poor", 3, models.SleepPoor, 6},
		{"twelve hours excellent", 12, models.SleepExcellent, 14},
		{"just under optimal", 6.5, models.SleepExcellent, 22},
		{"unknown quality", 8, models.SleepQuality("great"), 15},
		{"negative hours", -2, models.SleepPoor, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepScore(models.Sleep{Hours: tt.hours, Quality: tt.quality})
			if got != tt.want {
				t.Errorf("SleepScore(%v, %s) = %v, want %v", tt.hours, tt.quality, got, tt.want)
			}
		})
	}
}

func TestSleepScore_MaximumOnlyWhenOptimal(t *testing.T) {
	for hours := 3.0; hours <= 12; hours += 0.5 {
		for _, q := range models.SleepQualities {
			got := SleepScore(models.Sleep{Hours: hours, Quality: q})
			optimal := hours >= 7 && hours <= 9 && q == models.SleepExcellent
			if optimal && got != 25 {
				t.Errorf("SleepScore(%v, %s) = %v, want 25", hours, q, got)
			}
			if !optimal && got >= 25 {
				t.Errorf("SleepScore(%v, %s) = %v, want less than 25", hours, q, got)
			}
		}
	}
}

func TestExerciseScore(t *testing.T) {
	tests := []struct {
		name string
		in   models.Exercise
		want float64
	}{
		{"maxed out", models.Exercise{Frequency: 7, Intensity: models.IntensityVigorous, Duration: 120}, 25},
		{"frequency capped", models.Exercise{Frequency: 6, Intensity: models.IntensityLight, Duration: 0}, 17},
		{"typical week", models.Exercise{Frequency: 3, Intensity: models.IntensityModerate, Duration: 30}, 14},
		{"no exercise", models.Exercise{Frequency: 0, Intensity: models.IntensityLight, Duration: 0}, 2},
		{"duration capped", models.Exercise{Frequency: 2, Intensity: models.IntensityModerate, Duration: 90}, 14},
		{"unknown intensity", models.Exercise{Frequency: 2, Intensity: "extreme", Duration: 12}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExerciseScore(tt.in); got != tt.want {
				t.Errorf("ExerciseScore(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNutritionScore(t *testing.T) {
	tests := []struct {
		name string
		in   models.Nutrition
		want float64
	}{
		{"maxed out", models.Nutrition{MealsPerDay: 4, WaterGlasses: 12, Fruits: 6, Vegetables: 6}, 25},
		{"three meals", models.Nutrition{MealsPerDay: 3, WaterGlasses: 6, Fruits: 2, Vegetables: 3}, 21.5},
		{"no meals", models.Nutrition{MealsPerDay: 0, WaterGlasses: 0, Fruits: 0, Vegetables: 0}, 0},
		{"produce capped", models.Nutrition{MealsPerDay: 3, WaterGlasses: 0, Fruits: 4, Vegetables: 4}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NutritionScore(tt.in); got != tt.want {
				t.Errorf("NutritionScore(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	// Fewer than three meals scale linearly toward 8.
	got := NutritionScore(models.Nutrition{MealsPerDay: 1.5})
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("NutritionScore(1.5 meals) = %v, want 4", got)
	}
}

func TestMentalHealthScore(t *testing.T) {
	tests := []struct {
		name string
		in   models.MentalHealth
		want float64
	}{
		{"calm and connected", models.MentalHealth{StressLevel: 1, MindfulnessMinutes: 30, SocialConnections: 8}, 15},
		{"max stress floors at zero", models.MentalHealth{StressLevel: 10, MindfulnessMinutes: 0, SocialConnections: 0}, 0},
		{"mindfulness capped", models.MentalHealth{StressLevel: 1, MindfulnessMinutes: 60, SocialConnections: 0}, 11},
		{"social capped", models.MentalHealth{StressLevel: 1, MindfulnessMinutes: 0, SocialConnections: 15}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MentalHealthScore(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MentalHealthScore(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	// Stress 5: 6 - 4*0.67
	got := MentalHealthScore(models.MentalHealth{StressLevel: 5})
	if math.Abs(got-3.32) > 1e-9 {
		t.Errorf("MentalHealthScore(stress 5) = %v, want 3.32", got)
	}
}

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name string
		in   models.Productivity
		want float64
	}{
		{"maxed out", models.Productivity{FocusHours: 12, GoalsCompleted: 10, ScreenTimeHours: 0}, 10},
		{"screen time over eight", models.Productivity{FocusHours: 0, GoalsCompleted: 0, ScreenTimeHours: 8.5}, 0},
		{"screen time exactly eight", models.Productivity{FocusHours: 0, GoalsCompleted: 0, ScreenTimeHours: 8}, 0},
		{"screen time six", models.Productivity{FocusHours: 4, GoalsCompleted: 2, ScreenTimeHours: 6}, 4.5},
		{"no screen time", models.Productivity{FocusHours: 0, GoalsCompleted: 0, ScreenTimeHours: 0}, 2},
		{"one hour of screen time", models.Productivity{FocusHours: 0, GoalsCompleted: 0, ScreenTimeHours: 1}, 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductivityScore(tt.in); got != tt.want {
				t.Errorf("ProductivityScore(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompute_Best(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(t, at)

	got := Compute(bestHabits())
	if got.Total != 100 {
		t.Errorf("Total = %d, want 100", got.Total)
	}
	if got.Level != models.LevelExpert {
		t.Errorf("Level = %s, want expert", got.Level)
	}
	want := models.Breakdown{Sleep: 25, Exercise: 25, Nutrition: 25, MentalHealth: 15, Productivity: 10}
	if got.Breakdown != want {
		t.Errorf("Breakdown = %+v, want %+v", got.Breakdown, want)
	}
	if !got.LastUpdated.Equal(at) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, at)
	}
}

func TestCompute_DefaultsShowRoundingDrift(t *testing.T) {
	got := Compute(models.DefaultHabits())

	// 23 + 14 + 21.5 + 7.4867 + 4.5 = 70.4867
	if got.Total != 70 {
		t.Errorf("Total = %d, want 70", got.Total)
	}
	if got.Level != models.LevelAdvanced {
		t.Errorf("Level = %s, want advanced", got.Level)
	}
	want := models.Breakdown{Sleep: 23, Exercise: 14, Nutrition: 22, MentalHealth: 7, Productivity: 5}
	if got.Breakdown != want {
		t.Errorf("Breakdown = %+v, want %+v", got.Breakdown, want)
	}
	// Rounded parts add up to one more than the rounded whole.
	if got.Breakdown.Sum() != 71 {
		t.Errorf("Breakdown.Sum() = %d, want 71", got.Breakdown.Sum())
	}
}

func TestCompute_TotalAlwaysInRange(t *testing.T) {
	qualities := models.SleepQualities
	intensities := models.ExerciseIntensities

	for hours := 3.0; hours <= 12; hours += 1.5 {
		for _, q := range qualities {
			for _, in := range intensities {
				for freq := 0.0; freq <= 7; freq += 3.5 {
					for stress := 1.0; stress <= 10; stress += 3 {
						for screen := 0.0; screen <= 12; screen += 4 {
							h := models.HabitsData{
								Sleep:        models.Sleep{Hours: hours, Quality: q},
								Exercise:     models.Exercise{Frequency: freq, Intensity: in, Duration: 10 + freq*10},
								Nutrition:    models.Nutrition{MealsPerDay: 1 + freq/2, WaterGlasses: freq, Fruits: freq / 2, Vegetables: 6 - freq/2},
								MentalHealth: models.MentalHealth{StressLevel: stress, MindfulnessMinutes: stress * 6, SocialConnections: 15 - stress},
								Productivity: models.Productivity{FocusHours: screen, GoalsCompleted: stress, ScreenTimeHours: screen},
							}
							got := Compute(h)
							if got.Total < 0 || got.Total > 100 {
								t.Fatalf("Total = %d out of range for %+v", got.Total, h)
							}
							b := got.Breakdown
							if b.Sleep > 25 || b.Exercise > 25 || b.Nutrition > 25 || b.MentalHealth > 15 || b.Productivity > 10 {
								t.Fatalf("Breakdown %+v exceeds category maxima", b)
							}
							if got.Level != LevelFor(got.Total) {
								t.Fatalf("Level %s does not match total %d", got.Level, got.Total)
							}
						}
					}
				}
			}
		}
	}
}

func TestCompute_OutOfRangeInputStaysDefined(t *testing.T) {
	h := models.HabitsData{
		Sleep:        models.Sleep{Hours: -5, Quality: "unknown"},
		Exercise:     models.Exercise{Frequency: -3, Intensity: "", Duration: -60},
		Nutrition:    models.Nutrition{MealsPerDay: -2, WaterGlasses: -1, Fruits: -4, Vegetables: 0},
		MentalHealth: models.MentalHealth{StressLevel: 0, MindfulnessMinutes: -30, SocialConnections: -2},
		Productivity: models.Productivity{FocusHours: -1, GoalsCompleted: -1, ScreenTimeHours: -4},
	}

	got := Compute(h)
	if got.Level == "" {
		t.Error("Level should always be set")
	}
	// Stress below the scale earns more than the nominal maximum of 6.
	if s := MentalHealthScore(h.MentalHealth); math.IsNaN(s) {
		t.Error("MentalHealthScore returned NaN")
	}
	if got.Total >= 0 {
		t.Errorf("Total = %d, expected negative arithmetic result for negative input", got.Total)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		total int
		want  models.Level
	}{
		{100, models.LevelExpert},
		{85, models.LevelExpert},
		{84, models.LevelAdvanced},
		{70, models.LevelAdvanced},
		{69, models.LevelIntermediate},
		{55, models.LevelIntermediate},
		{54, models.LevelBeginner},
		{0, models.LevelBeginner},
		{-3, models.LevelBeginner},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.total); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.total, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
