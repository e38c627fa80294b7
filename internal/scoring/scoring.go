// Package scoring maps a habits snapshot to a bounded wellness score.
//
// Every function here is total: out-of-range input is not clamped, but the
// arithmetic stays defined because all divisors are constants.
package scoring

import (
	"math"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
)

// nowFunc stamps ScoreData.LastUpdated; replaced in tests
var nowFunc = time.Now

var sleepQualityPoints = map[models.SleepQuality]float64{
	models.SleepPoor:      2,
	models.SleepFair:      5,
	models.SleepGood:      8,
	models.SleepExcellent: 10,
}

var intensityPoints = map[models.ExerciseIntensity]float64{
	models.IntensityLight:    2,
	models.IntensityModerate: 4,
	models.IntensityVigorous: 5,
}

// SleepScore returns 0-25: an hours band worth 4-15 plus a quality rating worth 2-10.
func SleepScore(s models.Sleep) float64 {
	var hours float64
	switch {
	case s.Hours >= 7 && s.Hours <= 9:
		hours = 15
	case s.Hours >= 6 && s.Hours <= 10:
		hours = 12
	case s.Hours >= 5 && s.Hours <= 11:
		hours = 8
	default:
		hours = 4
	}
	// Unknown quality values contribute nothing.
	return hours + sleepQualityPoints[s.Quality]
}

// ExerciseScore returns 0-25 from frequency (0-15), intensity (2-5) and duration (0-5).
func ExerciseScore(e models.Exercise) float64 {
	frequency := math.Min(e.Frequency*2.5, 15)
	duration := math.Min(e.Duration/12, 5)
	return frequency + intensityPoints[e.Intensity] + duration
}

// NutritionScore returns 0-25 from meals (0-8), water (0-8) and produce (0-9).
func NutritionScore(n models.Nutrition) float64 {
	meals := 8.0
	if n.MealsPerDay < 3 {
		meals = n.MealsPerDay * 8 / 3
	}
	water := math.Min(n.WaterGlasses, 8)
	produce := math.Min((n.Fruits+n.Vegetables)*1.5, 9)
	return meals + water + produce
}

// MentalHealthScore returns 0-15. Lower stress scores higher.
func MentalHealthScore(m models.MentalHealth) float64 {
	stress := math.Max(0, 6-(m.StressLevel-1)*0.67)
	mindfulness := math.Min(m.MindfulnessMinutes/6, 5)
	social := math.Min(m.SocialConnections*0.5, 4)
	return stress + mindfulness + social
}

// ProductivityScore returns 0-10. Screen time above 8 hours earns nothing.
func ProductivityScore(p models.Productivity) float64 {
	focus := math.Min(p.FocusHours*0.5, 5)
	goals := math.Min(p.GoalsCompleted, 3)
	screen := 0.0
	if p.ScreenTimeHours <= 8 {
		screen = math.Min(2, (8-p.ScreenTimeHours)*0.25)
	}
	return focus + goals + screen
}

// Compute scores a habits snapshot. Total is the rounded sum of the unrounded
// category scores; each breakdown entry is rounded on its own, so the
// breakdown may not add up to Total exactly.
func Compute(h models.HabitsData) models.ScoreData {
	sleep := SleepScore(h.Sleep)
	exercise := ExerciseScore(h.Exercise)
	nutrition := NutritionScore(h.Nutrition)
	mental := MentalHealthScore(h.MentalHealth)
	productivity := ProductivityScore(h.Productivity)

	total := Round(sleep + exercise + nutrition + mental + productivity)

	return models.ScoreData{
		Total: total,
		Breakdown: models.Breakdown{
			Sleep:        Round(sleep),
			Exercise:     Round(exercise),
			Nutrition:    Round(nutrition),
			MentalHealth: Round(mental),
			Productivity: Round(productivity),
		},
		Level:       LevelFor(total),
		LastUpdated: nowFunc(),
	}
}

// LevelFor maps a total score to its level. Thresholds are inclusive.
func LevelFor(total int) models.Level {
	switch {
	case total >= constants.LevelExpertMin:
		return models.LevelExpert
	case total >= constants.LevelAdvancedMin:
		return models.LevelAdvanced
	case total >= constants.LevelIntermediateMin:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}

// Round rounds half up (-2.5 becomes -2), not half away from zero.
func Round(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}
