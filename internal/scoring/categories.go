package scoring

import (
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
)

type CategoryKey string

const (
	CategorySleep        CategoryKey = "sleep"
	CategoryExercise     CategoryKey = "exercise"
	CategoryNutrition    CategoryKey = "nutrition"
	CategoryMentalHealth CategoryKey = "mental_health"
	CategoryProductivity CategoryKey = "productivity"
)

// Category describes one scored habit area for display
type Category struct {
	Key         CategoryKey
	Title       string
	Icon        string
	Max         int
	Description string
	Improvement string
}

// Categories is the fixed display order of the breakdown
var Categories = []Category{
	{CategorySleep, "Sleep", "😴", constants.MaxSleepScore, "Rest & Recovery", "Aim for 7-9 hours of quality sleep"},
	{CategoryExercise, "Exercise", "💪", constants.MaxExerciseScore, "Physical Activity", "Try 30 minutes of activity daily"},
	{CategoryNutrition, "Nutrition", "🥗", constants.MaxNutritionScore, "Healthy Eating", "Eat more fruits and vegetables"},
	{CategoryMentalHealth, "Mental Health", "🧘", constants.MaxMentalHealthScore, "Mindfulness & Stress", "Practice meditation or deep breathing"},
	{CategoryProductivity, "Productivity", "⚡", constants.MaxProductivityScore, "Focus & Goals", "Set daily goals and minimize distractions"},
}

// Value picks the category's entry out of a breakdown
func (c Category) Value(b models.Breakdown) int {
	switch c.Key {
	case CategorySleep:
		return b.Sleep
	case CategoryExercise:
		return b.Exercise
	case CategoryNutrition:
		return b.Nutrition
	case CategoryMentalHealth:
		return b.MentalHealth
	case CategoryProductivity:
		return b.Productivity
	default:
		return 0
	}
}

// Tier groups scores into presentation bands that share the level thresholds.
type Tier int

const (
	TierLow Tier = iota
	TierFair
	TierGood
	TierExcellent
)

// TierFor returns the band for a 0-100 score
func TierFor(score int) Tier {
	switch {
	case score >= constants.LevelExpertMin:
		return TierExcellent
	case score >= constants.LevelAdvancedMin:
		return TierGood
	case score >= constants.LevelIntermediateMin:
		return TierFair
	default:
		return TierLow
	}
}

// Color is the ANSI 256 color used for the tier
func (t Tier) Color() string {
	switch t {
	case TierExcellent:
		return "36" // emerald
	case TierGood:
		return "33" // blue
	case TierFair:
		return "214" // amber
	default:
		return "204" // rose
	}
}
