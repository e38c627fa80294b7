package validation

import (
	"fmt"
	"math"

	"github.com/julianstephens/thrive/internal/models"
)

// Field describes one numeric habit input and the range the entry form allows.
type Field struct {
	Key   string
	Label string
	Unit  string
	Min   float64
	Max   float64
	Step  float64
	ref   func(*models.HabitsData) *float64
}

// Get reads the field from h.
func (f Field) Get(h models.HabitsData) float64 {
	return *f.ref(&h)
}

// Set writes v into the field of h.
func (f Field) Set(h *models.HabitsData, v float64) {
	*f.ref(h) = v
}

// Clamp limits v to the field range.
func (f Field) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return f.Min
	}
	return math.Max(f.Min, math.Min(f.Max, v))
}

// Adjust moves v by n steps and clamps the result.
func (f Field) Adjust(v float64, n int) float64 {
	return f.Clamp(v + float64(n)*f.Step)
}

// HabitFields lists every numeric habit input in display order.
var HabitFields = []Field{
	{"sleep.hours", "Sleep", "hours", 3, 12, 0.5, func(h *models.HabitsData) *float64 { return &h.Sleep.Hours }},
	{"exercise.frequency", "Workouts", "per week", 0, 7, 1, func(h *models.HabitsData) *float64 { return &h.Exercise.Frequency }},
	{"exercise.duration", "Workout length", "minutes", 10, 120, 5, func(h *models.HabitsData) *float64 { return &h.Exercise.Duration }},
	{"nutrition.meals_per_day", "Meals", "per day", 1, 6, 1, func(h *models.HabitsData) *float64 { return &h.Nutrition.MealsPerDay }},
	{"nutrition.water_glasses", "Water", "glasses", 1, 12, 1, func(h *models.HabitsData) *float64 { return &h.Nutrition.WaterGlasses }},
	{"nutrition.fruits", "Fruits", "servings", 0, 6, 1, func(h *models.HabitsData) *float64 { return &h.Nutrition.Fruits }},
	{"nutrition.vegetables", "Vegetables", "servings", 0, 6, 1, func(h *models.HabitsData) *float64 { return &h.Nutrition.Vegetables }},
	{"mental_health.stress_level", "Stress", "1-10", 1, 10, 1, func(h *models.HabitsData) *float64 { return &h.MentalHealth.StressLevel }},
	{"mental_health.mindfulness_minutes", "Mindfulness", "minutes", 0, 60, 5, func(h *models.HabitsData) *float64 { return &h.MentalHealth.MindfulnessMinutes }},
	{"mental_health.social_connections", "Social connections", "per week", 0, 15, 1, func(h *models.HabitsData) *float64 { return &h.MentalHealth.SocialConnections }},
	{"productivity.focus_hours", "Focus", "hours", 0, 12, 0.5, func(h *models.HabitsData) *float64 { return &h.Productivity.FocusHours }},
	{"productivity.goals_completed", "Goals completed", "per day", 0, 10, 1, func(h *models.HabitsData) *float64 { return &h.Productivity.GoalsCompleted }},
	{"productivity.screen_time_hours", "Screen time", "hours", 0, 12, 0.5, func(h *models.HabitsData) *float64 { return &h.Productivity.ScreenTimeHours }},
}

// FieldByKey looks up a habit field by its dotted key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range HabitFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateHabits reports every habit value outside the entry form's range
// and every unknown sleep quality or exercise intensity.
func (v *Validator) ValidateHabits(h models.HabitsData) Result {
	var res Result
	for _, f := range HabitFields {
		val := f.Get(h)
		if math.IsNaN(val) || val < f.Min || val > f.Max {
			res.add(Issue{
				Type:        IssueOutOfRange,
				Field:       f.Key,
				Description: fmt.Sprintf("%s is %g, expected %g-%g %s", f.Label, val, f.Min, f.Max, f.Unit),
			})
		}
	}
	if !h.Sleep.Quality.Valid() {
		res.add(Issue{
			Type:        IssueInvalidEnum,
			Field:       "sleep.quality",
			Description: fmt.Sprintf("unknown sleep quality %q", h.Sleep.Quality),
		})
	}
	if !h.Exercise.Intensity.Valid() {
		res.add(Issue{
			Type:        IssueInvalidEnum,
			Field:       "exercise.intensity",
			Description: fmt.Sprintf("unknown exercise intensity %q", h.Exercise.Intensity),
		})
	}
	return res
}

// ClampHabits pulls every numeric value into range and replaces unknown
// enum values with the defaults.
func ClampHabits(h models.HabitsData) models.HabitsData {
	for _, f := range HabitFields {
		f.Set(&h, f.Clamp(f.Get(h)))
	}
	def := models.DefaultHabits()
	if !h.Sleep.Quality.Valid() {
		h.Sleep.Quality = def.Sleep.Quality
	}
	if !h.Exercise.Intensity.Valid() {
		h.Exercise.Intensity = def.Exercise.Intensity
	}
	return h
}
