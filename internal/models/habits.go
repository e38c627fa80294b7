package models

import "fmt"

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// SleepQualities lists the accepted values from worst to best
var SleepQualities = []SleepQuality{SleepPoor, SleepFair, SleepGood, SleepExcellent}

func (q SleepQuality) Valid() bool {
	for _, v := range SleepQualities {
		if q == v {
			return true
		}
	}
	return false
}

// ParseSleepQuality converts user input into a SleepQuality
func ParseSleepQuality(s string) (SleepQuality, error) {
	q := SleepQuality(s)
	if !q.Valid() {
		return "", fmt.Errorf("invalid sleep quality %q (expected poor, fair, good or excellent)", s)
	}
	return q, nil
}

type ExerciseIntensity string

const (
	IntensityLight    ExerciseIntensity = "light"
	IntensityModerate ExerciseIntensity = "moderate"
	IntensityVigorous ExerciseIntensity = "vigorous"
)

var ExerciseIntensities = []ExerciseIntensity{IntensityLight, IntensityModerate, IntensityVigorous}

func (i ExerciseIntensity) Valid() bool {
	for _, v := range ExerciseIntensities {
		if i == v {
			return true
		}
	}
	return false
}

// ParseExerciseIntensity converts user input into an ExerciseIntensity
func ParseExerciseIntensity(s string) (ExerciseIntensity, error) {
	i := ExerciseIntensity(s)
	if !i.Valid() {
		return "", fmt.Errorf("invalid exercise intensity %q (expected light, moderate or vigorous)", s)
	}
	return i, nil
}

type Sleep struct {
	Hours   float64      `json:"hours" yaml:"hours"`
	Quality SleepQuality `json:"quality" yaml:"quality"`
}

type Exercise struct {
	Frequency float64           `json:"frequency" yaml:"frequency"` // days per week
	Intensity ExerciseIntensity `json:"intensity" yaml:"intensity"`
	Duration  float64           `json:"duration" yaml:"duration"` // minutes per session
}

type Nutrition struct {
	MealsPerDay  float64 `json:"meals_per_day" yaml:"meals_per_day"`
	WaterGlasses float64 `json:"water_glasses" yaml:"water_glasses"`
	Fruits       float64 `json:"fruits" yaml:"fruits"`
	Vegetables   float64 `json:"vegetables" yaml:"vegetables"`
}

type MentalHealth struct {
	StressLevel        float64 `json:"stress_level" yaml:"stress_level"` // 1-10 scale
	MindfulnessMinutes float64 `json:"mindfulness_minutes" yaml:"mindfulness_minutes"`
	SocialConnections  float64 `json:"social_connections" yaml:"social_connections"` // interactions per week
}

type Productivity struct {
	FocusHours      float64 `json:"focus_hours" yaml:"focus_hours"`
	GoalsCompleted  float64 `json:"goals_completed" yaml:"goals_completed"`
	ScreenTimeHours float64 `json:"screen_time_hours" yaml:"screen_time_hours"`
}

// HabitsData is the user's current self-reported snapshot. A new submission
// replaces the previous one wholesale.
type HabitsData struct {
	Sleep        Sleep        `json:"sleep" yaml:"sleep"`
	Exercise     Exercise     `json:"exercise" yaml:"exercise"`
	Nutrition    Nutrition    `json:"nutrition" yaml:"nutrition"`
	MentalHealth MentalHealth `json:"mental_health" yaml:"mental_health"`
	Productivity Productivity `json:"productivity" yaml:"productivity"`
}

// DefaultHabits returns the starting values offered by the habit form
func DefaultHabits() HabitsData {
	return HabitsData{
		Sleep:        Sleep{Hours: 7, Quality: SleepGood},
		Exercise:     Exercise{Frequency: 3, Intensity: IntensityModerate, Duration: 30},
		Nutrition:    Nutrition{MealsPerDay: 3, WaterGlasses: 6, Fruits: 2, Vegetables: 3},
		MentalHealth: MentalHealth{StressLevel: 5, MindfulnessMinutes: 10, SocialConnections: 5},
		Productivity: Productivity{FocusHours: 4, GoalsCompleted: 2, ScreenTimeHours: 6},
	}
}
