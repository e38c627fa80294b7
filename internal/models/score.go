package models

import "time"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Breakdown holds the independently rounded category sub-scores. Their sum
// can differ from ScoreData.Total by rounding noise.
type Breakdown struct {
	Sleep        int `json:"sleep" yaml:"sleep"`
	Exercise     int `json:"exercise" yaml:"exercise"`
	Nutrition    int `json:"nutrition" yaml:"nutrition"`
	MentalHealth int `json:"mental_health" yaml:"mental_health"`
	Productivity int `json:"productivity" yaml:"productivity"`
}

// Sum adds the rounded category scores
func (b Breakdown) Sum() int {
	return b.Sleep + b.Exercise + b.Nutrition + b.MentalHealth + b.Productivity
}

type ScoreData struct {
	Total       int       `json:"total" yaml:"total"`
	Breakdown   Breakdown `json:"breakdown" yaml:"breakdown"`
	Level       Level     `json:"level" yaml:"level"`
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`
}
