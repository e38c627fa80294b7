package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type ChallengeCategory string

const (
	ChallengeHydration    ChallengeCategory = "hydration"
	ChallengeExercise     ChallengeCategory = "exercise"
	ChallengeMindfulness  ChallengeCategory = "mindfulness"
	ChallengeProductivity ChallengeCategory = "productivity"
)

// Challenge is read-only catalog data
type Challenge struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description" yaml:"description"`
	Duration     int               `json:"duration" yaml:"duration"` // days
	Difficulty   Difficulty        `json:"difficulty" yaml:"difficulty"`
	Category     ChallengeCategory `json:"category" yaml:"category"`
	DailyGoal    string            `json:"daily_goal" yaml:"daily_goal"`
	Reward       string            `json:"reward" yaml:"reward"`
	Participants int               `json:"participants" yaml:"participants"`
}

// UserChallenge is the user's enrollment in a catalog challenge. Progress is
// indexed by day offset from StartDate and holds 1 for a completed day, 0 otherwise.
type UserChallenge struct {
	ChallengeID string    `json:"challenge_id" yaml:"challenge_id"`
	StartDate   time.Time `json:"start_date" yaml:"start_date"`
	Progress    []int     `json:"progress" yaml:"progress"`
	Completed   bool      `json:"completed" yaml:"completed"`
	Streak      int       `json:"streak" yaml:"streak"`
}
