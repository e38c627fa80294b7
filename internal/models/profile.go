package models

import "time"

type UserProfile struct {
	Name                string    `json:"name" yaml:"name"`
	JoinDate            time.Time `json:"join_date" yaml:"join_date"`
	TotalScore          int       `json:"total_score" yaml:"total_score"`
	CurrentStreak       int       `json:"current_streak" yaml:"current_streak"`
	LongestStreak       int       `json:"longest_streak" yaml:"longest_streak"`
	Badges              []Badge   `json:"badges" yaml:"badges"`
	CompletedChallenges int       `json:"completed_challenges" yaml:"completed_challenges"`
}

// HasBadge reports whether a badge with the given id is already unlocked
func (p UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// WeeklyLog is a snapshot of one week's habits, score and challenges
type WeeklyLog struct {
	Week       string          `json:"week" yaml:"week"` // YYYY-WW format
	Score      int             `json:"score" yaml:"score"`
	Habits     HabitsData      `json:"habits" yaml:"habits"`
	Challenges []UserChallenge `json:"challenges" yaml:"challenges"`
	Notes      string          `json:"notes" yaml:"notes"`
}
