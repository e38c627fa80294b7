package models

import "time"

type BadgeCategory string

const (
	BadgeStreak    BadgeCategory = "streak"
	BadgeScore     BadgeCategory = "score"
	BadgeChallenge BadgeCategory = "challenge"
	BadgeMilestone BadgeCategory = "milestone"
)

// BadgeCategories is the display order used by the profile view
var BadgeCategories = []BadgeCategory{BadgeScore, BadgeStreak, BadgeChallenge, BadgeMilestone}

// Badge is a catalog entry or, when UnlockedAt is set, a badge the user owns.
// UnlockedAt is written once and never changed afterwards.
type Badge struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Icon        string        `json:"icon" yaml:"icon"`
	Category    BadgeCategory `json:"category" yaml:"category"`
	UnlockedAt  *time.Time    `json:"unlocked_at,omitempty" yaml:"unlocked_at,omitempty"`
}
