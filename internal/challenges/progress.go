// Package challenges holds the challenge catalog and the pure functions that
// derive progress, streak and completion from a user's daily record.
package challenges

import (
	"math"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
)

type DayStatus string

const (
	DayFuture    DayStatus = "future"
	DayCurrent   DayStatus = "current"
	DayCompleted DayStatus = "completed"
	DayMissed    DayStatus = "missed"
)

// Join enrolls the user in a challenge starting at the given time
func Join(c models.Challenge, at time.Time) models.UserChallenge {
	return models.UserChallenge{
		ChallengeID: c.ID,
		StartDate:   at,
		Progress:    []int{},
		Completed:   false,
		Streak:      0,
	}
}

// CompletedDays counts the days marked done
func CompletedDays(uc models.UserChallenge) int {
	sum := 0
	for _, d := range uc.Progress {
		sum += d
	}
	return sum
}

// ProgressPercent is the share of recorded days that were completed. The
// denominator is the number of recorded days, not the challenge duration.
func ProgressPercent(uc models.UserChallenge) int {
	if len(uc.Progress) == 0 {
		return 0
	}
	return roundHalfUp(float64(CompletedDays(uc)) / float64(len(uc.Progress)) * 100)
}

// RecordDay marks dayIndex as completed or missed and returns the updated
// enrollment. Missing days before dayIndex are filled with 0. The input is
// never modified. A negative dayIndex returns an unchanged copy.
func RecordDay(uc models.UserChallenge, dayIndex int, completed bool, c models.Challenge) models.UserChallenge {
	size := len(uc.Progress)
	if dayIndex >= size {
		size = dayIndex + 1
	}
	progress := make([]int, size)
	copy(progress, uc.Progress)

	out := uc
	out.Progress = progress
	if dayIndex < 0 {
		return out
	}

	if completed {
		progress[dayIndex] = 1
	} else {
		progress[dayIndex] = 0
	}

	out.Streak = Streak(progress)
	out.Completed = IsComplete(progress, c)
	return out
}

// Streak counts consecutive completed days backward from the last recorded day.
func Streak(progress []int) int {
	streak := 0
	for i := len(progress) - 1; i >= 0; i-- {
		if progress[i] != 1 {
			break
		}
		streak++
	}
	return streak
}

// IsComplete reports whether the whole duration has been recorded and at least
// 80% of the duration was completed.
func IsComplete(progress []int, c models.Challenge) bool {
	if len(progress) < c.Duration {
		return false
	}
	sum := 0
	for _, d := range progress {
		sum += d
	}
	return float64(sum) >= float64(c.Duration)*constants.ChallengeCompletionRatio
}

// CurrentDay is the 1-based day the user is on, capped at the duration
func CurrentDay(uc models.UserChallenge, c models.Challenge) int {
	day := len(uc.Progress) + 1
	if day > c.Duration {
		return c.Duration
	}
	return day
}

// StatusOf reports how a given day of the challenge looks to the user
func StatusOf(uc *models.UserChallenge, dayIndex int) DayStatus {
	if uc == nil {
		return DayFuture
	}
	if dayIndex >= len(uc.Progress) {
		return DayCurrent
	}
	if uc.Progress[dayIndex] == 1 {
		return DayCompleted
	}
	return DayMissed
}

// Find returns the enrollment for a challenge id, if any
func Find(ucs []models.UserChallenge, challengeID string) (models.UserChallenge, int, bool) {
	for i, uc := range ucs {
		if uc.ChallengeID == challengeID {
			return uc, i, true
		}
	}
	return models.UserChallenge{}, -1, false
}

// Active pairs every unfinished enrollment with its catalog entry. Enrollments
// pointing at unknown challenges are skipped.
func Active(ucs []models.UserChallenge) []Enrollment {
	var out []Enrollment
	for _, uc := range ucs {
		if uc.Completed {
			continue
		}
		c, ok := ByID(uc.ChallengeID)
		if !ok {
			continue
		}
		out = append(out, Enrollment{UserChallenge: uc, Challenge: c})
	}
	return out
}

// Enrollment joins a user challenge to its catalog data
type Enrollment struct {
	UserChallenge models.UserChallenge
	Challenge     models.Challenge
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
