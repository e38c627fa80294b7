package validation

import (
	"fmt"

	"github.com/julianstephens/thrive/internal/badges"
	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/models"
)

// ValidateUserChallenges checks stored enrollments against the catalog and
// against the values RecordDay can produce.
func (v *Validator) ValidateUserChallenges(ucs []models.UserChallenge) Result {
	var res Result
	seen := make(map[string]bool, len(ucs))

	for _, uc := range ucs {
		if seen[uc.ChallengeID] {
			res.add(Issue{
				Type:        IssueDuplicateChallenge,
				Field:       uc.ChallengeID,
				Description: fmt.Sprintf("challenge %s is joined more than once", uc.ChallengeID),
			})
			continue
		}
		seen[uc.ChallengeID] = true

		c, ok := challenges.ByID(uc.ChallengeID)
		if !ok {
			res.add(Issue{
				Type:        IssueUnknownChallenge,
				Field:       uc.ChallengeID,
				Description: fmt.Sprintf("challenge %s is not in the catalog", uc.ChallengeID),
			})
			continue
		}

		if len(uc.Progress) > c.Duration {
			res.add(Issue{
				Type:        IssueProgressTooLong,
				Field:       uc.ChallengeID,
				Description: fmt.Sprintf("%s has %d recorded days but lasts %d", c.Title, len(uc.Progress), c.Duration),
			})
		}

		for i, d := range uc.Progress {
			if d != 0 && d != 1 {
				res.add(Issue{
					Type:        IssueInvalidProgress,
					Field:       fmt.Sprintf("%s[%d]", uc.ChallengeID, i),
					Description: fmt.Sprintf("%s day %d has value %d, expected 0 or 1", c.Title, i+1, d),
				})
			}
		}

		if streak := challenges.Streak(uc.Progress); uc.Streak != streak {
			res.add(Issue{
				Type:        IssueInconsistentState,
				Field:       uc.ChallengeID + ".streak",
				Description: fmt.Sprintf("%s stores streak %d but its progress gives %d", c.Title, uc.Streak, streak),
			})
		}
		if done := challenges.IsComplete(uc.Progress, c); uc.Completed != done {
			res.add(Issue{
				Type:        IssueInconsistentState,
				Field:       uc.ChallengeID + ".completed",
				Description: fmt.Sprintf("%s stores completed=%t but its progress gives %t", c.Title, uc.Completed, done),
			})
		}
	}
	return res
}

// ValidateProfile checks the badge collection for unknown or repeated ids.
func (v *Validator) ValidateProfile(p models.UserProfile) Result {
	var res Result
	seen := make(map[string]bool, len(p.Badges))

	for _, b := range p.Badges {
		if seen[b.ID] {
			res.add(Issue{
				Type:        IssueDuplicateBadge,
				Field:       b.ID,
				Description: fmt.Sprintf("badge %s is unlocked more than once", b.ID),
			})
			continue
		}
		seen[b.ID] = true

		if _, ok := badges.ByID(b.ID); !ok {
			res.add(Issue{
				Type:        IssueUnknownBadge,
				Field:       b.ID,
				Description: fmt.Sprintf("badge %s is not in the catalog", b.ID),
			})
		}
		if b.UnlockedAt == nil {
			res.add(Issue{
				Type:        IssueMissingUnlockedTime,
				Field:       b.ID,
				Description: fmt.Sprintf("badge %s has no unlock time", b.ID),
			})
		}
	}

	if p.LongestStreak < p.CurrentStreak {
		res.add(Issue{
			Type:        IssueInconsistentState,
			Field:       "longest_streak",
			Description: fmt.Sprintf("longest streak %d is below current streak %d", p.LongestStreak, p.CurrentStreak),
		})
	}
	return res
}
