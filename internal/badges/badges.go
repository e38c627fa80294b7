// Package badges decides which achievements a user has newly earned and keeps
// the user's collection free of duplicates.
package badges

import (
	"sort"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
)

// Evaluate returns the badges newly earned for the given score, streak and
// just-completed challenges. Badges already present in unlocked are never
// granted again, and every grant is stamped with at.
//
// Score and streak badges are each an exclusive chain: only the highest
// matching tier that is still locked is considered, so a first score of 95
// yields perfect-balance alone and never the lower score badges.
func Evaluate(score, streak int, justCompleted []string, unlocked []models.Badge, at time.Time) []models.Badge {
	owned := make(map[string]bool, len(unlocked))
	for _, b := range unlocked {
		owned[b.ID] = true
	}

	var granted []models.Badge
	grant := func(id string) {
		b, ok := ByID(id)
		if !ok {
			return
		}
		stamp := at
		b.UnlockedAt = &stamp
		granted = append(granted, b)
		owned[id] = true
	}

	switch {
	case score >= constants.ScorePerfectBalanceMin && !owned[PerfectBalanceID]:
		grant(PerfectBalanceID)
	case score >= constants.ScoreWarriorMin && !owned[WellnessWarriorID]:
		grant(WellnessWarriorID)
	case score >= constants.ScoreExplorerMin && !owned[ScoreExplorerID]:
		grant(ScoreExplorerID)
	}

	switch {
	case streak >= constants.StreakChampionMin && !owned[StreakChampionID]:
		grant(StreakChampionID)
	case streak >= constants.StreakStarterMin && !owned[StreakStarterID]:
		grant(StreakStarterID)
	}

	for _, challengeID := range justCompleted {
		badgeID, ok := ChallengeBadge(challengeID)
		if !ok || owned[badgeID] {
			continue
		}
		grant(badgeID)
	}

	return granted
}

// EvaluateMilestones grants the first-week badge once the user has been
// tracking for a week and has logged at least one weekly snapshot.
func EvaluateMilestones(profile models.UserProfile, logs []models.WeeklyLog, at time.Time) []models.Badge {
	if profile.HasBadge(FirstWeekID) || len(logs) == 0 || profile.JoinDate.IsZero() {
		return nil
	}
	if at.Sub(profile.JoinDate) < constants.FirstWeekDays*24*time.Hour {
		return nil
	}
	b, ok := ByID(FirstWeekID)
	if !ok {
		return nil
	}
	stamp := at
	b.UnlockedAt = &stamp
	return []models.Badge{b}
}

// Merge adds granted badges to an existing collection. Ids already present
// keep their original unlock time.
func Merge(existing, granted []models.Badge) []models.Badge {
	out := make([]models.Badge, 0, len(existing)+len(granted))
	seen := make(map[string]bool, len(existing)+len(granted))
	for _, b := range existing {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	for _, b := range granted {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	return out
}

// SortRecent orders badges newest first. Badges missing an unlock time compare
// equal to everything, and equal elements keep their relative order.
func SortRecent(in []models.Badge) []models.Badge {
	out := make([]models.Badge, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].UnlockedAt, out[j].UnlockedAt
		if a == nil || b == nil {
			return false
		}
		return a.After(*b)
	})
	return out
}

// Locked returns the catalog badges not present in unlocked
func Locked(unlocked []models.Badge) []models.Badge {
	owned := make(map[string]bool, len(unlocked))
	for _, b := range unlocked {
		owned[b.ID] = true
	}
	var out []models.Badge
	for _, b := range catalog {
		if !owned[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// CategoryCount is the unlocked/total tally for one badge category
type CategoryCount struct {
	Category models.BadgeCategory
	Unlocked int
	Total    int
}

// CountByCategory tallies the collection against the catalog in display order
func CountByCategory(unlocked []models.Badge) []CategoryCount {
	owned := make(map[string]bool, len(unlocked))
	for _, b := range unlocked {
		owned[b.ID] = true
	}
	counts := make([]CategoryCount, 0, len(models.BadgeCategories))
	for _, cat := range models.BadgeCategories {
		c := CategoryCount{Category: cat}
		for _, b := range catalog {
			if b.Category != cat {
				continue
			}
			c.Total++
			if owned[b.ID] {
				c.Unlocked++
			}
		}
		counts = append(counts, c)
	}
	return counts
}
