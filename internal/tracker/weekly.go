package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/thrive/internal/badges"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/storage"
)

// WeekResult is what recording a weekly snapshot produced
type WeekResult struct {
	Log       models.WeeklyLog
	Replaced  bool
	NewBadges []models.Badge
}

// LogWeek snapshots the current habits, score and challenges under the
// current week's key. An existing entry for the same week is replaced.
func (s *Service) LogWeek(notes string) (WeekResult, error) {
	var res WeekResult

	h, ok := s.repo.LoadHabits()
	if !ok {
		return res, ErrNoHabits
	}
	score, ok := s.CurrentScore()
	if !ok {
		return res, ErrNoHabits
	}

	at := s.now()
	res.Log = models.WeeklyLog{
		Week:       storage.WeekKey(at),
		Score:      score.Total,
		Habits:     h,
		Challenges: s.userChallenges(),
		Notes:      strings.TrimSpace(notes),
	}

	logs := s.weeklyLogs()
	kept := logs[:0]
	for _, l := range logs {
		if l.Week == res.Log.Week {
			res.Replaced = true
			continue
		}
		kept = append(kept, l)
	}
	logs = append(kept, res.Log)
	if err := s.repo.SaveWeeklyLogs(logs); err != nil {
		return res, fmt.Errorf("failed to save weekly logs: %w", err)
	}

	p, err := s.Profile()
	if err != nil {
		return res, err
	}
	res.NewBadges = badges.EvaluateMilestones(p, logs, at)
	if len(res.NewBadges) > 0 {
		p.Badges = badges.Merge(p.Badges, res.NewBadges)
		if err := s.repo.SaveProfile(p); err != nil {
			return res, fmt.Errorf("failed to save profile: %w", err)
		}
	}

	logger.Info("Logged week", "week", res.Log.Week, "score", res.Log.Score, "replaced", res.Replaced)
	return res, nil
}

// History returns weekly snapshots, newest first. A limit of zero or less
// returns all of them.
func (s *Service) History(limit int) []models.WeeklyLog {
	logs := s.weeklyLogs()
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Week > logs[j].Week
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

// RecentHistory is History capped to the profile view's limit.
func (s *Service) RecentHistory() []models.WeeklyLog {
	return s.History(constants.RecentLogLimit)
}
