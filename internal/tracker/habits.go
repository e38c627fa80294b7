package tracker

import (
	"fmt"

	"github.com/julianstephens/thrive/internal/badges"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/scoring"
)

// SubmitResult is what saving a habits entry produced
type SubmitResult struct {
	Score     models.ScoreData
	Previous  *models.ScoreData
	NewBadges []models.Badge
}

// Habits returns the stored habits, or the defaults when none are stored.
func (s *Service) Habits() (models.HabitsData, bool) {
	if h, ok := s.repo.LoadHabits(); ok {
		return h, true
	}
	return models.DefaultHabits(), false
}

// SubmitHabits scores and stores a habits entry, then awards any badges the
// new score earns.
func (s *Service) SubmitHabits(h models.HabitsData) (SubmitResult, error) {
	var res SubmitResult
	if prev, ok := s.repo.LoadScore(); ok {
		res.Previous = &prev
	}

	res.Score = scoring.Compute(h)
	if err := s.repo.SaveHabits(h); err != nil {
		return res, fmt.Errorf("failed to save habits: %w", err)
	}
	if err := s.repo.SaveScore(res.Score); err != nil {
		return res, fmt.Errorf("failed to save score: %w", err)
	}

	p, err := s.Profile()
	if err != nil {
		return res, err
	}
	p.TotalScore = res.Score.Total

	at := s.now()
	res.NewBadges = badges.Evaluate(res.Score.Total, p.CurrentStreak, nil, p.Badges, at)
	p.Badges = badges.Merge(p.Badges, res.NewBadges)
	milestones := badges.EvaluateMilestones(p, s.weeklyLogs(), at)
	p.Badges = badges.Merge(p.Badges, milestones)
	res.NewBadges = append(res.NewBadges, milestones...)

	if err := s.repo.SaveProfile(p); err != nil {
		return res, fmt.Errorf("failed to save profile: %w", err)
	}

	logger.Debug("Habits submitted", "total", res.Score.Total, "level", res.Score.Level, "badges", len(res.NewBadges))
	return res, nil
}

// CurrentScore recomputes the score from stored habits, falling back to the
// stored score when no habits exist.
func (s *Service) CurrentScore() (models.ScoreData, bool) {
	if h, ok := s.repo.LoadHabits(); ok {
		score := scoring.Compute(h)
		if stored, ok := s.repo.LoadScore(); ok {
			score.LastUpdated = stored.LastUpdated
		}
		return score, true
	}
	return s.repo.LoadScore()
}
