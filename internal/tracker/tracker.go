// Package tracker is the application service behind every command: it loads
// state through the repository, runs the scoring, challenge and badge
// engines, and persists the results.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/storage"
)

var (
	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrAlreadyJoined    = errors.New("challenge already joined")
	ErrNotJoined        = errors.New("challenge not joined")
	ErrDayOutOfRange    = errors.New("day is outside the challenge duration")
	ErrNoHabits         = errors.New("no habits logged yet, run 'thrive habits log' first")
	ErrEmptyName        = errors.New("profile name cannot be empty")
)

type Service struct {
	repo *storage.Repository
	now  func() time.Time
}

func New(repo *storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Repository exposes the underlying typed store.
func (s *Service) Repository() *storage.Repository {
	return s.repo
}

// Profile returns the stored profile, creating the default one on first use.
func (s *Service) Profile() (models.UserProfile, error) {
	if p, ok := s.repo.LoadProfile(); ok {
		return p, nil
	}

	p := models.UserProfile{
		Name:     constants.DefaultProfileName,
		JoinDate: s.now(),
		Badges:   []models.Badge{},
	}
	if score, ok := s.repo.LoadScore(); ok {
		p.TotalScore = score.Total
	}
	if err := s.repo.SaveProfile(p); err != nil {
		return p, fmt.Errorf("failed to create profile: %w", err)
	}
	logger.Info("Created profile", "name", p.Name)
	return p, nil
}

// Rename changes the profile's display name.
func (s *Service) Rename(name string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, ErrEmptyName
	}
	p, err := s.Profile()
	if err != nil {
		return p, err
	}
	p.Name = name
	if err := s.repo.SaveProfile(p); err != nil {
		return p, err
	}
	return p, nil
}

// Clear deletes every stored record.
func (s *Service) Clear() error {
	if err := s.repo.ClearAll(); err != nil {
		return err
	}
	logger.Info("Cleared all data")
	return nil
}

// userChallenges returns the stored enrollments or an empty list.
func (s *Service) userChallenges() []models.UserChallenge {
	ucs, ok := s.repo.LoadUserChallenges()
	if !ok || ucs == nil {
		return []models.UserChallenge{}
	}
	return ucs
}

func (s *Service) weeklyLogs() []models.WeeklyLog {
	logs, ok := s.repo.LoadWeeklyLogs()
	if !ok || logs == nil {
		return []models.WeeklyLog{}
	}
	return logs
}

// refreshStreaks recomputes the profile counters derived from enrollments.
// The current streak is the best streak across all challenges.
func refreshStreaks(p *models.UserProfile, ucs []models.UserChallenge) {
	current, completed := 0, 0
	for _, uc := range ucs {
		if uc.Streak > current {
			current = uc.Streak
		}
		if uc.Completed {
			completed++
		}
	}
	p.CurrentStreak = current
	if current > p.LongestStreak {
		p.LongestStreak = current
	}
	p.CompletedChallenges = completed
}
