package tracker

import (
	"time"

	"github.com/julianstephens/thrive/internal/badges"
	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
)

// Dashboard is the at-a-glance summary shown by 'thrive' and the TUI
type Dashboard struct {
	Profile      models.UserProfile
	Score        *models.ScoreData
	Active       []challenges.Enrollment
	RecentBadges []models.Badge
	LastUpdated  *time.Time
	Stale        bool
}

// Dashboard builds the summary view. The profile is created when missing.
func (s *Service) Dashboard() (Dashboard, error) {
	var d Dashboard

	p, err := s.Profile()
	if err != nil {
		return d, err
	}
	if score, ok := s.CurrentScore(); ok {
		d.Score = &score
		if p.TotalScore != score.Total {
			p.TotalScore = score.Total
			if err := s.repo.SaveProfile(p); err != nil {
				logger.Warn("Failed to refresh profile score", "error", err)
			}
		}
	}
	d.Profile = p
	d.Active = challenges.Active(s.userChallenges())

	recent := badges.SortRecent(p.Badges)
	if len(recent) > constants.RecentBadgeLimit {
		recent = recent[:constants.RecentBadgeLimit]
	}
	d.RecentBadges = recent

	if t, ok := s.repo.LastUpdated(); ok {
		d.LastUpdated = &t
	}
	d.Stale = s.repo.IsDataStale(constants.StaleAfter)
	return d, nil
}

// ProfileStats is the profile page: counters, badge collection and history
type ProfileStats struct {
	Profile       models.UserProfile
	BadgesEarned  int
	BadgesTotal   int
	ByCategory    []badges.CategoryCount
	Unlocked      []models.Badge
	Locked        []models.Badge
	History       []models.WeeklyLog
	DaysSinceJoin int
}

// ProfileStats gathers everything the profile view shows.
func (s *Service) ProfileStats() (ProfileStats, error) {
	var st ProfileStats

	p, err := s.Profile()
	if err != nil {
		return st, err
	}
	st.Profile = p
	st.BadgesEarned = len(p.Badges)
	st.BadgesTotal = len(badges.Catalog())
	st.ByCategory = badges.CountByCategory(p.Badges)
	st.Unlocked = badges.SortRecent(p.Badges)
	st.Locked = badges.Locked(p.Badges)
	st.History = s.RecentHistory()
	if !p.JoinDate.IsZero() {
		st.DaysSinceJoin = int(s.now().Sub(p.JoinDate).Hours() / 24)
	}
	return st, nil
}
