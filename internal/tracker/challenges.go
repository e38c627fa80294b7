package tracker

import (
	"fmt"

	"github.com/julianstephens/thrive/internal/badges"
	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
)

// JoinChallenge enrolls the user in a catalog challenge starting now.
func (s *Service) JoinChallenge(id string) (models.UserChallenge, error) {
	c, ok := challenges.ByID(id)
	if !ok {
		return models.UserChallenge{}, fmt.Errorf("%w: %s", ErrUnknownChallenge, id)
	}

	ucs := s.userChallenges()
	if _, _, joined := challenges.Find(ucs, id); joined {
		return models.UserChallenge{}, fmt.Errorf("%w: %s", ErrAlreadyJoined, c.Title)
	}

	uc := challenges.Join(c, s.now())
	ucs = append(ucs, uc)
	if err := s.repo.SaveUserChallenges(ucs); err != nil {
		return uc, fmt.Errorf("failed to save challenges: %w", err)
	}
	logger.Info("Joined challenge", "challenge", id)
	return uc, nil
}

// CheckInResult describes the effect of recording one challenge day
type CheckInResult struct {
	Enrollment    models.UserChallenge
	Challenge     models.Challenge
	Day           int // 0-based
	JustCompleted bool
	NewBadges     []models.Badge
}

// CheckIn records day (0-based) of a joined challenge as completed or missed.
// A negative day means the next unrecorded day.
func (s *Service) CheckIn(id string, day int, completed bool) (CheckInResult, error) {
	var res CheckInResult

	c, ok := challenges.ByID(id)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownChallenge, id)
	}
	res.Challenge = c

	ucs := s.userChallenges()
	uc, idx, joined := challenges.Find(ucs, id)
	if !joined {
		return res, fmt.Errorf("%w: %s", ErrNotJoined, c.Title)
	}

	if day < 0 {
		day = len(uc.Progress)
	}
	if day >= c.Duration {
		return res, fmt.Errorf("%w: day %d of %d", ErrDayOutOfRange, day+1, c.Duration)
	}
	res.Day = day

	updated := challenges.RecordDay(uc, day, completed, c)
	res.JustCompleted = !uc.Completed && updated.Completed
	res.Enrollment = updated

	ucs[idx] = updated
	if err := s.repo.SaveUserChallenges(ucs); err != nil {
		return res, fmt.Errorf("failed to save challenges: %w", err)
	}

	p, err := s.Profile()
	if err != nil {
		return res, err
	}
	refreshStreaks(&p, ucs)

	var justCompleted []string
	if res.JustCompleted {
		justCompleted = []string{id}
	}
	score := p.TotalScore
	if stored, ok := s.repo.LoadScore(); ok {
		score = stored.Total
	}
	res.NewBadges = badges.Evaluate(score, p.CurrentStreak, justCompleted, p.Badges, s.now())
	p.Badges = badges.Merge(p.Badges, res.NewBadges)

	if err := s.repo.SaveProfile(p); err != nil {
		return res, fmt.Errorf("failed to save profile: %w", err)
	}

	logger.Debug("Challenge day recorded", "challenge", id, "day", day+1, "completed", completed, "streak", updated.Streak)
	return res, nil
}

// LeaveChallenge drops an enrollment and its progress.
func (s *Service) LeaveChallenge(id string) error {
	ucs := s.userChallenges()
	_, idx, joined := challenges.Find(ucs, id)
	if !joined {
		return fmt.Errorf("%w: %s", ErrNotJoined, id)
	}
	ucs = append(ucs[:idx], ucs[idx+1:]...)
	if err := s.repo.SaveUserChallenges(ucs); err != nil {
		return fmt.Errorf("failed to save challenges: %w", err)
	}

	p, err := s.Profile()
	if err != nil {
		return err
	}
	refreshStreaks(&p, ucs)
	return s.repo.SaveProfile(p)
}

// ChallengeDetail is one catalog challenge as seen by the user
type ChallengeDetail struct {
	Challenge  models.Challenge
	Enrollment *models.UserChallenge
	CurrentDay int
	Days       []challenges.DayStatus
	Completed  int
	Percent    int
}

// Challenge describes a catalog challenge and the user's progress in it.
func (s *Service) Challenge(id string) (ChallengeDetail, error) {
	c, ok := challenges.ByID(id)
	if !ok {
		return ChallengeDetail{}, fmt.Errorf("%w: %s", ErrUnknownChallenge, id)
	}
	d := ChallengeDetail{Challenge: c, Days: make([]challenges.DayStatus, c.Duration)}

	if uc, _, joined := challenges.Find(s.userChallenges(), id); joined {
		d.Enrollment = &uc
		d.CurrentDay = challenges.CurrentDay(uc, c)
		d.Completed = challenges.CompletedDays(uc)
		d.Percent = challenges.ProgressPercent(uc)
	}
	for i := range d.Days {
		d.Days[i] = challenges.StatusOf(d.Enrollment, i)
	}
	return d, nil
}

// ChallengeListing pairs a catalog entry with the user's enrollment, if any
type ChallengeListing struct {
	Challenge  models.Challenge
	Enrollment *models.UserChallenge
}

// Challenges lists the catalog with enrollment state. Filters are optional.
func (s *Service) Challenges(difficulty models.Difficulty, category models.ChallengeCategory) []ChallengeListing {
	ucs := s.userChallenges()
	var out []ChallengeListing
	for _, c := range challenges.Catalog() {
		if difficulty != "" && c.Difficulty != difficulty {
			continue
		}
		if category != "" && c.Category != category {
			continue
		}
		l := ChallengeListing{Challenge: c}
		if uc, _, ok := challenges.Find(ucs, c.ID); ok {
			l.Enrollment = &uc
		}
		out = append(out, l)
	}
	return out
}

// Enrollments pairs every stored enrollment with its catalog entry.
func (s *Service) Enrollments() []challenges.Enrollment {
	var out []challenges.Enrollment
	for _, uc := range s.userChallenges() {
		if c, ok := challenges.ByID(uc.ChallengeID); ok {
			out = append(out, challenges.Enrollment{UserChallenge: uc, Challenge: c})
		}
	}
	return out
}
