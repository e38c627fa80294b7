package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/models"
)

// Repository is the typed view over a Gateway. Loads never fail: absent or
// unreadable data reports ok=false so callers can fall back to defaults.
type Repository struct {
	gw  Gateway
	now func() time.Time
}

func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw, now: time.Now}
}

// Gateway exposes the underlying key/value store.
func (r *Repository) Gateway() Gateway {
	return r.gw
}

func load[T any](r *Repository, key string) (T, bool) {
	var v T
	raw, ok, err := r.gw.Get(key)
	if err != nil {
		logger.Error("Failed to read stored data", "key", key, "error", err)
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Ignoring malformed stored data", "key", key, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

func save(r *Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.gw.Set(key, raw); err != nil {
		return err
	}
	return nil
}

func (r *Repository) LoadHabits() (models.HabitsData, bool) {
	return load[models.HabitsData](r, constants.KeyHabits)
}

// SaveHabits stores the habits and stamps the last-updated time.
func (r *Repository) SaveHabits(h models.HabitsData) error {
	if err := save(r, constants.KeyHabits, h); err != nil {
		return err
	}
	return save(r, constants.KeyLastUpdated, r.now().UTC().Format(time.RFC3339Nano))
}

func (r *Repository) LoadScore() (models.ScoreData, bool) {
	return load[models.ScoreData](r, constants.KeyScore)
}

func (r *Repository) SaveScore(s models.ScoreData) error {
	return save(r, constants.KeyScore, s)
}

func (r *Repository) LoadUserChallenges() ([]models.UserChallenge, bool) {
	return load[[]models.UserChallenge](r, constants.KeyUserChallenges)
}

func (r *Repository) SaveUserChallenges(ucs []models.UserChallenge) error {
	if ucs == nil {
		ucs = []models.UserChallenge{}
	}
	return save(r, constants.KeyUserChallenges, ucs)
}

func (r *Repository) LoadWeeklyLogs() ([]models.WeeklyLog, bool) {
	return load[[]models.WeeklyLog](r, constants.KeyWeeklyLogs)
}

func (r *Repository) SaveWeeklyLogs(logs []models.WeeklyLog) error {
	if logs == nil {
		logs = []models.WeeklyLog{}
	}
	return save(r, constants.KeyWeeklyLogs, logs)
}

func (r *Repository) LoadProfile() (models.UserProfile, bool) {
	return load[models.UserProfile](r, constants.KeyUserProfile)
}

func (r *Repository) SaveProfile(p models.UserProfile) error {
	return save(r, constants.KeyUserProfile, p)
}

// LastUpdated returns when habits were last saved.
func (r *Repository) LastUpdated() (time.Time, bool) {
	s, ok := load[string](r, constants.KeyLastUpdated)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		logger.Warn("Ignoring malformed stored data", "key", constants.KeyLastUpdated, "error", err)
		return time.Time{}, false
	}
	return t, true
}

// IsDataStale reports whether habits are missing or older than maxAge.
func (r *Repository) IsDataStale(maxAge time.Duration) bool {
	last, ok := r.LastUpdated()
	if !ok {
		return true
	}
	return r.now().Sub(last) >= maxAge
}

// ClearAll removes every logical key, continuing past individual failures.
func (r *Repository) ClearAll() error {
	var firstErr error
	for _, key := range constants.AllKeys {
		if err := r.gw.Delete(key); err != nil {
			logger.Error("Failed to clear key", "key", key, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to clear %s: %w", key, err)
			}
		}
	}
	return firstErr
}

// WeekKey labels the week containing t as "YYYY-WW". The week number counts
// fractional days since January 1st, offset by that day's weekday.
func WeekKey(t time.Time) string {
	startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.Sub(startOfYear).Hours() / 24
	week := int(math.Ceil((pastDays + float64(startOfYear.Weekday()) + 1) / 7))
	return fmt.Sprintf("%d-%02d", t.Year(), week)
}
