// Package export writes and reads full snapshots of a user's stored data.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/storage"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml)", s)
	}
}

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Dump is a complete snapshot of the stored data. Absent records stay nil.
type Dump struct {
	ID             string                 `json:"id" yaml:"id"`
	AppVersion     string                 `json:"app_version" yaml:"app_version"`
	ExportedAt     time.Time              `json:"exported_at" yaml:"exported_at"`
	Habits         *models.HabitsData     `json:"habits,omitempty" yaml:"habits,omitempty"`
	Score          *models.ScoreData      `json:"score,omitempty" yaml:"score,omitempty"`
	UserChallenges []models.UserChallenge `json:"user_challenges" yaml:"user_challenges"`
	WeeklyLogs     []models.WeeklyLog     `json:"weekly_logs" yaml:"weekly_logs"`
	Profile        *models.UserProfile    `json:"profile,omitempty" yaml:"profile,omitempty"`
	LastUpdated    *time.Time             `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// Build collects everything the repository holds.
func Build(repo *storage.Repository, at time.Time) Dump {
	d := Dump{
		ID:             uuid.NewString(),
		AppVersion:     constants.Version,
		ExportedAt:     at,
		UserChallenges: []models.UserChallenge{},
		WeeklyLogs:     []models.WeeklyLog{},
	}
	if h, ok := repo.LoadHabits(); ok {
		d.Habits = &h
	}
	if s, ok := repo.LoadScore(); ok {
		d.Score = &s
	}
	if ucs, ok := repo.LoadUserChallenges(); ok && ucs != nil {
		d.UserChallenges = ucs
	}
	if logs, ok := repo.LoadWeeklyLogs(); ok && logs != nil {
		d.WeeklyLogs = logs
	}
	if p, ok := repo.LoadProfile(); ok {
		d.Profile = &p
	}
	if t, ok := repo.LastUpdated(); ok {
		d.LastUpdated = &t
	}
	return d
}

// Write encodes d in the given format.
func Write(w io.Writer, d Dump, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// Read decodes a dump written by Write.
func Read(r io.Reader, f Format) (Dump, error) {
	var d Dump
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&d)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&d)
	default:
		return d, fmt.Errorf("unsupported export format %q", f)
	}
	if err != nil {
		return d, fmt.Errorf("failed to parse %s export: %w", f, err)
	}
	return d, nil
}

// Apply replaces the repository contents with the dump. Keys the dump does
// not carry are cleared.
func Apply(repo *storage.Repository, d Dump) error {
	if err := repo.ClearAll(); err != nil {
		return err
	}
	if d.Habits != nil {
		if err := repo.SaveHabits(*d.Habits); err != nil {
			return err
		}
	}
	if d.Score != nil {
		if err := repo.SaveScore(*d.Score); err != nil {
			return err
		}
	}
	if err := repo.SaveUserChallenges(d.UserChallenges); err != nil {
		return err
	}
	if err := repo.SaveWeeklyLogs(d.WeeklyLogs); err != nil {
		return err
	}
	if d.Profile != nil {
		if err := repo.SaveProfile(*d.Profile); err != nil {
			return err
		}
	}
	return nil
}

// FileName suggests a name for an export written at the given time.
func FileName(f Format, at time.Time) string {
	return fmt.Sprintf("%sexport-%s.%s", constants.BackupFilePrefix, at.Format("20060102-150405"), f)
}
