package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/thrive/internal/backup"
	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/lock"
	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/storage/sqlite"
)

type DoctorCmd struct{}

type check struct {
	name       string
	needsStore bool
	run        func(*cli.Context) error
}

var checks = []check{
	{"Schema version", true, checkSchemaVersion},
	{"Migrations complete", true, checkMigrationsComplete},
	{"Stored data readable", true, checkStoredJSON},
	{"Data validation", true, checkValidation},
	{"Backups present", false, checkBackupsPresent},
	{"Session lock", false, checkSessionLock},
	{"Clock/timezone", false, func(*cli.Context) error { return checkClockTimezone(time.Now()) }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Fprintf(ctx.Out, "❌ Store reachable: FAIL\n")
		fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(ctx.Out, "✓ Store reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsStore && !dbReachable {
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		var w warning
		switch {
		case err == nil:
			fmt.Fprintf(ctx.Out, "✓ %s: OK\n", c.name)
		case errors.As(err, &w):
			fmt.Fprintf(ctx.Out, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(ctx.Out, "   %v\n", w)
		default:
			fmt.Fprintf(ctx.Out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

// warning is a check result that should not fail the run
type warning string

func (w warning) Error() string { return string(w) }

func warn(format string, args ...interface{}) error {
	return warning(fmt.Sprintf(format, args...))
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	info, ok := ctx.Store.(storage.SchemaInfo)
	if !ok {
		return nil
	}
	current, latest, err := info.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("store schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	info, ok := ctx.Store.(storage.SchemaInfo)
	if !ok {
		return nil
	}
	current, latest, err := info.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'thrive migrate')", current, latest)
	}
	return nil
}

// checkStoredJSON fails when a logical key holds something that is not JSON.
func checkStoredJSON(ctx *cli.Context) error {
	var bad []string
	for _, key := range constants.AllKeys {
		raw, ok, err := ctx.Store.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if ok && !json.Valid(raw) {
			bad = append(bad, key)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("malformed values for keys: %v", bad)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	result := validateStoredData(ctx.Tracker.Repository())
	if result.HasIssues() {
		return fmt.Errorf("%d issue(s): %s (run 'thrive validate' for details)", len(result.Issues), result.Error())
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.SupportsBackups() {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warn("no backups found - consider creating one with 'thrive backup create'")
	}
	return nil
}

func checkSessionLock(ctx *cli.Context) error {
	holder, alive, err := lock.Inspect(ctx.ConfigDir)
	switch {
	case errors.Is(err, lock.ErrMalformed):
		return warn("lockfile %s is malformed and will be replaced on next write", lock.Path(ctx.ConfigDir))
	case err != nil:
		return fmt.Errorf("failed to inspect lockfile: %w", err)
	case holder.PID == 0:
		return nil
	case !alive:
		return warn("stale lockfile left by pid %d will be replaced on next write", holder.PID)
	default:
		return warn("store is in use by thrive (pid %d)", holder.PID)
	}
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
