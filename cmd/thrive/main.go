package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/cli/backups"
	"github.com/julianstephens/thrive/internal/cli/challenge"
	"github.com/julianstephens/thrive/internal/cli/habits"
	"github.com/julianstephens/thrive/internal/cli/profile"
	"github.com/julianstephens/thrive/internal/cli/system"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/errors"
	"github.com/julianstephens/thrive/internal/lock"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.db for SQLite, .json for a JSON file), a PostgreSQL connection string, or 'keyring'. PostgreSQL credentials must NOT be embedded; use the keyring, THRIVE_DB_CONNECTION or .pgpass." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Write debug logs to stderr as well as the log file."`

	Init     system.InitCmd     `cmd:"" help:"Initialize thrive storage."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored habits for out-of-range values."`
	DebugCmd system.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Status    profile.StatusCmd      `cmd:"" help:"Show your score, active challenges and recent badges."`
	Habits    habits.HabitsCmd       `cmd:"" help:"Log and show your habits."`
	Score     habits.ScoreCmd        `cmd:"" help:"Show your current wellness score."`
	Challenge challenge.ChallengeCmd `cmd:"" help:"Browse, join and check in to challenges."`
	Badges    profile.BadgesCmd      `cmd:"" help:"Show your badge collection."`
	Profile   profile.ProfileCmd     `cmd:"" help:"Show or edit your profile."`
	Week      profile.WeekCmd        `cmd:"" help:"Weekly progress snapshots."`

	Export system.ExportCmd `cmd:"" help:"Export all data to a JSON or YAML file."`
	Import system.ImportCmd `cmd:"" help:"Replace all data with the contents of an export file."`
	Clear  system.ClearCmd  `cmd:"" help:"Delete all wellness data."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether the OS keyring is available."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// Commands that never touch the store
var storeless = map[string]bool{"keyring": true}

// Commands that manage loading themselves
var selfLoading = map[string]bool{"init": true, "doctor": true}

// Commands that may run alongside another thrive process
var lockFree = map[string]bool{"doctor": true, "debug": true, "keyring": true, "export": true, "score": true}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("thrive"),
		kong.Description("Personal wellness tracker: habit scoring, challenges and badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	}
}

func main() {
	ctx := kong.Parse(&CLI, options()...)

	configDir := cli.ConfigDirFor(CLI.Config, constants.DefaultConfigPath)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	logger.Debug("Starting thrive", "version", constants.Version, "command", ctx.Command(), "config_dir", configDir)
	errors.Fatal(run(ctx, configDir))
}

func run(ctx *kong.Context, configDir string) error {
	command := strings.Fields(ctx.Command())[0]
	if storeless[command] {
		return ctx.Run(cli.NewContext(nil, configDir))
	}

	store, err := storage.Open(CLI.Config)
	if err != nil {
		return err
	}
	defer store.Close()

	if !lockFree[command] {
		l, err := lock.Acquire(configDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := l.Release(); err != nil {
				logger.Warn("Failed to release lock", "error", err)
			}
		}()
	}

	if !selfLoading[command] {
		if err := store.Load(); err != nil {
			return err
		}
	}

	return ctx.Run(cli.NewContext(store, configDir))
}
