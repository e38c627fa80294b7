package constants

import "time"

const (
	AppName            = "thrive"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/thrive/thrive.db"
	DefaultProfileName = "Wellness Warrior"
	Version            = "v0.3.0"

	// ConnectionEnvVar overrides the PostgreSQL connection string when set
	ConnectionEnvVar = "THRIVE_DB_CONNECTION"

	// KeyringConfigValue tells the CLI to read the connection string from the OS keyring
	KeyringConfigValue = "keyring"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "thrive-"
	BackupFileSuffix = ".db"

	// Session lock constants
	LockfileName = "thrive.lock"

	// StaleAfter is how long habit data may go without an update before the
	// dashboard nudges the user to log again.
	StaleAfter = 24 * time.Hour

	// RecentLogLimit caps the weekly history shown on the profile
	RecentLogLimit = 8
	// RecentBadgeLimit caps the badges shown on the dashboard
	RecentBadgeLimit = 3
)

// Logical keys understood by every storage gateway
const (
	KeyHabits         = "wellness_habits"
	KeyScore          = "wellness_score"
	KeyUserChallenges = "wellness_user_challenges"
	KeyWeeklyLogs     = "wellness_weekly_logs"
	KeyUserProfile    = "wellness_user_profile"
	KeyLastUpdated    = "wellness_last_updated"
)

// AllKeys lists every logical key in a stable order.
var AllKeys = []string{
	KeyHabits,
	KeyScore,
	KeyUserChallenges,
	KeyWeeklyLogs,
	KeyUserProfile,
	KeyLastUpdated,
}
