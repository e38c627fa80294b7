package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/thrive/internal/backup"
	"github.com/julianstephens/thrive/internal/logger"
	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/storage/sqlite"
	"github.com/julianstephens/thrive/internal/tracker"
)

type Context struct {
	Store     storage.Provider
	Tracker   *tracker.Service
	ConfigDir string
	Out       io.Writer
	In        io.Reader
}

// NewContext wires the tracker service to a store. Output goes to stdout.
func NewContext(store storage.Provider, configDir string) *Context {
	return &Context{
		Store:     store,
		Tracker:   tracker.New(storage.NewRepository(store)),
		ConfigDir: configDir,
		Out:       os.Stdout,
		In:        os.Stdin,
	}
}

// ConfigDirFor returns the directory that holds logs, the lockfile and
// backups for a --config value. Non-file stores use the default location.
func ConfigDirFor(config, fallback string) string {
	if storage.BackendFor(config) == storage.BackendPostgres {
		config = fallback
	}
	path, err := storage.ExpandPath(config)
	if err != nil {
		return filepath.Dir(config)
	}
	return filepath.Dir(path)
}

// SupportsBackups reports whether the store is a SQLite file the backup
// manager can snapshot.
func (c *Context) SupportsBackups() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.SupportsBackups() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm asks a yes/no question and reports whether the answer was yes.
func (c *Context) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
