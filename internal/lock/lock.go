// Package lock keeps two thrive processes from writing the same store at once.
// The lockfile holds "pid|token"; a lock whose pid is no longer a running
// thrive process is stale and may be taken over.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
	newTokenFunc    = uuid.NewString
)

var (
	// ErrLocked is returned when a live thrive process holds the lock
	ErrLocked = errors.New("another thrive process is using this store")
	// ErrMalformed is returned when the lockfile cannot be parsed
	ErrMalformed = errors.New("lockfile is malformed")
)

// Holder identifies the owner recorded in a lockfile.
type Holder struct {
	PID   int
	Token string
}

// Lock is a held single-writer lock.
type Lock struct {
	path  string
	token string
}

// Path returns the lockfile location for a config directory.
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

// Acquire takes the lock in configDir, replacing a stale lockfile if needed.
func Acquire(configDir string) (*Lock, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	path := Path(configDir)
	l := &Lock{path: path, token: newTokenFunc()}
	content := fmt.Sprintf("%d|%s", getpidFunc(), l.token)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, werr := f.WriteString(content)
			cerr := f.Close()
			if werr != nil || cerr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
			}
			return l, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		holder, alive, err := Inspect(configDir)
		if err != nil && !errors.Is(err, ErrMalformed) {
			return nil, err
		}
		if alive {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder.PID)
		}
		logger.Warn("Removing stale lockfile", "path", path, "pid", holder.PID)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, ErrLocked
}

// Release removes the lockfile if this lock still owns it.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := read(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if holder.Token != l.token {
		logger.Warn("Lockfile owned by another process, leaving it", "path", l.path, "pid", holder.PID)
		return nil
	}
	return os.Remove(l.path)
}

// Inspect reads the lockfile in configDir and reports whether its holder is
// a running thrive process. A missing lockfile yields a zero Holder and no
// error.
func Inspect(configDir string) (Holder, bool, error) {
	holder, err := read(Path(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Holder{}, false, nil
		}
		return Holder{}, false, err
	}
	return holder, isThrive(holder.PID), nil
}

func read(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Holder{}, ErrMalformed
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, fmt.Errorf("%w: invalid process ID", ErrMalformed)
	}
	if strings.TrimSpace(parts[1]) == "" {
		return Holder{}, fmt.Errorf("%w: empty token", ErrMalformed)
	}
	return Holder{PID: pid, Token: parts[1]}, nil
}

func isThrive(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}
