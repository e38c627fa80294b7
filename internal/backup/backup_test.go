package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/storage/sqlite"
)

// newStore creates an initialized SQLite store holding one score record.
func newStore(t *testing.T, score string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "thrive.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Set(constants.KeyScore, []byte(score)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	return dbPath
}

func readScore(t *testing.T, dbPath string) string {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer store.Close()
	v, ok, err := store.Get(constants.KeyScore)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	return string(v)
}

// fixedClock steps one minute per call so every backup gets a distinct timestamp.
func fixedClock(m *Manager) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	n := 0
	m.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	ids := 0
	m.newID = func() string {
		ids++
		return fmt.Sprintf("%08x-0000-0000-0000-000000000000", ids)
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := newStore(t, `{"total":70}`)
	mgr := NewManager(dbPath)
	fixedClock(mgr)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Dir(path) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s", path)
	}
	if got := filepath.Base(path); got != "thrive-20240501-080100-00000001.db" {
		t.Errorf("backup name = %s", got)
	}
	if got := readScore(t, path); got != `{"total":70}` {
		t.Errorf("backup content = %s", got)
	}
}

func TestCreateBackup_NoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() without a database should fail")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := newStore(t, `{"total":1}`)
	mgr := NewManager(dbPath)
	fixedClock(mgr)

	var newest string
	for i := 0; i < constants.MaxBackups+3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() #%d error = %v", i, err)
		}
		newest = p
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if backups[0].Path != newest {
		t.Errorf("newest backup = %s, want %s", backups[0].Path, newest)
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "thrive.db"))
	if got, err := mgr.ListBackups(); err != nil || len(got) != 0 {
		t.Fatalf("ListBackups() on missing dir = %v, %v", got, err)
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "thrive-garbage.db", "thrive-20240101-120000-abcd1234.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name() != "thrive-20240101-120000-abcd1234.db" {
		t.Errorf("ListBackups() = %+v", got)
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	if !got[0].Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got[0].Timestamp, want)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newStore(t, `{"total":55}`)
	mgr := NewManager(dbPath)
	fixedClock(mgr)

	snapshot, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(constants.KeyScore, []byte(`{"total":99}`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	safety, err := mgr.RestoreBackup(mgr.Resolve(filepath.Base(snapshot)))
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := readScore(t, dbPath); got != `{"total":55}` {
		t.Errorf("restored score = %s", got)
	}
	if safety == "" {
		t.Fatal("no pre-restore backup created")
	}
	if got := readScore(t, safety); got != `{"total":99}` {
		t.Errorf("pre-restore backup holds %s", got)
	}
}

func TestRestoreBackup_Rejects(t *testing.T) {
	dbPath := newStore(t, `{"total":1}`)
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("restoring a missing file should fail")
	}

	corrupt := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(corrupt, []byte("this is not sqlite"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("restoring a corrupt file should fail")
	}
	if got := readScore(t, dbPath); got != `{"total":1}` {
		t.Errorf("database changed by failed restore: %s", got)
	}
}

func TestResolve(t *testing.T) {
	mgr := NewManager("/data/thrive/thrive.db")
	if got := mgr.Resolve("thrive-20240101-120000-a.db"); got != filepath.Join("/data/thrive/backups", "thrive-20240101-120000-a.db") {
		t.Errorf("Resolve(name) = %s", got)
	}
	if got := mgr.Resolve("/elsewhere/x.db"); got != "/elsewhere/x.db" {
		t.Errorf("Resolve(path) = %s", got)
	}
}
