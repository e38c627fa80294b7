package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/storage/sqlite"
)

func TestConfigDirFor(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	fallback := "~/.config/thrive/thrive.db"

	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"sqlite path", "/tmp/data/thrive.db", "/tmp/data"},
		{"json path", "/var/lib/thrive/state.json", "/var/lib/thrive"},
		{"home path", "~/wellness/thrive.db", filepath.Join(home, "wellness")},
		{"postgres uses fallback", "postgres://ada@db/thrive", filepath.Join(home, ".config", "thrive")},
		{"keyring uses fallback", "keyring", filepath.Join(home, ".config", "thrive")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirFor(tt.config, fallback); got != tt.want {
				t.Errorf("ConfigDirFor(%q) = %q, want %q", tt.config, got, tt.want)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		ctx := NewContext(storage.NewMemoryStore(), t.TempDir())
		out := &bytes.Buffer{}
		ctx.Out = out
		ctx.In = strings.NewReader(tt.input)

		got, err := ctx.Confirm("Continue?")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Continue? [y/N]") {
			t.Errorf("prompt not written: %q", out.String())
		}
	}
}

func TestSupportsBackups(t *testing.T) {
	mem := NewContext(storage.NewMemoryStore(), t.TempDir())
	if mem.SupportsBackups() {
		t.Error("memory store should not support backups")
	}
	// Must not panic or create anything
	mem.PerformAutomaticBackup()

	dbPath := filepath.Join(t.TempDir(), "thrive.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := NewContext(store, filepath.Dir(dbPath))
	if !ctx.SupportsBackups() {
		t.Fatal("sqlite store should support backups")
	}
	ctx.PerformAutomaticBackup()
	entries, err := os.ReadDir(filepath.Join(filepath.Dir(dbPath), "backups"))
	if err != nil || len(entries) != 1 {
		t.Errorf("expected one automatic backup, got %d (%v)", len(entries), err)
	}
}
