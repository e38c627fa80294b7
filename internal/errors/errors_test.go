package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("store unavailable"), "Error: store unavailable"},
		{"wrapped", fmt.Errorf("join challenge: %w", errors.New("already joined")), "Error: join challenge: already joined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("day %d is outside %s", 9, "hydration-7-day")
	want := "Error: day 9 is outside hydration-7-day"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

// runHelper re-executes the test binary with env set so the child calls the
// exiting function under test.
func runHelper(t *testing.T, name, env string) (int, string) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+name+"$")
	cmd.Env = append(os.Environ(), env+"=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return 0, stderr.String()
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("helper process failed to run: %v", err)
	}
	return exitErr.ExitCode(), stderr.String()
}

func TestFatal(t *testing.T) {
	if os.Getenv("THRIVE_FATAL_HELPER") == "1" {
		Fatal(errors.New("unknown challenge"))
		return
	}
	code, stderr := runHelper(t, "TestFatal", "THRIVE_FATAL_HELPER")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Error: unknown challenge") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestFatal_Nil(t *testing.T) {
	if os.Getenv("THRIVE_FATAL_NIL_HELPER") == "1" {
		Fatal(nil)
		os.Exit(0)
	}
	if code, _ := runHelper(t, "TestFatal_Nil", "THRIVE_FATAL_NIL_HELPER"); code != 0 {
		t.Errorf("Fatal(nil) exited with %d", code)
	}
}

func TestFatalf(t *testing.T) {
	if os.Getenv("THRIVE_FATALF_HELPER") == "1" {
		Fatalf("open %s: locked by pid %d", "thrive.db", 42)
		return
	}
	code, stderr := runHelper(t, "TestFatalf", "THRIVE_FATALF_HELPER")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Error: open thrive.db: locked by pid 42") {
		t.Errorf("stderr = %q", stderr)
	}
}
