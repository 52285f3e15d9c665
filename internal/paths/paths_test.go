package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/pathpick/internal/errors"
)

func TestHome(t *testing.T) {
	got := Home()
	want, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("os.UserHomeDir() failed: %v", err)
	}
	if got != want {
		t.Errorf("Home() = %q, want %q", got, want)
	}
}

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, _ := os.UserHomeDir()

	if err != nil {
		if !errors.Is(err, ErrHomeDirNotFound) {
			t.Errorf("unexpected error type: %v", err)
		}
	} else if got != want {
		t.Errorf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("os.UserHomeDir() failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/projects", filepath.Join(home, "projects")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~other/x", "~other/x"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("ExpandHome(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfigLocations(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")

	if !filepath.IsAbs(ConfigHome()) {
		t.Errorf("ConfigHome() = %q, want absolute path", ConfigHome())
	}
	if got, want := filepath.Base(ConfigDir()), AppName; got != want {
		t.Errorf("ConfigDir() base = %q, want %q", got, want)
	}
	if got, want := ConfigFile(), filepath.Join(ConfigDir(), ConfigFileName); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
	if got, want := ConfigFile(), filepath.Join(dir, ConfigFileName); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir() should create a directory")
	}

	if err := EnsureDir(dir, 0o755); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}
