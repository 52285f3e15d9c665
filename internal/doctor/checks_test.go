package doctor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

func fakeEnv(goos string, display bool, found ...string) dialog.Env {
	return dialog.Env{
		GOOS: goos,
		LookPath: func(file string) (string, error) {
			for _, f := range found {
				if f == file {
					return "/usr/bin/" + file, nil
				}
			}
			return "", exec.ErrNotFound
		},
		Getenv: func(key string) string {
			if display && key == "WAYLAND_DISPLAY" {
				return "wayland-0"
			}
			return ""
		},
	}
}

func TestPlatformCheck(t *testing.T) {
	tests := []struct {
		name       string
		check      PlatformCheck
		wantStatus Severity
		wantTarget string
	}{
		{"host only", PlatformCheck{Host: pathutil.Linux}, SeverityPass, "linux"},
		{"target alias", PlatformCheck{Host: pathutil.Linux, Target: "win"}, SeverityPass, "windows"},
		{"bad target", PlatformCheck{Host: pathutil.Linux, Target: "beos"}, SeverityError, ""},
		{"unknown host", PlatformCheck{Host: pathutil.Unknown}, SeverityWarning, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.check.Run()
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if tt.wantTarget != "" && res.Details["target"] != tt.wantTarget {
				t.Errorf("target = %v, want %s", res.Details["target"], tt.wantTarget)
			}
			if res.Name != "platform" || res.Category != "host" {
				t.Errorf("unexpected identity %s/%s", res.Category, res.Name)
			}
		})
	}
}

func TestBridgeCheck(t *testing.T) {
	tests := []struct {
		name       string
		check      BridgeCheck
		wantStatus Severity
		wantMsg    string
	}{
		{"found", BridgeCheck{Env: fakeEnv("linux", true, "zenity"), Selection: "auto"}, SeverityPass, "using zenity (/usr/bin/zenity)"},
		{"disabled", BridgeCheck{Env: fakeEnv("linux", true, "zenity"), Selection: "none"}, SeverityInfo, "disabled"},
		{"no display", BridgeCheck{Env: fakeEnv("linux", false, "zenity"), Selection: "auto"}, SeverityWarning, "no graphical session"},
		{"missing", BridgeCheck{Env: fakeEnv("darwin", false), Selection: ""}, SeverityWarning, "osascript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.check.Run()
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if !strings.Contains(res.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want it to contain %q", res.Message, tt.wantMsg)
			}
			if res.Status == SeverityWarning && res.FixHint == "" {
				t.Error("warnings should carry a fix hint")
			}
		})
	}
}

func TestOpenerCheck(t *testing.T) {
	res := (&OpenerCheck{Env: fakeEnv("linux", true, "xdg-open")}).Run()
	if res.Status != SeverityPass {
		t.Errorf("Status = %v, want pass", res.Status)
	}

	res = (&OpenerCheck{Env: fakeEnv("linux", true)}).Run()
	if res.Status != SeverityWarning {
		t.Errorf("Status = %v, want warning", res.Status)
	}
}

func TestSandboxCheck(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		check      SandboxCheck
		wantStatus Severity
	}{
		{"ready", SandboxCheck{Enabled: true, Interactive: true, Root: dir}, SeverityPass},
		{"disabled", SandboxCheck{Enabled: false, Root: "/does/not/matter"}, SeverityInfo},
		{"no terminal", SandboxCheck{Enabled: true, Interactive: false, Root: dir}, SeverityInfo},
		{"missing root", SandboxCheck{Enabled: true, Interactive: true, Root: filepath.Join(dir, "nope")}, SeverityWarning},
		{"root is a file", SandboxCheck{Enabled: true, Interactive: true, Root: file}, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := tt.check.Run(); res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.wantStatus, res.Message)
			}
		})
	}
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string, perm os.FileMode) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), perm); err != nil {
			t.Fatal(err)
		}
		if err := os.Chmod(path, perm); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name       string
		path       string
		wantStatus Severity
		wantMsg    string
	}{
		{"no path", "", SeverityInfo, "using defaults"},
		{"missing file", filepath.Join(dir, "missing.yaml"), SeverityInfo, "using defaults"},
		{"valid", write("valid.yaml", "picker:\n  bridge: none\n", 0o600), SeverityPass, "is valid"},
		{"syntax error", write("broken.yaml", "picker: [\n", 0o600), SeverityError, "YAML syntax error"},
		{"invalid value", write("invalid.yaml", "display:\n  max_length: -3\n", 0o600), SeverityError, "display.max_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ConfigCheck{Path: tt.path}
			res := c.Run()
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if !strings.Contains(res.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want it to contain %q", res.Message, tt.wantMsg)
			}
			if c.CanFix() {
				t.Error("CanFix() should be false")
			}
		})
	}
}

func TestConfigCheck_FixPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o666); err != nil {
		t.Fatal(err)
	}

	c := &ConfigCheck{Path: path}
	res := c.Run()
	if res.Status != SeverityWarning || !res.Fixable {
		t.Fatalf("Run() = %+v, want fixable warning", res)
	}
	if !c.CanFix() {
		t.Fatal("CanFix() should be true")
	}

	fixes := NewRunner(c).Fix()
	if len(fixes) != 1 || !fixes[0].Fixed {
		t.Fatalf("Fix() = %+v", fixes)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("perm after fix = %04o, want 0600", got)
	}
	if res := c.Run(); res.Status != SeverityPass {
		t.Errorf("after fix Status = %v, want pass", res.Status)
	}
}
