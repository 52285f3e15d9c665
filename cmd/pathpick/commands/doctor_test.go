package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/doctor"
	"github.com/thoreinstein/pathpick/internal/errors"
)

type stubCheck struct {
	name   string
	status doctor.Severity
	hint   string
}

func (c *stubCheck) Name() string     { return c.name }
func (c *stubCheck) Category() string { return "test" }
func (c *stubCheck) Run() *doctor.CheckResult {
	return &doctor.CheckResult{
		Name:     c.name,
		Category: "test",
		Status:   c.status,
		Message:  c.name + " message",
		FixHint:  c.hint,
	}
}

func resetDoctorFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		doctorJSON, doctorQuiet, doctorVerbose, doctorFix = false, false, false, false
	})
}

func TestValidateDoctorFlags(t *testing.T) {
	tests := []struct {
		name                 string
		json, quiet, verbose bool
		wantErr              bool
	}{
		{"none", false, false, false, false},
		{"json only", true, false, false, false},
		{"json and quiet", true, true, false, true},
		{"quiet and verbose", false, true, true, true},
		{"all", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDoctorFlags(t)
			doctorJSON, doctorQuiet, doctorVerbose = tt.json, tt.quiet, tt.verbose

			err := validateDoctorFlags(nil, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDoctorRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		statuses []doctor.Severity
		want     int
	}{
		{"all pass", []doctor.Severity{doctor.SeverityPass, doctor.SeverityInfo}, errors.ExitSuccess},
		{"warning", []doctor.Severity{doctor.SeverityPass, doctor.SeverityWarning}, errors.ExitUser},
		{"error wins", []doctor.Severity{doctor.SeverityWarning, doctor.SeverityError}, errors.ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDoctorFlags(t)
			runner := doctor.NewRunner()
			for i, s := range tt.statuses {
				runner.AddCheck(&stubCheck{name: string(rune('a' + i)), status: s})
			}

			err := doctorRun(&bytes.Buffer{}, runner)
			assert.Equal(t, tt.want, errors.ExitCode(err))
		})
	}
}

func TestDoctorText(t *testing.T) {
	resetDoctorFlags(t)
	runner := doctor.NewRunner(
		&stubCheck{name: "ok", status: doctor.SeverityPass},
		&stubCheck{name: "shaky", status: doctor.SeverityWarning, hint: "do the thing"},
	)

	var buf bytes.Buffer
	_ = doctorRun(&buf, runner)
	out := buf.String()

	assert.NotContains(t, out, "ok message", "passed checks are hidden by default")
	assert.Contains(t, out, "⚠ [test] shaky: shaky message")
	assert.Contains(t, out, "  hint: do the thing")
	assert.Contains(t, out, "Summary: 1 passed, 0 info, 1 warnings, 0 errors")

	doctorVerbose = true
	buf.Reset()
	_ = doctorRun(&buf, runner)
	assert.Contains(t, buf.String(), "✓ [test] ok: ok message")
}

func TestDoctorJSON(t *testing.T) {
	resetDoctorFlags(t)
	doctorJSON = true

	var buf bytes.Buffer
	err := doctorRun(&buf, doctor.NewRunner(&stubCheck{name: "ok", status: doctor.SeverityPass}))
	require.NoError(t, err)

	var report doctor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "ok", report.Results[0].Name)
	assert.Equal(t, 1, report.Summary.Passed)
}

func TestDoctorQuiet(t *testing.T) {
	resetDoctorFlags(t)
	doctorQuiet = true

	var buf bytes.Buffer
	err := doctorRun(&buf, doctor.NewRunner(&stubCheck{name: "bad", status: doctor.SeverityError}))
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Empty(t, buf.String())
}

func TestDoctorFix_ConfigPermissions(t *testing.T) {
	if os.PathSeparator == '\\' {
		t.Skip("file modes are not enforced on Windows")
	}
	resetDoctorFlags(t)
	doctorFix = true

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o666))

	var buf bytes.Buffer
	err := doctorRun(&buf, doctor.NewRunner(&doctor.ConfigCheck{Path: path}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "fixed "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDoctorChecks(t *testing.T) {
	isolate(t)
	cfg := config.Default()

	checks := doctorChecks(cfg, fakeDialogEnv("zenity"), false)
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{"platform", "native-dialog", "terminal-chooser", "opener", "config-file"}, names)
}
