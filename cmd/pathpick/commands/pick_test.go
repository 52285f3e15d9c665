package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pathpick/internal/cli/prompt"
	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
	"github.com/thoreinstein/pathpick/internal/picker"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// scriptedPick returns results in order and counts calls.
type scriptedPick struct {
	results []picker.Result
	err     error
	calls   int
}

func (s *scriptedPick) pick(_ context.Context, _ picker.Request) (picker.Result, error) {
	if s.err != nil {
		return picker.Result{}, s.err
	}
	res := s.results[s.calls]
	s.calls++
	return res, nil
}

// scriptedConfirm answers Confirm from a fixed list.
type scriptedConfirm struct {
	answers []bool
	err     error
	asked   int
}

func (c *scriptedConfirm) Confirm(string, bool) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	a := c.answers[c.asked]
	c.asked++
	return a, nil
}

func invalid(path string) picker.Result {
	return picker.Result{Kind: picker.KindInvalid, Paths: []string{path}, Reason: pathutil.Validate(path)}
}

func selected(paths ...string) picker.Result {
	return picker.Result{Kind: picker.KindSelected, Paths: paths, Adapter: "manual"}
}

func TestPickWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		results   []picker.Result
		answers   []bool
		attempts  int
		wantKind  picker.Kind
		wantCalls int
		wantAsked int
		wantCode  int
	}{
		{
			name:      "first selection accepted",
			results:   []picker.Result{selected("/tmp/a")},
			attempts:  3,
			wantKind:  picker.KindSelected,
			wantCalls: 1,
		},
		{
			name:      "cancellation passes through",
			results:   []picker.Result{{Kind: picker.KindCancelled}},
			attempts:  3,
			wantKind:  picker.KindCancelled,
			wantCalls: 1,
		},
		{
			name:      "invalid then valid",
			results:   []picker.Result{invalid("CON"), selected("/tmp/a")},
			answers:   []bool{true},
			attempts:  3,
			wantKind:  picker.KindSelected,
			wantCalls: 2,
			wantAsked: 1,
		},
		{
			name:      "declining ends as cancelled",
			results:   []picker.Result{invalid("a|b")},
			answers:   []bool{false},
			attempts:  3,
			wantKind:  picker.KindCancelled,
			wantCalls: 1,
			wantAsked: 1,
		},
		{
			name:      "attempts exhausted",
			results:   []picker.Result{invalid("CON"), invalid("NUL")},
			answers:   []bool{true},
			attempts:  2,
			wantKind:  picker.KindInvalid,
			wantCalls: 2,
			wantAsked: 1,
			wantCode:  errors.ExitUser,
		},
		{
			name:      "zero attempts still tries once",
			results:   []picker.Result{invalid("CON")},
			attempts:  0,
			wantKind:  picker.KindInvalid,
			wantCalls: 1,
			wantCode:  errors.ExitUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPick{results: tt.results}
			c := &scriptedConfirm{answers: tt.answers}
			var stderr bytes.Buffer

			res, err := pickWithRetry(t.Context(), p.pick, picker.Request{}, c, tt.attempts, &stderr)

			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantCalls, p.calls)
			assert.Equal(t, tt.wantAsked, c.asked)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.ExitCode(err))
				var ve *pathutil.ValidationError
				assert.True(t, errors.As(err, &ve))
			} else {
				require.NoError(t, err)
			}
			if tt.wantAsked > 0 || tt.wantCode != 0 {
				assert.Contains(t, stderr.String(), "Invalid selection:")
			}
		})
	}
}

func TestPickWithRetry_ConfirmCancelled(t *testing.T) {
	p := &scriptedPick{results: []picker.Result{invalid("CON")}}
	c := &scriptedConfirm{err: prompt.ErrInputCancelled}

	res, err := pickWithRetry(t.Context(), p.pick, picker.Request{}, c, 3, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, picker.KindCancelled, res.Kind)
}

func TestPickWithRetry_PickError(t *testing.T) {
	p := &scriptedPick{err: picker.ErrNoFallback}

	_, err := pickWithRetry(t.Context(), p.pick, picker.Request{}, &scriptedConfirm{}, 3, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.True(t, errors.Is(err, picker.ErrNoFallback))
}

func TestWritePickResult(t *testing.T) {
	res := picker.Result{
		Kind:     picker.KindSelected,
		Paths:    []string{"/tmp/a.txt", "/tmp/b.txt"},
		NameOnly: true,
		Adapter:  "sandbox",
	}

	var text bytes.Buffer
	require.NoError(t, writePickResult(&text, res, false))
	assert.Equal(t, "/tmp/a.txt\n/tmp/b.txt\n", text.String())

	var js bytes.Buffer
	require.NoError(t, writePickResult(&js, res, true))
	var got pickOutput
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	assert.Equal(t, pickOutput{Paths: res.Paths, NameOnly: true, Adapter: "sandbox"}, got)
}

func fakeDialogEnv(programs ...string) dialog.Env {
	found := make(map[string]bool, len(programs))
	for _, p := range programs {
		found[p] = true
	}
	return dialog.Env{
		GOOS: "linux",
		LookPath: func(file string) (string, error) {
			if found[file] {
				return filepath.Join("/usr/bin", file), nil
			}
			return "", errors.New("not found")
		},
		Getenv: func(key string) string {
			if key == "DISPLAY" {
				return ":0"
			}
			return ""
		},
	}
}

func TestBuildEnvironment(t *testing.T) {
	logger := logging.ForTest(t)
	pr := prompt.NewPrompterWithIO(&bytes.Buffer{}, &bytes.Buffer{})

	t.Run("bridge found", func(t *testing.T) {
		cfg := config.Default()
		env := buildEnvironment(cfg, host{dialog: fakeDialogEnv("kdialog"), prompter: pr}, logger)

		require.NotNil(t, env.Bridge)
		n, ok := env.Bridge.(*dialog.Native)
		require.True(t, ok)
		assert.Equal(t, dialog.BackendKDialog, n.Backend())
		assert.Nil(t, env.Sandbox, "sandbox needs a terminal")
		assert.NotNil(t, env.Prompter)
	})

	t.Run("bridge disabled", func(t *testing.T) {
		cfg := config.Default()
		cfg.Picker.Bridge = dialog.None
		env := buildEnvironment(cfg, host{dialog: fakeDialogEnv("zenity")}, logger)

		assert.Nil(t, env.Bridge)
		assert.Nil(t, env.Prompter)
		caps := picker.DetectCapabilities(env)
		assert.False(t, caps.HasHostBridge)
	})

	t.Run("sandbox on a terminal", func(t *testing.T) {
		cfg := config.Default()
		cfg.Picker.Root = t.TempDir()
		env := buildEnvironment(cfg, host{dialog: fakeDialogEnv(), interactive: true}, logger)

		assert.Nil(t, env.Bridge)
		assert.NotNil(t, env.Sandbox)
	})

	t.Run("sandbox disabled by config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Picker.Sandbox = false
		env := buildEnvironment(cfg, host{dialog: fakeDialogEnv(), interactive: true}, logger)
		assert.Nil(t, env.Sandbox)
	})

	t.Run("missing chooser root", func(t *testing.T) {
		cfg := config.Default()
		cfg.Picker.Root = filepath.Join(t.TempDir(), "missing")
		env := buildEnvironment(cfg, host{dialog: fakeDialogEnv(), interactive: true}, logger)
		assert.Nil(t, env.Sandbox)
	})
}

func TestPickCommand_InvalidMode(t *testing.T) {
	isolate(t)

	_, err := execute(t, "pick", "--mode", "socket")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.True(t, errors.Is(err, picker.ErrInvalidMode))
}
