package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/cmd/pathpick/commands/flags"
	"github.com/thoreinstein/pathpick/internal/browse"
	"github.com/thoreinstein/pathpick/internal/cli/prompt"
	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
	"github.com/thoreinstein/pathpick/internal/paths"
	"github.com/thoreinstein/pathpick/internal/picker"
)

var (
	pickMode     string
	pickMultiple bool
	pickAccept   string
	pickTitle    string
	pickRoot     string
	pickJSON     bool
	pickAttempts int
)

func init() {
	pickCmd.Flags().StringVarP(&pickMode, "mode", "m", "file",
		"what to select: file, folder, any")
	pickCmd.Flags().BoolVar(&pickMultiple, "multiple", false,
		"allow selecting more than one file")
	pickCmd.Flags().StringVarP(&pickAccept, "accept", "a", picker.AcceptAny,
		`comma-separated extensions or MIME types, e.g. ".json,.yaml" or "image/*"`)
	pickCmd.Flags().StringVar(&pickTitle, "title", "",
		"dialog title or prompt text")
	pickCmd.Flags().StringVar(&pickRoot, "root", "",
		"directory the terminal chooser browses (default: picker.root)")
	pickCmd.Flags().BoolVar(&pickJSON, "json", false,
		"output the result as JSON")
	pickCmd.Flags().IntVar(&pickAttempts, "attempts", 3,
		"how many times to ask again after an invalid selection")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Ask the user for a file or folder",
	Long: `Ask the user for a file or folder and print the selected path.

The native dialog is tried first, then the terminal chooser, then a typed
prompt. A mechanism that is missing or fails hands over to the next one;
cancelling any of them ends the command with exit status 1 and no output.

Paths chosen in the terminal chooser are names relative to the chooser
root, not full paths. Invalid selections (reserved names, forbidden
characters, overlong paths) are reported and the user is asked again.`,
	Example: `  # Pick a single file
  pathpick pick

  # Pick several images
  pathpick pick --multiple --accept "image/*"

  # Pick a folder, printing a Windows path
  pathpick pick --mode folder --target windows

  # Machine-readable output
  pathpick pick --json

  See Also: pathpick doctor, pathpick path normalize`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

// pickOutput is the JSON form of a selection.
type pickOutput struct {
	Paths    []string `json:"paths"`
	NameOnly bool     `json:"name_only"`
	Adapter  string   `json:"adapter"`
}

// host describes the running process for environment assembly.
type host struct {
	dialog      dialog.Env
	interactive bool
	prompter    *prompt.Prompter
}

func runPick(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	mode, err := picker.ParseMode(pickMode)
	if err != nil {
		return errors.NewUserError(err, "Use --mode file, folder or any")
	}

	target, err := flags.TargetPlatform()
	if err != nil {
		return err
	}

	cfg := *currentConfig()
	if pickRoot != "" {
		cfg.Picker.Root = pickRoot
	}

	h := host{
		dialog:      dialog.SystemEnv(runtime.GOOS),
		interactive: logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stderr),
		prompter:    prompt.NewPrompter(),
	}
	env := buildEnvironment(&cfg, h, logger)

	p := picker.New(env,
		picker.WithLogger(logger),
		picker.WithTargetPlatform(target),
	)

	req := picker.Request{
		Mode:     mode,
		Multiple: pickMultiple,
		Accept:   pickAccept,
		Title:    pickTitle,
	}

	res, err := pickWithRetry(ctx, p.Pick, req, h.prompter, pickAttempts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if !res.Selected() {
		return errors.NewExitError(errors.ErrCancelled, errors.ExitUser)
	}

	if res.NameOnly {
		logger.Warn("terminal chooser returned names relative to its root",
			"root", cfg.Picker.Root)
	}
	return writePickResult(cmd.OutOrStdout(), res, pickJSON)
}

// buildEnvironment assembles the mechanisms the picker may use. A missing
// mechanism is left nil.
func buildEnvironment(cfg *config.Config, h host, logger *slog.Logger) picker.Environment {
	var env picker.Environment

	if n, err := dialog.Detect(h.dialog, cfg.Picker.Bridge); err != nil {
		logger.Debug("native dialog unavailable", "error", err)
	} else {
		logger.Debug("native dialog found", "backend", n.Backend(), "program", n.Program())
		env.Bridge = n
	}

	if cfg.Picker.Sandbox && h.interactive {
		if b, err := chooser(cfg.Picker.Root); err != nil {
			logger.Warn("terminal chooser unavailable", "root", cfg.Picker.Root, "error", err)
		} else {
			env.Sandbox = b
		}
	}

	if h.prompter != nil {
		env.Prompter = h.prompter
	}
	return env
}

// chooser returns a terminal browser over root.
func chooser(root string) (*browse.Browser, error) {
	dir, err := paths.ExpandHome(root)
	if err != nil {
		return nil, errors.Wrap(err, "expanding chooser root")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading chooser root")
	}
	if !info.IsDir() {
		return nil, errors.Newf("%s is not a directory", dir)
	}
	return browse.New(os.DirFS(dir)), nil
}

// pickFunc runs one selection.
type pickFunc func(context.Context, picker.Request) (picker.Result, error)

// confirmer asks a yes/no question.
type confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// pickWithRetry runs pick until the result is not Invalid, asking before
// each new attempt. Declining, or running out of attempts, ends the loop.
func pickWithRetry(ctx context.Context, pick pickFunc, req picker.Request, c confirmer, attempts int, w io.Writer) (picker.Result, error) {
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		res, err := pick(ctx, req)
		if err != nil {
			return picker.Result{}, errors.NewSystemError(err, "Run: pathpick doctor")
		}
		if res.Kind != picker.KindInvalid {
			return res, nil
		}

		fmt.Fprintf(w, "Invalid selection: %v\n", res.Reason)
		if attempt >= attempts {
			return res, errors.NewUserError(res.Reason,
				"Choose a path without reserved names or the characters <>:\"|?*")
		}

		again, err := c.Confirm("Choose again?", true)
		switch {
		case errors.Is(err, errors.ErrCancelled):
			return picker.Result{Kind: picker.KindCancelled}, nil
		case err != nil:
			return picker.Result{}, errors.Wrap(err, "reading answer")
		case !again:
			return picker.Result{Kind: picker.KindCancelled}, nil
		}
	}
}

func writePickResult(w io.Writer, res picker.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pickOutput{
			Paths:    res.Paths,
			NameOnly: res.NameOnly,
			Adapter:  res.Adapter,
		}); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return nil
	}

	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return errors.Wrap(err, "writing path")
		}
	}
	return nil
}
