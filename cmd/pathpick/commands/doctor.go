package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pathpick/internal/config"
	"github.com/thoreinstein/pathpick/internal/dialog"
	"github.com/thoreinstein/pathpick/internal/doctor"
	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
	"github.com/thoreinstein/pathpick/internal/paths"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues such as config file permissions")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the picker environment",
	Long: `Run diagnostic checks on the host and the pathpick configuration.

Reports the detected platform, which native dialog program would be used,
whether the terminal chooser can run, the program used by 'pathpick open'
and the health of the config file.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Show problems only
  pathpick doctor

  # Show every check
  pathpick doctor --verbose

  # Tighten config file permissions
  pathpick doctor --fix

  See Also: pathpick config, pathpick pick`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --json, --quiet, and --verbose are mutually exclusive"),
			"Pick one output mode")
	}

	return nil
}

// doctorChecks returns the checks run by the doctor command.
func doctorChecks(cfg *config.Config, env dialog.Env, interactive bool) []doctor.Check {
	configPath := config.FileUsed()
	if configPath == "" {
		configPath = configFile
	}
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	root, err := paths.ExpandHome(cfg.Picker.Root)
	if err != nil {
		root = cfg.Picker.Root
	}

	return []doctor.Check{
		&doctor.PlatformCheck{Target: cfg.Picker.TargetPlatform},
		&doctor.BridgeCheck{Env: env, Selection: cfg.Picker.Bridge},
		&doctor.SandboxCheck{Enabled: cfg.Picker.Sandbox, Interactive: interactive, Root: root},
		&doctor.OpenerCheck{Env: env},
		&doctor.ConfigCheck{Path: configPath},
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	checks := doctorChecks(
		currentConfig(),
		dialog.SystemEnv(runtime.GOOS),
		logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stderr),
	)
	return doctorRun(cmd.OutOrStdout(), doctor.NewRunner(checks...))
}

func doctorRun(w io.Writer, runner *doctor.Runner) error {
	report := runner.Run()

	if doctorFix {
		fixes := runner.Fix()
		if !doctorQuiet && !doctorJSON {
			outputFixResults(w, fixes)
		}
		if len(fixes) > 0 {
			report = runner.Run()
		}
	}

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errDoctorErrors
	}
	if report.HasWarnings() {
		return errDoctorWarnings
	}
	return nil
}

func outputFixResults(w io.Writer, fixes []doctor.FixResult) {
	for _, f := range fixes {
		icon := "✓"
		if !f.Fixed {
			icon = "✗"
		}
		fmt.Fprintf(w, "%s fixed %s: %s\n", icon, f.Path, f.Description)
	}
	if len(fixes) > 0 {
		fmt.Fprintln(w)
	}
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	outputDoctorText(w, report)
	return nil
}

func outputDoctorJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report) {
	// In normal mode, show only errors and warnings
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// errDoctorWarnings exits with status 1 without printing anything.
var errDoctorWarnings = errors.NewExitError(nil, errors.ExitUser)

// errDoctorErrors exits with status 2 without printing anything.
var errDoctorErrors = errors.NewExitError(nil, errors.ExitSystem)
