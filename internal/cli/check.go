package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/siunit/internal/harness"
	"github.com/roach88/siunit/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	DB     string // record runs here when set
	Golden string // compare traces against golden files here when set
	Update bool   // regenerate golden files
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	RunID  string   `json:"run_id,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// scenarioExts lists the file extensions check picks up from directories.
var scenarioExts = []string{".yaml", ".yml", ".cue"}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.settings()
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Run scenario files",
		Long: `Run dimensional scenarios and report which pass.

Each path is a scenario file (.yaml, .yml or .cue) or a directory that is
searched recursively for them.

--golden compares each canonical trace against <dir>/<scenario>.golden.
Given without a value it uses SIUNIT_GOLDEN_DIR. With --update the golden
files are rewritten instead. --db records every run in a SQLite history.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  siunit check ./scenarios
  siunit check power.yaml --golden=testdata/golden
  siunit check ./scenarios --golden --update
  siunit check ./scenarios --db history.db --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", cfg.DB, "record runs in this SQLite database")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "golden trace directory")
	cmd.Flags().Lookup("golden").NoOptDefVal = cfg.GoldenDir
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, paths []string) error {
	if opts.Update && opts.Golden == "" {
		return NewExitError(ExitCommandError, "--update requires --golden")
	}

	files, err := findScenarioFiles(paths)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	var history *store.Store
	if opts.DB != "" {
		history, err = store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history", err)
		}
		defer history.Close()
	}

	w := cmd.OutOrStdout()
	out := opts.formatter(cmd)

	if len(files) == 0 {
		return out.Success("No scenarios found.", CheckResult{Scenarios: []ScenarioResult{}})
	}

	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		out.VerboseLog("checking %s", file)
		sr := checkScenario(cmd, opts, history, file)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		if opts.Format != "json" {
			writeScenarioText(w, sr, opts.Update)
		}
	}

	if opts.Format == "json" {
		if err := out.Success("", result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

// checkScenario loads, runs, compares and records one scenario file.
func checkScenario(cmd *cobra.Command, opts *CheckOptions, history *store.Store, file string) ScenarioResult {
	log := opts.logger().With(zap.String("file", file))
	sr := ScenarioResult{Name: filepath.Base(file), File: file}

	scenario, err := harness.Load(file)
	if err != nil {
		sr.Errors = []string{fmt.Sprintf("failed to load scenario: %v", err)}
		return sr
	}
	sr.Name = scenario.Name

	result, err := harness.Run(scenario, harness.WithLogger(opts.logger()))
	if err != nil {
		sr.Errors = []string{fmt.Sprintf("execution failed: %v", err)}
		return sr
	}
	sr.Pass = result.Pass
	sr.Errors = append(sr.Errors, result.Errors...)

	if opts.Golden != "" {
		if err := harness.CheckGolden(opts.Golden, scenario.Name, result, opts.Update); err != nil {
			sr.Pass = false
			sr.Errors = append(sr.Errors, fmt.Sprintf("golden: %v", err))
		}
	}

	if history != nil {
		run := store.RunFromResult(scenario.Name, result)
		run.Pass = sr.Pass
		run.Errors = sr.Errors
		recorded, err := history.RecordRun(cmd.Context(), run)
		if err != nil {
			log.Warn("failed to record run", zap.Error(err))
			sr.Pass = false
			sr.Errors = append(sr.Errors, fmt.Sprintf("record run: %v", err))
		} else {
			sr.RunID = recorded.ID
			log.Debug("run recorded", zap.String("run_id", recorded.ID), zap.Int64("seq", recorded.Seq))
		}
	}

	return sr
}

func writeScenarioText(w io.Writer, sr ScenarioResult, update bool) {
	if !sr.Pass {
		fmt.Fprintf(w, "✗ %s\n", sr.Name)
		for _, e := range sr.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
		return
	}
	if update {
		fmt.Fprintf(w, "✓ %s (golden updated)\n", sr.Name)
		return
	}
	fmt.Fprintf(w, "✓ %s\n", sr.Name)
}

// findScenarioFiles expands paths into scenario files. Files named directly
// are kept whatever their extension; directories are walked. The result is
// sorted so runs are recorded in a stable order.
func findScenarioFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("scenario path not found: %s", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if slices.Contains(scenarioExts, filepath.Ext(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
