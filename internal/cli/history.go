package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/siunit/internal/store"
	"github.com/roach88/siunit/internal/unit"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB       string
	Scenario string
	Run      string
}

// RunSummary is one row of the history listing.
type RunSummary struct {
	Seq      int64    `json:"seq"`
	ID       string   `json:"id"`
	Scenario string   `json:"scenario"`
	Pass     bool     `json:"pass"`
	Errors   []string `json:"errors,omitempty"`
}

// RunDetail is a single recorded run with its quantities.
type RunDetail struct {
	RunSummary
	Quantities []QuantityDetail `json:"quantities"`
}

// QuantityDetail is a recorded quantity.
type QuantityDetail struct {
	Name      string         `json:"name"`
	Value     float64        `json:"value"`
	Dimension unit.Composite `json:"dimension"`
	Rendered  string         `json:"rendered"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := rootOpts.settings()
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded scenario runs",
		Long: `List runs recorded by "siunit check --db", oldest first.

Examples:
  siunit history --db history.db
  siunit history --db history.db --scenario power_from_energy
  siunit history --db history.db --run 0192f0c4-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", cfg.DB, "SQLite database with recorded runs")
	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only list runs of this scenario")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show one run with its quantities")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	if opts.DB == "" {
		return NewExitError(ExitCommandError, "--db is required")
	}
	// Opening would create an empty database.
	if _, err := os.Stat(opts.DB); err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.DB))
	}

	history, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer history.Close()

	out := opts.formatter(cmd)
	if opts.Run != "" {
		return showRun(cmd, out, history, opts.Run)
	}

	runs, err := history.ListRuns(cmd.Context(), opts.Scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, r := range runs {
		summaries = append(summaries, summarize(r))
	}
	if len(summaries) == 0 {
		return out.Success("No runs recorded.", summaries)
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tSCENARIO\tRESULT")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Seq, s.ID, s.Scenario, passLabel(s.Pass))
	}
	tw.Flush()
	return out.Success(b.String(), summaries)
}

func showRun(cmd *cobra.Command, out *OutputFormatter, history *store.Store, id string) error {
	run, err := history.ReadRun(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, "unknown run", err)
		}
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	detail := RunDetail{
		RunSummary: summarize(run),
		Quantities: make([]QuantityDetail, 0, len(run.Quantities)),
	}
	for _, q := range run.Quantities {
		detail.Quantities = append(detail.Quantities, QuantityDetail(q))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run %d %s: %s %s\n", run.Seq, run.ID, run.Scenario, passLabel(run.Pass))
	for _, e := range run.Errors {
		fmt.Fprintf(&b, "  error: %s\n", e)
	}
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, q := range detail.Quantities {
		fmt.Fprintf(tw, "  %s\t%v\t%s\n", q.Name, q.Value, q.Rendered)
	}
	tw.Flush()
	return out.Success(b.String(), detail)
}

func summarize(r store.Run) RunSummary {
	return RunSummary{
		Seq:      r.Seq,
		ID:       r.ID,
		Scenario: r.Scenario,
		Pass:     r.Pass,
		Errors:   r.Errors,
	}
}

func passLabel(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
