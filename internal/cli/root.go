package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/siunit/internal/config"
	"github.com/roach88/siunit/internal/logging"
	"github.com/roach88/siunit/internal/unit"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Style   string // key of unit.Styles

	// Config seeds flag defaults. Set by NewRootCommand.
	Config *config.Config

	// Logger is built in PersistentPreRunE. Commands constructed on their
	// own get a no-op logger.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the siunit CLI.
//
// Flag defaults come from SIUNIT_* environment variables when they are
// set and valid.
func NewRootCommand() *cobra.Command {
	cfg := config.LoadOrDefault()
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "siunit",
		Short: "siunit - SI dimensional analysis",
		Long: `Inspect, simplify and check SI dimensions.

Dimensions are given as symbol=exponent lists, for example
--base kg=1,m=2,s=-2 --named J=1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, ok := unit.Styles[opts.Style]; !ok {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid style %q: must be one of %v", opts.Style, styleNames()))
			}

			logCfg := cfg.LoggerConfig()
			if opts.Verbose {
				logCfg = logging.DevelopmentConfig()
			}
			logger, err := logging.New(logCfg)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to build logger", err)
			}
			opts.Logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Style, "style", cfg.Style, "rendering style (plain|dot)")

	cmd.AddCommand(NewSimplifyCommand(opts))
	cmd.AddCommand(NewFlattenCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewIdentitiesCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// logger returns the configured logger or a no-op one.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// settings returns the seeding configuration or the defaults.
func (o *RootOptions) settings() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

// style resolves the --style flag.
func (o *RootOptions) style() (unit.Style, error) {
	name := o.Style
	if name == "" {
		name = "plain"
	}
	s, ok := unit.Styles[name]
	if !ok {
		return unit.Style{}, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid style %q: must be one of %v", name, styleNames()))
	}
	return s, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func styleNames() []string {
	names := make([]string, 0, len(unit.Styles))
	for name := range unit.Styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
