package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/siunit/internal/harness"
	"github.com/roach88/siunit/internal/unit"
)

// DimensionOptions holds the dimension flags shared by simplify, flatten and
// render.
type DimensionOptions struct {
	*RootOptions
	Base  map[string]int
	Named map[string]int
}

// DimensionResult is the JSON payload of the dimension commands.
type DimensionResult struct {
	Input     unit.Composite `json:"input"`
	Dimension any            `json:"dimension"`
	Rendered  string         `json:"rendered"`
}

func addDimensionFlags(cmd *cobra.Command, opts *DimensionOptions) {
	cmd.Flags().StringToIntVar(&opts.Base, "base", nil, "base axis exponents, e.g. kg=1,m=2,s=-2")
	cmd.Flags().StringToIntVar(&opts.Named, "named", nil, "named unit exponents, e.g. J=1,W=-1")
}

// composite parses the flags into a dimension.
func (o *DimensionOptions) composite() (unit.Composite, error) {
	c, err := harness.DimensionOf(o.Base, o.Named)
	if err != nil {
		return unit.Composite{}, WrapExitError(ExitCommandError, "invalid dimension", err)
	}
	return c, nil
}

// NewSimplifyCommand creates the simplify command.
func NewSimplifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DimensionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "simplify",
		Aliases: []string{"derive"},
		Short:   "Rewrite a dimension using named units",
		Long: `Rewrite a dimension as the shortest encoding the identity catalog reaches.

Examples:
  siunit simplify --base kg=1,m=2,s=-2
  siunit derive --base kg=1,m=3,s=-2 --style dot
  siunit simplify --named J=1 --base s=-1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDimension(cmd, opts, func(c unit.Composite) (unit.Renderable, any) {
				s := c.Simplify()
				return s, s
			})
		},
	}
	addDimensionFlags(cmd, opts)
	return cmd
}

// NewFlattenCommand creates the flatten command.
func NewFlattenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DimensionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Reduce a dimension to base axes",
		Long: `Expand every named unit into base axes.

Examples:
  siunit flatten --named J=1
  siunit flatten --named W=1 --base s=1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDimension(cmd, opts, func(c unit.Composite) (unit.Renderable, any) {
				v := c.Flatten()
				return v, v
			})
		},
	}
	addDimensionFlags(cmd, opts)
	return cmd
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DimensionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dimension as given",
		Long: `Render a dimension without simplifying it.

Examples:
  siunit render --base kg=1,m=1,s=-2
  siunit render --base kg=1,m=1,s=-2 --style dot`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDimension(cmd, opts, func(c unit.Composite) (unit.Renderable, any) {
				return c, c
			})
		},
	}
	addDimensionFlags(cmd, opts)
	return cmd
}

func runDimension(cmd *cobra.Command, opts *DimensionOptions, transform func(unit.Composite) (unit.Renderable, any)) error {
	style, err := opts.style()
	if err != nil {
		return err
	}
	c, err := opts.composite()
	if err != nil {
		return err
	}

	out := opts.formatter(cmd)
	out.VerboseLog("input: %s", unit.Render(c, style))

	r, data := transform(c)
	rendered := unit.Render(r, style)
	return out.Success(rendered, DimensionResult{
		Input:     c,
		Dimension: data,
		Rendered:  rendered,
	})
}
