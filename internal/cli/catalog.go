package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/siunit/internal/unit"
)

// UnitInfo is one row of the units table.
type UnitInfo struct {
	Symbol   string      `json:"symbol"`
	Name     string      `json:"name"`
	Kind     string      `json:"kind"` // "base" or "named"
	Base     unit.Vector `json:"base"`
	Rendered string      `json:"rendered"`
}

// IdentityInfo is one entry of the identity catalog.
type IdentityInfo struct {
	Index    int            `json:"index"`
	Group    string         `json:"group"` // "basic" or "extra"
	Unit     string         `json:"unit,omitempty"`
	Identity unit.Composite `json:"identity"`
	Rendered string         `json:"rendered"`
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List base axes and named units",
		Long: `List every supported unit with its symbol, name and base-axis dimension.

Symbols and names are both accepted wherever a dimension is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := rootOpts.style()
			if err != nil {
				return err
			}
			infos := listUnits(style)

			var b strings.Builder
			tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOL\tNAME\tKIND\tBASE")
			for _, u := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Symbol, u.Name, u.Kind, u.Rendered)
			}
			tw.Flush()

			return rootOpts.formatter(cmd).Success(b.String(), infos)
		},
	}
}

func listUnits(style unit.Style) []UnitInfo {
	title := cases.Title(language.English)

	units := unit.Units()
	infos := make([]UnitInfo, 0, len(units))
	for _, u := range units {
		kind := "named"
		if _, ok := u.(unit.Axis); ok {
			kind = "base"
		}
		infos = append(infos, UnitInfo{
			Symbol:   u.Symbol(),
			Name:     title.String(u.Name()),
			Kind:     kind,
			Base:     u.Vector(),
			Rendered: unit.Render(u.Vector(), style),
		})
	}
	return infos
}

// NewIdentitiesCommand creates the identities command.
func NewIdentitiesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "identities",
		Short: "List the identity catalog in walk order",
		Long: `List the identities the simplifier tries, in the order it tries them.

Basic identities relate one named unit to base axes. Extra identities
relate named units to each other.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := rootOpts.style()
			if err != nil {
				return err
			}
			infos := listIdentities(style)

			var b strings.Builder
			tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tGROUP\tUNIT\tIDENTITY")
			for _, id := range infos {
				name := id.Unit
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", id.Index, id.Group, name, id.Rendered)
			}
			tw.Flush()

			return rootOpts.formatter(cmd).Success(b.String(), infos)
		},
	}
}

func listIdentities(style unit.Style) []IdentityInfo {
	order := unit.BasicOrder()
	basic := unit.BasicIdentities()

	all := unit.Identities()
	infos := make([]IdentityInfo, 0, len(all))
	for i, c := range all {
		info := IdentityInfo{
			Index:    i,
			Group:    "extra",
			Identity: c,
			Rendered: unit.Render(c, style),
		}
		if i < len(basic) {
			info.Group = "basic"
			info.Unit = order[i].Symbol()
		}
		infos = append(infos, info)
	}
	return infos
}
