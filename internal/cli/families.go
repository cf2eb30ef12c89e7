package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/pkg/design"
)

// FamilyListing is the JSON form of one family
type FamilyListing struct {
	Name       string   `json:"name"`
	Aliases    []string `json:"aliases,omitempty"`
	Array      string   `json:"array"`
	Parameter  string   `json:"parameter,omitempty"`
	Summary    string   `json:"summary"`
	Rows       int      `json:"rows,omitempty"`
	MaxColumns int      `json:"max_columns,omitempty"`
	FieldOrder int      `json:"field_order,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// NewFamiliesCommand creates the command that lists the construction
// families
func NewFamiliesCommand() *cobra.Command {
	var (
		levels int
		params design.Params
	)

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List construction families",
		Long: `List the construction families with their array parameters.

With --levels the run count and column limit of each family at that
number of symbols is shown, or the reason the family cannot be used.`,
		Example: `  oagen families
  oagen families --levels 5 --lambda 5 --exponent 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			listings := listFamilies(levels, params)
			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, listings)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			if levels > 0 {
				fmt.Fprintf(tw, "FAMILY\tRUNS\tMAX COLUMNS\tFIELD\tARRAY\n")
				for _, l := range listings {
					if l.Error != "" {
						fmt.Fprintf(tw, "%s\t-\t-\t-\t%s\n", l.Name, l.Error)
						continue
					}
					fmt.Fprintf(tw, "%s\t%d\t%d\tGF(%d)\t%s\n", l.Name, l.Rows, l.MaxColumns, l.FieldOrder, l.Array)
				}
				return tw.Flush()
			}

			fmt.Fprintf(tw, "FAMILY\tALIASES\tARRAY\tDESCRIPTION\n")
			for _, l := range listings {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Name, strings.Join(l.Aliases, ","), l.Array, l.Summary)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&levels, "levels", "q", 0, "Show run counts and column limits at q levels")
	cmd.Flags().IntVarP(&params.Strength, "strength", "t", 3, "Strength used for busht")
	cmd.Flags().IntVar(&params.Lambda, "lambda", 2, "Lambda used for bosebushl")
	cmd.Flags().IntVarP(&params.Exponent, "exponent", "n", 4, "Exponent used for addelkempn")

	return cmd
}

func listFamilies(levels int, params design.Params) []FamilyListing {
	var listings []FamilyListing
	for _, info := range design.Families() {
		l := FamilyListing{
			Name:      info.Name,
			Aliases:   info.Aliases,
			Array:     info.Array,
			Parameter: info.Parameter,
			Summary:   info.Summary,
		}
		if levels > 0 {
			shape, err := design.ShapeOf(info.Family, levels, params)
			if err != nil {
				l.Error = err.Error()
			} else {
				l.Rows, l.MaxColumns, l.FieldOrder = shape.Rows, shape.MaxColumns, shape.FieldOrder
			}
		}
		listings = append(listings, l)
	}
	return listings
}
