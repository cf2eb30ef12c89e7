package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAgreeCommand creates the command that reports row and column
// agreement of a saved array
func NewAgreeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "agree [file]",
		Short: "Report row agreement and coincidence defects",
		Long: `Report the largest number of columns in which two distinct rows agree,
and the number of column triples in which two rows coincide.

A positive triple count is the coincidence defect of the maximal
Bose-Bush and Addelman-Kempthorne arrays.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			o, err := loadArray(args[0], format, 0)
			if err != nil {
				return err
			}

			agreement := o.Agreement()
			triples := o.Triples()

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, map[string]any{
					"file":          args[0],
					"max_agreement": agreement.Max,
					"rows":          []int{agreement.Row1, agreement.Row2},
					"triples":       triples,
				})
			}

			fmt.Fprintf(out, "max pairwise agreement: %d columns (rows %d and %d)\n", agreement.Max, agreement.Row1, agreement.Row2)
			if triples > 0 {
				warnColor.Fprintf(out, "column triples with coinciding rows: %d\n", triples)
			} else {
				fmt.Fprintln(out, "column triples with coinciding rows: 0")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "File format: csv, json or text (default from extension)")

	return cmd
}
