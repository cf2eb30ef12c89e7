package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/internal/validation"
	"github.com/Davincible/oagen/pkg/galois"
)

// NewFieldCommand creates the command that prints a Galois field
func NewFieldCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "field [q]",
		Short: "Print the tables of the Galois field GF(q)",
		Long: `Print the characteristic polynomial, elements, addition and
multiplication tables, reciprocals, negatives and square roots of GF(q).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			q, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid field order %q", args[0])
			}
			if err := validation.ValidateLevels(q, cm.GetConfig().Limits.MaxFieldOrder); err != nil {
				return err
			}

			gf, err := galois.New(q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary {
				_, err := fmt.Fprintln(out, gf.Summary())
				return err
			}
			return gf.Fprint(out)
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Print only p, n and the characteristic polynomial")

	return cmd
}
