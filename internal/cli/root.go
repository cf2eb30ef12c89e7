package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the oagen command tree. level is raised to
// debug by --verbose.
func NewRootCommand(version string, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oagen",
		Short: "Construct and verify orthogonal arrays",
		Long: `oagen builds orthogonal arrays OA(n, k, q, t) over Galois fields.

An n x k array over q symbols has strength t when every choice of t
columns contains each of the q^t symbol tuples equally often.

Families:
- Bose and Bush: strength 2 and strength t arrays from field polynomials
- Bose-Bush: strength 2 with 2q^2 or lambda q^2 runs
- Addelman-Kempthorne: strength 2 with 2q^n runs

Arrays can be written as CSV, JSON or text and checked again later with
'oagen strength' and 'oagen agree'.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
	}

	rootCmd.AddCommand(
		NewBuildCommand(),
		NewStrengthCommand(),
		NewAgreeCommand(),
		NewFieldCommand(),
		NewFamiliesCommand(),
		NewConfigCommand(),
		NewProfileCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	return rootCmd
}
