package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/internal/validation"
	"github.com/Davincible/oagen/pkg/config"
)

// NewProfileCommand creates the command group for saved build requests
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved build requests",
		Example: `  oagen profile add screening --family ak2 --levels 5 --columns 10
  oagen build --profile screening`,
	}

	cmd.AddCommand(
		newProfileListCommand(),
		newProfileAddCommand(),
		newProfileDeleteCommand(),
	)

	return cmd
}

func newProfileListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			profiles := cm.ListProfiles()
			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, profiles)
			}
			if len(profiles) == 0 {
				fmt.Fprintln(out, "No profiles saved")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tFAMILY\tLEVELS\tCOLUMNS\tDESCRIPTION\n")
			for _, p := range profiles {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", p.Name, p.Family, p.Levels, p.Columns, p.Description)
			}
			return tw.Flush()
		},
	}
}

func newProfileAddCommand() *cobra.Command {
	var profile config.Profile

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Save a build request under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			profile.Name = validation.SanitizeInput(args[0])
			if profile.Levels != 0 {
				if err := validation.ValidateLevels(profile.Levels, cm.GetConfig().Limits.MaxFieldOrder); err != nil {
					return err
				}
			}
			if err := cm.AddProfile(&profile); err != nil {
				return err
			}

			successColor.Fprintf(cmd.OutOrStdout(), "✓ Profile '%s' saved\n", profile.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile.Family, "family", "f", "bose", "Construction family")
	cmd.Flags().IntVarP(&profile.Levels, "levels", "q", 0, "Number of symbols")
	cmd.Flags().IntVarP(&profile.Columns, "columns", "k", 0, "Number of columns")
	cmd.Flags().IntVarP(&profile.Strength, "strength", "t", 0, "Strength for busht")
	cmd.Flags().IntVar(&profile.Lambda, "lambda", 0, "Lambda for bosebushl")
	cmd.Flags().IntVarP(&profile.Exponent, "exponent", "n", 0, "Exponent for addelkempn")
	cmd.Flags().StringVarP(&profile.Description, "description", "d", "", "Free text description")

	return cmd
}

func newProfileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cm.DeleteProfile(args[0]); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Profile '%s' deleted\n", args[0])
			return nil
		},
	}
}
