package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/internal/validation"
	"github.com/Davincible/oagen/pkg/oa"
	"github.com/Davincible/oagen/pkg/storage"
	"github.com/Davincible/oagen/pkg/strength"
)

// StrengthReport is the JSON form of a strength check
type StrengthReport struct {
	File       string   `json:"file"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Levels     int      `json:"levels"`
	Strength   int      `json:"strength"`
	Index      int      `json:"index,omitempty"`
	Violation  string   `json:"violation,omitempty"`
	Advisories []string `json:"advisories,omitempty"`
}

// NewStrengthCommand creates the command that certifies the strength of a
// saved array
func NewStrengthCommand() *cobra.Command {
	var (
		levels      int
		maxStrength int
		check       int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "strength [file]",
		Short: "Certify the strength of an array file",
		Long: `Certify the strength of an array read from a CSV, JSON or text file.

Strengths 0, 1, 2, ... are checked in turn until one fails. The first
failing combination of columns and symbols is reported. The number of
levels is read from the file header, or inferred from the largest symbol.

Examples:
  oagen strength ak3.csv
  oagen strength --max-strength 3 design.txt
  oagen strength --check 2 --levels 4 design.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			o, err := loadArray(args[0], format, levels)
			if err != nil {
				return err
			}

			opts := cm.StrengthOptions()
			if cmd.Flags().Changed("max-strength") {
				opts.MaxStrength = maxStrength
			}
			opts.Logger = slog.Default()

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("check") {
				if err := validation.ValidateStrength(check); err != nil {
					return err
				}
				v, err := o.CheckStrength(cmd.Context(), check, opts)
				if err != nil {
					return err
				}
				if v != nil {
					errorColor.Fprintf(out, "✗ %s\n", v)
					return nil
				}
				successColor.Fprintf(out, "✓ strength %d holds\n", check)
				return nil
			}

			res, err := o.Strength(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				report := StrengthReport{
					File:     args[0],
					Rows:     o.Rows(),
					Cols:     o.Cols(),
					Levels:   o.Levels(),
					Strength: res.Strength,
					Index:    res.Index,
				}
				if res.Violation != nil {
					report.Violation = res.Violation.String()
				}
				for _, advisory := range res.Advisories {
					report.Advisories = append(report.Advisories, advisory.Error())
				}
				return writeJSON(out, report)
			}

			headerColor.Fprintf(out, "%s: %d rows, %d columns, %d levels\n", args[0], o.Rows(), o.Cols(), o.Levels())
			printStrength(out, res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&levels, "levels", "q", 0, "Number of symbols, overrides the file")
	cmd.Flags().IntVar(&maxStrength, "max-strength", 0, "Highest strength to check, 0 for all")
	cmd.Flags().IntVar(&check, "check", 0, "Check a single strength instead")
	cmd.Flags().StringVar(&format, "format", "", "File format: csv, json or text (default from extension)")

	return cmd
}

// loadArray reads an array file, optionally forcing its format and levels
func loadArray(path, format string, levels int) (*oa.OrthogonalArray, error) {
	store := storage.NewArrayStore(path)
	if format != "" {
		f, err := storage.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		store.WithFormat(f)
	}

	record, err := store.Load()
	if err != nil {
		return nil, err
	}
	if levels > 0 {
		record.Levels = levels
	}
	return record.Array()
}

func printStrength(w io.Writer, res strength.Result) {
	for _, advisory := range res.Advisories {
		warnColor.Fprintf(w, "note: %v\n", advisory)
	}

	switch {
	case res.Strength < 0:
		errorColor.Fprintln(w, "✗ symbols outside the declared levels")
	default:
		successColor.Fprintf(w, "✓ strength %d", res.Strength)
		fmt.Fprintf(w, " (index %d)\n", res.Index)
	}

	if res.Violation != nil {
		fmt.Fprintf(w, "  %s\n", res.Violation)
	}
}
