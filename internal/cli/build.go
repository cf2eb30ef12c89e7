package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/internal/validation"
	"github.com/Davincible/oagen/pkg/config"
	"github.com/Davincible/oagen/pkg/oa"
	"github.com/Davincible/oagen/pkg/random"
	"github.com/Davincible/oagen/pkg/storage"
)

// NewBuildCommand creates the command that constructs an array
func NewBuildCommand() *cobra.Command {
	var (
		family      string
		levels      int
		columns     int
		strengthT   int
		lambda      int
		exponent    int
		profileName string
		randomize   bool
		seedSpec    string
		outputFile  string
		format      string
		verify      bool
		maxStrength int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Construct an orthogonal array",
		Long: `Construct an orthogonal array from one of the known families.

A column count of 0 or 1 selects the largest column count the family
supports. Arrays at that maximum for the Bose-Bush and Addelman-Kempthorne
families have a known coincidence defect and are reported with a warning.

Examples:
  # 9 x 4 array of strength 2 over 3 symbols
  oagen build --family bose --levels 3

  # Strength 3 array with 5 factors at 4 levels
  oagen build --family bush --levels 4 --columns 5

  # Bush array of strength 4
  oagen build --family busht --strength 4 --levels 5

  # 2*5^3 runs, randomized and written to a file
  oagen build -f ak3 -q 5 -k 20 --randomize --seed 1,2,3,4 -o ak3.csv

  # Use a saved profile and check the result
  oagen build --profile screening --verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg := cm.GetConfig()

			var req oa.Request
			if profileName != "" {
				profile, err := cm.GetProfile(profileName)
				if err != nil {
					return err
				}
				if req, err = profile.Request(); err != nil {
					return err
				}
			}

			if family != "" {
				if req.Family, err = validation.ValidateFamily(family); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("levels") {
				req.Levels = levels
			}
			if cmd.Flags().Changed("columns") {
				req.Columns = columns
			}
			if cmd.Flags().Changed("strength") {
				req.Strength = strengthT
			}
			if cmd.Flags().Changed("lambda") {
				req.Lambda = lambda
			}
			if cmd.Flags().Changed("exponent") {
				req.Exponent = exponent
			}

			if err := cm.ApplyDefaults(&req); err != nil {
				return err
			}
			if err := validation.ValidateLevels(req.Levels, cfg.Limits.MaxFieldOrder); err != nil {
				return err
			}
			if err := validation.ValidateColumns(req.Columns); err != nil {
				return err
			}

			if err := cm.ValidateRequest(req); err != nil {
				return fmt.Errorf("invalid request: %w", err)
			}

			g := cm.Generator()
			g.Logger = slog.Default()
			o, err := g.Build(req)
			if err != nil {
				return fmt.Errorf("failed to build array: %w", err)
			}

			if randomize || cfg.Defaults.Randomize {
				src, err := randomSource(cm, seedSpec)
				if err != nil {
					return err
				}
				if err := o.Randomize(src); err != nil {
					return fmt.Errorf("failed to randomize array: %w", err)
				}
			}

			stderr := cmd.ErrOrStderr()
			printWarnings(stderr, o.Warnings())

			record := storage.NewRecord(o, req.Params())
			if outputFile != "" {
				if err := saveRecord(cmd, cfg, record, outputFile, format); err != nil {
					return err
				}
			} else if err := printRecord(cmd, cfg, o, record, format); err != nil {
				return err
			}

			if verify || cfg.Strength.AutoVerify {
				opts := cm.StrengthOptions()
				if cmd.Flags().Changed("max-strength") {
					opts.MaxStrength = maxStrength
				}
				opts.Logger = slog.Default()

				res, err := o.Strength(cmd.Context(), opts)
				if err != nil {
					return fmt.Errorf("strength check failed: %w", err)
				}
				printStrength(stderr, res)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", "", "Construction family (see 'oagen families')")
	cmd.Flags().IntVarP(&levels, "levels", "q", 0, "Number of symbols, a prime power")
	cmd.Flags().IntVarP(&columns, "columns", "k", 0, "Number of columns, 0 for the family maximum")
	cmd.Flags().IntVarP(&strengthT, "strength", "t", 0, "Strength for the busht family")
	cmd.Flags().IntVar(&lambda, "lambda", 0, "Lambda for the bosebushl family")
	cmd.Flags().IntVarP(&exponent, "exponent", "n", 0, "Exponent n for the addelkempn family")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Start from a saved profile")
	cmd.Flags().BoolVarP(&randomize, "randomize", "r", false, "Relabel the symbols of each column at random")
	cmd.Flags().StringVar(&seedSpec, "seed", "", "Four Marsaglia seeds in 1..168, e.g. 12,34,56,78")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the array to a file (.csv, .json or .txt)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: table, csv or json")
	cmd.Flags().BoolVar(&verify, "verify", false, "Certify the strength of the result")
	cmd.Flags().IntVar(&maxStrength, "max-strength", 0, "Highest strength to check with --verify")

	return cmd
}

// randomSource returns a Marsaglia source for an explicit seed, otherwise
// the configured source
func randomSource(cm *config.ConfigManager, seedSpec string) (random.Source, error) {
	if seedSpec == "" {
		return cm.RandomSource()
	}
	seed, err := validation.ParseSeed(seedSpec)
	if err != nil {
		return nil, err
	}
	m, err := random.NewMarsaglia(seed)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func saveRecord(cmd *cobra.Command, cfg *config.Config, record *storage.Record, path, format string) error {
	if !filepath.IsAbs(path) && cfg.Storage.DefaultPath != "" {
		path = filepath.Join(cfg.Storage.DefaultPath, path)
	}

	store := storage.NewArrayStore(path)
	if format != "" && format != "table" {
		f, err := storage.ParseFormat(format)
		if err != nil {
			return err
		}
		store.WithFormat(f)
	}

	if err := store.Save(record); err != nil {
		return fmt.Errorf("failed to save array: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	successColor.Fprintf(stderr, "✓ Wrote %d x %d array over %d symbols to %s\n", record.Rows, record.Cols, record.Levels, store.Path())
	fmt.Fprintf(stderr, "  digest: %s\n", record.Digest)
	return nil
}

func printRecord(cmd *cobra.Command, cfg *config.Config, o *oa.OrthogonalArray, record *storage.Record, format string) error {
	if format == "" {
		format = cfg.UI.Format
	}
	if jsonOutput(cmd) {
		format = "json"
	}
	format = strings.ToLower(format)
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return storage.Encode(out, record, storage.FormatCSV)
	case "json":
		return storage.Encode(out, record, storage.FormatJSON)
	default:
		return writeTable(out, o.Matrix(), o.Levels(), terminalWidth(out))
	}
}
