package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Davincible/oagen/pkg/config"
	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/matrix"
)

var (
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// loadConfig opens the configuration and applies its colour setting to
// the command output
func loadConfig(cmd *cobra.Command) (*config.ConfigManager, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !cm.GetConfig().UI.UseColor || !isTerminal(cmd.OutOrStdout()) {
		color.NoColor = true
	}

	return cm, nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w in columns, or 0 when unknown
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// jsonOutput reports whether the global --json flag is set
func jsonOutput(cmd *cobra.Command) bool {
	outputJSON, _ := cmd.Flags().GetBool("json")
	return outputJSON
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeTable prints an array with one row per line. Cells are padded to
// the widest symbol; single digit arrays too wide for the terminal are
// printed without separators.
func writeTable(w io.Writer, a *matrix.Dense, q, width int) error {
	cell := len(strconv.Itoa(max(q-1, 0)))
	sep := " "
	if width > 0 && cell == 1 && a.Cols()*2-1 > width {
		sep = ""
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < a.Rows(); r++ {
		for c, v := range a.Row(r) {
			if c > 0 {
				bw.WriteString(sep)
			}
			fmt.Fprintf(bw, "%*d", cell, v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// printWarnings lists defect warnings on w
func printWarnings(w io.Writer, warnings []design.Warning) {
	for _, warning := range warnings {
		warnColor.Fprintf(w, "warning: %s\n", warning.Message)
	}
}
