package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mehXX/karabiner-gen/internal/generator"
	"github.com/mehXX/karabiner-gen/internal/logging"
	"github.com/mehXX/karabiner-gen/internal/tui"
)

var browsePlain bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive rule browser",
	Long: `Opens an interactive TUI over the assembled rules, grouped by source.

Use arrow keys or j/k to navigate, / to filter, Enter to print the
selected rule as JSON.

Without a terminal, or with --plain, the rules are printed as a list.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browsePlain, "plain", false, "Print a plain listing instead of the TUI")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	assembly, err := assemble()
	if err != nil {
		return err
	}

	if browsePlain || !isTerminal() {
		fmt.Fprint(cmd.OutOrStdout(), tui.SimpleList(assembly))
		return nil
	}

	logging.Debug("browser started", "rules", len(assembly.Rules))

	result, err := tui.RunBrowser(assembly)
	if err != nil {
		return fmt.Errorf("browser error: %w", err)
	}

	logging.Debug("browser result", "action", result.Action)

	switch result.Action {
	case tui.ActionShow:
		if result.Rule != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "# %d. %s (%s)\n", result.Index+1, result.Rule.Description, result.Source)
			return generator.Encode(cmd.OutOrStdout(), result.Rule)
		}

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
