package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the available rule tables and layers",
	Long: `List every rule table and layer in the catalog.

ORDER is the position in the active order, or "-" for entries that are
not generated. Set rules in karabiner-gen.toml to change the order.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	entries, err := catalog().Entries()
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if len(entries) == 0 {
		logInfo("No rule tables found.")
		return nil
	}

	positions := orderPositions()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tORDER\tDESCRIPTION")
	fmt.Fprintln(w, "----\t----\t-----\t-----------")

	for _, e := range entries {
		order := "-"
		if pos, ok := positions[e.Name]; ok {
			order = strconv.Itoa(pos)
		}
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Kind, order, desc)
	}

	return w.Flush()
}
