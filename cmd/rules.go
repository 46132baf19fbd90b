package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the assembled rules in output order",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	assembly, err := assemble()
	if err != nil {
		return err
	}

	if len(assembly.Rules) == 0 {
		logInfo("No rules assembled. List the available tables with: karabiner-gen tables")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSOURCE\tMANIPULATORS\tDESCRIPTION")
	fmt.Fprintln(w, "-\t------\t------------\t-----------")

	for _, s := range assembly.Sections {
		for i, r := range assembly.SectionRules(s) {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", s.Start+i+1, s.Name, len(r.Manipulators), r.Description)
		}
	}

	return w.Flush()
}
