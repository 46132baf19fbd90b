package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mehXX/karabiner-gen/internal/layer"
)

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List layer hold keys and the variables they set",
	Args:  cobra.NoArgs,
	RunE:  runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) error {
	c := catalog()

	names, err := c.Layers()
	if err != nil {
		return fmt.Errorf("failed to list layers: %w", err)
	}

	if len(names) == 0 {
		logInfo("No layers found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYER\tHOLD\tVARIABLE\tSUB-KEYS")
	fmt.Fprintln(w, "-----\t----\t--------\t--------")

	for _, name := range names {
		spec, err := c.Layer(name)
		if err != nil {
			return err
		}
		for _, b := range layer.Expand(spec).Bindings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", spec.Name, b.HoldKey, b.VariableName, subKeys(spec, b.HoldKey))
		}
	}

	return w.Flush()
}

func subKeys(spec *layer.Spec, hold string) string {
	for _, h := range spec.Holds {
		if h.Key != hold {
			continue
		}
		keys := make([]string, len(h.Actions))
		for i, a := range h.Actions {
			keys[i] = a.Key
		}
		return strings.Join(keys, " ")
	}
	return "-"
}
