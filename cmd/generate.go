package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mehXX/karabiner-gen/internal/app"
	"github.com/mehXX/karabiner-gen/internal/errors"
	"github.com/mehXX/karabiner-gen/internal/generator"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

var (
	generateOutput string
	generateStdout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write karabiner.json",
	Long: `Assemble every rule table and layer in order and write karabiner.json.

The output path is output_dir/output_file from the settings file,
./karabiner.json by default. An existing file is overwritten.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to this path instead of the configured one")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print the document instead of writing it")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateStdout && generateOutput != "" {
		return errors.ValidationError("--output and --stdout cannot be used together")
	}

	cfg, err := app.Default.GeneratorConfig()
	if err != nil {
		return err
	}

	if generateStdout {
		data, err := generator.Bytes(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path := generateOutput
	if path == "" {
		path, err = settings().OutputPath()
		if err != nil {
			return errors.ConfigError("invalid output path", err)
		}
	}

	logging.Debug("generating document", "path", path, "rules", len(cfg.Rules))
	if err := generator.Generate(path, cfg); err != nil {
		return err
	}

	logSuccess("Wrote %d rules to %s", len(cfg.Rules), path)
	return nil
}
