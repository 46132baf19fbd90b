package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mehXX/karabiner-gen/internal/app"
	"github.com/mehXX/karabiner-gen/internal/config"
	"github.com/mehXX/karabiner-gen/internal/errors"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "karabiner-gen",
	Short: "Declarative Karabiner-Elements configuration generator",
	Long: `karabiner-gen builds karabiner.json from declarative rule tables.

The generated file contains:
  - Simple modifications (fn and left_control swapped)
  - Hand-written rule tables for hyper keys and per-app shortcuts
  - Layer bindings expanded into toggle and action rules

Running karabiner-gen without a command is the same as "karabiner-gen generate".
Settings are read from karabiner-gen.toml in the current directory if present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return loadSettings()
	},
	RunE: runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (default "+config.DefaultSettingsFile+" if present)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadSettings installs the settings file into the default App. An
// explicit --config must exist; the default file is optional, and without
// it the App keeps the settings it already has.
func loadSettings() error {
	var (
		s   *config.Settings
		err error
	)
	if configPath != "" {
		s, err = config.LoadSettings(configPath)
	} else {
		s, err = config.LoadSettingsOrDefault(config.DefaultSettingsFile)
	}
	if err != nil {
		return errors.ConfigError("failed to load settings", err)
	}
	if s.Path == "" {
		return nil
	}

	for _, key := range s.Undecoded {
		logWarning("Unknown setting %q in %s ignored", key, s.Path)
	}

	app.SetDefault(app.New(
		app.WithSettings(s),
		app.WithCatalog(app.Default.Catalog),
	))
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
