package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/mehXX/karabiner-gen/internal/logging"
)

const (
	DefaultSettingsFile = "karabiner-gen.toml"
	DefaultOutputDir    = "."
	DefaultOutputFile   = "karabiner.json"
	DefaultProfile      = "Default"
)

// sourceNameRegex validates entries of the rules order.
// Names match the catalog's file names: lowercase letters, digits and underscores.
var sourceNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_]*$`)

// ValidateSourceName checks if a rule table or layer name is well formed.
func ValidateSourceName(name string) error {
	if name == "" {
		return fmt.Errorf("rule source name cannot be empty")
	}

	if !sourceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid rule source name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, or underscores", name)
	}

	return nil
}

// Settings configures a generator run. Every field has a default, so a
// missing settings file reproduces the plain "write karabiner.json here" run.
type Settings struct {
	OutputDir  string   `toml:"output_dir"`
	OutputFile string   `toml:"output_file"`
	Profile    string   `toml:"profile"`
	Rules      []string `toml:"rules"` // Assembly order override; empty means the catalog default

	Path      string   `toml:"-"` // File the settings were loaded from, empty for defaults
	Undecoded []string `toml:"-"` // Keys present in the file but not understood
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:  DefaultOutputDir,
		OutputFile: DefaultOutputFile,
		Profile:    DefaultProfile,
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if filepath.Base(s.OutputFile) != s.OutputFile {
		return fmt.Errorf("output_file must be a file name, not a path (got %q)", s.OutputFile)
	}
	if s.Profile == "" {
		return fmt.Errorf("profile is required")
	}
	for _, name := range s.Rules {
		if err := ValidateSourceName(name); err != nil {
			return fmt.Errorf("rules: %w", err)
		}
	}
	return nil
}

// OutputPath resolves the output file inside OutputDir. The join is done
// with securejoin, so symlinks and ".." in the file name cannot place the
// result outside the directory.
func (s *Settings) OutputPath() (string, error) {
	dir := s.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	path, err := securejoin.SecureJoin(dir, s.OutputFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return path, nil
}

// LoadSettings loads settings from a TOML file. Missing keys keep their
// defaults; unknown keys are recorded in Undecoded and logged.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	md, err := toml.DecodeFile(path, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	settings.Path = path

	for _, key := range md.Undecoded() {
		settings.Undecoded = append(settings.Undecoded, key.String())
		logging.Warn("unknown setting ignored", "file", path, "key", key.String())
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	logging.Debug("loaded settings", "file", path, "output", settings.OutputFile, "profile", settings.Profile)
	return settings, nil
}

// LoadSettingsOrDefault loads path if it exists and falls back to the
// defaults otherwise.
func LoadSettingsOrDefault(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Debug("no settings file, using defaults", "file", path)
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}
