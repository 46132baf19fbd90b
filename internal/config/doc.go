// Package config provides generator settings for karabiner-gen.
//
// Settings are optional. Without a settings file the generator writes
// karabiner.json to the current directory using the "Default" profile and
// the catalog's built-in rule order.
//
// # Settings File
//
// karabiner-gen.toml (or the file given with --config):
//
//	output_dir  = "~/.config/karabiner"   # default "."
//	output_file = "karabiner.json"        # default "karabiner.json"
//	profile     = "Default"               # default "Default"
//	rules       = ["caps_hyper", "caps_bindings", "non_us_backslash_bindings"]
//
// The rules list, when present, replaces the built-in assembly order.
// Unknown keys are reported but do not fail the load.
//
// # Output Path
//
// OutputPath joins output_dir and output_file with filepath-securejoin, so
// the generated file always lands inside output_dir.
//
// # Validation
//
// LoadSettings validates after decoding. output_file must be a bare file
// name and every rules entry must be a well formed catalog name.
package config
