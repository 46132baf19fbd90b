// Package logging provides logging utilities for karabiner-gen.
//
// Two kinds of output are kept apart:
//   - Debug logging: structured logs (via slog), one line per generation
//     stage, enabled with --verbose and switched to JSON with --json
//   - User output: short status lines for whoever ran the generator
//
// # Debug Logging
//
//	logging.Debug("loaded table", "name", name, "rules", len(rules))
//	logging.Warn("layer variable reused by another source", "variable", v)
//
// # User Output
//
//	logging.UserInfo("Assembling %d sources...", n)
//	logging.UserSuccess("Wrote %d rules to %s", n, path)
//	logging.UserWarning("unknown setting %q ignored", key)
//	logging.UserError("generation failed: %v", err)
//
// UserInfo and UserSuccess write to Stdout, UserWarning and UserError to
// Stderr. SetUserOutput redirects both (the CLI points them at the cobra
// command's writers).
//
// # Status Indicators
//
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
