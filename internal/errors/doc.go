// Package errors provides typed errors with exit codes for karabiner-gen.
//
// Generation is a single pass with one side effect, so the taxonomy is
// small: a settings file can be wrong, a rule table can be missing or
// malformed, and the final write can fail.
//
// # Exit Codes
//
//	ExitSuccess       = 0  // Success
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitConfigError   = 2  // Settings file could not be read or is invalid
//	ExitTableNotFound = 3  // Rule table or layer not in the catalog
//	ExitInvalidTable  = 4  // Rule table failed to parse or validate
//	ExitWriteFailed   = 5  // karabiner.json could not be written
//
// # Constructors
//
//	errors.ConfigError("failed to parse settings", err)
//	errors.TableNotFound("telegram")
//	errors.InvalidTable("slack", err)
//	errors.WriteFailed("karabiner.json", err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
