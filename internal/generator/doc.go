// Package generator builds and writes karabiner.json.
//
// The document always has the same shell: a global section with every
// flag off and a single profile holding the simple modifications and the
// assembled complex modification rules.
//
//	cfg := &generator.Config{
//	    Profile:             "Default",
//	    SimpleModifications: mods,
//	    Rules:               assembly.Rules,
//	}
//
//	if err := generator.Generate("karabiner.json", cfg); err != nil {
//	    return err
//	}
//
// # Output Format
//
// Render emits JSON with two-space indentation, no HTML escaping (so "&",
// "<" and ">" in shell commands stay readable) and a trailing newline. The
// same Config always renders to the same bytes.
//
// # Writing
//
// Write replaces the whole file in one call. There is no temporary file,
// rename or backup; the daemon picks up the change on its own.
package generator
