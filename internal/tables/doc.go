// Package tables holds the declarative rule data for karabiner-gen.
//
// Rule tables and layer specs are YAML documents embedded in the binary.
// A table is a list of complete rules:
//
//	description: optional catalog note
//	rules:
//	  - description: cmd shift v no style
//	    manipulators:
//	      - from: {key_code: v, modifiers: {mandatory: [left_command, left_shift]}}
//	        to:
//	          - {key_code: slash, modifiers: [left_option, left_control, left_shift]}
//
// Manipulators may omit type; it defaults to "basic". A layer file is a
// layer.Spec and is expanded when it is loaded as a source.
//
// DefaultOrder lists the sources assembled when the settings file does not
// give its own order. Tables not in the order still ship and can be listed
// or selected explicitly.
package tables
