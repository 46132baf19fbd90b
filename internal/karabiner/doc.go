// Package karabiner models the Karabiner-Elements configuration document.
//
// Field names and enumerations are dictated by the Karabiner-Elements
// schema and are serialized verbatim. The same tags are used for JSON
// (the generated karabiner.json) and YAML (the embedded rule tables).
//
// # Document Shape
//
//	Document
//	├── global                      (five booleans, all false)
//	└── profiles[0]
//	    ├── name                    ("Default")
//	    ├── simple_modifications    (1:1 key substitutions)
//	    └── complex_modifications
//	        └── rules[]             (Rule → Manipulator → From/To/Conditions)
//
// # Builders
//
// Effects, stimuli and conditions have small constructors so rule code
// stays declarative:
//
//	m := karabiner.Manipulator{
//	    Type:       karabiner.TypeBasic,
//	    From:       karabiner.FromKeyAny("right_option"),
//	    To:         []karabiner.Effect{karabiner.SelectInputSource("com.apple.keylayout.Russian")},
//	    Conditions: []karabiner.Condition{karabiner.FrontmostIf("^com.jetbrains.goland$")},
//	}
//
// Open and OpenApp build "open" shell commands with POSIX quoting. Targets
// are not validated; a malformed URL is the open command's problem.
package karabiner
