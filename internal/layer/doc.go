// Package layer expands chorded sub-layers into Karabiner rules.
//
// A layer is activated by a variable named after the layer (for example
// "non_us_backslash", set by a rule that fires while § is held). Inside an
// active layer, holding a hold key enables a sub-layer, and pressing a
// sub-key triggers that sub-key's effect:
//
//	hold §  →  hold spacebar  →  press n  →  open https://news.ycombinator.com
//
// # Specs
//
// A Spec lists hold keys and their sub-keys in declaration order:
//
//	spec := layer.NewSpec("non_us_backslash").
//	    Bind("spacebar", "n", karabiner.Open("https://news.ycombinator.com")).
//	    Bind("spacebar", "j", karabiner.Open("https://jira.uzum.com/"))
//
// Specs can also be decoded from YAML; key order in the document is kept.
//
// # Expansion
//
// Expand produces one Binding per hold key. A Binding carries its variable
// name together with the rules that set and read it, so the coupling between
// the toggle rule and the action rules is explicit:
//
//	Binding{
//	    HoldKey:      "spacebar",
//	    VariableName: "non_us_backslash_sublayer_spacebar",
//	    Toggle:       <rule setting the variable while spacebar is held>,
//	    Actions:      <one rule per sub-key, guarded by the variable>,
//	}
//
// Expansion.Rules flattens bindings as toggle then actions, hold by hold.
package layer
