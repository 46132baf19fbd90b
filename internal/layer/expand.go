package layer

import (
	"fmt"

	"github.com/mehXX/karabiner-gen/internal/karabiner"
)

// Binding is one expanded hold key: the variable it owns and every rule
// that sets or reads that variable.
type Binding struct {
	HoldKey      string
	VariableName string
	Toggle       karabiner.Rule
	Actions      []karabiner.Rule
}

// Rules returns the toggle rule followed by the action rules.
func (b Binding) Rules() []karabiner.Rule {
	rules := make([]karabiner.Rule, 0, 1+len(b.Actions))
	rules = append(rules, b.Toggle)
	return append(rules, b.Actions...)
}

// Expansion is the expanded form of a Spec.
type Expansion struct {
	Name     string
	Bindings []Binding
}

// VariableName returns the variable a hold key of a layer sets while held.
func VariableName(layer, hold string) string {
	return layer + "_sublayer_" + hold
}

// Expand turns spec into one Binding per hold key, in declaration order.
func Expand(spec *Spec) *Expansion {
	vars := make([]string, len(spec.Holds))
	for i, h := range spec.Holds {
		vars[i] = VariableName(spec.Name, h.Key)
	}

	exp := &Expansion{
		Name:     spec.Name,
		Bindings: make([]Binding, 0, len(spec.Holds)),
	}
	for i, h := range spec.Holds {
		b := Binding{
			HoldKey:      h.Key,
			VariableName: vars[i],
			Toggle:       toggleRule(spec.Name, h.Key, vars[i], siblings(vars, i)),
		}
		for _, a := range h.Actions {
			b.Actions = append(b.Actions, actionRule(spec.Name, h.Key, vars[i], a))
		}
		exp.Bindings = append(exp.Bindings, b)
	}
	return exp
}

func siblings(vars []string, self int) []string {
	var out []string
	for i, v := range vars {
		if i != self {
			out = append(out, v)
		}
	}
	return out
}

func toggleRule(layerName, hold, variable string, others []string) karabiner.Rule {
	conditions := []karabiner.Condition{karabiner.VariableIf(layerName, 1)}
	for _, other := range others {
		conditions = append(conditions, karabiner.VariableIf(other, 0))
	}

	return karabiner.Rule{
		Description: fmt.Sprintf("%s + %s sublayer", layerName, hold),
		Manipulators: []karabiner.Manipulator{{
			Description:  "Toggle " + variable,
			Type:         karabiner.TypeBasic,
			From:         karabiner.FromKeyAny(hold),
			To:           []karabiner.Effect{karabiner.SetVariable(variable, 1)},
			ToAfterKeyUp: []karabiner.Effect{karabiner.SetVariable(variable, 0)},
			Conditions:   conditions,
		}},
	}
}

func actionRule(layerName, hold, variable string, a Action) karabiner.Rule {
	desc := fmt.Sprintf("%s + %s + %s: %s", layerName, hold, a.Key, a.Effect.Summary())
	return karabiner.Rule{
		Description: desc,
		Manipulators: []karabiner.Manipulator{{
			Description: desc,
			Type:        karabiner.TypeBasic,
			From:        karabiner.FromKeyAny(a.Key),
			To:          []karabiner.Effect{a.Effect},
			Conditions:  []karabiner.Condition{karabiner.VariableIf(variable, 1)},
		}},
	}
}

// Rules flattens every binding, hold by hold.
func (e *Expansion) Rules() []karabiner.Rule {
	var rules []karabiner.Rule
	for _, b := range e.Bindings {
		rules = append(rules, b.Rules()...)
	}
	return rules
}

// Variables returns the sub-layer variables owned by the expansion.
func (e *Expansion) Variables() []string {
	vars := make([]string, len(e.Bindings))
	for i, b := range e.Bindings {
		vars[i] = b.VariableName
	}
	return vars
}
