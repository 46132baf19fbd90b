package layer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mehXX/karabiner-gen/internal/karabiner"
)

// Spec is the input of the expander: hold keys mapped to sub-keys mapped
// to effects, all in declaration order.
type Spec struct {
	// Name is the layer name. It is also the variable that must be 1 for
	// the layer's hold keys to toggle.
	Name        string
	Description string
	Holds       []Hold
}

// Hold is one hold key and its sub-key actions.
type Hold struct {
	Key     string
	Actions []Action
}

// Action binds a sub-key to a single effect.
type Action struct {
	Key    string
	Effect karabiner.Effect
}

// NewSpec returns an empty spec for the named layer.
func NewSpec(name string) *Spec {
	return &Spec{Name: name}
}

// AddHold declares a hold key. Declaring an existing hold is a no-op.
func (s *Spec) AddHold(key string) *Spec {
	s.hold(key)
	return s
}

// Bind maps sub under hold to effect. Binding the same sub-key twice
// replaces the earlier effect and keeps its position.
func (s *Spec) Bind(hold, sub string, effect karabiner.Effect) *Spec {
	h := s.hold(hold)
	for i := range h.Actions {
		if h.Actions[i].Key == sub {
			h.Actions[i].Effect = effect
			return s
		}
	}
	h.Actions = append(h.Actions, Action{Key: sub, Effect: effect})
	return s
}

func (s *Spec) hold(key string) *Hold {
	for i := range s.Holds {
		if s.Holds[i].Key == key {
			return &s.Holds[i]
		}
	}
	s.Holds = append(s.Holds, Hold{Key: key})
	return &s.Holds[len(s.Holds)-1]
}

// Validate checks that the spec can be expanded into valid rules.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("layer name is required")
	}
	for _, h := range s.Holds {
		if h.Key == "" {
			return fmt.Errorf("layer %s: hold key cannot be empty", s.Name)
		}
		for _, a := range h.Actions {
			if a.Key == "" {
				return fmt.Errorf("layer %s: hold %s: sub-key cannot be empty", s.Name, h.Key)
			}
			if a.Effect.IsZero() {
				return fmt.Errorf("layer %s: hold %s: sub-key %s has no effect", s.Name, h.Key, a.Key)
			}
		}
	}
	return nil
}

// actionSpec is the YAML form of a sub-key value. It accepts the "open"
// and "app" shorthands or effect fields, never both.
type actionSpec struct {
	Open             string `yaml:"open"`
	App              string `yaml:"app"`
	karabiner.Effect `yaml:",inline"`
}

func (a actionSpec) effect() (karabiner.Effect, error) {
	shorthand := a.App != "" || a.Open != ""
	if shorthand && (!a.Effect.IsZero() || len(a.Effect.Modifiers) > 0) {
		return karabiner.Effect{}, fmt.Errorf("open and app cannot be combined with effect fields")
	}

	switch {
	case a.App != "":
		return karabiner.OpenApp(a.App, a.Open), nil
	case a.Open != "":
		return karabiner.Open(a.Open), nil
	case !a.Effect.IsZero():
		return a.Effect, nil
	}
	return karabiner.Effect{}, fmt.Errorf("action needs open, app or an effect")
}

// UnmarshalYAML decodes a spec by walking the node tree so that the order
// of hold keys and sub-keys in the document is preserved:
//
//	name: non_us_backslash
//	description: § layer bindings
//	holds:
//	  spacebar:
//	    n: {open: "https://news.ycombinator.com"}
//	    r: {app: Google Chrome, open: "https://rezka.ag/"}
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: layer spec must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			if err := value.Decode(&s.Name); err != nil {
				return err
			}
		case "description":
			if err := value.Decode(&s.Description); err != nil {
				return err
			}
		case "holds":
			if err := s.decodeHolds(value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

func (s *Spec) decodeHolds(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: holds must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		holdKey, subs := node.Content[i].Value, node.Content[i+1]
		s.AddHold(holdKey)

		// "spacebar:" with no value and "spacebar: {}" both declare an empty hold
		if subs.Kind == yaml.ScalarNode && subs.Tag == "!!null" {
			continue
		}
		if subs.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: hold %s must map sub-keys to actions", subs.Line, holdKey)
		}

		for j := 0; j+1 < len(subs.Content); j += 2 {
			subKey := subs.Content[j].Value
			spec, err := decodeAction(subs.Content[j+1])
			if err != nil {
				return fmt.Errorf("line %d: hold %s: sub-key %s: %w", subs.Content[j].Line, holdKey, subKey, err)
			}
			effect, err := spec.effect()
			if err != nil {
				return fmt.Errorf("line %d: hold %s: sub-key %s: %w", subs.Content[j].Line, holdKey, subKey, err)
			}
			s.Bind(holdKey, subKey, effect)
		}
	}
	return nil
}

// decodeAction decodes a sub-key value, rejecting unknown fields the same
// way rule tables are decoded.
func decodeAction(node *yaml.Node) (actionSpec, error) {
	var spec actionSpec
	data, err := yaml.Marshal(node)
	if err != nil {
		return spec, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return spec, err
	}
	return spec, nil
}
