package karabiner

import "fmt"

// Validate checks the structural shape of a rule. Key names are not checked.
func (r *Rule) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(r.Manipulators) == 0 {
		return fmt.Errorf("rule %q: at least one manipulator is required", r.Description)
	}
	for i := range r.Manipulators {
		if err := r.Manipulators[i].Validate(); err != nil {
			return fmt.Errorf("rule %q: manipulator %d: %w", r.Description, i, err)
		}
	}
	return nil
}

// Validate checks the structural shape of a manipulator.
func (m *Manipulator) Validate() error {
	if m.Type != TypeBasic {
		return fmt.Errorf("invalid type %q (must be %s)", m.Type, TypeBasic)
	}
	if m.From.Key() == "" {
		return fmt.Errorf("from: key_code is required")
	}
	if len(m.To) == 0 {
		return fmt.Errorf("to: at least one effect is required")
	}
	for i, e := range m.To {
		if e.IsZero() {
			return fmt.Errorf("to[%d]: empty effect", i)
		}
	}
	for i, e := range m.ToAfterKeyUp {
		if e.IsZero() {
			return fmt.Errorf("to_after_key_up[%d]: empty effect", i)
		}
	}
	for i := range m.Conditions {
		if err := m.Conditions[i].Validate(); err != nil {
			return fmt.Errorf("conditions[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks that a condition carries the fields its type needs.
func (c *Condition) Validate() error {
	switch c.Type {
	case ConditionFrontmostIf, ConditionFrontmostUnless:
		if len(c.BundleIdentifiers) == 0 {
			return fmt.Errorf("%s: at least one bundle identifier is required", c.Type)
		}
	case ConditionVariableIf, ConditionVariableUnless:
		if c.Name == "" {
			return fmt.Errorf("%s: name is required", c.Type)
		}
		if c.Value == nil {
			return fmt.Errorf("%s: value is required", c.Type)
		}
	default:
		return fmt.Errorf("unknown condition type %q", c.Type)
	}
	return nil
}
