package karabiner

// ManipulatorType is the manipulator variant understood by the daemon.
type ManipulatorType string

// TypeBasic is the only manipulator type generated.
const TypeBasic ManipulatorType = "basic"

// ConditionType selects how a Condition is evaluated.
type ConditionType string

const (
	ConditionFrontmostIf     ConditionType = "frontmost_application_if"
	ConditionFrontmostUnless ConditionType = "frontmost_application_unless"
	ConditionVariableIf      ConditionType = "variable_if"
	ConditionVariableUnless  ConditionType = "variable_unless"
)

// ModifierAny is the "optional" sentinel meaning the modifier axis is ignored.
const ModifierAny = "any"

// Rule is one entry of complex_modifications.rules.
type Rule struct {
	Description  string        `json:"description" yaml:"description"`
	Manipulators []Manipulator `json:"manipulators" yaml:"manipulators"`
}

// Manipulator maps one stimulus to a sequence of effects.
type Manipulator struct {
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Type         ManipulatorType `json:"type" yaml:"type"`
	From         From            `json:"from" yaml:"from"`
	To           []Effect        `json:"to" yaml:"to"`
	ToAfterKeyUp []Effect        `json:"to_after_key_up,omitempty" yaml:"to_after_key_up,omitempty"`
	Conditions   []Condition     `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// From is the stimulus side of a manipulator.
// A nil Modifiers means no modifier may be held.
type From struct {
	KeyCode                   string         `json:"key_code,omitempty" yaml:"key_code,omitempty"`
	AppleVendorTopCaseKeyCode string         `json:"apple_vendor_top_case_key_code,omitempty" yaml:"apple_vendor_top_case_key_code,omitempty"`
	Modifiers                 *FromModifiers `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// FromModifiers splits modifiers into those that must be held and those
// that may be held.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Effect is one entry of a "to" or "to_after_key_up" sequence.
// Exactly one of the groups below is expected to be set.
type Effect struct {
	KeyCode                   string       `json:"key_code,omitempty" yaml:"key_code,omitempty"`
	AppleVendorTopCaseKeyCode string       `json:"apple_vendor_top_case_key_code,omitempty" yaml:"apple_vendor_top_case_key_code,omitempty"`
	Modifiers                 []string     `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	PointingButton            string       `json:"pointing_button,omitempty" yaml:"pointing_button,omitempty"`
	SetVariable               *Variable    `json:"set_variable,omitempty" yaml:"set_variable,omitempty"`
	SelectInputSource         *InputSource `json:"select_input_source,omitempty" yaml:"select_input_source,omitempty"`
	ShellCommand              string       `json:"shell_command,omitempty" yaml:"shell_command,omitempty"`
}

// Variable is a named integer the daemon keeps between key events.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// InputSource identifies a text input source.
type InputSource struct {
	InputSourceID string `json:"input_source_id" yaml:"input_source_id"`
}

// Condition restricts when a manipulator is active.
// Frontmost conditions use BundleIdentifiers (regular expressions);
// variable conditions use Name and Value.
type Condition struct {
	Type              ConditionType `json:"type" yaml:"type"`
	BundleIdentifiers []string      `json:"bundle_identifiers,omitempty" yaml:"bundle_identifiers,omitempty"`
	Name              string        `json:"name,omitempty" yaml:"name,omitempty"`
	Value             *int          `json:"value,omitempty" yaml:"value,omitempty"`
}

// SimpleModification is a 1:1 key substitution.
type SimpleModification struct {
	From From     `json:"from" yaml:"from"`
	To   []Effect `json:"to" yaml:"to"`
}

// Document is the root of karabiner.json.
type Document struct {
	Global   Global    `json:"global"`
	Profiles []Profile `json:"profiles"`
}

// Global holds the daemon-wide settings.
type Global struct {
	AskForConfirmationBeforeQuitting bool `json:"ask_for_confirmation_before_quitting"`
	CheckForUpdatesOnStartup         bool `json:"check_for_updates_on_startup"`
	ShowInMenuBar                    bool `json:"show_in_menu_bar"`
	ShowProfileNameInMenuBar         bool `json:"show_profile_name_in_menu_bar"`
	UnsafeUI                         bool `json:"unsafe_ui"`
}

// Profile is one selectable profile.
type Profile struct {
	Name                 string               `json:"name"`
	SimpleModifications  []SimpleModification `json:"simple_modifications"`
	ComplexModifications ComplexModifications `json:"complex_modifications"`
}

// ComplexModifications wraps the ordered rule list.
type ComplexModifications struct {
	Rules []Rule `json:"rules"`
}

// Key returns the name of the physical key the stimulus matches.
func (f From) Key() string {
	if f.KeyCode != "" {
		return f.KeyCode
	}
	return f.AppleVendorTopCaseKeyCode
}
