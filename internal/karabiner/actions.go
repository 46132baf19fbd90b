package karabiner

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Key emits a key press with optional modifiers.
func Key(code string, modifiers ...string) Effect {
	e := Effect{KeyCode: code}
	if len(modifiers) > 0 {
		e.Modifiers = modifiers
	}
	return e
}

// PointingButton emits a pointing device button press (e.g. "button2").
func PointingButton(button string) Effect {
	return Effect{PointingButton: button}
}

// SetVariable sets a daemon variable.
func SetVariable(name string, value int) Effect {
	return Effect{SetVariable: &Variable{Name: name, Value: value}}
}

// SelectInputSource switches the text input source.
func SelectInputSource(id string) Effect {
	return Effect{SelectInputSource: &InputSource{InputSourceID: id}}
}

// Shell runs cmd verbatim through the daemon's shell.
func Shell(cmd string) Effect {
	return Effect{ShellCommand: cmd}
}

// Open opens target (a URL, path or app URL scheme) with the macOS open command.
func Open(target string) Effect {
	return Shell(shellquote.Join("open", target))
}

// OpenApp opens target with a specific application.
// An empty target just launches or focuses the application.
func OpenApp(app, target string) Effect {
	args := []string{"open", "-a", app}
	if target != "" {
		args = append(args, target)
	}
	return Shell(shellquote.Join(args...))
}

// IsZero reports whether the effect does nothing.
func (e Effect) IsZero() bool {
	return e.KeyCode == "" &&
		e.AppleVendorTopCaseKeyCode == "" &&
		e.PointingButton == "" &&
		e.SetVariable == nil &&
		e.SelectInputSource == nil &&
		e.ShellCommand == ""
}

// Summary is a short human readable form used in generated descriptions
// and listings.
func (e Effect) Summary() string {
	switch {
	case e.ShellCommand != "":
		return e.ShellCommand
	case e.SelectInputSource != nil:
		return "input source " + e.SelectInputSource.InputSourceID
	case e.SetVariable != nil:
		return fmt.Sprintf("%s=%d", e.SetVariable.Name, e.SetVariable.Value)
	case e.PointingButton != "":
		return e.PointingButton
	case e.KeyCode != "" || e.AppleVendorTopCaseKeyCode != "":
		key := e.KeyCode
		if key == "" {
			key = e.AppleVendorTopCaseKeyCode
		}
		if len(e.Modifiers) == 0 {
			return key
		}
		return strings.Join(e.Modifiers, "+") + "+" + key
	}
	return ""
}

// FromKey matches code with no modifiers held.
func FromKey(code string) From {
	return From{KeyCode: code}
}

// FromKeyAny matches code regardless of held modifiers.
func FromKeyAny(code string) From {
	return From{
		KeyCode:   code,
		Modifiers: &FromModifiers{Optional: []string{ModifierAny}},
	}
}

// FromKeyWith matches code while all mandatory modifiers are held.
func FromKeyWith(code string, mandatory ...string) From {
	return From{
		KeyCode:   code,
		Modifiers: &FromModifiers{Mandatory: mandatory},
	}
}

// FrontmostIf activates a manipulator only in the matching applications.
func FrontmostIf(bundleIDs ...string) Condition {
	return Condition{Type: ConditionFrontmostIf, BundleIdentifiers: bundleIDs}
}

// FrontmostUnless activates a manipulator everywhere except the matching applications.
func FrontmostUnless(bundleIDs ...string) Condition {
	return Condition{Type: ConditionFrontmostUnless, BundleIdentifiers: bundleIDs}
}

// VariableIf activates a manipulator while name equals value.
func VariableIf(name string, value int) Condition {
	return Condition{Type: ConditionVariableIf, Name: name, Value: &value}
}
