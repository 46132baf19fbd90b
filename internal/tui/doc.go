// Package tui provides terminal user interface components for karabiner-gen.
//
// This package uses the Bubble Tea framework for the rule browser.
//
// # Rule Browser
//
// The browser lists the assembled rules grouped under one header per source,
// in assembly order:
//
//	result, err := tui.RunBrowser(assembly)
//	switch result.Action {
//	case tui.ActionShow:
//	    // Print result.Rule
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Browser Features
//
//   - Keyboard navigation (j/k or arrows), headers auto-skipped
//   - Filter with / on source name and rule description
//   - Enter shows the selected rule, q or esc quits
//
// SimpleList renders the same grouping as plain text for non-interactive
// terminals.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
