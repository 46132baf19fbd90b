// Package tui provides terminal user interface components for karabiner-gen
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mehXX/karabiner-gen/internal/assembler"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
)

// Action represents the action to take after the browser exits
type Action int

const (
	ActionNone Action = iota
	ActionShow
	ActionQuit
)

// BrowseResult holds the result of the browser
type BrowseResult struct {
	Action Action
	Index  int // Position in the assembled rule list
	Source string
	Rule   *karabiner.Rule
}

// ruleItem implements list.Item for rule display
type ruleItem struct {
	index  int
	source string
	rule   karabiner.Rule
}

func (i ruleItem) Title() string {
	return fmt.Sprintf("%d. %s", i.index+1, i.rule.Description)
}

func (i ruleItem) Description() string {
	n := len(i.rule.Manipulators)
	noun := "manipulators"
	if n == 1 {
		noun = "manipulator"
	}
	return fmt.Sprintf("%d %s | %s", n, noun, truncate(manipulatorSummary(i.rule), 60))
}

func (i ruleItem) FilterValue() string {
	return i.source + " " + i.rule.Description
}

// manipulatorSummary describes the first manipulator as "from -> to".
func manipulatorSummary(r karabiner.Rule) string {
	if len(r.Manipulators) == 0 {
		return ""
	}
	m := r.Manipulators[0]

	from := m.From.Key()
	if m.From.Modifiers != nil && len(m.From.Modifiers.Mandatory) > 0 {
		from = strings.Join(m.From.Modifiers.Mandatory, "+") + "+" + from
	}

	to := make([]string, 0, len(m.To))
	for _, e := range m.To {
		to = append(to, e.Summary())
	}

	s := from + " -> " + strings.Join(to, ", ")
	if len(m.Conditions) > 0 {
		s += " [" + conditionSummary(m.Conditions) + "]"
	}
	return s
}

func conditionSummary(conds []karabiner.Condition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		switch c.Type {
		case karabiner.ConditionFrontmostIf:
			parts = append(parts, "in "+strings.Join(c.BundleIdentifiers, ","))
		case karabiner.ConditionFrontmostUnless:
			parts = append(parts, "not in "+strings.Join(c.BundleIdentifiers, ","))
		case karabiner.ConditionVariableIf, karabiner.ConditionVariableUnless:
			op := "=="
			if c.Type == karabiner.ConditionVariableUnless {
				op = "!="
			}
			value := 0
			if c.Value != nil {
				value = *c.Value
			}
			parts = append(parts, fmt.Sprintf("%s%s%d", c.Name, op, value))
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the rule browser
type Model struct {
	list     list.Model
	result   BrowseResult
	quitting bool
	width    int
	height   int
}

// NewBrowser creates a rule browser over an assembly
func NewBrowser(a *assembler.Assembly) Model {
	items := buildGroupedItems(a)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = fmt.Sprintf("karabiner-gen - %d rules", len(items)-headerCount(items))
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("entry", "entries")
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	// The first row is always a header
	skipHeaders(&l, 1)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(ruleItem); ok {
				rule := item.rule
				m.result = BrowseResult{
					Action: ActionShow,
					Index:  item.index,
					Source: item.source,
					Rule:   &rule,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			m.result = BrowseResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && isHeaderSelected(&m.list) {
		skipHeaders(&m.list, navigationDirection(key))
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Show  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the browser result
func (m Model) Result() BrowseResult {
	return m.result
}

// RunBrowser runs the interactive rule browser
func RunBrowser(a *assembler.Assembly) (BrowseResult, error) {
	if a == nil || len(a.Rules) == 0 {
		return BrowseResult{Action: ActionQuit}, nil
	}

	m := NewBrowser(a)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return BrowseResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimpleList is a non-interactive listing of the assembled rules, grouped
// the same way as the browser
func SimpleList(a *assembler.Assembly) string {
	var sb strings.Builder

	sb.WriteString("karabiner-gen - Rules\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if a == nil || len(a.Rules) == 0 {
		sb.WriteString("No rules assembled.\n")
		sb.WriteString("Check the rules list in karabiner-gen.toml or run: karabiner-gen tables\n")
		return sb.String()
	}

	for _, item := range buildGroupedItems(a) {
		switch it := item.(type) {
		case headerItem:
			sb.WriteString(it.label + "\n")
		case ruleItem:
			sb.WriteString(fmt.Sprintf("  %s\n", it.Title()))
			sb.WriteString(fmt.Sprintf("     %s\n", it.Description()))
		}
	}

	return sb.String()
}
