package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mehXX/karabiner-gen/internal/assembler"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
)

func TestSectionLabel(t *testing.T) {
	tests := []struct {
		section assembler.Section
		want    string
	}{
		{assembler.Section{Name: "caps_hyper", Count: 1}, "caps_hyper (1 rule)"},
		{assembler.Section{Name: "non_us_backslash_bindings", Count: 17}, "non_us_backslash_bindings (17 rules)"},
	}

	for _, tt := range tests {
		t.Run(tt.section.Name, func(t *testing.T) {
			if got := sectionLabel(tt.section); got != tt.want {
				t.Errorf("sectionLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildGroupedItems(t *testing.T) {
	t.Run("nil assembly", func(t *testing.T) {
		if items := buildGroupedItems(nil); items != nil {
			t.Errorf("expected nil, got %d items", len(items))
		}
	})

	t.Run("no rules", func(t *testing.T) {
		if items := buildGroupedItems(assembler.Assemble(assembler.Source{Name: "empty"})); items != nil {
			t.Errorf("expected nil, got %d items", len(items))
		}
	})

	t.Run("sections in assembly order", func(t *testing.T) {
		items := buildGroupedItems(testAssembly())

		// Expect 2 headers + 3 rule items; the empty source is skipped
		if len(items) != 5 {
			t.Fatalf("expected 5 items, got %d", len(items))
		}

		h1, ok := items[0].(headerItem)
		if !ok {
			t.Fatal("first item should be a headerItem")
		}
		if h1.label != "caps (2 rules)" {
			t.Errorf("first header = %q, want %q", h1.label, "caps (2 rules)")
		}

		h2, ok := items[3].(headerItem)
		if !ok {
			t.Fatal("fourth item should be a headerItem")
		}
		if h2.label != "apps (1 rule)" {
			t.Errorf("second header = %q, want %q", h2.label, "apps (1 rule)")
		}

		r, ok := items[4].(ruleItem)
		if !ok {
			t.Fatal("fifth item should be a ruleItem")
		}
		if r.index != 2 || r.source != "apps" {
			t.Errorf("rule item = %d/%s, want 2/apps", r.index, r.source)
		}
	})
}

func TestHeaderItem(t *testing.T) {
	h := headerItem{label: "Test Group"}

	if h.FilterValue() != "" {
		t.Error("headerItem.FilterValue() should return empty string")
	}
	if h.Title() != "Test Group" {
		t.Errorf("Title() = %q, want %q", h.Title(), "Test Group")
	}
	if h.Description() != "" {
		t.Errorf("Description() = %q, want empty", h.Description())
	}
}

func TestHeaderCount(t *testing.T) {
	items := []list.Item{
		headerItem{label: "group1"},
		ruleItem{rule: karabiner.Rule{Description: "r1"}},
		ruleItem{rule: karabiner.Rule{Description: "r2"}},
		headerItem{label: "group2"},
		ruleItem{rule: karabiner.Rule{Description: "r3"}},
	}

	count := headerCount(items)
	if count != 2 {
		t.Errorf("headerCount() = %d, want 2", count)
	}
}

func TestSkipHeaders(t *testing.T) {
	items := []list.Item{
		headerItem{label: "a"},
		ruleItem{index: 0},
		headerItem{label: "b"},
		headerItem{label: "c"},
		ruleItem{index: 1},
	}

	tests := []struct {
		name      string
		start     int
		direction int
		want      int
	}{
		{"not on header", 1, 1, 1},
		{"leading header down", 0, 1, 1},
		{"leading header up falls back", 0, -1, 1},
		{"double header down falls back", 2, 1, 1},
		{"double header up falls back", 3, -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := list.New(items, newGroupedDelegate(), 80, 40)
			l.Select(tt.start)
			skipHeaders(&l, tt.direction)
			if got := l.Index(); got != tt.want {
				t.Errorf("index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNavigationDirection(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, -1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, -1},
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := navigationDirection(tt.msg); got != tt.want {
				t.Errorf("navigationDirection(%q) = %d, want %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}
