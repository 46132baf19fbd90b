package assembler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

func rule(desc string) karabiner.Rule {
	return karabiner.Rule{
		Description: desc,
		Manipulators: []karabiner.Manipulator{{
			Type: karabiner.TypeBasic,
			From: karabiner.FromKey("a"),
			To:   []karabiner.Effect{karabiner.Key("b")},
		}},
	}
}

func descriptions(rules []karabiner.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Description
	}
	return out
}

func TestAssemble_ConcatenatesInOrder(t *testing.T) {
	a := Assemble(
		Source{Name: "first", Rules: []karabiner.Rule{rule("1"), rule("2")}},
		Source{Name: "layer", Rules: []karabiner.Rule{rule("3")}},
		Source{Name: "last", Rules: []karabiner.Rule{rule("4"), rule("5"), rule("6")}},
	)

	if diff := cmp.Diff([]string{"1", "2", "3", "4", "5", "6"}, descriptions(a.Rules)); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}

	wantSections := []Section{
		{Name: "first", Start: 0, Count: 2},
		{Name: "layer", Start: 2, Count: 1},
		{Name: "last", Start: 3, Count: 3},
	}
	if diff := cmp.Diff(wantSections, a.Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_OrderSensitive(t *testing.T) {
	x := Source{Name: "x", Rules: []karabiner.Rule{rule("x")}}
	y := Source{Name: "y", Rules: []karabiner.Rule{rule("y")}}

	xy := descriptions(Assemble(x, y).Rules)
	yx := descriptions(Assemble(y, x).Rules)

	if cmp.Equal(xy, yx) {
		t.Error("swapping sources should swap the rules")
	}
}

func TestAssemble_KeepsDuplicates(t *testing.T) {
	dup := Source{Name: "dup", Rules: []karabiner.Rule{rule("same")}}
	a := Assemble(dup, dup)

	if len(a.Rules) != 2 {
		t.Errorf("duplicates should be kept, got %d rules", len(a.Rules))
	}
}

func TestAssemble_Empty(t *testing.T) {
	a := Assemble()
	if len(a.Rules) != 0 || len(a.Sections) != 0 {
		t.Errorf("empty assembly should have no rules or sections, got %+v", a)
	}

	a = Assemble(Source{Name: "nothing"})
	if len(a.Sections) != 1 || a.Sections[0].Count != 0 {
		t.Errorf("empty source should still get a section, got %+v", a.Sections)
	}
}

func TestAssemble_WarnsOnReusedVariable(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(false, false, &buf)

	a := Assemble(
		Source{Name: "one", Rules: []karabiner.Rule{rule("1")}, Variables: []string{"l_sublayer_spacebar"}},
		Source{Name: "two", Rules: []karabiner.Rule{rule("2")}, Variables: []string{"l_sublayer_spacebar"}},
	)

	if !strings.Contains(buf.String(), "layer variable reused") {
		t.Errorf("expected a warning about reused variable, got: %s", buf.String())
	}
	if len(a.Rules) != 2 {
		t.Errorf("reuse must not change output, got %d rules", len(a.Rules))
	}
}

func TestAssembly_Section(t *testing.T) {
	a := Assemble(
		Source{Name: "first", Rules: []karabiner.Rule{rule("1"), rule("2")}},
		Source{Name: "empty"},
		Source{Name: "last", Rules: []karabiner.Rule{rule("3")}},
	)

	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "first", true},
		{1, "first", true},
		{2, "last", true},
		{3, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		s, ok := a.Section(tt.index)
		if ok != tt.ok || s.Name != tt.want {
			t.Errorf("Section(%d) = %q, %v; want %q, %v", tt.index, s.Name, ok, tt.want, tt.ok)
		}
	}

	last, _ := a.Section(2)
	if got := descriptions(a.SectionRules(last)); !cmp.Equal(got, []string{"3"}) {
		t.Errorf("SectionRules(last) = %v", got)
	}
}
