package tables

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/mehXX/karabiner-gen/internal/errors"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/layer"
)

func TestDefault_AllEntriesLoad(t *testing.T) {
	c := Default()

	entries, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != len(DefaultOrder)+1 {
		t.Errorf("got %d entries, want %d (default order plus orion)", len(entries), len(DefaultOrder)+1)
	}

	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			src, err := c.Source(e.Name)
			if err != nil {
				t.Fatalf("Source(%q) error: %v", e.Name, err)
			}
			if len(src.Rules) == 0 {
				t.Error("source has no rules")
			}
			for _, r := range src.Rules {
				if err := r.Validate(); err != nil {
					t.Errorf("invalid rule: %v", err)
				}
			}
		})
	}
}

func TestDefaultOrder_Resolves(t *testing.T) {
	c := Default()

	seen := make(map[string]bool)
	for _, name := range DefaultOrder {
		if seen[name] {
			t.Errorf("%s appears twice in DefaultOrder", name)
		}
		seen[name] = true
	}

	sources, err := c.Sources(DefaultOrder)
	if err != nil {
		t.Fatalf("Sources(DefaultOrder) error: %v", err)
	}

	total := 0
	for i, src := range sources {
		if src.Name != DefaultOrder[i] {
			t.Errorf("source %d = %s, want %s", i, src.Name, DefaultOrder[i])
		}
		total += len(src.Rules)
	}

	// 17 single-rule tables plus the § layer: one toggle and 16 sub-keys.
	if total != 34 {
		t.Errorf("default order yields %d rules, want 34", total)
	}
}

func TestDefaultOrder_ExcludesOrion(t *testing.T) {
	if slices.Contains(DefaultOrder, "orion_copy_code_block") {
		t.Error("orion table should not be in the default order")
	}
	if _, err := Default().Table("orion_copy_code_block"); err != nil {
		t.Errorf("orion table should still ship: %v", err)
	}
}

func TestDefault_Layer(t *testing.T) {
	c := Default()

	kind, err := c.Kind("non_us_backslash_bindings")
	if err != nil || kind != KindLayer {
		t.Fatalf("Kind() = %q, %v; want layer", kind, err)
	}

	spec, err := c.Layer("non_us_backslash_bindings")
	if err != nil {
		t.Fatalf("Layer() error: %v", err)
	}
	if spec.Name != "non_us_backslash" {
		t.Errorf("layer name = %q, want non_us_backslash", spec.Name)
	}
	if len(spec.Holds) != 1 || spec.Holds[0].Key != "spacebar" {
		t.Fatalf("holds = %+v, want only spacebar", spec.Holds)
	}

	var keys []string
	for _, a := range spec.Holds[0].Actions {
		keys = append(keys, a.Key)
	}
	want := []string{"n", "j", "g", "y", "t", "l", "c", "h", "r", "p", "o", "i", "a", "v", "1", "2"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("sub-key order mismatch (-want +got):\n%s", diff)
	}

	src, err := c.Source("non_us_backslash_bindings")
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	if diff := cmp.Diff([]string{layer.VariableName("non_us_backslash", "spacebar")}, src.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}

	r := src.Rules[9] // toggle, then n j g y t l c h r
	if got, want := r.Manipulators[0].To[0].ShellCommand, "open -a 'Google Chrome' https://rezka.ag/"; got != want {
		t.Errorf("r shell_command = %q, want %q", got, want)
	}
	if got, want := src.Rules[1].Manipulators[0].To[0].ShellCommand, "open https://news.ycombinator.com"; got != want {
		t.Errorf("n shell_command = %q, want %q", got, want)
	}
}

func TestDefault_TableContent(t *testing.T) {
	c := Default()

	t.Run("missing type defaults to basic", func(t *testing.T) {
		tbl, err := c.Table("caps_hyper")
		if err != nil {
			t.Fatal(err)
		}
		if got := tbl.Rules[0].Manipulators[0].Type; got != karabiner.TypeBasic {
			t.Errorf("Type = %q, want basic", got)
		}
	})

	t.Run("caps hyper", func(t *testing.T) {
		tbl, err := c.Table("caps_hyper")
		if err != nil {
			t.Fatal(err)
		}
		m := tbl.Rules[0].Manipulators[0]
		want := karabiner.Manipulator{
			Description: "Caps -> Hyper Key",
			Type:        karabiner.TypeBasic,
			From:        karabiner.FromKeyAny("caps_lock"),
			To: []karabiner.Effect{
				karabiner.SetVariable("hyper", 1),
				karabiner.Key("left_shift", "left_command", "left_control", "left_option"),
			},
			ToAfterKeyUp: []karabiner.Effect{karabiner.SetVariable("hyper", 0)},
		}
		if diff := cmp.Diff(want, m); diff != "" {
			t.Errorf("caps hyper mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("slack keeps literal shell commands", func(t *testing.T) {
		tbl, err := c.Table("slack_chats")
		if err != nil {
			t.Fatal(err)
		}
		ms := tbl.Rules[0].Manipulators
		if len(ms) != 7 {
			t.Fatalf("got %d manipulators, want 7", len(ms))
		}
		want := `open -a "Slack" "slack://channel?team=T03CR7VBN0N&id=D06ME5C2RT5"`
		if got := ms[0].To[0].ShellCommand; got != want {
			t.Errorf("shell_command = %q, want %q", got, want)
		}
		if got := ms[6].From; !cmp.Equal(got, karabiner.FromKeyWith("2", "left_control")) {
			t.Errorf("last from = %+v", got)
		}
	})

	t.Run("telegram chat numbers", func(t *testing.T) {
		tbl, err := c.Table("telegram_chat_numbers")
		if err != nil {
			t.Fatal(err)
		}
		for i, m := range tbl.Rules[0].Manipulators {
			tabs := 0
			for _, e := range m.To {
				if e.KeyCode == "tab" {
					tabs++
				}
			}
			if tabs != i+1 {
				t.Errorf("manipulator %d: %d tabs, want %d", i, tabs, i+1)
			}
		}
	})
}

func TestDefault_SimpleModifications(t *testing.T) {
	mods, err := Default().SimpleModifications()
	if err != nil {
		t.Fatalf("SimpleModifications() error: %v", err)
	}

	want := []karabiner.SimpleModification{
		{
			From: karabiner.From{AppleVendorTopCaseKeyCode: "keyboard_fn"},
			To:   []karabiner.Effect{{KeyCode: "left_control"}},
		},
		{
			From: karabiner.From{KeyCode: "left_control"},
			To:   []karabiner.Effect{{AppleVendorTopCaseKeyCode: "keyboard_fn"}},
		},
	}
	if diff := cmp.Diff(want, mods); diff != "" {
		t.Errorf("simple modifications mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/typo.yaml": {Data: []byte(`
rules:
  - description: typo
    manipulators:
      - from: {key_code: a}
        too: [{key_code: b}]
`)},
		"rules/empty.yaml":       {Data: []byte("description: nothing here\n")},
		"rules/broken.yaml":      {Data: []byte("rules: [\n")},
		"rules/no_to.yaml":       {Data: []byte("rules:\n  - description: x\n    manipulators:\n      - from: {key_code: a}\n")},
		"layers/bad.yaml":        {Data: []byte("name: bad\nholds:\n  spacebar:\n    n: {}\n")},
		"layers/nameless.yaml":   {Data: []byte("holds:\n  spacebar:\n")},
		"layers/misspelled.yaml": {Data: []byte("name: m\nholds:\n  spacebar:\n    n: {opne: \"https://a\", key_code: b}\n")},
		"layers/mixed.yaml":      {Data: []byte("name: m\nholds:\n  spacebar:\n    m: {open: \"https://a\", key_code: c}\n")},
	}
	c := New(fsys)

	tests := []struct {
		name     string
		wantCode int
	}{
		{"missing", errors.ExitTableNotFound},
		{"../escape", errors.ExitTableNotFound},
		{"", errors.ExitTableNotFound},
		{"typo", errors.ExitInvalidTable},
		{"empty", errors.ExitInvalidTable},
		{"broken", errors.ExitInvalidTable},
		{"no_to", errors.ExitInvalidTable},
		{"bad", errors.ExitInvalidTable},
		{"nameless", errors.ExitInvalidTable},
		{"misspelled", errors.ExitInvalidTable},
		{"mixed", errors.ExitInvalidTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Source(tt.name)
			if err == nil {
				t.Fatal("Source() expected error")
			}
			if got := errors.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestCatalog_SourcesStopsAtFirstError(t *testing.T) {
	c := New(fstest.MapFS{
		"rules/ok.yaml": {Data: []byte("rules:\n  - description: ok\n    manipulators:\n      - from: {key_code: a}\n        to: [{key_code: b}]\n")},
	})

	if _, err := c.Sources([]string{"ok", "missing", "ok"}); errors.GetExitCode(err) != errors.ExitTableNotFound {
		t.Errorf("Sources() error = %v, want table not found", err)
	}

	sources, err := c.Sources([]string{"ok", "ok"})
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("duplicate names should load twice, got %d sources", len(sources))
	}
}

func TestCatalog_EmptyFS(t *testing.T) {
	c := New(fstest.MapFS{})

	names, err := c.Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Names() = %v, want empty", names)
	}

	mods, err := c.SimpleModifications()
	if err != nil {
		t.Fatalf("SimpleModifications() error: %v", err)
	}
	if mods == nil || len(mods) != 0 {
		t.Errorf("SimpleModifications() = %#v, want empty non-nil", mods)
	}
}

func TestCatalog_NamesSorted(t *testing.T) {
	names, err := Default().Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, name := range DefaultOrder {
		if !slices.Contains(names, name) {
			t.Errorf("Names() missing %s", name)
		}
	}
}
