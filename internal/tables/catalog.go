package tables

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mehXX/karabiner-gen/internal/assembler"
	"github.com/mehXX/karabiner-gen/internal/errors"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/layer"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

//go:embed data
var embedded embed.FS

const (
	rulesDir                = "rules"
	layersDir               = "layers"
	simpleModificationsFile = "simple_modifications.yaml"
	ext                     = ".yaml"
)

// DefaultOrder is the assembly order used when the settings do not
// override it. The daemon evaluates rules top to bottom, so order matters
// where stimuli overlap.
var DefaultOrder = []string{
	"control_space_option_cmd",
	"caps_hyper",
	"caps_bindings",
	"non_us_backslash_semi_hyper",
	"non_us_backslash_bindings",
	"cmd_shift_v_no_style",
	"fn_semi_modifier",
	"telegram_fn_right_click",
	"telegram_chat_numbers",
	"safari_copy_code_block",
	"change_language",
	"spotify_add_to_queue",
	"raycast_copy_code_block",
	"raycast_switch_to_english",
	"goland_change_language",
	"notes_back_forth",
	"slack_chats",
	"chrome_copy_code_block",
}

// Kind tells static rule tables and layer specs apart.
type Kind string

const (
	KindTable Kind = "table"
	KindLayer Kind = "layer"
)

// Table is a named list of hand-written rules.
type Table struct {
	Name        string
	Description string
	Rules       []karabiner.Rule
}

type tableFile struct {
	Description string           `yaml:"description"`
	Rules       []karabiner.Rule `yaml:"rules"`
}

// Entry describes one catalog item for listings.
type Entry struct {
	Name        string
	Kind        Kind
	Description string
}

// Catalog reads rule tables and layer specs from a file system laid out as
//
//	rules/<name>.yaml
//	layers/<name>.yaml
//	simple_modifications.yaml
type Catalog struct {
	fsys fs.FS
}

// New creates a catalog over fsys.
func New(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// "data" is a constant embedded directory
		panic(err)
	}
	return New(sub)
}

// Table loads and validates the named rule table.
func (c *Catalog) Table(name string) (*Table, error) {
	data, err := c.read(rulesDir, name)
	if err != nil {
		return nil, err
	}

	var tf tableFile
	if err := decodeStrict(data, &tf); err != nil {
		return nil, errors.InvalidTable(name, err)
	}
	if len(tf.Rules) == 0 {
		return nil, errors.InvalidTable(name, fmt.Errorf("no rules"))
	}

	for i := range tf.Rules {
		defaultTypes(&tf.Rules[i])
		if err := tf.Rules[i].Validate(); err != nil {
			return nil, errors.InvalidTable(name, err)
		}
	}

	logging.Debug("loaded rule table", "name", name, "rules", len(tf.Rules))
	return &Table{Name: name, Description: tf.Description, Rules: tf.Rules}, nil
}

// Layer loads and validates the named layer spec.
func (c *Catalog) Layer(name string) (*layer.Spec, error) {
	data, err := c.read(layersDir, name)
	if err != nil {
		return nil, err
	}

	spec := &layer.Spec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, errors.InvalidTable(name, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, errors.InvalidTable(name, err)
	}

	logging.Debug("loaded layer", "name", name, "layer", spec.Name, "holds", len(spec.Holds))
	return spec, nil
}

// SimpleModifications loads the profile's 1:1 key substitutions.
// A catalog without the file has none.
func (c *Catalog) SimpleModifications() ([]karabiner.SimpleModification, error) {
	data, err := fs.ReadFile(c.fsys, simpleModificationsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return []karabiner.SimpleModification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", simpleModificationsFile, err)
	}

	var mods []karabiner.SimpleModification
	if err := decodeStrict(data, &mods); err != nil && err != io.EOF {
		return nil, errors.InvalidTable("simple_modifications", err)
	}
	for i, m := range mods {
		if m.From.Key() == "" || len(m.To) == 0 {
			return nil, errors.InvalidTable("simple_modifications",
				fmt.Errorf("entry %d needs a from key and at least one to effect", i))
		}
	}
	if mods == nil {
		mods = []karabiner.SimpleModification{}
	}
	return mods, nil
}

// Kind reports whether name is a rule table or a layer.
func (c *Catalog) Kind(name string) (Kind, error) {
	if !validName(name) {
		return "", errors.TableNotFound(name)
	}
	if c.exists(rulesDir, name) {
		return KindTable, nil
	}
	if c.exists(layersDir, name) {
		return KindLayer, nil
	}
	return "", errors.TableNotFound(name)
}

// Source loads name as an assembler source. Rule tables are used as is;
// layers are expanded and carry their variable names.
func (c *Catalog) Source(name string) (assembler.Source, error) {
	kind, err := c.Kind(name)
	if err != nil {
		return assembler.Source{}, err
	}

	if kind == KindLayer {
		spec, err := c.Layer(name)
		if err != nil {
			return assembler.Source{}, err
		}
		exp := layer.Expand(spec)
		return assembler.Source{Name: name, Rules: exp.Rules(), Variables: exp.Variables()}, nil
	}

	t, err := c.Table(name)
	if err != nil {
		return assembler.Source{}, err
	}
	return assembler.Source{Name: name, Rules: t.Rules}, nil
}

// Sources loads every name in order. The first failure stops loading.
func (c *Catalog) Sources(names []string) ([]assembler.Source, error) {
	sources := make([]assembler.Source, 0, len(names))
	for _, name := range names {
		src, err := c.Source(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Names returns every table and layer name, sorted.
func (c *Catalog) Names() ([]string, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Layers returns the layer names, sorted.
func (c *Catalog) Layers() ([]string, error) {
	return c.list(layersDir)
}

// Entries loads every table and layer and returns them sorted by name.
func (c *Catalog) Entries() ([]Entry, error) {
	var entries []Entry

	tables, err := c.list(rulesDir)
	if err != nil {
		return nil, err
	}
	for _, name := range tables {
		t, err := c.Table(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Kind: KindTable, Description: t.Description})
	}

	layers, err := c.list(layersDir)
	if err != nil {
		return nil, err
	}
	for _, name := range layers {
		spec, err := c.Layer(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Kind: KindLayer, Description: spec.Description})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (c *Catalog) list(dir string) ([]string, error) {
	files, err := fs.ReadDir(c.fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(f.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

func (c *Catalog) read(dir, name string) ([]byte, error) {
	if !validName(name) {
		return nil, errors.TableNotFound(name)
	}
	data, err := fs.ReadFile(c.fsys, path.Join(dir, name+ext))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.TableNotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (c *Catalog) exists(dir, name string) bool {
	_, err := fs.Stat(c.fsys, path.Join(dir, name+ext))
	return err == nil
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\.`)
}

// decodeStrict rejects keys the target type does not declare.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// defaultTypes fills in the manipulator type the tables may omit.
func defaultTypes(r *karabiner.Rule) {
	for i := range r.Manipulators {
		if r.Manipulators[i].Type == "" {
			r.Manipulators[i].Type = karabiner.TypeBasic
		}
	}
}
