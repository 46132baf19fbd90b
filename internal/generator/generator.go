package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mehXX/karabiner-gen/internal/errors"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

// DefaultProfile is used when Config.Profile is empty.
const DefaultProfile = "Default"

// Config holds everything that varies between generated documents.
type Config struct {
	Profile             string
	SimpleModifications []karabiner.SimpleModification
	Rules               []karabiner.Rule
}

// Validate checks that every rule is well formed.
func (c *Config) Validate() error {
	for i := range c.Rules {
		if err := c.Rules[i].Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	for i, m := range c.SimpleModifications {
		if m.From.Key() == "" {
			return fmt.Errorf("simple modification %d: from key is required", i)
		}
		if len(m.To) == 0 {
			return fmt.Errorf("simple modification %d: at least one to effect is required", i)
		}
	}
	return nil
}

// BuildDocument wraps the rules in the fixed document shell.
func BuildDocument(cfg *Config) (*karabiner.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "invalid generator config", err)
	}

	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	// Empty lists must still encode as [] rather than null.
	mods := cfg.SimpleModifications
	if mods == nil {
		mods = []karabiner.SimpleModification{}
	}
	rules := cfg.Rules
	if rules == nil {
		rules = []karabiner.Rule{}
	}

	return &karabiner.Document{
		Global: karabiner.Global{},
		Profiles: []karabiner.Profile{{
			Name:                 profile,
			SimpleModifications:  mods,
			ComplexModifications: karabiner.ComplexModifications{Rules: rules},
		}},
	}, nil
}

// Encode writes v to w in the karabiner.json format: two-space indent,
// no HTML escaping, trailing newline.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Render encodes doc as indented JSON.
func Render(doc *karabiner.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Bytes builds and renders the document for cfg.
func Bytes(cfg *Config) ([]byte, error) {
	doc, err := BuildDocument(cfg)
	if err != nil {
		return nil, err
	}
	return Render(doc)
}

// Write replaces the file at path with data.
func Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WriteFailed(path, err)
	}
	logging.Debug("wrote document", "path", path, "bytes", len(data))
	return nil
}

// Generate builds, renders and writes the document for cfg.
func Generate(path string, cfg *Config) error {
	data, err := Bytes(cfg)
	if err != nil {
		return err
	}
	return Write(path, data)
}
