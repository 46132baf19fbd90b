// Package assembler concatenates rule sources into the final rule list.
package assembler

import (
	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/logging"
)

// Source is a named group of rules: a static table or an expanded layer.
type Source struct {
	Name  string
	Rules []karabiner.Rule

	// Variables lists the daemon variables the source owns, if any.
	Variables []string
}

// Section records where a source landed in the assembled list.
type Section struct {
	Name  string
	Start int
	Count int
}

// Assembly is the ordered rule list plus its provenance.
type Assembly struct {
	Rules    []karabiner.Rule
	Sections []Section
}

// Assemble concatenates sources in argument order. Rules are neither
// deduplicated nor checked for conflicts; the daemon evaluates them in
// document order.
func Assemble(sources ...Source) *Assembly {
	a := &Assembly{}
	owners := make(map[string]string)

	for _, src := range sources {
		a.Sections = append(a.Sections, Section{
			Name:  src.Name,
			Start: len(a.Rules),
			Count: len(src.Rules),
		})
		a.Rules = append(a.Rules, src.Rules...)

		for _, v := range src.Variables {
			if owner, ok := owners[v]; ok {
				logging.Warn("layer variable reused by another source",
					"variable", v, "first", owner, "second", src.Name)
				continue
			}
			owners[v] = src.Name
		}

		logging.Debug("assembled source", "name", src.Name, "rules", len(src.Rules))
	}

	return a
}

// Section returns the section containing rule index i.
func (a *Assembly) Section(i int) (Section, bool) {
	for _, s := range a.Sections {
		if i >= s.Start && i < s.Start+s.Count {
			return s, true
		}
	}
	return Section{}, false
}

// SectionRules returns the rules of section s.
func (a *Assembly) SectionRules(s Section) []karabiner.Rule {
	return a.Rules[s.Start : s.Start+s.Count]
}
