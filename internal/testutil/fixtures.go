package testutil

import (
	"embed"
	"encoding/json"
	"io/fs"

	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/tables"
)

//go:embed fixtures
var fixturesFS embed.FS

// FixtureOrder is the rule order used by settings/valid.toml.
var FixtureOrder = []string{"hyper", "launcher", "app_copy"}

// LoadFixture loads a fixture file by its path under fixtures/.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// CatalogFS returns the fixture catalog: three rule tables, one layer and
// a single simple modification.
func CatalogFS() fs.FS {
	sub, err := fs.Sub(fixturesFS, "fixtures/catalog")
	if err != nil {
		panic(err)
	}
	return sub
}

// Catalog returns a tables.Catalog over CatalogFS.
func Catalog() *tables.Catalog {
	return tables.New(CatalogFS())
}

// LoadDocumentFixture loads a karabiner.json fixture.
func LoadDocumentFixture(name string) (*karabiner.Document, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var doc karabiner.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ExpectedDocument returns the document generated from the fixture catalog
// with settings/valid.toml.
func ExpectedDocument() (*karabiner.Document, error) {
	return LoadDocumentFixture("expected_karabiner.json")
}
