// Package testutil provides test fixtures and utilities.
//
// This package contains an embedded fixture catalog, settings files and
// the document the generator is expected to produce from them.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/catalog/rules/{hyper,app_copy,unused}.yaml
//	fixtures/catalog/layers/launcher.yaml
//	fixtures/catalog/simple_modifications.yaml
//	fixtures/settings/{valid,invalid,unknown_table}.toml
//	fixtures/expected_karabiner.json
//
// # Loading Fixtures
//
//	catalog := testutil.Catalog()
//	doc, err := testutil.ExpectedDocument()
//	data, err := testutil.LoadFixture("settings/valid.toml")
//
// # Test Environment
//
// NewTestEnv swaps app.Default for an App over the fixture catalog that
// writes into t.TempDir(). The original default is restored when the test
// ends.
//
//	func TestGenerate(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    if err := generate(); err != nil {
//	        t.Fatal(err)
//	    }
//	    data := env.ReadOutput()
//	}
package testutil
