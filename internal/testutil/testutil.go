// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mehXX/karabiner-gen/internal/app"
	"github.com/mehXX/karabiner-gen/internal/config"
	"github.com/mehXX/karabiner-gen/internal/tables"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Settings *config.Settings
	Catalog  *tables.Catalog
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a test environment backed by the fixture catalog.
// Output goes to a temporary directory and the fixture order is used.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	settings := config.DefaultSettings()
	settings.OutputDir = tmpDir
	settings.Profile = "Fixture"
	settings.Rules = append([]string(nil), FixtureOrder...)

	catalog := Catalog()

	testApp := app.New(
		app.WithSettings(settings),
		app.WithCatalog(catalog),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Settings: settings,
		Catalog:  catalog,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// OutputPath returns where generate writes in this environment.
func (e *TestEnv) OutputPath() string {
	return filepath.Join(e.TmpDir, e.Settings.OutputFile)
}

// WriteSettingsFixture copies a settings fixture into the temp dir and
// returns its path.
func (e *TestEnv) WriteSettingsFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture("settings/" + name)
	if err != nil {
		e.T.Fatalf("Failed to load settings fixture %s: %v", name, err)
	}
	return e.WriteFile(config.DefaultSettingsFile, data)
}

// WriteFile writes data to name inside the temp dir and returns its path.
func (e *TestEnv) WriteFile(name string, data []byte) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// ReadOutput returns the generated file's content.
func (e *TestEnv) ReadOutput() []byte {
	e.T.Helper()

	data, err := os.ReadFile(e.OutputPath())
	if err != nil {
		e.T.Fatalf("Failed to read output: %v", err)
	}
	return data
}

// FileExists checks if path exists.
func (e *TestEnv) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
