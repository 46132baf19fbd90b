// Package app provides the application context for karabiner-gen.
// It allows dependency injection for testing.
package app

import (
	"github.com/mehXX/karabiner-gen/internal/assembler"
	"github.com/mehXX/karabiner-gen/internal/config"
	"github.com/mehXX/karabiner-gen/internal/generator"
	"github.com/mehXX/karabiner-gen/internal/karabiner"
	"github.com/mehXX/karabiner-gen/internal/logging"
	"github.com/mehXX/karabiner-gen/internal/tables"
)

// App holds the application dependencies
type App struct {
	// Settings holds the loaded settings file, or the defaults
	Settings *config.Settings

	// Catalog is where rule tables and layers are read from
	Catalog *tables.Catalog
}

// Option is a function that configures the App
type Option func(*App)

// WithSettings sets custom settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithCatalog sets a custom rule catalog
func WithCatalog(c *tables.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// New creates a new App with the given options.
// Missing dependencies fall back to the default settings and the embedded catalog.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Settings == nil {
		app.Settings = config.DefaultSettings()
	}
	if app.Catalog == nil {
		app.Catalog = tables.Default()
	}

	return app
}

// Order returns the source names to assemble: the settings override if
// present, the catalog's default order otherwise.
func (a *App) Order() []string {
	if len(a.Settings.Rules) > 0 {
		return append([]string(nil), a.Settings.Rules...)
	}
	return append([]string(nil), tables.DefaultOrder...)
}

// Assemble loads every source in Order and concatenates their rules.
func (a *App) Assemble() (*assembler.Assembly, error) {
	order := a.Order()
	logging.Debug("assembling rules", "sources", len(order))

	sources, err := a.Catalog.Sources(order)
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(sources...), nil
}

// GeneratorConfig assembles the rules and pairs them with the catalog's
// simple modifications and the configured profile name.
func (a *App) GeneratorConfig() (*generator.Config, error) {
	assembly, err := a.Assemble()
	if err != nil {
		return nil, err
	}

	mods, err := a.Catalog.SimpleModifications()
	if err != nil {
		return nil, err
	}

	return &generator.Config{
		Profile:             a.Settings.Profile,
		SimpleModifications: mods,
		Rules:               assembly.Rules,
	}, nil
}

// Document builds the complete karabiner.json document.
func (a *App) Document() (*karabiner.Document, error) {
	cfg, err := a.GeneratorConfig()
	if err != nil {
		return nil, err
	}
	return generator.BuildDocument(cfg)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
