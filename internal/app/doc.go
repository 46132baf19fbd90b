// Package app provides the application context for karabiner-gen.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Settings *config.Settings // Output location, profile, rule order
//	    Catalog  *tables.Catalog  // Rule tables and layer specs
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New(app.WithSettings(settings))
//
//	// Testing with a catalog built from fixtures
//	a := app.New(
//	    app.WithSettings(config.DefaultSettings()),
//	    app.WithCatalog(tables.New(fixtures)),
//	)
//
// # Pipeline
//
// Assemble loads the sources named by Order and concatenates their rules.
// GeneratorConfig and Document carry the result through to the generator.
package app
