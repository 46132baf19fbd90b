package cmd

import (
	"github.com/mehXX/karabiner-gen/internal/app"
	"github.com/mehXX/karabiner-gen/internal/assembler"
	"github.com/mehXX/karabiner-gen/internal/config"
	"github.com/mehXX/karabiner-gen/internal/tables"
)

// settings returns the active settings.
// This is a helper to reduce repetition in commands.
func settings() *config.Settings {
	return app.Default.Settings
}

// catalog returns the rule catalog of the default App.
func catalog() *tables.Catalog {
	return app.Default.Catalog
}

// assemble assembles the rules of the active order.
func assemble() (*assembler.Assembly, error) {
	return app.Default.Assemble()
}

// orderPositions maps each source in the active order to its 1-based position.
func orderPositions() map[string]int {
	positions := make(map[string]int)
	for i, name := range app.Default.Order() {
		if _, ok := positions[name]; !ok {
			positions[name] = i + 1
		}
	}
	return positions
}
