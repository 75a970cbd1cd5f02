package app

import (
	"github.com/nfrund/vep/internal/module"
	"github.com/nfrund/vep/internal/modules/about"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		about.New(aboutDeps(deps)),
	}
}
