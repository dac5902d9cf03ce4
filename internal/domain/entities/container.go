package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings requires a config file path, loaded by the controllers layer
	return container.Provide(NewSuspensePatchRules)
}
