package internal

import "github.com/rios0rios0/codegen-tasks/internal/domain/entities"

// AppInternal holds every controller exposed as a subcommand.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
