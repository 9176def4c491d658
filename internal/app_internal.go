package internal

import "github.com/rios0rios0/legal-licenses/internal/domain/entities"

// AppInternal holds every controller the CLI mounts as a subcommand.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the registered controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
