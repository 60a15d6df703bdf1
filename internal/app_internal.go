package internal

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/infrastructure/controllers"
)

// AppInternal holds the controller groups of both binaries.
type AppInternal struct {
	release      controllers.ReleaseControllers
	requirements controllers.RequirementsControllers
}

func NewAppInternal(
	release controllers.ReleaseControllers,
	requirements controllers.RequirementsControllers,
) *AppInternal {
	return &AppInternal{
		release:      release,
		requirements: requirements,
	}
}

// GetReleaseControllers returns the controllers of the release binary.
func (it *AppInternal) GetReleaseControllers() []entities.Controller {
	return it.release
}

// GetRequirementsControllers returns the controllers of the requirements binary.
func (it *AppInternal) GetRequirementsControllers() []entities.Controller {
	return it.requirements
}
