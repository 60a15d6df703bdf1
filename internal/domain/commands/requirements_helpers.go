package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// RequirementsOptions holds runtime options shared by the requirements commands.
type RequirementsOptions struct {
	File string // Overrides the configured requirements file
}

func requirementsPath(settings *entities.Settings, opts RequirementsOptions) string {
	if opts.File != "" {
		return opts.File
	}
	return settings.RequirementsPath()
}

// forEachUpdate queries the index for every requirement of path in order
// and calls fn for each one with a newer published version. The first
// error stops the walk.
func forEachUpdate(
	ctx context.Context,
	requirements repositories.RequirementsRepository,
	index repositories.PackageIndexRepository,
	path string,
	fn func(entities.Update) error,
) error {
	pins, err := requirements.Read(ctx, path)
	if err != nil {
		return err
	}

	for _, requirement := range pins {
		latest, lookupErr := index.LatestVersion(ctx, requirement.Name)
		if lookupErr != nil {
			return fmt.Errorf("failed to look up %s: %w", requirement.Name, lookupErr)
		}
		if latest == requirement.Version {
			logger.Debugf("%s is up to date", requirement)
			continue
		}
		if fnErr := fn(entities.Update{Requirement: requirement, Version: latest}); fnErr != nil {
			return fnErr
		}
	}
	return nil
}
