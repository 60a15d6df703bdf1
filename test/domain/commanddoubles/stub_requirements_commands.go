//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// StubGetRequirementsCommand is a stub implementation of commands.GetRequirements.
type StubGetRequirementsCommand struct {
	ExecuteCallCount int
	Requirements     []entities.Requirement
	ExecuteErr       error
	LastOpts         commands.RequirementsOptions
}

var _ commands.GetRequirements = (*StubGetRequirementsCommand)(nil)

func (s *StubGetRequirementsCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.RequirementsOptions,
) ([]entities.Requirement, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Requirements, s.ExecuteErr
}

// StubUpdatesCommand is a stub implementation of commands.GetUpdates and
// commands.UpdateRequirements.
type StubUpdatesCommand struct {
	ExecuteCallCount int
	Updates          []entities.Update
	ExecuteErr       error
	LastOpts         commands.RequirementsOptions
}

var (
	_ commands.GetUpdates         = (*StubUpdatesCommand)(nil)
	_ commands.UpdateRequirements = (*StubUpdatesCommand)(nil)
)

func (s *StubUpdatesCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.RequirementsOptions,
) ([]entities.Update, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Updates, s.ExecuteErr
}
