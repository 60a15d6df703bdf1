//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/infrastructure/repositories/requirementsfile"
	"github.com/rios0rios0/projecttools/test/domain/entitybuilders"
	"github.com/rios0rios0/projecttools/test/infrastructure/repositorydoubles"
)

func samplePins() []entities.Requirement {
	return []entities.Requirement{
		entitybuilders.NewRequirementBuilder().WithName("requests").WithVersion("2.31.0").BuildRequirement(),
		entitybuilders.NewRequirementBuilder().WithName("six").WithVersion("1.16.0").BuildRequirement(),
		entitybuilders.NewRequirementBuilder().WithName("attrs").WithVersion("22.0.0").BuildRequirement(),
	}
}

func TestGetRequirementsCommand(t *testing.T) {
	t.Parallel()

	t.Run("should read the configured requirements file", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()}
		command := commands.NewGetRequirementsCommand(spy)
		settings := entitybuilders.NewSettingsBuilder().WithProjectDir("/project").BuildSettings()

		// when
		requirements, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, requirements, 3)
		assert.Equal(t, []string{"/project/requirements.txt"}, spy.ReadPaths)
	})

	t.Run("should prefer the file given on the command line", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &repositorydoubles.SpyRequirementsRepository{}
		command := commands.NewGetRequirementsCommand(spy)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{File: "dev.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"dev.txt"}, spy.ReadPaths)
	})
}

func TestGetUpdatesCommand(t *testing.T) {
	t.Parallel()

	t.Run("should report only requirements with a different published version", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()}
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{
			"requests": "2.32.3",
			"six":      "1.16.0",
			"attrs":    "23.1.0",
		}}
		command := commands.NewGetUpdatesCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithIndexURL("https://mirror.example/pypi").BuildSettings()

		// when
		updates, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, "requests: 2.31.0 => 2.32.3", updates[0].String())
		assert.Equal(t, "attrs: 22.0.0 => 23.1.0", updates[1].String())
		assert.Equal(t, "https://mirror.example/pypi", index.BaseURL)
		assert.Empty(t, requirements.Applied)
	})

	t.Run("should return no updates when everything is current", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()[1:2]}
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"six": "1.16.0"}}
		command := commands.NewGetUpdatesCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		updates, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("should propagate index failures", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()}
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"requests": "2.32.3"}}
		command := commands.NewGetUpdatesCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrPackageNotFound)
	})
}

func TestUpdateRequirementsCommand(t *testing.T) {
	t.Parallel()

	t.Run("should apply every update in file order", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()}
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{
			"requests": "2.32.3",
			"six":      "1.16.0",
			"attrs":    "23.1.0",
		}}
		command := commands.NewUpdateRequirementsCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, applied, requirements.Applied)
		require.Len(t, applied, 2)
		assert.Equal(t, "requests==2.32.3", applied[0].Pin())
		assert.Equal(t, "attrs==23.1.0", applied[1].Pin())
	})

	t.Run("should keep earlier updates when a later lookup fails", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{Requirements: samplePins()}
		index := &repositorydoubles.StubPackageIndexRepository{
			Versions: map[string]string{"requests": "2.32.3", "six": "1.16.0"},
			Errors:   map[string]error{"attrs": errors.New("connection reset")},
		}
		command := commands.NewUpdateRequirementsCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "attrs")
		require.Len(t, applied, 1)
		assert.Equal(t, "requests", applied[0].Requirement.Name)
		assert.Equal(t, applied, requirements.Applied)
	})

	t.Run("should stop at the first failed rewrite", func(t *testing.T) {
		t.Parallel()

		// given
		requirements := &repositorydoubles.SpyRequirementsRepository{
			Requirements: samplePins(),
			ApplyErrs:    map[string]error{"requests": errors.New("read-only file system")},
		}
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{
			"requests": "2.32.3",
			"six":      "1.16.0",
			"attrs":    "23.1.0",
		}}
		command := commands.NewUpdateRequirementsCommand(requirements, index.Factory())
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.Error(t, err)
		assert.Empty(t, applied)
		assert.Equal(t, []string{"requests"}, index.LookedUp)
	})
}

func TestUpdateRequirementsCommandWithFiles(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite the pin on disk and yield the update", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("pkg==1.0.0\n"), 0o644))
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"pkg": "2.0.0"}}
		command := commands.NewUpdateRequirementsCommand(requirementsfile.NewRequirementsFileRepository(), index.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithProjectDir(dir).BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, applied, 1)
		assert.Equal(t, "pkg: 1.0.0 => 2.0.0", applied[0].String())
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "pkg==2.0.0\n", string(content))
	})

	t.Run("should leave the file alone when the pin is current", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("pkg==2.0.0\n"), 0o644))
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"pkg": "2.0.0"}}
		command := commands.NewUpdateRequirementsCommand(requirementsfile.NewRequirementsFileRepository(), index.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithProjectDir(dir).BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		assert.Empty(t, applied)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "pkg==2.0.0\n", string(content))
	})

	t.Run("should update a package pinned twice in the same file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("pkg==1.0.0\npkg==1.0.0\n"), 0o644))
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"pkg": "2.0.0"}}
		command := commands.NewUpdateRequirementsCommand(requirementsfile.NewRequirementsFileRepository(), index.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithProjectDir(dir).BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, applied, 2)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "pkg==2.0.0\npkg==2.0.0\n", string(content))
	})

	t.Run("should keep the spacing of a spaced pin", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("pkg == 1.0.0\n"), 0o644))
		index := &repositorydoubles.StubPackageIndexRepository{Versions: map[string]string{"pkg": "2.0.0"}}
		command := commands.NewUpdateRequirementsCommand(requirementsfile.NewRequirementsFileRepository(), index.Factory())
		settings := entitybuilders.NewSettingsBuilder().WithProjectDir(dir).BuildSettings()

		// when
		applied, err := command.Execute(context.Background(), settings, commands.RequirementsOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, applied, 1)
		assert.Equal(t, "pkg: 1.0.0 => 2.0.0", applied[0].String())
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "pkg == 2.0.0\n", string(content))
	})
}
