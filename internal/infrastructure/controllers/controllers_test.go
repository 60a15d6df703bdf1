//go:build unit

package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/infrastructure/controllers"
	"github.com/rios0rios0/projecttools/test/domain/commanddoubles"
	"github.com/rios0rios0/projecttools/test/domain/entitybuilders"
)

// run executes the root command built from ctrls with args and returns
// the standard output.
func run(t *testing.T, ctrls []entities.Controller, args ...string) (string, error) {
	t.Helper()
	root := controllers.BuildRootCommand(entities.ControllerBind{Use: "test"}, ctrls)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--project-dir", t.TempDir()))
	err := root.Execute()
	return out.String(), err
}

func TestReleaseControllers(t *testing.T) {
	t.Parallel()

	t.Run("should run the release candidate trigger under both spellings", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReleaseCandidateCommand{}
		ctrls := []entities.Controller{controllers.NewReleaseCandidateController(stub)}

		// when
		_, underscoreErr := run(t, ctrls, "release_candidate")
		_, hyphenErr := run(t, ctrls, "release-candidate")

		// then
		require.NoError(t, underscoreErr)
		require.NoError(t, hyphenErr)
		assert.Equal(t, 2, stub.ExecuteCallCount)
		assert.Equal(t, "origin", stub.LastSettings.Remote)
	})

	t.Run("should reject positional arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubReleaseCandidateCommand{}
		ctrls := []entities.Controller{controllers.NewReleaseCandidateController(stub)}

		// when
		_, err := run(t, ctrls, "release_candidate", "extra")

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should print the diagnostics and fail on invalid commit messages", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommitMessagesCommand{
			Diagnostics: []string{"Invalid commit message: fix stuff"},
			ExecuteErr:  entities.ErrInvalidCommitMessages,
		}
		ctrls := []entities.Controller{controllers.NewCheckCommitMessagesController(stub)}

		// when
		out, err := run(t, ctrls, "check-commit-messages")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidCommitMessages)
		assert.Equal(t, "Invalid commit message: fix stuff\n", out)
	})

	t.Run("should print the changelog and pass the write flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubChangelogCommand{Lines: []string{"* Features", "  * a"}}
		ctrls := []entities.Controller{controllers.NewChangelogController(stub)}

		// when
		out, err := run(t, ctrls, "changelog", "--write", "CHANGELOG.md")

		// then
		require.NoError(t, err)
		assert.Equal(t, "* Features\n  * a\n", out)
		assert.Equal(t, commands.ChangelogOptions{WriteFile: "CHANGELOG.md"}, stub.LastOpts)
	})

	t.Run("should fail on an unknown subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		ctrls := []entities.Controller{
			controllers.NewChangelogController(&commanddoubles.StubChangelogCommand{}),
		}

		// when
		_, err := run(t, ctrls, "publish")

		// then
		require.Error(t, err)
	})
}

func TestVersionController(t *testing.T) {
	t.Run("should print the version and pass the current ref", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_REF", "refs/tags/release-candidate")
		stub := &commanddoubles.StubVersionCommand{Version: "0.1.0"}
		ctrls := []entities.Controller{controllers.NewVersionController(stub)}

		// when
		out, err := run(t, ctrls, "version")

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.1.0\n", out)
		assert.Equal(t, "refs/tags/release-candidate", stub.LastOpts.CurrentRef)
	})

	t.Run("should propagate command failures", func(t *testing.T) {
		// given
		stub := &commanddoubles.StubVersionCommand{ExecuteErr: errors.New("not a git repository")}
		ctrls := []entities.Controller{controllers.NewVersionController(stub)}

		// when
		out, err := run(t, ctrls, "version")

		// then
		require.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestRequirementsControllers(t *testing.T) {
	t.Parallel()

	pins := []entities.Requirement{
		entitybuilders.NewRequirementBuilder().WithName("requests").WithVersion("2.31.0").BuildRequirement(),
		entitybuilders.NewRequirementBuilder().WithName("six").WithVersion("1.16.0").BuildRequirement(),
	}

	t.Run("should list requirements as text", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGetRequirementsCommand{Requirements: pins}
		ctrls := []entities.Controller{controllers.NewGetRequirementsController(stub)}

		// when
		out, err := run(t, ctrls, "get", "dev.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, "requests==2.31.0 (requirements.txt)\nsix==1.16.0 (requirements.txt)\n", out)
		assert.Equal(t, commands.RequirementsOptions{File: "dev.txt"}, stub.LastOpts)
	})

	t.Run("should list requirements as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGetRequirementsCommand{Requirements: pins}
		ctrls := []entities.Controller{controllers.NewGetRequirementsController(stub)}

		// when
		out, err := run(t, ctrls, "get", "--output", "json")

		// then
		require.NoError(t, err)
		var decoded []entities.Requirement
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, pins, decoded)
	})

	t.Run("should list updates as YAML under the hyphenated alias", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdatesCommand{Updates: []entities.Update{{Requirement: pins[0], Version: "2.32.3"}}}
		ctrls := []entities.Controller{controllers.NewGetUpdatesController(stub)}

		// when
		out, err := run(t, ctrls, "get-updates", "-o", "yaml")

		// then
		require.NoError(t, err)
		var decoded []entities.Update
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, stub.Updates, decoded)
	})

	t.Run("should reject an unknown output format before running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdatesCommand{}
		ctrls := []entities.Controller{controllers.NewGetUpdatesController(stub)}

		// when
		_, err := run(t, ctrls, "get_updates", "--output", "xml")

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should reject more than one file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGetRequirementsCommand{}
		ctrls := []entities.Controller{controllers.NewGetRequirementsController(stub)}

		// when
		_, err := run(t, ctrls, "get", "a.txt", "b.txt")

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should print applied updates even when the run stopped early", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdatesCommand{
			Updates:    []entities.Update{{Requirement: pins[0], Version: "2.32.3"}},
			ExecuteErr: errors.New("failed to look up six"),
		}
		ctrls := []entities.Controller{controllers.NewUpdateRequirementsController(stub)}

		// when
		out, err := run(t, ctrls, "update")

		// then
		require.Error(t, err)
		assert.Equal(t, "requests: 2.31.0 => 2.32.3\n", out)
	})
}
