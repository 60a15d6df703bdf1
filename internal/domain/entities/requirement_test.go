//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/test/domain/entitybuilders"
)

func TestRequirement(t *testing.T) {
	t.Parallel()

	t.Run("should render the pin with its source", func(t *testing.T) {
		t.Parallel()

		// given
		requirement := entitybuilders.NewRequirementBuilder().
			WithName("requests").
			WithVersion("2.31.0").
			WithSource("dev/requirements.txt").
			BuildRequirement()

		// when
		text := requirement.String()

		// then
		assert.Equal(t, "requests==2.31.0 (dev/requirements.txt)", text)
		assert.Equal(t, "requests==2.31.0", requirement.Pin())
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should render the version change", func(t *testing.T) {
		t.Parallel()

		// given
		update := entities.Update{
			Requirement: entitybuilders.NewRequirementBuilder().WithName("six").WithVersion("1.15.0").BuildRequirement(),
			Version:     "1.16.0",
		}

		// when
		text := update.String()

		// then
		assert.Equal(t, "six: 1.15.0 => 1.16.0", text)
		assert.Equal(t, "six==1.16.0", update.Pin())
	})
}

func TestUpdatePinKeepsSpacing(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite only the version of a spaced pin", func(t *testing.T) {
		t.Parallel()

		// given
		update := entities.Update{
			Requirement: entities.Requirement{Name: "pkg", Version: "1.0.0", Text: "pkg == 1.0.0"},
			Version:     "2.0.0",
		}

		// when
		pin := update.Pin()

		// then
		assert.Equal(t, "pkg == 1.0.0", update.Requirement.Pin())
		assert.Equal(t, "pkg == 2.0.0", pin)
	})
}
