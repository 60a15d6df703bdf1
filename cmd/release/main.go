package main

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/infrastructure/controllers"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := controllers.BuildRootCommand(entities.ControllerBind{
		Use:   "release",
		Short: "Release helper driven by categorized commit messages",
		Long: `Derive the next semantic version and the changelog from commit subjects
of the form "[<tag>] <message>", validate those subjects and trigger the
release pipeline by moving the release-candidate tag.

Commit tags: feature, bugfix, internal, tooling, docs.`,
	}, appContext.GetReleaseControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'release': %s", err)
	}
}
