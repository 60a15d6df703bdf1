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
		Use:   "requirements",
		Short: "Inspect and update pinned Python requirements",
		Long: `Read "name==version" pins from requirements files (following "-r" includes),
compare them with the latest release on the package index and rewrite
outdated pins in place.`,
	}, appContext.GetRequirementsControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'requirements': %s", err)
	}
}
