package repositories

import "context"

// PackageIndexRepository looks up published package versions.
type PackageIndexRepository interface {
	// LatestVersion returns the current published version of a package.
	LatestVersion(ctx context.Context, name string) (string, error)
}

// PackageIndexFactory creates a PackageIndexRepository for an index base URL.
type PackageIndexFactory func(baseURL string) PackageIndexRepository
