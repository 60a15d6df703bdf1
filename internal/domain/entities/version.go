package entities

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"
	modsemver "golang.org/x/mod/semver"
)

// VersionTagPattern is the glob release tags are listed with.
const VersionTagPattern = "v*"

// Tag is a git tag and the object it points to.
type Tag struct {
	Name       string
	CommitHash string
}

// VersionTag is a released version and the commit its tag points to.
// CommitHash is empty when no release exists yet.
type VersionTag struct {
	Version    *semver.Version
	CommitHash string
}

// InitialVersion is the version assumed before the first release.
func InitialVersion() VersionTag {
	return VersionTag{Version: semver.New(0, 0, 0, "", "")}
}

// ParseVersionTags maps each release version to its commit hash. Tags that
// are not "v<semver>" are skipped.
func ParseVersionTags(tags []Tag) map[string]VersionTag {
	versions := make(map[string]VersionTag, len(tags))
	for _, tag := range tags {
		if !modsemver.IsValid(tag.Name) {
			logger.Debugf("Skipping non-semver tag %q", tag.Name)
			continue
		}
		version, err := semver.StrictNewVersion(strings.TrimPrefix(tag.Name, "v"))
		if err != nil {
			logger.Warnf("Skipping tag %q: %v", tag.Name, err)
			continue
		}
		versions[version.String()] = VersionTag{Version: version, CommitHash: tag.CommitHash}
	}
	return versions
}

// LatestVersionTag returns the highest release among tags, or
// InitialVersion when there is none.
func LatestVersionTag(tags []Tag) VersionTag {
	latest := InitialVersion()
	found := false
	for _, candidate := range ParseVersionTags(tags) {
		if !found || candidate.Version.GreaterThan(latest.Version) {
			latest = candidate
			found = true
		}
	}
	return latest
}

// NextVersion bumps the minor component when a feature landed since the
// latest release and the patch component otherwise.
func NextVersion(latest VersionTag, commits CommitsByCategory) semver.Version {
	if commits.Has(CategoryFeature) {
		return latest.Version.IncMinor()
	}
	return latest.Version.IncPatch()
}

// FormatVersion appends the "+<commit>" development suffix unless the
// build runs on the release-candidate ref.
func FormatVersion(version semver.Version, shortCommit string, onReleaseCandidate bool) string {
	if onReleaseCandidate || shortCommit == "" {
		return version.String()
	}
	return version.String() + "+" + shortCommit
}
