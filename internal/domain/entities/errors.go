package entities

import "errors"

var (
	// ErrInvalidCommitMessages is returned when commits without a recognised tag were found.
	ErrInvalidCommitMessages = errors.New("invalid commit messages found")
	// ErrDefaultBranchNotFound is returned when the remote does not report its HEAD branch.
	ErrDefaultBranchNotFound = errors.New("could not determine default branch")
	// ErrBranchDiverged is returned when the local checkout differs from the remote default branch.
	ErrBranchDiverged = errors.New("local checkout differs from the remote default branch")
	// ErrMalformedRequirement is returned for requirement lines that are not "name==version".
	ErrMalformedRequirement = errors.New("malformed requirement")
	// ErrMalformedInclude is returned for "-r" lines without exactly one path.
	ErrMalformedInclude = errors.New("malformed include")
	// ErrIncludeCycle is returned when requirement files include each other.
	ErrIncludeCycle = errors.New("requirement files include each other")
	// ErrUnknownGitBackend is returned when the configured git backend is not registered.
	ErrUnknownGitBackend = errors.New("unknown git backend")
	// ErrPackageNotFound is returned when the package index does not know a package.
	ErrPackageNotFound = errors.New("package not found")
)
