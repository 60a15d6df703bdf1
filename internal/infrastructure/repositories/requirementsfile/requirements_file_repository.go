package requirementsfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

const (
	commentPrefix = "#"
	pinSeparator  = "=="
	includeFields = 2
)

//nolint:gochecknoglobals // constant lookup tables
var (
	includeFlags = []string{"-r", "--requirement"}
	vcsPrefixes  = []string{"git+", "hg+", "svn+", "bzr+"}
)

// RequirementsFileRepository implements repositories.RequirementsRepository
// on pip requirements files.
type RequirementsFileRepository struct{}

// NewRequirementsFileRepository creates a new requirements file repository.
func NewRequirementsFileRepository() repositories.RequirementsRepository {
	return &RequirementsFileRepository{}
}

func (r *RequirementsFileRepository) Read(ctx context.Context, path string) ([]entities.Requirement, error) {
	return r.read(ctx, path, nil)
}

// read parses path; chain holds the files currently being included.
func (r *RequirementsFileRepository) read(
	ctx context.Context,
	path string,
	chain []string,
) ([]entities.Requirement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	for _, seen := range chain {
		if seen == key {
			return nil, fmt.Errorf("%w: %s", entities.ErrIncludeCycle, path)
		}
	}
	chain = append(chain, key)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	logger.Debugf("Reading requirements from %s", path)

	requirements := make([]entities.Requirement, 0)
	for i, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || ignored(line) {
			continue
		}

		if isInclude(line) {
			included, includeErr := r.readInclude(ctx, path, i+1, line, chain)
			if includeErr != nil {
				return nil, includeErr
			}
			requirements = append(requirements, included...)
			continue
		}

		requirement, parseErr := parsePin(line, path, i+1)
		if parseErr != nil {
			return nil, parseErr
		}
		requirements = append(requirements, requirement)
	}
	return requirements, nil
}

func (r *RequirementsFileRepository) readInclude(
	ctx context.Context,
	path string,
	lineNo int,
	line string,
	chain []string,
) ([]entities.Requirement, error) {
	fields := strings.Fields(line)
	if len(fields) != includeFields || !isIncludeFlag(fields[0]) {
		return nil, fmt.Errorf("%w at %s:%d: %q", entities.ErrMalformedInclude, path, lineNo, line)
	}
	return r.read(ctx, filepath.Join(filepath.Dir(path), fields[1]), chain)
}

// Apply replaces every copy of the requirement's pin in the source file
// with the updated pin. A pin already rewritten by an earlier update of
// the same file is left as is.
func (r *RequirementsFileRepository) Apply(ctx context.Context, update entities.Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := update.Requirement.Source
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	oldPin := update.Requirement.Pin()
	newPin := update.Pin()
	if !strings.Contains(string(content), oldPin) {
		// a pin listed twice is rewritten by the first update
		if strings.Contains(string(content), newPin) {
			logger.Debugf("%s already pins %s", path, newPin)
			return nil
		}
		return fmt.Errorf("%q not found in %s", oldPin, path)
	}
	updated := strings.ReplaceAll(string(content), oldPin, newPin)

	if err = os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	logger.Debugf("Rewrote %s: %s", path, update)
	return nil
}

func parsePin(line, path string, lineNo int) (entities.Requirement, error) {
	name, version, ok := strings.Cut(line, pinSeparator)
	if !ok {
		return entities.Requirement{}, fmt.Errorf(
			"%w at %s:%d: %q (expected name==version)",
			entities.ErrMalformedRequirement, path, lineNo, line,
		)
	}
	return entities.Requirement{
		Name:    strings.TrimSpace(name),
		Version: strings.TrimSpace(version),
		Source:  path,
		Text:    line,
	}, nil
}

func ignored(line string) bool {
	if strings.HasPrefix(line, commentPrefix) {
		return true
	}
	for _, prefix := range vcsPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isInclude(line string) bool {
	for _, flag := range includeFlags {
		if strings.HasPrefix(line, flag) {
			return true
		}
	}
	return false
}

func isIncludeFlag(field string) bool {
	for _, flag := range includeFlags {
		if field == flag {
			return true
		}
	}
	return false
}
