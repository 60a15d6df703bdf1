package git

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

const (
	tagListFormat   = "--format=%(refname:strip=2);%(objectname)"
	tagListFieldSep = ";"
	unknownBranch   = "(unknown)"
)

//nolint:gochecknoglobals // compiled once
var headBranchPattern = regexp.MustCompile(`HEAD branch: (.*)`)

// parseTagList parses "name;hash" lines printed by `git tag --list` with
// tagListFormat.
func parseTagList(output string) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, hash, ok := strings.Cut(line, tagListFieldSep)
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("unexpected tag list line: %q", line)
		}
		tags = append(tags, entities.Tag{Name: name, CommitHash: hash})
	}
	return tags, nil
}

// parseDefaultBranch extracts the branch from `git remote show` output.
func parseDefaultBranch(output string) (string, bool) {
	match := headBranchPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	branch := strings.TrimSpace(match[1])
	if branch == "" || branch == unknownBranch {
		return "", false
	}
	return branch, true
}

// parseSubjects turns `git log --pretty=%s` output (newest first) into
// subjects ordered oldest first.
func parseSubjects(output string) []string {
	if strings.TrimSpace(output) == "" {
		return []string{}
	}
	subjects := strings.Split(strings.TrimRight(output, "\n"), "\n")
	slices.Reverse(subjects)
	return subjects
}
