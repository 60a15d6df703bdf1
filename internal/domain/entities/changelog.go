package entities

import "strings"

const (
	unreleasedHeading = "## [Unreleased]"
	h2Prefix          = "## ["
	headingBullet     = "* "
	messageBullet     = "  * "
)

// FormatChangelog renders the changelog lines for the given commits. Only
// Features, Bugfixes and Internal are rendered, in that order, and empty
// categories are left out.
func FormatChangelog(commits CommitsByCategory) []string {
	lines := make([]string, 0)
	for _, ct := range categoryTitles {
		if !ct.Category.InChangelog() || !commits.Has(ct.Category) {
			continue
		}
		lines = append(lines, headingBullet+ct.Title)
		for _, message := range commits[ct.Category] {
			lines = append(lines, messageBullet+message)
		}
	}
	return lines
}

// InsertUnreleasedEntries appends the given lines to the end of the
// "## [Unreleased]" section of a Keep-a-Changelog formatted string.
//
// Behaviour:
//   - If "## [Unreleased]" is missing, the content is returned unchanged.
//   - The entries are placed after the last non-blank line of the section,
//     separated from it by one blank line.
func InsertUnreleasedEntries(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")

	unreleasedIdx := findUnreleasedIndex(lines)
	if unreleasedIdx < 0 {
		return content
	}

	nextH2Idx := findNextH2Index(lines, unreleasedIdx)
	insertAt := findLastContent(lines, unreleasedIdx, nextH2Idx) + 1

	block := make([]string, 0, len(entries)+2) //nolint:mnd // surrounding blank lines
	block = append(block, "")
	block = append(block, entries...)
	if insertAt < len(lines) && strings.TrimSpace(lines[insertAt]) != "" {
		block = append(block, "")
	}

	return strings.Join(insertLines(lines, insertAt, block), "\n")
}

// findUnreleasedIndex returns the line index of the "## [Unreleased]"
// heading, or -1 if not found.
func findUnreleasedIndex(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == unreleasedHeading {
			return i
		}
	}
	return -1
}

// findNextH2Index returns the line index of the next "## [" heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

// findLastContent returns the index of the last non-blank line in
// (startIdx, endIdx), or startIdx when the section is empty.
func findLastContent(lines []string, startIdx, endIdx int) int {
	last := startIdx
	for i := startIdx + 1; i < endIdx; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			last = i
		}
	}
	return last
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
