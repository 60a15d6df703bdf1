package entities

// CommitsByCategory groups commit messages by their tag. Messages keep the
// order in which they were classified.
type CommitsByCategory map[Category][]string

// ClassifyCommits splits "[tag] message" subjects into their categories.
// Subjects without a recognised tag are stored verbatim under CategoryNone.
func ClassifyCommits(subjects []string) CommitsByCategory {
	result := make(CommitsByCategory)
	for _, subject := range subjects {
		category, message, ok := ParseCommitSubject(subject)
		if !ok {
			result[CategoryNone] = append(result[CategoryNone], subject)
			continue
		}
		result[category] = append(result[category], message)
	}
	return result
}

// ParseCommitSubject extracts the tag and the message of a single subject.
func ParseCommitSubject(subject string) (Category, string, bool) {
	match := commitMessagePattern.FindStringSubmatch(subject)
	if match == nil {
		return CategoryNone, "", false
	}
	return Category(match[1]), match[2], true
}

// Has reports whether at least one message was classified as category.
func (c CommitsByCategory) Has(category Category) bool {
	return len(c[category]) > 0
}

// Invalid returns the subjects that carry no recognised tag.
func (c CommitsByCategory) Invalid() []string {
	return c[CategoryNone]
}
