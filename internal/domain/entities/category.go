package entities

import "regexp"

// Category is the tag a commit subject carries, e.g. "feature" in
// "[feature] add something". CategoryNone groups subjects without a tag.
type Category string

const (
	CategoryNone     Category = ""
	CategoryFeature  Category = "feature"
	CategoryBugfix   Category = "bugfix"
	CategoryInternal Category = "internal"
	CategoryTooling  Category = "tooling"
	CategoryDocs     Category = "docs"
)

// CategoryTitle pairs a category with the heading used when rendering it.
type CategoryTitle struct {
	Title    string
	Category Category
}

// categoryTitles lists every recognised category in rendering order.
//
//nolint:gochecknoglobals // constant lookup table
var categoryTitles = []CategoryTitle{
	{Title: "Features", Category: CategoryFeature},
	{Title: "Bugfixes", Category: CategoryBugfix},
	{Title: "Internal", Category: CategoryInternal},
	{Title: "Tooling", Category: CategoryTooling},
	{Title: "Documentation", Category: CategoryDocs},
}

// changelogTitles are the only headings that end up in a changelog.
//
//nolint:gochecknoglobals // constant lookup table
var changelogTitles = map[string]bool{
	"Features": true,
	"Bugfixes": true,
	"Internal": true,
}

//nolint:gochecknoglobals // compiled once
var commitMessagePattern = regexp.MustCompile(
	`^\[(feature|bugfix|internal|tooling|docs)\] (.*)`,
)

// InChangelog reports whether messages of this category are rendered by
// FormatChangelog.
func (c Category) InChangelog() bool {
	for _, ct := range categoryTitles {
		if ct.Category == c {
			return changelogTitles[ct.Title]
		}
	}
	return false
}
