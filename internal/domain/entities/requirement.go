package entities

import (
	"fmt"
	"strings"
)

// Requirement is a pinned "name==version" line found in a requirements file.
type Requirement struct {
	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source"  yaml:"source"` // File the pin was read from
	// Text is the pin as written in Source, e.g. "pkg == 1.0.0". Empty
	// means the canonical "name==version" form.
	Text string `json:"-" yaml:"-"`
}

func (r Requirement) String() string {
	return fmt.Sprintf("%s==%s (%s)", r.Name, r.Version, r.Source)
}

// Pin returns the pin text as it appears in the source file.
func (r Requirement) Pin() string {
	if r.Text != "" {
		return r.Text
	}
	return r.Name + "==" + r.Version
}

// Update is a newer version published for a Requirement.
type Update struct {
	Requirement Requirement `json:"requirement" yaml:"requirement"`
	Version     string      `json:"version"     yaml:"version"`
}

func (u Update) String() string {
	return fmt.Sprintf("%s: %s => %s", u.Requirement.Name, u.Requirement.Version, u.Version)
}

// Pin returns the text the requirement's pin is rewritten to, keeping the
// original spacing around "==".
func (u Update) Pin() string {
	oldPin := u.Requirement.Pin()
	if strings.HasSuffix(oldPin, u.Requirement.Version) {
		return strings.TrimSuffix(oldPin, u.Requirement.Version) + u.Version
	}
	return u.Requirement.Name + "==" + u.Version
}
