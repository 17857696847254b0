// Package skills loads, parses, and validates agent skill packages.
// A skill package is a directory containing a SKILL.md file with YAML
// frontmatter describing the skill's metadata, followed by Markdown
// instructions. Optional scripts/, references/, and assets/ directories
// hold supporting files that are treated as inert data.
package skills

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// SkillFileName is the manifest file expected in every skill directory.
const SkillFileName = "SKILL.md"

// Manifest is the typed frontmatter of a SKILL.md file. Name and
// Description are required; every other field is optional.
type Manifest struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Version       string   `yaml:"version"`
	Author        string   `yaml:"author"`
	Compatibility string   `yaml:"compatibility"`
	Tags          []string `yaml:"tags"`
	AllowedTools  []string `yaml:"allowed-tools"`
}

// Metadata is a manifest plus the skill directory it was loaded from.
// It never carries the instruction body, which makes it cheap enough to
// enumerate every installed skill up front.
type Metadata struct {
	Manifest
	Path string // full path to the skill directory
}

// Skill is a fully loaded skill package.
type Skill struct {
	Manifest  Manifest
	Content   string   // Markdown body of SKILL.md, verbatim
	Directory string   // full path to the skill directory
	Resources []string // relative paths of files under scripts/, references/, assets/
}

// Metadata returns the metadata projection of the skill.
func (s *Skill) Metadata() Metadata {
	return Metadata{Manifest: s.Manifest, Path: s.Directory}
}

// SkillSet is the result of a full directory load: every skill that
// parsed successfully plus the diagnostics collected across the scan.
type SkillSet struct {
	Skills      []*Skill
	Diagnostics []Diagnostic
}

// IsValid reports whether the set carries no error-severity diagnostics.
// Warnings do not affect validity.
func (ss *SkillSet) IsValid() bool {
	for _, d := range ss.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Err returns the error-severity diagnostics combined into a single
// error, or nil when the set is valid.
func (ss *SkillSet) Err() error {
	var result *multierror.Error
	for _, d := range ss.Diagnostics {
		if d.Severity == SeverityError {
			result = multierror.Append(result, errors.New(d.String()))
		}
	}
	return result.ErrorOrNil()
}

// Find returns the skill with the given manifest name.
func (ss *SkillSet) Find(name string) (*Skill, bool) {
	for _, s := range ss.Skills {
		if s.Manifest.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the manifest names of all skills in the set, sorted.
func (ss *SkillSet) Names() []string {
	names := make([]string, 0, len(ss.Skills))
	for _, s := range ss.Skills {
		names = append(names, s.Manifest.Name)
	}
	sort.Strings(names)
	return names
}

// MetadataList returns the metadata projection of every skill in the
// set, preserving load order.
func (ss *SkillSet) MetadataList() []Metadata {
	metadata := make([]Metadata, 0, len(ss.Skills))
	for _, s := range ss.Skills {
		metadata = append(metadata, s.Metadata())
	}
	return metadata
}
