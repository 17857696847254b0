package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/pkg/errors"
)

// resourceDirs are the optional skill sub-directories whose files are
// enumerated (never read) during a full load.
var resourceDirs = []string{"scripts", "references", "assets"}

// Loader discovers skill packages under a root directory. Each
// immediate sub-directory containing a SKILL.md file is one skill;
// other entries are silently skipped. Per-skill failures are collected
// as diagnostics so one broken skill never prevents its siblings from
// loading. Only an unreadable root is fatal.
type Loader struct {
	eagerValidation bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEagerValidation makes LoadSkillSet run validation on every loaded
// skill and fold the resulting diagnostics into the skill set. Without
// it, callers validate separately via Validate or ValidateMetadata.
func WithEagerValidation() LoaderOption {
	return func(l *Loader) {
		l.eagerValidation = true
	}
}

// NewLoader creates a skill loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadMetadata enumerates the skills under root without loading their
// instruction bodies. It returns one Metadata per successfully parsed
// manifest plus the diagnostics of the skills that failed to parse, in
// stable directory order. An unreadable root returns an error.
func (l *Loader) LoadMetadata(ctx context.Context, root string) ([]Metadata, []Diagnostic, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read skills directory %q", root)
	}

	var metadata []Metadata
	var diagnostics []Diagnostic

	for _, dir := range skillDirectories(root, entries) {
		manifest, _, diag := l.parseSkillFile(ctx, dir)
		if diag != nil {
			diagnostics = append(diagnostics, *diag)
			continue
		}
		metadata = append(metadata, Metadata{Manifest: *manifest, Path: dir})
	}

	return metadata, diagnostics, nil
}

// LoadSkillSet loads the full skill packages under root, including
// instruction bodies and resource listings. Parse and per-skill I/O
// failures become diagnostics on the returned set; with eager
// validation enabled, validation diagnostics are folded in as well.
func (l *Loader) LoadSkillSet(ctx context.Context, root string) (*SkillSet, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skills directory %q", root)
	}

	set := &SkillSet{}

	for _, dir := range skillDirectories(root, entries) {
		manifest, body, diag := l.parseSkillFile(ctx, dir)
		if diag != nil {
			set.Diagnostics = append(set.Diagnostics, *diag)
			continue
		}

		skill := &Skill{
			Manifest:  *manifest,
			Content:   body,
			Directory: dir,
			Resources: listResources(dir),
		}
		set.Skills = append(set.Skills, skill)

		if l.eagerValidation {
			set.Diagnostics = append(set.Diagnostics, Validate(skill).Diagnostics()...)
		}
	}

	return set, nil
}

// skillDirectories filters root entries down to directories that hold a
// SKILL.md. Symlinked skill directories are followed; symlinks to files
// and broken links are skipped. os.ReadDir returns entries sorted by
// name, which keeps repeated loads deterministic.
func skillDirectories(root string, entries []os.DirEntry) []string {
	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}

		if _, err := os.Stat(filepath.Join(path, SkillFileName)); err != nil {
			// Not a skill package; the root may hold unrelated entries.
			continue
		}

		dirs = append(dirs, path)
	}
	return dirs
}

// parseSkillFile reads and parses a skill's SKILL.md. On failure it
// returns a diagnostic scoped to the skill directory.
func (l *Loader) parseSkillFile(ctx context.Context, dir string) (*Manifest, string, *Diagnostic) {
	path := filepath.Join(dir, SkillFileName)

	content, err := os.ReadFile(path)
	if err != nil {
		logger.G(ctx).WithField("path", path).WithError(err).Debug("Failed to read skill file")
		diag := Diagnostic{
			Code:     CodeReadFailure,
			Message:  errors.Wrap(err, "failed to read skill file").Error(),
			Severity: SeverityError,
			Path:     dir,
		}
		return nil, "", &diag
	}

	manifest, body, err := ParseSkillContent(string(content))
	if err != nil {
		logger.G(ctx).WithField("path", path).WithError(err).Debug("Failed to parse skill file")
		diag := parseDiagnostic(err, dir)
		return nil, "", &diag
	}

	return manifest, body, nil
}

// listResources collects the relative paths of files under the skill's
// resource directories. The files themselves are inert and never read.
func listResources(dir string) []string {
	var resources []string
	for _, sub := range resourceDirs {
		base := filepath.Join(dir, sub)
		_ = filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			resources = append(resources, filepath.ToSlash(rel))
			return nil
		})
	}
	return resources
}
