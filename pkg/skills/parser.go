package skills

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrMalformedManifest matches YAML syntax failures in the frontmatter.
var ErrMalformedManifest = errors.New("malformed manifest")

// malformedManifestError keeps the underlying yaml error in the unwrap
// chain while staying matchable against ErrMalformedManifest.
type malformedManifestError struct {
	cause error
}

func (e *malformedManifestError) Error() string {
	return "malformed manifest: " + e.cause.Error()
}

func (e *malformedManifestError) Unwrap() error {
	return e.cause
}

func (e *malformedManifestError) Is(target error) bool {
	return target == ErrMalformedManifest
}

// ParseManifest decodes a YAML frontmatter header into a Manifest.
// Unrecognized keys are ignored for forward compatibility. String
// values come through exactly as authored; yaml.v3 does not re-encode
// quotes, Unicode, or symbols.
func ParseManifest(header string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal([]byte(header), &m); err != nil {
		return nil, &malformedManifestError{cause: err}
	}
	return &m, nil
}

// ParseSkillContent splits SKILL.md content and decodes its manifest,
// returning the manifest and the verbatim Markdown body.
func ParseSkillContent(content string) (*Manifest, string, error) {
	header, body, err := SplitFrontmatter(content)
	if err != nil {
		return nil, "", err
	}

	manifest, err := ParseManifest(header)
	if err != nil {
		return nil, "", err
	}

	return manifest, body, nil
}

// parseDiagnostic converts a parse failure into a coded diagnostic
// scoped to the given skill path.
func parseDiagnostic(err error, path string) Diagnostic {
	code := CodeMalformedManifest
	switch {
	case errors.Is(err, ErrNoFrontmatter):
		code = CodeNoFrontmatter
	case errors.Is(err, ErrUnclosedFrontmatter):
		code = CodeUnclosedFrontmatter
	}

	return Diagnostic{
		Code:     code,
		Message:  err.Error(),
		Severity: SeverityError,
		Path:     path,
	}
}
