package skills

import (
	"fmt"
	"path/filepath"
	"regexp"
)

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
)

// namePattern matches kebab-case names: lowercase letters and digits
// separated by single hyphens, no leading or trailing hyphen.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateManifest applies the manifest field rules and returns the
// resulting diagnostics. Validation is pure: the same manifest always
// yields the same result. The name rules are mutually exclusive so a
// manifest reports at most one name diagnostic.
func ValidateManifest(m *Manifest) ValidationResult {
	var result ValidationResult

	switch {
	case m.Name == "":
		result.Errors = append(result.Errors, Diagnostic{
			Code:     CodeNameMissing,
			Message:  "name is required and must not be empty",
			Severity: SeverityError,
		})
	case len(m.Name) > maxNameLength:
		result.Errors = append(result.Errors, Diagnostic{
			Code:     CodeNameTooLong,
			Message:  fmt.Sprintf("name %q exceeds maximum length of %d characters", m.Name, maxNameLength),
			Severity: SeverityError,
		})
	case !namePattern.MatchString(m.Name):
		result.Errors = append(result.Errors, Diagnostic{
			Code:     CodeNameInvalid,
			Message:  fmt.Sprintf("name %q must be lowercase letters, digits, and single hyphens, with no leading or trailing hyphen", m.Name),
			Severity: SeverityError,
		})
	}

	switch {
	case m.Description == "":
		result.Errors = append(result.Errors, Diagnostic{
			Code:     CodeDescription,
			Message:  "description is required and must not be empty",
			Severity: SeverityError,
		})
	case len(m.Description) > maxDescriptionLength:
		result.Errors = append(result.Errors, Diagnostic{
			Code:     CodeDescription,
			Message:  fmt.Sprintf("description exceeds maximum length of %d characters", maxDescriptionLength),
			Severity: SeverityError,
		})
	}

	return result
}

// ValidateMetadata validates a metadata record: the manifest rules plus
// the directory-name check. A directory whose base name differs from the
// manifest name is a warning, not an error, since such a skill still
// works when activated by path.
func ValidateMetadata(meta Metadata) ValidationResult {
	result := ValidateManifest(&meta.Manifest)
	applyPath(&result, meta.Path)

	if meta.Path != "" && meta.Name != "" && filepath.Base(meta.Path) != meta.Name {
		result.Warnings = append(result.Warnings, Diagnostic{
			Code:     CodeDirNameMismatch,
			Message:  fmt.Sprintf("directory name %q does not match skill name %q", filepath.Base(meta.Path), meta.Name),
			Severity: SeverityWarning,
			Path:     meta.Path,
		})
	}

	return result
}

// Validate validates a fully loaded skill. It applies the same rules as
// ValidateMetadata, so the two agree on every field both expose.
func Validate(s *Skill) ValidationResult {
	return ValidateMetadata(s.Metadata())
}

// applyPath scopes path-less diagnostics to the skill directory.
func applyPath(result *ValidationResult, path string) {
	for i := range result.Errors {
		if result.Errors[i].Path == "" {
			result.Errors[i].Path = path
		}
	}
	for i := range result.Warnings {
		if result.Warnings[i].Path == "" {
			result.Warnings[i].Path = path
		}
	}
}
