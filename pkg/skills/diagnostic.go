package skills

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityError marks a condition that makes a skill or skill set invalid.
	SeverityError Severity = iota
	// SeverityWarning marks a condition worth reporting that does not
	// affect validity.
	SeverityWarning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic codes. The PARSE family covers structural failures that
// prevent a manifest from being decoded at all; the VAL family covers
// rule violations on a successfully decoded manifest.
const (
	CodeNoFrontmatter       = "PARSE001"
	CodeUnclosedFrontmatter = "PARSE002"
	CodeMalformedManifest   = "PARSE003"
	CodeReadFailure         = "PARSE004"

	CodeNameMissing     = "VAL001"
	CodeNameTooLong     = "VAL002"
	CodeNameInvalid     = "VAL003"
	CodeDescription     = "VAL005"
	CodeDirNameMismatch = "VAL010"
)

// Diagnostic is a coded, severity-tagged report of a parse or
// validation condition, optionally scoped to a skill path.
type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity
	Path     string // skill directory or file the diagnostic refers to, may be empty
}

// String formats the diagnostic for human consumption.
func (d Diagnostic) String() string {
	if d.Path != "" {
		return fmt.Sprintf("%s [%s] %s: %s", d.Severity, d.Code, d.Path, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}

// ValidationResult groups the diagnostics produced by validating a
// single manifest.
type ValidationResult struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// IsValid reports whether validation produced no errors.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Diagnostics returns errors followed by warnings as a single sequence.
func (r ValidationResult) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}
