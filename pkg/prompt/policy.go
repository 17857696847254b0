// Package prompt renders loaded skills into plain prompt text using
// progressive disclosure: a compact skill list for initial context, and
// full skill detail once a skill is activated. Which optional manifest
// fields are exposed is controlled by render options and a pluggable
// resource policy.
package prompt

// Field identifies an optional manifest datum considered for rendering.
// Name and description are always rendered and have no field constant.
type Field int

const (
	// FieldVersion is the manifest version string.
	FieldVersion Field = iota
	// FieldAuthor is the manifest author string.
	FieldAuthor
	// FieldCompatibility is the manifest compatibility string.
	FieldCompatibility
	// FieldTags is the manifest tag list.
	FieldTags
	// FieldAllowedTools is the manifest allowed-tools list.
	FieldAllowedTools
	// FieldResources is the skill's resource file listing.
	FieldResources
)

// ResourcePolicy decides whether an optional field may appear in
// rendered output. It models trust boundaries: a consumer may hide
// capability-granting metadata such as allowed-tools from a prompt
// while still exposing name and description.
type ResourcePolicy interface {
	Include(f Field) bool
}

// PolicyFunc adapts a predicate into a ResourcePolicy.
type PolicyFunc func(Field) bool

// Include implements ResourcePolicy.
func (fn PolicyFunc) Include(f Field) bool {
	return fn(f)
}

// IncludeAllResources returns the policy that exposes every optional field.
func IncludeAllResources() ResourcePolicy {
	return PolicyFunc(func(Field) bool { return true })
}

// ExcludeAllResources returns the policy that suppresses every optional
// field, leaving only name, description, and the instruction body.
func ExcludeAllResources() ResourcePolicy {
	return PolicyFunc(func(Field) bool { return false })
}
