package prompt

import (
	"fmt"
	"strings"

	"github.com/jingkaihe/skillkit/pkg/skills"
)

// Option configures rendering. The defaults include version, author,
// and tags with the include-all resource policy.
type Option func(*renderConfig)

type renderConfig struct {
	includeVersion bool
	includeAuthor  bool
	includeTags    bool
	policy         ResourcePolicy
}

func newRenderConfig(opts []Option) renderConfig {
	cfg := renderConfig{
		includeVersion: true,
		includeAuthor:  true,
		includeTags:    true,
		policy:         IncludeAllResources(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = IncludeAllResources()
	}
	return cfg
}

// WithVersion toggles the version line.
func WithVersion(include bool) Option {
	return func(cfg *renderConfig) {
		cfg.includeVersion = include
	}
}

// WithAuthor toggles the author line.
func WithAuthor(include bool) Option {
	return func(cfg *renderConfig) {
		cfg.includeAuthor = include
	}
}

// WithTags toggles the tag list.
func WithTags(include bool) Option {
	return func(cfg *renderConfig) {
		cfg.includeTags = include
	}
}

// WithPolicy sets the resource policy applied on top of the toggles.
func WithPolicy(policy ResourcePolicy) Option {
	return func(cfg *renderConfig) {
		cfg.policy = policy
	}
}

func (cfg renderConfig) showVersion(version string) bool {
	return cfg.includeVersion && cfg.policy.Include(FieldVersion) && version != ""
}

func (cfg renderConfig) showAuthor(author string) bool {
	return cfg.includeAuthor && cfg.policy.Include(FieldAuthor) && author != ""
}

func (cfg renderConfig) showTags(tags []string) bool {
	return cfg.includeTags && cfg.policy.Include(FieldTags) && len(tags) > 0
}

// RenderSkillList renders a compact one-line-per-skill enumeration.
// Name and description always appear; version, author, and tags appear
// only when both their toggle and the resource policy allow it. This is
// the cheap first phase of progressive disclosure, so the entries stay
// as small as the options permit.
func RenderSkillList(metadata []skills.Metadata, opts ...Option) string {
	cfg := newRenderConfig(opts)

	var lines []string
	for _, m := range metadata {
		var sb strings.Builder
		fmt.Fprintf(&sb, "- %s: %s", m.Name, m.Description)

		var extras []string
		if cfg.showVersion(m.Version) {
			extras = append(extras, "version "+m.Version)
		}
		if cfg.showAuthor(m.Author) {
			extras = append(extras, "by "+m.Author)
		}
		if len(extras) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(extras, ", "))
		}
		if cfg.showTags(m.Tags) {
			fmt.Fprintf(&sb, " [%s]", strings.Join(m.Tags, ", "))
		}

		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// RenderSkillDetails renders the full activated-skill payload: manifest
// fields subject to the toggles and policy, followed by the instruction
// body verbatim. Absent optional fields are simply omitted.
func RenderSkillDetails(skill *skills.Skill, opts ...Option) string {
	cfg := newRenderConfig(opts)
	m := skill.Manifest

	parts := []string{"# " + m.Name}
	if m.Description != "" {
		parts = append(parts, m.Description)
	}

	var fields []string
	if cfg.showVersion(m.Version) {
		fields = append(fields, "- **Version**: "+m.Version)
	}
	if cfg.showAuthor(m.Author) {
		fields = append(fields, "- **Author**: "+m.Author)
	}
	if cfg.policy.Include(FieldCompatibility) && m.Compatibility != "" {
		fields = append(fields, "- **Compatibility**: "+m.Compatibility)
	}
	if cfg.showTags(m.Tags) {
		fields = append(fields, "- **Tags**: "+strings.Join(m.Tags, ", "))
	}
	if cfg.policy.Include(FieldAllowedTools) && len(m.AllowedTools) > 0 {
		fields = append(fields, "- **Allowed tools**: "+strings.Join(m.AllowedTools, ", "))
	}
	if cfg.policy.Include(FieldResources) && len(skill.Resources) > 0 {
		fields = append(fields, "- **Resources**: "+strings.Join(skill.Resources, ", "))
	}
	if len(fields) > 0 {
		parts = append(parts, strings.Join(fields, "\n"))
	}

	if skill.Content != "" {
		parts = append(parts, skill.Content)
	}

	return strings.Join(parts, "\n\n")
}
