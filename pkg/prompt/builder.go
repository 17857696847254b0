package prompt

import (
	"strings"

	"github.com/jingkaihe/skillkit/pkg/skills"
)

// Builder composes a system prompt from base free-text instructions and
// at most one skill-list source. Build concatenates the base
// instructions and the rendered skill list, separated by a blank line
// only when both are non-empty.
type Builder struct {
	instructions []string
	metadata     []skills.Metadata
}

// NewBuilder creates an empty prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithBaseInstructions appends a block of free-text instructions.
// Multiple blocks are joined with blank lines in the order added.
func (b *Builder) WithBaseInstructions(text string) *Builder {
	if text != "" {
		b.instructions = append(b.instructions, text)
	}
	return b
}

// WithSkills sets the skill-list source to an explicit metadata
// sequence, replacing any previously set source.
func (b *Builder) WithSkills(metadata []skills.Metadata) *Builder {
	b.metadata = metadata
	return b
}

// WithSkillSet sets the skill-list source to the skills of a loaded
// set, replacing any previously set source.
func (b *Builder) WithSkillSet(set *skills.SkillSet) *Builder {
	b.metadata = set.MetadataList()
	return b
}

// Build produces the composed prompt text. With no instructions and no
// skills the result is empty.
func (b *Builder) Build(opts ...Option) string {
	var parts []string

	if len(b.instructions) > 0 {
		parts = append(parts, strings.Join(b.instructions, "\n\n"))
	}

	if list := RenderSkillList(b.metadata, opts...); list != "" {
		parts = append(parts, list)
	}

	return strings.Join(parts, "\n\n")
}
