package skills

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, SkillFileName), []byte(content), 0o644))
	return skillDir
}

func TestLoadSkillSet(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	calcDir := writeSkill(t, tmpDir, "calc", `---
name: calc
description: Performs arithmetic
---
# Calc

Use the calculator.
`)
	writeSkill(t, tmpDir, "writer", `---
name: writer
description: Drafts documents
tags:
  - docs
---
Writing instructions.
`)

	set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, set.Skills, 2)
	assert.Empty(t, set.Diagnostics)
	assert.True(t, set.IsValid())
	assert.NoError(t, set.Err())

	calc, ok := set.Find("calc")
	require.True(t, ok)
	assert.Equal(t, calcDir, calc.Directory)
	assert.Equal(t, "# Calc\n\nUse the calculator.\n", calc.Content)

	writer, ok := set.Find("writer")
	require.True(t, ok)
	assert.Equal(t, []string{"docs"}, writer.Manifest.Tags)

	assert.Equal(t, []string{"calc", "writer"}, set.Names())
}

func TestLoadSkillSet_BrokenSkillDoesNotAbortScan(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "calc", `---
name: calc
description: desc
---
Body.
`)
	brokenDir := writeSkill(t, tmpDir, "broken", "# No frontmatter at all\n")

	set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)

	require.Len(t, set.Skills, 1)
	assert.Equal(t, "calc", set.Skills[0].Manifest.Name)

	require.Len(t, set.Diagnostics, 1)
	assert.Equal(t, CodeNoFrontmatter, set.Diagnostics[0].Code)
	assert.Equal(t, brokenDir, set.Diagnostics[0].Path)
	assert.False(t, set.IsValid())
	assert.Error(t, set.Err())
}

func TestLoadSkillSet_ParseErrorCodes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"unclosed frontmatter", "---\nname: x\nnever closed\n", CodeUnclosedFrontmatter},
		{"malformed yaml", "---\nname: [unclosed\n---\nbody\n", CodeMalformedManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeSkill(t, tmpDir, "bad", tt.content)

			set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
			require.NoError(t, err)
			assert.Empty(t, set.Skills)
			require.Len(t, set.Diagnostics, 1)
			assert.Equal(t, tt.code, set.Diagnostics[0].Code)
		})
	}
}

func TestLoadSkillSet_UnreadableSkillFile(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "calc", "---\nname: calc\ndescription: d\n---\nBody.\n")

	// SKILL.md as a directory: it passes discovery but cannot be read,
	// which must surface as a read-failure diagnostic for that skill
	// without aborting the scan.
	badDir := filepath.Join(tmpDir, "bad")
	require.NoError(t, os.MkdirAll(filepath.Join(badDir, SkillFileName), 0o755))

	set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)

	require.Len(t, set.Skills, 1)
	assert.Equal(t, "calc", set.Skills[0].Manifest.Name)

	require.Len(t, set.Diagnostics, 1)
	assert.Equal(t, CodeReadFailure, set.Diagnostics[0].Code)
	assert.Equal(t, SeverityError, set.Diagnostics[0].Severity)
	assert.Equal(t, badDir, set.Diagnostics[0].Path)
	assert.False(t, set.IsValid())
}

func TestLoadMetadata_UnreadableSkillFile(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "calc", "---\nname: calc\ndescription: d\n---\nBody.\n")
	badDir := filepath.Join(tmpDir, "bad")
	require.NoError(t, os.MkdirAll(filepath.Join(badDir, SkillFileName), 0o755))

	metadata, diagnostics, err := NewLoader().LoadMetadata(ctx, tmpDir)
	require.NoError(t, err)

	require.Len(t, metadata, 1)
	assert.Equal(t, "calc", metadata[0].Name)

	require.Len(t, diagnostics, 1)
	assert.Equal(t, CodeReadFailure, diagnostics[0].Code)
	assert.Equal(t, badDir, diagnostics[0].Path)
}

func TestLoadSkillSet_SkipsNonSkillEntries(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "calc", "---\nname: calc\ndescription: d\n---\nBody.\n")

	// A directory without SKILL.md and a loose file are not errors.
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "not-a-skill"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("readme"), 0o644))

	set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)
	assert.Len(t, set.Skills, 1)
	assert.Empty(t, set.Diagnostics)
}

func TestLoadSkillSet_Resources(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	skillDir := writeSkill(t, tmpDir, "calc", "---\nname: calc\ndescription: d\n---\nBody.\n")
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "scripts", "run.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "references", "guide.md"), []byte("guide"), 0o644))

	set, err := NewLoader().LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, set.Skills, 1)
	assert.Equal(t, []string{"scripts/run.sh", "references/guide.md"}, set.Skills[0].Resources)
}

func TestLoadSkillSet_EagerValidation(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "Bad--Dir", "---\nname: Bad--Name\ndescription: d\n---\nBody.\n")

	set, err := NewLoader(WithEagerValidation()).LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)

	// The skill still loads; validation only marks it invalid.
	require.Len(t, set.Skills, 1)
	assert.Contains(t, codes(set.Diagnostics), CodeNameInvalid)
	assert.Contains(t, codes(set.Diagnostics), CodeDirNameMismatch)
	assert.False(t, set.IsValid())
}

func TestLoadSkillSet_EagerValidation_WarningsOnlyStayValid(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "mismatched-directory", "---\nname: other-name\ndescription: d\n---\nBody.\n")

	set, err := NewLoader(WithEagerValidation()).LoadSkillSet(ctx, tmpDir)
	require.NoError(t, err)

	require.Equal(t, []string{CodeDirNameMismatch}, codes(set.Diagnostics))
	assert.True(t, set.IsValid())
	assert.NoError(t, set.Err())
}

func TestLoadSkillSet_UnreadableRoot(t *testing.T) {
	ctx := context.Background()

	set, err := NewLoader().LoadSkillSet(ctx, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.Nil(t, set)
}

func TestLoadMetadata(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	largeBody := strings.Repeat("body line that should never surface in metadata\n", 1000)
	writeSkill(t, tmpDir, "calc", "---\nname: calc\ndescription: Performs arithmetic\nversion: 2.0.1\n---\n"+largeBody)
	brokenDir := writeSkill(t, tmpDir, "broken", "no frontmatter\n")

	metadata, diagnostics, err := NewLoader().LoadMetadata(ctx, tmpDir)
	require.NoError(t, err)

	require.Len(t, metadata, 1)
	assert.Equal(t, "calc", metadata[0].Name)
	assert.Equal(t, "Performs arithmetic", metadata[0].Description)
	assert.Equal(t, "2.0.1", metadata[0].Version)
	assert.Equal(t, filepath.Join(tmpDir, "calc"), metadata[0].Path)

	require.Len(t, diagnostics, 1)
	assert.Equal(t, CodeNoFrontmatter, diagnostics[0].Code)
	assert.Equal(t, brokenDir, diagnostics[0].Path)
}

func TestLoadMetadata_StableOrder(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	for _, name := range []string{"gamma", "alpha", "beta"} {
		writeSkill(t, tmpDir, name, "---\nname: "+name+"\ndescription: d\n---\nBody.\n")
	}

	loader := NewLoader()
	first, _, err := loader.LoadMetadata(ctx, tmpDir)
	require.NoError(t, err)
	second, _, err := loader.LoadMetadata(ctx, tmpDir)
	require.NoError(t, err)

	names := make([]string, 0, len(first))
	for _, m := range first {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
	assert.Equal(t, first, second)
}

func TestLoadMetadata_UnreadableRoot(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewLoader().LoadMetadata(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadSkillSet_Symlinks(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "skills")
	require.NoError(t, os.MkdirAll(root, 0o755))

	actual := writeSkill(t, tmpDir, "elsewhere/linked-skill", "---\nname: linked-skill\ndescription: d\n---\nBody.\n")
	require.NoError(t, os.Symlink(actual, filepath.Join(root, "linked-skill")))

	// Broken symlinks and symlinks to files are ignored.
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "nope"), filepath.Join(root, "dangling")))
	target := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(target, []byte("file"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "file-link")))

	set, err := NewLoader().LoadSkillSet(ctx, root)
	require.NoError(t, err)
	require.Len(t, set.Skills, 1)
	assert.Equal(t, "linked-skill", set.Skills[0].Manifest.Name)
	assert.Empty(t, set.Diagnostics)
}

func TestMetadataProjection(t *testing.T) {
	skill := &Skill{
		Manifest:  Manifest{Name: "calc", Description: "d", Version: "1.0.0"},
		Content:   "full body",
		Directory: "/skills/calc",
	}

	meta := skill.Metadata()
	assert.Equal(t, "calc", meta.Name)
	assert.Equal(t, "/skills/calc", meta.Path)
}
