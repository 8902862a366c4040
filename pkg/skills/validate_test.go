package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSkillFile(content string) skillFile {
	return skillFile{dir: "/skills/example", content: []byte(content)}
}

func TestParseSkillFileValid(t *testing.T) {
	skill, discErr := parseSkillFile(mkSkillFile(`---
name: docker
description: Build and run Docker containers
metadata:
  short-description: Docker helper
---

# Docker

Instructions here.
`), ScopeRepo)
	require.Nil(t, discErr)
	assert.Equal(t, "docker", skill.Name)
	assert.Equal(t, "Build and run Docker containers", skill.Description)
	assert.Equal(t, "Docker helper", skill.ShortDescription)
	assert.Equal(t, ScopeRepo, skill.Scope)
	assert.Equal(t, "/skills/example", skill.Path)
	assert.Equal(t, "# Docker\n\nInstructions here.\n", skill.Body)
}

func TestParseSkillFileErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantKind   ErrorKind
		wantDetail string
	}{
		{
			name:     "missing frontmatter",
			content:  "# No metadata at all\n",
			wantKind: ErrMissingFrontmatter,
		},
		{
			name:     "unterminated frontmatter",
			content:  "---\nname: x\ndescription: y\n",
			wantKind: ErrMissingFrontmatter,
		},
		{
			name:     "malformed yaml",
			content:  "---\nname: [broken\n---\nbody",
			wantKind: ErrMalformedMetadata,
		},
		{
			name:       "missing name",
			content:    "---\ndescription: has one\n---\nbody",
			wantKind:   ErrMissingField,
			wantDetail: "missing field `name`",
		},
		{
			name:       "missing description",
			content:    "---\nname: has-one\n---\nbody",
			wantKind:   ErrMissingField,
			wantDetail: "missing field `description`",
		},
		{
			name:       "whitespace-only name",
			content:    "---\nname: \"   \"\ndescription: y\n---\nbody",
			wantKind:   ErrMissingField,
			wantDetail: "missing field `name`",
		},
		{
			name: "name missing reported before length",
			content: "---\nname: \"\"\ndescription: " +
				strings.Repeat("d", maxDescriptionLen+1) + "\n---\nbody",
			wantKind:   ErrMissingField,
			wantDetail: "missing field `name`",
		},
		{
			name: "description too long",
			content: "---\nname: x\ndescription: " +
				strings.Repeat("d", maxDescriptionLen+1) + "\n---\nbody",
			wantKind:   ErrExceedsMaxLength,
			wantDetail: "invalid description: exceeds maximum length of 1024 characters",
		},
		{
			name: "short description too long",
			content: "---\nname: x\ndescription: y\nmetadata:\n  short-description: " +
				strings.Repeat("s", maxShortDescriptionLen+1) + "\n---\nbody",
			wantKind:   ErrExceedsMaxLength,
			wantDetail: "invalid metadata.short-description: exceeds maximum length of 1024 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill, discErr := parseSkillFile(mkSkillFile(tt.content), ScopeUser)
			assert.Nil(t, skill)
			require.NotNil(t, discErr)
			assert.Equal(t, tt.wantKind, discErr.Kind)
			assert.Equal(t, "/skills/example/SKILL.md", discErr.Path)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, discErr.Detail)
			}
		})
	}
}

func TestParseSkillFileNameLengthBoundary(t *testing.T) {
	t.Run("64 characters succeeds", func(t *testing.T) {
		name := strings.Repeat("a", maxNameLen)
		skill, discErr := parseSkillFile(mkSkillFile("---\nname: "+name+"\ndescription: y\n---\nbody"), ScopeRepo)
		require.Nil(t, discErr)
		assert.Equal(t, name, skill.Name)
	})

	t.Run("65 characters fails", func(t *testing.T) {
		name := strings.Repeat("a", maxNameLen+1)
		skill, discErr := parseSkillFile(mkSkillFile("---\nname: "+name+"\ndescription: y\n---\nbody"), ScopeRepo)
		assert.Nil(t, skill)
		require.NotNil(t, discErr)
		assert.Equal(t, ErrExceedsMaxLength, discErr.Kind)
		assert.Equal(t, "invalid name: exceeds maximum length of 64 characters", discErr.Detail)
	})
}

func TestParseSkillFileSanitizesWhitespace(t *testing.T) {
	skill, discErr := parseSkillFile(mkSkillFile(`---
name: multi-line
description: >
  spans
  several
  lines
---
body`), ScopeUser)
	require.Nil(t, discErr)
	assert.Equal(t, "spans several lines", skill.Description)
}
