package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSkillsSection(t *testing.T) {
	entries := []Entry{
		{Name: "docx", Description: "Work with Word documents"},
		{Name: "pdf", Description: "Extract text from PDFs", ShortDescription: "PDF helper"},
	}

	section, err := RenderSkillsSection(entries)
	require.NoError(t, err)

	assert.Contains(t, section, "## Available Skills")
	assert.Contains(t, section, "- **docx**: Work with Word documents")
	// short description is preferred over the full one
	assert.Contains(t, section, "- **pdf**: PDF helper")
	assert.NotContains(t, section, "Extract text from PDFs")
}

func TestRenderSkillsSectionEmpty(t *testing.T) {
	section, err := RenderSkillsSection(nil)
	require.NoError(t, err)
	assert.Empty(t, section)
}
