package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedenceAcrossScopes(t *testing.T) {
	found := []Skill{
		{Name: "docker", Description: "B", Scope: ScopeUser, Path: "/user/docker"},
		{Name: "docker", Description: "A", Scope: ScopeRepo, Path: "/repo/docker"},
		{Name: "docker", Description: "D", Scope: ScopeAdmin, Path: "/etc/docker"},
	}

	resolved, collisions := resolvePrecedence(found)
	require.Len(t, resolved, 1)
	assert.Equal(t, 2, collisions)
	assert.Equal(t, "A", resolved[0].Description)
	assert.Equal(t, ScopeRepo, resolved[0].Scope)
}

func TestResolvePrecedenceSameScopeFirstWins(t *testing.T) {
	found := []Skill{
		{Name: "pdf", Description: "first", Scope: ScopeRepo, Path: "/repo/a/pdf"},
		{Name: "pdf", Description: "second", Scope: ScopeRepo, Path: "/repo/b/pdf"},
	}

	resolved, collisions := resolvePrecedence(found)
	require.Len(t, resolved, 1)
	assert.Equal(t, 1, collisions)
	assert.Equal(t, "first", resolved[0].Description)
}

func TestResolvePrecedenceSortsByName(t *testing.T) {
	found := []Skill{
		{Name: "pptx", Scope: ScopeRepo},
		{Name: "docx", Scope: ScopeRepo},
		{Name: "pdf", Scope: ScopeRepo},
		{Name: "Zebra", Scope: ScopeRepo},
	}

	resolved, collisions := resolvePrecedence(found)
	assert.Zero(t, collisions)

	names := make([]string, 0, len(resolved))
	for _, skill := range resolved {
		names = append(names, skill.Name)
	}
	// byte-wise ordering puts uppercase first
	assert.Equal(t, []string{"Zebra", "docx", "pdf", "pptx"}, names)
}

func TestResolvePrecedenceLaterScopeDoesNotDisplaceEarlier(t *testing.T) {
	// user scope scanned before admin; admin must not win regardless of order
	found := []Skill{
		{Name: "deploy", Description: "admin", Scope: ScopeAdmin},
		{Name: "deploy", Description: "user", Scope: ScopeUser},
	}

	resolved, _ := resolvePrecedence(found)
	require.Len(t, resolved, 1)
	assert.Equal(t, "user", resolved[0].Description)
}

func TestResolvePrecedenceEmpty(t *testing.T) {
	resolved, collisions := resolvePrecedence(nil)
	assert.Empty(t, resolved)
	assert.Zero(t, collisions)
}
