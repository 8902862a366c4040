package skills

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, roots ...Root) *Manager {
	t.Helper()
	discovery, err := NewDiscovery(WithRoots(roots...))
	require.NoError(t, err)
	return NewManager(context.Background(), discovery, nil)
}

func TestManagerCachesPerCwd(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	cwd := t.TempDir()
	writeSkill(t, root, "existing", "existing", "Present from the start")

	manager := newTestManager(t, Root{Path: root, Scope: ScopeRepo})

	first := manager.SkillsForCwd(ctx, cwd)
	require.Len(t, first.Skills, 1)

	// a skill added after the first scan stays invisible until reload
	writeSkill(t, root, "late", "late", "Added after the first scan")

	second := manager.SkillsForCwd(ctx, cwd)
	assert.Same(t, first, second)
	assert.Len(t, second.Skills, 1)

	reloaded := manager.Reload(ctx, cwd)
	assert.Len(t, reloaded.Skills, 2)

	// the reloaded result replaces the cache entry
	third := manager.SkillsForCwd(ctx, cwd)
	assert.Same(t, reloaded, third)
}

func TestManagerNormalizesCacheKey(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	cwd := t.TempDir()
	writeSkill(t, root, "one", "one", "A skill")

	manager := newTestManager(t, Root{Path: root, Scope: ScopeRepo})

	first := manager.SkillsForCwd(ctx, cwd)
	second := manager.SkillsForCwd(ctx, cwd+"/.")
	assert.Same(t, first, second)
}

func TestManagerConcurrentFirstComputeOnce(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	cwd := t.TempDir()
	writeSkill(t, root, "shared", "shared", "Raced by many goroutines")

	manager := newTestManager(t, Root{Path: root, Scope: ScopeRepo})

	const goroutines = 16
	results := make([]*Result, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = manager.SkillsForCwd(ctx, cwd)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestManagerDistinctCwdsGetDistinctEntries(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeSkill(t, root, "shared", "shared", "Visible everywhere")

	manager := newTestManager(t, Root{Path: root, Scope: ScopeRepo})

	a := manager.SkillsForCwd(ctx, t.TempDir())
	b := manager.SkillsForCwd(ctx, t.TempDir())
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Skills, b.Skills)
}
