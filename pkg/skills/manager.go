package skills

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/PAMPAS-Lab/Pywen/pkg/logger"
	"github.com/PAMPAS-Lab/Pywen/pkg/telemetry"
)

// Manager memoizes discovery results per working directory for the life of
// the process. Entries are computed at most once per key even when sessions
// race, never expire, and are replaced only by an explicit Reload.
type Manager struct {
	discovery *Discovery

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once   sync.Once
	result *Result
}

// NewManager creates a skills manager around the given discovery. When
// embedded is non-nil its contents are installed as the system scope before
// any discovery runs; installation failures are logged and otherwise ignored
// so a broken vendored payload cannot block user skills.
func NewManager(ctx context.Context, discovery *Discovery, embedded fs.FS) *Manager {
	if embedded != nil {
		if err := InstallSystemSkills(discovery.home, embedded); err != nil {
			logger.G(ctx).WithError(err).Warn("Failed to install system skills")
		}
	}

	return &Manager{
		discovery: discovery,
		entries:   make(map[string]*cacheEntry),
	}
}

// SkillsForCwd returns the discovery result for cwd, computing it on first
// use and serving the cached result afterwards. Skills added on disk after
// the first call stay invisible until Reload.
func (m *Manager) SkillsForCwd(ctx context.Context, cwd string) *Result {
	key := m.cacheKey(cwd)

	m.mu.Lock()
	entry, ok := m.entries[key]
	if !ok {
		entry = &cacheEntry{}
		m.entries[key] = entry
	}
	m.mu.Unlock()

	entry.once.Do(func() {
		entry.result = m.load(ctx, cwd)
	})
	return entry.result
}

// Reload discards any cached result for cwd and runs a fresh discovery pass,
// replacing the cache entry atomically.
func (m *Manager) Reload(ctx context.Context, cwd string) *Result {
	key := m.cacheKey(cwd)
	entry := &cacheEntry{}
	entry.once.Do(func() {
		entry.result = m.load(ctx, cwd)
	})

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()

	return entry.result
}

func (m *Manager) load(ctx context.Context, cwd string) *Result {
	var result *Result
	telemetry.WithSpanFunc(ctx, "skills.discover", func(ctx context.Context) {
		result = m.discovery.LoadSkills(cwd)
		logger.G(ctx).WithFields(map[string]interface{}{
			"cwd":        cwd,
			"skills":     len(result.Skills),
			"errors":     len(result.Errors),
			"collisions": result.Collisions,
		}).Debug("Skill discovery completed")
	}, attribute.String("cwd", cwd))
	return result
}

func (m *Manager) cacheKey(cwd string) string {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return filepath.Clean(cwd)
	}
	return filepath.Clean(abs)
}
