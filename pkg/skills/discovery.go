package skills

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Discovery runs the skill discovery pipeline: enumerate scope roots, scan
// them for SKILL.md files, parse and validate each hit, and resolve name
// collisions by scope precedence.
type Discovery struct {
	home  string // pywen home directory, e.g. ~/.pywen
	roots []Root // optional fixed roots, bypassing per-cwd resolution
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithHome sets the pywen home directory used to derive the user and system
// roots.
func WithHome(home string) Option {
	return func(d *Discovery) error {
		d.home = home
		return nil
	}
}

// WithRoots fixes the set of roots to scan, bypassing scope resolution
// entirely. Intended for tests and embedding callers that manage their own
// layout.
func WithRoots(roots ...Root) Option {
	return func(d *Discovery) error {
		d.roots = roots
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance. Without options the
// pywen home defaults to ~/.pywen.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.home == "" && d.roots == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		d.home = filepath.Join(homeDir, repoConfigDirName)
	}

	return d, nil
}

// Roots returns the roots that would be scanned for cwd, in scan order.
func (d *Discovery) Roots(cwd string) []Root {
	if d.roots != nil {
		return d.roots
	}
	return RootsForCwd(d.home, cwd)
}

// LoadSkills runs one full discovery pass for cwd. It never fails as a
// whole: unreadable roots and broken skill files degrade to entries in
// Result.Errors while the remaining skills are still returned, sorted by
// name. Parse errors under the system scope are suppressed since vendored
// builtin skills are not something the user can fix in place.
func (d *Discovery) LoadSkills(cwd string) *Result {
	return loadFromRoots(d.Roots(cwd))
}

func loadFromRoots(roots []Root) *Result {
	result := &Result{}
	var found []Skill

	for _, root := range roots {
		files, ioErrs := scanRoot(root.Path)
		if root.Scope != ScopeSystem {
			result.Errors = append(result.Errors, ioErrs...)
		}
		for _, file := range files {
			skill, parseErr := parseSkillFile(file, root.Scope)
			if parseErr != nil {
				if root.Scope != ScopeSystem {
					result.Errors = append(result.Errors, *parseErr)
				}
				continue
			}
			found = append(found, *skill)
		}
	}

	result.Skills, result.Collisions = resolvePrecedence(found)
	return result
}
