package skills

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	skillsDirName     = "skills"
	repoConfigDirName = ".pywen"
	adminSkillsRoot   = "/etc/pywen/skills"
	systemDirName     = ".system"
)

// UserSkillsRoot returns the per-user skill root under the pywen home.
func UserSkillsRoot(home string) Root {
	return Root{Path: filepath.Join(home, skillsDirName), Scope: ScopeUser}
}

// SystemSkillsRoot returns the vendored builtin skill root under the pywen home.
func SystemSkillsRoot(home string) Root {
	return Root{Path: filepath.Join(home, skillsDirName, systemDirName), Scope: ScopeSystem}
}

// AdminSkillsRoot returns the machine-wide skill root.
func AdminSkillsRoot() Root {
	return Root{Path: adminSkillsRoot, Scope: ScopeAdmin}
}

// RepoSkillsRoot locates the repository-local skill root for cwd. When cwd
// sits inside a git repository, each directory from cwd up to the git root is
// checked for an existing .pywen/skills; the first match wins. Outside a
// repository, or when no match exists, it falls back to <cwd>/.pywen/skills
// so the repo scope always has a representative (the scanner tolerates
// missing directories).
func RepoSkillsRoot(cwd string) Root {
	base := cwd
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		base = filepath.Dir(base)
	}
	if resolved, err := filepath.Abs(base); err == nil {
		base = resolved
	}

	fallback := Root{Path: filepath.Join(base, repoConfigDirName, skillsDirName), Scope: ScopeRepo}

	gitRoot, ok := findGitRoot(base)
	if !ok {
		return fallback
	}

	for dir := base; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, repoConfigDirName, skillsDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return Root{Path: candidate, Scope: ScopeRepo}
		}
		if dir == gitRoot || dir == filepath.Dir(dir) {
			break
		}
	}
	return fallback
}

// RootsForCwd returns the skill roots to scan for cwd, always in the order
// repo, user, system, admin. The order fixes scan order only; precedence is
// carried by each root's Scope so adding roots later cannot silently reorder
// collision resolution. The admin root is omitted on Windows.
func RootsForCwd(home, cwd string) []Root {
	roots := []Root{
		RepoSkillsRoot(cwd),
		UserSkillsRoot(home),
		SystemSkillsRoot(home),
	}
	if runtime.GOOS != "windows" {
		roots = append(roots, AdminSkillsRoot())
	}
	return roots
}

// findGitRoot walks from start toward the filesystem root looking for a .git
// marker (directory or file, to support worktrees).
func findGitRoot(start string) (string, bool) {
	for dir := start; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		if dir == filepath.Dir(dir) {
			return "", false
		}
	}
}
