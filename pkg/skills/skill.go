// Package skills implements discovery of agent skills: self-contained
// directories holding a SKILL.md file whose YAML frontmatter describes a
// capability the model can invoke. Skills are collected from four scoped
// roots (repo, user, system, admin), validated, deduplicated by scope
// precedence, and cached per working directory for the process lifetime.
package skills

import (
	"fmt"
	"path/filepath"
)

const (
	skillFileName = "SKILL.md"

	maxNameLen             = 64
	maxDescriptionLen      = 1024
	maxShortDescriptionLen = 1024

	// maxSkillFileSize bounds how much of a SKILL.md is read into memory.
	maxSkillFileSize = 1 << 20
)

// Scope identifies where a skill root lives. Lower values take precedence
// when the same skill name appears under multiple roots.
type Scope int

const (
	// ScopeRepo is the repository-local root, highest precedence
	ScopeRepo Scope = iota
	// ScopeUser is the per-user root under the pywen home directory
	ScopeUser
	// ScopeSystem is the vendored builtin root under the user root
	ScopeSystem
	// ScopeAdmin is the machine-wide root, POSIX only, lowest precedence
	ScopeAdmin
)

func (s Scope) String() string {
	switch s {
	case ScopeRepo:
		return "repo"
	case ScopeUser:
		return "user"
	case ScopeSystem:
		return "system"
	case ScopeAdmin:
		return "admin"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Root pairs a skill search root with the scope its skills belong to.
type Root struct {
	Path  string
	Scope Scope
}

// Skill is one discovered, validated skill.
type Skill struct {
	Name             string // unique within a resolved catalog
	Description      string // used for prompt injection and trigger matching
	ShortDescription string // optional compact description from metadata
	Scope            Scope  // scope the skill was discovered under
	Path             string // absolute path to the directory containing SKILL.md
	Body             string // markdown content following the frontmatter
}

// FilePath returns the path to the skill's SKILL.md file.
func (s *Skill) FilePath() string {
	return filepath.Join(s.Path, skillFileName)
}

// ErrorKind classifies a discovery failure.
type ErrorKind string

const (
	// ErrMissingFrontmatter means the file lacks a "---" delimited metadata block
	ErrMissingFrontmatter ErrorKind = "missing_frontmatter"
	// ErrMissingField means a required metadata field is absent or empty
	ErrMissingField ErrorKind = "missing_field"
	// ErrExceedsMaxLength means a metadata field is longer than its limit
	ErrExceedsMaxLength ErrorKind = "exceeds_max_length"
	// ErrMalformedMetadata means the frontmatter block failed to decode
	ErrMalformedMetadata ErrorKind = "malformed_metadata"
	// ErrIOFailure means the file could not be read
	ErrIOFailure ErrorKind = "io_failure"
)

// DiscoveryError records one failure to produce a skill from a SKILL.md file.
// Errors are per-file and never prevent discovery of sibling skills.
type DiscoveryError struct {
	Path   string
	Kind   ErrorKind
	Detail string
}

func (e DiscoveryError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Detail, e.Kind)
}

// Result is the outcome of one discovery pass: the resolved, name-sorted
// catalog plus the per-file errors encountered along the way. Results are
// immutable once returned and safe for concurrent reads.
type Result struct {
	Skills []Skill
	Errors []DiscoveryError

	// Collisions counts skills dropped during precedence resolution.
	Collisions int
}
