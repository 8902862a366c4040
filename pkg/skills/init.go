package skills

import (
	"context"

	"github.com/gobwas/glob"
	"github.com/spf13/viper"

	"github.com/PAMPAS-Lab/Pywen/pkg/logger"
)

// Config controls whether skills are active and which ones are exposed.
// Populated from viper: skills.enabled, skills.allowed, and the --no-skills
// flag bound to no_skills.
type Config struct {
	Enabled bool     `mapstructure:"enabled"`
	Allowed []string `mapstructure:"allowed"`
}

// ConfigFromViper reads the skills configuration, defaulting to enabled with
// no allowlist.
func ConfigFromViper() Config {
	cfg := Config{Enabled: true}
	if viper.IsSet("skills.enabled") {
		cfg.Enabled = viper.GetBool("skills.enabled")
	}
	cfg.Allowed = viper.GetStringSlice("skills.allowed")
	if viper.GetBool("no_skills") {
		cfg.Enabled = false
	}
	return cfg
}

// Initialize wires discovery, the per-cwd cache, and the embedded system
// skills according to configuration. It returns a nil manager when skills
// are disabled.
func Initialize(ctx context.Context) (*Manager, bool) {
	cfg := ConfigFromViper()
	if !cfg.Enabled {
		return nil, false
	}

	discovery, err := NewDiscovery()
	if err != nil {
		logger.G(ctx).WithError(err).Debug("Failed to create skill discovery")
		return nil, false
	}

	return NewManager(ctx, discovery, BuiltinSystemSkills()), true
}

// FilterByAllowlist keeps only the skills whose names match at least one
// allowlist pattern. Patterns use glob syntax ("docker-*", "pdf"); invalid
// patterns are skipped. An empty allowlist keeps everything. Catalog order
// is preserved.
func FilterByAllowlist(result *Result, allowed []string) *Result {
	if len(allowed) == 0 {
		return result
	}

	globs := make([]glob.Glob, 0, len(allowed))
	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}

	filtered := &Result{
		Errors:     result.Errors,
		Collisions: result.Collisions,
	}
	for _, skill := range result.Skills {
		for _, g := range globs {
			if g.Match(skill.Name) {
				filtered.Skills = append(filtered.Skills, skill)
				break
			}
		}
	}
	return filtered
}
