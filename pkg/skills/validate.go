package skills

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// parseSkillFile turns one raw SKILL.md into a validated Skill. On failure it
// returns a DiscoveryError whose kind distinguishes a missing frontmatter
// block, undecodable metadata, a missing required field, and a field over its
// length limit. The checks run in a fixed order so a file with several
// problems always reports the same one.
func parseSkillFile(file skillFile, scope Scope) (*Skill, *DiscoveryError) {
	path := filepath.Join(file.dir, skillFileName)

	block, body, ok := splitFrontmatter(string(file.content))
	if !ok {
		return nil, &DiscoveryError{
			Path:   path,
			Kind:   ErrMissingFrontmatter,
			Detail: "missing YAML frontmatter delimited by ---",
		}
	}

	fm, err := decodeFrontmatter(block)
	if err != nil {
		return nil, &DiscoveryError{Path: path, Kind: ErrMalformedMetadata, Detail: err.Error()}
	}

	name := sanitizeSingleLine(fm.Name)
	description := sanitizeSingleLine(fm.Description)
	shortDescription := sanitizeSingleLine(fm.Metadata.ShortDescription)

	if name == "" {
		return nil, missingField(path, "name")
	}
	if description == "" {
		return nil, missingField(path, "description")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, exceedsMaxLength(path, "name", maxNameLen)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, exceedsMaxLength(path, "description", maxDescriptionLen)
	}
	if utf8.RuneCountInString(shortDescription) > maxShortDescriptionLen {
		return nil, exceedsMaxLength(path, "metadata.short-description", maxShortDescriptionLen)
	}

	return &Skill{
		Name:             name,
		Description:      description,
		ShortDescription: shortDescription,
		Scope:            scope,
		Path:             file.dir,
		Body:             body,
	}, nil
}

func missingField(path, field string) *DiscoveryError {
	return &DiscoveryError{
		Path:   path,
		Kind:   ErrMissingField,
		Detail: fmt.Sprintf("missing field `%s`", field),
	}
}

func exceedsMaxLength(path, field string, limit int) *DiscoveryError {
	return &DiscoveryError{
		Path:   path,
		Kind:   ErrExceedsMaxLength,
		Detail: fmt.Sprintf("invalid %s: exceeds maximum length of %d characters", field, limit),
	}
}
