package skills

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// frontmatter is the decoded metadata block of a SKILL.md file.
type frontmatter struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Metadata    struct {
		ShortDescription string `mapstructure:"short-description"`
	} `mapstructure:"metadata"`
}

// splitFrontmatter splits a SKILL.md into its raw metadata block and body.
// A valid file starts with a line that is exactly "---" (modulo surrounding
// whitespace), followed by at least one metadata line, followed by a second
// "---" line; everything after that is the body with leading newlines
// stripped. ok is false when either delimiter is missing or the block is
// empty.
func splitFrontmatter(content string) (block, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return "", "", false
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			closing = i
			break
		}
	}
	if closing <= 1 {
		return "", "", false
	}

	block = strings.Join(lines[1:closing], "\n")
	body = strings.TrimLeft(strings.Join(lines[closing+1:], "\n"), "\n")
	return block, body, true
}

// decodeFrontmatter decodes a raw metadata block into a frontmatter struct.
// The block is first unmarshalled as generic YAML and then decoded weakly
// typed, so scalar values such as bare numbers coerce to strings instead of
// failing the whole file.
func decodeFrontmatter(block string) (*frontmatter, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %v", err)
	}

	var fm frontmatter
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fm,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid metadata structure: %v", err)
	}
	return &fm, nil
}

// sanitizeSingleLine collapses all whitespace runs to single spaces and trims
// the ends, so multi-line YAML scalars validate and render as one line.
func sanitizeSingleLine(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
