package skills

import "fmt"

// Mention is an explicit skill reference extracted from user input by the
// agent layer (surface syntax such as a $-prefixed token is its concern, not
// ours).
type Mention struct {
	Name string
}

// Instructions is the full-content payload injected into the conversation
// when a mentioned skill is activated.
type Instructions struct {
	Name string
	Path string
	Body string
}

// Injections carries the resolved instruction payloads plus warnings for
// mentions that did not resolve to a catalog entry.
type Injections struct {
	Items    []Instructions
	Warnings []string
}

// BuildInjections resolves explicit skill mentions against the catalog.
// Duplicate mentions inject once; unknown names produce warnings rather than
// errors so one typo does not suppress the other injections.
func BuildInjections(mentions []Mention, catalog *Catalog) Injections {
	var result Injections
	if len(mentions) == 0 || catalog == nil {
		return result
	}

	seen := make(map[string]struct{}, len(mentions))
	for _, mention := range mentions {
		if mention.Name == "" {
			continue
		}
		if _, dup := seen[mention.Name]; dup {
			continue
		}
		seen[mention.Name] = struct{}{}

		skill, ok := catalog.Lookup(mention.Name)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("skill %q not found", mention.Name))
			continue
		}
		result.Items = append(result.Items, Instructions{
			Name: skill.Name,
			Path: skill.FilePath(),
			Body: skill.Body,
		})
	}
	return result
}
