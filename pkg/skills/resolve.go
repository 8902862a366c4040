package skills

import "sort"

// resolvePrecedence merges skills discovered across scopes into a single
// catalog. For each name, the skill from the lowest-valued scope survives;
// within the same scope the one encountered first in scan order wins (scan
// order is deterministic because the scanner sorts directory entries).
// Dropped skills are counted as collisions, not reported as errors. The
// result is sorted ascending by name, byte-wise.
func resolvePrecedence(found []Skill) ([]Skill, int) {
	byName := make(map[string]int, len(found))
	resolved := make([]Skill, 0, len(found))
	collisions := 0

	for _, skill := range found {
		idx, seen := byName[skill.Name]
		if !seen {
			byName[skill.Name] = len(resolved)
			resolved = append(resolved, skill)
			continue
		}
		collisions++
		if skill.Scope < resolved[idx].Scope {
			resolved[idx] = skill
		}
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Name < resolved[j].Name
	})

	return resolved, collisions
}
