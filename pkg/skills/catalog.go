package skills

// Entry is the compact per-skill view handed to the prompt builder.
type Entry struct {
	Name             string
	Description      string
	ShortDescription string
}

// Catalog is a read-only view over a discovery result, used by the prompt
// builder (List) and by explicit skill invocation (Lookup).
type Catalog struct {
	result *Result
	byName map[string]*Skill
}

// NewCatalog builds a catalog over result. The result is assumed resolved:
// sorted by name with unique names.
func NewCatalog(result *Result) *Catalog {
	byName := make(map[string]*Skill, len(result.Skills))
	for i := range result.Skills {
		byName[result.Skills[i].Name] = &result.Skills[i]
	}
	return &Catalog{result: result, byName: byName}
}

// List returns one entry per skill, in catalog (name) order.
func (c *Catalog) List() []Entry {
	entries := make([]Entry, 0, len(c.result.Skills))
	for _, skill := range c.result.Skills {
		entries = append(entries, Entry{
			Name:             skill.Name,
			Description:      skill.Description,
			ShortDescription: skill.ShortDescription,
		})
	}
	return entries
}

// Lookup returns the skill with the given name. Matching is exact and
// case-sensitive; fuzzy matching belongs to the agent layer.
func (c *Catalog) Lookup(name string) (*Skill, bool) {
	skill, ok := c.byName[name]
	return skill, ok
}

// Errors returns the discovery errors recorded alongside the catalog.
func (c *Catalog) Errors() []DiscoveryError {
	return c.result.Errors
}
