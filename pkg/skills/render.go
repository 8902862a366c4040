package skills

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const skillsSectionTemplate = `## Available Skills

The following skills extend your capabilities. Invoke a skill when the task
matches its description; its full instructions will be provided on activation.
{{range .}}
- **{{.Name}}**: {{if .ShortDescription}}{{.ShortDescription}}{{else}}{{.Description}}{{end}}{{end}}
`

var skillsSection = template.Must(template.New("skills-section").Parse(skillsSectionTemplate))

// RenderSkillsSection renders the "available skills" block of the system
// prompt from catalog entries. An empty catalog renders to an empty string so
// the prompt builder can skip the section entirely.
func RenderSkillsSection(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	var sb strings.Builder
	if err := skillsSection.Execute(&sb, entries); err != nil {
		return "", errors.Wrap(err, "failed to render skills section")
	}
	return sb.String(), nil
}
