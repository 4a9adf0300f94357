package renderer

import (
	"fmt"
	"strings"

	"github.com/rulebook-dev/rulebook/internal/models"
)

// copilotRenderer emits GitHub Copilot instruction files: plain markdown,
// no front matter, items as level-3 headings under an Instructions section.
type copilotRenderer struct{}

func (r *copilotRenderer) Target() Target {
	return TargetCopilot
}

func (r *copilotRenderer) Filename(templateID string) string {
	return templateID + "-copilot.md"
}

func (r *copilotRenderer) Render(tmpl *models.Template) (string, error) {
	if err := checkRenderable(tmpl); err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Copilot Instructions\n\n", tmpl.Metadata.Name)
	if tmpl.Metadata.Description != "" {
		b.WriteString(tmpl.Metadata.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("## Scope\n\n")
	if tmpl.Metadata.Version != "" {
		fmt.Fprintf(&b, "- Version: %s\n", tmpl.Metadata.Version)
	}
	writeList(&b, "Languages", tmpl.Metadata.Languages)
	writeList(&b, "Frameworks", tmpl.Metadata.Frameworks)
	writeList(&b, "Categories", tmpl.Metadata.Categories)
	b.WriteString("\n## Instructions\n\n")

	for _, item := range tmpl.Items {
		fmt.Fprintf(&b, "### %s\n\n", item.Name)
		if item.Description != "" {
			b.WriteString(item.Description)
			b.WriteString("\n\n")
		}
		b.WriteString(fence(item.Content))
		b.WriteString("\n\n")
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(item.Tags, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
