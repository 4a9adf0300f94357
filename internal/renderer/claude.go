package renderer

import (
	"fmt"
	"strings"

	"github.com/rulebook-dev/rulebook/internal/models"
)

// claudeRenderer emits CLAUDE.md-style guidance: markdown with a short
// preamble and horizontal rules between sections.
type claudeRenderer struct{}

func (r *claudeRenderer) Target() Target {
	return TargetClaude
}

func (r *claudeRenderer) Filename(templateID string) string {
	return templateID + "-claude.md"
}

func (r *claudeRenderer) Render(tmpl *models.Template) (string, error) {
	if err := checkRenderable(tmpl); err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tmpl.Metadata.Name)
	fmt.Fprintf(&b, "This file provides guidance when working with code in this repository.\n\n")
	if tmpl.Metadata.Description != "" {
		b.WriteString(tmpl.Metadata.Description)
		b.WriteString("\n\n")
	}

	if tmpl.Metadata.Version != "" {
		fmt.Fprintf(&b, "- Version: %s\n", tmpl.Metadata.Version)
	}
	writeList(&b, "Languages", tmpl.Metadata.Languages)
	writeList(&b, "Frameworks", tmpl.Metadata.Frameworks)
	writeList(&b, "Categories", tmpl.Metadata.Categories)
	b.WriteString("\n")

	for i, item := range tmpl.Items {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", item.Name)
		if item.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", item.Description)
		}
		b.WriteString(fence(item.Content))
		b.WriteString("\n\n")
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "> Tags: %s\n\n", strings.Join(item.Tags, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
