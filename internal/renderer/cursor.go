package renderer

import (
	"fmt"
	"strings"

	"github.com/rulebook-dev/rulebook/internal/models"
)

// cursorRenderer emits Cursor rule files (.mdc): YAML front matter
// followed by markdown sections.
type cursorRenderer struct{}

func (r *cursorRenderer) Target() Target {
	return TargetCursor
}

func (r *cursorRenderer) Filename(templateID string) string {
	return templateID + "-cursor.mdc"
}

func (r *cursorRenderer) Render(tmpl *models.Template) (string, error) {
	if err := checkRenderable(tmpl); err != nil {
		return "", err
	}

	var b strings.Builder

	// Cursor front matter
	b.WriteString("---\n")
	fmt.Fprintf(&b, "description: %s\n", frontMatterValue(tmpl.Metadata.Description, tmpl.Metadata.Name))
	b.WriteString("globs:\n")
	b.WriteString("alwaysApply: true\n")
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", tmpl.Metadata.Name)
	if tmpl.Metadata.Version != "" {
		fmt.Fprintf(&b, "Version %s", tmpl.Metadata.Version)
		if tmpl.Metadata.Description != "" {
			fmt.Fprintf(&b, " - %s", tmpl.Metadata.Description)
		}
		b.WriteString("\n\n")
	}

	writeList(&b, "Languages", tmpl.Metadata.Languages)
	writeList(&b, "Frameworks", tmpl.Metadata.Frameworks)
	writeList(&b, "Categories", tmpl.Metadata.Categories)
	if len(tmpl.Metadata.Languages)+len(tmpl.Metadata.Frameworks)+len(tmpl.Metadata.Categories) > 0 {
		b.WriteString("\n")
	}

	for _, item := range tmpl.Items {
		fmt.Fprintf(&b, "## %s\n\n", item.Name)
		if item.Description != "" {
			b.WriteString(item.Description)
			b.WriteString("\n\n")
		}
		b.WriteString(fence(item.Content))
		b.WriteString("\n\n")
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "_Tags: %s_\n\n", strings.Join(item.Tags, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func frontMatterValue(preferred, fallback string) string {
	value := preferred
	if value == "" {
		value = fallback
	}
	// Keep front matter single-line
	return strings.ReplaceAll(value, "\n", " ")
}
