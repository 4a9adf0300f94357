// Package renderer turns a guidance template into editor-specific rule
// documents. Renderers are pure: same template in, byte-identical
// document out, no I/O.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/rulebook-dev/rulebook/internal/errors"
	"github.com/rulebook-dev/rulebook/internal/models"
)

// Target identifies an output dialect.
type Target string

const (
	TargetCursor  Target = "cursor"
	TargetCopilot Target = "copilot"
	TargetClaude  Target = "claude"
)

// ParseTarget converts a user-supplied target name.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[t]; !ok {
		return "", fmt.Errorf("unknown target %q (available: %s)", s, strings.Join(TargetNames(), ", "))
	}
	return t, nil
}

// Renderer transforms a template into one dialect of rule document.
type Renderer interface {
	// Target returns the dialect this renderer produces.
	Target() Target
	// Filename returns the output file name for a template id,
	// following the <template-name>-<suffix>.<ext> convention.
	Filename(templateID string) string
	// Render produces the full document. Variants differ only in
	// markup; item names, descriptions, tags and order are identical
	// across targets.
	Render(tmpl *models.Template) (string, error)
}

var registry = map[Target]Renderer{
	TargetCursor:  &cursorRenderer{},
	TargetCopilot: &copilotRenderer{},
	TargetClaude:  &claudeRenderer{},
}

// ForTarget returns the renderer for a target.
func ForTarget(target Target) (Renderer, error) {
	r, ok := registry[target]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRender, fmt.Sprintf("no renderer registered for target %q", target))
	}
	return r, nil
}

// All returns every registered renderer in stable target order.
func All() []Renderer {
	targets := make([]string, 0, len(registry))
	for t := range registry {
		targets = append(targets, string(t))
	}
	sort.Strings(targets)
	renderers := make([]Renderer, 0, len(targets))
	for _, t := range targets {
		renderers = append(renderers, registry[Target(t)])
	}
	return renderers
}

// TargetNames returns the registered target names, sorted.
func TargetNames() []string {
	names := make([]string, 0, len(registry))
	for t := range registry {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// checkRenderable rejects templates a renderer cannot produce a document
// for. One failed render aborts that call only, never a whole batch.
func checkRenderable(tmpl *models.Template) error {
	if tmpl == nil {
		return apperrors.NewAppError(apperrors.ErrCodeRender, "template is nil")
	}
	if strings.TrimSpace(tmpl.Metadata.Name) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRender, "template metadata has no name")
	}
	return nil
}

// fence wraps free-form content in a fenced block, widening the fence
// when the content itself contains one.
func fence(content string) string {
	marker := "```"
	for strings.Contains(content, marker) {
		marker += "`"
	}
	content = strings.TrimRight(content, "\n")
	return marker + "\n" + content + "\n" + marker
}

// writeList emits a "Label: a, b, c" line when values are present.
func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(values, ", "))
}
