package models

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPriority is the neutral priority assigned to items that do not set one.
const DefaultPriority = 0

// GuidanceItem is a single named unit of guidance content.
type GuidanceItem struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Content     string   `yaml:"content"`
	Tags        []string `yaml:"tags,omitempty"`
	Priority    int      `yaml:"priority,omitempty"`
}

// NewGuidanceItem creates a guidance item, validating required fields.
func NewGuidanceItem(name, content string) (GuidanceItem, error) {
	item := GuidanceItem{
		Name:     strings.TrimSpace(name),
		Content:  content,
		Priority: DefaultPriority,
	}
	if err := item.Validate(); err != nil {
		return GuidanceItem{}, err
	}
	return item, nil
}

// Validate checks that required fields are present.
func (g GuidanceItem) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("guidance item: name is required")
	}
	if strings.TrimSpace(g.Content) == "" {
		return fmt.Errorf("guidance item %q: content is required", g.Name)
	}
	return nil
}

// HasTag reports whether the item carries the given tag (case-sensitive exact match).
func (g GuidanceItem) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Metadata describes a collection of guidance items.
type Metadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description,omitempty"`
	Languages   []string `yaml:"languages,omitempty"`
	Frameworks  []string `yaml:"frameworks,omitempty"`
	Categories  []string `yaml:"categories,omitempty"`
}

// Validate checks that required metadata fields are present.
func (m Metadata) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Version) == "" {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return fmt.Errorf("metadata: missing required field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// PriorityMode selects the comparison direction for priority filtering.
// The numeric meaning of priority is a library convention, so the direction
// is an explicit parameter rather than a baked-in assumption.
type PriorityMode string

const (
	// PriorityAtLeast keeps items whose priority is numerically >= the threshold.
	PriorityAtLeast PriorityMode = "at-least"
	// PriorityAtMost keeps items whose priority is numerically <= the threshold.
	PriorityAtMost PriorityMode = "at-most"
)

// ParsePriorityMode converts a user-supplied mode string.
func ParsePriorityMode(s string) (PriorityMode, error) {
	switch PriorityMode(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityAtLeast:
		return PriorityAtLeast, nil
	case PriorityAtMost:
		return PriorityAtMost, nil
	default:
		return "", fmt.Errorf("invalid priority mode %q (want %q or %q)", s, PriorityAtLeast, PriorityAtMost)
	}
}

// Template aggregates metadata and an ordered collection of guidance items.
// Item order is insertion order and survives save/load round-trips.
type Template struct {
	Metadata Metadata       `yaml:"metadata"`
	Items    []GuidanceItem `yaml:"guidance"`

	// FilePath is the library-relative path the template was loaded from.
	FilePath string `yaml:"-"`
}

// NewTemplate creates an empty template with the given metadata.
func NewTemplate(meta Metadata) (*Template, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &Template{Metadata: meta}, nil
}

// AddGuidance appends an item to the template. Duplicate names are
// permitted and both occurrences are retained; the validate command
// reports them as warnings.
func (t *Template) AddGuidance(item GuidanceItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	t.Items = append(t.Items, item)
	return nil
}

// GuidanceByTag returns the ordered subsequence of items carrying the tag.
func (t *Template) GuidanceByTag(tag string) []GuidanceItem {
	var out []GuidanceItem
	for _, item := range t.Items {
		if item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}

// GuidanceByPriority returns the ordered subsequence of items meeting the
// threshold under the given comparison mode.
func (t *Template) GuidanceByPriority(threshold int, mode PriorityMode) []GuidanceItem {
	var out []GuidanceItem
	for _, item := range t.Items {
		switch mode {
		case PriorityAtMost:
			if item.Priority <= threshold {
				out = append(out, item)
			}
		default:
			if item.Priority >= threshold {
				out = append(out, item)
			}
		}
	}
	return out
}

// GuidanceMatching returns the ordered subsequence of items whose tags
// satisfy the boolean expression. A nil expression matches everything.
func (t *Template) GuidanceMatching(expr *TagExpression) []GuidanceItem {
	var out []GuidanceItem
	for _, item := range t.Items {
		if expr.Matches(item.Tags) {
			out = append(out, item)
		}
	}
	return out
}

// Tags returns the distinct tags across all items, sorted.
func (t *Template) Tags() []string {
	seen := make(map[string]bool)
	for _, item := range t.Items {
		for _, tag := range item.Tags {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate checks the template and every item it holds.
func (t *Template) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return err
	}
	for i, item := range t.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("guidance[%d]: %w", i, err)
		}
	}
	return nil
}

// Warnings reports non-fatal authoring issues: duplicate item names and
// items with no tags.
func (t *Template) Warnings() []string {
	var warnings []string
	seen := make(map[string]int)
	for _, item := range t.Items {
		seen[item.Name]++
	}
	for _, item := range t.Items {
		if seen[item.Name] > 1 {
			warnings = append(warnings, fmt.Sprintf("duplicate item name %q (%d occurrences)", item.Name, seen[item.Name]))
			seen[item.Name] = 0 // report once
		}
	}
	for _, item := range t.Items {
		if len(item.Tags) == 0 {
			warnings = append(warnings, fmt.Sprintf("item %q has no tags", item.Name))
		}
	}
	return warnings
}

// ID returns the identifier used to address the template from the CLI.
// It is derived from the file name when the template came from disk.
// FilePath comes from filepath.Join/Rel, so the separator is
// platform-dependent.
func (t *Template) ID() string {
	if t.FilePath != "" {
		base := filepath.Base(t.FilePath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Slugify(t.Metadata.Name)
}

// Slugify converts a display name into a file-safe identifier.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Implement list.Item for the bubbles list component used by the picker.

// FilterValue returns the value used for filtering in lists.
func (t Template) FilterValue() string {
	return t.Metadata.Name
}

// Title satisfies the list.Item interface.
func (t Template) Title() string {
	if t.Metadata.Name != "" {
		return t.Metadata.Name
	}
	return t.ID()
}

// Description satisfies the list.Item interface.
func (t Template) Description() string {
	var parts []string
	if t.Metadata.Description != "" {
		desc := t.Metadata.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		parts = append(parts, desc)
	}
	parts = append(parts, fmt.Sprintf("%d items", len(t.Items)))
	if langs := t.Metadata.Languages; len(langs) > 0 {
		parts = append(parts, strings.Join(langs, ", "))
	}
	return strings.Join(parts, " • ")
}
