// Package service orchestrates storage and rendering behind the CLI.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/rulebook-dev/rulebook/internal/config"
	apperrors "github.com/rulebook-dev/rulebook/internal/errors"
	"github.com/rulebook-dev/rulebook/internal/models"
	"github.com/rulebook-dev/rulebook/internal/renderer"
	"github.com/rulebook-dev/rulebook/internal/storage"
)

// Service provides the core operations of rulebook.
type Service struct {
	store  *storage.Store
	cfg    *config.Config
	logger zerolog.Logger
}

// NewService creates a service for the configured library.
func NewService(cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	store, err := storage.NewStore(cfg.LibraryDir, logger)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.With().Str("component", "service").Logger(),
	}, nil
}

// InitLibrary creates the library directory layout.
func (s *Service) InitLibrary() error {
	return s.store.Init()
}

// Store exposes the underlying store to the CLI layer.
func (s *Service) Store() *storage.Store {
	return s.store
}

// ListTemplates returns all templates in the library.
func (s *Service) ListTemplates() ([]*models.Template, error) {
	return s.store.ListTemplates()
}

// GetTemplate loads a template by id, including item content.
func (s *Service) GetTemplate(id string) (*models.Template, error) {
	return s.store.LoadTemplateByID(id)
}

// CreateTemplate saves a new template, refusing to overwrite an existing one.
func (s *Service) CreateTemplate(tmpl *models.Template) error {
	path := s.store.TemplatePath(tmpl.ID())
	if _, err := os.Stat(filepath.Join(s.store.BaseDir(), path)); err == nil {
		return apperrors.ValidationError(fmt.Sprintf("template %q already exists", tmpl.ID()))
	}
	tmpl.FilePath = path
	if err := s.store.SaveTemplate(tmpl); err != nil {
		return err
	}
	s.logger.Info().Str("template", tmpl.ID()).Msg("template created")
	return nil
}

// SaveTemplate persists a template, overwriting any existing file.
func (s *Service) SaveTemplate(tmpl *models.Template) error {
	return s.store.SaveTemplate(tmpl)
}

// SearchTemplates fuzzy-matches templates by name and description.
func (s *Service) SearchTemplates(query string) ([]*models.Template, error) {
	templates, err := s.store.ListTemplates()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return templates, nil
	}

	matches := fuzzy.FindFrom(query, templateSource(templates))
	results := make([]*models.Template, 0, len(matches))
	for _, m := range matches {
		results = append(results, templates[m.Index])
	}
	return results, nil
}

// templateSource adapts templates to the fuzzy matcher.
type templateSource []*models.Template

func (s templateSource) String(i int) string {
	t := s[i]
	return t.ID() + " " + t.Metadata.Name + " " + t.Metadata.Description
}

func (s templateSource) Len() int {
	return len(s)
}

// ItemFilter narrows which guidance items a render includes. Zero value
// means no filtering.
type ItemFilter struct {
	// Tag keeps items carrying this exact tag.
	Tag string
	// Expr keeps items whose tags satisfy a boolean expression.
	Expr *models.TagExpression
	// Priority, when set, keeps items meeting the threshold under Mode.
	Priority *int
	// Mode is the priority comparison direction; defaults to at-least.
	Mode models.PriorityMode
}

func (f ItemFilter) apply(tmpl *models.Template) *models.Template {
	items := tmpl.Items
	if f.Tag != "" {
		items = filterItems(items, func(it models.GuidanceItem) bool { return it.HasTag(f.Tag) })
	}
	if f.Expr != nil {
		items = filterItems(items, func(it models.GuidanceItem) bool { return f.Expr.Matches(it.Tags) })
	}
	if f.Priority != nil {
		mode := f.Mode
		if mode == "" {
			mode = models.PriorityAtLeast
		}
		threshold := *f.Priority
		items = filterItems(items, func(it models.GuidanceItem) bool {
			if mode == models.PriorityAtMost {
				return it.Priority <= threshold
			}
			return it.Priority >= threshold
		})
	}

	filtered := *tmpl
	filtered.Items = items
	return &filtered
}

func filterItems(items []models.GuidanceItem, keep func(models.GuidanceItem) bool) []models.GuidanceItem {
	var out []models.GuidanceItem
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Generate renders a template for each target and writes the output files
// into outDir. A failed target does not abort the rest of the batch; the
// per-target errors are joined and returned after every target has run.
func (s *Service) Generate(id string, targets []renderer.Target, outDir string, filter ItemFilter) ([]string, error) {
	tmpl, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}
	tmpl = filter.apply(tmpl)

	if outDir == "" {
		outDir = s.cfg.OutputDir
	}

	var written []string
	var errs []error
	for _, target := range targets {
		r, err := renderer.ForTarget(target)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		doc, err := r.Render(tmpl)
		if err != nil {
			s.logger.Warn().Err(err).Str("target", string(target)).Msg("render failed")
			errs = append(errs, apperrors.RenderError(string(target), err))
			continue
		}

		path, err := s.store.WriteRendered(outDir, r.Filename(tmpl.ID()), doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.logger.Debug().Str("target", string(target)).Str("path", path).Msg("wrote rendered output")
		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

// Preview renders a template for one target without writing anything.
func (s *Service) Preview(id string, target renderer.Target, filter ItemFilter) (string, error) {
	tmpl, err := s.GetTemplate(id)
	if err != nil {
		return "", err
	}
	r, err := renderer.ForTarget(target)
	if err != nil {
		return "", err
	}
	return r.Render(filter.apply(tmpl))
}

// Validate loads a template and reports non-fatal authoring warnings.
func (s *Service) Validate(id string) ([]string, error) {
	tmpl, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}
	return tmpl.Warnings(), nil
}
