// Package storage handles all file system operations for guidance templates.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	apperrors "github.com/rulebook-dev/rulebook/internal/errors"
	"github.com/rulebook-dev/rulebook/internal/models"
)

const templatesDir = "templates"

// Store reads and writes guidance templates under a library directory.
type Store struct {
	rootPath string
	cache    *metadataCache
	logger   zerolog.Logger
}

// NewStore creates a store rooted at rootPath. An empty rootPath falls
// back to ~/.rulebook.
func NewStore(rootPath string, logger zerolog.Logger) (*Store, error) {
	if rootPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeLoad, "cannot resolve home directory")
		}
		rootPath = filepath.Join(homeDir, ".rulebook")
	}

	cache := newMetadataCache(rootPath)
	if err := cache.Load(); err != nil {
		logger.Warn().Err(err).Msg("metadata cache unavailable, listing will re-parse files")
	}

	return &Store{
		rootPath: rootPath,
		cache:    cache,
		logger:   logger.With().Str("component", "storage").Logger(),
	}, nil
}

// Init creates the directory layout for a template library.
func (s *Store) Init() error {
	dirs := []string{
		s.rootPath,
		filepath.Join(s.rootPath, templatesDir),
		filepath.Join(s.rootPath, ".rulebook", "cache"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeWrite, fmt.Sprintf("failed to create directory %s", dir))
		}
	}
	return nil
}

// BaseDir returns the library root.
func (s *Store) BaseDir() string {
	return s.rootPath
}

// TemplatePath returns the library-relative path for a template id.
func (s *Store) TemplatePath(id string) string {
	return filepath.Join(templatesDir, id+".yaml")
}

// LoadTemplate loads a template from a library-relative path. Malformed
// input is rejected here, not at use time.
func (s *Store) LoadTemplate(path string) (*models.Template, error) {
	fullPath := filepath.Join(s.rootPath, path)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeNotFound, fmt.Sprintf("template file %s does not exist", path))
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeLoad, fmt.Sprintf("failed to read template %s", path))
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeLoad, fmt.Sprintf("failed to parse template %s", path))
	}

	tmpl.FilePath = path
	return tmpl, nil
}

// LoadTemplateByID resolves a template id against the templates directory.
func (s *Store) LoadTemplateByID(id string) (*models.Template, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(templatesDir, id+ext)
		if _, err := os.Stat(filepath.Join(s.rootPath, path)); err == nil {
			return s.LoadTemplate(path)
		}
	}
	return nil, apperrors.NotFoundError(fmt.Sprintf("template %q", id))
}

// SaveTemplate writes a template as a YAML document. The write is atomic:
// content goes to a temp file in the destination directory first, then is
// renamed into place, so a failed write never leaves a truncated document.
func (s *Store) SaveTemplate(tmpl *models.Template) error {
	if err := tmpl.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "template failed validation")
	}
	if tmpl.FilePath == "" {
		tmpl.FilePath = s.TemplatePath(tmpl.ID())
	}
	fullPath := filepath.Join(s.rootPath, tmpl.FilePath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWrite, "failed to create template directory")
	}

	data, err := serializeTemplate(tmpl)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWrite, "failed to serialize template")
	}

	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWrite, fmt.Sprintf("failed to write template %s", tmpl.FilePath))
	}

	s.cache.Invalidate(tmpl.FilePath)
	return nil
}

// DeleteTemplate removes a template file from the library.
func (s *Store) DeleteTemplate(tmpl *models.Template) error {
	fullPath := filepath.Join(s.rootPath, tmpl.FilePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return apperrors.NotFoundError(fmt.Sprintf("template file %s", tmpl.FilePath))
	}
	if err := os.Remove(fullPath); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWrite, "failed to delete template file")
	}
	s.cache.Invalidate(tmpl.FilePath)
	return nil
}

// ListTemplates returns all templates in the library in path order.
// Cached entries carry everything except item content; call LoadTemplate
// for the full document.
func (s *Store) ListTemplates() ([]*models.Template, error) {
	dir := filepath.Join(s.rootPath, templatesDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []*models.Template{}, nil
	}

	var templates []*models.Template
	existing := make(map[string]bool)
	cacheModified := false

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isTemplateFile(path) {
			return nil
		}

		relPath, _ := filepath.Rel(s.rootPath, path)
		existing[relPath] = true

		if cached, ok := s.cache.Get(relPath, info); ok {
			templates = append(templates, cached.toTemplate())
			return nil
		}

		tmpl, err := s.LoadTemplate(relPath)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", relPath).Msg("skipping unreadable template")
			return nil
		}

		s.cache.Set(relPath, info, tmpl)
		cacheModified = true
		templates = append(templates, tmpl)
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeLoad, "failed to walk templates directory")
	}

	s.cache.Cleanup(existing)
	if cacheModified {
		if err := s.cache.Save(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist metadata cache")
		}
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].FilePath < templates[j].FilePath
	})
	return templates, nil
}

// WriteRendered writes a renderer output file below outDir, atomically.
func (s *Store) WriteRendered(outDir, filename, content string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeWrite, fmt.Sprintf("failed to create output directory %s", outDir))
	}
	dest := filepath.Join(outDir, filename)
	if err := writeFileAtomic(dest, []byte(content), 0644); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeWrite, fmt.Sprintf("failed to write %s", dest))
	}
	return dest, nil
}

// Helper functions

func isTemplateFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// templateDoc pins the on-disk document layout: a metadata object and an
// ordered guidance list.
type templateDoc struct {
	Metadata models.Metadata       `yaml:"metadata"`
	Guidance []models.GuidanceItem `yaml:"guidance"`
}

func parseTemplate(data []byte) (*models.Template, error) {
	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}

	tmpl := &models.Template{
		Metadata: doc.Metadata,
		Items:    doc.Guidance,
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func serializeTemplate(tmpl *models.Template) ([]byte, error) {
	doc := templateDoc{
		Metadata: tmpl.Metadata,
		Guidance: tmpl.Items,
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

func writeFileAtomic(dest string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".rulebook-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
