package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rulebook-dev/rulebook/internal/models"
)

// cachedItem holds everything about a guidance item except its content,
// which is only needed when rendering.
type cachedItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Priority    int      `json:"priority,omitempty"`
}

// cachedTemplate is the listing view of a template, keyed by file state.
type cachedTemplate struct {
	Metadata models.Metadata `json:"metadata"`
	Items    []cachedItem    `json:"items,omitempty"`
	FilePath string          `json:"file_path"`
	ModTime  time.Time       `json:"mod_time"`
	Size     int64           `json:"size"`
}

func (c *cachedTemplate) toTemplate() *models.Template {
	items := make([]models.GuidanceItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = models.GuidanceItem{
			Name:        item.Name,
			Description: item.Description,
			Tags:        item.Tags,
			Priority:    item.Priority,
			// Content loaded on demand via LoadTemplate
		}
	}
	return &models.Template{
		Metadata: c.Metadata,
		Items:    items,
		FilePath: c.FilePath,
	}
}

// metadataCache avoids re-parsing unchanged template files when listing
// the library. Entries are invalidated by size or mtime changes and the
// whole cache is dropped silently when its JSON is corrupt.
type metadataCache struct {
	cacheDir  string
	cacheFile string
	entries   map[string]*cachedTemplate
	mu        sync.RWMutex
}

func newMetadataCache(baseDir string) *metadataCache {
	cacheDir := filepath.Join(baseDir, ".rulebook", "cache")
	return &metadataCache{
		cacheDir:  cacheDir,
		cacheFile: filepath.Join(cacheDir, "templates.json"),
		entries:   make(map[string]*cachedTemplate),
	}
}

// Load reads the cache from disk. A missing cache file is not an error.
func (c *metadataCache) Load() error {
	if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
		return err
	}

	data, err := os.ReadFile(c.cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.mu.Lock()
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.entries = make(map[string]*cachedTemplate)
	}
	c.mu.Unlock()
	return nil
}

// Save persists the cache to disk.
func (c *metadataCache) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(c.cacheFile, data, 0644)
}

// Get returns the cached entry for a path if the file is unchanged.
func (c *metadataCache) Get(relPath string, info os.FileInfo) (*cachedTemplate, bool) {
	c.mu.RLock()
	cached, exists := c.entries[relPath]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}
	if cached.Size != info.Size() || !cached.ModTime.Equal(info.ModTime()) {
		return nil, false
	}
	return cached, true
}

// Set stores the listing view of a loaded template.
func (c *metadataCache) Set(relPath string, info os.FileInfo, tmpl *models.Template) {
	items := make([]cachedItem, len(tmpl.Items))
	for i, item := range tmpl.Items {
		items[i] = cachedItem{
			Name:        item.Name,
			Description: item.Description,
			Tags:        item.Tags,
			Priority:    item.Priority,
		}
	}

	c.mu.Lock()
	c.entries[relPath] = &cachedTemplate{
		Metadata: tmpl.Metadata,
		Items:    items,
		FilePath: relPath,
		ModTime:  info.ModTime(),
		Size:     info.Size(),
	}
	c.mu.Unlock()
}

// Invalidate drops the entry for a path after a write or delete.
func (c *metadataCache) Invalidate(relPath string) {
	c.mu.Lock()
	delete(c.entries, relPath)
	c.mu.Unlock()
}

// Cleanup removes entries for files that no longer exist.
func (c *metadataCache) Cleanup(existing map[string]bool) {
	c.mu.Lock()
	for path := range c.entries {
		if !existing[path] {
			delete(c.entries, path)
		}
	}
	c.mu.Unlock()
}
