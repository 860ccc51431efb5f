package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Record is one raw entry from a content file before normalization
type Record map[string]any

// Store reads raw JSON documents from the content directory. Every load
// failure degrades to "no data": missing files, unreadable files and
// malformed JSON are logged, never returned as errors. An optional cache
// (see documentCache) can be attached to skip re-parsing unchanged files.
type Store struct {
	dir   string
	cache *documentCache
}

// NewStore creates a Store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the absolute path of a content file inside the store
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Close releases the cache watcher, if any
func (s *Store) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// LoadJSON loads and parses one content file. The second return value is
// false when no usable data could be read; callers treat that the same as
// an empty collection.
func (s *Store) LoadJSON(name string) (any, bool) {
	if s.cache != nil {
		if doc, ok := s.cache.Get(name); ok {
			slog.Debug(LogMsgCacheHit, "file", name)
			return doc, true
		}
	}

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn(LogMsgFileNotFound, "path", path)
		} else {
			slog.Error(LogMsgReadFailed, "path", path, "error", err)
		}
		return nil, false
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Error(LogMsgInvalidJSON, "path", path, "error", err)
		return nil, false
	}

	slog.Debug(LogMsgLoaded, "path", path)
	if s.cache != nil {
		s.cache.Set(name, doc)
	}
	return doc, true
}

// SaveJSON writes v to a content file as indented JSON, creating the
// parent directory if needed
func (s *Store) SaveJSON(name string, v any) error {
	path := s.Path(name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data for %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if s.cache != nil {
		s.cache.Invalidate(name)
	}
	slog.Info(LogMsgSaved, "path", path)
	return nil
}

// asRecords coerces a parsed document into a list of records (catalog shape)
func asRecords(doc any) ([]Record, bool) {
	list, ok := doc.([]any)
	if !ok {
		return nil, false
	}
	records := make([]Record, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			// Non-mapping entries are dropped; the rest of the file still loads
			slog.Warn(LogMsgUnexpectedShape, "entry", fmt.Sprintf("%T", entry))
			continue
		}
		records = append(records, Record(m))
	}
	return records, true
}

// asRecord coerces a parsed document into a single record (singleton shape)
func asRecord(doc any) (Record, bool) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}
