package catalog

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// documentCache holds parsed content documents keyed by file name. Entries
// expire after a TTL and are dropped eagerly when the underlying file
// changes on disk, so callers observe external edits within watcher
// latency. The no-cache configuration keeps the strict
// re-read-on-every-access behavior.
type documentCache struct {
	lru     *expirable.LRU[string, any]
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStoreWithCache creates a Store whose raw documents are cached.
// size bounds the number of cached files, ttl bounds staleness when a
// file change event is missed. Callers must Close the returned store.
func NewStoreWithCache(dir string, size int, ttl time.Duration) (*Store, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	cache := &documentCache{
		lru:     expirable.NewLRU[string, any](size, nil, ttl),
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go cache.watch()

	return &Store{dir: dir, cache: cache}, nil
}

func (c *documentCache) watch() {
	for {
		select {
		case <-c.done:
			return
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				name := filepath.Base(event.Name)
				c.lru.Remove(name)
				slog.Debug(LogMsgCacheInvalidated, "file", name, "op", event.Op.String())
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Content watcher error", "error", err)
		}
	}
}

func (c *documentCache) Get(name string) (any, bool) {
	return c.lru.Get(name)
}

func (c *documentCache) Set(name string, doc any) {
	c.lru.Add(name, doc)
}

func (c *documentCache) Invalidate(name string) {
	c.lru.Remove(name)
}

func (c *documentCache) Close() error {
	close(c.done)
	return c.watcher.Close()
}
