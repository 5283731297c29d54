package stanza

import (
	"errors"
	"sync"
	"time"

	"github.com/apamildner/stanza/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("stanza: post not found")

// ContentCache is an in-memory cache over Library scans with TTL. Serve
// mode reads through it so every request does not hit the filesystem; the
// watcher invalidates it when content files change.
type ContentCache struct {
	mu        sync.RWMutex
	all       []content.Item
	published []content.Item
	tags      []string
	fetched   time.Time
	ttl       time.Duration
	library   *Library

	// OnScanError is called for each content file skipped during a scan.
	// Defaults to nil (skip silently); serve mode logs the path and error.
	OnScanError func(*FileError)
}

// NewContentCache creates a ContentCache backed by the given Library.
func NewContentCache(l *Library, ttl time.Duration) *ContentCache {
	return &ContentCache{library: l, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.all != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh scan.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.all = nil
	c.published = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	items, fileErrs, err := c.library.ScanPartial()
	if err != nil {
		return err
	}
	if c.OnScanError != nil {
		for _, fe := range fileErrs {
			c.OnScanError(fe)
		}
	}
	content.ByDate(items)
	c.all = items
	c.published = content.Published(items)
	c.tags = content.Tags(c.published)
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached items after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) ensureLoaded() ([]content.Item, []content.Item, []string, error) {
	c.mu.RLock()
	if c.valid() {
		all, published, tags := c.all, c.published, c.tags
		c.mu.RUnlock()
		return all, published, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, nil, err
	}
	return c.all, c.published, c.tags, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *ContentCache) ListPosts(tag string) ([]content.Item, error) {
	_, published, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return content.FilterTag(published, tag), nil
}

// ListTags returns all unique tags from published posts.
func (c *ContentCache) ListTags() ([]string, error) {
	_, _, tags, err := c.ensureLoaded()
	return tags, err
}

// GetPost returns a single published post by slug.
func (c *ContentCache) GetPost(slug string) (content.Item, error) {
	_, published, _, err := c.ensureLoaded()
	if err != nil {
		return content.Item{}, err
	}
	for _, it := range published {
		if it.Slug == slug {
			return it, nil
		}
	}
	return content.Item{}, ErrNotFound
}

// GetPostAny returns a post by slug regardless of draft status (for admin).
func (c *ContentCache) GetPostAny(slug string) (content.Item, error) {
	all, _, _, err := c.ensureLoaded()
	if err != nil {
		return content.Item{}, err
	}
	for _, it := range all {
		if it.Slug == slug {
			return it, nil
		}
	}
	return content.Item{}, ErrNotFound
}

// ListAllPosts returns every post including drafts, date descending.
func (c *ContentCache) ListAllPosts() ([]content.Item, error) {
	all, _, _, err := c.ensureLoaded()
	return all, err
}
