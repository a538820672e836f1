package content

import (
	"sync"
	"time"
)

// Cache is an in-memory, per-locale cache of published posts with a TTL.
// Loading the full post set means re-reading and re-rendering every file, so
// request handlers read through the cache and the admin surface calls
// Invalidate after content changes on disk.
type Cache struct {
	mu      sync.RWMutex
	entries map[Locale]*cacheEntry
	ttl     time.Duration
	repo    *Repository
}

type cacheEntry struct {
	posts   []BlogPost
	fetched time.Time
}

// NewCache creates a Cache backed by repo.
func NewCache(repo *Repository, ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[Locale]*cacheEntry),
		ttl:     ttl,
		repo:    repo,
	}
}

// Invalidate drops all cached locales so the next read reloads from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[Locale]*cacheEntry)
	c.mu.Unlock()
}

// Posts returns the locale's published posts, reloading from the repository
// when the cached entry is missing or stale. It tries a read lock first and
// only takes the write lock when a reload is needed.
func (c *Cache) Posts(locale Locale) ([]BlogPost, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return nil, err
	}

	c.mu.RLock()
	if e, ok := c.entries[locale]; ok && time.Since(e.fetched) < c.ttl {
		posts := e.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have reloaded while we waited for the lock.
	if e, ok := c.entries[locale]; ok && time.Since(e.fetched) < c.ttl {
		return e.posts, nil
	}

	posts, err := c.repo.GetAll(locale)
	if err != nil {
		return nil, err
	}
	c.entries[locale] = &cacheEntry{posts: posts, fetched: time.Now()}
	return posts, nil
}

// GetPost returns a single published post by slug from the cached post set.
func (c *Cache) GetPost(locale Locale, slug string) (BlogPost, error) {
	posts, err := c.Posts(locale)
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}
