package blogengine

import (
	"io/fs"
	"time"
)

// SiteConfig holds all configuration for the content engine.
type SiteConfig struct {
	Name        string // Site name (default "Menteeno")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and JSON-LD
	Author      string // Fallback author name for posts without one

	Addr       string // Listen address (default ":3000")
	ContentDir string // Root of the per-locale markdown directories (default "content/blog")

	AnalyticsEnabled      bool   // Enable analytics
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	CacheTTL       time.Duration // Post cache TTL (default 5min)
	WordsPerMinute int           // Reading-time speed (default 200)
	SanitizeHTML   bool          // Scrub rendered HTML; leave off only for author-curated content
	PageSize       int           // Default page size for listings (default 10)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Menteeno"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.PageSize == 0 {
		c.PageSize = 10
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and uploads (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentFS serves content from the given filesystem instead of
// ContentDir. Used by tests and embedded-content deployments.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
