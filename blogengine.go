// Package blogengine is the localized blog content engine behind the
// Menteeno marketing site. It serves posts, taxonomy, related-post lookups,
// RSS feeds, and a sitemap for a fixed pair of locales (English/Persian)
// from front-matter markdown files, with an admin surface for content
// reloads and image uploads, and optional privacy-first analytics.
package blogengine

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menteeno/blogengine/analytics"
	"github.com/menteeno/blogengine/content"
)

// App is the central application. It wires together the content repository,
// cache, handlers, middleware, and the optional analytics store.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Repo   *content.Repository
	Cache  *content.Cache

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
	contentFS      fs.FS
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the content pipeline, middleware, and routes, and runs
// the server until it shuts down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("blogengine: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blogengine: SessionSecret is required")
	}

	a.initContent()
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("blogengine: init analytics: %w", err)
		}
		a.analyticsStore = store
		if err := analytics.InitSalt(store); err != nil {
			return fmt.Errorf("blogengine: init analytics salt: %w", err)
		}
		stopCleanup := store.StartCleanupScheduler(365, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// initContent builds the renderer, repository, and cache from the config.
// Split out of Start so tests can wire an App without binding a socket.
func (a *App) initContent() {
	fsys := a.contentFS
	if fsys == nil {
		fsys = os.DirFS(a.Config.ContentDir)
	}
	renderer := content.NewRenderer(content.RendererConfig{
		WordsPerMinute: a.Config.WordsPerMinute,
		Sanitize:       a.Config.SanitizeHTML,
	})
	a.Repo = content.NewRepository(fsys, renderer)
	a.Cache = content.NewCache(a.Repo, a.Config.CacheTTL)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets, including author-uploaded post images.
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)

	// Crawlable surfaces: one sitemap covering every locale, one feed each.
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/:locale/feed.xml", a.handleFeed)

	// Public content API, locale-scoped. Unknown locales 404 before any
	// content lookup happens.
	api := e.Group("/api")
	api.GET("/:locale/posts", a.handleListPosts)
	api.GET("/:locale/posts/:slug", a.handleGetPost)
	api.GET("/:locale/posts/:slug/related", a.handleRelatedPosts)
	api.GET("/:locale/categories", a.handleCategories)
	api.GET("/:locale/tags", a.handleTags)

	// Admin routes
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/reload/", a.handleAdminReload)
	e.GET("/admin/drafts/", a.handleAdminDrafts)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	// Analytics routes
	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		handler := analytics.NewHandler(a.analyticsStore)
		adminOnly := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				if !IsAdmin(c) {
					return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
				}
				return next(c)
			}
		}
		handler.RegisterRoutes(e, adminOnly)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blogengine: required environment variable %s is not set", key)
	}
	return v
}
