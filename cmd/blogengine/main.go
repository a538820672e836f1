// Command blogengine runs the Menteeno blog content server.
// All site branding and secrets come from environment variables; a .env
// file in the working directory is loaded when present.
package main

import (
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/menteeno/blogengine"
)

func main() {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := blogengine.SiteConfig{
		Name:        blogengine.EnvOr("SITE_NAME", "Menteeno"),
		URL:         blogengine.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: blogengine.EnvOr("SITE_DESCRIPTION", "Soft skill development platform"),
		Author:      blogengine.EnvOr("SITE_AUTHOR", "Menteeno Team"),

		Addr:       blogengine.EnvOr("LISTEN_ADDR", ":3000"),
		ContentDir: blogengine.EnvOr("CONTENT_DIR", "content/blog"),

		AnalyticsEnabled:      envBool("ANALYTICS_ENABLED"),
		AnalyticsDatabasePath: blogengine.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),

		AdminPassword: blogengine.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: blogengine.MustEnv("SESSION_SECRET"),
		CookieSecure:  envBool("COOKIE_SECURE"),

		CacheTTL:     envDuration("CACHE_TTL"),
		SanitizeHTML: envBool("SANITIZE_HTML"),
	}

	app := blogengine.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(blogengine.EnvOr(key, "false"))
	return v
}

func envDuration(key string) time.Duration {
	d, err := time.ParseDuration(blogengine.EnvOr(key, "0"))
	if err != nil {
		return 0
	}
	return d
}
