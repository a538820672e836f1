package blogengine

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menteeno/blogengine/content"
)

// handleAdminLogin authenticates against the configured admin password and
// opens a session. Attempts are rate-limited per IP.
func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid password")
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"csrfToken": CsrfToken(c),
	})
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleAdminReload drops the content cache so the next request re-reads the
// markdown files. Content is authored out-of-band; this republishes it
// without a restart.
func (a *App) handleAdminReload(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, map[string]string{"status": "reloaded"})
}

// handleAdminDrafts lists draft posts across every locale.
func (a *App) handleAdminDrafts(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
	}
	drafts := []content.BlogPost{}
	for _, locale := range content.Locales() {
		posts, err := a.Repo.GetDrafts(locale)
		if err != nil {
			return err
		}
		drafts = append(drafts, posts...)
	}
	return c.JSON(http.StatusOK, map[string][]content.BlogPost{"drafts": drafts})
}
