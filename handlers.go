package blogengine

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/menteeno/blogengine/content"
)

// localeParam validates the :locale route parameter. Anything outside the
// supported set is a 404 before any content lookup happens.
func localeParam(c echo.Context) (content.Locale, error) {
	locale, err := content.ParseLocale(c.Param("locale"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown locale")
	}
	return locale, nil
}

// filtersFromQuery builds the request-scoped filter set from query
// parameters. Unparseable numbers fall back to defaults rather than erroring.
func (a *App) filtersFromQuery(locale content.Locale, c echo.Context) content.Filters {
	f := content.Filters{
		Locale:    locale,
		Category:  c.QueryParam("category"),
		Tag:       c.QueryParam("tag"),
		Search:    c.QueryParam("search"),
		Author:    c.QueryParam("author"),
		Status:    c.QueryParam("status"),
		DateFrom:  c.QueryParam("dateFrom"),
		DateTo:    c.QueryParam("dateTo"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      1,
		Limit:     a.Config.PageSize,
	}
	if v := c.QueryParam("featured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Featured = &b
		}
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		f.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		f.Limit = n
	}
	return f
}

// handleListPosts serves the blog listing: filtered, sorted, paginated
// posts plus the sidebar taxonomy for the locale.
func (a *App) handleListPosts(c echo.Context) error {
	locale, err := localeParam(c)
	if err != nil {
		return err
	}
	posts, err := a.Cache.Posts(locale)
	if err != nil {
		return err
	}

	f := a.filtersFromQuery(locale, c)
	filtered := f.Apply(posts)
	window, pagination := content.Paginate(filtered, f.Page, f.Limit)

	return c.JSON(http.StatusOK, content.ListResponse{
		Posts:      window,
		Pagination: pagination,
		Categories: content.Categories(locale, posts),
		Tags:       content.Tags(locale, posts),
	})
}

type postResponse struct {
	Post   content.BlogPost `json:"post"`
	JSONLD string           `json:"jsonLd"`
}

// handleGetPost serves a single post with its structured-data payload.
func (a *App) handleGetPost(c echo.Context) error {
	locale, err := localeParam(c)
	if err != nil {
		return err
	}
	post, err := a.Cache.GetPost(locale, c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, postResponse{
		Post:   post,
		JSONLD: BlogPostingJsonLD(post, a.Config),
	})
}

// handleRelatedPosts serves posts sharing the subject's category or tags.
func (a *App) handleRelatedPosts(c echo.Context) error {
	locale, err := localeParam(c)
	if err != nil {
		return err
	}
	post, err := a.Cache.GetPost(locale, c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return err
	}
	posts, err := a.Cache.Posts(locale)
	if err != nil {
		return err
	}

	limit := 3
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		limit = n
	}

	return c.JSON(http.StatusOK, map[string][]content.BlogPost{
		"posts": content.Related(post, posts, limit),
	})
}

func (a *App) handleCategories(c echo.Context) error {
	locale, err := localeParam(c)
	if err != nil {
		return err
	}
	posts, err := a.Cache.Posts(locale)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]content.Category{
		"categories": content.Categories(locale, posts),
	})
}

func (a *App) handleTags(c echo.Context) error {
	locale, err := localeParam(c)
	if err != nil {
		return err
	}
	posts, err := a.Cache.Posts(locale)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]content.Tag{
		"tags": content.Tags(locale, posts),
	})
}

// handleRobots generates robots.txt dynamically using the configured URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := any("internal server error")
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		message = "internal server error"
	}
	_ = c.JSON(code, map[string]any{"message": message})
}
