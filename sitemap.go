package blogengine

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menteeno/blogengine/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap serves one sitemap covering the blog indexes and every
// published post across all locales.
func (a *App) handleSitemap(c echo.Context) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, locale := range content.Locales() {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, string(locale), "blog")})
		posts, err := a.Cache.Posts(locale)
		if err != nil {
			return err
		}
		for _, p := range posts {
			lastMod := p.UpdatedAt
			if lastMod == "" {
				lastMod = p.PublishedAt
			}
			urls = append(urls, sitemapURL{
				Loc:     PostURL(a.Config, p),
				LastMod: lastMod,
			})
		}
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
