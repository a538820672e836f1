// Package content implements the markdown-backed blog content pipeline:
// loading front-matter documents per locale, rendering them to HTML, and
// filtering, sorting, and paginating the resulting posts.
package content

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Locale identifies a content language. The set is closed: content is
// partitioned into one directory per locale and nothing else is served.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFA Locale = "fa"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: post not found")

// ErrUnknownLocale is returned for locales outside the supported set.
var ErrUnknownLocale = errors.New("content: unknown locale")

// Locales returns the supported locales in a fixed order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleFA}
}

// ParseLocale validates a raw locale string against the supported set.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN, nil
	case LocaleFA:
		return LocaleFA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
}

// Post statuses. Drafts never appear on the public surface.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Author is a value object embedded in a post; it has no identity of its own.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar"`
	Bio    string `json:"bio,omitempty" yaml:"bio"`
}

// SEO carries per-post metadata for the page head. Empty fields are defaulted
// from the post itself when the document is materialized.
type SEO struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Image       string   `json:"image,omitempty" yaml:"image"`
}

// BlogPost is a fully materialized post: front matter merged with rendered
// HTML and derived fields. A post is uniquely addressed by (Locale, Slug).
type BlogPost struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"` // rendered HTML
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      Author   `json:"author"`
	ReadingTime int      `json:"readingTime"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
	Locale      Locale   `json:"locale"`
	SEO         SEO      `json:"seo"`
}

// publishedTime parses PublishedAt for sorting and date-range comparisons.
// Unparseable dates sort as the zero time rather than failing the request.
func (p BlogPost) publishedTime() time.Time {
	return parseDate(p.PublishedAt)
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Category is static reference data per locale; PostCount is computed from
// the live post set.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Locale      Locale `json:"locale"`
	PostCount   int    `json:"postCount"`
}

// Tag is static reference data per locale; PostCount is computed from the
// live post set.
type Tag struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Locale    Locale `json:"locale"`
	PostCount int    `json:"postCount"`
}

// Pagination is fully derived from (total, page, limit).
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ListResponse is the assembled payload for a blog listing request.
type ListResponse struct {
	Posts      []BlogPost `json:"posts"`
	Pagination Pagination `json:"pagination"`
	Categories []Category `json:"categories"`
	Tags       []Tag      `json:"tags"`
}
