package content

import (
	"errors"
	"io/fs"
	"log"
)

// Repository materializes blog posts from the document store. All entities it
// returns are read-only projections of markdown files; content is authored
// out-of-band, so there is no create/update/delete path here.
type Repository struct {
	store    *DocumentStore
	renderer *Renderer
	logf     func(format string, args ...any)
}

// NewRepository creates a Repository over fsys. A nil renderer gets the
// default configuration.
func NewRepository(fsys fs.FS, renderer *Renderer) *Repository {
	if renderer == nil {
		renderer = NewRenderer(RendererConfig{})
	}
	return &Repository{
		store:    NewDocumentStore(fsys),
		renderer: renderer,
		logf:     log.Printf,
	}
}

// GetAll returns every published post for the locale, sorted by publishedAt
// descending with slug as the tiebreak. An absent locale directory yields an
// empty list. Documents with malformed front matter are logged and skipped.
func (r *Repository) GetAll(locale Locale) ([]BlogPost, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return nil, err
	}

	docs, skipped := r.store.LoadAll(locale)
	for _, err := range skipped {
		r.logf("blogengine: skipping document: %v", err)
	}

	posts := make([]BlogPost, 0, len(docs))
	for _, d := range docs {
		p := r.materialize(d)
		if p.Status != StatusPublished {
			continue
		}
		posts = append(posts, p)
	}
	sortPosts(posts, SortPublishedAt, SortDesc)
	return posts, nil
}

// GetBySlug returns a single published post, or ErrNotFound when the file is
// missing, malformed, or a draft.
func (r *Repository) GetBySlug(locale Locale, slug string) (BlogPost, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return BlogPost{}, err
	}

	doc, err := r.store.Load(locale, slug)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logf("blogengine: skipping document: %v", err)
		}
		return BlogPost{}, ErrNotFound
	}

	p := r.materialize(doc)
	if p.Status != StatusPublished {
		return BlogPost{}, ErrNotFound
	}
	return p, nil
}

// GetFeatured returns up to limit featured posts, newest first.
func (r *Repository) GetFeatured(locale Locale, limit int) ([]BlogPost, error) {
	posts, err := r.GetAll(locale)
	if err != nil {
		return nil, err
	}
	featured := make([]BlogPost, 0, limit)
	for _, p := range posts {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// GetRecent returns up to limit posts, newest first.
func (r *Repository) GetRecent(locale Locale, limit int) ([]BlogPost, error) {
	posts, err := r.GetAll(locale)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetDrafts returns the locale's draft posts for the admin surface, sorted
// like GetAll.
func (r *Repository) GetDrafts(locale Locale) ([]BlogPost, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return nil, err
	}

	docs, skipped := r.store.LoadAll(locale)
	for _, err := range skipped {
		r.logf("blogengine: skipping document: %v", err)
	}

	var drafts []BlogPost
	for _, d := range docs {
		p := r.materialize(d)
		if p.Status != StatusDraft {
			continue
		}
		drafts = append(drafts, p)
	}
	sortPosts(drafts, SortPublishedAt, SortDesc)
	return drafts, nil
}

// materialize renders a document into a full BlogPost, filling SEO defaults
// from the post itself where the front matter left them empty.
func (r *Repository) materialize(d *Document) BlogPost {
	m := d.Meta
	html, minutes := r.renderer.Render(d.Body)

	status := StatusPublished
	if m.Draft {
		status = StatusDraft
	}

	p := BlogPost{
		Slug:        d.Slug,
		Title:       m.Title,
		Excerpt:     m.Excerpt,
		Content:     html,
		PublishedAt: m.PublishedAt,
		UpdatedAt:   m.UpdatedAt,
		Category:    m.Category,
		Tags:        m.Tags,
		Author:      m.Author,
		ReadingTime: minutes,
		Featured:    m.Featured,
		Status:      status,
		Locale:      d.Locale,
		SEO:         m.SEO,
	}

	if p.SEO.Title == "" {
		p.SEO.Title = p.Title
	}
	if p.SEO.Description == "" {
		p.SEO.Description = p.Excerpt
	}
	if len(p.SEO.Keywords) == 0 && len(p.Tags) > 0 {
		p.SEO.Keywords = append([]string(nil), p.Tags...)
	}
	return p
}
