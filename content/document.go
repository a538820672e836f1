package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the YAML front matter of a content file. Every field except the
// title and publish date is optional; defaults are applied downstream.
type Meta struct {
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	PublishedAt string   `yaml:"publishedAt"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Author      Author   `yaml:"author"`
	Featured    bool     `yaml:"featured"`
	Draft       bool     `yaml:"draft"`
	SEO         SEO      `yaml:"seo"`
}

// Document is a parsed content file: structured metadata plus the raw
// markdown body, before rendering.
type Document struct {
	Slug   string
	Locale Locale
	Meta   Meta
	Body   []byte
}

// DocumentStore reads front-matter markdown documents from a filesystem laid
// out as <locale>/<slug>.md. The slug is derived from the filename, so the
// filesystem itself guarantees slug uniqueness within a locale.
type DocumentStore struct {
	fsys fs.FS
}

// NewDocumentStore creates a DocumentStore rooted at fsys.
func NewDocumentStore(fsys fs.FS) *DocumentStore {
	return &DocumentStore{fsys: fsys}
}

// Load reads and parses a single document. A missing file maps to
// ErrNotFound; malformed front matter is reported as an error for the caller
// to log and skip.
func (s *DocumentStore) Load(locale Locale, slug string) (*Document, error) {
	data, err := fs.ReadFile(s.fsys, path.Join(string(locale), slug+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blogengine: read document %s/%s: %w", locale, slug, err)
	}
	return parseDocument(locale, slug, data)
}

// LoadAll returns every document in a locale directory sorted by slug.
// A missing locale directory yields an empty result, not an error. Files
// whose front matter fails to parse are skipped; their errors are returned
// alongside the good documents so the caller can log them.
func (s *DocumentStore) LoadAll(locale Locale) ([]*Document, []error) {
	entries, err := fs.ReadDir(s.fsys, string(locale))
	if err != nil {
		return nil, nil
	}

	var docs []*Document
	var skipped []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		doc, err := s.Load(locale, slug)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Slug < docs[j].Slug
	})
	return docs, skipped
}

func parseDocument(locale Locale, slug string, data []byte) (*Document, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("blogengine: parse front matter %s/%s: %w", locale, slug, err)
	}
	return &Document{
		Slug:   slug,
		Locale: locale,
		Meta:   meta,
		Body:   body,
	}, nil
}
