package content

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

func postFile(title, date, category string, tags []string, draft bool) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "excerpt: %q\n", "About "+title)
	fmt.Fprintf(&b, "publishedAt: %q\n", date)
	if category != "" {
		fmt.Fprintf(&b, "category: %q\n", category)
	}
	if len(tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range tags {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}
	if draft {
		b.WriteString("draft: true\n")
	}
	b.WriteString("---\n# ")
	b.WriteString(title)
	b.WriteString("\n\nBody of the post.\n")
	return []byte(b.String())
}

func testRepo(t *testing.T, fsys fstest.MapFS) *Repository {
	t.Helper()
	r := NewRepository(fsys, nil)
	r.logf = t.Logf
	return r
}

func TestGetAllSortsNewestFirst(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/a.md": {Data: postFile("Post A", "2024-01-01", "soft-skills", nil, false)},
		"en/b.md": {Data: postFile("Post B", "2024-02-01", "career", nil, false)},
	})

	posts, err := repo.GetAll(LocaleEN)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("GetAll count = %d, want 2", len(posts))
	}
	if posts[0].Slug != "b" || posts[1].Slug != "a" {
		t.Errorf("order = [%s %s], want [b a]", posts[0].Slug, posts[1].Slug)
	}
}

func TestGetAllTiebreaksBySlug(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/delta.md": {Data: postFile("Delta", "2024-05-01", "", nil, false)},
		"en/alpha.md": {Data: postFile("Alpha", "2024-05-01", "", nil, false)},
	})

	posts, err := repo.GetAll(LocaleEN)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if posts[0].Slug != "alpha" || posts[1].Slug != "delta" {
		t.Errorf("equal dates should order by slug, got [%s %s]", posts[0].Slug, posts[1].Slug)
	}
}

func TestGetAllExcludesDrafts(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/live.md":  {Data: postFile("Live", "2024-01-01", "", nil, false)},
		"en/draft.md": {Data: postFile("Draft", "2024-01-02", "", nil, true)},
	})

	posts, err := repo.GetAll(LocaleEN)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "live" {
		t.Errorf("drafts should be excluded, got %v", posts)
	}
}

func TestGetAllSkipsMalformed(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/good.md":   {Data: postFile("Good", "2024-01-01", "", nil, false)},
		"en/broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody")},
	})

	posts, err := repo.GetAll(LocaleEN)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Errorf("malformed documents should be skipped, got %v", posts)
	}
}

func TestGetAllUnknownLocale(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{})

	_, err := repo.GetAll(Locale("de"))
	if !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestGetAllMissingLocaleDir(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/post.md": {Data: postFile("Post", "2024-01-01", "", nil, false)},
	})

	posts, err := repo.GetAll(LocaleFA)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("missing locale dir should yield empty list, got %v", posts)
	}
}

func TestGetBySlug(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/hello.md": {Data: postFile("Hello", "2024-01-15", "soft-skills", []string{"feedback"}, false)},
	})

	post, err := repo.GetBySlug(LocaleEN, "hello")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if post.Title != "Hello" {
		t.Errorf("Title = %q, want %q", post.Title, "Hello")
	}
	if post.Status != StatusPublished {
		t.Errorf("Status = %q, want %q", post.Status, StatusPublished)
	}
	if post.Locale != LocaleEN {
		t.Errorf("Locale = %q, want %q", post.Locale, LocaleEN)
	}
	if !strings.Contains(post.Content, "<h1") {
		t.Errorf("Content should be rendered HTML, got %q", post.Content)
	}
	if post.ReadingTime < 1 {
		t.Errorf("ReadingTime = %d, want >= 1", post.ReadingTime)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{})

	_, err := repo.GetBySlug(LocaleEN, "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBySlugDraftHidden(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/secret.md": {Data: postFile("Secret", "2024-01-01", "", nil, true)},
	})

	_, err := repo.GetBySlug(LocaleEN, "secret")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("drafts should be ErrNotFound on the public surface, got %v", err)
	}
}

func TestGetBySlugMalformed(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody")},
	})

	_, err := repo.GetBySlug(LocaleEN, "broken")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("malformed documents should read as ErrNotFound, got %v", err)
	}
}

func TestSEODefaults(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/plain.md": {Data: postFile("Plain Title", "2024-01-01", "", []string{"learning", "feedback"}, false)},
	})

	post, err := repo.GetBySlug(LocaleEN, "plain")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if post.SEO.Title != "Plain Title" {
		t.Errorf("SEO.Title should default to Title, got %q", post.SEO.Title)
	}
	if post.SEO.Description != post.Excerpt {
		t.Errorf("SEO.Description should default to Excerpt, got %q", post.SEO.Description)
	}
	if len(post.SEO.Keywords) != 2 {
		t.Errorf("SEO.Keywords should default to Tags, got %v", post.SEO.Keywords)
	}
}

func TestGetFeatured(t *testing.T) {
	featured := []byte("---\ntitle: \"Starred\"\npublishedAt: \"2024-03-01\"\nfeatured: true\n---\nBody.\n")

	repo := testRepo(t, fstest.MapFS{
		"en/starred.md": {Data: featured},
		"en/normal.md":  {Data: postFile("Normal", "2024-04-01", "", nil, false)},
	})

	posts, err := repo.GetFeatured(LocaleEN, 5)
	if err != nil {
		t.Fatalf("GetFeatured failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "starred" {
		t.Errorf("GetFeatured = %v, want only starred", posts)
	}
}

func TestGetRecent(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/a.md": {Data: postFile("A", "2024-01-01", "", nil, false)},
		"en/b.md": {Data: postFile("B", "2024-02-01", "", nil, false)},
		"en/c.md": {Data: postFile("C", "2024-03-01", "", nil, false)},
	})

	posts, err := repo.GetRecent(LocaleEN, 2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("GetRecent count = %d, want 2", len(posts))
	}
	if posts[0].Slug != "c" || posts[1].Slug != "b" {
		t.Errorf("GetRecent = [%s %s], want [c b]", posts[0].Slug, posts[1].Slug)
	}
}

func TestGetDrafts(t *testing.T) {
	repo := testRepo(t, fstest.MapFS{
		"en/live.md":  {Data: postFile("Live", "2024-01-01", "", nil, false)},
		"en/draft.md": {Data: postFile("Draft", "2024-01-02", "", nil, true)},
	})

	drafts, err := repo.GetDrafts(LocaleEN)
	if err != nil {
		t.Fatalf("GetDrafts failed: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Slug != "draft" {
		t.Errorf("GetDrafts = %v, want only draft", drafts)
	}
	if drafts[0].Status != StatusDraft {
		t.Errorf("Status = %q, want %q", drafts[0].Status, StatusDraft)
	}
}
