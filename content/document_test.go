package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const validDoc = `---
title: "Giving Better Feedback"
excerpt: "Feedback that lands."
publishedAt: "2024-03-01"
category: "soft-skills"
tags:
  - feedback
  - communication
author:
  name: "Sara Ahmadi"
featured: true
---
# Feedback

Body text here.
`

func TestDocumentStoreLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"en/giving-feedback.md": {Data: []byte(validDoc)},
	}
	store := NewDocumentStore(fsys)

	doc, err := store.Load(LocaleEN, "giving-feedback")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Slug != "giving-feedback" {
		t.Errorf("Slug = %q, want %q", doc.Slug, "giving-feedback")
	}
	if doc.Locale != LocaleEN {
		t.Errorf("Locale = %q, want %q", doc.Locale, LocaleEN)
	}
	if doc.Meta.Title != "Giving Better Feedback" {
		t.Errorf("Title = %q, want %q", doc.Meta.Title, "Giving Better Feedback")
	}
	if doc.Meta.PublishedAt != "2024-03-01" {
		t.Errorf("PublishedAt = %q, want %q", doc.Meta.PublishedAt, "2024-03-01")
	}
	if len(doc.Meta.Tags) != 2 || doc.Meta.Tags[0] != "feedback" {
		t.Errorf("Tags = %v, want [feedback communication]", doc.Meta.Tags)
	}
	if doc.Meta.Author.Name != "Sara Ahmadi" {
		t.Errorf("Author.Name = %q, want %q", doc.Meta.Author.Name, "Sara Ahmadi")
	}
	if !doc.Meta.Featured {
		t.Error("Featured should be true")
	}
	if !strings.Contains(string(doc.Body), "Body text here.") {
		t.Errorf("Body should contain markdown text, got %q", doc.Body)
	}
}

func TestDocumentStoreLoadMissing(t *testing.T) {
	store := NewDocumentStore(fstest.MapFS{})

	_, err := store.Load(LocaleEN, "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentStoreLoadMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"en/broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody")},
	}
	store := NewDocumentStore(fsys)

	_, err := store.Load(LocaleEN, "broken")
	if err == nil {
		t.Fatal("expected error for malformed front matter")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("malformed front matter should not map to ErrNotFound")
	}
}

func TestDocumentStoreLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"en/zebra.md":  {Data: []byte(validDoc)},
		"en/apple.md":  {Data: []byte(validDoc)},
		"en/broken.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody")},
		"en/notes.txt": {Data: []byte("not markdown")},
		"fa/other.md":  {Data: []byte(validDoc)},
	}
	store := NewDocumentStore(fsys)

	docs, skipped := store.LoadAll(LocaleEN)
	if len(docs) != 2 {
		t.Fatalf("LoadAll count = %d, want 2", len(docs))
	}
	if docs[0].Slug != "apple" || docs[1].Slug != "zebra" {
		t.Errorf("LoadAll should sort by slug, got %q, %q", docs[0].Slug, docs[1].Slug)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped count = %d, want 1", len(skipped))
	}
}

func TestDocumentStoreLoadAllMissingLocaleDir(t *testing.T) {
	fsys := fstest.MapFS{
		"en/post.md": {Data: []byte(validDoc)},
	}
	store := NewDocumentStore(fsys)

	docs, skipped := store.LoadAll(LocaleFA)
	if len(docs) != 0 {
		t.Errorf("LoadAll on missing dir = %d docs, want 0", len(docs))
	}
	if len(skipped) != 0 {
		t.Errorf("LoadAll on missing dir = %d errors, want 0", len(skipped))
	}
}
