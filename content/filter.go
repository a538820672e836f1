package content

import (
	"sort"
	"strings"
)

// Sort fields and orders accepted by Filters. Anything else falls back to
// the default publishedAt descending.
const (
	SortPublishedAt = "publishedAt"
	SortTitle       = "title"
	SortReadingTime = "readingTime"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize is the page size used when the caller does not supply one.
const DefaultPageSize = 10

// Filters is the request-scoped filter set applied to a locale's posts. A
// zero field means "don't filter on this". Filters is a value type: build a
// new one per request instead of mutating a shared instance.
type Filters struct {
	Locale    Locale
	Category  string
	Tag       string
	Search    string
	Author    string
	Featured  *bool
	Status    string
	DateFrom  string
	DateTo    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Apply filters and sorts posts without paginating. All predicates are
// independent, so their evaluation order never changes the result set.
func (f Filters) Apply(posts []BlogPost) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if f.matches(p) {
			out = append(out, p)
		}
	}

	by := f.SortBy
	if by == "" {
		by = SortPublishedAt
	}
	order := f.SortOrder
	if order == "" {
		order = SortDesc
	}
	sortPosts(out, by, order)
	return out
}

func (f Filters) matches(p BlogPost) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.Tag != "" && !containsFold(p.Tags, f.Tag) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.Author != "" && !strings.EqualFold(f.Author, p.Author.Name) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, p.Status) {
		return false
	}
	if f.DateFrom != "" {
		if from := parseDate(f.DateFrom); !from.IsZero() && p.publishedTime().Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		if to := parseDate(f.DateTo); !to.IsZero() && p.publishedTime().After(to) {
			return false
		}
	}
	return true
}

// matchesSearch reports whether the term appears in the title, excerpt, or
// rendered content. Any single hit qualifies the post.
func matchesSearch(p BlogPost, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term) ||
		strings.Contains(strings.ToLower(p.Content), term)
}

func containsFold(vals []string, want string) bool {
	for _, v := range vals {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// sortPosts orders posts by the given field and order. Equal keys fall back
// to slug ascending so the ordering is deterministic regardless of how the
// filesystem enumerated the files.
func sortPosts(posts []BlogPost, by, order string) {
	asc := order == SortAsc
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		var less bool
		switch by {
		case SortTitle:
			if a.Title == b.Title {
				return a.Slug < b.Slug
			}
			less = a.Title < b.Title
		case SortReadingTime:
			if a.ReadingTime == b.ReadingTime {
				return a.Slug < b.Slug
			}
			less = a.ReadingTime < b.ReadingTime
		default:
			at, bt := a.publishedTime(), b.publishedTime()
			if at.Equal(bt) {
				return a.Slug < b.Slug
			}
			less = at.Before(bt)
		}
		if asc {
			return less
		}
		return !less
	})
}

// Paginate slices posts into the requested page and derives the pagination
// metadata. Page defaults to 1 and limit to DefaultPageSize; a page past the
// end yields an empty slice, never an error, and is deliberately not clamped.
func Paginate(posts []BlogPost, page, limit int) ([]BlogPost, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(posts)
	totalPages := (total + limit - 1) / limit

	window := []BlogPost{}
	if start := (page - 1) * limit; start < total {
		end := start + limit
		if end > total {
			end = total
		}
		window = posts[start:end]
	}

	return window, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
