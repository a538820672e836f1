package content

import "strings"

// Related returns up to limit posts from candidates that share post's
// category or at least one of its tags. The input post itself is never
// included, and candidates keep their original order: there is no relevance
// ranking beyond "shares something".
func Related(post BlogPost, candidates []BlogPost, limit int) []BlogPost {
	related := []BlogPost{}
	if limit <= 0 {
		return related
	}

	tagSet := make(map[string]struct{}, len(post.Tags))
	for _, t := range post.Tags {
		if tag := strings.ToLower(strings.TrimSpace(t)); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}

	for _, p := range candidates {
		if p.Slug == post.Slug {
			continue
		}
		if !sharesCategory(post, p) && !sharesTag(tagSet, p) {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}

func sharesCategory(a, b BlogPost) bool {
	return a.Category != "" && strings.EqualFold(a.Category, b.Category)
}

func sharesTag(tagSet map[string]struct{}, p BlogPost) bool {
	for _, t := range p.Tags {
		if _, ok := tagSet[strings.ToLower(strings.TrimSpace(t))]; ok {
			return true
		}
	}
	return false
}
