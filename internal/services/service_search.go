package services

import (
	"strings"

	"inkwell-backend/internal/models"
	"inkwell-backend/internal/utils"
)

// MatchesQuery is the search predicate: case-insensitive substring match
// against title, excerpt, stripped-HTML content, any tag, or author name,
// OR-combined. No relevance ranking; callers keep listing order.
func MatchesQuery(p models.Post, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}

	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	if strings.Contains(strings.ToLower(utils.StripHTML(p.Content)), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.AuthorName), term)
}

// SearchPosts filters a published-post listing by MatchesQuery, preserving
// input order.
func SearchPosts(posts []models.Post, term string) []models.Post {
	if strings.TrimSpace(term) == "" {
		return []models.Post{}
	}
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if MatchesQuery(p, term) {
			out = append(out, p)
		}
	}
	return out
}
