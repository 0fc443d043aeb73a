package services

import (
	"strings"

	"quotedesk/internal/domain"
)

// CatalogPage is one derived view over the product collection: the visible
// slice plus paging metadata. Page is the clamped 1-based page actually
// served, which may differ from the one requested.
type CatalogPage struct {
	Products     []domain.Product
	TotalMatches int
	TotalPages   int
	Page         int
	PageSize     int
}

// PageOf filters the collection by free-text query and category, then pages
// the result. All inputs are total: an empty query or category matches
// everything, and out-of-range page numbers are clamped, never rejected.
func PageOf(products []domain.Product, query, categoryID string, page, pageSize int) CatalogPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return CatalogPage{
		Products:     matched[lo:hi],
		TotalMatches: total,
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     pageSize,
	}
}
