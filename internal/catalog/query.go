package catalog

import (
	"sort"
	"strings"

	"github.com/example/bookshop/internal/domain/book"
)

// Sort orders accepted by Find. An unknown order leaves catalog order.
const (
	SortTitle     = "title"
	SortAuthor    = "author"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

// AllCategories is the filter value that disables category filtering.
const AllCategories = "All"

// Query narrows and orders a catalog listing the way the browse page
// does: substring search over title and author, exact category match,
// then a stable sort.
type Query struct {
	Search   string
	Category string
	SortBy   string
}

// Find returns the books matching q, in the requested order.
func (s *Store) Find(q Query) []book.Book {
	books := s.List()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	matched := books[:0]
	for _, b := range books {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && b.Category != q.Category {
			continue
		}
		matched = append(matched, b)
	}

	switch q.SortBy {
	case SortTitle:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })
	case SortAuthor:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Author < matched[j].Author })
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	}
	return matched
}

// Categories returns "All" followed by the distinct categories in
// first-seen catalog order, for the browse page's filter dropdown.
func (s *Store) Categories() []string {
	books := s.List()
	seen := make(map[string]bool, len(books))
	out := []string{AllCategories}
	for _, b := range books {
		if b.Category == "" || seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		out = append(out, b.Category)
	}
	return out
}

// Featured returns the first n books, the home page's featured strip.
func (s *Store) Featured(n int) []book.Book {
	books := s.List()
	if n < 0 {
		n = 0
	}
	if n > len(books) {
		n = len(books)
	}
	return books[:n]
}
