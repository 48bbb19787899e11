// Package library holds the pure, in-memory read models of the book
// collection: the display filter and the shelf membership projections.
// Everything here operates on a snapshot pulled fresh from the
// repositories; nothing is cached between loads.
package library

import (
	"strings"

	"goodshelf/internal/entities"
)

// Filter narrows the visible book list. All fields are optional and
// conjunctive. The zero value matches every book.
type Filter struct {
	// Status keeps only books whose stored status equals this value
	// exactly. A book with no stored status matches no status filter,
	// even PENDING; pending counts elsewhere treat NULL as PENDING,
	// the filter deliberately does not.
	Status *entities.ReadingStatus

	// SearchText is a case-insensitive substring match against title or
	// authors. Blank disables text filtering entirely.
	SearchText string

	// MinPages and MaxPages are inclusive bounds. A book without a page
	// count participates as 0 pages in both comparisons.
	MinPages *int64
	MaxPages *int64

	// StartDateBound keeps only books finished on or after this ISO date;
	// EndDateBound keeps only books finished on or before it. Both require
	// a non-null end date. Blank disables the bound. ISO YYYY-MM-DD makes
	// lexicographic comparison chronological.
	StartDateBound string
	EndDateBound   string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Status == nil && f.SearchText == "" &&
		f.MinPages == nil && f.MaxPages == nil &&
		f.StartDateBound == "" && f.EndDateBound == ""
}

// Matches applies every enabled predicate to a single book.
func (f Filter) Matches(book entities.Book) bool {
	if f.Status != nil {
		if book.Status == nil || *book.Status != *f.Status {
			return false
		}
	}

	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		titleMatch := strings.Contains(strings.ToLower(book.Title), needle)
		authorMatch := book.Authors != nil &&
			strings.Contains(strings.ToLower(*book.Authors), needle)
		if !titleMatch && !authorMatch {
			return false
		}
	}

	if f.MinPages != nil && book.PagesOrZero() < *f.MinPages {
		return false
	}
	if f.MaxPages != nil && book.PagesOrZero() > *f.MaxPages {
		return false
	}

	if f.StartDateBound != "" {
		if book.EndDate == nil || *book.EndDate < f.StartDateBound {
			return false
		}
	}
	if f.EndDateBound != "" {
		if book.EndDate == nil || *book.EndDate > f.EndDateBound {
			return false
		}
	}

	return true
}

// Apply returns the subsequence of books matching the filter, preserving
// the input order.
func Apply(books []entities.Book, f Filter) []entities.Book {
	result := make([]entities.Book, 0, len(books))
	for _, book := range books {
		if f.Matches(book) {
			result = append(result, book)
		}
	}
	return result
}
