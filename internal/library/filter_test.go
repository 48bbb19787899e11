package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goodshelf/internal/entities"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func statusPtr(s entities.ReadingStatus) *entities.ReadingStatus { return &s }

func testBook(id, title string, mutate func(*entities.Book)) entities.Book {
	book := entities.Book{ID: id, Title: title}
	if mutate != nil {
		mutate(&book)
	}
	return book
}

func TestFilter_ZeroMatchesEverything(t *testing.T) {
	var f Filter
	assert.True(t, f.IsZero())
	assert.True(t, f.Matches(testBook("a", "Dune", nil)))
}

func TestFilter_StatusIsExactMatch(t *testing.T) {
	f := Filter{Status: statusPtr(entities.StatusPending)}

	pending := testBook("a", "Dune", func(b *entities.Book) {
		b.Status = statusPtr(entities.StatusPending)
	})
	reading := testBook("b", "Hyperion", func(b *entities.Book) {
		b.Status = statusPtr(entities.StatusInProgress)
	})
	// No stored status never matches a status filter, even PENDING
	unset := testBook("c", "Middlemarch", nil)

	assert.True(t, f.Matches(pending))
	assert.False(t, f.Matches(reading))
	assert.False(t, f.Matches(unset))
}

func TestFilter_SearchTextMatchesTitleOrAuthors(t *testing.T) {
	book := testBook("a", "The Left Hand of Darkness", func(b *entities.Book) {
		b.Authors = strPtr("Ursula K. Le Guin")
	})

	assert.True(t, Filter{SearchText: "left hand"}.Matches(book))
	assert.True(t, Filter{SearchText: "LE GUIN"}.Matches(book))
	assert.False(t, Filter{SearchText: "herbert"}.Matches(book))
}

func TestFilter_SearchTextAgainstNilAuthors(t *testing.T) {
	book := testBook("a", "Dune", nil)

	assert.True(t, Filter{SearchText: "dune"}.Matches(book))
	assert.False(t, Filter{SearchText: "herbert"}.Matches(book))
}

func TestFilter_PageBoundsTreatNilAsZero(t *testing.T) {
	noPages := testBook("a", "Dune", nil)
	short := testBook("b", "Hyperion", func(b *entities.Book) {
		b.PageCount = int64Ptr(100)
	})
	long := testBook("c", "Middlemarch", func(b *entities.Book) {
		b.PageCount = int64Ptr(800)
	})

	f := Filter{MinPages: int64Ptr(50), MaxPages: int64Ptr(500)}
	assert.False(t, f.Matches(noPages))
	assert.True(t, f.Matches(short))
	assert.False(t, f.Matches(long))

	// Bounds are inclusive
	assert.True(t, Filter{MinPages: int64Ptr(100)}.Matches(short))
	assert.True(t, Filter{MaxPages: int64Ptr(100)}.Matches(short))

	// A max-only filter lets page-less books through as 0 pages
	assert.True(t, Filter{MaxPages: int64Ptr(500)}.Matches(noPages))
}

func TestFilter_FinishedDateBoundsRequireEndDate(t *testing.T) {
	finished := testBook("a", "Dune", func(b *entities.Book) {
		b.EndDate = strPtr("2025-03-15")
	})
	unfinished := testBook("b", "Hyperion", nil)

	after := Filter{StartDateBound: "2025-01-01"}
	assert.True(t, after.Matches(finished))
	assert.False(t, after.Matches(unfinished))

	before := Filter{EndDateBound: "2025-12-31"}
	assert.True(t, before.Matches(finished))
	assert.False(t, before.Matches(unfinished))

	window := Filter{StartDateBound: "2025-03-16", EndDateBound: "2025-12-31"}
	assert.False(t, window.Matches(finished))
}

func TestFilter_PredicatesAreConjunctive(t *testing.T) {
	book := testBook("a", "Dune", func(b *entities.Book) {
		b.Status = statusPtr(entities.StatusCompleted)
		b.PageCount = int64Ptr(412)
	})

	f := Filter{
		Status:   statusPtr(entities.StatusCompleted),
		MinPages: int64Ptr(500),
	}
	assert.False(t, f.Matches(book))
}

func TestApply_PreservesOrder(t *testing.T) {
	books := []entities.Book{
		testBook("a", "Dune", func(b *entities.Book) { b.PageCount = int64Ptr(412) }),
		testBook("b", "Hyperion", nil),
		testBook("c", "Middlemarch", func(b *entities.Book) { b.PageCount = int64Ptr(800) }),
	}

	result := Apply(books, Filter{MinPages: int64Ptr(1)})
	assert.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestApply_EmptyInput(t *testing.T) {
	result := Apply(nil, Filter{SearchText: "dune"})
	assert.Empty(t, result)
}
