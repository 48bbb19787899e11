package library

import (
	"goodshelf/internal/entities"
)

// ShelfCount pairs a shelf with its member count for display.
type ShelfCount struct {
	Shelf entities.Shelf `json:"shelf"`
	Count int64          `json:"count"`
}

// ShelfCounts computes the member count of every known shelf from a
// membership snapshot. Shelves with no members get a zero entry; the
// input shelf order is preserved.
func ShelfCounts(shelves []entities.Shelf, memberships []entities.Membership) []ShelfCount {
	counts := make(map[int64]int64, len(shelves))
	for _, m := range memberships {
		counts[m.ShelfID]++
	}
	result := make([]ShelfCount, 0, len(shelves))
	for _, shelf := range shelves {
		result = append(result, ShelfCount{Shelf: shelf, Count: counts[shelf.ID]})
	}
	return result
}

// BooksToShelves builds the inverse index used to annotate book rows with
// their shelf tags. Memberships are walked once and grouped by book id;
// memberships pointing at unknown shelves are skipped.
func BooksToShelves(shelves []entities.Shelf, memberships []entities.Membership) map[string][]entities.Shelf {
	byID := make(map[int64]entities.Shelf, len(shelves))
	for _, shelf := range shelves {
		byID[shelf.ID] = shelf
	}
	index := make(map[string][]entities.Shelf)
	for _, m := range memberships {
		shelf, ok := byID[m.ShelfID]
		if !ok {
			continue
		}
		index[m.BookID] = append(index[m.BookID], shelf)
	}
	return index
}

// AvailableBooks returns all books minus the current members of a shelf,
// preserving the input order. Used to populate the "add to shelf" picker.
func AvailableBooks(all []entities.Book, members []entities.Book) []entities.Book {
	memberIDs := make(map[string]struct{}, len(members))
	for _, book := range members {
		memberIDs[book.ID] = struct{}{}
	}
	result := make([]entities.Book, 0, len(all))
	for _, book := range all {
		if _, ok := memberIDs[book.ID]; !ok {
			result = append(result, book)
		}
	}
	return result
}
