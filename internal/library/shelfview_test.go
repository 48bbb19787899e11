package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodshelf/internal/entities"
)

func TestShelfCounts(t *testing.T) {
	shelves := []entities.Shelf{
		{ID: 1, Name: "Sci-Fi"},
		{ID: 2, Name: "Favourites"},
		{ID: 3, Name: "Empty"},
	}
	memberships := []entities.Membership{
		{BookID: "a", ShelfID: 1},
		{BookID: "b", ShelfID: 1},
		{BookID: "a", ShelfID: 2},
	}

	counts := ShelfCounts(shelves, memberships)
	require.Len(t, counts, 3)
	assert.Equal(t, "Sci-Fi", counts[0].Shelf.Name)
	assert.EqualValues(t, 2, counts[0].Count)
	assert.EqualValues(t, 1, counts[1].Count)
	// Empty shelves still get a zero entry
	assert.EqualValues(t, 0, counts[2].Count)
}

func TestBooksToShelves(t *testing.T) {
	shelves := []entities.Shelf{
		{ID: 1, Name: "Sci-Fi"},
		{ID: 2, Name: "Favourites"},
	}
	memberships := []entities.Membership{
		{BookID: "a", ShelfID: 1},
		{BookID: "a", ShelfID: 2},
		{BookID: "b", ShelfID: 1},
		{BookID: "c", ShelfID: 99}, // unknown shelf, skipped
	}

	index := BooksToShelves(shelves, memberships)
	require.Len(t, index["a"], 2)
	assert.Equal(t, "Sci-Fi", index["a"][0].Name)
	assert.Equal(t, "Favourites", index["a"][1].Name)
	require.Len(t, index["b"], 1)
	assert.NotContains(t, index, "c")
}

func TestAvailableBooks(t *testing.T) {
	all := []entities.Book{
		{ID: "a", Title: "Dune"},
		{ID: "b", Title: "Hyperion"},
		{ID: "c", Title: "Middlemarch"},
	}
	members := []entities.Book{
		{ID: "b", Title: "Hyperion"},
	}

	available := AvailableBooks(all, members)
	require.Len(t, available, 2)
	assert.Equal(t, "a", available[0].ID)
	assert.Equal(t, "c", available[1].ID)
}

func TestAvailableBooks_NoMembers(t *testing.T) {
	all := []entities.Book{{ID: "a"}, {ID: "b"}}

	available := AvailableBooks(all, nil)
	assert.Len(t, available, 2)
}
