package http

import (
	"context"

	"goodshelf/internal/catalog"
	"goodshelf/internal/entities"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller depends only on the operations it needs;
// the concrete implementations live under internal/database.

// BookStore defines database operations for the local book library.
type BookStore interface {
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id string) (*entities.Book, error)
	UpsertBook(book *entities.Book) error
	DeleteBook(id string) error
	UpdateBookStatus(id string, status entities.ReadingStatus, startDate, endDate *string) error
	UpdateBookRating(id string, rating *int64) error
}

// ShelfStore defines database operations for shelves and memberships.
type ShelfStore interface {
	GetAllShelves() ([]entities.Shelf, error)
	GetShelfByID(id int64) (*entities.Shelf, error)
	CreateShelf(name, description string, colorHex int32) (*entities.Shelf, error)
	DeleteShelf(id int64) error
	GetBooksInShelf(shelfID int64) ([]entities.Book, error)
	CountBooksInShelf(shelfID int64) (int64, error)
	AvailableBooksForShelf(shelfID int64) ([]entities.Book, error)
	AddBookToShelf(bookID string, shelfID int64) error
	RemoveBookFromShelf(bookID string, shelfID int64) error
	GetMemberships() ([]entities.Membership, error)
}

// GoalStore persists the yearly reading goal.
type GoalStore interface {
	GetYearlyGoal() (int, error)
	SetYearlyGoal(goal int) error
}

// CatalogSearcher is the external catalog collaborator.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]catalog.Volume, error)
}
