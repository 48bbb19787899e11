// Package shelves provides database operations for shelf management and
// book-shelf memberships.
//
// This package implements the ShelfStore interface defined in internal/http:
//
//	var _ http.ShelfStore = (*Repository)(nil)
package shelves

import (
	"fmt"

	"gorm.io/gorm"

	"goodshelf/internal/entities"
)

// Repository handles all shelf and membership database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new shelves repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllShelves retrieves every shelf in creation order.
func (r *Repository) GetAllShelves() ([]entities.Shelf, error) {
	var shelves []entities.Shelf
	err := r.db.Order("id ASC").Find(&shelves).Error
	return shelves, err
}

// GetShelfByID retrieves a shelf by ID.
func (r *Repository) GetShelfByID(id int64) (*entities.Shelf, error) {
	var shelf entities.Shelf
	err := r.db.First(&shelf, id).Error
	if err != nil {
		return nil, err
	}
	return &shelf, nil
}

// CreateShelf creates a new shelf with an auto-assigned id.
func (r *Repository) CreateShelf(name, description string, colorHex int32) (*entities.Shelf, error) {
	if name == "" {
		return nil, fmt.Errorf("shelf name is required")
	}
	shelf := &entities.Shelf{
		Name:        name,
		Description: description,
		ColorHex:    colorHex,
	}
	if err := r.db.Create(shelf).Error; err != nil {
		return nil, err
	}
	return shelf, nil
}

// DeleteShelf removes the shelf and its memberships. Member books are
// never deleted. Deleting an unknown id is a no-op.
func (r *Repository) DeleteShelf(id int64) error {
	var shelf entities.Shelf
	err := r.db.First(&shelf, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.db.Model(&shelf).Association("Books").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&shelf).Error
}

// GetBooksInShelf retrieves the member books of a shelf in stable
// insertion order.
func (r *Repository) GetBooksInShelf(shelfID int64) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("id IN (SELECT book_id FROM book_shelf WHERE shelf_id = ?)", shelfID).
		Order("created_at ASC, id ASC").
		Find(&books).Error
	return books, err
}

// CountBooksInShelf counts members without materializing the book rows.
func (r *Repository) CountBooksInShelf(shelfID int64) (int64, error) {
	var count int64
	err := r.db.Table("book_shelf").Where("shelf_id = ?", shelfID).Count(&count).Error
	return count, err
}

// AvailableBooksForShelf returns all books that are not members of the
// given shelf, in stable insertion order.
func (r *Repository) AvailableBooksForShelf(shelfID int64) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("id NOT IN (SELECT book_id FROM book_shelf WHERE shelf_id = ?)", shelfID).
		Order("created_at ASC, id ASC").
		Find(&books).Error
	return books, err
}

// AddBookToShelf associates a book with a shelf. Adding an existing
// membership is a no-op; referencing a missing book or shelf is an error.
func (r *Repository) AddBookToShelf(bookID string, shelfID int64) error {
	var book entities.Book
	if err := r.db.First(&book, "id = ?", bookID).Error; err != nil {
		return err
	}
	var shelf entities.Shelf
	if err := r.db.First(&shelf, shelfID).Error; err != nil {
		return err
	}
	return r.db.Model(&shelf).Association("Books").Append(&book)
}

// RemoveBookFromShelf removes a membership. Removing an absent membership
// is a no-op.
func (r *Repository) RemoveBookFromShelf(bookID string, shelfID int64) error {
	var shelf entities.Shelf
	err := r.db.First(&shelf, shelfID).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.Model(&shelf).Association("Books").Delete(&entities.Book{ID: bookID})
}

// GetMemberships returns the raw join rows, used to build the per-book
// shelf index in a single pass.
func (r *Repository) GetMemberships() ([]entities.Membership, error) {
	var rows []entities.Membership
	err := r.db.Table("book_shelf").Select("book_id, shelf_id").Scan(&rows).Error
	return rows, err
}
