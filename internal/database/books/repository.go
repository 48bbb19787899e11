// Package books provides database operations for the local book library.
//
// This package implements the BookStore interface defined in internal/http
// and the metadata.BookUpdater interface used by enrichment:
//
//	var _ http.BookStore = (*Repository)(nil)
//	var _ metadata.BookUpdater = (*Repository)(nil)
package books

import (
	"fmt"

	"gorm.io/gorm"

	"goodshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks returns every stored book in stable insertion order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("created_at ASC, id ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book with its shelf memberships.
func (r *Repository) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Shelves").First(&book, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// UpsertBook inserts the book, or overwrites all fields when the id
// already exists. Shelf memberships are never touched here.
func (r *Repository) UpsertBook(book *entities.Book) error {
	var existing entities.Book
	result := r.db.Where("id = ?", book.ID).First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		return r.db.Omit("Shelves").Create(book).Error
	}
	if result.Error != nil {
		return result.Error
	}
	book.CreatedAt = existing.CreatedAt
	return r.db.Omit("Shelves").Save(book).Error
}

// DeleteBook removes the book and its shelf memberships. Deleting an
// unknown id is a no-op, not an error.
func (r *Repository) DeleteBook(id string) error {
	var book entities.Book
	err := r.db.First(&book, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.db.Model(&book).Association("Shelves").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&book).Error
}

// UpdateBookStatus partially updates exactly status, start date and end
// date, leaving rating and notes untouched. Nil dates are written as NULL.
// When both dates are present the start date must not be after the end
// date. Updating an unknown id is a no-op.
func (r *Repository) UpdateBookStatus(id string, status entities.ReadingStatus, startDate, endDate *string) error {
	if startDate != nil && endDate != nil && *startDate > *endDate {
		return fmt.Errorf("start date %s is after end date %s", *startDate, *endDate)
	}
	updates := map[string]any{
		"status":     string(status),
		"start_date": nullableString(startDate),
		"end_date":   nullableString(endDate),
	}
	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateBookRating partially updates the rating only.
func (r *Repository) UpdateBookRating(id string, rating *int64) error {
	var value any
	if rating != nil {
		value = *rating
	}
	return r.db.Model(&entities.Book{}).Where("id = ?", id).
		Update("rating", value).Error
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
