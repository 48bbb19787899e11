package books

import (
	"goodshelf/internal/entities"
	"goodshelf/internal/metadata"
)

// GetBooksMissingMetadata returns catalog-saved books missing any of the
// fields enrichment can fill. Manual entries are excluded.
func (r *Repository) GetBooksMissingMetadata() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("id NOT LIKE ?", entities.ManualIDPrefix+"%").
		Where("description IS NULL OR page_count IS NULL OR thumbnail_url IS NULL OR isbn13 IS NULL").
		Order("created_at ASC, id ASC").
		Find(&books).Error
	return books, err
}

// UpdateBookMetadata fills only the provided fields; nil fields are left
// untouched so enrichment never erases user-visible data.
func (r *Repository) UpdateBookMetadata(id string, fields metadata.BookUpdateFields) error {
	updates := map[string]any{}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.PageCount != nil {
		updates["page_count"] = *fields.PageCount
	}
	if fields.ThumbnailURL != nil {
		updates["thumbnail_url"] = *fields.ThumbnailURL
	}
	if fields.ISBN10 != nil {
		updates["isbn10"] = *fields.ISBN10
	}
	if fields.ISBN13 != nil {
		updates["isbn13"] = *fields.ISBN13
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(updates).Error
}
