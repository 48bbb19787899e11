// Package metadata fills gaps in saved catalog books (description, page
// count, thumbnail, ISBNs) by re-fetching their volume from the remote
// catalog. Enrichment only ever fills missing fields; it never overwrites
// data the user can see.
package metadata

import (
	"context"
	"fmt"
	"log"

	"goodshelf/internal/catalog"
	"goodshelf/internal/entities"
)

// VolumeProvider fetches a single catalog volume by id.
type VolumeProvider interface {
	GetVolume(ctx context.Context, id string) (*catalog.Volume, error)
}

// BookUpdater defines the database operations enrichment needs.
type BookUpdater interface {
	GetBookByID(id string) (*entities.Book, error)
	GetBooksMissingMetadata() ([]entities.Book, error)
	UpdateBookMetadata(id string, fields BookUpdateFields) error
}

// BookUpdateFields contains the fields enrichment can fill. Nil fields
// are left untouched.
type BookUpdateFields struct {
	Description  *string
	PageCount    *int64
	ThumbnailURL *string
	ISBN10       *string
	ISBN13       *string
}

// EnrichmentResult reports what a single enrichment changed.
type EnrichmentResult struct {
	Book          *entities.Book `json:"book"`
	FieldsUpdated []string       `json:"fields_updated"`
}

// Enricher fetches catalog metadata for saved books.
type Enricher struct {
	provider VolumeProvider
	db       BookUpdater
}

// NewEnricher creates a new Enricher.
func NewEnricher(provider VolumeProvider, db BookUpdater) *Enricher {
	return &Enricher{provider: provider, db: db}
}

// EnrichBook fills the missing metadata fields of one book from its
// catalog volume. Manual entries have no catalog volume and are rejected.
func (e *Enricher) EnrichBook(ctx context.Context, id string) (*EnrichmentResult, error) {
	book, err := e.db.GetBookByID(id)
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", id, err)
	}
	if book.IsManual() {
		return nil, fmt.Errorf("book %s is a manual entry, nothing to enrich", id)
	}

	volume, err := e.provider.GetVolume(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch volume %s: %w", id, err)
	}

	fields, updated := missingFields(book, volume.Book())
	if len(updated) == 0 {
		return &EnrichmentResult{Book: book}, nil
	}

	if err := e.db.UpdateBookMetadata(id, fields); err != nil {
		return nil, fmt.Errorf("update book %s: %w", id, err)
	}

	enriched, err := e.db.GetBookByID(id)
	if err != nil {
		return nil, fmt.Errorf("reload book %s: %w", id, err)
	}
	return &EnrichmentResult{Book: enriched, FieldsUpdated: updated}, nil
}

// EnrichAll enriches every catalog book missing metadata. Individual
// failures are logged and skipped so one bad volume cannot stall the run.
func (e *Enricher) EnrichAll(ctx context.Context) (processed, updated int, err error) {
	books, err := e.db.GetBooksMissingMetadata()
	if err != nil {
		return 0, 0, fmt.Errorf("list books missing metadata: %w", err)
	}

	for _, book := range books {
		if ctx.Err() != nil {
			return processed, updated, ctx.Err()
		}
		result, err := e.EnrichBook(ctx, book.ID)
		if err != nil {
			log.Printf("Enrichment: skipping book %s (%s): %v", book.ID, book.Title, err)
			processed++
			continue
		}
		processed++
		if len(result.FieldsUpdated) > 0 {
			updated++
		}
	}
	return processed, updated, nil
}

// missingFields diffs the stored book against the freshly mapped catalog
// record, keeping only fields the stored book lacks.
func missingFields(stored *entities.Book, fresh entities.Book) (BookUpdateFields, []string) {
	var fields BookUpdateFields
	var updated []string

	if stored.Description == nil && fresh.Description != nil {
		fields.Description = fresh.Description
		updated = append(updated, "description")
	}
	if stored.PageCount == nil && fresh.PageCount != nil {
		fields.PageCount = fresh.PageCount
		updated = append(updated, "page_count")
	}
	if stored.ThumbnailURL == nil && fresh.ThumbnailURL != nil {
		fields.ThumbnailURL = fresh.ThumbnailURL
		updated = append(updated, "thumbnail_url")
	}
	if stored.ISBN10 == nil && fresh.ISBN10 != nil {
		fields.ISBN10 = fresh.ISBN10
		updated = append(updated, "isbn10")
	}
	if stored.ISBN13 == nil && fresh.ISBN13 != nil {
		fields.ISBN13 = fresh.ISBN13
		updated = append(updated, "isbn13")
	}

	return fields, updated
}
