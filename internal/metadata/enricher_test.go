package metadata

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodshelf/internal/catalog"
	"goodshelf/internal/entities"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

// stubProvider serves canned volumes by id.
type stubProvider struct {
	volumes map[string]*catalog.Volume
	calls   int
}

func (p *stubProvider) GetVolume(_ context.Context, id string) (*catalog.Volume, error) {
	p.calls++
	volume, ok := p.volumes[id]
	if !ok {
		return nil, fmt.Errorf("volume not found: %s", id)
	}
	return volume, nil
}

// stubUpdater is an in-memory BookUpdater.
type stubUpdater struct {
	books map[string]*entities.Book
}

func newStubUpdater(books ...*entities.Book) *stubUpdater {
	m := make(map[string]*entities.Book)
	for _, b := range books {
		m[b.ID] = b
	}
	return &stubUpdater{books: m}
}

func (u *stubUpdater) GetBookByID(id string) (*entities.Book, error) {
	book, ok := u.books[id]
	if !ok {
		return nil, fmt.Errorf("book not found: %s", id)
	}
	clone := *book
	return &clone, nil
}

func (u *stubUpdater) GetBooksMissingMetadata() ([]entities.Book, error) {
	var result []entities.Book
	for _, book := range u.books {
		if book.IsManual() {
			continue
		}
		if book.Description == nil || book.PageCount == nil || book.ThumbnailURL == nil || book.ISBN13 == nil {
			result = append(result, *book)
		}
	}
	return result, nil
}

func (u *stubUpdater) UpdateBookMetadata(id string, fields BookUpdateFields) error {
	book, ok := u.books[id]
	if !ok {
		return fmt.Errorf("book not found: %s", id)
	}
	if fields.Description != nil {
		book.Description = fields.Description
	}
	if fields.PageCount != nil {
		book.PageCount = fields.PageCount
	}
	if fields.ThumbnailURL != nil {
		book.ThumbnailURL = fields.ThumbnailURL
	}
	if fields.ISBN10 != nil {
		book.ISBN10 = fields.ISBN10
	}
	if fields.ISBN13 != nil {
		book.ISBN13 = fields.ISBN13
	}
	return nil
}

func fullVolume(id string) *catalog.Volume {
	return &catalog.Volume{
		ID: id,
		VolumeInfo: catalog.VolumeInfo{
			Title:       "Dune",
			Description: "A desert planet epic",
			PageCount:   412,
			ImageLinks:  &catalog.ImageLinks{Thumbnail: "http://books.example.com/cover.jpg"},
			IndustryIdentifiers: []catalog.IndustryIdentifier{
				{Type: catalog.IdentifierISBN10, Identifier: "0441013597"},
				{Type: catalog.IdentifierISBN13, Identifier: "9780441013593"},
			},
		},
	}
}

func TestEnricher_EnrichBook_FillsMissingFields(t *testing.T) {
	updater := newStubUpdater(&entities.Book{ID: "vol1", Title: "Dune"})
	provider := &stubProvider{volumes: map[string]*catalog.Volume{"vol1": fullVolume("vol1")}}
	enricher := NewEnricher(provider, updater)

	result, err := enricher.EnrichBook(context.Background(), "vol1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"description", "page_count", "thumbnail_url", "isbn10", "isbn13"}, result.FieldsUpdated)

	require.NotNil(t, result.Book.Description)
	assert.Equal(t, "A desert planet epic", *result.Book.Description)
	assert.EqualValues(t, 412, *result.Book.PageCount)
	// Thumbnail comes back normalized to https
	assert.Equal(t, "https://books.example.com/cover.jpg", *result.Book.ThumbnailURL)
}

func TestEnricher_EnrichBook_NeverOverwrites(t *testing.T) {
	updater := newStubUpdater(&entities.Book{
		ID:          "vol1",
		Title:       "Dune",
		Description: strPtr("My own notes on this one"),
		PageCount:   int64Ptr(500),
	})
	provider := &stubProvider{volumes: map[string]*catalog.Volume{"vol1": fullVolume("vol1")}}
	enricher := NewEnricher(provider, updater)

	result, err := enricher.EnrichBook(context.Background(), "vol1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"thumbnail_url", "isbn10", "isbn13"}, result.FieldsUpdated)
	assert.Equal(t, "My own notes on this one", *result.Book.Description)
	assert.EqualValues(t, 500, *result.Book.PageCount)
}

func TestEnricher_EnrichBook_NothingMissing(t *testing.T) {
	updater := newStubUpdater(&entities.Book{
		ID:           "vol1",
		Title:        "Dune",
		Description:  strPtr("desc"),
		PageCount:    int64Ptr(412),
		ThumbnailURL: strPtr("https://example.com/c.jpg"),
		ISBN10:       strPtr("0441013597"),
		ISBN13:       strPtr("9780441013593"),
	})
	provider := &stubProvider{volumes: map[string]*catalog.Volume{"vol1": fullVolume("vol1")}}
	enricher := NewEnricher(provider, updater)

	result, err := enricher.EnrichBook(context.Background(), "vol1")
	require.NoError(t, err)
	assert.Empty(t, result.FieldsUpdated)
}

func TestEnricher_EnrichBook_RejectsManualEntries(t *testing.T) {
	updater := newStubUpdater(&entities.Book{ID: "manual_1700000000", Title: "Hand Entered"})
	provider := &stubProvider{}
	enricher := NewEnricher(provider, updater)

	_, err := enricher.EnrichBook(context.Background(), "manual_1700000000")
	assert.Error(t, err)
	assert.Zero(t, provider.calls)
}

func TestEnricher_EnrichAll_SkipsFailures(t *testing.T) {
	updater := newStubUpdater(
		&entities.Book{ID: "vol1", Title: "Dune"},
		&entities.Book{ID: "vol2", Title: "Unknown"},
	)
	provider := &stubProvider{volumes: map[string]*catalog.Volume{"vol1": fullVolume("vol1")}}
	enricher := NewEnricher(provider, updater)

	processed, updated, err := enricher.EnrichAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, updated)
}

func TestEnricher_EnrichAll_RespectsContext(t *testing.T) {
	updater := newStubUpdater(&entities.Book{ID: "vol1", Title: "Dune"})
	provider := &stubProvider{volumes: map[string]*catalog.Volume{"vol1": fullVolume("vol1")}}
	enricher := NewEnricher(provider, updater)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := enricher.EnrichAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
