package catalog

import (
	"strings"

	"goodshelf/internal/entities"
)

// ISBN identifier types used by the volumes API.
const (
	IdentifierISBN10 = "ISBN_10"
	IdentifierISBN13 = "ISBN_13"
)

// SearchResult is the volume list response.
type SearchResult struct {
	Items      []Volume `json:"items"`
	TotalItems int      `json:"totalItems"`
}

// Volume is a single book record from the remote catalog.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the book details of a volume.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle,omitempty"`
	Authors             []string             `json:"authors,omitempty"`
	Description         string               `json:"description,omitempty"`
	PageCount           int64                `json:"pageCount,omitempty"`
	ImageLinks          *ImageLinks          `json:"imageLinks,omitempty"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers,omitempty"`
}

// ImageLinks holds cover image URLs.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

// IndustryIdentifier tags an ISBN with its type ("ISBN_10" or "ISBN_13").
type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// Identifier returns the identifier of the given type, or "".
func (v VolumeInfo) Identifier(identifierType string) string {
	for _, id := range v.IndustryIdentifiers {
		if id.Type == identifierType {
			return id.Identifier
		}
	}
	return ""
}

// Book maps a catalog volume to a library row. Saving from search always
// yields a PENDING book with no dates and no rating, regardless of the
// source record. Thumbnails are normalized to https before storage.
func (v Volume) Book() entities.Book {
	info := v.VolumeInfo
	status := entities.StatusPending
	book := entities.Book{
		ID:     v.ID,
		Title:  info.Title,
		Status: &status,
	}
	if info.Subtitle != "" {
		book.Subtitle = &info.Subtitle
	}
	if len(info.Authors) > 0 {
		authors := strings.Join(info.Authors, entities.AuthorSeparator)
		book.Authors = &authors
	}
	if info.Description != "" {
		book.Description = &info.Description
	}
	if info.PageCount > 0 {
		pages := info.PageCount
		book.PageCount = &pages
	}
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		thumbnail := normalizeThumbnailURL(info.ImageLinks.Thumbnail)
		book.ThumbnailURL = &thumbnail
	}
	if isbn10 := info.Identifier(IdentifierISBN10); isbn10 != "" {
		book.ISBN10 = &isbn10
	}
	if isbn13 := info.Identifier(IdentifierISBN13); isbn13 != "" {
		book.ISBN13 = &isbn13
	}
	return book
}

// normalizeThumbnailURL upgrades plain http URLs to https.
func normalizeThumbnailURL(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
