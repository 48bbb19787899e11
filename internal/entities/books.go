package entities

import (
	"fmt"
	"strings"
	"time"
)

type ReadingStatus string

const (
	StatusPending    ReadingStatus = "PENDING"
	StatusInProgress ReadingStatus = "IN_PROGRESS"
	StatusCompleted  ReadingStatus = "COMPLETED"
)

// AuthorSeparator joins multiple author names into the Authors column.
// Splitting back must use this exact separator.
const AuthorSeparator = ", "

// ManualIDPrefix marks books entered by hand rather than saved from the
// remote catalog. Manual books are skipped by metadata enrichment.
const ManualIDPrefix = "manual_"

// DefaultManualDescription is used when a manual entry leaves the
// description blank.
const DefaultManualDescription = "Added manually"

// Book is a catalog entry the user has chosen to track. The ID is either
// the remote catalog's volume identifier or a locally generated
// "manual_<timestamp>" token. Rows are deleted permanently (no soft delete);
// deleting a book removes its shelf memberships.
type Book struct {
	ID           string         `gorm:"primaryKey;size:128" json:"id"`
	Title        string         `gorm:"index;size:512" json:"title"`
	Subtitle     *string        `gorm:"size:512" json:"subtitle,omitempty"`
	Authors      *string        `gorm:"index;size:512" json:"authors,omitempty"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	PageCount    *int64         `json:"page_count,omitempty"`
	ThumbnailURL *string        `gorm:"size:2048" json:"thumbnail_url,omitempty"`
	ISBN10       *string        `gorm:"size:20" json:"isbn10,omitempty"`
	ISBN13       *string        `gorm:"size:20" json:"isbn13,omitempty"`
	Status       *ReadingStatus `gorm:"index;size:20" json:"status,omitempty"`
	StartDate    *string        `gorm:"size:10" json:"start_date,omitempty"` // ISO YYYY-MM-DD
	EndDate      *string        `gorm:"size:10" json:"end_date,omitempty"`   // ISO YYYY-MM-DD
	Rating       *int64         `json:"rating,omitempty"`                    // 0-10, meaningful when completed
	Notes        *string        `gorm:"type:text" json:"notes,omitempty"`
	Shelves      []Shelf        `gorm:"many2many:book_shelf;" json:"shelves,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// EffectiveStatus treats a NULL status as PENDING.
func (b Book) EffectiveStatus() ReadingStatus {
	if b.Status == nil {
		return StatusPending
	}
	return *b.Status
}

// AuthorList splits the joined Authors column into individual names.
func (b Book) AuthorList() []string {
	if b.Authors == nil || *b.Authors == "" {
		return nil
	}
	return strings.Split(*b.Authors, AuthorSeparator)
}

// PagesOrZero treats a NULL page count as 0.
func (b Book) PagesOrZero() int64 {
	if b.PageCount == nil {
		return 0
	}
	return *b.PageCount
}

// IsManual reports whether the book was entered by hand.
func (b Book) IsManual() bool {
	return strings.HasPrefix(b.ID, ManualIDPrefix)
}

// NewManualBook builds a manually entered book with a generated id and
// PENDING status. A blank description gets DefaultManualDescription.
func NewManualBook(title, authors, description string, pageCount int64, thumbnailURL string, now time.Time) Book {
	status := StatusPending
	if description == "" {
		description = DefaultManualDescription
	}
	book := Book{
		ID:          fmt.Sprintf("%s%d", ManualIDPrefix, now.Unix()),
		Title:       title,
		Description: &description,
		Status:      &status,
	}
	if authors != "" {
		book.Authors = &authors
	}
	if pageCount > 0 {
		book.PageCount = &pageCount
	}
	if thumbnailURL != "" {
		book.ThumbnailURL = &thumbnailURL
	}
	return book
}

// Shelf is a user-defined named collection of books. Deleting a shelf
// removes its memberships but never the member books.
type Shelf struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"index;size:100" json:"name"`
	Description string    `gorm:"size:512" json:"description,omitempty"`
	ColorHex    int32     `json:"color_hex"` // signed 32-bit ARGB
	Books       []Book    `gorm:"many2many:book_shelf;" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Shelf) TableName() string {
	return "shelves"
}

// Membership is one row of the book_shelf join table. A book appears at
// most once per shelf.
type Membership struct {
	BookID  string `gorm:"column:book_id" json:"book_id"`
	ShelfID int64  `gorm:"column:shelf_id" json:"shelf_id"`
}

func (Membership) TableName() string {
	return "book_shelf"
}
