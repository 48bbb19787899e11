package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"goodshelf/internal/library"
	"goodshelf/internal/utils"
)

// ShelfView is the API representation of a shelf. The color is exposed
// as "#AARRGGBB" text rather than the signed integer stored in the
// database.
type ShelfView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	BookCount   int64  `json:"book_count"`
}

// ShelvesController manages shelves and shelf memberships.
type ShelvesController struct {
	shelves ShelfStore
}

func NewShelvesController(shelves ShelfStore) *ShelvesController {
	return &ShelvesController{shelves: shelves}
}

// ListShelves returns all shelves with their membership counts,
// including shelves holding zero books.
// GET /api/shelves
func (sc *ShelvesController) ListShelves(c *gin.Context) {
	shelves, err := sc.shelves.GetAllShelves()
	if err != nil {
		respondInternalError(c, err, "list shelves")
		return
	}
	memberships, err := sc.shelves.GetMemberships()
	if err != nil {
		respondInternalError(c, err, "list memberships")
		return
	}

	counts := library.ShelfCounts(shelves, memberships)
	views := make([]ShelfView, 0, len(counts))
	for _, entry := range counts {
		views = append(views, ShelfView{
			ID:          entry.Shelf.ID,
			Name:        entry.Shelf.Name,
			Description: entry.Shelf.Description,
			Color:       utils.ARGBToHex(entry.Shelf.ColorHex),
			BookCount:   entry.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{"shelves": views, "total": len(views)})
}

// CreateShelf creates a shelf. Color accepts "#AARRGGBB" or "#RRGGBB"
// and defaults to opaque white when omitted.
// POST /api/shelves
func (sc *ShelvesController) CreateShelf(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	colorHex := int32(-1) // 0xFFFFFFFF, opaque white
	if req.Color != "" {
		parsed, err := utils.HexToARGB(req.Color)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		colorHex = parsed
	}

	shelf, err := sc.shelves.CreateShelf(req.Name, req.Description, colorHex)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	respondCreated(c, ShelfView{
		ID:          shelf.ID,
		Name:        shelf.Name,
		Description: shelf.Description,
		Color:       utils.ARGBToHex(shelf.ColorHex),
	})
}

// DeleteShelf removes a shelf and its memberships. The books on the
// shelf stay in the library.
// DELETE /api/shelves/:id
func (sc *ShelvesController) DeleteShelf(c *gin.Context) {
	id, ok := parseShelfIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.shelves.DeleteShelf(id); err != nil {
		respondInternalError(c, err, "delete shelf")
		return
	}
	respondSuccess(c, "shelf deleted")
}

// ShelfBooks lists the books on a shelf.
// GET /api/shelves/:id/books
func (sc *ShelvesController) ShelfBooks(c *gin.Context) {
	id, ok := parseShelfIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := sc.shelves.GetShelfByID(id); err == gorm.ErrRecordNotFound {
		respondNotFound(c, "shelf")
		return
	} else if err != nil {
		respondInternalError(c, err, "get shelf")
		return
	}

	books, err := sc.shelves.GetBooksInShelf(id)
	if err != nil {
		respondInternalError(c, err, "shelf books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "total": len(books)})
}

// AvailableBooks lists library books not yet on the shelf, as
// candidates for adding.
// GET /api/shelves/:id/available
func (sc *ShelvesController) AvailableBooks(c *gin.Context) {
	id, ok := parseShelfIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := sc.shelves.GetShelfByID(id); err == gorm.ErrRecordNotFound {
		respondNotFound(c, "shelf")
		return
	} else if err != nil {
		respondInternalError(c, err, "get shelf")
		return
	}

	books, err := sc.shelves.AvailableBooksForShelf(id)
	if err != nil {
		respondInternalError(c, err, "available books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "total": len(books)})
}

// AddBook puts a book on a shelf. Adding a book that is already a
// member is harmless.
// POST /api/shelves/:id/books
func (sc *ShelvesController) AddBook(c *gin.Context) {
	id, ok := parseShelfIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		BookID string `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book_id is required")
		return
	}

	if err := sc.shelves.AddBookToShelf(req.BookID, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			respondNotFound(c, "book or shelf")
			return
		}
		respondInternalError(c, err, "add book to shelf")
		return
	}
	respondSuccess(c, "book added to shelf")
}

// RemoveBook takes a book off a shelf. Removing a non-member is a
// no-op.
// DELETE /api/shelves/:id/books/:bookId
func (sc *ShelvesController) RemoveBook(c *gin.Context) {
	id, ok := parseShelfIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.shelves.RemoveBookFromShelf(c.Param("bookId"), id); err != nil {
		respondInternalError(c, err, "remove book from shelf")
		return
	}
	respondSuccess(c, "book removed from shelf")
}
