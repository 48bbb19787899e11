package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"goodshelf/internal/catalog"
	"goodshelf/internal/entities"
	"goodshelf/internal/library"
	"goodshelf/internal/tasks"
)

const isoDate = "2006-01-02"

// BooksController serves the local library: listing with filters, saving
// from search, manual entry, status transitions and ratings.
type BooksController struct {
	books      BookStore
	shelves    ShelfStore
	taskClient *tasks.Client
}

func NewBooksController(books BookStore, shelves ShelfStore, taskClient *tasks.Client) *BooksController {
	return &BooksController{books: books, shelves: shelves, taskClient: taskClient}
}

// ListBooks returns the filtered library, each row annotated with its
// shelf tags. The whole collection is pulled fresh and filtered in
// memory on every request.
// GET /api/books?status=&q=&min_pages=&max_pages=&finished_after=&finished_before=
func (bc *BooksController) ListBooks(c *gin.Context) {
	filter, ok := parseBookFilter(c)
	if !ok {
		return
	}

	all, err := bc.books.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	visible := library.Apply(all, filter)

	shelves, err := bc.shelves.GetAllShelves()
	if err != nil {
		respondInternalError(c, err, "list shelves")
		return
	}
	memberships, err := bc.shelves.GetMemberships()
	if err != nil {
		respondInternalError(c, err, "list memberships")
		return
	}
	byBook := library.BooksToShelves(shelves, memberships)
	for i := range visible {
		visible[i].Shelves = byBook[visible[i].ID]
	}

	c.JSON(http.StatusOK, gin.H{"books": visible, "total": len(visible)})
}

// GetBook returns one book with its shelf memberships.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.books.GetBookByID(c.Param("id"))
	if err == gorm.ErrRecordNotFound {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// SaveFromCatalog saves a catalog search hit into the library. The
// stored row is always PENDING with no dates and no rating, whatever the
// payload carries.
// POST /api/books
func (bc *BooksController) SaveFromCatalog(c *gin.Context) {
	var volume catalog.Volume
	if err := c.ShouldBindJSON(&volume); err != nil {
		respondBadRequest(c, "invalid catalog volume payload")
		return
	}
	if volume.ID == "" || volume.VolumeInfo.Title == "" {
		respondBadRequest(c, "id and title are required")
		return
	}

	book := volume.Book()
	if err := bc.books.UpsertBook(&book); err != nil {
		respondInternalError(c, err, "save book")
		return
	}
	respondCreated(c, book)
}

// CreateManual stores a manually entered book with a generated id.
// POST /api/books/manual
func (bc *BooksController) CreateManual(c *gin.Context) {
	var req struct {
		Title        string `json:"title" binding:"required"`
		Authors      string `json:"authors"`
		Description  string `json:"description"`
		PageCount    int64  `json:"page_count"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}

	book := entities.NewManualBook(req.Title, req.Authors, req.Description, req.PageCount, req.ThumbnailURL, time.Now())
	if err := bc.books.UpsertBook(&book); err != nil {
		respondInternalError(c, err, "create manual book")
		return
	}
	respondCreated(c, book)
}

// DeleteBook removes a book and its shelf memberships permanently.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.books.DeleteBook(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}

// StartReading marks a book as in progress from today, clearing any
// previous end date.
// POST /api/books/:id/start
func (bc *BooksController) StartReading(c *gin.Context) {
	id := c.Param("id")
	if _, err := bc.books.GetBookByID(id); err == gorm.ErrRecordNotFound {
		respondNotFound(c, "book")
		return
	} else if err != nil {
		respondInternalError(c, err, "start reading")
		return
	}

	today := time.Now().Format(isoDate)
	if err := bc.books.UpdateBookStatus(id, entities.StatusInProgress, &today, nil); err != nil {
		respondInternalError(c, err, "start reading")
		return
	}
	respondSuccess(c, "reading started")
}

// FinishReading completes a book today, keeping the stored start date,
// then applies the rating.
// POST /api/books/:id/finish
func (bc *BooksController) FinishReading(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Rating *int64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "rating is required")
		return
	}
	if *req.Rating < 0 || *req.Rating > 10 {
		respondBadRequest(c, "rating must be between 0 and 10")
		return
	}

	book, err := bc.books.GetBookByID(id)
	if err == gorm.ErrRecordNotFound {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "finish reading")
		return
	}

	today := time.Now().Format(isoDate)
	if err := bc.books.UpdateBookStatus(id, entities.StatusCompleted, book.StartDate, &today); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := bc.books.UpdateBookRating(id, req.Rating); err != nil {
		respondInternalError(c, err, "finish reading")
		return
	}
	respondSuccess(c, "reading finished")
}

// UpdateRating changes only the rating.
// PUT /api/books/:id/rating
func (bc *BooksController) UpdateRating(c *gin.Context) {
	var req struct {
		Rating *int64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "rating is required")
		return
	}
	if *req.Rating < 0 || *req.Rating > 10 {
		respondBadRequest(c, "rating must be between 0 and 10")
		return
	}

	if err := bc.books.UpdateBookRating(c.Param("id"), req.Rating); err != nil {
		respondInternalError(c, err, "update rating")
		return
	}
	respondSuccess(c, "rating updated")
}

// EnrichBook queues a background metadata refresh for one book.
// POST /api/books/:id/enrich
func (bc *BooksController) EnrichBook(c *gin.Context) {
	if bc.taskClient == nil {
		respondBadRequest(c, "task queue is disabled")
		return
	}

	id := c.Param("id")
	book, err := bc.books.GetBookByID(id)
	if err == gorm.ErrRecordNotFound {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "enrich book")
		return
	}
	if book.IsManual() {
		respondBadRequest(c, "manual entries have no catalog record")
		return
	}

	if _, err := bc.taskClient.Add(tasks.EnrichBookTask{BookID: id}).Save(); err != nil {
		respondInternalError(c, err, "enqueue enrichment")
		return
	}
	respondAccepted(c, "enrichment queued", gin.H{"book_id": id})
}

// parseBookFilter builds the library filter from query parameters.
// Responds with a 400 error and returns false on bad input.
func parseBookFilter(c *gin.Context) (library.Filter, bool) {
	var filter library.Filter

	if statusStr := c.Query("status"); statusStr != "" {
		status := entities.ReadingStatus(statusStr)
		switch status {
		case entities.StatusPending, entities.StatusInProgress, entities.StatusCompleted:
			filter.Status = &status
		default:
			respondBadRequest(c, "invalid status: "+statusStr)
			return filter, false
		}
	}

	filter.SearchText = c.Query("q")

	if minStr := c.Query("min_pages"); minStr != "" {
		min, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil {
			respondBadRequest(c, "invalid min_pages")
			return filter, false
		}
		filter.MinPages = &min
	}
	if maxStr := c.Query("max_pages"); maxStr != "" {
		max, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			respondBadRequest(c, "invalid max_pages")
			return filter, false
		}
		filter.MaxPages = &max
	}

	filter.StartDateBound = c.Query("finished_after")
	filter.EndDateBound = c.Query("finished_before")

	return filter, true
}
