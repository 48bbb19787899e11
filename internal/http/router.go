package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore, cfg.ShelfStore, cfg.TaskClient)
	shelvesController := NewShelvesController(cfg.ShelfStore)
	searchController := NewSearchController(cfg.Catalog)
	statsController := NewStatsController(cfg.BookStore, cfg.GoalStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/api/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog search
	router.GET("/api/search", searchController.Search)

	// Library endpoints
	router.GET("/api/books", booksController.ListBooks)
	router.POST("/api/books", booksController.SaveFromCatalog)
	router.POST("/api/books/manual", booksController.CreateManual)
	router.GET("/api/books/:id", booksController.GetBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)
	router.POST("/api/books/:id/start", booksController.StartReading)
	router.POST("/api/books/:id/finish", booksController.FinishReading)
	router.PUT("/api/books/:id/rating", booksController.UpdateRating)
	router.POST("/api/books/:id/enrich", booksController.EnrichBook)

	// Shelf endpoints
	router.GET("/api/shelves", shelvesController.ListShelves)
	router.POST("/api/shelves", shelvesController.CreateShelf)
	router.DELETE("/api/shelves/:id", shelvesController.DeleteShelf)
	router.GET("/api/shelves/:id/books", shelvesController.ShelfBooks)
	router.GET("/api/shelves/:id/available", shelvesController.AvailableBooks)
	router.POST("/api/shelves/:id/books", shelvesController.AddBook)
	router.DELETE("/api/shelves/:id/books/:bookId", shelvesController.RemoveBook)

	// Statistics endpoints
	router.GET("/api/stats", statsController.GetStats)
	router.PUT("/api/stats/goal", statsController.UpdateGoal)

	return router
}
