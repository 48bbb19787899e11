package http

import (
	"goodshelf/internal/database"
	"goodshelf/internal/tasks"
)

// RouterConfig contains all dependencies needed to create the HTTP
// router. This replaces a long parameter list in NewRouter.
type RouterConfig struct {
	// Core stores
	BookStore  BookStore
	ShelfStore ShelfStore
	GoalStore  GoalStore

	// Remote catalog
	Catalog CatalogSearcher

	// Health check dependency
	Database *database.Database

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
