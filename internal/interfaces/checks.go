package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"goodshelf/internal/catalog"
	"goodshelf/internal/database/books"
	"goodshelf/internal/database/settings"
	"goodshelf/internal/database/shelves"
	"goodshelf/internal/http"
	"goodshelf/internal/metadata"
	"goodshelf/internal/scheduler"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)

// ShelfStore implementations
var _ http.ShelfStore = (*shelves.Repository)(nil)

// GoalStore implementations
var _ http.GoalStore = (*settings.Repository)(nil)

// =============================================================================
// External Services
// =============================================================================

// CatalogSearcher implementations
var _ http.CatalogSearcher = (*catalog.Client)(nil)

// VolumeProvider implementations
var _ metadata.VolumeProvider = (*catalog.Client)(nil)

// =============================================================================
// Enrichment Pipeline
// =============================================================================

// BookUpdater implementations
var _ metadata.BookUpdater = (*books.Repository)(nil)

// SyncRecorder implementations
var _ scheduler.SyncRecorder = (*settings.Repository)(nil)
