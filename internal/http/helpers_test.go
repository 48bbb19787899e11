package http

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"goodshelf/internal/catalog"
	"goodshelf/internal/database"
	"goodshelf/internal/database/books"
	"goodshelf/internal/database/settings"
	"goodshelf/internal/database/shelves"
)

// stubSearcher is a canned CatalogSearcher for handler tests.
type stubSearcher struct {
	items []catalog.Volume
	err   error
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]catalog.Volume, error) {
	return s.items, s.err
}

type testEnv struct {
	db       *database.Database
	books    *books.Repository
	shelves  *shelves.Repository
	settings *settings.Repository
	searcher *stubSearcher
	router   *gin.Engine
}

// setupTestRouter wires a full router against a throwaway database. The
// task queue is left disabled.
func setupTestRouter(t *testing.T) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	env := &testEnv{
		db:       db,
		books:    books.NewRepository(db.DB),
		shelves:  shelves.NewRepository(db.DB),
		settings: settings.NewRepository(db.DB),
		searcher: &stubSearcher{},
	}
	env.router = NewRouter(RouterConfig{
		BookStore:  env.books,
		ShelfStore: env.shelves,
		GoalStore:  env.settings,
		Catalog:    env.searcher,
		Database:   db,
		Version:    "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}
