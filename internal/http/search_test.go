package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodshelf/internal/catalog"
)

func TestSearchController_Search(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	env.searcher.items = []catalog.Volume{
		{ID: "vol1", VolumeInfo: catalog.VolumeInfo{Title: "Dune"}},
		{ID: "vol2", VolumeInfo: catalog.VolumeInfo{Title: "Dune Messiah"}},
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search?q=dune", nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Items, 2)
	assert.Equal(t, 2, response.Total)
	assert.Empty(t, response.Error)
}

func TestSearchController_Search_BlankQuery(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search", nil)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Items)
}

func TestSearchController_Search_FailSoft(t *testing.T) {
	env, cleanup := setupTestRouter(t)
	defer cleanup()

	env.searcher.err = errors.New("catalog unreachable")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search?q=dune", nil)
	env.router.ServeHTTP(w, req)

	// Upstream failure still yields a 200 with an empty list
	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotNil(t, response.Items)
	assert.Empty(t, response.Items)
	assert.Contains(t, response.Error, "catalog unreachable")
}
