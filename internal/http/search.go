package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goodshelf/internal/catalog"
)

// SearchResponse carries catalog search results. When the catalog is
// unreachable the handler still returns 200 with an empty item list and
// the error text, so a flaky upstream never breaks the client.
type SearchResponse struct {
	Items []catalog.Volume `json:"items"`
	Total int              `json:"total"`
	Error string           `json:"error,omitempty"`
}

// SearchController proxies full-text queries to the remote catalog.
type SearchController struct {
	catalog CatalogSearcher
}

func NewSearchController(catalog CatalogSearcher) *SearchController {
	return &SearchController{catalog: catalog}
}

// Search runs a catalog query. A blank query returns an empty result
// without calling out.
// GET /api/search?q=
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, SearchResponse{Items: []catalog.Volume{}})
		return
	}

	items, err := sc.catalog.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("Catalog search failed for %q: %v", query, err)
		c.JSON(http.StatusOK, SearchResponse{Items: []catalog.Volume{}, Error: err.Error()})
		return
	}
	if items == nil {
		items = []catalog.Volume{}
	}

	c.JSON(http.StatusOK, SearchResponse{Items: items, Total: len(items)})
}
