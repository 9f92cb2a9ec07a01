package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schappie/backend/internal/domain"
	"github.com/schappie/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	search  *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, search *usecase.SearchService) *Handler {
	return &Handler{
		catalog: catalog,
		search:  search,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "schappie-backend",
		"version": "1.0.0",
	})
}

// IngestCatalog accepts raw store payloads, normalizes them and replaces
// the cached catalog.
func (h *Handler) IngestCatalog(c *gin.Context) {
	var raw domain.RawCatalog
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid catalog payload: " + err.Error()})
		return
	}

	counts, err := h.catalog.Ingest(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "catalog payload is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store catalog"})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"stores": counts,
		"total":  total,
	})
}

// Search ranks the cached catalog against a free-text query.
//
// Query parameters: q (required), category (optional universal category,
// hard filter), sort (optional: relevance, price, ppu, alpha, promo).
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	var category domain.Category
	if raw := c.Query("category"); raw != "" {
		category = domain.Category(raw)
		if !domain.IsUniversalCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + raw})
			return
		}
	}

	sortBy := domain.ParseSortMode(c.Query("sort"))

	catalog, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not loaded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	results := h.search.Search(catalog, query, category, sortBy)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// Categories lists the universal category slugs in shelf order.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": domain.UniversalCategories,
	})
}
