package http

import (
	"net/http"

	"github.com/caffeinepub/amala-organics-1/internal/catalog"
	"github.com/caffeinepub/amala-organics-1/pkg/httputil"
)

// CatalogHandler handles HTTP requests for catalog endpoints.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: catalog.All()})
}
