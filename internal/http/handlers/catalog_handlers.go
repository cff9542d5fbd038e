package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/storefront-tracker/internal/catalog"
	"github.com/rogerio-castellano/storefront-tracker/internal/models"
	"github.com/rogerio-castellano/storefront-tracker/internal/repo"
)

// selectionFromQuery builds the shopper's selection from query parameters.
// toggle applies a column click on top of sort/order.
func selectionFromQuery(r *http.Request) catalog.Selection {
	q := r.URL.Query()
	sel := catalog.DefaultSelection()

	if c := q.Get("category"); c != "" {
		sel = sel.WithCategory(c)
	}
	if f := q.Get("sort"); f != "" {
		sel.Field = catalog.ParseSortField(f)
	}
	if o := q.Get("order"); o != "" {
		sel.Order = catalog.ParseSortOrder(o)
	}
	if t := q.Get("toggle"); t != "" {
		sel = sel.SortBy(catalog.ParseSortField(t))
	}
	return sel
}

// GetCatalog godoc
// @Summary Query the product catalog
// @Description Filters by category and sorts by one column. An unknown category or sort field yields an empty list.
// @Tags catalog
// @Produce json
// @Param category query string false "Category label, or All" default(All)
// @Param sort query string false "Sort field: id, title, type, price" default(id)
// @Param order query string false "asc or desc" default(asc)
// @Param toggle query string false "Column clicked: same field flips order, a new field sorts ascending"
// @Success 200 {object} CatalogResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/catalog [get]
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load catalog")
		return
	}

	sel := selectionFromQuery(r)
	result := catalog.Query(products, sel)

	s.writeJSON(w, http.StatusOK, CatalogResponse{
		Selection: toSelectionResponse(sel),
		Count:     len(result),
		Products:  toProductResponses(result),
	})
}

// GetCategories godoc
// @Summary List categories
// @Description The fixed category list, the categories that currently have products, and the picker options (All first).
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/catalog/categories [get]
func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load catalog")
		return
	}

	s.writeJSON(w, http.StatusOK, CategoriesResponse{
		All:     models.Categories(),
		Present: catalog.Categories(products),
		Options: catalog.CategoryOptions(products),
	})
}

// GetSummary godoc
// @Summary Catalog totals
// @Tags catalog
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/catalog/summary [get]
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load catalog")
		return
	}

	s.writeJSON(w, http.StatusOK, toSummaryResponse(catalog.Summarize(products)))
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := s.products.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrProductNotFound) {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load product", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load product")
		return
	}

	s.writeJSON(w, http.StatusOK, toProductResponse(product))
}
