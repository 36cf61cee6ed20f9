package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/catalog"
	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/store"
)

// GetProducts lists the catalog filtered by the query-string search text,
// facet selection and price bounds, optionally sorted.
func (h *Handler) GetProducts(c echo.Context) error {
	products, err := h.stores.Products.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	selection := parseFilterSelection(c)
	filtered := catalog.FilterProducts(products, c.QueryParam("q"), selection)
	sorted := catalog.SortProducts(filtered, c.QueryParam("sort"))

	return c.JSON(http.StatusOK, sorted)
}

// parseFilterSelection reads facet query params. Malformed values are
// dropped rather than rejected; a missing facet is no constraint.
func parseFilterSelection(c echo.Context) models.FilterSelection {
	sel := models.FilterSelection{
		Styles:           csvParam(c, "styles"),
		Colors:           csvParam(c, "colors"),
		Sizes:            csvParam(c, "sizes"),
		DesignTypes:      csvParam(c, "designTypes"),
		ColorSchemes:     csvParam(c, "colorSchemes"),
		ComplexityLevels: csvParam(c, "complexity"),
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		sel.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		sel.MaxPrice = &v
	}
	return sel
}

func csvParam(c echo.Context, name string) []string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	product, err := h.stores.Products.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

// GetFilters returns the facet values and price range present in the
// catalog, for the filter sidebar.
func (h *Handler) GetFilters(c echo.Context) error {
	products, err := h.stores.Products.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch filters"})
	}
	return c.JSON(http.StatusOK, catalog.BuildFilterMetadata(products))
}

// GetSuggestions serves autocomplete for the search box.
func (h *Handler) GetSuggestions(c echo.Context) error {
	products, err := h.stores.Products.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch suggestions"})
	}
	suggestions := catalog.MatchSuggestions(catalog.BuildSuggestions(products), c.QueryParam("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	return c.JSON(http.StatusOK, suggestions)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if product.Name == "" || product.Style == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and style are required"})
	}
	if product.Price <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price must be positive"})
	}

	created, err := h.stores.Products.Create(c.Request().Context(), product)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	product.ID = id

	if err := h.stores.Products.Update(c.Request().Context(), product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	if err := h.stores.Products.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}

// GetRecentlyViewed returns the session's recently viewed products,
// most recent first.
func (h *Handler) GetRecentlyViewed(c echo.Context) error {
	viewed, err := h.stores.RecentlyViewed.Get(c.Request().Context(), sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch recently viewed"})
	}
	if viewed == nil {
		viewed = []models.ProductSummary{}
	}
	return c.JSON(http.StatusOK, viewed)
}

// AddRecentlyViewed records a product view for the session.
func (h *Handler) AddRecentlyViewed(c echo.Context) error {
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	product, err := h.stores.Products.GetByID(c.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	if err := h.stores.RecentlyViewed.Add(c.Request().Context(), sessionID(c), product.Summary()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to record view"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Recorded"})
}
