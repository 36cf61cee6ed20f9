package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/pricing"
	"github.com/threadlab/threadlab-backend-go/store"
)

type cartResponse struct {
	Items     []models.CartItem  `json:"items"`
	Totals    models.OrderTotals `json:"totals"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func toCartResponse(cart models.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{
		Items:     items,
		Totals:    pricing.ComputeTotals(cart.Items),
		UpdatedAt: cart.UpdatedAt,
	}
}

// GetCart returns the session's cart with computed totals.
func (h *Handler) GetCart(c echo.Context) error {
	cart, err := h.stores.Carts.Get(c.Request().Context(), sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

type addToCartRequest struct {
	ProductID int                  `json:"productId"`
	Color     string               `json:"color"`
	Size      string               `json:"size"`
	Quantity  int                  `json:"quantity"`
	Design    *models.CustomDesign `json:"design,omitempty"`
}

// AddToCart adds a product variant to the cart. Adding an already-present
// (product, color, size) combination increments that line's quantity.
// Unit price is taken from the catalog, never from the request.
func (h *Handler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	ctx := c.Request().Context()
	product, err := h.stores.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	color, ok := findColor(product, req.Color)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Color not available for this product"})
	}
	if !hasSize(product, req.Size) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Size not available for this product"})
	}

	cart, err := h.stores.Carts.Get(ctx, sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Color:     color,
		Size:      req.Size,
		UnitPrice: product.Price,
		Quantity:  req.Quantity,
		Design:    req.Design,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}
	cart.AddItem(item)

	if err := h.stores.Carts.Save(ctx, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

func findColor(p models.Product, name string) (models.ColorOption, bool) {
	for _, color := range p.Colors {
		if color.Name == name {
			return color, true
		}
	}
	return models.ColorOption{}, false
}

func hasSize(p models.Product, size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type updateQuantityRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemQuantity sets a line's quantity. Zero or below removes the
// line entirely.
func (h *Handler) UpdateCartItemQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx := c.Request().Context()
	cart, err := h.stores.Carts.Get(ctx, sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}

	if !cart.UpdateQuantity(req.ItemID, req.Quantity) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found in cart"})
	}

	if err := h.stores.Carts.Save(ctx, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveFromCart deletes a line by its ID.
func (h *Handler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	cart, err := h.stores.Carts.Get(ctx, sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}

	if !cart.RemoveItem(c.Param("itemId")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found in cart"})
	}

	if err := h.stores.Carts.Save(ctx, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(c echo.Context) error {
	if err := h.stores.Carts.Clear(c.Request().Context(), sessionID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear cart"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
}
