package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/store"
)

// shareTTL is how long a design share link stays valid.
const shareTTL = 7 * 24 * time.Hour

// GetDesigns lists the session's saved designs, newest first.
func (h *Handler) GetDesigns(c echo.Context) error {
	designs, err := h.stores.Designs.GetBySession(c.Request().Context(), sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch designs"})
	}
	if designs == nil {
		designs = []models.SavedDesign{}
	}
	return c.JSON(http.StatusOK, designs)
}

type saveDesignRequest struct {
	Name      string              `json:"name"`
	ProductID int                 `json:"productId"`
	Color     models.ColorOption  `json:"color"`
	Size      string              `json:"size"`
	Design    models.CustomDesign `json:"design"`
}

// SaveDesign stores a studio design for the session.
func (h *Handler) SaveDesign(c echo.Context) error {
	var req saveDesignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Design name is required"})
	}

	ctx := c.Request().Context()
	if _, err := h.stores.Products.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	design := models.SavedDesign{
		ID:        uuid.NewString(),
		SessionID: sessionID(c),
		Name:      req.Name,
		ProductID: req.ProductID,
		Color:     req.Color,
		Size:      req.Size,
		Design:    req.Design,
		CreatedAt: time.Now(),
	}

	if err := h.stores.Designs.Save(ctx, design); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save design"})
	}
	return c.JSON(http.StatusCreated, design)
}

// GetDesign returns one of the session's designs.
func (h *Handler) GetDesign(c echo.Context) error {
	design, err := h.stores.Designs.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil || design.SessionID != sessionID(c) {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch design"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Design not found"})
	}
	return c.JSON(http.StatusOK, design)
}

// DeleteDesign removes one of the session's designs.
func (h *Handler) DeleteDesign(c echo.Context) error {
	err := h.stores.Designs.Delete(c.Request().Context(), sessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Design not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete design"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Design deleted"})
}

// ShareDesign creates an expiring public link for one of the session's
// designs.
func (h *Handler) ShareDesign(c echo.Context) error {
	ctx := c.Request().Context()
	design, err := h.stores.Designs.GetByID(ctx, c.Param("id"))
	if err != nil || design.SessionID != sessionID(c) {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch design"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Design not found"})
	}

	now := time.Now()
	share := models.DesignShare{
		Token:     uuid.NewString(),
		DesignID:  design.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(shareTTL),
	}
	if err := h.stores.Designs.CreateShare(ctx, share); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create share"})
	}
	return c.JSON(http.StatusCreated, share)
}

// GetSharedDesign resolves a public share token. Expired shares read as
// not found.
func (h *Handler) GetSharedDesign(c echo.Context) error {
	ctx := c.Request().Context()
	share, err := h.stores.Designs.GetShare(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Share not found or expired"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve share"})
	}

	design, err := h.stores.Designs.GetByID(ctx, share.DesignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Design not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch design"})
	}
	return c.JSON(http.StatusOK, design)
}
