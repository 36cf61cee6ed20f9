package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/store"
)

// Handler owns the HTTP surface. Stores are injected so the same handlers
// run against the seeded in-memory bundle or MongoDB.
type Handler struct {
	stores *store.Stores
}

func New(stores *store.Stores) *Handler {
	return &Handler{stores: stores}
}

// sessionID returns the guest session attached by the session middleware,
// or "" when the request is anonymous.
func sessionID(c echo.Context) string {
	if v, ok := c.Get("sessionID").(string); ok {
		return v
	}
	return ""
}
