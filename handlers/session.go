package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/utils"
)

// CreateSession mints an anonymous guest session token. The session ID is
// the identity behind carts, helpful votes and saved designs.
func (h *Handler) CreateSession(c echo.Context) error {
	id := uuid.NewString()
	token, err := utils.GenerateSessionToken(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create session"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"sessionId": id,
		"token":     token,
	})
}
