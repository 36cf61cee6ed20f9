package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/threadlab/threadlab-backend-go/handlers"
	customMiddleware "github.com/threadlab/threadlab-backend-go/middleware"
)

// SetupRoutes wires the HTTP surface onto the echo instance.
func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	// Public routes
	e.POST("/api/session", h.CreateSession)

	e.GET("/api/products", h.GetProducts)
	e.GET("/api/products/:id", h.GetProduct)
	e.GET("/api/filters", h.GetFilters)
	e.GET("/api/suggestions", h.GetSuggestions)

	// Review reads are public; a presented session gets its votes annotated.
	e.GET("/api/products/:id/reviews", h.GetProductReviews, customMiddleware.OptionalSession())

	// Catalog write capabilities
	e.POST("/api/products", h.CreateProduct)
	e.PUT("/api/products/:id", h.UpdateProduct)
	e.DELETE("/api/products/:id", h.DeleteProduct)
	e.DELETE("/api/reviews/:id", h.DeleteReview)

	// Fulfillment mutates order status from outside the storefront flow.
	e.PUT("/api/orders/:id/status", h.UpdateOrderStatus)

	// Shared designs resolve without a session.
	e.GET("/api/designs/shared/:token", h.GetSharedDesign)

	// Session-scoped API routes
	api := e.Group("/api")
	api.Use(customMiddleware.SessionMiddleware())

	// Review writes
	api.POST("/products/:id/reviews", h.CreateReview)
	api.POST("/reviews/:id/vote", h.VoteHelpful)

	// Cart routes
	api.GET("/cart", h.GetCart)
	api.POST("/cart", h.AddToCart)
	api.PUT("/cart/quantity", h.UpdateCartItemQuantity)
	api.DELETE("/cart/:itemId", h.RemoveFromCart)
	api.POST("/cart/clear", h.ClearCart)

	// Order routes
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.GetOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/orders/:id/status", h.GetOrderStatus)

	// Design studio routes
	api.GET("/designs", h.GetDesigns)
	api.POST("/designs", h.SaveDesign)
	api.GET("/designs/:id", h.GetDesign)
	api.DELETE("/designs/:id", h.DeleteDesign)
	api.POST("/designs/:id/share", h.ShareDesign)

	// Recently viewed
	api.GET("/recently-viewed", h.GetRecentlyViewed)
	api.POST("/recently-viewed", h.AddRecentlyViewed)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
