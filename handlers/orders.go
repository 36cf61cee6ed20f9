package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/pricing"
	"github.com/threadlab/threadlab-backend-go/store"
)

type paymentRequest struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type createOrderRequest struct {
	ShippingAddress models.Address `json:"shippingAddress"`
	BillingAddress  models.Address `json:"billingAddress"`
	Payment         paymentRequest `json:"payment"`
}

// CreateOrder is checkout: it validates addresses and payment fields,
// snapshots the cart and its totals into an order, and clears the cart.
// Only the card's last four digits survive into the order record.
func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if msg := validateAddress(req.ShippingAddress); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if req.BillingAddress == (models.Address{}) {
		req.BillingAddress = req.ShippingAddress
	}

	cardDigits := strings.ReplaceAll(req.Payment.CardNumber, " ", "")
	if len(cardDigits) < 12 || !allDigits(cardDigits) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid card number"})
	}
	if req.Payment.CardName == "" || req.Payment.Expiry == "" || req.Payment.CVV == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Incomplete payment details"})
	}

	ctx := c.Request().Context()
	sid := sessionID(c)

	cart, err := h.stores.Carts.Get(ctx, sid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}
	if len(cart.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
	}

	order := models.Order{
		SessionID:       sid,
		Items:           cart.Items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Payment: models.PaymentSummary{
			CardLast4: cardDigits[len(cardDigits)-4:],
			CardName:  req.Payment.CardName,
		},
		Totals:    pricing.ComputeTotals(cart.Items),
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	created, err := h.stores.Orders.Create(ctx, order)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	if err := h.stores.Carts.Clear(ctx, sid); err != nil {
		log.Printf("Failed to clear cart after order creation: %v", err)
	}

	return c.JSON(http.StatusCreated, created)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateAddress(a models.Address) string {
	switch {
	case a.Name == "":
		return "Recipient name is required"
	case a.Street == "":
		return "Street is required"
	case a.City == "":
		return "City is required"
	case a.PostalCode == "":
		return "Postal code is required"
	case a.Country == "":
		return "Country is required"
	}
	return ""
}

// GetOrders lists the session's orders, newest first.
func (h *Handler) GetOrders(c echo.Context) error {
	orders, err := h.stores.Orders.GetBySession(c.Request().Context(), sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

type orderDetailResponse struct {
	models.Order
	Timeline []models.TimelineStep `json:"timeline"`
}

// GetOrder returns one of the session's orders with its status timeline.
func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.sessionOrder(c)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		if errors.Is(err, errBadOrderID) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}
	return c.JSON(http.StatusOK, orderDetailResponse{Order: order, Timeline: order.Timeline()})
}

// GetOrderStatus is the lightweight polling endpoint for order progress.
func (h *Handler) GetOrderStatus(c echo.Context) error {
	order, err := h.sessionOrder(c)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		if errors.Is(err, errBadOrderID) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(order.Status)})
}

var errBadOrderID = errors.New("bad order id")

// sessionOrder loads an order by path param, scoped to the session.
// Another session's order reads as not found.
func (h *Handler) sessionOrder(c echo.Context) (models.Order, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return models.Order{}, errBadOrderID
	}
	order, err := h.stores.Orders.GetByID(c.Request().Context(), id)
	if err != nil {
		return models.Order{}, err
	}
	if order.SessionID != sessionID(c) {
		return models.Order{}, store.ErrNotFound
	}
	return order, nil
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus is the external mutation surface for fulfillment.
// Transitions only move forward along the fixed progression; shipped and
// delivered transitions stamp their timestamps.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown order status"})
	}

	ctx := c.Request().Context()
	order, err := h.stores.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	if req.Status.StepIndex() <= order.Status.StepIndex() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Order status can only move forward"})
	}

	now := time.Now()
	order.Status = req.Status
	switch req.Status {
	case models.OrderStatusShipped:
		order.ShippedAt = &now
	case models.OrderStatusDelivered:
		order.DeliveredAt = &now
	}

	if err := h.stores.Orders.Update(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}
	return c.JSON(http.StatusOK, order)
}
