package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// statusSteps fixes the linear order progression. Timeline rendering derives
// everything from the index of the current status in this slice.
var statusSteps = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// StepIndex returns the position of the status in the progression,
// or -1 for an unknown status.
func (s OrderStatus) StepIndex() int {
	for i, step := range statusSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the status is one of the known progression steps.
func (s OrderStatus) Valid() bool {
	return s.StepIndex() >= 0
}

type Address struct {
	Name       string `bson:"name" json:"name"`
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	Country    string `bson:"country" json:"country"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
}

// PaymentSummary is the only payment data ever persisted. Raw card fields
// are masked before the order record is built.
type PaymentSummary struct {
	CardLast4 string `bson:"cardLast4" json:"cardLast4"`
	CardName  string `bson:"cardName" json:"cardName"`
}

// OrderTotals is the pricing snapshot taken at checkout.
type OrderTotals struct {
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
	Shipping float64 `bson:"shipping" json:"shipping"`
	Tax      float64 `bson:"tax" json:"tax"`
	Total    float64 `bson:"total" json:"total"`
}

type Order struct {
	ID              int            `bson:"_id" json:"id"`
	SessionID       string         `bson:"sessionId" json:"-"`
	Items           []CartItem     `bson:"items" json:"items"`
	ShippingAddress Address        `bson:"shippingAddress" json:"shippingAddress"`
	BillingAddress  Address        `bson:"billingAddress" json:"billingAddress"`
	Payment         PaymentSummary `bson:"payment" json:"payment"`
	Totals          OrderTotals    `bson:"totals" json:"totals"`
	Status          OrderStatus    `bson:"status" json:"status"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	ShippedAt       *time.Time     `bson:"shippedAt,omitempty" json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time     `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
}

// TimelineStep is one entry in the order-detail progress view.
type TimelineStep struct {
	Status    OrderStatus `json:"status"`
	Completed bool        `json:"completed"`
	Current   bool        `json:"current"`
}

// Timeline renders the progression snapshot for the order's current status.
// It is a pure lookup; it never re-derives transitions.
func (o Order) Timeline() []TimelineStep {
	current := o.Status.StepIndex()
	steps := make([]TimelineStep, len(statusSteps))
	for i, status := range statusSteps {
		steps[i] = TimelineStep{
			Status:    status,
			Completed: i <= current,
			Current:   i == current,
		}
	}
	return steps
}
