// Package pricing derives cart totals from line items.
package pricing

import (
	"math"

	"github.com/threadlab/threadlab-backend-go/models"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The threshold is strict: a subtotal of exactly 50.00 still ships
	// at the flat rate.
	FreeShippingThreshold = 50.00
	ShippingFee           = 5.99
	TaxRate               = 0.08
)

// ComputeTotals calculates subtotal, shipping, tax and total for a set of
// line items. Tax applies to the subtotal only, never to shipping.
func ComputeTotals(items []models.CartItem) models.OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	subtotal = roundCents(subtotal)

	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := roundCents(subtotal * TaxRate)

	return models.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    roundCents(subtotal + shipping + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
