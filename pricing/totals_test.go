package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadlab/threadlab-backend-go/models"
)

func items(prices ...float64) []models.CartItem {
	out := make([]models.CartItem, len(prices))
	for i, p := range prices {
		out[i] = models.CartItem{UnitPrice: p, Quantity: 1}
	}
	return out
}

func TestComputeTotalsSubtotal(t *testing.T) {
	lineItems := []models.CartItem{
		{UnitPrice: 19.99, Quantity: 2},
		{UnitPrice: 44.00, Quantity: 1},
	}

	totals := ComputeTotals(lineItems)
	assert.Equal(t, 83.98, totals.Subtotal)
}

func TestComputeTotalsShippingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		shipping float64
	}{
		{"below threshold", 20.00, ShippingFee},
		{"exactly at threshold still ships flat", 50.00, ShippingFee},
		{"a cent over is free", 50.01, 0},
		{"well over is free", 120.00, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(items(tt.subtotal))
			assert.Equal(t, tt.shipping, totals.Shipping)
		})
	}
}

func TestComputeTotalsTaxIsFlatRateOnSubtotalOnly(t *testing.T) {
	// Shipping never feeds the tax base.
	below := ComputeTotals(items(25.00)) // shipping applies
	assert.Equal(t, 2.00, below.Tax)

	above := ComputeTotals(items(100.00)) // free shipping
	assert.Equal(t, 8.00, above.Tax)
}

func TestComputeTotalsTotal(t *testing.T) {
	totals := ComputeTotals(items(25.00))
	assert.Equal(t, 25.00, totals.Subtotal)
	assert.Equal(t, 5.99, totals.Shipping)
	assert.Equal(t, 2.00, totals.Tax)
	assert.Equal(t, 32.99, totals.Total)
}

func TestComputeTotalsQuantityMultiplies(t *testing.T) {
	totals := ComputeTotals([]models.CartItem{{UnitPrice: 16.75, Quantity: 3}})
	assert.Equal(t, 50.25, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 4.02, totals.Tax)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
}
