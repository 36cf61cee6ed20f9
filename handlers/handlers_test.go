package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/reviews"
	"github.com/threadlab/threadlab-backend-go/store"
)

type testEnv struct {
	e *echo.Echo
	h *Handler
}

func newTestEnv() *testEnv {
	return &testEnv{e: echo.New(), h: New(store.NewMemoryStores())}
}

// call runs a handler against a synthetic request. paramPairs alternate
// name, value for path params.
func (env *testEnv) call(t *testing.T, handler echo.HandlerFunc, method, target, body, sessionID string, paramPairs ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if sessionID != "" {
		c.Set("sessionID", sessionID)
	}

	var names, values []string
	for i := 0; i+1 < len(paramPairs); i += 2 {
		names = append(names, paramPairs[i])
		values = append(values, paramPairs[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	require.NoError(t, handler(c))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetProductsFiltering(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.h.GetProducts, http.MethodGet, "/api/products?styles=Hoodie", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]models.Product](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Midweight Pullover Hoodie", products[0].Name)
}

func TestGetProductsSearchAndPrice(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.h.GetProducts, http.MethodGet, "/api/products?q=tee&maxPrice=23&sort=price_asc", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]models.Product](t, rec)
	require.NotEmpty(t, products)
	for i, p := range products {
		assert.LessOrEqual(t, p.Price, 23.0)
		assert.Contains(t, strings.ToLower(p.Name+" "+p.Style), "tee")
		if i > 0 {
			assert.GreaterOrEqual(t, p.Price, products[i-1].Price)
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.h.GetProduct, http.MethodGet, "/api/products/9999", "", "", "id", "9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.call(t, env.h.GetProduct, http.MethodGet, "/api/products/abc", "", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartAddMergeAndCheckout(t *testing.T) {
	env := newTestEnv()
	const sid = "session-test"

	// Two adds of the same variant merge into one line of quantity 3.
	body := `{"productId":1,"color":"Black","size":"M","quantity":1}`
	rec := env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart", body, sid)
	require.Equal(t, http.StatusOK, rec.Code)

	body = `{"productId":1,"color":"Black","size":"M","quantity":2}`
	rec = env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart", body, sid)
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decode[cartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 19.99, cart.Items[0].UnitPrice, "unit price comes from the catalog")

	// Checkout.
	checkout := `{
		"shippingAddress": {"name":"Maya R.","street":"1 Print Ln","city":"Austin","state":"TX","country":"US","postalCode":"78701"},
		"payment": {"cardNumber":"4242 4242 4242 4242","cardName":"Maya R","expiry":"12/28","cvv":"123"}
	}`
	rec = env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders", checkout, sid)
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[models.Order](t, rec)
	assert.Equal(t, "4242", order.Payment.CardLast4)
	assert.NotContains(t, rec.Body.String(), "4242 4242", "full card number never leaves the handler")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 59.97, order.Totals.Subtotal)
	assert.Equal(t, 0.0, order.Totals.Shipping)
	assert.Equal(t, 4.8, order.Totals.Tax)
	assert.Equal(t, order.BillingAddress, order.ShippingAddress, "billing defaults to shipping")

	// Cart is cleared after checkout.
	rec = env.call(t, env.h.GetCart, http.MethodGet, "/api/cart", "", sid)
	cart = decode[cartResponse](t, rec)
	assert.Empty(t, cart.Items)
}

func TestCheckoutValidation(t *testing.T) {
	env := newTestEnv()
	const sid = "session-test"

	// Empty cart rejected even with valid fields.
	checkout := `{
		"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"},
		"payment": {"cardNumber":"424242424242","cardName":"A","expiry":"12/28","cvv":"123"}
	}`
	rec := env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders", checkout, sid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")

	// Incomplete payment rejected before touching the cart.
	rec = env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders",
		`{"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"}, "payment": {"cardNumber":"42"}}`, sid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing address field rejected.
	rec = env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders",
		`{"shippingAddress": {"name":"A"}, "payment": {"cardNumber":"424242424242","cardName":"A","expiry":"12/28","cvv":"123"}}`, sid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Card numbers must be digits; length alone is not enough.
	rec = env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders",
		`{"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"}, "payment": {"cardNumber":"4242-4242-4242-4242","cardName":"A","expiry":"12/28","cvv":"123"}}`, sid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid card number")

	rec = env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders",
		`{"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"}, "payment": {"cardNumber":"not a card number!","cardName":"A","expiry":"12/28","cvv":"123"}}`, sid)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid card number")
}

func TestAddToCartRejectsUnknownVariant(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart",
		`{"productId":1,"color":"Chartreuse","size":"M","quantity":1}`, "sid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart",
		`{"productId":1,"color":"Black","size":"XXXS","quantity":1}`, "sid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart",
		`{"productId":404,"color":"Black","size":"M","quantity":1}`, "sid")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderScopedToSession(t *testing.T) {
	env := newTestEnv()

	env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart",
		`{"productId":2,"color":"Red","size":"M","quantity":1}`, "owner")
	rec := env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders", `{
		"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"},
		"payment": {"cardNumber":"424242424242","cardName":"A","expiry":"12/28","cvv":"123"}
	}`, "owner")
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode[models.Order](t, rec)

	rec = env.call(t, env.h.GetOrder, http.MethodGet, "/api/orders/x", "", "someone-else", "id", itoa(order.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code, "other sessions cannot read the order")

	rec = env.call(t, env.h.GetOrder, http.MethodGet, "/api/orders/x", "", "owner", "id", itoa(order.ID))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	env := newTestEnv()

	env.call(t, env.h.AddToCart, http.MethodPost, "/api/cart",
		`{"productId":3,"color":"Black","size":"L","quantity":1}`, "sid")
	rec := env.call(t, env.h.CreateOrder, http.MethodPost, "/api/orders", `{
		"shippingAddress": {"name":"A","street":"S","city":"C","country":"US","postalCode":"1"},
		"payment": {"cardNumber":"424242424242","cardName":"A","expiry":"12/28","cvv":"123"}
	}`, "sid")
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode[models.Order](t, rec)

	rec = env.call(t, env.h.UpdateOrderStatus, http.MethodPut, "/x", `{"status":"shipped"}`, "", "id", itoa(order.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Order](t, rec)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	assert.NotNil(t, updated.ShippedAt)

	// Backwards is rejected.
	rec = env.call(t, env.h.UpdateOrderStatus, http.MethodPut, "/x", `{"status":"confirmed"}`, "", "id", itoa(order.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown status is rejected.
	rec = env.call(t, env.h.UpdateOrderStatus, http.MethodPut, "/x", `{"status":"lost"}`, "", "id", itoa(order.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteHelpfulSwitchNeverDoubleCounts(t *testing.T) {
	env := newTestEnv()
	const sid = "voter"

	// Seed review 3 starts with zero votes.
	rec := env.call(t, env.h.VoteHelpful, http.MethodPost, "/x", `{"helpful":true}`, sid, "id", "3")
	require.Equal(t, http.StatusOK, rec.Code)
	review := decode[models.Review](t, rec)
	assert.Equal(t, models.HelpfulVotes{Yes: 1, No: 0}, review.HelpfulVotes)
	assert.Equal(t, models.VoteYes, review.UserVote)

	rec = env.call(t, env.h.VoteHelpful, http.MethodPost, "/x", `{"helpful":false}`, sid, "id", "3")
	require.Equal(t, http.StatusOK, rec.Code)
	review = decode[models.Review](t, rec)
	assert.Equal(t, models.HelpfulVotes{Yes: 0, No: 1}, review.HelpfulVotes, "switching sides retracts the prior vote")

	// A second voter adds on top.
	rec = env.call(t, env.h.VoteHelpful, http.MethodPost, "/x", `{"helpful":false}`, "other-voter", "id", "3")
	review = decode[models.Review](t, rec)
	assert.Equal(t, models.HelpfulVotes{Yes: 0, No: 2}, review.HelpfulVotes)
}

func TestVoteNotLeakedToOtherCallers(t *testing.T) {
	env := newTestEnv()

	// Seed review 1 belongs to product 1.
	rec := env.call(t, env.h.VoteHelpful, http.MethodPost, "/x", `{"helpful":true}`, "voter", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	// An anonymous read sees the updated tally but no vote marker.
	rec = env.call(t, env.h.GetProductReviews, http.MethodGet, "/api/products/1/reviews", "", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[reviewListResponse](t, rec)
	for _, r := range resp.Reviews {
		assert.Empty(t, r.UserVote, "anonymous callers get no vote annotation")
	}

	// Another session sees the tally but not the voter's marker either.
	rec = env.call(t, env.h.GetProductReviews, http.MethodGet, "/api/products/1/reviews", "", "bystander", "id", "1")
	resp = decode[reviewListResponse](t, rec)
	for _, r := range resp.Reviews {
		assert.Empty(t, r.UserVote)
	}
}

func TestGetProductReviewsStatsAndVoteAnnotation(t *testing.T) {
	env := newTestEnv()
	const sid = "voter"

	env.call(t, env.h.VoteHelpful, http.MethodPost, "/x", `{"helpful":true}`, sid, "id", "1")

	rec := env.call(t, env.h.GetProductReviews, http.MethodGet, "/api/products/1/reviews", "", sid, "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Stats   reviews.Stats   `json:"stats"`
		Reviews []models.Review `json:"reviews"`
	}](t, rec)

	assert.Equal(t, 3, resp.Stats.TotalReviews)
	assert.Equal(t, 4.0, resp.Stats.AverageRating) // seed ratings 5, 4, 3
	assert.Equal(t, 2, resp.Stats.PhotosCount)

	var annotated bool
	for _, r := range resp.Reviews {
		if r.ID == 1 {
			annotated = r.UserVote == models.VoteYes
		}
	}
	assert.True(t, annotated, "caller's own vote is attached")
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.h.CreateReview, http.MethodPost, "/x",
		`{"customerName":"","rating":5,"title":"t","comment":"c"}`, "sid", "id", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.call(t, env.h.CreateReview, http.MethodPost, "/x",
		`{"customerName":"N","rating":6,"title":"t","comment":"c"}`, "sid", "id", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.call(t, env.h.CreateReview, http.MethodPost, "/x",
		`{"customerName":"N","rating":4,"title":"Solid","comment":"Good print"}`, "sid", "id", "1")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Review](t, rec)
	assert.NotZero(t, created.ID)
	assert.False(t, created.VerifiedPurchase, "no order for this session yet")
}

func TestDesignShareRoundTrip(t *testing.T) {
	env := newTestEnv()
	const sid = "designer"

	rec := env.call(t, env.h.SaveDesign, http.MethodPost, "/api/designs", `{
		"name":"Dragon Back Print","productId":3,
		"color":{"name":"Black","hex":"#1A1A1A"},"size":"L",
		"design":{"elements":[{"type":"text","content":"RIDE","x":10,"y":20,"scale":1,"rotation":0}]}
	}`, sid)
	require.Equal(t, http.StatusCreated, rec.Code)
	design := decode[models.SavedDesign](t, rec)
	require.NotEmpty(t, design.ID)

	rec = env.call(t, env.h.ShareDesign, http.MethodPost, "/x", "", sid, "id", design.ID)
	require.Equal(t, http.StatusCreated, rec.Code)
	share := decode[models.DesignShare](t, rec)
	require.NotEmpty(t, share.Token)

	// Public resolve needs no session.
	rec = env.call(t, env.h.GetSharedDesign, http.MethodGet, "/x", "", "", "token", share.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	resolved := decode[models.SavedDesign](t, rec)
	assert.Equal(t, design.ID, resolved.ID)

	// Strangers cannot share someone else's design.
	rec = env.call(t, env.h.ShareDesign, http.MethodPost, "/x", "", "stranger", "id", design.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecentlyViewedEndpoint(t *testing.T) {
	env := newTestEnv()
	const sid = "browser"

	for _, id := range []string{"1", "2", "1"} {
		rec := env.call(t, env.h.AddRecentlyViewed, http.MethodPost, "/api/recently-viewed",
			`{"productId":`+id+`}`, sid)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.call(t, env.h.GetRecentlyViewed, http.MethodGet, "/api/recently-viewed", "", sid)
	viewed := decode[[]models.ProductSummary](t, rec)
	require.Len(t, viewed, 2)
	assert.Equal(t, 1, viewed[0].ID, "re-view moves to front")
	assert.Equal(t, 2, viewed[1].ID)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
