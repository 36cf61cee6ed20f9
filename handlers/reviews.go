package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/threadlab/threadlab-backend-go/models"
	"github.com/threadlab/threadlab-backend-go/reviews"
	"github.com/threadlab/threadlab-backend-go/store"
)

type reviewListResponse struct {
	Stats   reviews.Stats   `json:"stats"`
	Reviews []models.Review `json:"reviews"`
}

// GetProductReviews returns aggregate stats over all of a product's
// reviews plus the filtered, sorted list. Stats are computed before
// filtering so the summary always reflects the whole collection. When the
// caller presents a session, their own votes are annotated.
func (h *Handler) GetProductReviews(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx := c.Request().Context()
	if _, err := h.stores.Products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	list, err := h.stores.Reviews.GetByProductID(ctx, productID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reviews"})
	}

	stats := reviews.ComputeStats(list)
	filtered := reviews.FilterAndSort(list, c.QueryParam("filter"), c.QueryParam("sort"), time.Now())

	if sid := sessionID(c); sid != "" {
		for i := range filtered {
			vote, err := h.stores.Votes.Get(ctx, sid, filtered[i].ID)
			if err == nil {
				filtered[i].UserVote = vote
			}
		}
	}

	return c.JSON(http.StatusOK, reviewListResponse{Stats: stats, Reviews: filtered})
}

type createReviewRequest struct {
	CustomerName string   `json:"customerName"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Comment      string   `json:"comment"`
	Photos       []string `json:"photos"`
}

func (h *Handler) CreateReview(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.CustomerName == "" || req.Title == "" || req.Comment == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, title and comment are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
	}
	if len(req.Photos) > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "At most 5 photos allowed"})
	}

	ctx := c.Request().Context()
	if _, err := h.stores.Products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	review := models.Review{
		ProductID:        productID,
		CustomerName:     req.CustomerName,
		Rating:           req.Rating,
		Title:            req.Title,
		Comment:          req.Comment,
		Photos:           req.Photos,
		ReviewDate:       time.Now(),
		VerifiedPurchase: h.hasOrdered(c, productID),
	}

	created, err := h.stores.Reviews.Create(ctx, review)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
	}
	return c.JSON(http.StatusCreated, created)
}

// hasOrdered reports whether the requesting session has an order
// containing the product, which marks the review as a verified purchase.
func (h *Handler) hasOrdered(c echo.Context, productID int) bool {
	sid := sessionID(c)
	if sid == "" {
		return false
	}
	orders, err := h.stores.Orders.GetBySession(c.Request().Context(), sid)
	if err != nil {
		return false
	}
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

type voteRequest struct {
	Helpful bool `json:"helpful"`
}

// VoteHelpful casts or switches the session's helpful vote on a review.
// A prior vote is retracted before the new one counts, so a session never
// contributes more than one vote to the tally.
func (h *Handler) VoteHelpful(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx := c.Request().Context()
	sid := sessionID(c)

	review, err := h.stores.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch review"})
	}

	prior, err := h.stores.Votes.Get(ctx, sid, reviewID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read vote ledger"})
	}

	updated := reviews.ApplyVote(review, req.Helpful, prior)

	// UserVote is session-scoped; only the tallies go to the store.
	persist := updated
	persist.UserVote = ""
	if err := h.stores.Reviews.Update(ctx, persist); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to record vote"})
	}
	if err := h.stores.Votes.Set(ctx, sid, reviewID, updated.UserVote); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update vote ledger"})
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	if err := h.stores.Reviews.Delete(c.Request().Context(), reviewID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete review"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Review deleted"})
}
