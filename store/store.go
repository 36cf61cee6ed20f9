// Package store defines the repository interfaces the handlers depend on,
// with an in-memory implementation seeded for standalone use and a MongoDB
// implementation for real persistence.
package store

import (
	"context"
	"errors"

	"github.com/threadlab/threadlab-backend-go/models"
)

// ErrNotFound is returned for lookups of absent entities.
var ErrNotFound = errors.New("not found")

type ProductStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id int) error
}

type ReviewStore interface {
	GetByProductID(ctx context.Context, productID int) ([]models.Review, error)
	GetByID(ctx context.Context, id int) (models.Review, error)
	Create(ctx context.Context, r models.Review) (models.Review, error)
	Update(ctx context.Context, r models.Review) error
	Delete(ctx context.Context, id int) error
}

// CartStore keeps one cart per session. Get returns an empty cart rather
// than ErrNotFound when the session has none yet.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// OrderStore assigns monotonically increasing integer IDs on create.
type OrderStore interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	GetByID(ctx context.Context, id int) (models.Order, error)
	GetBySession(ctx context.Context, sessionID string) ([]models.Order, error)
	Update(ctx context.Context, o models.Order) error
}

type DesignStore interface {
	GetBySession(ctx context.Context, sessionID string) ([]models.SavedDesign, error)
	GetByID(ctx context.Context, id string) (models.SavedDesign, error)
	Save(ctx context.Context, d models.SavedDesign) error
	Delete(ctx context.Context, sessionID, id string) error
	CreateShare(ctx context.Context, share models.DesignShare) error
	GetShare(ctx context.Context, token string) (models.DesignShare, error)
}

// VoteLedger records each session's single vote per review.
type VoteLedger interface {
	Get(ctx context.Context, sessionID string, reviewID int) (models.VoteValue, error)
	Set(ctx context.Context, sessionID string, reviewID int, vote models.VoteValue) error
}

// RecentlyViewedStore keeps a per-session most-recent-first product list,
// deduplicated and capped.
type RecentlyViewedStore interface {
	Get(ctx context.Context, sessionID string) ([]models.ProductSummary, error)
	Add(ctx context.Context, sessionID string, p models.ProductSummary) error
}

// Stores bundles every repository for injection into the handlers.
type Stores struct {
	Products       ProductStore
	Reviews        ReviewStore
	Carts          CartStore
	Orders         OrderStore
	Designs        DesignStore
	Votes          VoteLedger
	RecentlyViewed RecentlyViewedStore
}
