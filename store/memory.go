package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/threadlab/threadlab-backend-go/models"
)

// recentlyViewedCap bounds the per-session recently-viewed list.
const recentlyViewedCap = 10

// NewMemoryStores builds the seeded in-memory store bundle used when no
// MongoDB URI is configured.
func NewMemoryStores() *Stores {
	return &Stores{
		Products:       NewMemoryProductStore(SeedProducts()),
		Reviews:        NewMemoryReviewStore(SeedReviews()),
		Carts:          NewMemoryCartStore(),
		Orders:         NewMemoryOrderStore(),
		Designs:        NewMemoryDesignStore(),
		Votes:          NewMemoryVoteLedger(),
		RecentlyViewed: NewMemoryRecentlyViewedStore(),
	}
}

type MemoryProductStore struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

func NewMemoryProductStore(seed []models.Product) *MemoryProductStore {
	s := &MemoryProductStore{products: seed, nextID: 1}
	for _, p := range seed {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *MemoryProductStore) GetAll(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryProductStore) GetByID(_ context.Context, id int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryProductStore) Create(_ context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p, nil
}

func (s *MemoryProductStore) Update(_ context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryProductStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
	nextID  int
}

func NewMemoryReviewStore(seed []models.Review) *MemoryReviewStore {
	s := &MemoryReviewStore{reviews: seed, nextID: 1}
	for _, r := range seed {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *MemoryReviewStore) GetByProductID(_ context.Context, productID int) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) GetByID(_ context.Context, id int) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Review{}, ErrNotFound
}

func (s *MemoryReviewStore) Create(_ context.Context, r models.Review) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.reviews = append(s.reviews, r)
	return r, nil
}

func (s *MemoryReviewStore) Update(_ context.Context, r models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == r.ID {
			s.reviews[i] = r
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryReviewStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryCartStore) Get(_ context.Context, sessionID string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cart, ok := s.carts[sessionID]; ok {
		out := cart
		out.Items = make([]models.CartItem, len(cart.Items))
		copy(out.Items, cart.Items)
		return out, nil
	}
	return models.Cart{SessionID: sessionID}, nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.SessionID] = cart
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{nextID: 1001}
}

func (s *MemoryOrderStore) Create(_ context.Context, o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *MemoryOrderStore) GetByID(_ context.Context, id int) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryOrderStore) GetBySession(_ context.Context, sessionID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryOrderStore) Update(_ context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			return nil
		}
	}
	return ErrNotFound
}

type MemoryDesignStore struct {
	mu      sync.RWMutex
	designs map[string]models.SavedDesign
	shares  map[string]models.DesignShare
}

func NewMemoryDesignStore() *MemoryDesignStore {
	return &MemoryDesignStore{
		designs: make(map[string]models.SavedDesign),
		shares:  make(map[string]models.DesignShare),
	}
}

func (s *MemoryDesignStore) GetBySession(_ context.Context, sessionID string) ([]models.SavedDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SavedDesign
	for _, d := range s.designs {
		if d.SessionID == sessionID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryDesignStore) GetByID(_ context.Context, id string) (models.SavedDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.designs[id]; ok {
		return d, nil
	}
	return models.SavedDesign{}, ErrNotFound
}

func (s *MemoryDesignStore) Save(_ context.Context, d models.SavedDesign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designs[d.ID] = d
	return nil
}

func (s *MemoryDesignStore) Delete(_ context.Context, sessionID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.designs[id]
	if !ok || d.SessionID != sessionID {
		return ErrNotFound
	}
	delete(s.designs, id)
	return nil
}

func (s *MemoryDesignStore) CreateShare(_ context.Context, share models.DesignShare) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares[share.Token] = share
	return nil
}

func (s *MemoryDesignStore) GetShare(_ context.Context, token string) (models.DesignShare, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	share, ok := s.shares[token]
	if !ok || share.Expired(time.Now()) {
		return models.DesignShare{}, ErrNotFound
	}
	return share, nil
}

type MemoryVoteLedger struct {
	mu    sync.RWMutex
	votes map[string]map[int]models.VoteValue
}

func NewMemoryVoteLedger() *MemoryVoteLedger {
	return &MemoryVoteLedger{votes: make(map[string]map[int]models.VoteValue)}
}

func (s *MemoryVoteLedger) Get(_ context.Context, sessionID string, reviewID int) (models.VoteValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.votes[sessionID][reviewID], nil
}

func (s *MemoryVoteLedger) Set(_ context.Context, sessionID string, reviewID int, vote models.VoteValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.votes[sessionID] == nil {
		s.votes[sessionID] = make(map[int]models.VoteValue)
	}
	s.votes[sessionID][reviewID] = vote
	return nil
}

type MemoryRecentlyViewedStore struct {
	mu     sync.RWMutex
	viewed map[string][]models.ProductSummary
}

func NewMemoryRecentlyViewedStore() *MemoryRecentlyViewedStore {
	return &MemoryRecentlyViewedStore{viewed: make(map[string][]models.ProductSummary)}
}

func (s *MemoryRecentlyViewedStore) Get(_ context.Context, sessionID string) ([]models.ProductSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.viewed[sessionID]
	out := make([]models.ProductSummary, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryRecentlyViewedStore) Add(_ context.Context, sessionID string, p models.ProductSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.viewed[sessionID]
	filtered := make([]models.ProductSummary, 0, len(list)+1)
	filtered = append(filtered, p)
	for _, existing := range list {
		if existing.ID != p.ID {
			filtered = append(filtered, existing)
		}
	}
	if len(filtered) > recentlyViewedCap {
		filtered = filtered[:recentlyViewedCap]
	}
	s.viewed[sessionID] = filtered
	return nil
}
