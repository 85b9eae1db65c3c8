package snapshot

import (
	"context"
	"fmt"
	"sync"

	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store keeps the most recently loaded snapshot in memory and serves it
// through the repository interfaces. Reload swaps the data atomically.
type Store struct {
	loader Loader
	path   string
	logger zerolog.Logger

	mu  sync.RWMutex
	idx *index
}

type index struct {
	products    []model.Product
	sellers     []model.Seller
	productByID map[string]int
	sellerByID  map[string]int
	orderByID   map[uuid.UUID]model.Order
}

func newIndex(snap *Snapshot) *index {
	idx := &index{
		products:    snap.Products,
		sellers:     snap.Sellers,
		productByID: make(map[string]int, len(snap.Products)),
		sellerByID:  make(map[string]int, len(snap.Sellers)),
		orderByID:   make(map[uuid.UUID]model.Order, len(snap.Orders)),
	}
	// first occurrence wins
	for i, p := range snap.Products {
		if _, ok := idx.productByID[p.ID]; !ok {
			idx.productByID[p.ID] = i
		}
	}
	for i, s := range snap.Sellers {
		if _, ok := idx.sellerByID[s.ID]; !ok {
			idx.sellerByID[s.ID] = i
		}
	}
	for _, o := range snap.Orders {
		if _, ok := idx.orderByID[o.ID]; !ok {
			idx.orderByID[o.ID] = o
		}
	}
	return idx
}

// NewStore loads the snapshot at path and returns a store serving it.
func NewStore(ctx context.Context, loader Loader, path string, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		loader: loader,
		path:   path,
		logger: logger.With().Str("component", "snapshot-store").Logger(),
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// NewStoreFromSnapshot serves an already decoded snapshot. Reload is a no-op
// on such a store.
func NewStoreFromSnapshot(snap *Snapshot, logger zerolog.Logger) *Store {
	return &Store{
		logger: logger.With().Str("component", "snapshot-store").Logger(),
		idx:    newIndex(snap),
	}
}

// Reload reads the snapshot again and replaces the served data. On failure
// the previous data stays in place.
func (s *Store) Reload(ctx context.Context) error {
	if s.loader == nil {
		return nil
	}

	snap, err := s.loader.Load(ctx, s.path)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", s.path, err)
	}

	idx := newIndex(snap)

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()

	s.logger.Info().
		Time("generated_at", snap.GeneratedAt).
		Int("products", len(snap.Products)).
		Int("sellers", len(snap.Sellers)).
		Int("orders", len(snap.Orders)).
		Msg("snapshot loaded")

	return nil
}

func (s *Store) current() *index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// Products returns the store's product collection.
func (s *Store) Products() repository.ProductRepository {
	return productView{s}
}

// Sellers returns the store's seller collection.
func (s *Store) Sellers() repository.SellerRepository {
	return sellerView{s}
}

// Orders returns the store's orders.
func (s *Store) Orders() repository.OrderRepository {
	return orderView{s}
}

type productView struct{ s *Store }

func (v productView) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := v.s.current()
	out := make([]model.Product, len(idx.products))
	copy(out, idx.products)
	return out, nil
}

func (v productView) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := v.s.current()
	i, ok := idx.productByID[id]
	if !ok {
		return nil, nil
	}
	p := idx.products[i]
	return &p, nil
}

type sellerView struct{ s *Store }

func (v sellerView) ListSellers(ctx context.Context) ([]model.Seller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := v.s.current()
	out := make([]model.Seller, len(idx.sellers))
	copy(out, idx.sellers)
	return out, nil
}

func (v sellerView) GetByID(ctx context.Context, id string) (*model.Seller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := v.s.current()
	i, ok := idx.sellerByID[id]
	if !ok {
		return nil, nil
	}
	seller := idx.sellers[i]
	return &seller, nil
}

type orderView struct{ s *Store }

func (v orderView) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o, ok := v.s.current().orderByID[id]
	if !ok {
		return nil, nil
	}
	if o.Cart == nil {
		o.Cart = []model.CartItem{}
	}
	return &o, nil
}
