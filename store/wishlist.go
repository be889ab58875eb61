package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront-sdk/domain"
)

// WishlistStore holds saved product references, deduplicated by product
// ID: adding a product already on the list is a no-op.
type WishlistStore struct {
	notifier

	mu      sync.Mutex
	items   []domain.WishlistItem
	persist Persister
	logger  *slog.Logger
	now     func() time.Time
}

// AddWishlistItemInput describes a product to save. The store derives
// the entry ID and timestamp itself.
type AddWishlistItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
}

// NewWishlistStore creates a wishlist store hydrated from p.
func NewWishlistStore(ctx context.Context, p Persister, logger *slog.Logger) *WishlistStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &WishlistStore{persist: p, logger: logger, now: time.Now}
	s.items = loadState[[]domain.WishlistItem](ctx, p, WishlistKey, logger)
	return s
}

// AddItem appends the product unless it is already on the list.
func (s *WishlistStore) AddItem(ctx context.Context, input AddWishlistItemInput) {
	s.mu.Lock()
	for _, it := range s.items {
		if it.ProductID == input.ProductID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, domain.WishlistItem{
		ID:        input.ProductID + "-" + uuid.NewString(),
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Image:     input.Image,
		AddedAt:   s.now().UTC(),
	})
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// RemoveItem deletes the entry for the given product, if any.
func (s *WishlistStore) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// IsInWishlist reports whether the product is on the list.
func (s *WishlistStore) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// ClearWishlist empties the list.
func (s *WishlistStore) ClearWishlist(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// Items returns a copy of the saved entries in insertion order.
func (s *WishlistStore) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) afterMutation(ctx context.Context) {
	s.mu.Lock()
	items := make([]domain.WishlistItem, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	saveState(ctx, s.persist, WishlistKey, items, s.logger)
	s.notify()
}
