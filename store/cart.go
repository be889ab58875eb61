package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/utafrali/storefront-sdk/domain"
)

// CartStore holds the client-side shopping cart: an insertion-ordered
// sequence of line items plus a presentation visibility flag. Two adds
// with the same product and variant selection merge into one line; a
// quantity that reaches zero removes the line. Every mutation is a total
// function — out-of-range input is clamped, never rejected.
type CartStore struct {
	notifier

	mu      sync.Mutex
	items   []domain.CartItem
	isOpen  bool
	persist Persister
	logger  *slog.Logger
}

// AddCartItemInput describes a line to add. The store derives the line
// ID itself.
type AddCartItemInput struct {
	ProductID   string
	Name        string
	Price       float64
	Quantity    int
	Image       string
	Variants    map[string]string
	MaxQuantity int
}

// NewCartStore creates a cart store hydrated from p. A missing or
// unreadable blob starts an empty cart.
func NewCartStore(ctx context.Context, p Persister, logger *slog.Logger) *CartStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CartStore{persist: p, logger: logger}
	s.items = loadState[[]domain.CartItem](ctx, p, CartKey, logger)

	// Persisted lines with non-positive quantity are equivalent to absent.
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return s
}

// AddItem merges the input into an existing line with the same product
// and variant selection, clamping at that line's MaxQuantity, or appends
// a new line with a freshly derived ID. A line whose MaxQuantity is zero
// cannot hold any quantity, so it is removed rather than merged into,
// and never appended.
func (s *CartStore) AddItem(ctx context.Context, input AddCartItemInput) {
	s.mu.Lock()

	key := mergeKey(input.ProductID, input.Variants)
	merged := false
	for i := range s.items {
		if mergeKey(s.items[i].ProductID, s.items[i].Variants) == key {
			if s.items[i].MaxQuantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = clamp(s.items[i].Quantity+input.Quantity, 1, s.items[i].MaxQuantity)
			}
			merged = true
			break
		}
	}

	if !merged && input.MaxQuantity > 0 {
		s.items = append(s.items, domain.CartItem{
			ID:          input.ProductID + "-" + uuid.NewString(),
			ProductID:   input.ProductID,
			Name:        input.Name,
			Price:       input.Price,
			Quantity:    clamp(input.Quantity, 1, input.MaxQuantity),
			Image:       input.Image,
			Variants:    maps.Clone(input.Variants),
			MaxQuantity: input.MaxQuantity,
		})
	}

	s.mu.Unlock()
	s.afterMutation(ctx)
}

// RemoveItem deletes the line with the given ID. Removing an unknown ID
// is a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// UpdateQuantity sets the line's quantity, clamped to [0, MaxQuantity].
// A resulting quantity of zero removes the line.
func (s *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID == id {
			it.Quantity = clamp(quantity, 0, it.MaxQuantity)
			if it.Quantity == 0 {
				continue
			}
		}
		kept = append(kept, it)
	}
	s.items = kept
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// ClearCart empties the cart.
func (s *CartStore) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// ToggleCart flips the cart panel's visibility. The flag is
// presentation state and is not persisted.
func (s *CartStore) ToggleCart() {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	s.mu.Unlock()
	s.notify()
}

// IsOpen reports whether the cart panel is visible.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems returns the sum of quantities across all lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns the sum of snapshot price times quantity across
// all lines. Prices are the ones captured at add time, so later catalog
// changes do not move the total.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *CartStore) afterMutation(ctx context.Context) {
	s.mu.Lock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	saveState(ctx, s.persist, CartKey, items, s.logger)
	s.notify()
}

// mergeKey identifies a unique cart line by product and variant
// selection. Variant keys are sorted so that selections that differ only
// in map ordering compare equal.
func mergeKey(productID string, variants map[string]string) string {
	if len(variants) == 0 {
		return productID
	}

	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(productID)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(variants[k])
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// loadState hydrates a store's state blob, returning the zero value on
// a missing key or any failure.
func loadState[T any](ctx context.Context, p Persister, key string, logger *slog.Logger) T {
	var out T
	if p == nil {
		return out
	}

	raw, ok, err := p.Load(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "load persisted state",
			slog.String("key", key), slog.String("error", err.Error()))
		return out
	}
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.WarnContext(ctx, "decode persisted state",
			slog.String("key", key), slog.String("error", err.Error()))
		var zero T
		return zero
	}
	return out
}

// saveState writes a store's state blob. Failures are logged only; a
// mutation never fails because persistence did.
func saveState(ctx context.Context, p Persister, key string, state any, logger *slog.Logger) {
	if p == nil {
		return
	}

	raw, err := json.Marshal(state)
	if err != nil {
		logger.WarnContext(ctx, "encode state",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := p.Save(ctx, key, raw); err != nil {
		logger.WarnContext(ctx, "persist state",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}
