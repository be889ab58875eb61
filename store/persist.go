package store

import "context"

// Persistence keys, one JSON blob per store.
const (
	CartKey     = "storefront:cart"
	WishlistKey = "storefront:wishlist"
	SessionKey  = "storefront:session"
)

// Persister is the key-value persistence port the stores save through.
// Load's second return reports whether the key existed. Stores call Save
// after every successful mutation and Load once at construction;
// persistence failures are logged by the store and never fail a
// mutation.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
