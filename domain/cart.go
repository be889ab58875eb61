package domain

import "time"

// CartItem is one purchasable line in the shopping cart. Name, Price and
// Image are denormalized snapshots taken when the line was added; later
// catalog changes do not affect them. Quantity is at least 1 and never
// exceeds MaxQuantity (typically the product's stock at add time).
type CartItem struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"productId"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	Quantity    int               `json:"quantity"`
	Image       string            `json:"image"`
	Variants    map[string]string `json:"variants,omitempty"`
	MaxQuantity int               `json:"maxQuantity"`
}

// WishlistItem is a saved product reference. At most one wishlist entry
// exists per product.
type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"addedAt"`
}
