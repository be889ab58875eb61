package domain

import "time"

// Review is customer feedback on a product. ID, CreatedAt and
// HelpfulCount are assigned by the catalog service on creation; clients
// never supply them.
type Review struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName"`
	UserAvatar       string    `json:"userAvatar,omitempty"`
	Rating           float64   `json:"rating"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Images           []string  `json:"images,omitempty"`
	HelpfulCount     int       `json:"helpfulCount"`
	VerifiedPurchase bool      `json:"verifiedPurchase"`
	CreatedAt        time.Time `json:"createdAt"`
}
