package catalog

// NewReview is the payload for AddReview. It deliberately omits the
// server-assigned fields of a review (ID, creation time, helpful count).
type NewReview struct {
	ProductID        string   `json:"productId" validate:"required"`
	UserID           string   `json:"userId" validate:"required"`
	UserName         string   `json:"userName" validate:"required"`
	UserAvatar       string   `json:"userAvatar,omitempty"`
	Rating           float64  `json:"rating" validate:"gte=0,lte=5"`
	Title            string   `json:"title" validate:"required,max=200"`
	Content          string   `json:"content" validate:"required"`
	Images           []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	VerifiedPurchase bool     `json:"verifiedPurchase"`
}

// NewsletterConfirmation is the server's reply to a newsletter signup.
type NewsletterConfirmation struct {
	Message string `json:"message"`
}

type newsletterSubscription struct {
	Email string `json:"email" validate:"required,email"`
}
