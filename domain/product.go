package domain

import "time"

// Variant types a product may offer.
const (
	VariantTypeSize     = "size"
	VariantTypeColor    = "color"
	VariantTypeMaterial = "material"
)

// ValidVariantTypes returns all valid product variant types.
func ValidVariantTypes() []string {
	return []string{VariantTypeSize, VariantTypeColor, VariantTypeMaterial}
}

// IsValidVariantType reports whether t is a known variant type.
func IsValidVariantType(t string) bool {
	switch t {
	case VariantTypeSize, VariantTypeColor, VariantTypeMaterial:
		return true
	default:
		return false
	}
}

// Product is a catalog item as served by the remote catalog API. The
// catalog service owns and mutates products; this SDK only reads them.
// Price and Stock are non-negative and Rating is within [0,5] by the
// remote contract.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Stock          int               `json:"stock"`
	Variants       []ProductVariant  `json:"variants,omitempty"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Tags           []string          `json:"tags"`
	IsFeatured     bool              `json:"isFeatured"`
	IsNew          bool              `json:"isNew"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ProductVariant is a selectable variation of a parent product. A variant
// never exists on its own.
type ProductVariant struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Value         string   `json:"value"`
	PriceModifier *float64 `json:"priceModifier,omitempty"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image,omitempty"`
}

// Category is a catalog grouping. Slug is unique and URL-safe.
// Subcategories nest recursively.
type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	ProductCount  int        `json:"productCount"`
	Subcategories []Category `json:"subcategories,omitempty"`
	IsFeatured    bool       `json:"isFeatured"`
}
