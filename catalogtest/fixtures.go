package catalogtest

import (
	"time"

	"github.com/utafrali/storefront-sdk/domain"
)

func float64Ptr(v float64) *float64 { return &v }

// Fixtures returns a small, self-consistent catalog used to seed the
// fake server.
func Fixtures() ([]domain.Product, []domain.Category, map[string][]domain.Review) {
	products := []domain.Product{
		{
			ID:            "p-100",
			Name:          "Aurora Wireless Headphones",
			Description:   "Over-ear wireless headphones with active noise cancellation.",
			Price:         299.99,
			OriginalPrice: float64Ptr(399.99),
			Images:        []string{"https://cdn.example.com/p-100-a.jpg", "https://cdn.example.com/p-100-b.jpg"},
			Category:      "electronics",
			Subcategory:   "audio",
			Brand:         "AudioTech",
			Rating:        4.8,
			ReviewCount:   1247,
			Stock:         45,
			Variants: []domain.ProductVariant{
				{ID: "v-1", Type: domain.VariantTypeColor, Name: "Color", Value: "black", Stock: 30},
				{ID: "v-2", Type: domain.VariantTypeColor, Name: "Color", Value: "silver", Stock: 15},
			},
			Features:   []string{"Active Noise Cancellation", "30hr battery"},
			Tags:       []string{"audio", "wireless"},
			IsFeatured: true,
			CreatedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "p-200",
			Name:        "Pulse Fitness Watch",
			Description: "Fitness tracking watch with heart rate monitoring and GPS.",
			Price:       199.99,
			Images:      []string{"https://cdn.example.com/p-200.jpg"},
			Category:    "electronics",
			Subcategory: "wearables",
			Brand:       "FitTech",
			Rating:      4.6,
			ReviewCount: 892,
			Stock:       78,
			Features:    []string{"Heart Rate Monitor", "GPS", "7-day battery"},
			Tags:        []string{"smartwatch", "fitness"},
			IsFeatured:  true,
			IsNew:       true,
			CreatedAt:   time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 18, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:          "p-300",
			Name:        "Linen Field Jacket",
			Description: "Lightweight jacket in washed linen.",
			Price:       89.5,
			Images:      []string{"https://cdn.example.com/p-300.jpg"},
			Category:    "fashion",
			Brand:       "Northmark",
			Rating:      4.1,
			ReviewCount: 154,
			Stock:       0,
			Variants: []domain.ProductVariant{
				{ID: "v-3", Type: domain.VariantTypeSize, Name: "Size", Value: "M", Stock: 0},
			},
			Features:  []string{"Breathable", "Machine washable"},
			Tags:      []string{"jacket", "linen"},
			IsNew:     true,
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
		},
	}

	categories := []domain.Category{
		{
			ID:           "c-1",
			Name:         "Electronics",
			Slug:         "electronics",
			Description:  "Devices and accessories",
			Image:        "https://cdn.example.com/c-1.jpg",
			ProductCount: 2,
			IsFeatured:   true,
			Subcategories: []domain.Category{
				{ID: "c-1a", Name: "Audio", Slug: "audio", ProductCount: 1},
				{ID: "c-1b", Name: "Wearables", Slug: "wearables", ProductCount: 1},
			},
		},
		{
			ID:           "c-2",
			Name:         "Fashion",
			Slug:         "fashion",
			Description:  "Clothing and accessories",
			Image:        "https://cdn.example.com/c-2.jpg",
			ProductCount: 1,
			IsFeatured:   true,
		},
		{
			ID:           "c-3",
			Name:         "Home & Garden",
			Slug:         "home-garden",
			Description:  "Everything for the home",
			Image:        "https://cdn.example.com/c-3.jpg",
			ProductCount: 0,
		},
	}

	reviews := map[string][]domain.Review{
		"p-100": {
			{
				ID:               "r-1",
				ProductID:        "p-100",
				UserID:           "u-1",
				UserName:         "Jamie",
				Rating:           5,
				Title:            "Superb sound",
				Content:          "Best headphones I have owned.",
				HelpfulCount:     12,
				VerifiedPurchase: true,
				CreatedAt:        time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:        "r-2",
				ProductID: "p-100",
				UserID:    "u-2",
				UserName:  "Alex",
				Rating:    4,
				Title:     "Very good",
				Content:   "Comfortable, battery as advertised.",
				CreatedAt: time.Date(2024, 2, 12, 19, 0, 0, 0, time.UTC),
			},
		},
	}

	return products, categories, reviews
}
