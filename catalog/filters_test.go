package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilters_Encode_SetFilters(t *testing.T) {
	f := &SearchFilters{
		Category:   "electronics",
		PriceRange: &PriceRange{Min: 10, Max: 50},
		InStock:    true,
	}

	q := url.Values{}
	f.encode(q)

	assert.Equal(t, "electronics", q.Get("category"))
	assert.Equal(t, "10", q.Get("minPrice"))
	assert.Equal(t, "50", q.Get("maxPrice"))
	assert.Equal(t, "true", q.Get("inStock"))

	// Unset filters must not appear at all.
	assert.NotContains(t, q, "brand")
	assert.NotContains(t, q, "rating")
	assert.NotContains(t, q, "sortBy")
}

func TestSearchFilters_Encode_BrandsRepeatKey(t *testing.T) {
	f := &SearchFilters{Brands: []string{"AudioTech", "FitTech"}}

	q := url.Values{}
	f.encode(q)

	assert.Equal(t, []string{"AudioTech", "FitTech"}, q["brand"])
}

func TestSearchFilters_Encode_RatingAndSort(t *testing.T) {
	f := &SearchFilters{Rating: 4.5, SortBy: SortPriceDesc}

	q := url.Values{}
	f.encode(q)

	assert.Equal(t, "4.5", q.Get("rating"))
	assert.Equal(t, "price-desc", q.Get("sortBy"))
}

func TestSearchFilters_Encode_NilAndEmpty(t *testing.T) {
	q := url.Values{}
	(*SearchFilters)(nil).encode(q)
	assert.Empty(t, q)

	(&SearchFilters{}).encode(q)
	assert.Empty(t, q)
}

func TestSearchFilters_EncodeSearch_OnlyCategoryAndSort(t *testing.T) {
	f := &SearchFilters{
		Category:   "electronics",
		Brands:     []string{"AudioTech"},
		PriceRange: &PriceRange{Min: 1, Max: 2},
		Rating:     4,
		InStock:    true,
		SortBy:     SortNewest,
	}

	q := url.Values{}
	f.encodeSearch(q)

	assert.Equal(t, "electronics", q.Get("category"))
	assert.Equal(t, "newest", q.Get("sortBy"))
	assert.Len(t, q, 2)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagination(2, 12, 12)
	assert.Equal(t, 1, p.TotalPages)
}
