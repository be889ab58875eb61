package catalog

import (
	"net/url"
	"strconv"
)

// Sort keys accepted by the catalog listing and search endpoints.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// PriceRange bounds product prices, inclusive on both ends.
type PriceRange struct {
	Min float64
	Max float64
}

// SearchFilters narrows product listing and search results. The zero
// value of each field means "not filtered"; unset filters are omitted
// from the query string entirely.
type SearchFilters struct {
	Category   string
	Brands     []string
	PriceRange *PriceRange
	Rating     float64
	InStock    bool
	SortBy     string
}

// encode appends the set filters to q. Brands repeat the parameter key;
// the price range expands to minPrice/maxPrice; InStock appears only
// when true.
func (f *SearchFilters) encode(q url.Values) {
	if f == nil {
		return
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	for _, b := range f.Brands {
		q.Add("brand", b)
	}
	if f.PriceRange != nil {
		q.Set("minPrice", formatFloat(f.PriceRange.Min))
		q.Set("maxPrice", formatFloat(f.PriceRange.Max))
	}
	if f.Rating > 0 {
		q.Set("rating", formatFloat(f.Rating))
	}
	if f.InStock {
		q.Set("inStock", "true")
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
}

// encodeSearch appends the subset of filters the search endpoint honors.
func (f *SearchFilters) encodeSearch(q url.Values) {
	if f == nil {
		return
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
