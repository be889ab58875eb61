package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront-sdk/catalogtest"
	"github.com/utafrali/storefront-sdk/logger"
)

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL}, tokens, logger.NewWithWriter("catalog", "error", testWriter{t}))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func TestClient_GetProducts(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProducts(context.Background(), 1, 12, nil)

	require.True(t, resp.Success, "error: %s", resp.Error)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestClient_GetProducts_Filtered(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProducts(context.Background(), 1, 12, &SearchFilters{
		Category: "electronics",
		InStock:  true,
	})

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	for _, p := range resp.Data {
		assert.Equal(t, "electronics", p.Category)
		assert.Positive(t, p.Stock)
	}
}

func TestClient_GetProducts_SortByPrice(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProducts(context.Background(), 1, 12, &SearchFilters{SortBy: SortPriceAsc})

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 3)
	assert.True(t, resp.Data[0].Price <= resp.Data[1].Price)
	assert.True(t, resp.Data[1].Price <= resp.Data[2].Price)
}

func TestClient_GetProducts_DefaultsPageAndLimit(t *testing.T) {
	var gotPage, gotLimit string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotLimit = r.URL.Query().Get("limit")
		catalogtest.New().ServeHTTP(w, r)
	})
	c := newTestClient(t, h, nil)

	c.GetProducts(context.Background(), 0, -5, nil)

	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "12", gotLimit)
}

func TestClient_GetProducts_Paginates(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProducts(context.Background(), 2, 2, nil)

	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestClient_GetProduct(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProduct(context.Background(), "p-100")

	require.True(t, resp.Success)
	assert.Equal(t, "Aurora Wireless Headphones", resp.Data.Name)
	require.NotNil(t, resp.Data.OriginalPrice)
}

func TestClient_GetProduct_NotFoundIsFailSoft(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProduct(context.Background(), "p-999")

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Data.ID)
}

func TestClient_GetFeaturedAndNewProducts(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	featured := c.GetFeaturedProducts(context.Background())
	require.True(t, featured.Success)
	assert.Len(t, featured.Data, 2)

	fresh := c.GetNewProducts(context.Background())
	require.True(t, fresh.Success)
	assert.Len(t, fresh.Data, 2)
}

func TestClient_GetRelatedProducts(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetRelatedProducts(context.Background(), "p-100")

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p-200", resp.Data[0].ID)
}

func TestClient_SearchProducts(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.SearchProducts(context.Background(), "headphones", 1, 12, nil)

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p-100", resp.Data[0].ID)
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestClient_Categories(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	all := c.GetCategories(context.Background())
	require.True(t, all.Success)
	assert.Len(t, all.Data, 3)

	featured := c.GetFeaturedCategories(context.Background())
	require.True(t, featured.Success)
	assert.Len(t, featured.Data, 2)

	one := c.GetCategory(context.Background(), "electronics")
	require.True(t, one.Success)
	assert.Equal(t, "Electronics", one.Data.Name)
	assert.Len(t, one.Data.Subcategories, 2)
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

func TestClient_GetProductReviews(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProductReviews(context.Background(), "p-100", 1, 10)

	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestClient_GetProductReviews_EmptyHasZeroTotalPages(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.GetProductReviews(context.Background(), "p-300", 1, 10)

	require.True(t, resp.Success)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Pagination.Total)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}

func TestClient_AddReview(t *testing.T) {
	c := newTestClient(t, catalogtest.New(), nil)

	resp := c.AddReview(context.Background(), NewReview{
		ProductID: "p-200",
		UserID:    "u-9",
		UserName:  "Riley",
		Rating:    4,
		Title:     "Solid watch",
		Content:   "Battery lasts the promised week.",
	})

	require.True(t, resp.Success, "error: %s", resp.Error)
	assert.NotEmpty(t, resp.Data.ID)
	assert.False(t, resp.Data.CreatedAt.IsZero())
	assert.Zero(t, resp.Data.HelpfulCount)
	assert.Equal(t, "Solid watch", resp.Data.Title)
}

func TestClient_AddReview_InvalidInputShortCircuits(t *testing.T) {
	fake := catalogtest.New()
	c := newTestClient(t, fake, nil)

	resp := c.AddReview(context.Background(), NewReview{
		ProductID: "p-200",
		Rating:    9,
	})

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "invalid review")
}

// ---------------------------------------------------------------------------
// Newsletter
// ---------------------------------------------------------------------------

func TestClient_SubscribeNewsletter(t *testing.T) {
	fake := catalogtest.New()
	c := newTestClient(t, fake, nil)

	resp := c.SubscribeNewsletter(context.Background(), "jamie@example.com")

	require.True(t, resp.Success)
	assert.Contains(t, resp.Data.Message, "jamie@example.com")
	assert.Equal(t, []string{"jamie@example.com"}, fake.Subscribers())
}

func TestClient_SubscribeNewsletter_InvalidEmail(t *testing.T) {
	fake := catalogtest.New()
	c := newTestClient(t, fake, nil)

	resp := c.SubscribeNewsletter(context.Background(), "not-an-email")

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "invalid subscription")
	assert.Empty(t, fake.Subscribers())
}

// ---------------------------------------------------------------------------
// Auth header
// ---------------------------------------------------------------------------

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		catalogtest.New().ServeHTTP(w, r)
	})
	c := newTestClient(t, h, StaticToken("secret-token"))

	c.GetCategories(context.Background())

	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	var sawHeader bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		catalogtest.New().ServeHTTP(w, r)
	})
	c := newTestClient(t, h, StaticToken(""))

	c.GetCategories(context.Background())

	assert.False(t, sawHeader)
}

func TestClient_MergesConfiguredHeaders(t *testing.T) {
	var gotKey string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		catalogtest.New().ServeHTTP(w, r)
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	header := http.Header{}
	header.Set("X-Api-Key", "k-123")
	c := New(Config{BaseURL: srv.URL, Header: header}, nil, logger.NewWithWriter("catalog", "error", testWriter{t}))

	c.GetCategories(context.Background())

	assert.Equal(t, "k-123", gotKey)
}

// ---------------------------------------------------------------------------
// Fail-soft contract
// ---------------------------------------------------------------------------

func TestClient_NonOKStatusIsFailSoft(t *testing.T) {
	fake := catalogtest.New()
	fake.SetFailStatus(http.StatusInternalServerError)
	c := newTestClient(t, fake, nil)

	resp := c.GetProducts(context.Background(), 1, 12, nil)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "500")
	// The pagination block survives failure.
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 12, resp.Pagination.Limit)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}

func TestClient_MalformedBodyIsFailSoft(t *testing.T) {
	fake := catalogtest.New()
	fake.SetMalformedBody(true)
	c := newTestClient(t, fake, nil)

	resp := c.GetCategories(context.Background())

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "decode response")
}

func TestClient_NetworkFailureIsFailSoft(t *testing.T) {
	srv := httptest.NewServer(catalogtest.New())
	baseURL := srv.URL
	srv.Close()

	c := New(Config{BaseURL: baseURL}, nil, nil)

	resp := c.GetProduct(context.Background(), "p-100")

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{Status: http.StatusBadGateway}
	assert.Equal(t, "unexpected status 502", err.Error())
}
