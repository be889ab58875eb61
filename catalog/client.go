package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/utafrali/storefront-sdk/domain"
	"github.com/utafrali/storefront-sdk/tracing"
	"github.com/utafrali/storefront-sdk/validator"
)

// Default page sizes for listing endpoints.
const (
	DefaultProductLimit = 12
	DefaultReviewLimit  = 10
)

// maxBodySize caps how much of a response body the client will read.
const maxBodySize = 4 << 20 // 4 MB

// Config holds catalog client configuration.
type Config struct {
	// BaseURL is the root of the catalog API, without a trailing slash.
	BaseURL string
	// Timeout bounds each request end to end.
	Timeout time.Duration
	// MaxConnsPerHost tunes the connection pool.
	MaxConnsPerHost int
	// Header holds extra headers merged into every request, after the
	// client's own defaults. Useful for API keys or tenant headers.
	Header http.Header
}

// DefaultConfig returns sensible defaults for the catalog client.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://api.example.com",
		Timeout:         30 * time.Second,
		MaxConnsPerHost: 100,
	}
}

// Client is a typed HTTP client for the catalog API. Every method
// returns a Response or Paginated envelope and never a Go error; see
// Response for the fail-soft contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
	tokens     TokenSource
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates a catalog client. tokens may be nil, in which case all
// requests go out unauthenticated. logger may be nil.
func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxConnsPerHost <= 0 {
		cfg.MaxConnsPerHost = DefaultConfig().MaxConnsPerHost
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		header: cfg.Header.Clone(),
		tokens: tokens,
		logger: logger,
		tracer: tracing.Tracer("storefront/catalog"),
	}
}

// --- Products ---

// GetProducts lists products. page defaults to 1 and limit to
// DefaultProductLimit when out of range; filters may be nil.
func (c *Client) GetProducts(ctx context.Context, page, limit int, filters *SearchFilters) Paginated[domain.Product] {
	page, limit = normalizePage(page, limit, DefaultProductLimit)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	filters.encode(q)

	return doPage[domain.Product](ctx, c, http.MethodGet, "/products", "/products", q, nil, page, limit)
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) Response[domain.Product] {
	return do[domain.Product](ctx, c, http.MethodGet, "/products/{id}", "/products/"+url.PathEscape(id), nil, nil)
}

// GetFeaturedProducts fetches the products curated for the storefront's
// featured section.
func (c *Client) GetFeaturedProducts(ctx context.Context) Response[[]domain.Product] {
	return do[[]domain.Product](ctx, c, http.MethodGet, "/products/featured", "/products/featured", nil, nil)
}

// GetNewProducts fetches recently added products.
func (c *Client) GetNewProducts(ctx context.Context) Response[[]domain.Product] {
	return do[[]domain.Product](ctx, c, http.MethodGet, "/products/new", "/products/new", nil, nil)
}

// GetRelatedProducts fetches products related to the given product.
func (c *Client) GetRelatedProducts(ctx context.Context, productID string) Response[[]domain.Product] {
	return do[[]domain.Product](ctx, c, http.MethodGet, "/products/{id}/related",
		"/products/"+url.PathEscape(productID)+"/related", nil, nil)
}

// SearchProducts searches the catalog. Only the category and sort
// filters apply to search; the rest are ignored by the endpoint.
func (c *Client) SearchProducts(ctx context.Context, query string, page, limit int, filters *SearchFilters) Paginated[domain.Product] {
	page, limit = normalizePage(page, limit, DefaultProductLimit)

	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	filters.encodeSearch(q)

	return doPage[domain.Product](ctx, c, http.MethodGet, "/products/search", "/products/search", q, nil, page, limit)
}

// --- Categories ---

// GetCategories lists all categories.
func (c *Client) GetCategories(ctx context.Context) Response[[]domain.Category] {
	return do[[]domain.Category](ctx, c, http.MethodGet, "/categories", "/categories", nil, nil)
}

// GetCategory fetches a category by slug.
func (c *Client) GetCategory(ctx context.Context, slug string) Response[domain.Category] {
	return do[domain.Category](ctx, c, http.MethodGet, "/categories/{slug}", "/categories/"+url.PathEscape(slug), nil, nil)
}

// GetFeaturedCategories fetches the featured categories.
func (c *Client) GetFeaturedCategories(ctx context.Context) Response[[]domain.Category] {
	return do[[]domain.Category](ctx, c, http.MethodGet, "/categories/featured", "/categories/featured", nil, nil)
}

// --- Reviews ---

// GetProductReviews lists reviews for a product. limit defaults to
// DefaultReviewLimit.
func (c *Client) GetProductReviews(ctx context.Context, productID string, page, limit int) Paginated[domain.Review] {
	page, limit = normalizePage(page, limit, DefaultReviewLimit)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	return doPage[domain.Review](ctx, c, http.MethodGet, "/products/{id}/reviews",
		"/products/"+url.PathEscape(productID)+"/reviews", q, nil, page, limit)
}

// AddReview submits a new review. The server assigns the ID, creation
// timestamp and initial helpful count; the returned envelope carries the
// fully populated review. Invalid input fails the envelope without a
// network call.
func (c *Client) AddReview(ctx context.Context, review NewReview) Response[domain.Review] {
	if err := validator.Validate(review); err != nil {
		return failed[domain.Review]("invalid review: " + err.Error())
	}
	return do[domain.Review](ctx, c, http.MethodPost, "/reviews", "/reviews", nil, review)
}

// --- Newsletter ---

// SubscribeNewsletter subscribes the given address to the newsletter
// and returns the server's confirmation message.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) Response[NewsletterConfirmation] {
	payload := newsletterSubscription{Email: email}
	if err := validator.Validate(payload); err != nil {
		return failed[NewsletterConfirmation]("invalid subscription: " + err.Error())
	}
	return do[NewsletterConfirmation](ctx, c, http.MethodPost, "/newsletter/subscribe", "/newsletter/subscribe", nil, payload)
}

// --- Request execution ---

// do executes a request and decodes the envelope. route is the path
// template used for metric and span labels; path is the concrete URL
// path.
func do[T any](ctx context.Context, c *Client, method, route, path string, query url.Values, payload any) Response[T] {
	body, err := c.roundTrip(ctx, method, route, path, query, payload)
	if err != nil {
		return failed[T](err.Error())
	}

	var out Response[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return failed[T]("decode response: " + err.Error())
	}
	return out
}

// doPage is do for paginated endpoints. Failed envelopes still carry
// the requested page window.
func doPage[T any](ctx context.Context, c *Client, method, route, path string, query url.Values, payload any, page, limit int) Paginated[T] {
	body, err := c.roundTrip(ctx, method, route, path, query, payload)
	if err != nil {
		return failedPage[T](err.Error(), page, limit)
	}

	var out Paginated[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return failedPage[T]("decode response: "+err.Error(), page, limit)
	}
	return out
}

// roundTrip performs one HTTP exchange and returns the response body.
// Non-2xx statuses become a StatusError. The caller owns turning any
// returned error into a failed envelope.
func (c *Client) roundTrip(ctx context.Context, method, route, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range c.header {
		req.Header[key] = values
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		switch {
		case err != nil:
			c.logger.DebugContext(ctx, "read bearer token", slog.String("error", err.Error()))
		case token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	ctx, span := c.tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		apiRequestsTotal.WithLabelValues(method, route, "error").Inc()
		apiRequestDuration.WithLabelValues(method, route).Observe(duration)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.WarnContext(ctx, "catalog request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("request %s: %w", route, err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := strconv.Itoa(resp.StatusCode)
	apiRequestsTotal.WithLabelValues(method, route, status).Inc()
	apiRequestDuration.WithLabelValues(method, route).Observe(duration)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		span.SetStatus(codes.Error, "non-2xx status")
		c.logger.WarnContext(ctx, "catalog request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &StatusError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return raw, nil
}

// normalizePage applies the listing defaults for out-of-range paging.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
