// Package catalogtest provides an in-process fake of the catalog API
// for tests and offline development. It serves the full HTTP surface
// the catalog client consumes, backed by in-memory fixtures, and can be
// put into failure modes to exercise the client's fail-soft contract.
package catalogtest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/utafrali/storefront-sdk/domain"
)

// Server is a fake catalog API. The zero failure mode serves fixtures
// normally; setting FailStatus makes every endpoint return that status,
// and MalformedBody makes every endpoint return invalid JSON.
type Server struct {
	mu            sync.Mutex
	products      []domain.Product
	categories    []domain.Category
	reviews       map[string][]domain.Review
	subscribers   []string
	failStatus    int
	malformedBody bool

	router chi.Router
}

// New creates a fake catalog server seeded with Fixtures.
func New() *Server {
	products, categories, reviews := Fixtures()
	s := &Server{
		products:   products,
		categories: categories,
		reviews:    reviews,
	}

	r := chi.NewRouter()
	r.Get("/products", s.handleListProducts)
	r.Get("/products/featured", s.handleFeaturedProducts)
	r.Get("/products/new", s.handleNewProducts)
	r.Get("/products/search", s.handleSearchProducts)
	r.Get("/products/{id}", s.handleGetProduct)
	r.Get("/products/{id}/related", s.handleRelatedProducts)
	r.Get("/products/{id}/reviews", s.handleProductReviews)
	r.Get("/categories", s.handleListCategories)
	r.Get("/categories/featured", s.handleFeaturedCategories)
	r.Get("/categories/{slug}", s.handleGetCategory)
	r.Post("/reviews", s.handleAddReview)
	r.Post("/newsletter/subscribe", s.handleSubscribe)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	failStatus, malformed := s.failStatus, s.malformedBody
	s.mu.Unlock()

	if failStatus != 0 {
		http.Error(w, http.StatusText(failStatus), failStatus)
		return
	}
	if malformed {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [truncated`))
		return
	}

	s.router.ServeHTTP(w, r)
}

// SetFailStatus makes every endpoint respond with the given status.
// Zero restores normal behavior.
func (s *Server) SetFailStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// SetMalformedBody toggles responding with invalid JSON.
func (s *Server) SetMalformedBody(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.malformedBody = v
}

// Subscribers returns the newsletter addresses received so far.
func (s *Server) Subscribers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// --- Handlers ---

type envelope struct {
	Data    any    `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type paginatedEnvelope struct {
	envelope
	Pagination pagination `json:"pagination"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Data: data, Success: true})
}

func writePage(w http.ResponseWriter, data any, page, limit, total int) {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	writeJSON(w, http.StatusOK, paginatedEnvelope{
		envelope: envelope{Data: data, Success: true},
		Pagination: pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func queryInt(r *http.Request, key, fallback string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		raw = fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		v, _ = strconv.Atoi(fallback)
	}
	return v
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	matched := filterProducts(s.products, r)
	s.mu.Unlock()

	page := queryInt(r, "page", "1")
	limit := queryInt(r, "limit", "12")
	total := len(matched)
	writePage(w, pageSlice(matched, page, limit), page, limit, total)
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))

	s.mu.Lock()
	var matched []domain.Product
	for _, p := range s.products {
		if query != "" && !productMatches(p, query) {
			continue
		}
		matched = append(matched, p)
	}
	s.mu.Unlock()

	if category := r.URL.Query().Get("category"); category != "" {
		kept := matched[:0]
		for _, p := range matched {
			if strings.EqualFold(p.Category, category) {
				kept = append(kept, p)
			}
		}
		matched = kept
	}
	sortProducts(matched, r.URL.Query().Get("sortBy"))

	page := queryInt(r, "page", "1")
	limit := queryInt(r, "limit", "12")
	writePage(w, pageSlice(matched, page, limit), page, limit, len(matched))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			writeData(w, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Success: false, Error: "product not found"})
}

func (s *Server) handleFeaturedProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Product{}
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	writeData(w, out)
}

func (s *Server) handleNewProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Product{}
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	writeData(w, out)
}

func (s *Server) handleRelatedProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	var subject *domain.Product
	for i := range s.products {
		if s.products[i].ID == id {
			subject = &s.products[i]
			break
		}
	}
	if subject == nil {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Error: "product not found"})
		return
	}

	out := []domain.Product{}
	for _, p := range s.products {
		if p.ID != id && strings.EqualFold(p.Category, subject.Category) {
			out = append(out, p)
		}
	}
	writeData(w, out)
}

func (s *Server) handleProductReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	reviews := append([]domain.Review(nil), s.reviews[id]...)
	s.mu.Unlock()

	page := queryInt(r, "page", "1")
	limit := queryInt(r, "limit", "10")
	writePage(w, pageSlice(reviews, page, limit), page, limit, len(reviews))
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeData(w, s.categories)
}

func (s *Server) handleFeaturedCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Category{}
	for _, c := range s.categories {
		if c.IsFeatured {
			out = append(out, c)
		}
	}
	writeData(w, out)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			writeData(w, c)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Success: false, Error: "category not found"})
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid review payload"})
		return
	}

	review.ID = "r-" + uuid.NewString()
	review.HelpfulCount = 0
	review.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	if s.reviews == nil {
		s.reviews = make(map[string][]domain.Review)
	}
	s.reviews[review.ProductID] = append(s.reviews[review.ProductID], review)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, envelope{Data: review, Success: true})
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "invalid subscription payload"})
		return
	}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, payload.Email)
	s.mu.Unlock()

	writeData(w, map[string]string{"message": "subscribed " + payload.Email})
}

// --- Filtering ---

func filterProducts(products []domain.Product, r *http.Request) []domain.Product {
	q := r.URL.Query()
	category := q.Get("category")
	brands := q["brand"]
	minPrice, hasMin := parseFloat(q.Get("minPrice"))
	maxPrice, hasMax := parseFloat(q.Get("maxPrice"))
	rating, hasRating := parseFloat(q.Get("rating"))
	inStock := q.Get("inStock") == "true"

	var out []domain.Product
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if len(brands) > 0 && !containsFold(brands, p.Brand) {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		if hasRating && p.Rating < rating {
			continue
		}
		if inStock && p.Stock <= 0 {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Get("sortBy"))
	return out
}

func productMatches(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case "newest":
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

func pageSlice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
