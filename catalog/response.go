package catalog

import "fmt"

// Response is the uniform envelope returned by every client method.
// Failures of any kind (network, non-2xx status, malformed body) are
// reported through Success and Error rather than a Go error, so callers
// check Success instead of handling errors. Data holds the zero value of
// T when Success is false.
type Response[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pagination describes the page window of a paginated result.
// TotalPages is ceil(Total/Limit); all fields are non-negative.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginated is the envelope for listing endpoints. The pagination block
// is always present, including on failures and empty result sets.
type Paginated[T any] struct {
	Response[[]T]
	Pagination Pagination `json:"pagination"`
}

// NewPagination builds a pagination block for the given window. A zero
// total yields zero total pages.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// StatusError reports a non-2xx HTTP response from the catalog API. It
// never escapes the client: the request executor folds it into a failed
// envelope.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// failed builds a failed envelope with a zero-valued payload.
func failed[T any](msg string) Response[T] {
	return Response[T]{Success: false, Error: msg}
}

// failedPage builds a failed paginated envelope that still carries the
// requested page window.
func failedPage[T any](msg string, page, limit int) Paginated[T] {
	return Paginated[T]{
		Response:   Response[[]T]{Success: false, Error: msg},
		Pagination: NewPagination(page, limit, 0),
	}
}
