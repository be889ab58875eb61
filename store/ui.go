package store

import "sync"

// UIStore holds ephemeral presentation flags: the search query and the
// open/closed state of the search panel and mobile menu. It is never
// persisted.
type UIStore struct {
	notifier

	mu               sync.Mutex
	searchQuery      string
	isSearchOpen     bool
	isMobileMenuOpen bool
}

// NewUIStore creates an empty UI flag store.
func NewUIStore() *UIStore {
	return &UIStore{}
}

// SetSearchQuery records the current search text.
func (s *UIStore) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
	s.notify()
}

// SearchQuery returns the current search text.
func (s *UIStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// ToggleSearch flips the search panel's visibility.
func (s *UIStore) ToggleSearch() {
	s.mu.Lock()
	s.isSearchOpen = !s.isSearchOpen
	s.mu.Unlock()
	s.notify()
}

// IsSearchOpen reports whether the search panel is visible.
func (s *UIStore) IsSearchOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSearchOpen
}

// ToggleMobileMenu flips the mobile menu's visibility.
func (s *UIStore) ToggleMobileMenu() {
	s.mu.Lock()
	s.isMobileMenuOpen = !s.isMobileMenuOpen
	s.mu.Unlock()
	s.notify()
}

// CloseMobileMenu closes the mobile menu regardless of current state.
func (s *UIStore) CloseMobileMenu() {
	s.mu.Lock()
	s.isMobileMenuOpen = false
	s.mu.Unlock()
	s.notify()
}

// IsMobileMenuOpen reports whether the mobile menu is visible.
func (s *UIStore) IsMobileMenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isMobileMenuOpen
}
