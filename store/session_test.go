package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront-sdk/domain"
	"github.com/utafrali/storefront-sdk/persist/memory"
)

func testUser() domain.User {
	return domain.User{
		ID:    "u-1",
		Email: "jamie@example.com",
		Name:  "Jamie",
		Preferences: domain.UserPreferences{
			Theme:      domain.ThemeSystem,
			Newsletter: true,
		},
	}
}

func TestSessionStore_LoginLogout(t *testing.T) {
	s := NewSessionStore(context.Background(), memory.New(), discardLogger())

	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)

	s.Login(context.Background(), testUser())

	assert.True(t, s.IsAuthenticated())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "jamie@example.com", u.Email)

	s.Logout(context.Background())

	assert.False(t, s.IsAuthenticated())
	_, ok = s.User()
	assert.False(t, ok)
}

func TestSessionStore_UpdateUser_ShallowMerge(t *testing.T) {
	s := NewSessionStore(context.Background(), memory.New(), discardLogger())
	s.Login(context.Background(), testUser())

	name := "Jamie Q"
	prefs := domain.UserPreferences{Theme: domain.ThemeDark}
	s.UpdateUser(context.Background(), UserUpdate{Name: &name, Preferences: &prefs})

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Jamie Q", u.Name)
	assert.Equal(t, domain.ThemeDark, u.Preferences.Theme)
	// Untouched fields survive the patch.
	assert.Equal(t, "jamie@example.com", u.Email)
}

func TestSessionStore_UpdateUser_NoOpWhenLoggedOut(t *testing.T) {
	s := NewSessionStore(context.Background(), memory.New(), discardLogger())

	name := "Nobody"
	s.UpdateUser(context.Background(), UserUpdate{Name: &name})

	assert.False(t, s.IsAuthenticated())
}

func TestSessionStore_PersistsAndHydrates(t *testing.T) {
	p := memory.New()
	first := NewSessionStore(context.Background(), p, discardLogger())
	first.Login(context.Background(), testUser())

	second := NewSessionStore(context.Background(), p, discardLogger())

	assert.True(t, second.IsAuthenticated())
	u, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, "u-1", u.ID)
}

func TestSessionStore_UserReturnsCopy(t *testing.T) {
	s := NewSessionStore(context.Background(), memory.New(), discardLogger())
	s.Login(context.Background(), testUser())

	u, _ := s.User()
	u.Email = "tampered@example.com"

	again, _ := s.User()
	assert.Equal(t, "jamie@example.com", again.Email)
}
