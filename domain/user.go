package domain

// Themes a user can select.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// ValidThemes returns all valid UI themes.
func ValidThemes() []string {
	return []string{ThemeLight, ThemeDark, ThemeSystem}
}

// IsValidTheme reports whether t is a known theme.
func IsValidTheme(t string) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// Address types.
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// User is the session principal. It arrives already authenticated from an
// upstream auth flow; nothing in this SDK validates it.
type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar,omitempty"`
	Addresses   []Address       `json:"addresses"`
	Preferences UserPreferences `json:"preferences"`
}

// Address is a shipping or billing record. Neither this SDK nor, as far
// as observed, the remote service enforces a single default per type.
type Address struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}

// UserPreferences holds per-user presentation and contact settings.
type UserPreferences struct {
	Theme         string            `json:"theme"`
	Newsletter    bool              `json:"newsletter"`
	Notifications NotificationPrefs `json:"notifications"`
}

// NotificationPrefs toggles the notification channels a user accepts.
type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}
