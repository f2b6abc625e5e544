package entities

import (
	"fmt"
	"time"
)

// Theme represents the UI theme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// LinkCopyWindow is how long a copy-link acknowledgement stays visible
// before it self-resets.
const LinkCopyWindow = 2000 * time.Millisecond

// Preferences holds a wallet's session-scoped settings. They live only for
// the session TTL; losing them on expiry is a documented limitation, not a
// bug.
type Preferences struct {
	DefaultCurrency string `json:"defaultCurrency"`
	DefaultValidity int64  `json:"defaultValidity"`
	Theme           Theme  `json:"theme"`
	Notifications   bool   `json:"notifications"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultCurrency: "ETH",
		DefaultValidity: 1800,
		Theme:           ThemeDark,
		Notifications:   true,
	}
}

// Validate checks the enumerated fields.
func (p Preferences) Validate() error {
	switch p.DefaultCurrency {
	case "ETH", "BTC", "USDC":
	default:
		return fmt.Errorf("unsupported default currency %q", p.DefaultCurrency)
	}
	if !IsValidDuration(p.DefaultValidity) {
		return fmt.Errorf("unsupported default validity %d", p.DefaultValidity)
	}
	if p.Theme != ThemeDark && p.Theme != ThemeLight {
		return fmt.Errorf("unsupported theme %q", p.Theme)
	}
	return nil
}
