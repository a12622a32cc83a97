package auth

import (
	"time"
)

// User is a locally registered account backed by a Google identity. The ID is
// assigned sequentially at creation and never changes; records live only in
// process memory.
type User struct {
	ID          int       `json:"id"`
	GoogleID    string    `json:"googleId"`
	DisplayName string    `json:"displayName"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Image       string    `json:"image"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

type OAuthState struct {
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Config carries the auth-related settings handed to the OAuth handler.
type Config struct {
	FrontendURL    string
	CookieDomain   string
	CookieSecure   bool
	CookieSameSite string
	TokenTTL       time.Duration
}
