package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"pokeforge/src/logx"
)

// SessionCookie is the name of the HttpOnly cookie carrying the signed session
// token.
const SessionCookie = "authorization"

// Handler implements the OAuth bridge: redirect to the provider, handle the
// callback, and tear the session down on logout. Provider failures are
// terminal for the request; the user restarts the flow from the frontend.
type Handler struct {
	oauthConfig *oauth2.Config
	stateStore  *StateStore
	userStore   *UserStore
	tokens      *TokenService
	config      *Config

	// userInfoURL overrides the Google userinfo endpoint in tests.
	userInfoURL string
}

func NewHandler(
	oauthConfig *oauth2.Config,
	stateStore *StateStore,
	userStore *UserStore,
	tokens *TokenService,
	config *Config,
) *Handler {
	return &Handler{
		oauthConfig: oauthConfig,
		stateStore:  stateStore,
		userStore:   userStore,
		tokens:      tokens,
		config:      config,
	}
}

// Login issues a CSRF state and redirects the browser to the provider's
// authorization URL. No local state beyond the stored nonce is touched.
func (h *Handler) Login(c *gin.Context) {
	state, err := h.stateStore.Issue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state"})
		return
	}

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

// Callback is the provider redirect target. On success it resolves or creates
// the local user, issues a session token, sets the cookie and redirects to the
// frontend. Every failure redirects to the frontend failure path without
// issuing a cookie.
func (h *Handler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		logx.Warn("oauth provider reported an error", "error", errParam)
		h.redirectFailure(c)
		return
	}

	state := c.Query("state")
	code := c.Query("code")

	if state == "" || code == "" {
		h.redirectFailure(c)
		return
	}

	valid, err := h.stateStore.Consume(c.Request.Context(), state)
	if err != nil {
		logx.Error(err, "failed to validate oauth state")
		h.redirectFailure(c)
		return
	}
	if !valid {
		logx.Warn("invalid or expired oauth state")
		h.redirectFailure(c)
		return
	}

	token, err := h.oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		logx.Error(err, "failed to exchange authorization code")
		h.redirectFailure(c)
		return
	}

	googleUser, err := fetchGoogleUserInfo(c.Request.Context(), h.userInfoURL, token.AccessToken)
	if err != nil {
		logx.Error(err, "failed to fetch google user info")
		h.redirectFailure(c)
		return
	}

	user := h.userStore.GetOrCreate(googleUser)

	sessionToken, err := h.tokens.Issue(user.ID)
	if err != nil {
		logx.Error(err, "failed to issue session token", "user_id", user.ID)
		h.redirectFailure(c)
		return
	}

	h.setSessionCookie(c, sessionToken, int(h.config.TokenTTL.Seconds()))

	logx.Info("user signed in", "user_id", user.ID, "email", user.Email)

	c.Redirect(http.StatusFound, h.frontendURL())
}

// Logout clears the session cookie. The token itself stays valid until expiry;
// there is no server-side session table to invalidate.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Profile returns the authenticated user resolved by the session guard.
func (h *Handler) Profile(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, ok := userInterface.(*User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user data"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if h.config.CookieSameSite == "strict" {
		sameSite = http.SameSiteStrictMode
	} else if h.config.CookieSameSite == "none" {
		sameSite = http.SameSiteNoneMode
	}

	c.SetSameSite(sameSite)

	cookieDomain := h.config.CookieDomain
	if cookieDomain == "localhost" {
		cookieDomain = ""
	}

	c.SetCookie(
		SessionCookie,
		value,
		maxAge,
		"/",
		cookieDomain,
		h.config.CookieSecure,
		true,
	)
}

func (h *Handler) frontendURL() string {
	if h.config.FrontendURL == "" {
		return "http://localhost:3000"
	}
	return h.config.FrontendURL
}

func (h *Handler) redirectFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendURL()+"/auth/failure")
}
