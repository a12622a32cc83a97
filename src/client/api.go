package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"pokeforge/src/auth"
	"pokeforge/src/models"
)

// ErrUnauthenticated is returned when the backend rejects a session-guarded
// call; the caller should restart the login flow.
var ErrUnauthenticated = errors.New("not authenticated")

// API is an HTTP client for the backend. It carries the session cookie in a
// jar, so a successful login in the same jar authenticates later calls.
type API struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPI(baseURL string) (*API, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &API{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Jar: jar,
		},
	}, nil
}

// LoginURL is the entry point the browser follows to start the OAuth flow.
func (a *API) LoginURL() string {
	return a.baseURL + "/api/google"
}

// Profile checks whether a valid session exists and returns the user.
func (a *API) Profile(ctx context.Context) (*auth.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/user-profile", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile check failed: status %d", resp.StatusCode)
	}

	var user auth.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	return &user, nil
}

// Generate submits one creation request and returns the generated image.
func (a *API) Generate(ctx context.Context, genReq *models.GenerateRequest) (*models.GenerateResponse, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/generate-pokemon", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error != "" {
			return nil, fmt.Errorf("generation failed: %s", errBody.Error)
		}
		return nil, fmt.Errorf("generation failed: status %d", resp.StatusCode)
	}

	var genResp models.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	return &genResp, nil
}

// Logout clears the session on the backend.
func (a *API) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/logout", nil)
	if err != nil {
		return err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout failed: status %d", resp.StatusCode)
	}

	return nil
}
