// Package api is the REST client for the recipe book backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/potluck/recipebook/internal/models"
)

// TokenSource supplies the current session token for authenticated
// calls. The session manager implements it; requests always read the
// token at call time, so a background refresh is picked up immediately.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Error is a failed API call: the HTTP status plus the server-supplied
// message when one was decodable.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Credentials mirrors the sign-up/sign-in response body.
type Credentials struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/signup", map[string]string{"email": email, "password": password}, false, &creds)
	return creds, err
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/signin", map[string]string{"email": email, "password": password}, false, &creds)
	return creds, err
}

// RefreshToken trades the current token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodGet, "/refresh-token", nil, true, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Recipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := c.do(ctx, http.MethodGet, "/recipes", nil, false, &recipes)
	return recipes, err
}

func (c *Client) FavoriteRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := c.do(ctx, http.MethodGet, "/favorite-recipes", nil, true, &recipes)
	return recipes, err
}

func (c *Client) AddFavorite(ctx context.Context, recipeID string) error {
	return c.do(ctx, http.MethodPatch, "/favorite-recipes/add/"+recipeID, nil, true, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, recipeID string) error {
	return c.do(ctx, http.MethodPatch, "/favorite-recipes/delete/"+recipeID, nil, true, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		// The server expects the lowercase scheme exactly.
		req.Header.Set("Authorization", "bearer "+c.tokens.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{Status: resp.StatusCode}
		var detail struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Message = detail.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
