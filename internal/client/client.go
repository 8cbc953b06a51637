// Package client talks to the recipe book HTTP API. Its gateways satisfy
// the store interfaces so a CLI can keep the same client-side state a
// browser would.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// Client is an API client holding at most one session token
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries int
	RetryDelay time.Duration

	mu    sync.RWMutex
	token string
}

// New creates a client for baseURL
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTP:       &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Token returns the current session token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session token; empty means anonymous
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// envelope is the common response body
type envelope struct {
	Success bool            `json:"success"`
	Item    json.RawMessage `json:"item"`
	Items   json.RawMessage `json:"items"`
	Error   string          `json:"error"`
}

// do sends one request and decodes the envelope. Only GETs are retried,
// and only on transport errors or 5xx.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) (*envelope, error) {
	attempts := 1
	if method == http.MethodGet {
		attempts += c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		env, retry, err := c.once(ctx, method, path, contentType, body)
		if err == nil {
			return env, nil
		}
		lastErr = err
		if !retry {
			break
		}
		slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt, "path", path)
	}
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, method, path, contentType string, body []byte) (*envelope, bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(auth.HeaderAuth, auth.BearerPrefix+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, resp.StatusCode >= 500, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		return nil, resp.StatusCode >= 500, statusError(resp.StatusCode, env.Error)
	}
	return &env, false, nil
}

// statusError rebuilds the gateway error the server reported
func statusError(status int, message string) error {
	kind := domain.ErrInternal
	switch status {
	case http.StatusUnauthorized:
		kind = domain.ErrUnauthorized
	case http.StatusBadRequest:
		kind = domain.ErrValidation
	case http.StatusNotFound:
		kind = domain.ErrNotFoundOrForbidden
	case http.StatusConflict:
		kind = domain.ErrConflict
	case http.StatusTooManyRequests:
		kind = domain.ErrRateLimited
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &domain.Error{Kind: kind, Message: message}
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}) (*envelope, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	return c.do(ctx, method, path, contentTypeJSON, body)
}

func (c *Client) doForm(ctx context.Context, method, path string, form url.Values) (*envelope, error) {
	return c.do(ctx, method, path, contentTypeForm, []byte(form.Encode()))
}

func decodeInto[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode payload: %w", err)
	}
	return out, nil
}

// SignUp registers an account
func (c *Client) SignUp(ctx context.Context, form validation.SignupForm) (*domain.User, error) {
	env, err := c.doJSON(ctx, http.MethodPost, pathSignUp, form)
	if err != nil {
		return nil, err
	}
	u, err := decodeInto[domain.User](env.Item)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn exchanges credentials for a token and keeps it
func (c *Client) SignIn(ctx context.Context, creds validation.Credentials) (*auth.Token, error) {
	env, err := c.doJSON(ctx, http.MethodPost, pathSignIn, creds)
	if err != nil {
		return nil, err
	}
	tok, err := decodeInto[auth.Token](env.Item)
	if err != nil {
		return nil, err
	}
	c.SetToken(tok.Value)
	return &tok, nil
}

// SignOut revokes the session server side and forgets the token
func (c *Client) SignOut(ctx context.Context) error {
	defer c.SetToken("")
	if c.Token() == "" {
		return nil
	}
	_, err := c.doJSON(ctx, http.MethodPost, pathSignOut, nil)
	return err
}

// Session asks the server who the token belongs to
func (c *Client) Session(ctx context.Context) (domain.Session, error) {
	env, err := c.doJSON(ctx, http.MethodGet, pathSession, nil)
	if err != nil {
		return domain.Session{}, err
	}
	return decodeInto[domain.Session](env.Item)
}

// GetRecipe returns one readable recipe, or nil when it is missing or
// not visible to the session
func (c *Client) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	env, err := c.doJSON(ctx, http.MethodGet, pathRecipes+"/"+url.PathEscape(id), nil)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.ErrNotFoundOrForbidden {
			return nil, nil
		}
		return nil, err
	}
	r, err := decodeInto[domain.Recipe](env.Item)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Catalog lists public recipes, newest first
func (c *Client) Catalog(ctx context.Context, limit int) ([]domain.Recipe, error) {
	path := pathCatalog
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	env, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]domain.Recipe](env.Items)
}
