package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

var (
	_ model.AuthAPI       = (*Client)(nil)
	_ model.IngredientAPI = (*Client)(nil)
	_ model.RecipeAPI     = (*Client)(nil)
	_ model.ProfileAPI    = (*Client)(nil)
	_ model.AnalyticsAPI  = (*Client)(nil)
)

// Client talks to the remote recipe service over HTTP. Authorized calls
// attach the current session token; 401-class responses invoke the
// session-expired callback before returning.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           model.TokenProvider
	onSessionExpired func()
	logger           *logger.Logger
}

// NewClient creates a service client. Request timeouts are owned by the
// transport; callers pass context for cancellation only.
func NewClient(baseURL string, timeout time.Duration, tokens model.TokenProvider, logger *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// OnSessionExpired registers the callback invoked when the service rejects
// the session token. The token is read-only here; the callback owns teardown.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}

		var payload struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}

		c.logger.Debug("API client: request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestID)

		if (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) && c.onSessionExpired != nil {
			c.onSessionExpired()
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	buf, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, bytes.NewReader(buf), "application/json", out)
}

// Login exchanges credentials for a profile and access token.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result model.LoginResult
	if err := c.postJSON(ctx, "/auth/login", body, &result); err != nil {
		return model.LoginResult{}, err
	}

	return result, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, params model.RegisterParams) error {
	return c.postJSON(ctx, "/auth/register", params, nil)
}

// ExtractFromText asks the service to pull ingredient names out of free text.
func (c *Client) ExtractFromText(ctx context.Context, text string) ([]string, error) {
	body := struct {
		Text string `json:"text"`
	}{Text: text}

	var result struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := c.postJSON(ctx, "/ingredients/extract-from-text", body, &result); err != nil {
		return nil, err
	}

	return result.Ingredients, nil
}

// ExtractFromAudio uploads a captured recording for transcription and
// ingredient extraction.
func (c *Client) ExtractFromAudio(ctx context.Context, audio []byte) ([]string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", "recording.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to write audio payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := c.do(ctx, http.MethodPost, "/ingredients/extract-from-audio", &buf, mw.FormDataContentType(), &result); err != nil {
		return nil, err
	}

	return result.Ingredients, nil
}

// Generate submits a frozen generation request and returns the recipe.
func (c *Client) Generate(ctx context.Context, req model.GenerationRequest) (model.Recipe, error) {
	var recipe model.Recipe
	if err := c.postJSON(ctx, "/recipes/generate", req, &recipe); err != nil {
		return model.Recipe{}, err
	}

	return recipe, nil
}

// ToggleFavorite flips the server-side favorite state of a recipe and
// returns the new state.
func (c *Client) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	var result struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.do(ctx, http.MethodPost, "/recipes/"+url.PathEscape(recipeID)+"/favorite", nil, "", &result); err != nil {
		return false, err
	}

	return result.IsFavorite, nil
}

// History returns a page of previously generated recipes.
func (c *Client) History(ctx context.Context, limit, skip int) ([]model.Recipe, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var result struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	if err := c.do(ctx, http.MethodGet, "/recipes/history?"+q.Encode(), nil, "", &result); err != nil {
		return nil, err
	}

	return result.Recipes, nil
}

// DeleteFromHistory removes one recipe from the user's history.
func (c *Client) DeleteFromHistory(ctx context.Context, recipeID string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/history/"+url.PathEscape(recipeID), nil, "", nil)
}

// Favorites returns the user's favorite recipes.
func (c *Client) Favorites(ctx context.Context) ([]model.Recipe, error) {
	var result struct {
		Favorites []model.Recipe `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/recipes/favorites", nil, "", &result); err != nil {
		return nil, err
	}

	return result.Favorites, nil
}

// Profile fetches the authoritative profile record.
func (c *Client) Profile(ctx context.Context) (model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, "", &profile); err != nil {
		return model.UserProfile{}, err
	}

	return profile, nil
}

// UpdateProfile replaces the profile record and returns the stored version.
func (c *Client) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.UserProfile, error) {
	buf, err := json.Marshal(params)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to encode request body: %w", err)
	}

	var profile model.UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/me", bytes.NewReader(buf), "application/json", &profile); err != nil {
		return model.UserProfile{}, err
	}

	return profile, nil
}

// Dashboard fetches the aggregate usage statistics.
func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var dashboard model.Dashboard
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, "", &dashboard); err != nil {
		return model.Dashboard{}, err
	}

	return dashboard, nil
}
