// Package forkify provides a client for the forkify recipe API.
package forkify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
)

const (
	getPath    = "/api/get"
	searchPath = "/api/search"

	// maxBodyBytes caps how much of an upstream response is read.
	maxBodyBytes = 4 << 20
)

var (
	// ErrMalformedResponse indicates a 2xx response whose body could not be used.
	ErrMalformedResponse = errors.New("malformed recipe API response")
	// ErrUnexpectedStatus indicates a non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected recipe API status")
)

// NetworkError reports a failed or unusable recipe API call.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

// Error implements error.
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("recipe api %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("recipe api %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is or wraps a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// RawRecipe is a recipe as returned by the API, ingredients unparsed.
type RawRecipe struct {
	ID          string   `json:"recipe_id"`
	Title       string   `json:"title"`
	Publisher   string   `json:"publisher"`
	SourceURL   string   `json:"source_url"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
}

type getResponse struct {
	Recipe *RawRecipe `json:"recipe"`
}

type searchHit struct {
	ID        string `json:"recipe_id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"image_url"`
}

type searchResponse struct {
	Count   int          `json:"count"`
	Recipes *[]searchHit `json:"recipes"`
}

// Source is the recipe API surface used by the services.
type Source interface {
	GetRecipe(ctx context.Context, id string) (*RawRecipe, error)
	Search(ctx context.Context, query string) ([]model.RecipeSummary, error)
}

// Client calls the forkify HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRecipe fetches a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*RawRecipe, error) {
	endpoint := c.baseURL + getPath + "?" + url.Values{"rId": {id}}.Encode()

	var body getResponse
	if err := c.getJSON(ctx, "get", endpoint, &body); err != nil {
		return nil, err
	}
	if body.Recipe == nil {
		return nil, &NetworkError{Op: "get", URL: endpoint, Err: fmt.Errorf("%w: missing recipe", ErrMalformedResponse)}
	}

	recipe := body.Recipe
	if recipe.ID == "" {
		recipe.ID = id
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	return recipe, nil
}

// Search returns every recipe matching query.
func (c *Client) Search(ctx context.Context, query string) ([]model.RecipeSummary, error) {
	endpoint := c.baseURL + searchPath + "?" + url.Values{"q": {query}}.Encode()

	var body searchResponse
	if err := c.getJSON(ctx, "search", endpoint, &body); err != nil {
		return nil, err
	}
	if body.Recipes == nil {
		return nil, &NetworkError{Op: "search", URL: endpoint, Err: fmt.Errorf("%w: missing recipes", ErrMalformedResponse)}
	}

	results := make([]model.RecipeSummary, 0, len(*body.Recipes))
	for _, hit := range *body.Recipes {
		results = append(results, model.RecipeSummary{
			ID:       hit.ID,
			Title:    hit.Title,
			Author:   hit.Publisher,
			ImageURL: hit.ImageURL,
		})
	}
	return results, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "network_error"
		}
		metrics.RecordUpstreamRequest(op, time.Since(start), outcome)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &NetworkError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &NetworkError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return &NetworkError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	return nil
}
