package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrBlankIngredient is returned by Substitute for empty input.
var ErrBlankIngredient = errors.New("ingredient is empty")

const maxBody = 1 << 20

// Filters narrow the generated recipe. Empty values are left out.
type Filters struct {
	Diet    string `json:"diet,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description"`
	Filters     Filters  `json:"filters"`
}

type substituteRequest struct {
	Ingredient string `json:"ingredient"`
}

type substituteResponse struct {
	Substitutions []string `json:"substitutions"`
}

// Client talks to the recipe and substitution endpoints.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

// NewClient returns a client for baseURL. token may be empty.
func NewClient(baseURL, token string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("recipe-client"),
	}
}

// Generate asks the service for a recipe. Service errors come back as
// *ServiceError and unusable payloads as *ValidationError.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*Recipe, error) {
	if req.Ingredients == nil {
		req.Ingredients = []string{}
	}
	c.log.Debug("generating recipe",
		zap.Strings("ingredients", req.Ingredients),
		zap.String("diet", req.Filters.Diet),
		zap.String("cuisine", req.Filters.Cuisine))

	status, body, err := c.post(ctx, "/generate", req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, statusError(status, body)
	}
	r, err := Decode(body)
	if err != nil {
		c.log.Warn("unusable recipe payload", zap.Error(err))
		return nil, err
	}
	return r, nil
}

// Substitute returns substitution suggestions for one ingredient. The list
// may be empty.
func (c *Client) Substitute(ctx context.Context, ingredient string) ([]string, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return nil, ErrBlankIngredient
	}
	status, body, err := c.post(ctx, "/substitute", substituteRequest{Ingredient: ingredient})
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, statusError(status, body)
	}
	var resp substituteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ValidationError{Reason: "substitution response is not valid JSON"}
	}
	out := make([]string, 0, len(resp.Substitutions))
	for _, s := range resp.Substitutions {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("path", path), zap.Error(err))
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("response received",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))
	return resp.StatusCode, body, nil
}

// statusError prefers the service's own error message over the status code.
func statusError(status int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return &ServiceError{Message: e.Error}
	}
	return &ServiceError{Message: fmt.Sprintf("HTTP error! Status: %d", status)}
}
