// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api talks to the forkify recipe API. Every request is raced
// against the configured timeout; responses are normalized into
// pkg/types shapes and failures are classified into the error kinds
// declared there.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/httputil"
	"github.com/pdiddy/forkify/pkg/types"
)

// Client is a recipe API client.
type Client struct {
	HTTP   *http.Client
	Config types.HTTPConfig
	Logger *zap.Logger
}

// New returns a Client with defaults applied to cfg.
func New(cfg types.HTTPConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	full := types.Config{API: cfg}.WithDefaults()
	return &Client{
		HTTP:   &http.Client{},
		Config: full.API,
		Logger: logger,
	}
}

// Fetch issues a request to rawURL and decodes the response envelope. A nil
// payload sends a GET; otherwise payload is JSON-encoded and POSTed.
//
// Errors wrap types.ErrTimeout when the timer settles first,
// types.ErrNetwork for transport failures and non-2xx statuses (as a
// *types.StatusError, which reports types.ErrNotFound for 404), and
// types.ErrParse when the body is not a valid envelope.
func (c *Client) Fetch(ctx context.Context, rawURL string, payload any) (*Envelope, error) {
	method := http.MethodGet
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding payload: %w", err)
		}
		method = http.MethodPost
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.Config.UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.Logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", redactKey(req.URL)),
	)
	log.Debug("api request")

	resp, err := httputil.Do(ctx, c.HTTP, req, c.Config.Timeout)
	if err != nil {
		log.Warn("api request failed", zap.Error(err))
		return nil, err
	}

	var env Envelope
	parseErr := json.Unmarshal(resp.Body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if parseErr == nil {
			msg = env.Message
		}
		serr := types.NewStatusError(resp.StatusCode, msg)
		log.Warn("api error status", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, serr
	}
	if parseErr != nil {
		log.Warn("api response unparseable", zap.Error(parseErr))
		return nil, fmt.Errorf("%w: %v", types.ErrParse, parseErr)
	}
	if env.Status == "fail" || env.Status == "error" {
		return nil, fmt.Errorf("%w: %s", types.ErrNetwork, env.Message)
	}

	log.Debug("api response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(resp.Body)))
	return &env, nil
}

// GetRecipe loads one recipe by id. The API rejects unknown ids with 400
// rather than 404; both surface as types.ErrNotFound.
func (c *Client) GetRecipe(ctx context.Context, id string) (*types.Recipe, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty recipe id", types.ErrNotFound)
	}
	env, err := c.Fetch(ctx, c.endpoint(url.PathEscape(id), nil), nil)
	if err != nil {
		var serr *types.StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusBadRequest {
			return nil, serr.AsNotFound()
		}
		return nil, err
	}
	if env.Data.Recipe == nil {
		return nil, fmt.Errorf("%w: response has no recipe", types.ErrParse)
	}
	return normalizeRecipe(env.Data.Recipe), nil
}

// SearchRecipes returns every recipe summary matching query. An empty
// result set is not an error at this layer.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]types.SearchResult, error) {
	env, err := c.Fetch(ctx, c.endpoint("", url.Values{"search": {query}}), nil)
	if err != nil {
		return nil, err
	}
	return normalizeResults(env.Data.Recipes), nil
}

// CreateRecipe uploads r and returns the stored recipe, which carries the
// server-assigned id and the upload key.
func (c *Client) CreateRecipe(ctx context.Context, r *types.Recipe) (*types.Recipe, error) {
	env, err := c.Fetch(ctx, c.endpoint("", nil), denormalizeRecipe(r))
	if err != nil {
		return nil, err
	}
	if env.Data.Recipe == nil {
		return nil, fmt.Errorf("%w: response has no recipe", types.ErrParse)
	}
	return normalizeRecipe(env.Data.Recipe), nil
}

// endpoint joins the base URL with an optional path segment and query,
// appending the API key when one is configured.
func (c *Client) endpoint(segment string, params url.Values) string {
	u := strings.TrimRight(c.Config.BaseURL, "/")
	if segment != "" {
		u += "/" + segment
	}
	if params == nil {
		params = url.Values{}
	}
	if c.Config.APIKey != "" {
		params.Set("key", c.Config.APIKey)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func redactKey(u *url.URL) string {
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		c := *u
		c.RawQuery = q.Encode()
		return c.String()
	}
	return u.String()
}
