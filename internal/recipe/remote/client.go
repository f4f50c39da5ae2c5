// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package remote is the HTTP implementation of recipe.Backend.
//
// It talks to a plain REST collection: bare JSON bodies on success and the
// platform error envelope ({"error", "code", "details"}) on failure.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/internal/platform/ctxutil"
	"github.com/taibuivan/cookbook/internal/platform/respond"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/pkg/uuid"
)

const defaultTimeout = 10 * time.Second

// Client calls the recipe collection at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a Client around an existing *http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.With("adapter", "remote"),
	}
}

// List fetches GET <base>.
func (c *Client) List(ctx context.Context) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	return recipes, nil
}

// Create sends POST <base> with the draft, whose id the caller has set.
func (c *Client) Create(ctx context.Context, draft recipe.Recipe) (recipe.Recipe, error) {
	var created recipe.Recipe
	err := c.do(ctx, http.MethodPost, c.baseURL, draft, &created)
	return created, err
}

// Update sends PUT <base>/<id> with the full recipe.
func (c *Client) Update(ctx context.Context, id string, r recipe.Recipe) (recipe.Recipe, error) {
	var updated recipe.Recipe
	err := c.do(ctx, http.MethodPut, c.itemURL(id), r, &updated)
	return updated, err
}

// SetFavourite sends PATCH <base>/<id> with {"favourite": value}.
func (c *Client) SetFavourite(ctx context.Context, id string, favourite bool) (recipe.Recipe, error) {
	var patched recipe.Recipe
	body := map[string]bool{"favourite": favourite}
	err := c.do(ctx, http.MethodPatch, c.itemURL(id), body, &patched)
	return patched, err
}

// Delete sends DELETE <base>/<id>. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// do performs one request. out may be nil when the body is not needed.
func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperr.Internal(fmt.Errorf("remote: encode body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apperr.Internal(fmt.Errorf("remote: create request: %w", err))
	}

	requestID := ctxutil.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewTimeOrdered()
	}
	req.Header.Set(constants.HeaderXRequestID, requestID)
	req.Header.Set(constants.HeaderAccept, "application/json")
	if in != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	c.log.DebugContext(ctx, "remote request",
		slog.String("method", method),
		slog.String("url", target),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.Unavailable(fmt.Errorf("remote: %s %s: %w", method, target, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// An empty body is a decode error: callers store whatever out holds.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Internal(fmt.Errorf("remote: decode %s %s response: %w", method, target, err))
	}
	return nil
}

// decodeError rebuilds the backend's AppError from its envelope. Non-JSON
// bodies fall back to the status code.
func decodeError(resp *http.Response) error {
	var envelope respond.ErrorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &envelope)

	return apperr.FromStatus(resp.StatusCode, envelope.Code, envelope.Error, envelope.Details)
}
