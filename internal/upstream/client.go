// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package upstream fetches schedule resources from the remote JSON API with
// cache-first semantics: a fresh cache entry is served without touching the
// network; otherwise the resource is fetched once, written back to the
// cache, and returned. No retries, no backoff.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/fbctl/fbctlgo/internal/cache"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for non-2xx upstream responses. URL carries the
// endpoint without its query string so the API key never reaches logs.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Store      *cache.Store
	TTL        time.Duration
}

// Client is the cache-backed fetch layer.
type Client struct {
	baseURL string
	apiKey  string
	http    httpDoer
	store   *cache.Store
	ttl     time.Duration
	now     func() time.Time
}

// NewClient constructs a Client with the provided options.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		http:    httpClient,
		store:   opts.Store,
		ttl:     opts.TTL,
		now:     time.Now,
	}
}

// FetchCached returns the parsed JSON document for path, serving from the
// cache entry named cacheKey when it is fresh. A corrupt cache entry is a
// fatal error, not silently refetched.
func (c *Client) FetchCached(ctx context.Context, path, cacheKey string) (gjson.Result, error) {
	if err := c.store.Ensure(); err != nil {
		return gjson.Result{}, err
	}

	if c.store.IsFresh(cacheKey, c.now(), c.ttl) {
		if data, ok := c.store.Read(cacheKey); ok {
			log.Debugf("cache hit: %s", c.store.Path(cacheKey))
			if !gjson.ValidBytes(data) {
				return gjson.Result{}, fmt.Errorf("corrupt cache entry %s: invalid JSON", cacheKey)
			}
			return gjson.ParseBytes(data), nil
		}
	}

	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?key="+c.apiKey, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return gjson.Result{}, &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid JSON from %s", endpoint)
	}

	// An unwritable cache is a filesystem fault, not a degraded mode.
	if err := c.store.Write(cacheKey, body); err != nil {
		return gjson.Result{}, fmt.Errorf("failed to cache %s: %w", cacheKey, err)
	}

	return gjson.ParseBytes(body), nil
}
