// internal/search/client.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"itinerary-pricing/internal/cache"
	apperrors "itinerary-pricing/internal/common/errors"
	httpclient "itinerary-pricing/internal/common/http"
	"itinerary-pricing/internal/common/logger"
	"itinerary-pricing/internal/common/metrics"
)

// Client performs search lookups against the external provider, consulting
// the cache store first. A valid cached entry short-circuits the network call
// entirely, even when extraParams differ from the original request, because
// the cache key only covers engine and query.
type Client struct {
	config *Config
	store  cache.Store
	client *httpclient.Client
	logger logger.Logger
	nowFn  func() time.Time
}

func NewClient(config *Config, store cache.Store, log logger.Logger) *Client {
	if config.TTL <= 0 {
		config.TTL = cache.DefaultTTL
	}
	return &Client{
		config: config,
		store:  store,
		client: httpclient.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"component": "search"}),
		nowFn:  time.Now,
	}
}

// Search returns the provider response for (engine, query), live or cached.
// Lookup failures and provider-reported errors are returned as errors and
// never cached; a successful live response is cached best-effort before being
// returned.
func (c *Client) Search(ctx context.Context, engine, query string, extraParams map[string]string) (*Result, error) {
	key := cache.Key(engine, query)

	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		// A broken cache backend degrades to a miss.
		c.logger.Warn("cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	if ok && entry.Valid(c.nowFn(), c.config.TTL) {
		metrics.CacheHits.WithLabelValues("store").Inc()
		metrics.LookupCalls.WithLabelValues(engine, "cache_hit").Inc()

		var result Result
		if err := json.Unmarshal(entry.Data, &result); err == nil {
			return &result, nil
		}
		c.logger.Warn("cached payload unreadable, fetching live", map[string]interface{}{
			"key": key,
		})
	}
	metrics.CacheMisses.WithLabelValues("store").Inc()

	// The key is only checked at live-fetch time, so a populated cache keeps
	// serving hits after the key is removed from the environment.
	if c.config.APIKey == "" {
		metrics.LookupCalls.WithLabelValues(engine, "no_api_key").Inc()
		return nil, apperrors.NewNoAPIKeyError()
	}

	body, err := c.fetch(ctx, engine, query, extraParams)
	if err != nil {
		metrics.LookupCalls.WithLabelValues(engine, "error").Inc()
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		metrics.LookupCalls.WithLabelValues(engine, "error").Inc()
		return nil, apperrors.NewLookupFailedError(err)
	}

	// Provider-reported errors are not cached; the next call retries live.
	if result.Error != "" {
		metrics.LookupCalls.WithLabelValues(engine, "provider_error").Inc()
		return nil, apperrors.NewProviderError(result.Error)
	}

	if err := c.store.Put(ctx, key, cache.NewEntry(body, c.nowFn())); err != nil {
		// Best-effort: the lookup already succeeded, the caller still gets
		// the result.
		c.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	metrics.LookupCalls.WithLabelValues(engine, "live").Inc()
	return &result, nil
}

func (c *Client) fetch(ctx context.Context, engine, query string, extraParams map[string]string) ([]byte, error) {
	searchURL, err := c.buildSearchURL(engine, query, extraParams)
	if err != nil {
		return nil, apperrors.NewLookupFailedError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, apperrors.NewLookupFailedError(err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ProviderCallDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, apperrors.NewLookupFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewLookupFailedError(fmt.Errorf("search API returned %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewLookupFailedError(err)
	}
	return body, nil
}

func (c *Client) buildSearchURL(engine, query string, extraParams map[string]string) (string, error) {
	baseURL, err := url.Parse(c.config.BaseURL + "/search")
	if err != nil {
		return "", fmt.Errorf("invalid search base URL: %w", err)
	}
	params := url.Values{}
	params.Add("engine", engine)
	params.Add("q", query)
	for k, v := range extraParams {
		params.Add(k, v)
	}
	params.Add("api_key", c.config.APIKey)
	baseURL.RawQuery = params.Encode()
	return baseURL.String(), nil
}
