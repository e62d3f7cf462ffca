package wungo

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"
)

// DefaultBaseURL is the production endpoint of the Weather Underground API.
const DefaultBaseURL = "https://api.wunderground.com/api"

// DefaultLanguage is the language token sent with every request unless
// overridden with WithLanguage.
const DefaultLanguage = "EN"

// Client is a typed client for the Weather Underground HTTP API. It exposes
// one method per API feature plus a generic multi-feature Get, parses JSON or
// XML responses into a generic Result and optionally serves repeated
// identical requests from a TTL cache. It is safe for concurrent use.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	format          Format
	lang            string
	cache           Cache
	cacheTTL        time.Duration
	signatureFunc   SignatureFunc
	rateLimiter     *RateLimiter
	metrics         *MetricsCollector
	logger          Logger
	debug           *DebugConfig
	validationError error
}

// New constructs a Client for the given API key using the provided functional
// options. A best effort validation is performed; call IsValid /
// ValidationError for errors. Every call on an invalid client fails with the
// stored Validation error.
func New(apiKey string, options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:       DefaultBaseURL,
		apiKey:        apiKey,
		format:        FormatJSON,
		lang:          DefaultLanguage,
		cache:         nil,
		cacheTTL:      5 * time.Minute,
		signatureFunc: DefaultSignatureFunc,
		rateLimiter:   nil,
		metrics:       nil,
		logger:        nil,
		debug:         DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

// Get fetches one or more API features for a query with a single combined
// request, e.g. Get(ctx, []string{"conditions", "forecast"}, "55408"). The
// remote API natively merges multiple features into one response document.
func (c *Client) Get(ctx context.Context, features []string, query string, opts ...RequestOption) (*Result, error) {
	if c.validationError != nil {
		return nil, c.validationError
	}
	if err := validateFeatures(features); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, &ClientError{
			Type:      ErrorTypeInvalidQuery,
			Message:   "query must not be empty",
			Timestamp: time.Now(),
		}
	}

	call := newCallOptions(opts)
	req := &Request{
		Features: append([]string(nil), features...),
		Query:    query,
		Settings: c.settingsFor(features, call),
		Format:   c.format,
	}
	return c.do(ctx, req, call.policy)
}

func validateFeatures(features []string) *ClientError {
	if len(features) == 0 {
		return &ClientError{
			Type:      ErrorTypeInvalidQuery,
			Message:   "at least one feature is required",
			Timestamp: time.Now(),
		}
	}
	for _, f := range features {
		if strings.TrimSpace(f) == "" {
			return &ClientError{
				Type:      ErrorTypeInvalidQuery,
				Message:   "feature name must not be empty",
				Timestamp: time.Now(),
			}
		}
	}
	return nil
}

// settingsFor assembles the key:value URL tokens for a request. Every request
// carries the language; conditions requests carry the personal weather
// station flag and forecast requests the best-forecast flag, both defaulting
// to enabled as the remote API does.
func (c *Client) settingsFor(features []string, call *callOptions) map[string]string {
	settings := map[string]string{"lang": c.lang}

	if call.pws != nil {
		settings["pws"] = boolFlag(*call.pws)
	} else if slices.Contains(features, FeatureConditions) {
		settings["pws"] = "1"
	}

	if call.bestfct != nil {
		settings["bestfct"] = boolFlag(*call.bestfct)
	} else if slices.Contains(features, FeatureForecast) || slices.Contains(features, FeatureForecast10Day) {
		settings["bestfct"] = "1"
	}

	return settings
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// buildURL renders the request URL:
//
//	{base}/{key}/{feature1}[/{feature2}...]/{settings...}/q/{query}.{ext}
//
// Settings tokens are sorted by key. View-style requests (empty query) end in
// view.{ext} instead of the q/ segment. The query is inserted as-is: slashes
// in "state/city" queries are path separators the API expects.
func (c *Client) buildURL(req *Request) string {
	segments := make([]string, 0, len(req.Features)+len(req.Settings)+2)
	segments = append(segments, c.baseURL, c.apiKey)
	segments = append(segments, req.Features...)
	segments = append(segments, settingTokens(req.Settings)...)

	if req.Query == "" {
		segments = append(segments, "view."+string(req.Format))
	} else {
		segments = append(segments, "q", req.Query+"."+string(req.Format))
	}

	return strings.Join(segments, "/")
}

func settingTokens(settings map[string]string) []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		tokens = append(tokens, k+":"+settings[k])
	}
	return tokens
}

// do runs one request through the cache, the rate limiter, the transport and
// the parser. Each call is a single synchronous request/response cycle; there
// is no retry and no recovery beyond surfacing the failure to the caller.
func (c *Client) do(ctx context.Context, req *Request, policy CachePolicy) (*Result, error) {
	start := time.Now()
	feature := strings.Join(req.Features, "/")

	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	if c.metrics != nil {
		c.metrics.RecordRequestStart(feature)
		defer c.metrics.RecordRequestEnd(feature)
	}

	cacheEnabled := c.cache != nil && policy != CacheBypass
	var key string
	if cacheEnabled {
		key = c.signatureFunc(req)
	}

	if cacheEnabled && policy == CacheUseIfAvailable {
		if entry, found := c.cache.Get(key); found {
			if c.debug != nil && c.debug.Enabled && c.debug.LogCache && c.logger != nil {
				c.logger.Debug("Cache hit", "requestID", requestID, "cacheKey", key)
			}
			if c.metrics != nil {
				c.metrics.RecordCacheHit(feature)
			}
			return entry.Value, nil
		}

		if c.metrics != nil {
			c.metrics.RecordCacheMiss(feature)
		}
		if c.debug != nil && c.debug.Enabled && c.debug.LogCache && c.logger != nil {
			c.logger.Debug("Cache miss", "requestID", requestID, "cacheKey", key)
		}
	}

	if c.rateLimiter != nil && !c.rateLimiter.Allow() {
		if c.debug != nil && c.debug.Enabled && c.logger != nil {
			c.logger.Warn("Rate limit exceeded", "requestID", requestID, "feature", feature)
		}
		if c.metrics != nil {
			c.metrics.RecordRateLimited(feature)
			c.metrics.RecordError(ErrorTypeRateLimit, feature)
		}
		return nil, &ClientError{
			Type:      ErrorTypeRateLimit,
			Message:   "rate limit exceeded",
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}

	uri := c.buildURL(req)

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request", "requestID", requestID, "url", uri, "feature", feature)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeNetwork,
			Message:   "building request failed",
			Cause:     err,
			URL:       uri,
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		clientErr := c.transportError(err, uri, start)
		if c.metrics != nil {
			c.metrics.RecordError(clientErr.Type, feature)
		}
		return nil, clientErr
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordRequest(feature, resp.StatusCode, duration)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.metrics != nil {
			c.metrics.RecordError(ErrorTypeHTTP, feature)
		}
		return nil, &ClientError{
			Type:       ErrorTypeHTTP,
			Message:    "unexpected response status",
			StatusCode: resp.StatusCode,
			URL:        uri,
			Timestamp:  time.Now(),
			Duration:   duration,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		clientErr := c.transportError(err, uri, start)
		if c.metrics != nil {
			c.metrics.RecordError(clientErr.Type, feature)
		}
		return nil, clientErr
	}

	result, parseErr := parseResponse(body, c.format)
	if parseErr != nil {
		parseErr.URL = uri
		parseErr.Duration = time.Since(start)
		if c.metrics != nil {
			c.metrics.RecordError(parseErr.Type, feature)
		}
		return nil, parseErr
	}

	if cacheEnabled {
		c.cache.Set(key, &CacheEntry{Value: result, StoredAt: time.Now()}, c.cacheTTL)

		if inMemoryCache, ok := c.cache.(*InMemoryCache); ok && c.metrics != nil {
			c.metrics.RecordCacheSize("default", inMemoryCache.Len())
		}
		if c.debug != nil && c.debug.Enabled && c.debug.LogCache && c.logger != nil {
			c.logger.Debug("Response cached", "requestID", requestID, "cacheKey", key, "ttl", c.cacheTTL)
		}
	}

	return result, nil
}

// transportError classifies a transport failure as a timeout or a generic
// network error. Context cancellation and deadline expiry count as timeouts
// so callers see one error type for "the call took too long".
func (c *Client) transportError(err error, uri string, start time.Time) *ClientError {
	errorType := ErrorTypeNetwork
	message := "network request failed"

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		errorType = ErrorTypeTimeout
		message = "request timed out"
	}

	return &ClientError{
		Type:      errorType,
		Message:   message,
		Cause:     err,
		URL:       uri,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}
}
