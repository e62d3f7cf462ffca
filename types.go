package wungo

import (
	"time"
)

// Format selects the wire encoding requested from the API and the parser
// applied to the response body.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// CachePolicy controls how a single call interacts with the configured cache.
type CachePolicy int

const (
	// CacheUseIfAvailable serves the call from the cache when a fresh entry
	// exists and stores the live response otherwise. This is the default.
	CacheUseIfAvailable CachePolicy = iota
	// CacheForceRefresh skips the lookup but still stores the live response.
	CacheForceRefresh
	// CacheBypass performs a live request without touching the cache at all.
	CacheBypass
)

// Request describes one outgoing API call. It is the input to SignatureFunc
// implementations. An empty Query is reserved for view-style calls that take
// no location (current hurricane).
type Request struct {
	Features []string
	Query    string
	Settings map[string]string
	Format   Format
}

// SignatureFunc derives the cache key for a request.
type SignatureFunc func(*Request) string

// CacheEntry represents a cached parsed response.
type CacheEntry struct {
	Value     *Result
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Cache interface for response caching
type Cache interface {
	Get(key string) (*CacheEntry, bool)
	Set(key string, entry *CacheEntry, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Option represents a configuration option
type Option func(*Client)

// RequestOption adjusts a single call.
type RequestOption func(*callOptions)

// callOptions is the resolved per-call state.
type callOptions struct {
	policy  CachePolicy
	pws     *bool
	bestfct *bool
}

// WithCachePolicy sets the cache policy for one call.
func WithCachePolicy(policy CachePolicy) RequestOption {
	return func(o *callOptions) {
		o.policy = policy
	}
}

// WithPWS controls the personal weather station flag (pws:0|1) on conditions
// requests. Enabled by default, matching the remote API.
func WithPWS(enabled bool) RequestOption {
	return func(o *callOptions) {
		o.pws = &enabled
	}
}

// WithBestForecast controls the best-forecast flag (bestfct:0|1) on forecast
// requests. Enabled by default, matching the remote API.
func WithBestForecast(enabled bool) RequestOption {
	return func(o *callOptions) {
		o.bestfct = &enabled
	}
}

func newCallOptions(opts []RequestOption) *callOptions {
	call := &callOptions{}
	for _, opt := range opts {
		opt(call)
	}
	return call
}
