// Package wungo is a typed client for the Weather Underground HTTP API with
// an optional in-memory response cache:
//
//   - One method per API feature (conditions, forecast, alerts, history, ...)
//     plus a generic multi-feature Get issued as a single combined request
//   - JSON or XML response bodies parsed into a generic Result structure
//   - TTL response cache with lazy expiration and pluggable backends
//   - Explicit per-call cache policy (use if available, force refresh, bypass)
//   - Optional token bucket rate limiting for API call quotas
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - One synchronous request/response cycle per call, no hidden retries
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via pluggable cache, cache key derivation and logging
//
// Typical usage:
//
//	client := wungo.New("your-api-key",
//	    wungo.WithCache(5*time.Minute),
//	    wungo.WithRateLimiter(10, 6*time.Second),
//	)
//	result, err := client.Conditions(ctx, "55408")
//	if err != nil {
//	    // errors carry a type: InvalidQuery, HTTP, Parse, API, Timeout, ...
//	}
//	obs := result.JSON["current_observation"]
//
// A second identical call inside the cache TTL is served from memory without
// a network request. Use WithCachePolicy(CacheForceRefresh) on a call to
// fetch live data and repopulate the cache, or CacheBypass to leave the cache
// untouched.
package wungo
