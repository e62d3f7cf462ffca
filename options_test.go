package wungo

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestWithFormat(t *testing.T) {
	client := New(testAPIKey, WithFormat(FormatXML))

	if client.format != FormatXML {
		t.Errorf("Expected xml format, got %s", client.format)
	}
}

func TestWithLanguageOption(t *testing.T) {
	client := New(testAPIKey, WithLanguage("DL"))

	if client.lang != "DL" {
		t.Errorf("Expected language DL, got %s", client.lang)
	}
}

func TestWithBaseURL(t *testing.T) {
	client := New(testAPIKey, WithBaseURL("http://localhost:8080/api"))

	if client.baseURL != "http://localhost:8080/api" {
		t.Errorf("Expected overridden base URL, got %s", client.baseURL)
	}
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := New(testAPIKey, WithHTTPClient(custom))

	if client.httpClient != custom {
		t.Error("Expected custom HTTP client to be used")
	}
}

func TestWithTimeout(t *testing.T) {
	client := New(testAPIKey, WithTimeout(3*time.Second))

	if client.httpClient.Timeout != 3*time.Second {
		t.Errorf("Expected timeout=3s, got %v", client.httpClient.Timeout)
	}
}

func TestWithCache(t *testing.T) {
	client := New(testAPIKey, WithCache(2*time.Minute))

	if _, ok := client.cache.(*InMemoryCache); !ok {
		t.Errorf("Expected InMemoryCache, got %T", client.cache)
	}
	if client.cacheTTL != 2*time.Minute {
		t.Errorf("Expected cacheTTL=2m, got %v", client.cacheTTL)
	}
}

func TestWithCustomCache(t *testing.T) {
	cache := NewInMemoryCache()
	client := New(testAPIKey, WithCustomCache(cache, time.Minute))

	if client.cache != cache {
		t.Error("Expected the supplied cache instance to be used")
	}
}

func TestWithSignatureFunc(t *testing.T) {
	custom := func(req *Request) string { return "fixed" }
	client := New(testAPIKey, WithSignatureFunc(custom))

	if got := client.signatureFunc(&Request{}); got != "fixed" {
		t.Errorf("Expected custom signature func, got %q", got)
	}
}

func TestWithRateLimiter(t *testing.T) {
	client := New(testAPIKey, WithRateLimiter(10, 6*time.Second))

	if client.rateLimiter == nil {
		t.Fatal("Expected rate limiter to be configured")
	}
	if client.rateLimiter.maxTokens != 10 {
		t.Errorf("Expected maxTokens=10, got %d", client.rateLimiter.maxTokens)
	}
}

func TestWithSimpleLoggerEnablesDebug(t *testing.T) {
	client := New(testAPIKey, WithSimpleLogger())

	if !client.IsValid() {
		t.Fatalf("Expected valid configuration, got %v", client.ValidationError())
	}
	if client.debug == nil || !client.debug.Enabled {
		t.Error("Expected debug to be enabled")
	}
	if client.logger == nil {
		t.Error("Expected logger to be set")
	}
}

func TestWithRequestIDGenerator(t *testing.T) {
	client := New(testAPIKey, WithSimpleLogger(), WithRequestIDGenerator(func() string { return "fixed-id" }))

	if got := client.debug.RequestIDGen(); got != "fixed-id" {
		t.Errorf("Expected fixed-id, got %q", got)
	}
}

func TestValidateConfigurationCollectsProblems(t *testing.T) {
	client := New("", WithFormat(Format("yaml")), WithHTTPClient(nil))

	err := client.ValidationError()
	if err == nil {
		t.Fatal("Expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"apiKey", "format", "HTTP client"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected validation message to mention %q, got %q", want, msg)
		}
	}
}

func TestValidateConfigurationValid(t *testing.T) {
	client := New(testAPIKey, WithCache(time.Minute), WithRateLimiter(10, time.Second))

	if err := client.ValidateConfiguration(); err != nil {
		t.Errorf("Expected valid configuration, got %v", err)
	}
}
