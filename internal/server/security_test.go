package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	// Create a simple handler that does nothing
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Check headers
	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, expected := range expectedHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	monitor := NewRateMonitor()
	middleware := RateLimitMiddleware(nil, monitor)

	// Create a handler that always returns OK
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	// Simulate requests up to the limit
	// Limit is 1000
	for i := 0; i < rateLimitWindowRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	// Verify monitor state
	monitor.mu.Lock()
	count := monitor.requestCountByIP[ip]
	monitor.mu.Unlock()

	if count != rateLimitWindowRequests+1 {
		t.Errorf("expected count %d, got %d", rateLimitWindowRequests+1, count)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "Direct connection",
			remoteAddr: "203.0.113.7:5000",
			expected:   "203.0.113.7",
		},
		{
			name:           "Forwarded header from untrusted proxy is ignored",
			remoteAddr:     "203.0.113.7:5000",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "203.0.113.7",
		},
		{
			name:           "Forwarded header from trusted proxy is honored",
			remoteAddr:     "10.0.0.1:5000",
			forwardedFor:   "198.51.100.1, 198.51.100.2",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			if got := extractIP(req, tt.trustedProxies); got != tt.expected {
				t.Errorf("expected ip %q, got %q", tt.expected, got)
			}
		})
	}
}
