// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestRouter(t *testing.T, staticDir string) http.Handler {
	t.Helper()

	h := newTestHandler(testCatalog())
	chiMw := NewChiMiddlewareFromConfig([]string{"*"}, 1000, time.Minute, false)
	return NewRouter(h, chiMw, staticDir).SetupChi()
}

func TestRouterBookEndpoints(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, "")

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/top-books", http.StatusOK, `"books"`},
		{"/recommend?book=Dune", http.StatusOK, `"recommended"`},
		{"/api/v1/health", http.StatusOK, `"status"`},
		{"/api/v1/health/live", http.StatusOK, `"alive"`},
		{"/api/v1/health/ready", http.StatusOK, `"ready_to_serve"`},
		{"/metrics", http.StatusOK, "bookrec_"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q:\n%s", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouterUnmatchedRouteWithoutStaticDir(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterRequestIDHeader(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top-books", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestRouterHealthSecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRouterStaticAndSPAFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStatic := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	writeStatic("index.html", "<html>bookrec</html>")
	writeStatic("app.js", "console.log('hi')")

	handler := newTestRouter(t, dir)

	tests := []struct {
		name      string
		path      string
		wantBody  string
		wantCache string
	}{
		{"root serves index", "/", "bookrec", "public, max-age=300"},
		{"asset served directly", "/app.js", "console.log", "public, max-age=31536000, immutable"},
		{"unknown route falls back to index", "/library/shelf/42", "bookrec", "public, max-age=300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want substring %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Cache-Control"); got != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantCache)
			}
		})
	}
}

func TestRouterMissingFrontendBuild(t *testing.T) {
	t.Parallel()

	// static_dir configured but index.html not built yet
	handler := newTestRouter(t, t.TempDir())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Frontend build not found.") {
		t.Errorf("body = %q, want frontend error payload", rec.Body.String())
	}
}

func TestRouterRateLimitDisabled(t *testing.T) {
	t.Parallel()

	h := newTestHandler(testCatalog())
	chiMw := NewChiMiddlewareFromConfig([]string{"*"}, 1, time.Minute, true)
	handler := NewRouter(h, chiMw, "").SetupChi()

	// With the limiter disabled, requests beyond the budget still pass.
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top-books", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}
