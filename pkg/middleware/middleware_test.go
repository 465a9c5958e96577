package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"xbrlgate/pkg/middleware"
)

func TestStackOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stack := middleware.NewStack()
	stack.Use(tag("first"))
	stack.Use(tag("second"))

	handler := stack.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("call order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("call order: got %v, want %v", order, want)
		}
	}
}

func TestEmptyStackPassesThrough(t *testing.T) {
	stack := middleware.NewStack()

	called := false
	handler := stack.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("handler not reached through empty stack")
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items?page=2", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status: got %d", rec.Code)
	}
	logged := buf.String()
	if !strings.Contains(logged, "method=GET") || !strings.Contains(logged, "/items?page=2") {
		t.Errorf("log line missing request details: %s", logged)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disabled config passes through without headers", func(t *testing.T) {
		cfg := &middleware.CORSConfig{Enabled: false, Origins: []string{"*"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")

		middleware.CORS(cfg)(next).ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("disabled CORS must not set headers")
		}
	})

	t.Run("matching origin gets headers", func(t *testing.T) {
		cfg := &middleware.CORSConfig{
			Enabled:        true,
			Origins:        []string{"http://example.com"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         600,
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")

		middleware.CORS(cfg)(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
			t.Errorf("allow origin: got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
			t.Errorf("allow methods: got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Max-Age"); got != "600" {
			t.Errorf("max age: got %q", got)
		}
	})

	t.Run("wildcard origin", func(t *testing.T) {
		cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"*"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://anywhere.test")

		middleware.CORS(cfg)(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://anywhere.test" {
			t.Errorf("allow origin: got %q", got)
		}
	})

	t.Run("unmatched origin gets no headers", func(t *testing.T) {
		cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://example.com"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.test")

		middleware.CORS(cfg)(next).ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("unmatched origin must not receive headers")
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"*"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://example.com")

		middleware.CORS(cfg)(inner).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d", rec.Code)
		}
		if called {
			t.Error("preflight must not reach the inner handler")
		}
	})
}

func TestCORSConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &middleware.CORSConfig{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if len(cfg.AllowedMethods) == 0 || len(cfg.AllowedHeaders) == 0 {
			t.Error("expected default methods and headers")
		}
		if cfg.MaxAge != 3600 {
			t.Errorf("max age: got %d", cfg.MaxAge)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		env := &middleware.CORSEnv{
			Enabled: "TEST_CORS_ENABLED",
			Origins: "TEST_CORS_ORIGINS",
			MaxAge:  "TEST_CORS_MAX_AGE",
		}
		t.Setenv(env.Enabled, "true")
		t.Setenv(env.Origins, "http://a.test, http://b.test")
		t.Setenv(env.MaxAge, "120")

		cfg := &middleware.CORSConfig{}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if !cfg.Enabled {
			t.Error("enabled override not applied")
		}
		if len(cfg.Origins) != 2 || cfg.Origins[0] != "http://a.test" {
			t.Errorf("origins: got %v", cfg.Origins)
		}
		if cfg.MaxAge != 120 {
			t.Errorf("max age: got %d", cfg.MaxAge)
		}
	})
}
