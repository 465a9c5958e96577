package packages_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"xbrlgate/internal/packages"
	"xbrlgate/pkg/routes"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := packages.New(logger)

	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(1<<20).Routes())
	return mux
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestCheckEndpoint(t *testing.T) {
	handler := testHandler(t)

	t.Run("valid package", func(t *testing.T) {
		archive := buildArchive(t, nil, []string{"entity.xsd", "entity_lab.xml"})
		body, contentType := multipartUpload(t, "package", "taxonomy.zip", archive)

		req := httptest.NewRequest(http.MethodPost, "/packages/check", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
		}

		var verdict packages.Verdict
		if err := json.NewDecoder(rec.Body).Decode(&verdict); err != nil {
			t.Fatalf("decode verdict: %v", err)
		}
		if !verdict.IsValid {
			t.Errorf("expected valid verdict, got: %s", verdict.Message)
		}
		if verdict.Diagnostics.Convention != packages.ConventionTraditional {
			t.Errorf("convention: got %s", verdict.Diagnostics.Convention)
		}
	})

	t.Run("rejected package is still a 200", func(t *testing.T) {
		body, contentType := multipartUpload(t, "package", "taxonomy.zip", []byte("not a zip"))

		req := httptest.NewRequest(http.MethodPost, "/packages/check", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
		}

		var verdict packages.Verdict
		if err := json.NewDecoder(rec.Body).Decode(&verdict); err != nil {
			t.Fatalf("decode verdict: %v", err)
		}
		if verdict.IsValid {
			t.Error("expected invalid verdict")
		}
	})

	t.Run("missing package part", func(t *testing.T) {
		body, contentType := multipartUpload(t, "other", "taxonomy.zip", []byte("data"))

		req := httptest.NewRequest(http.MethodPost, "/packages/check", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("non-multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/packages/check", bytes.NewBufferString("plain"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code == http.StatusOK {
			t.Error("expected error status for non-multipart body")
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid upload", packages.ErrInvalidUpload, http.StatusBadRequest},
		{"file too large", packages.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unmapped", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packages.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
