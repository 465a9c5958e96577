package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
)

// Engine is the narrow contract to the remote validation service. The
// gateway never validates filings itself; it submits them here and relays
// the diagnostics.
type Engine interface {
	Submit(ctx context.Context, req SubmitRequest) (*Result, error)
	Health(ctx context.Context) error
}

// SubmitRequest carries one filing to the engine: the instance document,
// an optional taxonomy package, and an optional rule-subset selector.
type SubmitRequest struct {
	InstanceFilename string
	InstanceData     []byte
	PackageFilename  string
	PackageData      []byte
	TableCode        string
}

// Client is the HTTP implementation of Engine against the engine's
// multipart /validate and /health endpoints.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a Client for the given base URL. Request deadlines are
// supplied per call through the context; the underlying http.Client
// carries no timeout of its own.
func NewClient(endpoint string, logger *slog.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{},
		logger:   logger.With("system", "engine"),
	}
}

// Endpoint returns the engine base URL this client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Health probes the engine's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrEngineUnavailable, resp.StatusCode)
	}
	return nil
}

// envelope is the engine's response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Result  Result `json:"result"`
	Error   string `json:"error"`
}

// Submit sends a filing to the engine and decodes its result. The engine
// tolerates multi-minute processing; the caller bounds the wait via ctx,
// and an exceeded deadline surfaces as ErrTimedOut so the UI can report a
// timeout rather than a generic failure.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	body, contentType, err := encodeSubmitBody(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/validate", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	c.logger.Info(
		"submitting filing",
		"endpoint", c.endpoint,
		"instance", req.InstanceFilename,
		"package", req.PackageFilename,
	)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrTimedOut, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: undecodable response (status %d)", ErrEngineRejected, resp.StatusCode)
	}

	if !env.Success {
		if env.Error == "" {
			env.Error = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", ErrEngineRejected, env.Error)
	}

	return &env.Result, nil
}

func encodeSubmitBody(req SubmitRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	instance, err := writer.CreateFormFile("instance", req.InstanceFilename)
	if err != nil {
		return nil, "", err
	}
	if _, err := instance.Write(req.InstanceData); err != nil {
		return nil, "", err
	}

	if len(req.PackageData) > 0 {
		taxonomy, err := writer.CreateFormFile("taxonomy", req.PackageFilename)
		if err != nil {
			return nil, "", err
		}
		if _, err := taxonomy.Write(req.PackageData); err != nil {
			return nil, "", err
		}
	}

	if req.TableCode != "" {
		if err := writer.WriteField("table_code", req.TableCode); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
