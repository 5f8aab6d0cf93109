package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/logger"
)

const (
	contentTypeJSON = "application/json"
	// maxErrorBody bounds how much of a rejected response is read for its message
	maxErrorBody = 64 << 10
)

// Config holds the backend connection settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared HTTP client for the school backend.
// Requests default to JSON bodies; multipart uploads set their own content type.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// FilePart is one file of a multipart upload
type FilePart struct {
	Filename string
	Content  io.Reader
}

// New creates a Client. A nil httpClient gets a fresh client with cfg.Timeout.
func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger.Component("apiclient"),
	}
}

// BaseURL returns the backend base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FileURL turns a stored file path returned by the backend into an absolute link
func (c *Client) FileURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Get fetches path and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post sends in as JSON and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

// Put sends in as JSON and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

// PostMultipart uploads every part under the same form field name
func (c *Client) PostMultipart(ctx context.Context, path, field string, parts []FilePart, out interface{}) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		fw, err := w.CreateFormFile(field, p.Filename)
		if err != nil {
			return apperrors.NewLocalFault(http.MethodPost, path, err)
		}
		if _, err := io.Copy(fw, p.Content); err != nil {
			return apperrors.NewLocalFault(http.MethodPost, path, fmt.Errorf("copy %s: %w", p.Filename, err))
		}
	}
	if err := w.Close(); err != nil {
		return apperrors.NewLocalFault(http.MethodPost, path, err)
	}
	return c.do(ctx, http.MethodPost, path, &body, w.FormDataContentType(), out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return apperrors.NewLocalFault(method, path, fmt.Errorf("encode request: %w", err))
	}
	return c.do(ctx, method, path, bytes.NewReader(payload), contentTypeJSON, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.NewLocalFault(method, path, err)
	}
	if body != nil {
		if contentType == "" {
			contentType = contentTypeJSON
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return apperrors.NewLocalFault(method, path, ctx.Err())
		}
		return apperrors.NewNoResponse(method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperrors.NewServerRejected(method, path, resp.StatusCode, extractMessage(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewLocalFault(method, path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error payload
func extractMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
