package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
)

// Endpoint paths relative to the backend origin.
const (
	PathUploadRFP          = "/upload-rfp"
	PathTechnicalSummary   = "/technical-summary"
	PathScopeOfSupply      = "/scope-of-supply"
	PathSpecMatch          = "/spec-match"
	PathOEMRecommendations = "/oem-recommendations"
)

// uploadField is the multipart field name the backend reads the document from.
const uploadField = "file"

// Recorder observes completed requests. Status is 0 when no response arrived.
type Recorder interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Client talks to the RFP analysis backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	recorder   Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRecorder reports request outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if err := domain.ValidateBackendURL(baseURL); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "bidassist-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadRFP sends the document as multipart/form-data.
func (c *Client) UploadRFP(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error) {
	if file.Content == nil {
		return nil, domain.ErrNoFileSelected
	}

	body, contentType, err := encodeUpload(file)
	if err != nil {
		return nil, err
	}

	data, err := c.do(ctx, http.MethodPost, PathUploadRFP, body, contentType)
	if err != nil {
		return nil, err
	}
	return &domain.UploadReceipt{Body: decodeReceipt(data)}, nil
}

// FetchTechnicalSummary returns the technical summary object.
func (c *Client) FetchTechnicalSummary(ctx context.Context) (domain.TechnicalSummary, error) {
	obj, err := c.getObject(ctx, PathTechnicalSummary)
	if err != nil {
		return nil, err
	}
	return domain.TechnicalSummary(obj), nil
}

// FetchScopeOfSupply returns the scope-of-supply object.
func (c *Client) FetchScopeOfSupply(ctx context.Context) (domain.ScopeOfSupply, error) {
	obj, err := c.getObject(ctx, PathScopeOfSupply)
	if err != nil {
		return nil, err
	}
	return domain.ScopeOfSupply(obj), nil
}

// FetchSpecMatch returns the spec-match rows in backend order.
func (c *Client) FetchSpecMatch(ctx context.Context) ([]domain.SpecMatchRow, error) {
	data, err := c.do(ctx, http.MethodGet, PathSpecMatch, nil, "")
	if err != nil {
		return nil, err
	}
	if err := validateSpecMatch(data); err != nil {
		return nil, err
	}

	rows := []domain.SpecMatchRow{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: spec match: %v", domain.ErrMalformedResponse, err)
	}
	return rows, nil
}

// FetchOEMRecommendations returns the recommendations object or array.
func (c *Client) FetchOEMRecommendations(ctx context.Context) (*domain.OEMRecommendations, error) {
	data, err := c.do(ctx, http.MethodGet, PathOEMRecommendations, nil, "")
	if err != nil {
		return nil, err
	}

	var recs domain.OEMRecommendations
	if err := json.Unmarshal(data, &recs); err != nil {
		if errors.Is(err, domain.ErrMalformedResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: oem recommendations: %v", domain.ErrMalformedResponse, err)
	}
	return &recs, nil
}

// getObject fetches path and requires a JSON object body.
func (c *Client) getObject(ctx context.Context, path string) (map[string]any, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: trailing data after JSON value", domain.ErrMalformedResponse, path)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a JSON object", domain.ErrMalformedResponse, path)
	}
	return obj, nil
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, path, 0, start)
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.observe(method, path, resp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %w", domain.ErrTransport, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewStatusError(method, path, resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) observe(method, path string, status int, start time.Time) {
	if c.recorder != nil {
		c.recorder.ObserveRequest(method, path, status, time.Since(start))
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeUpload builds the multipart body with a single file part.
func encodeUpload(file domain.UploadedFile) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	partType := "application/octet-stream"
	if file.IsPDF() {
		partType = "application/pdf"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadField, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", partType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", file.Name, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return buf, mw.FormDataContentType(), nil
}

// decodeReceipt keeps JSON bodies as decoded values and anything else as text.
func decodeReceipt(data []byte) any {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return string(trimmed)
	}
	return v
}
