// Package tracker is the HTTP client for the remote price analysis service.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
	"github.com/rogerio-castellano/storefront-tracker/internal/telemetry"
)

const (
	DefaultBaseURL = "http://127.0.0.1:5000"
	DefaultTimeout = 15 * time.Second

	maxBodyBytes = 1 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit caps outbound requests. A zero limit disables limiting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", "", nil,
		loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: login response has no token", ErrMalformedResponse)
	}
	return resp.Token, nil
}

func (c *Client) Analyze(ctx context.Context, token, productID string) (models.PriceAnalysis, error) {
	var analysis models.PriceAnalysis
	path := "/api/analyze/" + url.PathEscape(productID)
	if err := c.do(ctx, "analyze", http.MethodGet, path, token, nil, nil, &analysis); err != nil {
		return models.PriceAnalysis{}, err
	}
	return analysis, nil
}

func (c *Client) Alerts(ctx context.Context, token string, threshold float64) ([]models.AlertRecord, error) {
	query := url.Values{"threshold": {strconv.FormatFloat(threshold, 'f', -1, 64)}}
	alerts := []models.AlertRecord{}
	if err := c.do(ctx, "alerts", http.MethodGet, "/api/alerts", token, query, nil, &alerts); err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []models.AlertRecord{}
	}
	return alerts, nil
}

func (c *Client) Insights(ctx context.Context, token string) (models.InsightsSnapshot, error) {
	var insights models.InsightsSnapshot
	if err := c.do(ctx, "insights", http.MethodGet, "/api/insights", token, nil, nil, &insights); err != nil {
		return models.InsightsSnapshot{}, err
	}
	return insights, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path, token string, query url.Values, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: wait for rate limiter: %w", op, err)
		}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		telemetry.ObserveAnalysisRequest(op, 0, time.Since(start))
		c.logger.Warn("analysis request failed", "operation", op, "request_id", requestID, "error", err)
		return fmt.Errorf("%s: %w: %w", op, ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	telemetry.ObserveAnalysisRequest(op, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: %w: read body: %w", op, ErrServiceUnavailable, err)
	}

	c.logger.Debug("analysis request", "operation", op, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	// The service reports some failures, such as an unknown product, as a
	// 200 with an error body.
	if msg := errorMessage(data); msg != "" && bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
	}
	return nil
}

func errorMessage(data []byte) string {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return ""
	}
	return eb.Error
}
