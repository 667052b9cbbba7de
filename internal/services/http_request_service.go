package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"termfolio/internal/logger"
)

// HTTPRequestServiceName is the registry name of the HTTP request service.
const HTTPRequestServiceName = "http_request"

// ErrRateLimited is returned when requests are made faster than the configured rate.
var ErrRateLimited = errors.New("too many requests, try again in a moment")

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTPRequestService provides rate-limited HTTP/HTTPS request operations for commands
// that call public APIs.
type HTTPRequestService struct {
	initialized bool
	timeout     time.Duration
	client      *http.Client
	limiter     *rate.Limiter
}

// HTTPRequest represents an HTTP request configuration.
type HTTPRequest struct {
	Method  string            // HTTP method (GET, POST, PUT, DELETE, etc.)
	URL     string            // Request URL
	Headers map[string]string // HTTP headers
	Body    string            // Request body (for POST, PUT, etc.)
}

// HTTPResponse represents an HTTP response.
type HTTPResponse struct {
	StatusCode int               // HTTP status code
	Status     string            // HTTP status message
	Headers    map[string]string // Response headers
	Body       string            // Response body
}

// NewHTTPRequestService creates a service with the given per-request timeout and a
// limit of perMinute requests per minute. A non-positive perMinute disables limiting.
func NewHTTPRequestService(timeout time.Duration, perMinute int) *HTTPRequestService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return &HTTPRequestService{
		timeout: timeout,
		limiter: limiter,
	}
}

// Name returns the service name "http_request" for registration.
func (h *HTTPRequestService) Name() string {
	return HTTPRequestServiceName
}

// Initialize sets up the HTTP client.
func (h *HTTPRequestService) Initialize() error {
	h.client = &http.Client{
		Timeout: h.timeout,
	}
	h.initialized = true
	logger.Debug("HTTPRequestService initialized", "timeout", h.timeout.String())
	return nil
}

// SetClient replaces the underlying HTTP client, keeping the configured timeout.
func (h *HTTPRequestService) SetClient(client *http.Client) {
	if client == nil {
		return
	}
	if client.Timeout == 0 {
		client.Timeout = h.timeout
	}
	h.client = client
}

// SendRequest sends an HTTP request and returns the response.
func (h *HTTPRequestService) SendRequest(ctx context.Context, request HTTPRequest) (*HTTPResponse, error) {
	if !h.initialized {
		return nil, fmt.Errorf("http request service not initialized")
	}
	if request.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if !h.limiter.Allow() {
		logger.Debug("HTTP request rate limited", "url", request.URL)
		return nil, ErrRateLimited
	}

	method := strings.ToUpper(request.Method)
	if method == "" {
		method = http.MethodGet
	}

	logger.Debug("Starting HTTP request",
		"method", method,
		"url", request.URL,
		"timeout", h.timeout.String(),
		"headers_count", len(request.Headers))

	var bodyReader io.Reader
	if request.Body != "" {
		bodyReader = strings.NewReader(request.Body)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, request.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, value := range request.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Debug("HTTP request failed", "error", err, "url", request.URL)
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	responseHeaders := make(map[string]string)
	for key, values := range resp.Header {
		if len(values) > 0 {
			responseHeaders[key] = values[0]
		}
	}

	logger.Debug("HTTP request completed",
		"method", method,
		"url", request.URL,
		"status_code", resp.StatusCode,
		"body_length", len(bodyBytes))

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    responseHeaders,
		Body:       string(bodyBytes),
	}, nil
}

// Get performs a simple GET request.
func (h *HTTPRequestService) Get(ctx context.Context, url string, headers map[string]string) (*HTTPResponse, error) {
	return h.SendRequest(ctx, HTTPRequest{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
	})
}
