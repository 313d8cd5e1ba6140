package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	authHeaderKey      = "Authorization"
	apiVersionKey      = "Api-Version"
	requestIDHeaderKey = "X-Request-ID"
	contentType        = "application/json"

	unknownErrorMessage = "Unknown error"
)

// RESTTransport handles HTTP communication with the FreshBooks REST API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	logger      types.Logger
	hooks       *types.Hooks

	mu    sync.RWMutex
	token string
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil && opts.RetryConfig.MaxRetries > 0 {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		if opts.RetryConfig.RetryWait > 0 {
			retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		}
		if opts.RetryConfig.MaxWait > 0 {
			retryClient.RetryWaitMax = opts.RetryConfig.MaxWait
		}
		// Hand the final response back so the status mapping still applies
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		} else {
			retryClient.Logger = nil
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
		apiVersionKey:  types.APIVersion,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Do executes a REST request and returns the payload with the
// "response" envelope removed. An empty body yields a nil payload.
func (t *RESTTransport) Do(ctx context.Context, r *types.Request) (json.RawMessage, error) {
	token := t.currentToken()
	if token == "" {
		return nil, types.ErrNotAuthenticated
	}

	endpoint, err := t.buildURL(r.Path, r.Query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request URL")
	}

	var body io.Reader
	if r.Body != nil && hasBody(r.Method) {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}
		body = bytes.NewReader(data)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, r.Method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(authHeaderKey, fmt.Sprintf("Bearer %s", token))

	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeaderKey, requestID)

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("FreshBooks request", "method", r.Method, "path", r.Path, "request_id", requestID)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &types.Error{
			Code:      "NETWORK_ERROR",
			Message:   fmt.Sprintf("Network error: %v", err),
			RequestID: requestID,
			Err:       types.ErrNetwork,
		}
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if t.logger != nil {
		t.logger.Debug("FreshBooks response", "status", resp.StatusCode, "duration", duration, "size", len(respBody), "request_id", requestID)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := t.handleHTTPError(resp.StatusCode, respBody)
		apiErr.RequestID = requestID
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, apiErr)
		}
		return nil, apiErr
	}

	return unwrapEnvelope(respBody)
}

// SetAuth sets the bearer token
func (t *RESTTransport) SetAuth(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
}

func (t *RESTTransport) currentToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// buildURL joins the base URL and path and appends every non-empty query value
func (t *RESTTransport) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(t.baseURL + path)
	if err != nil {
		return "", err
	}

	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				if v == "" {
					continue
				}
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError maps a non-2xx status to a typed error
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) *types.Error {
	msg, fieldErrors := extractErrorMessage(body)

	apiErr := &types.Error{StatusCode: statusCode}
	if len(fieldErrors) > 0 {
		apiErr.Details = map[string]interface{}{"errors": fieldErrors}
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		apiErr.Code = "AUTHENTICATION_FAILED"
		apiErr.Message = fmt.Sprintf("Authentication failed: %s", orUnknown(msg))
		apiErr.Err = types.ErrNotAuthenticated
	case statusCode == http.StatusForbidden:
		apiErr.Code = "PERMISSION_DENIED"
		apiErr.Message = fmt.Sprintf("Permission denied: %s", orUnknown(msg))
		apiErr.Err = types.ErrPermissionDenied
	case statusCode == http.StatusNotFound:
		apiErr.Code = "NOT_FOUND"
		apiErr.Message = fmt.Sprintf("Resource not found: %s", orUnknown(msg))
		apiErr.Err = types.ErrNotFound
	case statusCode == http.StatusTooManyRequests:
		apiErr.Code = "RATE_LIMITED"
		apiErr.Message = fmt.Sprintf("Rate limit exceeded: %s", orUnknown(msg))
		apiErr.Err = types.ErrRateLimited
	case statusCode == http.StatusUnprocessableEntity:
		apiErr.Code = "VALIDATION_ERROR"
		apiErr.Message = fmt.Sprintf("Validation error: %s", orUnknown(msg))
		apiErr.Err = types.ErrValidation
	case statusCode >= 500:
		if msg == "" {
			msg = httpStatusDescription(statusCode)
		}
		apiErr.Code = "SERVER_ERROR"
		apiErr.Message = fmt.Sprintf("FreshBooks server error: %s", orUnknown(msg))
		apiErr.Err = types.ErrServerError
	case statusCode == http.StatusRequestTimeout:
		apiErr.Code = "TIMEOUT"
		apiErr.Message = fmt.Sprintf("FreshBooks API error (%d): %s", statusCode, orUnknown(msg))
		apiErr.Err = types.ErrTimeout
	default:
		apiErr.Code = "HTTP_ERROR"
		apiErr.Message = fmt.Sprintf("FreshBooks API error (%d): %s", statusCode, orUnknown(msg))
	}

	return apiErr
}

// extractErrorMessage pulls the most specific message out of an error body.
// FreshBooks uses several shapes depending on the API family.
func extractErrorMessage(body []byte) (string, []types.FieldError) {
	var errResp struct {
		Message          string             `json:"message"`
		ErrorDescription string             `json:"error_description"`
		Error            string             `json:"error"`
		Errors           []types.FieldError `json:"errors"`
		Response         struct {
			Errors []types.FieldError `json:"errors"`
		} `json:"response"`
	}

	// Partial decodes are fine; fields of the wrong type are skipped
	_ = json.Unmarshal(body, &errResp)

	fieldErrors := errResp.Response.Errors
	if len(fieldErrors) == 0 {
		fieldErrors = errResp.Errors
	}

	switch {
	case errResp.Message != "":
		return errResp.Message, fieldErrors
	case errResp.ErrorDescription != "":
		return errResp.ErrorDescription, fieldErrors
	case errResp.Error != "":
		return errResp.Error, fieldErrors
	case len(fieldErrors) > 0 && fieldErrors[0].Message != "":
		return fieldErrors[0].Message, fieldErrors
	}

	return "", fieldErrors
}

// unwrapEnvelope returns the "response" member when present, otherwise the whole body
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if !json.Valid(trimmed) {
		return nil, errors.New("failed to parse response: body is not valid JSON")
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Response json.RawMessage `json:"response"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil &&
			len(envelope.Response) > 0 && string(envelope.Response) != "null" {
			return envelope.Response, nil
		}
	}

	return json.RawMessage(trimmed), nil
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func orUnknown(msg string) string {
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}

// httpStatusDescription returns a human-readable description for common HTTP status codes.
// This helps users understand errors like 525 (SSL Handshake Failed) which are Cloudflare-specific.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		520: "Web Server Error",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		524: "A Timeout Occurred",
		525: "SSL Handshake Failed",
		526: "Invalid SSL Certificate",
		530: "Origin DNS Error",
	}
	return descriptions[statusCode]
}

// Options for REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
