package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport(t *testing.T, handler http.HandlerFunc, opts *Options) *RESTTransport {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if opts == nil {
		opts = &Options{}
	}
	opts.BaseURL = server.URL
	tr := NewRESTTransport(opts)
	tr.SetAuth("test-token")
	return tr
}

func TestHandleHTTPError_StatusMapping(t *testing.T) {
	transport := &RESTTransport{}

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
		wantCode    string
		wantErr     error
	}{
		{"401 with message", 401, `{"message":"token expired"}`, "Authentication failed: token expired", "AUTHENTICATION_FAILED", types.ErrNotAuthenticated},
		{"403 with error", 403, `{"error":"forbidden"}`, "Permission denied: forbidden", "PERMISSION_DENIED", types.ErrPermissionDenied},
		{"404 empty body", 404, ``, "Resource not found: Unknown error", "NOT_FOUND", types.ErrNotFound},
		{"422 response errors", 422, `{"response":{"errors":[{"message":"Email is required","field":"email"}]}}`, "Validation error: Email is required", "VALIDATION_ERROR", types.ErrValidation},
		{"422 top level errors", 422, `{"errors":[{"message":"Bad date"}]}`, "Validation error: Bad date", "VALIDATION_ERROR", types.ErrValidation},
		{"429", 429, `{"message":"slow down"}`, "Rate limit exceeded: slow down", "RATE_LIMITED", types.ErrRateLimited},
		{"500 with message", 500, `{"message":"db down"}`, "FreshBooks server error: db down", "SERVER_ERROR", types.ErrServerError},
		{"400 error_description", 400, `{"error_description":"bad grant"}`, "FreshBooks API error (400): bad grant", "HTTP_ERROR", nil},
		{"418 unknown", 418, `not json`, "FreshBooks API error (418): Unknown error", "HTTP_ERROR", nil},
		{"408 timeout", 408, ``, "FreshBooks API error (408): Unknown error", "TIMEOUT", types.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, []byte(tt.body))

			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.statusCode, err.StatusCode)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestHandleHTTPError_FieldErrorsInDetails(t *testing.T) {
	transport := &RESTTransport{}

	err := transport.handleHTTPError(422, []byte(`{"response":{"errors":[{"message":"Email is required","field":"email","errno":1001}]}}`))

	require.NotNil(t, err.Details)
	fieldErrors, ok := err.Details["errors"].([]types.FieldError)
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "email", fieldErrors[0].Field)
	assert.Equal(t, 1001, fieldErrors[0].ErrNo)
}

func TestHandleHTTPError_ServerError_IncludesStatusCodeDescription(t *testing.T) {
	transport := &RESTTransport{}

	tests := []struct {
		name         string
		statusCode   int
		expectedDesc string
	}{
		{"500 Internal Server Error", 500, "Internal Server Error"},
		{"502 Bad Gateway", 502, "Bad Gateway"},
		{"503 Service Unavailable", 503, "Service Unavailable"},
		{"525 SSL Handshake Failed", 525, "SSL Handshake Failed"},
		{"526 Invalid SSL Certificate", 526, "Invalid SSL Certificate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, []byte(`<html>error page</html>`))

			assert.Contains(t, err.Error(), "FreshBooks server error")
			assert.Contains(t, err.Error(), tt.expectedDesc, "error should include human-readable description")
		})
	}
}

func TestDo_NotAuthenticated(t *testing.T) {
	tr := NewRESTTransport(&Options{BaseURL: "http://127.0.0.1:0"})

	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})

	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestDo_SetAuthWhileRequestsInFlight(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer token-") && r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"response":{"result":{}}}`))
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			tr.SetAuth("token-" + string(rune('a'+i)))
		}(i)
		go func() {
			defer wg.Done()
			_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tr.SetAuth("")
	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestDo_SetsHeadersAndQuery(t *testing.T) {
	var got *http.Request
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"response":{"result":{"clients":[]}}}`))
	}, nil)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("search[email]", "")
	query.Set("search[organization_like]", "Acme")

	raw, err := tr.Do(context.Background(), &types.Request{
		Method: http.MethodGet,
		Path:   "/accounting/account/abc/users/clients",
		Query:  query,
		Body:   map[string]string{"ignored": "yes"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":{"clients":[]}}`, string(raw))

	require.NotNil(t, got)
	assert.Equal(t, "/accounting/account/abc/users/clients", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "Acme", got.URL.Query().Get("search[organization_like]"))
	_, hasEmail := got.URL.Query()["search[email]"]
	assert.False(t, hasEmail, "empty query values are skipped")

	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, types.APIVersion, got.Header.Get("Api-Version"))
	assert.Equal(t, types.UserAgent, got.Header.Get("User-Agent"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	assert.Equal(t, int64(0), got.ContentLength, "GET carries no body")
}

func TestDo_SendsJSONBodyOnWrite(t *testing.T) {
	var body map[string]interface{}
	var method string
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.Write([]byte(`{"response":{"result":{"client":{"id":7}}}}`))
	}, nil)

	raw, err := tr.Do(context.Background(), &types.Request{
		Method: http.MethodPost,
		Path:   "/clients",
		Body:   map[string]interface{}{"client": map[string]string{"email": "a@b.c"}},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, map[string]interface{}{"client": map[string]interface{}{"email": "a@b.c"}}, body)
	assert.JSONEq(t, `{"result":{"client":{"id":7}}}`, string(raw))
}

func TestDo_ReturnsBodyWithoutEnvelope(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects":[{"id":1}],"meta":{"page":1,"pages":1}}`))
	}, nil)

	raw, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/projects"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[{"id":1}],"meta":{"page":1,"pages":1}}`, string(raw))
}

func TestDo_EmptyBody(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	raw, err := tr.Do(context.Background(), &types.Request{Method: http.MethodDelete, Path: "/clients/1"})

	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDo_ErrorCarriesRequestID(t *testing.T) {
	var sentID string
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		sentID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such invoice"}`))
	}, nil)

	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/invoices/9"})

	var apiErr *types.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Resource not found: no such invoice", apiErr.Message)
	assert.Equal(t, sentID, apiErr.RequestID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls int32
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}, &Options{RetryConfig: &types.RetryConfig{MaxRetries: 3, RetryWait: time.Millisecond, MaxWait: 5 * time.Millisecond}})

	raw, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDo_RetriesExhaustedKeepsStatusMapping(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, &Options{RetryConfig: &types.RetryConfig{MaxRetries: 1, RetryWait: time.Millisecond, MaxWait: time.Millisecond}})

	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})

	assert.ErrorIs(t, err, types.ErrServerError)
	assert.Contains(t, err.Error(), "Service Unavailable")
}

func TestDo_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	tr := NewRESTTransport(&Options{BaseURL: base})
	tr.SetAuth("tok")

	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})

	var apiErr *types.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "NETWORK_ERROR", apiErr.Code)
	assert.ErrorIs(t, err, types.ErrNetwork)
}

func TestDo_ContextCanceled(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Do(ctx, &types.Request{Method: http.MethodGet, Path: "/x"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_Hooks(t *testing.T) {
	var requested, responded bool
	var hookErr error
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, &Options{Hooks: &types.Hooks{
		OnRequest:  func(ctx context.Context, req *http.Request) { requested = true },
		OnResponse: func(ctx context.Context, resp *http.Response, d time.Duration) { responded = true },
		OnError:    func(ctx context.Context, err error) { hookErr = err },
	}})

	_, err := tr.Do(context.Background(), &types.Request{Method: http.MethodGet, Path: "/x"})

	assert.Error(t, err)
	assert.True(t, requested)
	assert.True(t, responded)
	assert.ErrorIs(t, hookErr, types.ErrPermissionDenied)
}

func TestUnwrapEnvelope(t *testing.T) {
	raw, err := unwrapEnvelope([]byte(`{"response":null,"x":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":null,"x":1}`, string(raw))

	raw, err = unwrapEnvelope([]byte(`  `))
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = unwrapEnvelope([]byte(`<html>`))
	assert.Error(t, err)
}
