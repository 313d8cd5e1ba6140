package freshbooks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	args := m.Called(ctx, req)

	var raw json.RawMessage
	if s, ok := args.Get(0).(string); ok {
		raw = json.RawMessage(s)
	}
	return raw, args.Error(1)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestClient() (*Client, *MockTransport) {
	mockTransport := new(MockTransport)
	client := &Client{
		transport: mockTransport,
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
		accountID: "abc123",
		now:       func() time.Time { return fixedNow },
	}
	client.initServices()
	return client, mockTransport
}

// request matches a transport call by method and path
func request(method, path string) interface{} {
	return mock.MatchedBy(func(r *Request) bool {
		return r.Method == method && r.Path == path
	})
}

// bodyOf renders a request body the way the transport would send it
func bodyOf(t *testing.T, req *Request) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(req.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// capture records the request of the matching call into dst
func capture(dst **Request) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*dst = args.Get(1).(*Request)
	}
}

func TestNewClient_RequiresTokenAndAccount(t *testing.T) {
	_, err := NewClient(nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewClient(&ClientOptions{AccountID: "abc"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = NewClient(&ClientOptions{Token: "tok"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(&ClientOptions{Token: "tok", AccountID: "abc"})
	require.NoError(t, err)

	assert.Equal(t, "abc", client.AccountID())
	assert.Equal(t, "abc", client.BusinessID())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.limiter)
	assert.NotNil(t, client.Invoices)
	assert.NotNil(t, client.Identity)
}

func TestNewClient_BusinessID(t *testing.T) {
	client, err := NewClient(&ClientOptions{Token: "tok", AccountID: "abc", BusinessID: "42"})
	require.NoError(t, err)

	assert.Equal(t, "42", client.BusinessID())
	assert.Equal(t, "/projects/business/42/projects", client.projectsPath("projects"))
	assert.Equal(t, "/timetracking/business/42/time_entries/7", client.timetrackingPath("time_entries/%d", 7))
	assert.Equal(t, "/accounting/account/abc/invoices/invoices", client.accountingPath("invoices/invoices"))
}

func TestClient_SetToken(t *testing.T) {
	client, mockTransport := newTestClient()
	mockTransport.On("SetAuth", "new-token").Return()

	client.SetToken("new-token")

	mockTransport.AssertExpectations(t)
}

type failingLimiter struct{}

func (failingLimiter) Wait(ctx context.Context) error {
	return errors.New("limiter closed")
}

func TestClient_LimiterErrorSkipsRequest(t *testing.T) {
	client, mockTransport := newTestClient()
	client.limiter = failingLimiter{}

	_, err := client.get(context.Background(), "/anything", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestClient_ErrorsPassThrough(t *testing.T) {
	client, mockTransport := newTestClient()
	apiErr := &Error{Code: "NOT_FOUND", Message: "Resource not found: nope", StatusCode: 404, Err: ErrNotFound}
	mockTransport.On("Do", mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := client.Invoices.Get(context.Background(), 9)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get invoice 9")

	var got *Error
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 404, got.StatusCode)
}
