package freshbooks

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Me(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/auth/api/v1/users/me")).
		Return(`{"id": 77, "identity_id": 77, "first_name": "Sam", "email": "sam@example.com",
			"business_memberships": [{"id": 1, "role": "owner", "business": {"id": 5, "name": "Sam Co", "account_id": "abc123"}}]}`, nil)

	me, err := client.Identity.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", me.Email)
	require.Len(t, me.BusinessMemberships, 1)
	assert.Equal(t, "abc123", me.BusinessMemberships[0].Business.AccountID)
}

func TestIdentityService_MeEmpty(t *testing.T) {
	client, mockTransport := newTestClient()
	mockTransport.On("Do", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := client.Identity.Me(context.Background())

	assert.Error(t, err)
}
