package freshbooks

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

const identityPath = "/auth/api/v1/users/me"

// identityService implements the IdentityService interface
type identityService struct {
	client *Client
}

// Me returns the user the access token belongs to
func (s *identityService) Me(ctx context.Context) (*Identity, error) {
	raw, err := s.client.get(ctx, identityPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}
	if isNull(raw) {
		return nil, errors.New("empty identity response")
	}

	identity := &Identity{}
	if err := json.Unmarshal(raw, identity); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity")
	}
	return identity, nil
}
