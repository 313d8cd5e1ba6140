package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// clientService implements the ClientService interface
type clientService struct {
	client *Client
}

// List retrieves one page of clients
func (s *clientService) List(ctx context.Context, opts *ListOptions) (*Page[ClientAccount], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("users/clients"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}
	return decodePage[ClientAccount](raw, "clients")
}

// ListAll retrieves every page of clients
func (s *clientService) ListAll(ctx context.Context, opts *ListOptions) ([]*ClientAccount, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[ClientAccount], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single client by ID
func (s *clientService) Get(ctx context.Context, clientID int64) (*ClientAccount, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("users/clients/%d", clientID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get client %d", clientID)
	}
	return decodeOne[ClientAccount](raw, "client")
}

// Create creates a new client
func (s *clientService) Create(ctx context.Context, params *ClientParams) (*ClientAccount, error) {
	if params == nil || params.Email == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "client email is required")
	}

	body := map[string]interface{}{"client": params}
	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("users/clients"), nil, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	return decodeOne[ClientAccount](raw, "client")
}

// Update updates an existing client
func (s *clientService) Update(ctx context.Context, clientID int64, params *ClientParams) (*ClientAccount, error) {
	if params == nil {
		params = &ClientParams{}
	}

	body := map[string]interface{}{"client": params}
	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("users/clients/%d", clientID), nil, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update client %d", clientID)
	}
	return decodeOne[ClientAccount](raw, "client")
}

// Delete deletes a client
func (s *clientService) Delete(ctx context.Context, clientID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("users/clients/%d", clientID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete client %d", clientID)
	}
	return nil
}
