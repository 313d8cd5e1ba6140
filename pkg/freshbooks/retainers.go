package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// retainerService implements the RetainerService interface
type retainerService struct {
	client *Client
}

// List retrieves one page of retainers
func (s *retainerService) List(ctx context.Context, opts *ListOptions) (*Page[Retainer], error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("retainers"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list retainers")
	}
	return decodePage[Retainer](raw, "retainers")
}

// Get retrieves a single retainer by ID
func (s *retainerService) Get(ctx context.Context, retainerID int64) (*Retainer, error) {
	raw, err := s.client.get(ctx, s.client.projectsPath("retainers/%d", retainerID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get retainer %d", retainerID)
	}
	return decodeOne[Retainer](raw, "retainer")
}

// Create creates a new retainer
func (s *retainerService) Create(ctx context.Context, params *RetainerParams) (*Retainer, error) {
	if params == nil || params.ClientID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "retainer client_id is required")
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.projectsPath("retainers"), nil, map[string]interface{}{"retainer": params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create retainer")
	}
	return decodeOne[Retainer](raw, "retainer")
}

// Update updates an existing retainer
func (s *retainerService) Update(ctx context.Context, retainerID int64, params *RetainerParams) (*Retainer, error) {
	if params == nil {
		params = &RetainerParams{}
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.projectsPath("retainers/%d", retainerID), nil, map[string]interface{}{"retainer": params})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update retainer %d", retainerID)
	}
	return decodeOne[Retainer](raw, "retainer")
}

// Delete deletes a retainer
func (s *retainerService) Delete(ctx context.Context, retainerID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.projectsPath("retainers/%d", retainerID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete retainer %d", retainerID)
	}
	return nil
}
