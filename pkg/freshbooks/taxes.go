package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// taxService implements the TaxService interface
type taxService struct {
	client *Client
}

// List retrieves all taxes
func (s *taxService) List(ctx context.Context) ([]*Tax, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("taxes/taxes"), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list taxes")
	}
	return decodeList[Tax](raw, "taxes")
}

// Get retrieves a single tax by ID
func (s *taxService) Get(ctx context.Context, taxID int64) (*Tax, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("taxes/taxes/%d", taxID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tax %d", taxID)
	}
	return decodeOne[Tax](raw, "tax")
}

// Create creates a new tax
func (s *taxService) Create(ctx context.Context, params *TaxParams) (*Tax, error) {
	if params == nil || params.Name == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "tax name is required")
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("taxes/taxes"), nil, map[string]interface{}{"tax": params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tax")
	}
	return decodeOne[Tax](raw, "tax")
}

// Update updates an existing tax
func (s *taxService) Update(ctx context.Context, taxID int64, params *TaxParams) (*Tax, error) {
	if params == nil {
		params = &TaxParams{}
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("taxes/taxes/%d", taxID), nil, map[string]interface{}{"tax": params})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update tax %d", taxID)
	}
	return decodeOne[Tax](raw, "tax")
}

// Delete deletes a tax
func (s *taxService) Delete(ctx context.Context, taxID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("taxes/taxes/%d", taxID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete tax %d", taxID)
	}
	return nil
}
