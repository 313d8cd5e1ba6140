package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// vendorService implements the VendorService interface
type vendorService struct {
	client *Client
}

// List retrieves one page of vendors
func (s *vendorService) List(ctx context.Context, opts *ListOptions) (*Page[Vendor], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("bill_vendors/bill_vendors"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}
	return decodePage[Vendor](raw, "bill_vendors")
}

// Get retrieves a single vendor by ID
func (s *vendorService) Get(ctx context.Context, vendorID int64) (*Vendor, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("bill_vendors/bill_vendors/%d", vendorID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get vendor %d", vendorID)
	}
	return decodeOne[Vendor](raw, "bill_vendor")
}

// Create creates a new vendor
func (s *vendorService) Create(ctx context.Context, params *VendorParams) (*Vendor, error) {
	if params == nil || params.VendorName == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "vendor_name is required")
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("bill_vendors/bill_vendors"), nil, map[string]interface{}{"bill_vendor": params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vendor")
	}
	return decodeOne[Vendor](raw, "bill_vendor")
}

// Update updates an existing vendor
func (s *vendorService) Update(ctx context.Context, vendorID int64, params *VendorParams) (*Vendor, error) {
	if params == nil {
		params = &VendorParams{}
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("bill_vendors/bill_vendors/%d", vendorID), nil, map[string]interface{}{"bill_vendor": params})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update vendor %d", vendorID)
	}
	return decodeOne[Vendor](raw, "bill_vendor")
}

// Delete deletes a vendor
func (s *vendorService) Delete(ctx context.Context, vendorID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("bill_vendors/bill_vendors/%d", vendorID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete vendor %d", vendorID)
	}
	return nil
}
