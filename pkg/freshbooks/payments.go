package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	client *Client
}

// List retrieves one page of payments
func (s *paymentService) List(ctx context.Context, opts *ListOptions) (*Page[Payment], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("payments/payments"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}
	return decodePage[Payment](raw, "payments")
}

// ListAll retrieves every page of payments
func (s *paymentService) ListAll(ctx context.Context, opts *ListOptions) ([]*Payment, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[Payment], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single payment by ID
func (s *paymentService) Get(ctx context.Context, paymentID int64) (*Payment, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("payments/payments/%d", paymentID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get payment %d", paymentID)
	}
	return decodeOne[Payment](raw, "payment")
}

// Create records a payment against an invoice
func (s *paymentService) Create(ctx context.Context, params *PaymentParams) (*Payment, error) {
	if params == nil || params.InvoiceID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "payment invoiceid is required")
	}
	if params.Amount == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "payment amount is required")
	}

	payment := *params
	payment.Amount = payment.Amount.withCode()

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("payments/payments"), nil, map[string]interface{}{"payment": &payment})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}
	return decodeOne[Payment](raw, "payment")
}

// Update updates an existing payment
func (s *paymentService) Update(ctx context.Context, paymentID int64, params *PaymentParams) (*Payment, error) {
	if params == nil {
		params = &PaymentParams{}
	}

	payment := *params
	// Keep the stored currency when only the amount changes
	if payment.Amount != nil && payment.Amount.Code == "" {
		current, err := s.Get(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		var stored string
		if current.Amount != nil {
			stored = current.Amount.Code
		}
		payment.Amount = payment.Amount.withCode(stored)
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("payments/payments/%d", paymentID), nil, map[string]interface{}{"payment": &payment})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update payment %d", paymentID)
	}
	return decodeOne[Payment](raw, "payment")
}

// Delete deletes a payment
func (s *paymentService) Delete(ctx context.Context, paymentID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("payments/payments/%d", paymentID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete payment %d", paymentID)
	}
	return nil
}
