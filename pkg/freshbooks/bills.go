package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// billService implements the BillService interface
type billService struct {
	client *Client
}

// List retrieves one page of bills
func (s *billService) List(ctx context.Context, opts *ListOptions) (*Page[Bill], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("bills/bills"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills")
	}
	return decodePage[Bill](raw, "bills")
}

// Get retrieves a single bill by ID
func (s *billService) Get(ctx context.Context, billID int64) (*Bill, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("bills/bills/%d", billID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get bill %d", billID)
	}
	return decodeOne[Bill](raw, "bill")
}

// Create creates a new bill
func (s *billService) Create(ctx context.Context, params *BillParams) (*Bill, error) {
	if params == nil || params.VendorID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "bill vendor_id is required")
	}

	bill := *params
	bill.Lines = withBillLineCurrency(bill.Lines, bill.CurrencyCode)

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("bills/bills"), nil, map[string]interface{}{"bill": &bill})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bill")
	}
	return decodeOne[Bill](raw, "bill")
}

// Update updates an existing bill
func (s *billService) Update(ctx context.Context, billID int64, params *BillParams) (*Bill, error) {
	if params == nil {
		params = &BillParams{}
	}

	bill := *params
	currency := bill.CurrencyCode
	if currency == "" && billLinesNeedCurrency(bill.Lines) {
		current, err := s.Get(ctx, billID)
		if err != nil {
			return nil, err
		}
		currency = current.CurrencyCode
	}
	bill.Lines = withBillLineCurrency(bill.Lines, currency)

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("bills/bills/%d", billID), nil, map[string]interface{}{"bill": &bill})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update bill %d", billID)
	}
	return decodeOne[Bill](raw, "bill")
}

// Delete deletes a bill
func (s *billService) Delete(ctx context.Context, billID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("bills/bills/%d", billID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete bill %d", billID)
	}
	return nil
}

// Payments returns the payments recorded against a bill
func (s *billService) Payments(ctx context.Context, billID int64) ([]*BillPayment, error) {
	bill, err := s.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.BillPayments == nil {
		return []*BillPayment{}, nil
	}
	return bill.BillPayments, nil
}

// CreatePayment records a payment against a bill
func (s *billService) CreatePayment(ctx context.Context, billID int64, params *BillPaymentParams) (*BillPayment, error) {
	if params == nil || params.Amount == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "bill payment amount is required")
	}

	payment := *params
	payment.Amount = payment.Amount.withCode()

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("bills/bills/%d/bill_payments", billID), nil, map[string]interface{}{"bill_payment": &payment})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create payment for bill %d", billID)
	}
	return decodeOne[BillPayment](raw, "bill_payment", "bill_payments")
}

// withBillLineCurrency copies bill lines, filling missing unit cost codes
func withBillLineCurrency(lines []*BillLine, currency string) []*BillLine {
	if lines == nil {
		return nil
	}
	out := make([]*BillLine, len(lines))
	for i, l := range lines {
		cp := *l
		cp.UnitCost = l.UnitCost.withCode(currency)
		out[i] = &cp
	}
	return out
}

func billLinesNeedCurrency(lines []*BillLine) bool {
	for _, l := range lines {
		if l.UnitCost != nil && l.UnitCost.Code == "" {
			return true
		}
	}
	return false
}
