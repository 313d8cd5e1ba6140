package freshbooks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// DefaultDueOffsetDays is applied to new invoices that do not set one
const DefaultDueOffsetDays = 30

// invoiceService implements the InvoiceService interface
type invoiceService struct {
	client *Client
}

// List retrieves one page of invoices
func (s *invoiceService) List(ctx context.Context, opts *ListOptions) (*Page[Invoice], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("invoices/invoices"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}
	return decodePage[Invoice](raw, "invoices")
}

// ListAll retrieves every page of invoices
func (s *invoiceService) ListAll(ctx context.Context, opts *ListOptions) ([]*Invoice, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[Invoice], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single invoice by ID
func (s *invoiceService) Get(ctx context.Context, invoiceID int64) (*Invoice, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("invoices/invoices/%d", invoiceID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get invoice %d", invoiceID)
	}
	return decodeOne[Invoice](raw, "invoice")
}

// Create creates a new invoice
func (s *invoiceService) Create(ctx context.Context, params *InvoiceParams) (*Invoice, error) {
	if params == nil || params.CustomerID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "invoice customerid is required")
	}

	invoice := *params
	if invoice.CreateDate == "" {
		invoice.CreateDate = s.client.now().Format(DateLayout)
	}
	if invoice.DueOffsetDays == nil {
		days := DefaultDueOffsetDays
		invoice.DueOffsetDays = &days
	}
	invoice.Lines = withLineCurrency(invoice.Lines, invoice.CurrencyCode)

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("invoices/invoices"), nil, map[string]interface{}{"invoice": &invoice})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create invoice")
	}
	return decodeOne[Invoice](raw, "invoice")
}

// Update updates an existing invoice
func (s *invoiceService) Update(ctx context.Context, invoiceID int64, params *InvoiceParams) (*Invoice, error) {
	if params == nil {
		params = &InvoiceParams{}
	}

	invoice := *params
	currency := invoice.CurrencyCode
	if currency == "" && linesNeedCurrency(invoice.Lines) {
		current, err := s.Get(ctx, invoiceID)
		if err != nil {
			return nil, err
		}
		currency = current.CurrencyCode
	}
	invoice.Lines = withLineCurrency(invoice.Lines, currency)

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("invoices/invoices/%d", invoiceID), nil, map[string]interface{}{"invoice": &invoice})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update invoice %d", invoiceID)
	}
	return decodeOne[Invoice](raw, "invoice")
}

// Delete deletes an invoice
func (s *invoiceService) Delete(ctx context.Context, invoiceID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("invoices/invoices/%d", invoiceID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete invoice %d", invoiceID)
	}
	return nil
}

// Send emails the invoice through FreshBooks
func (s *invoiceService) Send(ctx context.Context, invoiceID int64, params *SendParams) error {
	if _, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("invoices/invoices/%d/send", invoiceID), nil, sendBody(params)); err != nil {
		return errors.Wrapf(err, "failed to send invoice %d", invoiceID)
	}
	return nil
}

// MarkPaid sets the invoice status to paid
func (s *invoiceService) MarkPaid(ctx context.Context, invoiceID int64) error {
	if _, err := s.Update(ctx, invoiceID, &InvoiceParams{V3Status: "paid"}); err != nil {
		return errors.Wrapf(err, "failed to mark invoice %d paid", invoiceID)
	}
	return nil
}

// ShareLink returns the client-facing URL of the invoice
func (s *invoiceService) ShareLink(ctx context.Context, invoiceID int64) (string, error) {
	invoice, err := s.Get(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	id := invoice.InvoiceID
	if id == 0 {
		id = invoice.ID
	}
	return fmt.Sprintf("%s%s-%d", ShareBaseURL, s.client.accountID, id), nil
}

// AddLine appends a line to the existing lines of an invoice
func (s *invoiceService) AddLine(ctx context.Context, invoiceID int64, line *Line) (*Invoice, error) {
	if line == nil || line.Name == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "line name is required")
	}

	invoice, err := s.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	lines := appendLine(invoice.Lines, line, invoice.CurrencyCode)
	return s.Update(ctx, invoiceID, &InvoiceParams{Lines: lines})
}

// sendBody builds the send payload shared by invoices and estimates. An empty
// body lets FreshBooks fall back to the client's email.
func sendBody(params *SendParams) *SendParams {
	if params == nil {
		return &SendParams{}
	}
	return params
}

// appendLine copies existing lines without their server-computed fields and
// appends line, filling its currency from the parent document.
func appendLine(existing []*Line, line *Line, currency string) []*Line {
	lines := make([]*Line, 0, len(existing)+1)
	for _, l := range existing {
		cp := *l
		cp.LineID = 0
		cp.Amount = nil
		lines = append(lines, &cp)
	}

	added := *line
	if added.Qty == "" {
		added.Qty = "1"
	}
	lines = append(lines, &added)
	return withLineCurrency(lines, currency)
}

// withLineCurrency copies lines, giving each unit cost without a code the
// document currency, or USD when that is empty too.
func withLineCurrency(lines []*Line, currency string) []*Line {
	if lines == nil {
		return nil
	}
	out := make([]*Line, len(lines))
	for i, l := range lines {
		cp := *l
		cp.UnitCost = l.UnitCost.withCode(currency)
		out[i] = &cp
	}
	return out
}

// linesNeedCurrency reports whether any unit cost is missing its code
func linesNeedCurrency(lines []*Line) bool {
	for _, l := range lines {
		if l.UnitCost != nil && l.UnitCost.Code == "" {
			return true
		}
	}
	return false
}
