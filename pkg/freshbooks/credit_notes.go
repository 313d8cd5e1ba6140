package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// creditNoteService implements the CreditNoteService interface
type creditNoteService struct {
	client *Client
}

// List retrieves one page of credit notes
func (s *creditNoteService) List(ctx context.Context, opts *ListOptions) (*Page[CreditNote], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("credit_notes/credit_notes"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credit notes")
	}
	return decodePage[CreditNote](raw, "credit_notes")
}

// Get retrieves a single credit note by ID
func (s *creditNoteService) Get(ctx context.Context, creditNoteID int64) (*CreditNote, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("credit_notes/credit_notes/%d", creditNoteID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get credit note %d", creditNoteID)
	}
	return decodeOne[CreditNote](raw, "credit_note")
}

// Create creates a new credit note
func (s *creditNoteService) Create(ctx context.Context, params *CreditNoteParams) (*CreditNote, error) {
	if params == nil || params.ClientID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "credit note clientid is required")
	}

	doc := *params
	doc.Lines = withLineCurrency(doc.Lines, doc.CurrencyCode)

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("credit_notes/credit_notes"), nil, map[string]interface{}{"credit_note": &doc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create credit note")
	}
	return decodeOne[CreditNote](raw, "credit_note")
}

// Update updates an existing credit note
func (s *creditNoteService) Update(ctx context.Context, creditNoteID int64, params *CreditNoteParams) (*CreditNote, error) {
	if params == nil {
		params = &CreditNoteParams{}
	}

	doc := *params
	currency := doc.CurrencyCode
	if currency == "" && linesNeedCurrency(doc.Lines) {
		current, err := s.Get(ctx, creditNoteID)
		if err != nil {
			return nil, err
		}
		currency = current.CurrencyCode
	}
	doc.Lines = withLineCurrency(doc.Lines, currency)

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("credit_notes/credit_notes/%d", creditNoteID), nil, map[string]interface{}{"credit_note": &doc})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update credit note %d", creditNoteID)
	}
	return decodeOne[CreditNote](raw, "credit_note")
}

// Delete deletes a credit note
func (s *creditNoteService) Delete(ctx context.Context, creditNoteID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("credit_notes/credit_notes/%d", creditNoteID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete credit note %d", creditNoteID)
	}
	return nil
}
