package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// journalEntryService implements the JournalEntryService interface
type journalEntryService struct {
	client *Client
}

// List retrieves one page of journal entries
func (s *journalEntryService) List(ctx context.Context, opts *ListOptions) (*Page[JournalEntry], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("journal_entries/journal_entries"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal entries")
	}
	return decodePage[JournalEntry](raw, "journal_entries")
}

// Get retrieves a single journal entry by ID
func (s *journalEntryService) Get(ctx context.Context, journalEntryID int64) (*JournalEntry, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("journal_entries/journal_entries/%d", journalEntryID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get journal entry %d", journalEntryID)
	}
	return decodeOne[JournalEntry](raw, "journal_entry")
}

// Create posts a journal entry. Details must contain at least one line.
func (s *journalEntryService) Create(ctx context.Context, params *JournalEntryParams) (*JournalEntry, error) {
	if params == nil || params.Name == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "journal entry name is required")
	}
	if len(params.Details) == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "journal entry details are required")
	}

	entry := *params
	currency := entry.CurrencyCode
	if currency == "" {
		currency = DefaultCurrency
	}
	entry.Details = make([]*JournalEntryDetail, len(params.Details))
	for i, d := range params.Details {
		cp := *d
		cp.DebitAmount = d.DebitAmount.withCode(currency)
		cp.CreditAmount = d.CreditAmount.withCode(currency)
		entry.Details[i] = &cp
	}

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("journal_entries/journal_entries"), nil, map[string]interface{}{"journal_entry": &entry})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create journal entry")
	}
	return decodeOne[JournalEntry](raw, "journal_entry")
}
