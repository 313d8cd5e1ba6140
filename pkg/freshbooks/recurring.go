package freshbooks

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// Recurring profile frequencies accepted by FreshBooks
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// recurringService implements the RecurringService interface
type recurringService struct {
	client *Client
}

// List retrieves one page of recurring profiles
func (s *recurringService) List(ctx context.Context, clientID int64, opts *ListOptions) (*Page[RecurringProfile], error) {
	query := opts.query()
	if clientID > 0 {
		query.Set("clientid", strconv.FormatInt(clientID, 10))
	}

	raw, err := s.client.get(ctx, s.client.accountingPath("invoices/recurring"), query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recurring profiles")
	}
	return decodePage[RecurringProfile](raw, "recurring")
}

// Get retrieves a single recurring profile by ID
func (s *recurringService) Get(ctx context.Context, recurringID int64) (*RecurringProfile, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("invoices/recurring/%d", recurringID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get recurring profile %d", recurringID)
	}
	return decodeOne[RecurringProfile](raw, "recurring")
}

// Create creates a recurring profile. CreateDate defaults to today and
// NumberRecurring to 0 (recur indefinitely).
func (s *recurringService) Create(ctx context.Context, params *RecurringParams) (*RecurringProfile, error) {
	if params == nil || params.ClientID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "recurring profile clientid is required")
	}
	if !validFrequency(params.Frequency) {
		return nil, errors.Wrapf(ErrInvalidRequest, "invalid recurring frequency %q", params.Frequency)
	}

	profile := *params
	if profile.CreateDate == "" {
		profile.CreateDate = s.client.now().Format(DateLayout)
	}
	if profile.NumberRecurring == nil {
		indefinite := 0
		profile.NumberRecurring = &indefinite
	}
	if profile.CurrencyCode == "" {
		profile.CurrencyCode = DefaultCurrency
	}
	profile.Lines = withLineCurrency(profile.Lines, profile.CurrencyCode)

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("invoices/recurring"), nil, map[string]interface{}{"recurring": &profile})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recurring profile")
	}
	return decodeOne[RecurringProfile](raw, "recurring")
}

// Update updates a recurring profile
func (s *recurringService) Update(ctx context.Context, recurringID int64, params *RecurringParams) (*RecurringProfile, error) {
	if params == nil {
		params = &RecurringParams{}
	}
	if params.Frequency != "" && !validFrequency(params.Frequency) {
		return nil, errors.Wrapf(ErrInvalidRequest, "invalid recurring frequency %q", params.Frequency)
	}

	profile := *params
	currency := profile.CurrencyCode
	if currency == "" && linesNeedCurrency(profile.Lines) {
		current, err := s.Get(ctx, recurringID)
		if err != nil {
			return nil, err
		}
		currency = current.CurrencyCode
	}
	profile.Lines = withLineCurrency(profile.Lines, currency)

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("invoices/recurring/%d", recurringID), nil, map[string]interface{}{"recurring": &profile})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update recurring profile %d", recurringID)
	}
	return decodeOne[RecurringProfile](raw, "recurring")
}

// Delete hides a recurring profile
func (s *recurringService) Delete(ctx context.Context, recurringID int64) error {
	body := map[string]interface{}{"recurring": map[string]int{"vis_state": 1}}
	if _, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("invoices/recurring/%d", recurringID), nil, body); err != nil {
		return errors.Wrapf(err, "failed to delete recurring profile %d", recurringID)
	}
	return nil
}

func validFrequency(f string) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}
