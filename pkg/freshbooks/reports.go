package freshbooks

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// reportService implements the ReportService interface
type reportService struct {
	client *Client
}

// ProfitLoss runs the profit and loss report for a date range
func (s *reportService) ProfitLoss(ctx context.Context, startDate, endDate time.Time) (Report, error) {
	return s.run(ctx, "profitloss", startDate, endDate)
}

// TaxSummary runs the tax summary report for a date range
func (s *reportService) TaxSummary(ctx context.Context, startDate, endDate time.Time) (Report, error) {
	return s.run(ctx, "taxsummary", startDate, endDate)
}

// Aging runs the accounts aging report
func (s *reportService) Aging(ctx context.Context) (Report, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("reports/accounting/aging"), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get aging report")
	}
	return decodeReport(raw)
}

// Expenses runs the expense report for a date range
func (s *reportService) Expenses(ctx context.Context, startDate, endDate time.Time) (Report, error) {
	return s.run(ctx, "expenses", startDate, endDate)
}

func (s *reportService) run(ctx context.Context, name string, startDate, endDate time.Time) (Report, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, errors.Wrapf(ErrInvalidRequest, "%s report requires start and end dates", name)
	}
	if endDate.Before(startDate) {
		return nil, errors.Wrapf(ErrInvalidRequest, "%s report end date %s is before start date %s",
			name, endDate.Format(DateLayout), startDate.Format(DateLayout))
	}

	query := url.Values{}
	query.Set("start_date", startDate.Format(DateLayout))
	query.Set("end_date", endDate.Format(DateLayout))

	raw, err := s.client.get(ctx, s.client.accountingPath("reports/accounting/%s", name), query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s report", name)
	}
	return decodeReport(raw)
}

// decodeReport returns the "report" member, or the whole container when the
// endpoint does not nest the body.
func decodeReport(raw json.RawMessage) (Report, error) {
	members, err := container(raw)
	if err != nil {
		return nil, err
	}

	body, ok := members["report"]
	if !ok || isNull(body) {
		body, err = json.Marshal(members)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode report")
		}
	}

	report := Report{}
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, errors.Wrap(err, "failed to decode report")
	}
	return report, nil
}
