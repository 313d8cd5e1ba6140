package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// estimateService implements the EstimateService interface
type estimateService struct {
	client *Client
}

// List retrieves one page of estimates
func (s *estimateService) List(ctx context.Context, opts *ListOptions) (*Page[Estimate], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("estimates/estimates"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list estimates")
	}
	return decodePage[Estimate](raw, "estimates")
}

// ListAll retrieves every page of estimates
func (s *estimateService) ListAll(ctx context.Context, opts *ListOptions) ([]*Estimate, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[Estimate], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single estimate by ID
func (s *estimateService) Get(ctx context.Context, estimateID int64) (*Estimate, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("estimates/estimates/%d", estimateID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get estimate %d", estimateID)
	}
	return decodeOne[Estimate](raw, "estimate")
}

// Create creates a new estimate
func (s *estimateService) Create(ctx context.Context, params *EstimateParams) (*Estimate, error) {
	if params == nil || params.CustomerID == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "estimate customerid is required")
	}

	doc := *params
	doc.Lines = withLineCurrency(doc.Lines, doc.CurrencyCode)

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("estimates/estimates"), nil, map[string]interface{}{"estimate": &doc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create estimate")
	}
	return decodeOne[Estimate](raw, "estimate")
}

// Update updates an existing estimate
func (s *estimateService) Update(ctx context.Context, estimateID int64, params *EstimateParams) (*Estimate, error) {
	if params == nil {
		params = &EstimateParams{}
	}

	doc := *params
	currency := doc.CurrencyCode
	if currency == "" && linesNeedCurrency(doc.Lines) {
		current, err := s.Get(ctx, estimateID)
		if err != nil {
			return nil, err
		}
		currency = current.CurrencyCode
	}
	doc.Lines = withLineCurrency(doc.Lines, currency)

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("estimates/estimates/%d", estimateID), nil, map[string]interface{}{"estimate": &doc})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update estimate %d", estimateID)
	}
	return decodeOne[Estimate](raw, "estimate")
}

// Delete deletes an estimate
func (s *estimateService) Delete(ctx context.Context, estimateID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("estimates/estimates/%d", estimateID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete estimate %d", estimateID)
	}
	return nil
}

// Send emails the estimate through FreshBooks
func (s *estimateService) Send(ctx context.Context, estimateID int64, params *SendParams) error {
	if _, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("estimates/estimates/%d/send", estimateID), nil, sendBody(params)); err != nil {
		return errors.Wrapf(err, "failed to send estimate %d", estimateID)
	}
	return nil
}

// Accept marks the estimate as accepted
func (s *estimateService) Accept(ctx context.Context, estimateID int64) error {
	if _, err := s.Update(ctx, estimateID, &EstimateParams{Accepted: Bool(true)}); err != nil {
		return errors.Wrapf(err, "failed to accept estimate %d", estimateID)
	}
	return nil
}

// AddLine appends a line to the existing lines of an estimate
func (s *estimateService) AddLine(ctx context.Context, estimateID int64, line *Line) (*Estimate, error) {
	if line == nil || line.Name == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "line name is required")
	}

	estimate, err := s.Get(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	lines := appendLine(estimate.Lines, line, estimate.CurrencyCode)
	return s.Update(ctx, estimateID, &EstimateParams{Lines: lines})
}
