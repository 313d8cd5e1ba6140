package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// expenseService implements the ExpenseService interface
type expenseService struct {
	client *Client
}

// List retrieves one page of expenses
func (s *expenseService) List(ctx context.Context, opts *ListOptions) (*Page[Expense], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("expenses/expenses"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}
	return decodePage[Expense](raw, "expenses")
}

// ListAll retrieves every page of expenses
func (s *expenseService) ListAll(ctx context.Context, opts *ListOptions) ([]*Expense, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[Expense], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single expense by ID
func (s *expenseService) Get(ctx context.Context, expenseID int64) (*Expense, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("expenses/expenses/%d", expenseID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get expense %d", expenseID)
	}
	return decodeOne[Expense](raw, "expense")
}

// Create creates a new expense
func (s *expenseService) Create(ctx context.Context, params *ExpenseParams) (*Expense, error) {
	if params == nil || params.Amount == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "expense amount is required")
	}

	expense := *params
	expense.Amount = expense.Amount.withCode()

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("expenses/expenses"), nil, map[string]interface{}{"expense": &expense})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create expense")
	}
	return decodeOne[Expense](raw, "expense")
}

// Update updates an existing expense
func (s *expenseService) Update(ctx context.Context, expenseID int64, params *ExpenseParams) (*Expense, error) {
	if params == nil {
		params = &ExpenseParams{}
	}

	expense := *params
	// Keep the stored currency when only the amount changes
	if expense.Amount != nil && expense.Amount.Code == "" {
		current, err := s.Get(ctx, expenseID)
		if err != nil {
			return nil, err
		}
		var stored string
		if current.Amount != nil {
			stored = current.Amount.Code
		}
		expense.Amount = expense.Amount.withCode(stored)
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("expenses/expenses/%d", expenseID), nil, map[string]interface{}{"expense": &expense})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update expense %d", expenseID)
	}
	return decodeOne[Expense](raw, "expense")
}

// Delete deletes an expense
func (s *expenseService) Delete(ctx context.Context, expenseID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("expenses/expenses/%d", expenseID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete expense %d", expenseID)
	}
	return nil
}

// Categories lists the expense categories of the account
func (s *expenseService) Categories(ctx context.Context) ([]*ExpenseCategory, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("expenses/categories"), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expense categories")
	}
	return decodeList[ExpenseCategory](raw, "categories")
}
