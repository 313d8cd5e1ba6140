package freshbooks

import (
	"context"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves the chart of accounts
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("accounts/accounts"), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	return decodeList[Account](raw, "accounts")
}

// Get retrieves a single account by ID
func (s *accountService) Get(ctx context.Context, accountID int64) (*Account, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("accounts/accounts/%d", accountID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get account %d", accountID)
	}
	return decodeOne[Account](raw, "account")
}
