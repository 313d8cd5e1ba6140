package freshbooks

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// itemService implements the ItemService interface
type itemService struct {
	client *Client
}

// List retrieves one page of items
func (s *itemService) List(ctx context.Context, opts *ListOptions) (*Page[Item], error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("items/items"), opts.query())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return decodePage[Item](raw, "items")
}

// ListAll retrieves every page of items
func (s *itemService) ListAll(ctx context.Context, opts *ListOptions) ([]*Item, error) {
	return paginate(ctx, func(ctx context.Context, page int) (*Page[Item], error) {
		return s.List(ctx, opts.withPage(page))
	})
}

// Get retrieves a single item by ID
func (s *itemService) Get(ctx context.Context, itemID int64) (*Item, error) {
	raw, err := s.client.get(ctx, s.client.accountingPath("items/items/%d", itemID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", itemID)
	}
	return decodeOne[Item](raw, "item")
}

// Create creates a new item
func (s *itemService) Create(ctx context.Context, params *ItemParams) (*Item, error) {
	if params == nil || params.Name == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "item name is required")
	}

	item := *params
	item.UnitCost = item.UnitCost.withCode()

	raw, err := s.client.do(ctx, http.MethodPost, s.client.accountingPath("items/items"), nil, map[string]interface{}{"item": &item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}
	return decodeOne[Item](raw, "item")
}

// Update updates an existing item
func (s *itemService) Update(ctx context.Context, itemID int64, params *ItemParams) (*Item, error) {
	if params == nil {
		params = &ItemParams{}
	}

	item := *params
	// Keep the stored currency when only the unit cost changes
	if item.UnitCost != nil && item.UnitCost.Code == "" {
		current, err := s.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		var stored string
		if current.UnitCost != nil {
			stored = current.UnitCost.Code
		}
		item.UnitCost = item.UnitCost.withCode(stored)
	}

	raw, err := s.client.do(ctx, http.MethodPut, s.client.accountingPath("items/items/%d", itemID), nil, map[string]interface{}{"item": &item})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update item %d", itemID)
	}
	return decodeOne[Item](raw, "item")
}

// Delete deletes an item
func (s *itemService) Delete(ctx context.Context, itemID int64) error {
	if _, err := s.client.do(ctx, http.MethodDelete, s.client.accountingPath("items/items/%d", itemID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete item %d", itemID)
	}
	return nil
}
