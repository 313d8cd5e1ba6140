package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ItemIDInput struct {
	ItemID int64 `json:"item_id" jsonschema:"Item ID"`
}

type CreateItemInput struct {
	Name         string `json:"name" jsonschema:"Item name"`
	UnitCost     string `json:"unit_cost" jsonschema:"Unit cost amount"`
	Description  string `json:"description,omitempty" jsonschema:"Item description"`
	Quantity     string `json:"quantity,omitempty" jsonschema:"Default quantity"`
	Inventory    string `json:"inventory,omitempty" jsonschema:"Inventory count"`
	CurrencyCode string `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	SKU          string `json:"sku,omitempty" jsonschema:"Stock keeping unit"`
}

type UpdateItemInput struct {
	ItemID      int64  `json:"item_id" jsonschema:"Item ID to update"`
	Name        string `json:"name,omitempty" jsonschema:"Item name"`
	Description string `json:"description,omitempty" jsonschema:"Item description"`
	UnitCost    string `json:"unit_cost,omitempty" jsonschema:"Unit cost amount (keeps the stored currency)"`
	Inventory   string `json:"inventory,omitempty" jsonschema:"Inventory count"`
}

func (t *freshbooksTools) registerItemTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_items", "List saved items and services with optional search and pagination", t.ListItems)
	addTool(server, "freshbooks_get_item", "Get details of a specific item by ID", t.GetItem)
	addTool(server, "freshbooks_create_item", "Create a new item or service", t.CreateItem)
	addTool(server, "freshbooks_update_item", "Update an existing item", t.UpdateItem)
	addTool(server, "freshbooks_delete_item", "Delete an item", t.DeleteItem)
}

func (t *freshbooksTools) ListItems(ctx context.Context, req *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Items.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetItem(ctx context.Context, req *mcp.CallToolRequest, in ItemIDInput) (*mcp.CallToolResult, any, error) {
	item, err := t.client.Items.Get(ctx, in.ItemID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(item)
}

func (t *freshbooksTools) CreateItem(ctx context.Context, req *mcp.CallToolRequest, in CreateItemInput) (*mcp.CallToolResult, any, error) {
	item, err := t.client.Items.Create(ctx, &freshbooks.ItemParams{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Inventory:   in.Inventory,
		UnitCost:    freshbooks.NewMoney(in.UnitCost, in.CurrencyCode),
		SKU:         in.SKU,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(item)
}

func (t *freshbooksTools) UpdateItem(ctx context.Context, req *mcp.CallToolRequest, in UpdateItemInput) (*mcp.CallToolResult, any, error) {
	params := &freshbooks.ItemParams{
		Name:        in.Name,
		Description: in.Description,
		Inventory:   in.Inventory,
	}
	if in.UnitCost != "" {
		params.UnitCost = &freshbooks.Money{Amount: freshbooks.Decimal(in.UnitCost)}
	}

	item, err := t.client.Items.Update(ctx, in.ItemID, params)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(item)
}

func (t *freshbooksTools) DeleteItem(ctx context.Context, req *mcp.CallToolRequest, in ItemIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Items.Delete(ctx, in.ItemID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Item %d deleted successfully", in.ItemID)
}
