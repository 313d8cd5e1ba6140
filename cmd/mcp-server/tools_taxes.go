package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TaxIDInput struct {
	TaxID int64 `json:"tax_id" jsonschema:"Tax ID"`
}

type CreateTaxInput struct {
	Name     string `json:"name" jsonschema:"Tax name (e.g. GST)"`
	Amount   string `json:"amount" jsonschema:"Tax rate as a percentage"`
	Number   string `json:"number,omitempty" jsonschema:"Tax registration number"`
	Compound *bool  `json:"compound,omitempty" jsonschema:"Whether the tax is compound"`
}

type UpdateTaxInput struct {
	TaxID  int64  `json:"tax_id" jsonschema:"Tax ID to update"`
	Name   string `json:"name,omitempty" jsonschema:"Tax name"`
	Amount string `json:"amount,omitempty" jsonschema:"Tax rate as a percentage"`
	Number string `json:"number,omitempty" jsonschema:"Tax registration number"`
}

func (t *freshbooksTools) registerTaxTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_taxes", "List all taxes", t.ListTaxes)
	addTool(server, "freshbooks_get_tax", "Get details of a specific tax by ID", t.GetTax)
	addTool(server, "freshbooks_create_tax", "Create a new tax", t.CreateTax)
	addTool(server, "freshbooks_update_tax", "Update an existing tax", t.UpdateTax)
	addTool(server, "freshbooks_delete_tax", "Delete a tax", t.DeleteTax)
}

func (t *freshbooksTools) ListTaxes(ctx context.Context, req *mcp.CallToolRequest, in NoInput) (*mcp.CallToolResult, any, error) {
	taxes, err := t.client.Taxes.List(ctx)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(taxes)
}

func (t *freshbooksTools) GetTax(ctx context.Context, req *mcp.CallToolRequest, in TaxIDInput) (*mcp.CallToolResult, any, error) {
	tax, err := t.client.Taxes.Get(ctx, in.TaxID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(tax)
}

func (t *freshbooksTools) CreateTax(ctx context.Context, req *mcp.CallToolRequest, in CreateTaxInput) (*mcp.CallToolResult, any, error) {
	tax, err := t.client.Taxes.Create(ctx, &freshbooks.TaxParams{
		Name:     in.Name,
		Amount:   in.Amount,
		Number:   in.Number,
		Compound: in.Compound,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(tax)
}

func (t *freshbooksTools) UpdateTax(ctx context.Context, req *mcp.CallToolRequest, in UpdateTaxInput) (*mcp.CallToolResult, any, error) {
	tax, err := t.client.Taxes.Update(ctx, in.TaxID, &freshbooks.TaxParams{
		Name:   in.Name,
		Amount: in.Amount,
		Number: in.Number,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(tax)
}

func (t *freshbooksTools) DeleteTax(ctx context.Context, req *mcp.CallToolRequest, in TaxIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Taxes.Delete(ctx, in.TaxID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Tax %d deleted successfully", in.TaxID)
}
