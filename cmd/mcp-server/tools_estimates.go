package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type EstimateIDInput struct {
	EstimateID int64 `json:"estimate_id" jsonschema:"Estimate ID"`
}

type CreateEstimateInput struct {
	CustomerID    int64       `json:"customerid" jsonschema:"Client ID for this estimate"`
	CreateDate    string      `json:"create_date,omitempty" jsonschema:"Estimate date (YYYY-MM-DD)"`
	CurrencyCode  string      `json:"currency_code,omitempty" jsonschema:"Currency code (e.g. USD or CAD)"`
	Language      string      `json:"language,omitempty" jsonschema:"Language code (e.g. en)"`
	Notes         string      `json:"notes,omitempty" jsonschema:"Estimate notes"`
	Terms         string      `json:"terms,omitempty" jsonschema:"Estimate terms"`
	DiscountValue string      `json:"discount_value,omitempty" jsonschema:"Discount value"`
	Lines         []LineInput `json:"lines,omitempty" jsonschema:"Estimate line items"`
}

type UpdateEstimateInput struct {
	EstimateID int64       `json:"estimate_id" jsonschema:"Estimate ID to update"`
	Notes      string      `json:"notes,omitempty" jsonschema:"Estimate notes"`
	Terms      string      `json:"terms,omitempty" jsonschema:"Estimate terms"`
	Lines      []LineInput `json:"lines,omitempty" jsonschema:"Estimate line items; replaces the existing lines"`
}

type SendEstimateInput struct {
	EstimateID int64  `json:"estimate_id" jsonschema:"Estimate ID to send"`
	Email      string `json:"email,omitempty" jsonschema:"Recipient email address (default: the client's email)"`
}

type AddEstimateLineInput struct {
	EstimateID int64 `json:"estimate_id" jsonschema:"Estimate ID"`
	AddLineInput
}

func (t *freshbooksTools) registerEstimateTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_estimates", "List estimates with optional search and pagination", t.ListEstimates)
	addTool(server, "freshbooks_get_estimate", "Get details of a specific estimate by ID", t.GetEstimate)
	addTool(server, "freshbooks_create_estimate", "Create a new estimate", t.CreateEstimate)
	addTool(server, "freshbooks_update_estimate", "Update an existing estimate", t.UpdateEstimate)
	addTool(server, "freshbooks_delete_estimate", "Delete an estimate", t.DeleteEstimate)
	addTool(server, "freshbooks_send_estimate", "Send an estimate to the client by email", t.SendEstimate)
	addTool(server, "freshbooks_accept_estimate", "Mark an estimate as accepted", t.AcceptEstimate)
	addTool(server, "freshbooks_add_estimate_line", "Add a line item to an existing estimate", t.AddEstimateLine)
}

func (t *freshbooksTools) ListEstimates(ctx context.Context, req *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Estimates.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetEstimate(ctx context.Context, req *mcp.CallToolRequest, in EstimateIDInput) (*mcp.CallToolResult, any, error) {
	estimate, err := t.client.Estimates.Get(ctx, in.EstimateID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(estimate)
}

func (t *freshbooksTools) CreateEstimate(ctx context.Context, req *mcp.CallToolRequest, in CreateEstimateInput) (*mcp.CallToolResult, any, error) {
	estimate, err := t.client.Estimates.Create(ctx, &freshbooks.EstimateParams{
		CustomerID:    in.CustomerID,
		CreateDate:    in.CreateDate,
		CurrencyCode:  in.CurrencyCode,
		Language:      in.Language,
		Notes:         in.Notes,
		Terms:         in.Terms,
		DiscountValue: in.DiscountValue,
		Lines:         toLines(in.Lines, in.CurrencyCode),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(estimate)
}

func (t *freshbooksTools) UpdateEstimate(ctx context.Context, req *mcp.CallToolRequest, in UpdateEstimateInput) (*mcp.CallToolResult, any, error) {
	estimate, err := t.client.Estimates.Update(ctx, in.EstimateID, &freshbooks.EstimateParams{
		Notes: in.Notes,
		Terms: in.Terms,
		Lines: toLines(in.Lines, ""),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(estimate)
}

func (t *freshbooksTools) DeleteEstimate(ctx context.Context, req *mcp.CallToolRequest, in EstimateIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Estimates.Delete(ctx, in.EstimateID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Estimate %d deleted successfully", in.EstimateID)
}

func (t *freshbooksTools) SendEstimate(ctx context.Context, req *mcp.CallToolRequest, in SendEstimateInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Estimates.Send(ctx, in.EstimateID, sendParams(in.Email)); err != nil {
		return t.fail(req, err)
	}
	return t.message("Estimate %d sent successfully", in.EstimateID)
}

func (t *freshbooksTools) AcceptEstimate(ctx context.Context, req *mcp.CallToolRequest, in EstimateIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Estimates.Accept(ctx, in.EstimateID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Estimate %d accepted", in.EstimateID)
}

func (t *freshbooksTools) AddEstimateLine(ctx context.Context, req *mcp.CallToolRequest, in AddEstimateLineInput) (*mcp.CallToolResult, any, error) {
	estimate, err := t.client.Estimates.AddLine(ctx, in.EstimateID, in.line())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(estimate)
}
