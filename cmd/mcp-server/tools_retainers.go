package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type RetainerIDInput struct {
	RetainerID int64 `json:"retainer_id" jsonschema:"Retainer ID"`
}

type CreateRetainerInput struct {
	ClientID  int64  `json:"client_id" jsonschema:"Client ID"`
	Fee       string `json:"fee" jsonschema:"Retainer fee per period"`
	Period    string `json:"period" jsonschema:"Billing period (e.g. monthly)"`
	StartDate string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

type UpdateRetainerInput struct {
	RetainerID int64  `json:"retainer_id" jsonschema:"Retainer ID to update"`
	Fee        string `json:"fee,omitempty" jsonschema:"Retainer fee per period"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
	Active     *bool  `json:"active,omitempty" jsonschema:"Whether the retainer is active"`
}

func (t *freshbooksTools) registerRetainerTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_retainers", "List client retainers with pagination", t.ListRetainers)
	addTool(server, "freshbooks_get_retainer", "Get details of a specific retainer by ID", t.GetRetainer)
	addTool(server, "freshbooks_create_retainer", "Create a new client retainer", t.CreateRetainer)
	addTool(server, "freshbooks_update_retainer", "Update an existing retainer", t.UpdateRetainer)
	addTool(server, "freshbooks_delete_retainer", "Delete a retainer", t.DeleteRetainer)
}

func (t *freshbooksTools) ListRetainers(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Retainers.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetRetainer(ctx context.Context, req *mcp.CallToolRequest, in RetainerIDInput) (*mcp.CallToolResult, any, error) {
	retainer, err := t.client.Retainers.Get(ctx, in.RetainerID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(retainer)
}

func (t *freshbooksTools) CreateRetainer(ctx context.Context, req *mcp.CallToolRequest, in CreateRetainerInput) (*mcp.CallToolResult, any, error) {
	retainer, err := t.client.Retainers.Create(ctx, &freshbooks.RetainerParams{
		ClientID:  in.ClientID,
		Fee:       in.Fee,
		Period:    in.Period,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(retainer)
}

func (t *freshbooksTools) UpdateRetainer(ctx context.Context, req *mcp.CallToolRequest, in UpdateRetainerInput) (*mcp.CallToolResult, any, error) {
	retainer, err := t.client.Retainers.Update(ctx, in.RetainerID, &freshbooks.RetainerParams{
		Fee:     in.Fee,
		EndDate: in.EndDate,
		Active:  in.Active,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(retainer)
}

func (t *freshbooksTools) DeleteRetainer(ctx context.Context, req *mcp.CallToolRequest, in RetainerIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Retainers.Delete(ctx, in.RetainerID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Retainer %d deleted successfully", in.RetainerID)
}
