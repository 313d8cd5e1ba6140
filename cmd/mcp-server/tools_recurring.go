package main

import (
	"context"
	"strconv"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type RecurringIDInput struct {
	RecurringID int64 `json:"recurring_id" jsonschema:"Recurring profile ID"`
}

type ListRecurringInput struct {
	ClientID int64 `json:"clientid,omitempty" jsonschema:"Only return profiles for this client"`
	Page     int   `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	PerPage  int   `json:"per_page,omitempty" jsonschema:"Number of results per page (default: 30)"`
}

// RecurringLineInput takes the unit cost as a bare amount in the profile currency
type RecurringLineInput struct {
	Name        string  `json:"name" jsonschema:"Line item name"`
	Description string  `json:"description,omitempty" jsonschema:"Line item description"`
	Qty         float64 `json:"qty" jsonschema:"Quantity"`
	UnitCost    string  `json:"unit_cost" jsonschema:"Unit cost amount"`
}

type CreateRecurringInput struct {
	ClientID        int64                `json:"clientid" jsonschema:"Client ID to bill"`
	Frequency       string               `json:"frequency" jsonschema:"Billing frequency: weekly, biweekly, monthly, quarterly or yearly"`
	Lines           []RecurringLineInput `json:"lines" jsonschema:"Line items billed on every cycle"`
	NumberRecurring *int                 `json:"numberRecurring,omitempty" jsonschema:"Number of invoices to generate (0 for infinite)"`
	CurrencyCode    string               `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	Notes           string               `json:"notes,omitempty" jsonschema:"Invoice notes"`
	Terms           string               `json:"terms,omitempty" jsonschema:"Invoice terms"`
}

type UpdateRecurringInput struct {
	RecurringID     int64                `json:"recurring_id" jsonschema:"Recurring profile ID to update"`
	Frequency       string               `json:"frequency,omitempty" jsonschema:"Billing frequency: weekly, biweekly, monthly, quarterly or yearly"`
	NumberRecurring *int                 `json:"numberRecurring,omitempty" jsonschema:"Number of invoices to generate (0 for infinite)"`
	Lines           []RecurringLineInput `json:"lines,omitempty" jsonschema:"Line items; replaces the existing lines"`
	Notes           string               `json:"notes,omitempty" jsonschema:"Invoice notes"`
	Terms           string               `json:"terms,omitempty" jsonschema:"Invoice terms"`
}

func (in *ListRecurringInput) options() *freshbooks.ListOptions {
	return &freshbooks.ListOptions{Page: in.Page, PerPage: in.PerPage}
}

func toRecurringLines(in []RecurringLineInput, currency string) []*freshbooks.Line {
	if in == nil {
		return nil
	}
	lines := make([]*freshbooks.Line, 0, len(in))
	for _, l := range in {
		lines = append(lines, &freshbooks.Line{
			Name:        l.Name,
			Description: l.Description,
			Qty:         freshbooks.Decimal(strconv.FormatFloat(l.Qty, 'f', -1, 64)),
			UnitCost:    &freshbooks.Money{Amount: freshbooks.Decimal(l.UnitCost), Code: currency},
		})
	}
	return lines
}

func (t *freshbooksTools) registerRecurringTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_recurring_profiles", "List recurring invoice profiles, optionally for one client", t.ListRecurringProfiles)
	addTool(server, "freshbooks_get_recurring_profile", "Get details of a specific recurring invoice profile by ID", t.GetRecurringProfile)
	addTool(server, "freshbooks_create_recurring_profile", "Create a recurring invoice profile", t.CreateRecurringProfile)
	addTool(server, "freshbooks_update_recurring_profile", "Update an existing recurring invoice profile", t.UpdateRecurringProfile)
	addTool(server, "freshbooks_delete_recurring_profile", "Delete a recurring invoice profile", t.DeleteRecurringProfile)
}

func (t *freshbooksTools) ListRecurringProfiles(ctx context.Context, req *mcp.CallToolRequest, in ListRecurringInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Recurring.List(ctx, in.ClientID, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetRecurringProfile(ctx context.Context, req *mcp.CallToolRequest, in RecurringIDInput) (*mcp.CallToolResult, any, error) {
	profile, err := t.client.Recurring.Get(ctx, in.RecurringID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(profile)
}

func (t *freshbooksTools) CreateRecurringProfile(ctx context.Context, req *mcp.CallToolRequest, in CreateRecurringInput) (*mcp.CallToolResult, any, error) {
	profile, err := t.client.Recurring.Create(ctx, &freshbooks.RecurringParams{
		ClientID:        in.ClientID,
		Frequency:       in.Frequency,
		NumberRecurring: in.NumberRecurring,
		CurrencyCode:    in.CurrencyCode,
		Lines:           toRecurringLines(in.Lines, in.CurrencyCode),
		Notes:           in.Notes,
		Terms:           in.Terms,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(profile)
}

func (t *freshbooksTools) UpdateRecurringProfile(ctx context.Context, req *mcp.CallToolRequest, in UpdateRecurringInput) (*mcp.CallToolResult, any, error) {
	profile, err := t.client.Recurring.Update(ctx, in.RecurringID, &freshbooks.RecurringParams{
		Frequency:       in.Frequency,
		NumberRecurring: in.NumberRecurring,
		Lines:           toRecurringLines(in.Lines, ""),
		Notes:           in.Notes,
		Terms:           in.Terms,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(profile)
}

func (t *freshbooksTools) DeleteRecurringProfile(ctx context.Context, req *mcp.CallToolRequest, in RecurringIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Recurring.Delete(ctx, in.RecurringID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Recurring profile %d deleted", in.RecurringID)
}
