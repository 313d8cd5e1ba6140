package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type InvoiceIDInput struct {
	InvoiceID int64 `json:"invoice_id" jsonschema:"Invoice ID"`
}

type CreateInvoiceInput struct {
	CustomerID          int64       `json:"customerid" jsonschema:"Client ID for this invoice"`
	CreateDate          string      `json:"create_date,omitempty" jsonschema:"Invoice creation date (YYYY-MM-DD, default: today)"`
	DueOffsetDays       *int        `json:"due_offset_days,omitempty" jsonschema:"Number of days until the invoice is due (default: 30)"`
	CurrencyCode        string      `json:"currency_code,omitempty" jsonschema:"Currency code (e.g. USD or CAD)"`
	Language            string      `json:"language,omitempty" jsonschema:"Language code (e.g. en)"`
	Notes               string      `json:"notes,omitempty" jsonschema:"Invoice notes"`
	Terms               string      `json:"terms,omitempty" jsonschema:"Invoice terms"`
	PONumber            string      `json:"po_number,omitempty" jsonschema:"Purchase order number"`
	DiscountValue       string      `json:"discount_value,omitempty" jsonschema:"Discount value as percentage or amount"`
	DiscountDescription string      `json:"discount_description,omitempty" jsonschema:"Description of discount"`
	Lines               []LineInput `json:"lines,omitempty" jsonschema:"Invoice line items"`
}

type UpdateInvoiceInput struct {
	InvoiceID     int64       `json:"invoice_id" jsonschema:"Invoice ID to update"`
	CustomerID    int64       `json:"customerid,omitempty" jsonschema:"Client ID"`
	Notes         string      `json:"notes,omitempty" jsonschema:"Invoice notes"`
	Terms         string      `json:"terms,omitempty" jsonschema:"Invoice terms"`
	PONumber      string      `json:"po_number,omitempty" jsonschema:"Purchase order number"`
	DiscountValue string      `json:"discount_value,omitempty" jsonschema:"Discount value"`
	Lines         []LineInput `json:"lines,omitempty" jsonschema:"Invoice line items; replaces the existing lines"`
}

type SendInvoiceInput struct {
	InvoiceID int64  `json:"invoice_id" jsonschema:"Invoice ID to send"`
	Email     string `json:"email,omitempty" jsonschema:"Recipient email address (default: the client's email)"`
}

// AddLineInput appends one line to an invoice or estimate
type AddLineInput struct {
	Name         string `json:"name" jsonschema:"Line item name"`
	Description  string `json:"description,omitempty" jsonschema:"Line item description"`
	Qty          string `json:"qty" jsonschema:"Quantity"`
	UnitCost     string `json:"unit_cost" jsonschema:"Unit cost amount"`
	CurrencyCode string `json:"currency_code,omitempty" jsonschema:"Currency code (default: the document currency)"`
}

type AddInvoiceLineInput struct {
	InvoiceID int64 `json:"invoice_id" jsonschema:"Invoice ID"`
	AddLineInput
}

func (in *AddLineInput) line() *freshbooks.Line {
	line := &freshbooks.Line{
		Name:        in.Name,
		Description: in.Description,
		Qty:         freshbooks.Decimal(in.Qty),
		UnitCost:    &freshbooks.Money{Amount: freshbooks.Decimal(in.UnitCost), Code: in.CurrencyCode},
	}
	return line
}

func sendParams(email string) *freshbooks.SendParams {
	return &freshbooks.SendParams{Email: email}
}

func (t *freshbooksTools) registerInvoiceTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_invoices",
		"List invoices with optional search and pagination. Set all to fetch every page.",
		t.ListInvoices)
	addTool(server, "freshbooks_get_invoice", "Get details of a specific invoice by ID", t.GetInvoice)
	addTool(server, "freshbooks_create_invoice", "Create a new invoice in FreshBooks", t.CreateInvoice)
	addTool(server, "freshbooks_update_invoice", "Update an existing invoice", t.UpdateInvoice)
	addTool(server, "freshbooks_delete_invoice", "Delete an invoice", t.DeleteInvoice)
	addTool(server, "freshbooks_send_invoice", "Send an invoice to the client by email", t.SendInvoice)
	addTool(server, "freshbooks_mark_invoice_paid", "Mark an invoice as paid", t.MarkInvoicePaid)
	addTool(server, "freshbooks_get_invoice_share_link", "Get a shareable link for an invoice", t.GetInvoiceShareLink)
	addTool(server, "freshbooks_add_invoice_line", "Add a line item to an existing invoice", t.AddInvoiceLine)
	addTool(server, "freshbooks_search_invoices", "Search invoices by number, client, or notes", t.SearchInvoices)
}

func (t *freshbooksTools) ListInvoices(ctx context.Context, req *mcp.CallToolRequest, in ListAllInput) (*mcp.CallToolResult, any, error) {
	if in.All {
		all, err := t.client.Invoices.ListAll(ctx, in.options())
		if err != nil {
			return t.fail(req, err)
		}
		return t.ok(allPages(all))
	}

	page, err := t.client.Invoices.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetInvoice(ctx context.Context, req *mcp.CallToolRequest, in InvoiceIDInput) (*mcp.CallToolResult, any, error) {
	invoice, err := t.client.Invoices.Get(ctx, in.InvoiceID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(invoice)
}

func (t *freshbooksTools) CreateInvoice(ctx context.Context, req *mcp.CallToolRequest, in CreateInvoiceInput) (*mcp.CallToolResult, any, error) {
	invoice, err := t.client.Invoices.Create(ctx, &freshbooks.InvoiceParams{
		CustomerID:          in.CustomerID,
		CreateDate:          in.CreateDate,
		DueOffsetDays:       in.DueOffsetDays,
		CurrencyCode:        in.CurrencyCode,
		Language:            in.Language,
		Notes:               in.Notes,
		Terms:               in.Terms,
		PONumber:            in.PONumber,
		DiscountValue:       in.DiscountValue,
		DiscountDescription: in.DiscountDescription,
		Lines:               toLines(in.Lines, in.CurrencyCode),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(invoice)
}

func (t *freshbooksTools) UpdateInvoice(ctx context.Context, req *mcp.CallToolRequest, in UpdateInvoiceInput) (*mcp.CallToolResult, any, error) {
	invoice, err := t.client.Invoices.Update(ctx, in.InvoiceID, &freshbooks.InvoiceParams{
		CustomerID:    in.CustomerID,
		Notes:         in.Notes,
		Terms:         in.Terms,
		PONumber:      in.PONumber,
		DiscountValue: in.DiscountValue,
		Lines:         toLines(in.Lines, ""),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(invoice)
}

func (t *freshbooksTools) DeleteInvoice(ctx context.Context, req *mcp.CallToolRequest, in InvoiceIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Invoices.Delete(ctx, in.InvoiceID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Invoice %d deleted successfully", in.InvoiceID)
}

func (t *freshbooksTools) SendInvoice(ctx context.Context, req *mcp.CallToolRequest, in SendInvoiceInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Invoices.Send(ctx, in.InvoiceID, sendParams(in.Email)); err != nil {
		return t.fail(req, err)
	}
	return t.message("Invoice %d sent successfully", in.InvoiceID)
}

func (t *freshbooksTools) MarkInvoicePaid(ctx context.Context, req *mcp.CallToolRequest, in InvoiceIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Invoices.MarkPaid(ctx, in.InvoiceID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Invoice %d marked as paid", in.InvoiceID)
}

func (t *freshbooksTools) GetInvoiceShareLink(ctx context.Context, req *mcp.CallToolRequest, in InvoiceIDInput) (*mcp.CallToolResult, any, error) {
	link, err := t.client.Invoices.ShareLink(ctx, in.InvoiceID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.message("%s", link)
}

func (t *freshbooksTools) AddInvoiceLine(ctx context.Context, req *mcp.CallToolRequest, in AddInvoiceLineInput) (*mcp.CallToolResult, any, error) {
	invoice, err := t.client.Invoices.AddLine(ctx, in.InvoiceID, in.line())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(invoice)
}

func (t *freshbooksTools) SearchInvoices(ctx context.Context, req *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Invoices.List(ctx, &freshbooks.ListOptions{Search: in.Query})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}
