package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PaymentIDInput struct {
	PaymentID int64 `json:"payment_id" jsonschema:"Payment ID"`
}

type ListPaymentsInput struct {
	Page    int  `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	PerPage int  `json:"per_page,omitempty" jsonschema:"Number of results per page (default: 30)"`
	All     bool `json:"all,omitempty" jsonschema:"Fetch every page and return all results"`
}

type CreatePaymentInput struct {
	InvoiceID    int64  `json:"invoiceid" jsonschema:"Invoice ID the payment applies to"`
	Amount       string `json:"amount" jsonschema:"Payment amount"`
	CurrencyCode string `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	Date         string `json:"date" jsonschema:"Payment date (YYYY-MM-DD)"`
	Type         string `json:"type" jsonschema:"Payment type (e.g. Check, Credit, Cash, Bank Transfer)"`
	Note         string `json:"note,omitempty" jsonschema:"Payment note"`
	Gateway      string `json:"gateway,omitempty" jsonschema:"Payment gateway"`
}

type UpdatePaymentInput struct {
	PaymentID int64  `json:"payment_id" jsonschema:"Payment ID to update"`
	Amount    string `json:"amount,omitempty" jsonschema:"Payment amount (keeps the stored currency)"`
	Date      string `json:"date,omitempty" jsonschema:"Payment date (YYYY-MM-DD)"`
	Note      string `json:"note,omitempty" jsonschema:"Payment note"`
}

func (t *freshbooksTools) registerPaymentTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_payments",
		"List payments with pagination. Set all to fetch every page.",
		t.ListPayments)
	addTool(server, "freshbooks_get_payment", "Get details of a specific payment by ID", t.GetPayment)
	addTool(server, "freshbooks_create_payment", "Record a payment against an invoice", t.CreatePayment)
	addTool(server, "freshbooks_update_payment", "Update an existing payment", t.UpdatePayment)
	addTool(server, "freshbooks_delete_payment", "Delete a payment", t.DeletePayment)
}

func (t *freshbooksTools) ListPayments(ctx context.Context, req *mcp.CallToolRequest, in ListPaymentsInput) (*mcp.CallToolResult, any, error) {
	opts := &freshbooks.ListOptions{Page: in.Page, PerPage: in.PerPage}
	if in.All {
		all, err := t.client.Payments.ListAll(ctx, opts)
		if err != nil {
			return t.fail(req, err)
		}
		return t.ok(allPages(all))
	}

	page, err := t.client.Payments.List(ctx, opts)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetPayment(ctx context.Context, req *mcp.CallToolRequest, in PaymentIDInput) (*mcp.CallToolResult, any, error) {
	payment, err := t.client.Payments.Get(ctx, in.PaymentID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(payment)
}

func (t *freshbooksTools) CreatePayment(ctx context.Context, req *mcp.CallToolRequest, in CreatePaymentInput) (*mcp.CallToolResult, any, error) {
	payment, err := t.client.Payments.Create(ctx, &freshbooks.PaymentParams{
		InvoiceID: in.InvoiceID,
		Amount:    freshbooks.NewMoney(in.Amount, in.CurrencyCode),
		Date:      in.Date,
		Type:      in.Type,
		Note:      in.Note,
		Gateway:   in.Gateway,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(payment)
}

func (t *freshbooksTools) UpdatePayment(ctx context.Context, req *mcp.CallToolRequest, in UpdatePaymentInput) (*mcp.CallToolResult, any, error) {
	params := &freshbooks.PaymentParams{Date: in.Date, Note: in.Note}
	if in.Amount != "" {
		params.Amount = &freshbooks.Money{Amount: freshbooks.Decimal(in.Amount)}
	}

	payment, err := t.client.Payments.Update(ctx, in.PaymentID, params)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(payment)
}

func (t *freshbooksTools) DeletePayment(ctx context.Context, req *mcp.CallToolRequest, in PaymentIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Payments.Delete(ctx, in.PaymentID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Payment %d deleted successfully", in.PaymentID)
}
