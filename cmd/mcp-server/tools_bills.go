package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type BillIDInput struct {
	BillID int64 `json:"bill_id" jsonschema:"Bill ID"`
}

type BillLineInput struct {
	Description string      `json:"description,omitempty" jsonschema:"Line description"`
	Quantity    string      `json:"quantity,omitempty" jsonschema:"Quantity (default: 1)"`
	UnitCost    *MoneyInput `json:"unit_cost,omitempty" jsonschema:"Unit cost"`
	CategoryID  int64       `json:"category_id,omitempty" jsonschema:"Expense category ID"`
}

type CreateBillInput struct {
	VendorID     int64           `json:"vendor_id" jsonschema:"Vendor ID"`
	IssueDate    string          `json:"issue_date" jsonschema:"Issue date (YYYY-MM-DD)"`
	BillNumber   string          `json:"bill_number,omitempty" jsonschema:"Vendor bill number"`
	DueDate      string          `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	CurrencyCode string          `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	Lines        []BillLineInput `json:"lines,omitempty" jsonschema:"Bill line items"`
}

type UpdateBillInput struct {
	BillID  int64           `json:"bill_id" jsonschema:"Bill ID to update"`
	DueDate string          `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	Lines   []BillLineInput `json:"lines,omitempty" jsonschema:"Bill line items; replaces the existing lines"`
}

type CreateBillPaymentInput struct {
	BillID       int64  `json:"bill_id" jsonschema:"Bill ID"`
	Amount       string `json:"amount" jsonschema:"Payment amount"`
	PaidDate     string `json:"paid_date" jsonschema:"Payment date (YYYY-MM-DD)"`
	PaymentType  string `json:"payment_type" jsonschema:"Payment type (e.g. Check, Credit, Cash)"`
	CurrencyCode string `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	Note         string `json:"note,omitempty" jsonschema:"Payment note"`
}

func toBillLines(in []BillLineInput, currency string) []*freshbooks.BillLine {
	if in == nil {
		return nil
	}
	lines := make([]*freshbooks.BillLine, 0, len(in))
	for _, l := range in {
		line := &freshbooks.BillLine{
			Description: l.Description,
			Quantity:    freshbooks.Decimal(l.Quantity),
			UnitCost:    toMoney(l.UnitCost, currency),
			CategoryID:  l.CategoryID,
		}
		if line.Quantity == "" {
			line.Quantity = "1"
		}
		lines = append(lines, line)
	}
	return lines
}

func (t *freshbooksTools) registerBillTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_bills", "List vendor bills with pagination", t.ListBills)
	addTool(server, "freshbooks_get_bill", "Get details of a specific bill by ID", t.GetBill)
	addTool(server, "freshbooks_create_bill", "Create a new vendor bill", t.CreateBill)
	addTool(server, "freshbooks_update_bill", "Update an existing bill", t.UpdateBill)
	addTool(server, "freshbooks_delete_bill", "Delete a bill", t.DeleteBill)
	addTool(server, "freshbooks_get_bill_payments", "List the payments recorded against a bill", t.GetBillPayments)
	addTool(server, "freshbooks_create_bill_payment", "Record a payment against a bill", t.CreateBillPayment)
}

func (t *freshbooksTools) ListBills(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Bills.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetBill(ctx context.Context, req *mcp.CallToolRequest, in BillIDInput) (*mcp.CallToolResult, any, error) {
	bill, err := t.client.Bills.Get(ctx, in.BillID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(bill)
}

func (t *freshbooksTools) CreateBill(ctx context.Context, req *mcp.CallToolRequest, in CreateBillInput) (*mcp.CallToolResult, any, error) {
	bill, err := t.client.Bills.Create(ctx, &freshbooks.BillParams{
		VendorID:     in.VendorID,
		IssueDate:    in.IssueDate,
		BillNumber:   in.BillNumber,
		DueDate:      in.DueDate,
		CurrencyCode: in.CurrencyCode,
		Lines:        toBillLines(in.Lines, in.CurrencyCode),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(bill)
}

func (t *freshbooksTools) UpdateBill(ctx context.Context, req *mcp.CallToolRequest, in UpdateBillInput) (*mcp.CallToolResult, any, error) {
	bill, err := t.client.Bills.Update(ctx, in.BillID, &freshbooks.BillParams{
		DueDate: in.DueDate,
		Lines:   toBillLines(in.Lines, ""),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(bill)
}

func (t *freshbooksTools) DeleteBill(ctx context.Context, req *mcp.CallToolRequest, in BillIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Bills.Delete(ctx, in.BillID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Bill %d deleted successfully", in.BillID)
}

func (t *freshbooksTools) GetBillPayments(ctx context.Context, req *mcp.CallToolRequest, in BillIDInput) (*mcp.CallToolResult, any, error) {
	payments, err := t.client.Bills.Payments(ctx, in.BillID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(payments)
}

func (t *freshbooksTools) CreateBillPayment(ctx context.Context, req *mcp.CallToolRequest, in CreateBillPaymentInput) (*mcp.CallToolResult, any, error) {
	payment, err := t.client.Bills.CreatePayment(ctx, in.BillID, &freshbooks.BillPaymentParams{
		Amount:      freshbooks.NewMoney(in.Amount, in.CurrencyCode),
		PaidDate:    in.PaidDate,
		PaymentType: in.PaymentType,
		Note:        in.Note,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(payment)
}
