package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ExpenseIDInput struct {
	ExpenseID int64 `json:"expense_id" jsonschema:"Expense ID"`
}

type CreateExpenseInput struct {
	Amount        string `json:"amount" jsonschema:"Expense amount"`
	CurrencyCode  string `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	Vendor        string `json:"vendor" jsonschema:"Vendor name"`
	Date          string `json:"date" jsonschema:"Expense date (YYYY-MM-DD)"`
	CategoryID    int64  `json:"categoryid" jsonschema:"Expense category ID"`
	ClientID      int64  `json:"clientid,omitempty" jsonschema:"Client ID to bill the expense to"`
	ProjectID     int64  `json:"projectid,omitempty" jsonschema:"Project ID"`
	Notes         string `json:"notes,omitempty" jsonschema:"Expense notes"`
	MarkupPercent string `json:"markup_percent,omitempty" jsonschema:"Markup percentage when rebilling"`
}

type UpdateExpenseInput struct {
	ExpenseID int64  `json:"expense_id" jsonschema:"Expense ID to update"`
	Amount    string `json:"amount,omitempty" jsonschema:"Expense amount (keeps the stored currency)"`
	Vendor    string `json:"vendor,omitempty" jsonschema:"Vendor name"`
	Date      string `json:"date,omitempty" jsonschema:"Expense date (YYYY-MM-DD)"`
	Notes     string `json:"notes,omitempty" jsonschema:"Expense notes"`
}

func (t *freshbooksTools) registerExpenseTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_expenses",
		"List expenses with optional search and pagination. Set all to fetch every page.",
		t.ListExpenses)
	addTool(server, "freshbooks_get_expense", "Get details of a specific expense by ID", t.GetExpense)
	addTool(server, "freshbooks_create_expense", "Record a new expense", t.CreateExpense)
	addTool(server, "freshbooks_update_expense", "Update an existing expense", t.UpdateExpense)
	addTool(server, "freshbooks_delete_expense", "Delete an expense", t.DeleteExpense)
	addTool(server, "freshbooks_list_expense_categories", "List all expense categories", t.ListExpenseCategories)
	addTool(server, "freshbooks_search_expenses", "Search expenses by vendor or notes", t.SearchExpenses)
}

func (t *freshbooksTools) ListExpenses(ctx context.Context, req *mcp.CallToolRequest, in ListAllInput) (*mcp.CallToolResult, any, error) {
	if in.All {
		all, err := t.client.Expenses.ListAll(ctx, in.options())
		if err != nil {
			return t.fail(req, err)
		}
		return t.ok(allPages(all))
	}

	page, err := t.client.Expenses.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetExpense(ctx context.Context, req *mcp.CallToolRequest, in ExpenseIDInput) (*mcp.CallToolResult, any, error) {
	expense, err := t.client.Expenses.Get(ctx, in.ExpenseID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(expense)
}

func (t *freshbooksTools) CreateExpense(ctx context.Context, req *mcp.CallToolRequest, in CreateExpenseInput) (*mcp.CallToolResult, any, error) {
	expense, err := t.client.Expenses.Create(ctx, &freshbooks.ExpenseParams{
		Amount:        freshbooks.NewMoney(in.Amount, in.CurrencyCode),
		Vendor:        in.Vendor,
		Date:          in.Date,
		CategoryID:    in.CategoryID,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		Notes:         in.Notes,
		MarkupPercent: in.MarkupPercent,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(expense)
}

func (t *freshbooksTools) UpdateExpense(ctx context.Context, req *mcp.CallToolRequest, in UpdateExpenseInput) (*mcp.CallToolResult, any, error) {
	params := &freshbooks.ExpenseParams{
		Vendor: in.Vendor,
		Date:   in.Date,
		Notes:  in.Notes,
	}
	if in.Amount != "" {
		params.Amount = &freshbooks.Money{Amount: freshbooks.Decimal(in.Amount)}
	}

	expense, err := t.client.Expenses.Update(ctx, in.ExpenseID, params)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(expense)
}

func (t *freshbooksTools) DeleteExpense(ctx context.Context, req *mcp.CallToolRequest, in ExpenseIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.Expenses.Delete(ctx, in.ExpenseID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Expense %d deleted successfully", in.ExpenseID)
}

func (t *freshbooksTools) ListExpenseCategories(ctx context.Context, req *mcp.CallToolRequest, in NoInput) (*mcp.CallToolResult, any, error) {
	categories, err := t.client.Expenses.Categories(ctx)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(categories)
}

func (t *freshbooksTools) SearchExpenses(ctx context.Context, req *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.Expenses.List(ctx, &freshbooks.ListOptions{Search: in.Query})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}
