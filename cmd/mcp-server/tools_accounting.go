package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type AccountIDInput struct {
	AccountID int64 `json:"account_id" jsonschema:"Account ID"`
}

type JournalEntryIDInput struct {
	JournalEntryID int64 `json:"journal_entry_id" jsonschema:"Journal entry ID"`
}

type JournalDetailInput struct {
	SubAccountID int64       `json:"sub_accountid" jsonschema:"Sub-account ID"`
	DebitAmount  *MoneyInput `json:"debit_amount,omitempty" jsonschema:"Debit amount"`
	CreditAmount *MoneyInput `json:"credit_amount,omitempty" jsonschema:"Credit amount"`
	Description  string      `json:"description,omitempty" jsonschema:"Line description"`
}

type CreateJournalEntryInput struct {
	Name            string               `json:"name" jsonschema:"Journal entry name"`
	UserEnteredDate string               `json:"user_entered_date" jsonschema:"Entry date (YYYY-MM-DD)"`
	Details         []JournalDetailInput `json:"details" jsonschema:"Debit and credit lines"`
	Description     string               `json:"description,omitempty" jsonschema:"Journal entry description"`
	CurrencyCode    string               `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
}

func (t *freshbooksTools) registerAccountTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_accounts", "List the chart of accounts", t.ListAccounts)
	addTool(server, "freshbooks_get_account", "Get details of a specific account by ID", t.GetAccount)
}

func (t *freshbooksTools) registerJournalEntryTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_journal_entries", "List journal entries with pagination", t.ListJournalEntries)
	addTool(server, "freshbooks_get_journal_entry", "Get details of a specific journal entry by ID", t.GetJournalEntry)
	addTool(server, "freshbooks_create_journal_entry", "Create a manual journal entry", t.CreateJournalEntry)
}

func (t *freshbooksTools) ListAccounts(ctx context.Context, req *mcp.CallToolRequest, in NoInput) (*mcp.CallToolResult, any, error) {
	accounts, err := t.client.Accounts.List(ctx)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(accounts)
}

func (t *freshbooksTools) GetAccount(ctx context.Context, req *mcp.CallToolRequest, in AccountIDInput) (*mcp.CallToolResult, any, error) {
	account, err := t.client.Accounts.Get(ctx, in.AccountID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(account)
}

func (t *freshbooksTools) ListJournalEntries(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.JournalEntries.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetJournalEntry(ctx context.Context, req *mcp.CallToolRequest, in JournalEntryIDInput) (*mcp.CallToolResult, any, error) {
	entry, err := t.client.JournalEntries.Get(ctx, in.JournalEntryID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}

func (t *freshbooksTools) CreateJournalEntry(ctx context.Context, req *mcp.CallToolRequest, in CreateJournalEntryInput) (*mcp.CallToolResult, any, error) {
	details := make([]*freshbooks.JournalEntryDetail, 0, len(in.Details))
	for _, d := range in.Details {
		detail := &freshbooks.JournalEntryDetail{
			SubAccountID: d.SubAccountID,
			DebitAmount:  toMoney(d.DebitAmount, in.CurrencyCode),
			CreditAmount: toMoney(d.CreditAmount, in.CurrencyCode),
		}
		if d.Description != "" {
			desc := d.Description
			detail.Description = &desc
		}
		details = append(details, detail)
	}

	entry, err := t.client.JournalEntries.Create(ctx, &freshbooks.JournalEntryParams{
		Name:            in.Name,
		Description:     in.Description,
		UserEnteredDate: in.UserEnteredDate,
		CurrencyCode:    in.CurrencyCode,
		Details:         details,
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(entry)
}
