package main

import (
	"context"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CreditNoteIDInput struct {
	CreditNoteID int64 `json:"credit_note_id" jsonschema:"Credit note ID"`
}

type CreateCreditNoteInput struct {
	ClientID     int64       `json:"clientid" jsonschema:"Client ID"`
	CreateDate   string      `json:"create_date,omitempty" jsonschema:"Credit note date (YYYY-MM-DD)"`
	CurrencyCode string      `json:"currency_code,omitempty" jsonschema:"Currency code (default: USD)"`
	CreditType   string      `json:"credit_type,omitempty" jsonschema:"Credit type (e.g. prepayment, goodwill)"`
	Notes        string      `json:"notes,omitempty" jsonschema:"Credit note notes"`
	Lines        []LineInput `json:"lines,omitempty" jsonschema:"Credit note line items"`
}

type UpdateCreditNoteInput struct {
	CreditNoteID int64       `json:"credit_note_id" jsonschema:"Credit note ID to update"`
	Notes        string      `json:"notes,omitempty" jsonschema:"Credit note notes"`
	Lines        []LineInput `json:"lines,omitempty" jsonschema:"Credit note line items; replaces the existing lines"`
}

func (t *freshbooksTools) registerCreditNoteTools(server *mcp.Server) {
	addTool(server, "freshbooks_list_credit_notes", "List credit notes with pagination", t.ListCreditNotes)
	addTool(server, "freshbooks_get_credit_note", "Get details of a specific credit note by ID", t.GetCreditNote)
	addTool(server, "freshbooks_create_credit_note", "Create a new credit note", t.CreateCreditNote)
	addTool(server, "freshbooks_update_credit_note", "Update an existing credit note", t.UpdateCreditNote)
	addTool(server, "freshbooks_delete_credit_note", "Delete a credit note", t.DeleteCreditNote)
}

func (t *freshbooksTools) ListCreditNotes(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	page, err := t.client.CreditNotes.List(ctx, in.options())
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(page)
}

func (t *freshbooksTools) GetCreditNote(ctx context.Context, req *mcp.CallToolRequest, in CreditNoteIDInput) (*mcp.CallToolResult, any, error) {
	note, err := t.client.CreditNotes.Get(ctx, in.CreditNoteID)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(note)
}

func (t *freshbooksTools) CreateCreditNote(ctx context.Context, req *mcp.CallToolRequest, in CreateCreditNoteInput) (*mcp.CallToolResult, any, error) {
	note, err := t.client.CreditNotes.Create(ctx, &freshbooks.CreditNoteParams{
		ClientID:     in.ClientID,
		CreateDate:   in.CreateDate,
		CurrencyCode: in.CurrencyCode,
		CreditType:   in.CreditType,
		Notes:        in.Notes,
		Lines:        toLines(in.Lines, in.CurrencyCode),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(note)
}

func (t *freshbooksTools) UpdateCreditNote(ctx context.Context, req *mcp.CallToolRequest, in UpdateCreditNoteInput) (*mcp.CallToolResult, any, error) {
	note, err := t.client.CreditNotes.Update(ctx, in.CreditNoteID, &freshbooks.CreditNoteParams{
		Notes: in.Notes,
		Lines: toLines(in.Lines, ""),
	})
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(note)
}

func (t *freshbooksTools) DeleteCreditNote(ctx context.Context, req *mcp.CallToolRequest, in CreditNoteIDInput) (*mcp.CallToolResult, any, error) {
	if err := t.client.CreditNotes.Delete(ctx, in.CreditNoteID); err != nil {
		return t.fail(req, err)
	}
	return t.message("Credit note %d deleted successfully", in.CreditNoteID)
}
