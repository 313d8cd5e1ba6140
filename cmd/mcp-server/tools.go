package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// freshbooksTools holds the FreshBooks client and implements all tool handlers
type freshbooksTools struct {
	client *freshbooks.Client
	logger *slog.Logger
}

func newFreshbooksTools(client *freshbooks.Client, logger *slog.Logger) *freshbooksTools {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &freshbooksTools{client: client, logger: logger}
}

// ListInput is shared by the paginated list tools
type ListInput struct {
	Search  string `json:"search,omitempty" jsonschema:"Search term to filter results"`
	Page    int    `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"Number of results per page (default: 30)"`
}

// ListAllInput adds the option to walk every page
type ListAllInput struct {
	Search  string `json:"search,omitempty" jsonschema:"Search term to filter results"`
	Page    int    `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"Number of results per page (default: 30)"`
	All     bool   `json:"all,omitempty" jsonschema:"Fetch every page and return all results"`
}

// SearchInput is shared by the search tools
type SearchInput struct {
	Query string `json:"query" jsonschema:"Search query"`
}

// NoInput is used by tools without arguments
type NoInput struct{}

// MoneyInput is an amount with an optional currency
type MoneyInput struct {
	Amount string `json:"amount" jsonschema:"Amount as a decimal string"`
	Code   string `json:"code,omitempty" jsonschema:"Currency code (e.g. USD or CAD)"`
}

// LineInput is an invoice, estimate or credit note line
type LineInput struct {
	Name        string      `json:"name" jsonschema:"Line item name"`
	Description string      `json:"description,omitempty" jsonschema:"Line item description"`
	Qty         string      `json:"qty,omitempty" jsonschema:"Quantity (default: 1)"`
	UnitCost    *MoneyInput `json:"unit_cost,omitempty" jsonschema:"Unit cost"`
	TaxName1    string      `json:"taxName1,omitempty" jsonschema:"First tax name"`
	TaxAmount1  string      `json:"taxAmount1,omitempty" jsonschema:"First tax amount (percent)"`
}

func (in *ListInput) options() *freshbooks.ListOptions {
	return &freshbooks.ListOptions{Search: in.Search, Page: in.Page, PerPage: in.PerPage}
}

func (in *ListAllInput) options() *freshbooks.ListOptions {
	return &freshbooks.ListOptions{Search: in.Search, Page: in.Page, PerPage: in.PerPage}
}

// toMoney leaves the code empty when neither the input nor currency sets one,
// so the service can fill it from the stored document.
func toMoney(in *MoneyInput, currency string) *freshbooks.Money {
	if in == nil {
		return nil
	}
	code := in.Code
	if code == "" {
		code = currency
	}
	return &freshbooks.Money{Amount: freshbooks.Decimal(in.Amount), Code: code}
}

func toLines(in []LineInput, currency string) []*freshbooks.Line {
	if in == nil {
		return nil
	}
	lines := make([]*freshbooks.Line, 0, len(in))
	for _, l := range in {
		line := &freshbooks.Line{
			Name:        l.Name,
			Description: l.Description,
			Qty:         freshbooks.Decimal(l.Qty),
			UnitCost:    toMoney(l.UnitCost, currency),
			TaxName1:    l.TaxName1,
			TaxAmount1:  freshbooks.Decimal(l.TaxAmount1),
		}
		if line.Qty == "" {
			line.Qty = "1"
		}
		lines = append(lines, line)
	}
	return lines
}

// allPages presents accumulated items in the shape of a single page
func allPages[T any](items []*T) *freshbooks.Page[T] {
	return &freshbooks.Page[T]{Items: items, Page: 1, Pages: 1, PerPage: len(items), Total: len(items)}
}

func parseDay(field, value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format (expected YYYY-MM-DD): %w", field, err)
	}
	return d, nil
}

// ok renders v as indented JSON text
func (t *freshbooksTools) ok(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return t.fail(nil, fmt.Errorf("failed to encode result: %w", err))
	}
	return text(string(data)), nil, nil
}

// message returns a confirmation sentence
func (t *freshbooksTools) message(format string, args ...any) (*mcp.CallToolResult, any, error) {
	return text(fmt.Sprintf(format, args...)), nil, nil
}

// fail reports err to the model as tool output; the session stays up
func (t *freshbooksTools) fail(req *mcp.CallToolRequest, err error) (*mcp.CallToolResult, any, error) {
	t.logger.Error("tool call failed", "tool", toolName(req), "error", err)

	res := text("Error: " + err.Error())
	res.IsError = true
	return res, nil, nil
}

func text(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s}},
	}
}

func toolName(req *mcp.CallToolRequest) string {
	if req == nil || req.Params == nil {
		return ""
	}
	return req.Params.Name
}

// registerTools registers every FreshBooks tool on the server
func registerTools(server *mcp.Server, client *freshbooks.Client, logger *slog.Logger) {
	tools := newFreshbooksTools(client, logger)

	tools.registerClientTools(server)
	tools.registerInvoiceTools(server)
	tools.registerEstimateTools(server)
	tools.registerExpenseTools(server)
	tools.registerPaymentTools(server)
	tools.registerProjectTools(server)
	tools.registerTimeEntryTools(server)
	tools.registerTaxTools(server)
	tools.registerItemTools(server)
	tools.registerStaffTools(server)
	tools.registerBillTools(server)
	tools.registerVendorTools(server)
	tools.registerAccountTools(server)
	tools.registerJournalEntryTools(server)
	tools.registerRetainerTools(server)
	tools.registerCreditNoteTools(server)
	tools.registerReportTools(server)
	tools.registerRecurringTools(server)
	tools.registerIdentityTools(server)
}

// handler is the shape every tool method has
type handler[In any] func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error)

func addTool[In any](server *mcp.Server, name, description string, h handler[In]) {
	mcp.AddTool(server, &mcp.Tool{Name: name, Description: description}, mcp.ToolHandlerFor[In, any](h))
}
