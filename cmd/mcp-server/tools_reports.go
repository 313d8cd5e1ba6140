package main

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ReportRangeInput struct {
	StartDate string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date" jsonschema:"End date (YYYY-MM-DD)"`
}

func (in *ReportRangeInput) dates() (time.Time, time.Time, error) {
	start, err := parseDay("start_date", in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDay("end_date", in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (t *freshbooksTools) registerReportTools(server *mcp.Server) {
	addTool(server, "freshbooks_profit_loss_report", "Get the profit and loss report for a date range", t.ProfitLossReport)
	addTool(server, "freshbooks_tax_summary_report", "Get the tax summary report for a date range", t.TaxSummaryReport)
	addTool(server, "freshbooks_aging_report", "Get the accounts receivable aging report", t.AgingReport)
	addTool(server, "freshbooks_expense_report", "Get the expense report for a date range", t.ExpenseReport)
}

func (t *freshbooksTools) ProfitLossReport(ctx context.Context, req *mcp.CallToolRequest, in ReportRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := in.dates()
	if err != nil {
		return t.fail(req, err)
	}
	report, err := t.client.Reports.ProfitLoss(ctx, start, end)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(report)
}

func (t *freshbooksTools) TaxSummaryReport(ctx context.Context, req *mcp.CallToolRequest, in ReportRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := in.dates()
	if err != nil {
		return t.fail(req, err)
	}
	report, err := t.client.Reports.TaxSummary(ctx, start, end)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(report)
}

func (t *freshbooksTools) AgingReport(ctx context.Context, req *mcp.CallToolRequest, in NoInput) (*mcp.CallToolResult, any, error) {
	report, err := t.client.Reports.Aging(ctx)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(report)
}

func (t *freshbooksTools) ExpenseReport(ctx context.Context, req *mcp.CallToolRequest, in ReportRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := in.dates()
	if err != nil {
		return t.fail(req, err)
	}
	report, err := t.client.Reports.Expenses(ctx, start, end)
	if err != nil {
		return t.fail(req, err)
	}
	return t.ok(report)
}
