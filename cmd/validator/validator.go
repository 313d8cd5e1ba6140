package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
)

// ValidationResult represents the result of a single check
type ValidationResult struct {
	Check    string        `json:"check"`
	Passed   bool          `json:"passed"`
	Summary  string        `json:"summary,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ValidationReport represents the full validation report
type ValidationReport struct {
	Timestamp   time.Time          `json:"timestamp"`
	AccountID   string             `json:"account_id"`
	TotalTests  int                `json:"total_tests"`
	Passed      int                `json:"passed"`
	Failed      int                `json:"failed"`
	SuccessRate float64            `json:"success_rate"`
	Results     []ValidationResult `json:"results"`
}

// check is a read-only probe of one API area. It returns a short summary
// of what it saw.
type check struct {
	Name        string
	Description string
	Run         func(ctx context.Context, c *freshbooks.Client) (string, error)
}

var firstPage = &freshbooks.ListOptions{Page: 1, PerPage: 5}

var checks = []check{
	{"identity", "Fetch the authenticated user", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		me, err := c.Identity.Me(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%d businesses)", me.Email, len(me.BusinessMemberships)), nil
	}},
	{"clients", "List the first page of clients", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Clients.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"invoices", "List the first page of invoices", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Invoices.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"estimates", "List the first page of estimates", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Estimates.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"expenses", "List the first page of expenses", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Expenses.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"payments", "List the first page of payments", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Payments.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"items", "List the first page of items", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Items.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"taxes", "List configured taxes", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		taxes, err := c.Taxes.List(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d taxes", len(taxes)), nil
	}},
	{"projects", "List the first page of projects", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.Projects.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"time_entries", "List the first page of time entries", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		page, err := c.TimeEntries.List(ctx, firstPage)
		return pageSummary(page, err)
	}},
	{"accounts", "List the chart of accounts", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		accounts, err := c.Accounts.List(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d accounts", len(accounts)), nil
	}},
	{"aging_report", "Fetch the accounts receivable aging report", func(ctx context.Context, c *freshbooks.Client) (string, error) {
		report, err := c.Reports.Aging(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d report fields", len(report)), nil
	}},
}

func pageSummary[T any](page *freshbooks.Page[T], err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d of %d (page %d/%d)", len(page.Items), page.Total, page.Page, page.Pages), nil
}

func defaultCheckNames() []string {
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}
	return names
}

func findCheck(name string) (check, bool) {
	for _, c := range checks {
		if c.Name == name {
			return c, true
		}
	}
	return check{}, false
}

// Validator handles the validation process
type Validator struct {
	client  *freshbooks.Client
	out     io.Writer
	verbose bool
}

// NewValidator creates a new validator
func NewValidator(client *freshbooks.Client, out io.Writer, verbose bool) *Validator {
	if out == nil {
		out = io.Discard
	}
	return &Validator{client: client, out: out, verbose: verbose}
}

// Run executes the named checks in order
func (v *Validator) Run(ctx context.Context, names []string) *ValidationReport {
	if ctx == nil {
		ctx = context.Background()
	}

	report := &ValidationReport{
		Timestamp: time.Now(),
		AccountID: v.client.AccountID(),
		Results:   make([]ValidationResult, 0, len(names)),
	}

	for _, name := range names {
		if v.verbose {
			fmt.Fprintf(v.out, "Checking %s...\n", name)
		}

		result := v.runCheck(ctx, name)
		report.Results = append(report.Results, result)

		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}

		if v.verbose && !result.Passed {
			fmt.Fprintf(v.out, "  %s failed: %s\n", name, result.Error)
		}
	}

	report.TotalTests = len(report.Results)
	if report.TotalTests > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.TotalTests) * 100
	}

	return report
}

func (v *Validator) runCheck(ctx context.Context, name string) ValidationResult {
	start := time.Now()
	result := ValidationResult{Check: name}

	c, ok := findCheck(name)
	if !ok {
		result.Error = fmt.Sprintf("unknown check: %s", name)
		return result
	}

	summary, err := c.Run(ctx, v.client)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Passed = true
	result.Summary = summary
	return result
}

func saveReport(report *ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(w io.Writer, report *ValidationReport, path string) {
	fmt.Fprintln(w, "\n=== Validation Report ===")
	fmt.Fprintf(w, "Account: %s\n", report.AccountID)
	fmt.Fprintf(w, "Total Checks: %d\n", report.TotalTests)
	fmt.Fprintf(w, "Passed: %d\n", report.Passed)
	fmt.Fprintf(w, "Failed: %d\n", report.Failed)
	fmt.Fprintf(w, "Success Rate: %.1f%%\n", report.SuccessRate)

	if report.Failed > 0 {
		fmt.Fprintln(w, "\nFailed Checks:")
		for _, result := range report.Results {
			if !result.Passed {
				fmt.Fprintf(w, "  - %s: %s\n", result.Check, result.Error)
			}
		}
	}

	fmt.Fprintf(w, "\nReport saved to: %s\n", path)
}
