package main

import (
	"context"
	"sort"
	"testing"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerInitialization verifies that the server can initialize without panicking
// This catches jsonschema tag errors and tool registration issues
func TestServerInitialization(t *testing.T) {
	client := &freshbooks.Client{}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Server initialization panicked: %v", r)
		}
	}()

	newServer(client, nil)

	t.Log("✓ Server initialized successfully without panicking")
}

func TestServerListsEveryTool(t *testing.T) {
	cs := connect(t, &freshbooks.Client{})

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	sort.Strings(names)

	expected := []string{
		// clients
		"freshbooks_list_clients", "freshbooks_get_client", "freshbooks_create_client",
		"freshbooks_update_client", "freshbooks_delete_client", "freshbooks_search_clients",
		// invoices
		"freshbooks_list_invoices", "freshbooks_get_invoice", "freshbooks_create_invoice",
		"freshbooks_update_invoice", "freshbooks_delete_invoice", "freshbooks_send_invoice",
		"freshbooks_mark_invoice_paid", "freshbooks_get_invoice_share_link",
		"freshbooks_add_invoice_line", "freshbooks_search_invoices",
		// estimates
		"freshbooks_list_estimates", "freshbooks_get_estimate", "freshbooks_create_estimate",
		"freshbooks_update_estimate", "freshbooks_delete_estimate", "freshbooks_send_estimate",
		"freshbooks_accept_estimate", "freshbooks_add_estimate_line",
		// expenses
		"freshbooks_list_expenses", "freshbooks_get_expense", "freshbooks_create_expense",
		"freshbooks_update_expense", "freshbooks_delete_expense",
		"freshbooks_list_expense_categories", "freshbooks_search_expenses",
		// payments
		"freshbooks_list_payments", "freshbooks_get_payment", "freshbooks_create_payment",
		"freshbooks_update_payment", "freshbooks_delete_payment",
		// projects and time tracking
		"freshbooks_list_projects", "freshbooks_get_project", "freshbooks_create_project",
		"freshbooks_update_project", "freshbooks_delete_project", "freshbooks_mark_project_complete",
		"freshbooks_list_time_entries", "freshbooks_get_time_entry", "freshbooks_create_time_entry",
		"freshbooks_update_time_entry", "freshbooks_delete_time_entry",
		"freshbooks_start_timer", "freshbooks_stop_timer",
		// taxes, items, staff
		"freshbooks_list_taxes", "freshbooks_get_tax", "freshbooks_create_tax",
		"freshbooks_update_tax", "freshbooks_delete_tax",
		"freshbooks_list_items", "freshbooks_get_item", "freshbooks_create_item",
		"freshbooks_update_item", "freshbooks_delete_item",
		"freshbooks_list_staff", "freshbooks_get_staff_member",
		// bills and vendors
		"freshbooks_list_bills", "freshbooks_get_bill", "freshbooks_create_bill",
		"freshbooks_update_bill", "freshbooks_delete_bill",
		"freshbooks_get_bill_payments", "freshbooks_create_bill_payment",
		"freshbooks_list_vendors", "freshbooks_get_vendor", "freshbooks_create_vendor",
		"freshbooks_update_vendor", "freshbooks_delete_vendor",
		// accounting
		"freshbooks_list_accounts", "freshbooks_get_account",
		"freshbooks_list_journal_entries", "freshbooks_get_journal_entry", "freshbooks_create_journal_entry",
		"freshbooks_list_retainers", "freshbooks_get_retainer", "freshbooks_create_retainer",
		"freshbooks_update_retainer", "freshbooks_delete_retainer",
		"freshbooks_list_credit_notes", "freshbooks_get_credit_note", "freshbooks_create_credit_note",
		"freshbooks_update_credit_note", "freshbooks_delete_credit_note",
		// reports
		"freshbooks_profit_loss_report", "freshbooks_tax_summary_report",
		"freshbooks_aging_report", "freshbooks_expense_report",
		// recurring
		"freshbooks_list_recurring_profiles", "freshbooks_get_recurring_profile",
		"freshbooks_create_recurring_profile", "freshbooks_update_recurring_profile",
		"freshbooks_delete_recurring_profile",
		// identity
		"freshbooks_get_current_user",
	}
	sort.Strings(expected)

	assert.Equal(t, expected, names)
	assert.Len(t, names, 98)
}

// connect wires a client session to a freshly registered server in memory
func connect(t *testing.T, client *freshbooks.Client) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := newServer(client, nil)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	c := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := c.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	return cs
}
