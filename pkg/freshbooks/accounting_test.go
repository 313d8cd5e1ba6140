package freshbooks

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_Get(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/users/clients/10")).
		Return(`{"result": {"client": {"id": 10, "fname": "Ada", "lname": "Lovelace", "email": "ada@example.com",
			"organization": "Analytical Ltd", "currency_code": "GBP", "vis_state": 0}}}`, nil)

	c, err := client.Clients.Get(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Ada", c.FirstName)
	assert.Equal(t, "Analytical Ltd", c.Organization)
	assert.Equal(t, "GBP", c.CurrencyCode)
	mockTransport.AssertExpectations(t)
}

func TestClientService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/users/clients")).
		Run(capture(&captured)).
		Return(`{"result": {"client": {"id": 11, "email": "grace@example.com"}}}`, nil)

	c, err := client.Clients.Create(context.Background(), &ClientParams{Email: "grace@example.com", FirstName: "Grace"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), c.ID)
	assert.Equal(t, map[string]interface{}{"email": "grace@example.com", "fname": "Grace"}, bodyOf(t, captured)["client"])
}

func TestClientService_CreateRequiresEmail(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.Clients.Create(context.Background(), &ClientParams{FirstName: "Nobody"})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestClientService_ListSearch(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/users/clients")).
		Run(capture(&captured)).
		Return(`{"result": {"clients": [], "page": 1, "pages": 0, "total": 0}}`, nil)

	page, err := client.Clients.List(context.Background(), &ListOptions{Filters: map[string]string{"email_like": "example"}})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, "example", captured.Query.Get("search[email_like]"))
}

func TestExpenseService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/expenses/expenses")).
		Run(capture(&captured)).
		Return(`{"result": {"expense": {"id": 4, "vendor": "Staples", "amount": {"amount": "12.50", "code": "USD"}, "date": "2024-03-01"}}}`, nil)

	params := &ExpenseParams{
		Amount:     &Money{Amount: "12.50"},
		Vendor:     "Staples",
		Date:       "2024-03-01",
		CategoryID: 3,
	}
	expense, err := client.Expenses.Create(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "Staples", expense.Vendor)
	assert.Empty(t, params.Amount.Code)

	body := bodyOf(t, captured)["expense"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"amount": "12.50", "code": "USD"}, body["amount"])
	assert.Equal(t, float64(3), body["categoryid"])
}

func TestExpenseService_UpdateKeepsCurrency(t *testing.T) {
	client, mockTransport := newTestClient()
	path := "/accounting/account/abc123/expenses/expenses/4"

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, path)).
		Return(`{"result": {"expense": {"id": 4, "amount": {"amount": "12.50", "code": "CAD"}}}}`, nil).Once()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPut, path)).
		Run(capture(&captured)).
		Return(`{"result": {"expense": {"id": 4, "amount": {"amount": "20.00", "code": "CAD"}}}}`, nil)

	params := &ExpenseParams{Amount: &Money{Amount: "20.00"}}
	_, err := client.Expenses.Update(context.Background(), 4, params)

	require.NoError(t, err)
	body := bodyOf(t, captured)["expense"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"amount": "20.00", "code": "CAD"}, body["amount"])
	assert.Empty(t, params.Amount.Code)
	mockTransport.AssertExpectations(t)
}

func TestExpenseService_UpdateWithoutAmountSkipsLookup(t *testing.T) {
	client, mockTransport := newTestClient()
	path := "/accounting/account/abc123/expenses/expenses/4"

	mockTransport.On("Do", mock.Anything, request(http.MethodPut, path)).
		Return(`{"result": {"expense": {"id": 4}}}`, nil)

	_, err := client.Expenses.Update(context.Background(), 4, &ExpenseParams{Notes: "lunch"})

	require.NoError(t, err)
	mockTransport.AssertNotCalled(t, "Do", mock.Anything, request(http.MethodGet, path))
}

func TestExpenseService_Categories(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/expenses/categories")).
		Return(`{"result": {"categories": [{"id": 1, "categoryid": 1, "category": "Office Supplies"}, {"id": 2, "categoryid": 2, "category": "Travel"}]}}`, nil)

	categories, err := client.Expenses.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Travel", categories[1].Category)
}

func TestPaymentService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/payments/payments")).
		Run(capture(&captured)).
		Return(`{"result": {"payment": {"id": 6, "invoiceid": 5, "amount": {"amount": "150.00", "code": "USD"}, "type": "Check"}}}`, nil)

	params := &PaymentParams{
		InvoiceID: 5,
		Amount:    &Money{Amount: "150.00"},
		Date:      "2024-03-10",
		Type:      "Check",
	}
	payment, err := client.Payments.Create(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, int64(5), payment.InvoiceID)
	assert.Empty(t, params.Amount.Code)
	body := bodyOf(t, captured)["payment"].(map[string]interface{})
	assert.Equal(t, "USD", body["amount"].(map[string]interface{})["code"])
}

func TestPaymentService_CreateValidation(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.Payments.Create(context.Background(), &PaymentParams{Amount: &Money{Amount: "1"}})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Payments.Create(context.Background(), &PaymentParams{InvoiceID: 5})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestItemService_UpdateKeepsCurrency(t *testing.T) {
	client, mockTransport := newTestClient()
	path := "/accounting/account/abc123/items/items/2"

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, path)).
		Return(`{"result": {"item": {"id": 2, "name": "Widget", "qty": 3, "unit_cost": {"amount": "9.99", "code": "EUR"}}}}`, nil)

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPut, path)).
		Run(capture(&captured)).
		Return(`{"result": {"item": {"id": 2, "name": "Widget"}}}`, nil)

	_, err := client.Items.Update(context.Background(), 2, &ItemParams{UnitCost: &Money{Amount: "10.50"}})

	require.NoError(t, err)
	body := bodyOf(t, captured)["item"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"amount": "10.50", "code": "EUR"}, body["unit_cost"])
}

func TestItemService_Get(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/items/items/2")).
		Return(`{"result": {"item": {"id": 2, "name": "Widget", "qty": 3, "inventory": "12", "sku": "W-1"}}}`, nil)

	item, err := client.Items.Get(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, Decimal("3"), item.Quantity)
	assert.Equal(t, Decimal("12"), item.Inventory)
	assert.Equal(t, "W-1", item.SKU)
}

func TestTaxService_List(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/taxes/taxes")).
		Return(`{"result": {"taxes": [{"id": 1, "name": "GST", "amount": "5"}, {"id": 2, "name": "PST", "amount": 7, "compound": true}]}}`, nil)

	taxes, err := client.Taxes.List(context.Background())

	require.NoError(t, err)
	require.Len(t, taxes, 2)
	assert.Equal(t, Decimal("7"), taxes[1].Amount)
	assert.True(t, taxes[1].Compound)
}

func TestTaxService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/taxes/taxes")).
		Run(capture(&captured)).
		Return(`{"result": {"tax": {"id": 3, "name": "VAT", "amount": "20"}}}`, nil)

	tax, err := client.Taxes.Create(context.Background(), &TaxParams{Name: "VAT", Amount: "20"})

	require.NoError(t, err)
	assert.Equal(t, "VAT", tax.Name)
	assert.Equal(t, map[string]interface{}{"name": "VAT", "amount": "20"}, bodyOf(t, captured)["tax"])

	_, err = client.Taxes.Create(context.Background(), &TaxParams{Amount: "20"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestAccountService_List(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/accounts/accounts")).
		Return(`{"accounts": [{"id": 1, "account_name": "Cash", "account_type": "asset",
			"sub_accounts": [{"id": 11, "account_name": "Petty Cash"}]}]}`, nil)

	accounts, err := client.Accounts.List(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cash", accounts[0].AccountName)
	require.Len(t, accounts[0].SubAccounts, 1)
	assert.Equal(t, "Petty Cash", accounts[0].SubAccounts[0].AccountName)
}

func TestCreditNoteService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/credit_notes/credit_notes")).
		Run(capture(&captured)).
		Return(`{"credit_note": {"id": 7, "clientid": 10, "credit_type": "goodwill"}}`, nil)

	note, err := client.CreditNotes.Create(context.Background(), &CreditNoteParams{
		ClientID:     10,
		CurrencyCode: "CAD",
		Lines:        []*Line{{Name: "Refund", Qty: "1", UnitCost: &Money{Amount: "25"}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "goodwill", note.CreditType)

	line := bodyOf(t, captured)["credit_note"].(map[string]interface{})["lines"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "CAD", line["unit_cost"].(map[string]interface{})["code"])

	_, err = client.CreditNotes.Create(context.Background(), &CreditNoteParams{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
