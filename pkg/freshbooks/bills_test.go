package freshbooks

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const billPath = "/accounting/account/abc123/bills/bills"

func TestBillService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, billPath)).
		Run(capture(&captured)).
		Return(`{"bill": {"id": 20, "vendor_id": 7, "issue_date": "2024-03-01", "status": "unpaid"}}`, nil)

	bill, err := client.Bills.Create(context.Background(), &BillParams{
		VendorID:  7,
		IssueDate: "2024-03-01",
		Lines: []*BillLine{
			{Description: "Paper", Quantity: "10", UnitCost: &Money{Amount: "4.50"}, CategoryID: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "unpaid", bill.Status)

	line := bodyOf(t, captured)["bill"].(map[string]interface{})["lines"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"amount": "4.50", "code": "USD"}, line["unit_cost"])
	assert.Equal(t, float64(3), line["category_id"])
}

func TestBillService_UpdateUsesStoredCurrency(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, billPath+"/20")).
		Return(`{"bill": {"id": 20, "currency_code": "CAD"}}`, nil).Once()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPut, billPath+"/20")).
		Run(capture(&captured)).
		Return(`{"bill": {"id": 20}}`, nil)

	params := &BillParams{Lines: []*BillLine{{Description: "Toner", Quantity: "1", UnitCost: &Money{Amount: "60"}}}}
	_, err := client.Bills.Update(context.Background(), 20, params)

	require.NoError(t, err)
	line := bodyOf(t, captured)["bill"].(map[string]interface{})["lines"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"amount": "60", "code": "CAD"}, line["unit_cost"])
	assert.Empty(t, params.Lines[0].UnitCost.Code)
}

func TestBillService_CreateRequiresVendor(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.Bills.Create(context.Background(), &BillParams{IssueDate: "2024-03-01"})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestBillService_Payments(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, billPath+"/20")).
		Return(`{"bill": {"id": 20, "bill_payments": [
			{"id": 1, "bill_id": 20, "amount": {"amount": "10.00", "code": "USD"}, "paid_date": "2024-03-05", "payment_type": "Check"}
		]}}`, nil)

	payments, err := client.Bills.Payments(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Check", payments[0].PaymentType)
	assert.Equal(t, "2024-03-05", payments[0].PaidDate.String())
}

func TestBillService_PaymentsEmpty(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, billPath+"/21")).
		Return(`{"bill": {"id": 21}}`, nil)

	payments, err := client.Bills.Payments(context.Background(), 21)

	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestBillService_CreatePayment(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, billPath+"/20/bill_payments")).
		Run(capture(&captured)).
		Return(`{"bill_payment": {"id": 2, "bill_id": 20, "amount": {"amount": "25.00", "code": "USD"}}}`, nil)

	payment, err := client.Bills.CreatePayment(context.Background(), 20, &BillPaymentParams{
		Amount:      &Money{Amount: "25.00"},
		PaidDate:    "2024-03-06",
		PaymentType: "Credit",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20), payment.BillID)
	assert.Equal(t, map[string]interface{}{
		"amount":       map[string]interface{}{"amount": "25.00", "code": "USD"},
		"paid_date":    "2024-03-06",
		"payment_type": "Credit",
	}, bodyOf(t, captured)["bill_payment"])
}

func TestVendorService_List(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/bill_vendors/bill_vendors")).
		Return(`{"bill_vendors": [{"id": 7, "vendor_name": "Office Depot", "is_1099": false}], "page": 1, "pages": 1, "total": 1}`, nil)

	page, err := client.Vendors.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Office Depot", page.Items[0].VendorName)
	assert.Equal(t, 1, page.Total)
}

func TestVendorService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/bill_vendors/bill_vendors")).
		Run(capture(&captured)).
		Return(`{"bill_vendor": {"id": 8, "vendor_name": "Acme"}}`, nil)

	_, err := client.Vendors.Create(context.Background(), &VendorParams{VendorName: "Acme", PrimaryContactEmail: "ap@acme.test", Is1099: Bool(true)})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"vendor_name":           "Acme",
		"primary_contact_email": "ap@acme.test",
		"is_1099":               true,
	}, bodyOf(t, captured)["bill_vendor"])
}

func TestJournalEntryService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/accounting/account/abc123/journal_entries/journal_entries")).
		Run(capture(&captured)).
		Return(`{"journal_entry": {"id": 12, "name": "Depreciation", "user_entered_date": "2024-03-31"}}`, nil)

	params := &JournalEntryParams{
		Name:            "Depreciation",
		UserEnteredDate: "2024-03-31",
		CurrencyCode:    "CAD",
		Details: []*JournalEntryDetail{
			{SubAccountID: 100, DebitAmount: &Money{Amount: "250.00"}},
			{SubAccountID: 200, CreditAmount: &Money{Amount: "250.00"}},
		},
	}
	entry, err := client.JournalEntries.Create(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-31", entry.UserEnteredDate.String())
	assert.Empty(t, params.Details[0].DebitAmount.Code)

	details := bodyOf(t, captured)["journal_entry"].(map[string]interface{})["details"].([]interface{})
	require.Len(t, details, 2)
	assert.Equal(t, map[string]interface{}{"amount": "250.00", "code": "CAD"}, details[0].(map[string]interface{})["debit_amount"])
	assert.Equal(t, map[string]interface{}{"amount": "250.00", "code": "CAD"}, details[1].(map[string]interface{})["credit_amount"])
}

func TestJournalEntryService_CreateRequiresDetails(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.JournalEntries.Create(context.Background(), &JournalEntryParams{Name: "Empty", UserEnteredDate: "2024-03-31"})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}
