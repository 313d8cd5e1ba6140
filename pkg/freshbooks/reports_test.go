package freshbooks

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_ProfitLoss(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/reports/accounting/profitloss")).
		Run(capture(&captured)).
		Return(`{"result": {"profitloss": {"start_date": "2024-01-01", "end_date": "2024-03-31", "net_profit": {"amount": "1200.00", "code": "USD"}}}}`, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	report, err := client.Reports.ProfitLoss(context.Background(), start, end)

	require.NoError(t, err)
	assert.Contains(t, report, "profitloss")
	assert.Equal(t, "2024-01-01", captured.Query.Get("start_date"))
	assert.Equal(t, "2024-03-31", captured.Query.Get("end_date"))
}

func TestReportService_NestedReportKey(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/accounting/account/abc123/reports/accounting/aging")).
		Return(`{"report": {"currency_code": "USD", "totals": {"0-30": "100.00"}}}`, nil)

	report, err := client.Reports.Aging(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "USD", report["currency_code"])
	assert.Equal(t, map[string]interface{}{"0-30": "100.00"}, report["totals"])
}

func TestReportService_RejectsInvertedRange(t *testing.T) {
	client, mockTransport := newTestClient()

	start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := client.Reports.TaxSummary(context.Background(), start, end)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Reports.Expenses(context.Background(), time.Time{}, end)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}
