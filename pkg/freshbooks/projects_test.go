package freshbooks

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_List(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/projects/business/abc123/projects")).
		Return(`{
			"projects": [
				{"id": 1, "title": "Website", "client_id": 10, "active": true, "budget": 5000, "fixed_price": "4500.00", "billing_method": "project_rate"},
				{"id": 2, "title": "Audit", "client_id": 11, "complete": true, "rate": 120}
			],
			"meta": {"page": 1, "pages": 1, "per_page": 15, "total": 2}
		}`, nil)

	page, err := client.Projects.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 15, page.PerPage)
	assert.Equal(t, "Website", page.Items[0].Title)
	require.NotNil(t, page.Items[0].Budget)
	assert.Equal(t, 5000.0, *page.Items[0].Budget)
	assert.Equal(t, Decimal("4500.00"), *page.Items[0].FixedPrice)
	assert.Equal(t, Decimal("120"), *page.Items[1].Rate)
	assert.True(t, page.Items[1].Complete)
}

func TestProjectService_CreateWrapsBody(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/projects/business/abc123/project")).
		Run(capture(&captured)).
		Return(`{"project": {"id": 3, "title": "Migration", "client_id": 10}}`, nil)

	rate := 95.0
	project, err := client.Projects.Create(context.Background(), &ProjectParams{
		Title:    "Migration",
		ClientID: 10,
		Rate:     &rate,
		Internal: Bool(false),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), project.ID)
	assert.Equal(t, map[string]interface{}{
		"title":     "Migration",
		"client_id": float64(10),
		"rate":      95.0,
		"internal":  false,
	}, bodyOf(t, captured)["project"])
}

func TestProjectService_CreateRequiresTitle(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.Projects.Create(context.Background(), &ProjectParams{ClientID: 10})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestProjectService_MarkComplete(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPut, "/projects/business/abc123/project/3")).
		Run(capture(&captured)).
		Return(`{"project": {"id": 3, "complete": true}}`, nil)

	project, err := client.Projects.MarkComplete(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, project.Complete)
	assert.Equal(t, map[string]interface{}{"complete": true}, bodyOf(t, captured)["project"])
}

func TestTimeEntryService_StartTimer(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/timetracking/business/abc123/time_entries")).
		Run(capture(&captured)).
		Return(`{"time_entry": {"id": 50, "project_id": 3, "is_logged": false, "started_at": "2024-03-15T10:30:00Z",
			"timer": {"id": 9, "is_running": true}}}`, nil)

	entry, err := client.TimeEntries.StartTimer(context.Background(), 3, "pairing")

	require.NoError(t, err)
	assert.False(t, entry.IsLogged)
	require.NotNil(t, entry.Timer)
	assert.True(t, entry.Timer.IsRunning)

	assert.Equal(t, map[string]interface{}{
		"project_id": float64(3),
		"is_logged":  false,
		"started_at": "2024-03-15T10:30:00Z",
		"note":       "pairing",
	}, bodyOf(t, captured)["time_entry"])
}

func TestTimeEntryService_StopTimer(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPut, "/timetracking/business/abc123/time_entries/50")).
		Run(capture(&captured)).
		Return(`{"time_entry": {"id": 50, "is_logged": true, "duration": 3600}}`, nil)

	entry, err := client.TimeEntries.StopTimer(context.Background(), 50)

	require.NoError(t, err)
	assert.Equal(t, int64(3600), entry.Duration)
	assert.Equal(t, map[string]interface{}{"is_logged": true}, bodyOf(t, captured)["time_entry"])
}

func TestTimeEntryService_CreateRequiresProject(t *testing.T) {
	client, _ := newTestClient()

	_, err := client.TimeEntries.Create(context.Background(), &TimeEntryParams{Note: "orphan"})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestStaffService_List(t *testing.T) {
	client, mockTransport := newTestClient()

	mockTransport.On("Do", mock.Anything, request(http.MethodGet, "/projects/business/abc123/staff")).
		Return(`{"staff_members": [{"id": 1, "first_name": "Lin", "email": "lin@example.com", "active": true}], "meta": {"page": 1, "pages": 1, "total": 1}}`, nil)

	page, err := client.Staff.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Lin", page.Items[0].FirstName)
}

func TestRetainerService_Create(t *testing.T) {
	client, mockTransport := newTestClient()

	var captured *Request
	mockTransport.On("Do", mock.Anything, request(http.MethodPost, "/projects/business/abc123/retainers")).
		Run(capture(&captured)).
		Return(`{"retainer": {"id": 4, "client_id": 10, "fee": "1000.00", "period": "monthly", "start_date": "2024-04-01"}}`, nil)

	retainer, err := client.Retainers.Create(context.Background(), &RetainerParams{
		ClientID:  10,
		Fee:       "1000.00",
		Period:    "monthly",
		StartDate: "2024-04-01",
	})

	require.NoError(t, err)
	assert.Equal(t, Decimal("1000.00"), retainer.Fee)
	assert.Equal(t, "2024-04-01", retainer.StartDate.String())
	assert.Equal(t, "monthly", bodyOf(t, captured)["retainer"].(map[string]interface{})["period"])
}
