package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, out *bytes.Buffer) *Validator {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"id":1,"email":"owner@example.com","business_memberships":[{"id":3,"role":"owner"}]}}`))
	})
	mux.HandleFunc("/accounting/account/abc123/users/clients", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`{"response":{"result":{"clients":[{"id":1},{"id":2}],"page":1,"pages":4,"per_page":5,"total":17}}}`))
	})
	mux.HandleFunc("/accounting/account/abc123/invoices/invoices", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"response":{"errors":[{"message":"insufficient scope"}]}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := freshbooks.NewClient(&freshbooks.ClientOptions{
		BaseURL:     srv.URL,
		Token:       "test-token",
		AccountID:   "abc123",
		RateLimiter: freshbooks.NewIntervalLimiter(0),
	})
	require.NoError(t, err)

	return NewValidator(client, out, true)
}

func TestValidatorRun(t *testing.T) {
	var out bytes.Buffer
	v := newTestValidator(t, &out)

	report := v.Run(context.Background(), []string{"identity", "clients", "invoices", "nope"})

	assert.Equal(t, "abc123", report.AccountID)
	assert.Equal(t, 4, report.TotalTests)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 50.0, report.SuccessRate)

	require.Len(t, report.Results, 4)
	assert.Equal(t, "owner@example.com (1 businesses)", report.Results[0].Summary)
	assert.Equal(t, "2 of 17 (page 1/4)", report.Results[1].Summary)
	assert.False(t, report.Results[2].Passed)
	assert.Contains(t, report.Results[2].Error, "insufficient scope")
	assert.Equal(t, "unknown check: nope", report.Results[3].Error)

	assert.Contains(t, out.String(), "Checking clients...")
	assert.Contains(t, out.String(), "invoices failed")
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := &ValidationReport{
		TotalTests: 1,
		Passed:     1,
		Results:    []ValidationResult{{Check: "taxes", Passed: true, Summary: "2 taxes"}},
	}

	require.NoError(t, saveReport(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded ValidationReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "taxes", decoded.Results[0].Check)
	assert.Equal(t, "2 taxes", decoded.Results[0].Summary)
}

func TestPrintSummaryListsFailures(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, &ValidationReport{
		TotalTests: 2,
		Passed:     1,
		Failed:     1,
		Results: []ValidationResult{
			{Check: "clients", Passed: true},
			{Check: "accounts", Error: "boom"},
		},
	}, "validation_results/report.json")

	assert.Contains(t, out.String(), "Failed Checks:")
	assert.Contains(t, out.String(), "  - accounts: boom")
	assert.NotContains(t, out.String(), "  - clients")
	assert.Contains(t, out.String(), "Report saved to: validation_results/report.json")
}

func TestChecksCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"checks"})

	require.NoError(t, cmd.Execute())

	for _, name := range defaultCheckNames() {
		assert.Contains(t, out.String(), name)
	}
	assert.Len(t, defaultCheckNames(), 12)
}
