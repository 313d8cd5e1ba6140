package freshbooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/transport"
	internalTypes "github.com/eshaffer321/freshbooks-go/internal/types"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the default FreshBooks API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// DefaultRequestInterval is the minimum spacing between requests
	DefaultRequestInterval = internalTypes.DefaultRequestInterval

	// ShareBaseURL is where client-facing invoice links point
	ShareBaseURL = "https://my.freshbooks.com/#/invoice/"
)

// Client is the main FreshBooks API client
type Client struct {
	// Service interfaces
	Clients        ClientService
	Invoices       InvoiceService
	Estimates      EstimateService
	Expenses       ExpenseService
	Payments       PaymentService
	Projects       ProjectService
	TimeEntries    TimeEntryService
	Taxes          TaxService
	Items          ItemService
	Staff          StaffService
	Bills          BillService
	Vendors        VendorService
	Accounts       AccountService
	JournalEntries JournalEntryService
	Retainers      RetainerService
	CreditNotes    CreditNoteService
	Reports        ReportService
	Recurring      RecurringService
	Identity       IdentityService

	// Internal fields
	baseURL    string
	accountID  string
	businessID string
	transport  Transport
	options    *ClientOptions
	limiter    RateLimiter
	now        func() time.Time
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token is the OAuth bearer token
	Token string

	// AccountID scopes accounting endpoints
	AccountID string

	// BusinessID scopes project and time tracking endpoints. Defaults to AccountID.
	BusinessID string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior. Nil disables retries.
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting. Defaults to one request per DefaultRequestInterval.
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger = internalTypes.Logger

// Request describes a single REST call
type Request = internalTypes.Request

// Transport handles HTTP communication
type Transport interface {
	Do(ctx context.Context, req *Request) (json.RawMessage, error)
	SetAuth(token string)
}

// NewClient creates a new FreshBooks client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if opts.Token == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "access token is required")
	}
	if opts.AccountID == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "account ID is required")
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		// Use provided options if available, otherwise create new ones
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		// Override DSN if provided separately
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		// Set default environment if not provided
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		// Log error but don't fail client creation
		if err := sentry.Init(sentryOpts); err != nil && opts.Logger != nil {
			opts.Logger.Error("Failed to initialize Sentry", "error", err)
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.BusinessID == "" {
		opts.BusinessID = opts.AccountID
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	if opts.RateLimiter == nil {
		opts.RateLimiter = NewIntervalLimiter(DefaultRequestInterval)
	}

	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})
	trans.SetAuth(opts.Token)

	c := &Client{
		baseURL:    opts.BaseURL,
		accountID:  opts.AccountID,
		businessID: opts.BusinessID,
		transport:  trans,
		options:    opts,
		limiter:    opts.RateLimiter,
	}

	c.initServices()

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	if c.options == nil {
		c.options = &ClientOptions{}
	}
	if c.businessID == "" {
		c.businessID = c.accountID
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.Clients = &clientService{client: c}
	c.Invoices = &invoiceService{client: c}
	c.Estimates = &estimateService{client: c}
	c.Expenses = &expenseService{client: c}
	c.Payments = &paymentService{client: c}
	c.Projects = &projectService{client: c}
	c.TimeEntries = &timeEntryService{client: c}
	c.Taxes = &taxService{client: c}
	c.Items = &itemService{client: c}
	c.Staff = &staffService{client: c}
	c.Bills = &billService{client: c}
	c.Vendors = &vendorService{client: c}
	c.Accounts = &accountService{client: c}
	c.JournalEntries = &journalEntryService{client: c}
	c.Retainers = &retainerService{client: c}
	c.CreditNotes = &creditNoteService{client: c}
	c.Reports = &reportService{client: c}
	c.Recurring = &recurringService{client: c}
	c.Identity = &identityService{client: c}
}

// AccountID returns the accounting account the client is scoped to
func (c *Client) AccountID() string {
	return c.accountID
}

// BusinessID returns the business the client is scoped to
func (c *Client) BusinessID() string {
	return c.businessID
}

// SetToken replaces the bearer token, e.g. after an external refresh
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
}

// accountingPath builds /accounting/account/{accountID}/{suffix}
func (c *Client) accountingPath(format string, args ...interface{}) string {
	return "/accounting/account/" + url.PathEscape(c.accountID) + "/" + fmt.Sprintf(format, args...)
}

// projectsPath builds /projects/business/{businessID}/{suffix}
func (c *Client) projectsPath(format string, args ...interface{}) string {
	return "/projects/business/" + url.PathEscape(c.businessID) + "/" + fmt.Sprintf(format, args...)
}

// timetrackingPath builds /timetracking/business/{businessID}/{suffix}
func (c *Client) timetrackingPath(format string, args ...interface{}) string {
	return "/timetracking/business/" + url.PathEscape(c.businessID) + "/" + fmt.Sprintf(format, args...)
}

// do executes a REST call and returns the payload without its envelope
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	// Rate limiting
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			// Capture rate limiter errors in Sentry
			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.CaptureException(err)
			} else {
				sentry.CaptureException(err)
			}
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	raw, err := c.transport.Do(ctx, &Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil {
		capture := func(hub *sentry.Hub) {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("freshbooks.endpoint", method+" "+path)
				extra := map[string]interface{}{
					"method":   method,
					"path":     path,
					"duration": duration.String(),
				}
				var apiErr *Error
				if errors.As(err, &apiErr) {
					extra["status"] = apiErr.StatusCode
					extra["code"] = apiErr.Code
					extra["request_id"] = apiErr.RequestID
				}
				scope.SetContext("freshbooks", extra)
				hub.CaptureException(err)
			})
		}
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			capture(hub)
		} else {
			capture(sentry.CurrentHub())
		}
	}

	return raw, err
}

// get is a shorthand for a GET without a body
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	// Flush Sentry events with a 2 second timeout
	sentry.Flush(2 * time.Second)
}
