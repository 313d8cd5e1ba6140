package freshbooks

import (
	"context"
	"time"
)

// ClientService handles all client-related operations
type ClientService interface {
	// List retrieves one page of clients
	List(ctx context.Context, opts *ListOptions) (*Page[ClientAccount], error)

	// ListAll retrieves every page of clients
	ListAll(ctx context.Context, opts *ListOptions) ([]*ClientAccount, error)

	// Get retrieves a single client by ID
	Get(ctx context.Context, clientID int64) (*ClientAccount, error)

	// Create creates a new client
	Create(ctx context.Context, params *ClientParams) (*ClientAccount, error)

	// Update updates an existing client
	Update(ctx context.Context, clientID int64, params *ClientParams) (*ClientAccount, error)

	// Delete deletes a client
	Delete(ctx context.Context, clientID int64) error
}

// InvoiceService handles all invoice-related operations
type InvoiceService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Invoice], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]*Invoice, error)
	Get(ctx context.Context, invoiceID int64) (*Invoice, error)

	// Create creates a new invoice. CreateDate defaults to today and
	// DueOffsetDays to 30.
	Create(ctx context.Context, params *InvoiceParams) (*Invoice, error)

	Update(ctx context.Context, invoiceID int64, params *InvoiceParams) (*Invoice, error)
	Delete(ctx context.Context, invoiceID int64) error

	// Send emails the invoice. Without an email FreshBooks uses the client's address.
	Send(ctx context.Context, invoiceID int64, params *SendParams) error

	// MarkPaid sets the invoice status to paid
	MarkPaid(ctx context.Context, invoiceID int64) error

	// ShareLink returns the client-facing URL of the invoice
	ShareLink(ctx context.Context, invoiceID int64) (string, error)

	// AddLine appends a line to the existing lines of an invoice
	AddLine(ctx context.Context, invoiceID int64, line *Line) (*Invoice, error)
}

// EstimateService handles all estimate-related operations
type EstimateService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Estimate], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]*Estimate, error)
	Get(ctx context.Context, estimateID int64) (*Estimate, error)
	Create(ctx context.Context, params *EstimateParams) (*Estimate, error)
	Update(ctx context.Context, estimateID int64, params *EstimateParams) (*Estimate, error)
	Delete(ctx context.Context, estimateID int64) error
	Send(ctx context.Context, estimateID int64, params *SendParams) error

	// Accept marks the estimate as accepted by the client
	Accept(ctx context.Context, estimateID int64) error

	AddLine(ctx context.Context, estimateID int64, line *Line) (*Estimate, error)
}

// ExpenseService handles all expense-related operations
type ExpenseService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Expense], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]*Expense, error)
	Get(ctx context.Context, expenseID int64) (*Expense, error)
	Create(ctx context.Context, params *ExpenseParams) (*Expense, error)

	// Update updates an expense. An amount without a currency keeps the
	// currency of the stored expense.
	Update(ctx context.Context, expenseID int64, params *ExpenseParams) (*Expense, error)

	Delete(ctx context.Context, expenseID int64) error

	// Categories lists the expense categories of the account
	Categories(ctx context.Context) ([]*ExpenseCategory, error)
}

// PaymentService handles all payment-related operations
type PaymentService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Payment], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]*Payment, error)
	Get(ctx context.Context, paymentID int64) (*Payment, error)
	Create(ctx context.Context, params *PaymentParams) (*Payment, error)
	Update(ctx context.Context, paymentID int64, params *PaymentParams) (*Payment, error)
	Delete(ctx context.Context, paymentID int64) error
}

// ProjectService handles projects in the business scope
type ProjectService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Project], error)
	Get(ctx context.Context, projectID int64) (*Project, error)
	Create(ctx context.Context, params *ProjectParams) (*Project, error)
	Update(ctx context.Context, projectID int64, params *ProjectParams) (*Project, error)
	Delete(ctx context.Context, projectID int64) error
	MarkComplete(ctx context.Context, projectID int64) (*Project, error)
}

// TimeEntryService handles time tracking
type TimeEntryService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[TimeEntry], error)
	Get(ctx context.Context, timeEntryID int64) (*TimeEntry, error)
	Create(ctx context.Context, params *TimeEntryParams) (*TimeEntry, error)
	Update(ctx context.Context, timeEntryID int64, params *TimeEntryParams) (*TimeEntry, error)
	Delete(ctx context.Context, timeEntryID int64) error

	// StartTimer creates an unlogged entry starting now
	StartTimer(ctx context.Context, projectID int64, note string) (*TimeEntry, error)

	// StopTimer logs a running entry
	StopTimer(ctx context.Context, timeEntryID int64) (*TimeEntry, error)
}

// TaxService handles tax rates
type TaxService interface {
	List(ctx context.Context) ([]*Tax, error)
	Get(ctx context.Context, taxID int64) (*Tax, error)
	Create(ctx context.Context, params *TaxParams) (*Tax, error)
	Update(ctx context.Context, taxID int64, params *TaxParams) (*Tax, error)
	Delete(ctx context.Context, taxID int64) error
}

// ItemService handles saved items and services
type ItemService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Item], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]*Item, error)
	Get(ctx context.Context, itemID int64) (*Item, error)
	Create(ctx context.Context, params *ItemParams) (*Item, error)

	// Update updates an item. A unit cost without a currency keeps the
	// currency of the stored item.
	Update(ctx context.Context, itemID int64, params *ItemParams) (*Item, error)

	Delete(ctx context.Context, itemID int64) error
}

// StaffService reads team members
type StaffService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[StaffMember], error)
	Get(ctx context.Context, staffID int64) (*StaffMember, error)
}

// BillService handles vendor bills and their payments
type BillService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Bill], error)
	Get(ctx context.Context, billID int64) (*Bill, error)
	Create(ctx context.Context, params *BillParams) (*Bill, error)
	Update(ctx context.Context, billID int64, params *BillParams) (*Bill, error)
	Delete(ctx context.Context, billID int64) error

	// Payments returns the payments recorded against a bill
	Payments(ctx context.Context, billID int64) ([]*BillPayment, error)

	CreatePayment(ctx context.Context, billID int64, params *BillPaymentParams) (*BillPayment, error)
}

// VendorService handles bill vendors
type VendorService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Vendor], error)
	Get(ctx context.Context, vendorID int64) (*Vendor, error)
	Create(ctx context.Context, params *VendorParams) (*Vendor, error)
	Update(ctx context.Context, vendorID int64, params *VendorParams) (*Vendor, error)
	Delete(ctx context.Context, vendorID int64) error
}

// AccountService reads the chart of accounts
type AccountService interface {
	List(ctx context.Context) ([]*Account, error)
	Get(ctx context.Context, accountID int64) (*Account, error)
}

// JournalEntryService handles manual journal entries
type JournalEntryService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[JournalEntry], error)
	Get(ctx context.Context, journalEntryID int64) (*JournalEntry, error)
	Create(ctx context.Context, params *JournalEntryParams) (*JournalEntry, error)
}

// RetainerService handles client retainers
type RetainerService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Retainer], error)
	Get(ctx context.Context, retainerID int64) (*Retainer, error)
	Create(ctx context.Context, params *RetainerParams) (*Retainer, error)
	Update(ctx context.Context, retainerID int64, params *RetainerParams) (*Retainer, error)
	Delete(ctx context.Context, retainerID int64) error
}

// CreditNoteService handles credit notes
type CreditNoteService interface {
	List(ctx context.Context, opts *ListOptions) (*Page[CreditNote], error)
	Get(ctx context.Context, creditNoteID int64) (*CreditNote, error)
	Create(ctx context.Context, params *CreditNoteParams) (*CreditNote, error)
	Update(ctx context.Context, creditNoteID int64, params *CreditNoteParams) (*CreditNote, error)
	Delete(ctx context.Context, creditNoteID int64) error
}

// ReportService runs accounting reports
type ReportService interface {
	ProfitLoss(ctx context.Context, startDate, endDate time.Time) (Report, error)
	TaxSummary(ctx context.Context, startDate, endDate time.Time) (Report, error)

	// Aging reports accounts receivable aging as of today
	Aging(ctx context.Context) (Report, error)

	Expenses(ctx context.Context, startDate, endDate time.Time) (Report, error)
}

// RecurringService handles recurring invoice profiles
type RecurringService interface {
	// List retrieves recurring profiles, optionally for one client (clientID > 0)
	List(ctx context.Context, clientID int64, opts *ListOptions) (*Page[RecurringProfile], error)

	Get(ctx context.Context, recurringID int64) (*RecurringProfile, error)
	Create(ctx context.Context, params *RecurringParams) (*RecurringProfile, error)
	Update(ctx context.Context, recurringID int64, params *RecurringParams) (*RecurringProfile, error)

	// Delete hides the profile (vis_state 1); FreshBooks keeps the record
	Delete(ctx context.Context, recurringID int64) error
}

// IdentityService reads the authenticated user
type IdentityService interface {
	Me(ctx context.Context) (*Identity, error)
}
