package freshbooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal is a decimal number carried as a string. FreshBooks is not
// consistent about quoting these, so both forms are accepted on decode.
type Decimal string

// UnmarshalJSON implements json.Unmarshaler for Decimal
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unable to parse decimal: %s", data)
	}
	*d = Decimal(n.String())
	return nil
}

// String returns the decimal text
func (d Decimal) String() string {
	return string(d)
}

// Float64 parses the decimal
func (d Decimal) Float64() (float64, error) {
	if d == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(d), 64)
}

// DefaultCurrency is used when neither the caller nor the stored resource names one
const DefaultCurrency = "USD"

// Money is the FreshBooks amount object
type Money struct {
	Amount Decimal `json:"amount"`
	Code   string  `json:"code,omitempty"`
}

// NewMoney wraps a flat amount. The first non-empty code wins; USD otherwise.
func NewMoney(amount string, codes ...string) *Money {
	code := DefaultCurrency
	for _, c := range codes {
		if c != "" {
			code = c
			break
		}
	}
	return &Money{Amount: Decimal(amount), Code: code}
}

// withCode returns a copy of m, filling a missing code the way NewMoney does
func (m *Money) withCode(codes ...string) *Money {
	if m == nil {
		return nil
	}
	if m.Code != "" {
		cp := *m
		return &cp
	}
	return NewMoney(string(m.Amount), codes...)
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// Int64 returns a pointer to i
func Int64(i int64) *int64 {
	return &i
}

// Attachment is a receipt or document attached to an expense or bill
type Attachment struct {
	ID        int64  `json:"id"`
	JWT       string `json:"jwt,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// ========== Clients ==========

// ClientAccount is a FreshBooks client (customer) record
type ClientAccount struct {
	payload

	ID                     int64   `json:"id"`
	Organization           string  `json:"organization,omitempty"`
	FirstName              string  `json:"fname,omitempty"`
	LastName               string  `json:"lname,omitempty"`
	Email                  string  `json:"email,omitempty"`
	Username               string  `json:"username,omitempty"`
	HomePhone              *string `json:"home_phone,omitempty"`
	BusinessPhone          *string `json:"business_phone,omitempty"`
	MobilePhone            *string `json:"mobile_phone,omitempty"`
	Fax                    *string `json:"fax,omitempty"`
	CompanyIndustry        *string `json:"company_industry,omitempty"`
	CompanySize            *string `json:"company_size,omitempty"`
	VATName                *string `json:"vat_name,omitempty"`
	VATNumber              *string `json:"vat_number,omitempty"`
	ShippingStreet         string  `json:"s_street,omitempty"`
	ShippingStreet2        string  `json:"s_street2,omitempty"`
	ShippingCity           string  `json:"s_city,omitempty"`
	ShippingProvince       string  `json:"s_province,omitempty"`
	ShippingCode           string  `json:"s_code,omitempty"`
	ShippingCountry        string  `json:"s_country,omitempty"`
	Street                 string  `json:"p_street,omitempty"`
	Street2                string  `json:"p_street2,omitempty"`
	City                   string  `json:"p_city,omitempty"`
	Province               string  `json:"p_province,omitempty"`
	Code                   string  `json:"p_code,omitempty"`
	Country                string  `json:"p_country,omitempty"`
	CurrencyCode           string  `json:"currency_code,omitempty"`
	Language               string  `json:"language,omitempty"`
	Note                   *string `json:"note,omitempty"`
	PrefEmail              bool    `json:"pref_email"`
	PrefGmail              bool    `json:"pref_gmail"`
	AllowLateFees          bool    `json:"allow_late_fees"`
	AllowLateNotifications bool    `json:"allow_late_notifications"`
	Role                   string  `json:"role,omitempty"`
	VisState               int     `json:"vis_state"`
	Updated                string  `json:"updated,omitempty"`
}

// ClientParams creates or updates a client. Empty fields are not sent.
type ClientParams struct {
	FirstName        string `json:"fname,omitempty"`
	LastName         string `json:"lname,omitempty"`
	Email            string `json:"email,omitempty"`
	Organization     string `json:"organization,omitempty"`
	BusinessPhone    string `json:"business_phone,omitempty"`
	MobilePhone      string `json:"mobile_phone,omitempty"`
	HomePhone        string `json:"home_phone,omitempty"`
	Fax              string `json:"fax,omitempty"`
	CurrencyCode     string `json:"currency_code,omitempty"`
	Language         string `json:"language,omitempty"`
	Note             string `json:"note,omitempty"`
	VATName          string `json:"vat_name,omitempty"`
	VATNumber        string `json:"vat_number,omitempty"`
	ShippingStreet   string `json:"s_street,omitempty"`
	ShippingStreet2  string `json:"s_street2,omitempty"`
	ShippingCity     string `json:"s_city,omitempty"`
	ShippingProvince string `json:"s_province,omitempty"`
	ShippingCode     string `json:"s_code,omitempty"`
	ShippingCountry  string `json:"s_country,omitempty"`
	Street           string `json:"p_street,omitempty"`
	Street2          string `json:"p_street2,omitempty"`
	City             string `json:"p_city,omitempty"`
	Province         string `json:"p_province,omitempty"`
	Code             string `json:"p_code,omitempty"`
	Country          string `json:"p_country,omitempty"`
}

// ========== Invoices, estimates, credit notes ==========

// Line is an invoice, estimate, credit note or recurring profile line item
type Line struct {
	LineID      int64   `json:"lineid,omitempty"`
	Amount      *Money  `json:"amount,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Qty         Decimal `json:"qty,omitempty"`
	UnitCost    *Money  `json:"unit_cost,omitempty"`
	TaxName1    string  `json:"taxName1,omitempty"`
	TaxAmount1  Decimal `json:"taxAmount1,omitempty"`
	TaxName2    string  `json:"taxName2,omitempty"`
	TaxAmount2  Decimal `json:"taxAmount2,omitempty"`
	Type        int     `json:"type,omitempty"`
	ExpenseID   int64   `json:"expenseid,omitempty"`
}

// InvoicePresentation holds the invoice theme settings
type InvoicePresentation struct {
	ThemePrimaryColor string  `json:"theme_primary_color,omitempty"`
	ThemeLayout       string  `json:"theme_layout,omitempty"`
	ThemeFontName     string  `json:"theme_font_name,omitempty"`
	ImageLogoSrc      *string `json:"image_logo_src,omitempty"`
	ImageBannerSrc    *string `json:"image_banner_src,omitempty"`
}

// Invoice is a FreshBooks invoice
type Invoice struct {
	payload

	ID                  int64                `json:"id"`
	AccountID           string               `json:"accountid,omitempty"`
	InvoiceID           int64                `json:"invoiceid"`
	InvoiceNumber       string               `json:"invoice_number,omitempty"`
	CustomerID          int64                `json:"customerid"`
	CreateDate          Date                 `json:"create_date"`
	GenerationDate      *Date                `json:"generation_date,omitempty"`
	DiscountValue       Decimal              `json:"discount_value,omitempty"`
	DiscountDescription *string              `json:"discount_description,omitempty"`
	PONumber            *string              `json:"po_number,omitempty"`
	Template            string               `json:"template,omitempty"`
	CurrencyCode        string               `json:"currency_code,omitempty"`
	Language            string               `json:"language,omitempty"`
	Terms               *string              `json:"terms,omitempty"`
	Notes               *string              `json:"notes,omitempty"`
	Address             string               `json:"address,omitempty"`
	ReturnURI           *string              `json:"return_uri,omitempty"`
	DepositAmount       *Decimal             `json:"deposit_amount,omitempty"`
	DepositPercentage   *Decimal             `json:"deposit_percentage,omitempty"`
	DepositStatus       string               `json:"deposit_status,omitempty"`
	PaymentStatus       string               `json:"payment_status,omitempty"`
	AutoBill            bool                 `json:"auto_bill"`
	V3Status            string               `json:"v3_status,omitempty"`
	DatePaid            *Date                `json:"date_paid,omitempty"`
	EstimateID          int64                `json:"estimateid,omitempty"`
	BasecampID          int64                `json:"basecampid,omitempty"`
	SentID              int64                `json:"sentid,omitempty"`
	Status              int                  `json:"status"`
	Parent              int64                `json:"parent,omitempty"`
	FirstName           string               `json:"fname,omitempty"`
	LastName            string               `json:"lname,omitempty"`
	Organization        string               `json:"organization,omitempty"`
	Amount              *Money               `json:"amount,omitempty"`
	Outstanding         *Money               `json:"outstanding,omitempty"`
	Paid                *Money               `json:"paid,omitempty"`
	DueOffsetDays       int                  `json:"due_offset_days"`
	Lines               []*Line              `json:"lines,omitempty"`
	Presentation        *InvoicePresentation `json:"presentation,omitempty"`
}

// InvoiceParams creates or updates an invoice
type InvoiceParams struct {
	CustomerID          int64   `json:"customerid,omitempty"`
	CreateDate          string  `json:"create_date,omitempty"`
	DueOffsetDays       *int    `json:"due_offset_days,omitempty"`
	CurrencyCode        string  `json:"currency_code,omitempty"`
	Language            string  `json:"language,omitempty"`
	Notes               string  `json:"notes,omitempty"`
	Terms               string  `json:"terms,omitempty"`
	PONumber            string  `json:"po_number,omitempty"`
	DiscountValue       string  `json:"discount_value,omitempty"`
	DiscountDescription string  `json:"discount_description,omitempty"`
	V3Status            string  `json:"v3_status,omitempty"`
	Lines               []*Line `json:"lines,omitempty"`
}

// SendParams controls the email sent with an invoice or estimate
type SendParams struct {
	Email string `json:"email,omitempty"`
}

// Estimate is a FreshBooks estimate (quote)
type Estimate struct {
	payload

	ID                  int64   `json:"id"`
	AccountID           string  `json:"accountid,omitempty"`
	EstimateID          int64   `json:"estimateid"`
	EstimateNumber      string  `json:"estimate_number,omitempty"`
	CustomerID          int64   `json:"customerid"`
	Accepted            bool    `json:"accepted"`
	CreateDate          Date    `json:"create_date"`
	DiscountValue       Decimal `json:"discount_value,omitempty"`
	DiscountDescription *string `json:"discount_description,omitempty"`
	PONumber            *string `json:"po_number,omitempty"`
	Template            string  `json:"template,omitempty"`
	CurrencyCode        string  `json:"currency_code,omitempty"`
	Language            string  `json:"language,omitempty"`
	Terms               *string `json:"terms,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	Address             string  `json:"address,omitempty"`
	Status              int     `json:"status"`
	FirstName           string  `json:"fname,omitempty"`
	LastName            string  `json:"lname,omitempty"`
	Organization        string  `json:"organization,omitempty"`
	Amount              *Money  `json:"amount,omitempty"`
	Lines               []*Line `json:"lines,omitempty"`
	UIStatus            string  `json:"ui_status,omitempty"`
}

// EstimateParams creates or updates an estimate
type EstimateParams struct {
	CustomerID    int64   `json:"customerid,omitempty"`
	CreateDate    string  `json:"create_date,omitempty"`
	CurrencyCode  string  `json:"currency_code,omitempty"`
	Language      string  `json:"language,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Terms         string  `json:"terms,omitempty"`
	DiscountValue string  `json:"discount_value,omitempty"`
	Accepted      *bool   `json:"accepted,omitempty"`
	Lines         []*Line `json:"lines,omitempty"`
}

// CreditNote is a credit issued to a client
type CreditNote struct {
	payload

	ID                 int64   `json:"id"`
	AccountingSystemID string  `json:"accounting_systemid,omitempty"`
	ClientID           int64   `json:"clientid"`
	CreditID           int64   `json:"creditid,omitempty"`
	CreditNumber       string  `json:"credit_number,omitempty"`
	CreditType         string  `json:"credit_type,omitempty"`
	CurrencyCode       string  `json:"currency_code,omitempty"`
	Amount             *Money  `json:"amount,omitempty"`
	Balance            *Money  `json:"balance,omitempty"`
	CreateDate         Date    `json:"create_date"`
	Language           string  `json:"language,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	Terms              *string `json:"terms,omitempty"`
	Status             string  `json:"status,omitempty"`
	Lines              []*Line `json:"lines,omitempty"`
}

// CreditNoteParams creates or updates a credit note
type CreditNoteParams struct {
	ClientID     int64   `json:"clientid,omitempty"`
	CreateDate   string  `json:"create_date,omitempty"`
	CurrencyCode string  `json:"currency_code,omitempty"`
	CreditType   string  `json:"credit_type,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Lines        []*Line `json:"lines,omitempty"`
}

// RecurringProfile generates invoices on a schedule
type RecurringProfile struct {
	payload

	ID              int64   `json:"id"`
	RecurringID     int64   `json:"recurring_id,omitempty"`
	ClientID        int64   `json:"clientid"`
	Frequency       string  `json:"frequency,omitempty"`
	NumberRecurring int     `json:"numberRecurring"`
	CreateDate      Date    `json:"create_date"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
	Lines           []*Line `json:"lines,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Terms           string  `json:"terms,omitempty"`
	VisState        int     `json:"vis_state"`
}

// RecurringParams creates or updates a recurring profile
type RecurringParams struct {
	ClientID        int64   `json:"clientid,omitempty"`
	Frequency       string  `json:"frequency,omitempty"`
	NumberRecurring *int    `json:"numberRecurring,omitempty"`
	CreateDate      string  `json:"create_date,omitempty"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
	Lines           []*Line `json:"lines,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Terms           string  `json:"terms,omitempty"`
	VisState        *int    `json:"vis_state,omitempty"`
}

// ========== Expenses ==========

// Expense is a recorded business expense
type Expense struct {
	payload

	ID             int64       `json:"id"`
	AccountID      string      `json:"accountid,omitempty"`
	Amount         *Money      `json:"amount,omitempty"`
	Vendor         string      `json:"vendor,omitempty"`
	Date           Date        `json:"date"`
	CategoryID     int64       `json:"categoryid"`
	ClientID       int64       `json:"clientid,omitempty"`
	ProjectID      int64       `json:"projectid,omitempty"`
	StaffID        int64       `json:"staffid,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	TaxName1       string      `json:"taxName1,omitempty"`
	TaxAmount1     Decimal     `json:"taxAmount1,omitempty"`
	TaxName2       string      `json:"taxName2,omitempty"`
	TaxAmount2     Decimal     `json:"taxAmount2,omitempty"`
	Status         int         `json:"status"`
	IsCOGS         bool        `json:"is_cogs"`
	FromBulkImport bool        `json:"from_bulk_import"`
	Attachment     *Attachment `json:"attachment,omitempty"`
	MarkupPercent  Decimal     `json:"markup_percent,omitempty"`
	Updated        string      `json:"updated,omitempty"`
}

// ExpenseParams creates or updates an expense
type ExpenseParams struct {
	Amount        *Money `json:"amount,omitempty"`
	Vendor        string `json:"vendor,omitempty"`
	Date          string `json:"date,omitempty"`
	CategoryID    int64  `json:"categoryid,omitempty"`
	ClientID      int64  `json:"clientid,omitempty"`
	ProjectID     int64  `json:"projectid,omitempty"`
	Notes         string `json:"notes,omitempty"`
	MarkupPercent string `json:"markup_percent,omitempty"`
}

// ExpenseCategory classifies expenses
type ExpenseCategory struct {
	payload

	ID         int64  `json:"id"`
	Category   string `json:"category"`
	CategoryID int64  `json:"categoryid"`
	CreatedAt  string `json:"created_at,omitempty"`
	IsCOGS     bool   `json:"is_cogs"`
	IsEditable bool   `json:"is_editable"`
	ParentID   *int64 `json:"parentid,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	VisState   int    `json:"vis_state"`
}

// ========== Payments ==========

// Payment is a payment applied to an invoice
type Payment struct {
	payload

	ID            int64   `json:"id"`
	AccountID     string  `json:"accountid,omitempty"`
	Amount        *Money  `json:"amount,omitempty"`
	BulkPaymentID int64   `json:"bulk_paymentid,omitempty"`
	ClientID      int64   `json:"clientid,omitempty"`
	CreditID      *int64  `json:"creditid,omitempty"`
	Date          Date    `json:"date"`
	FromCredit    bool    `json:"from_credit"`
	Gateway       *string `json:"gateway,omitempty"`
	InvoiceID     int64   `json:"invoiceid"`
	LogID         int64   `json:"logid,omitempty"`
	Note          *string `json:"note,omitempty"`
	OrderID       *string `json:"orderid,omitempty"`
	OverpaymentID int64   `json:"overpaymentid,omitempty"`
	TransactionID *string `json:"transactionid,omitempty"`
	Type          string  `json:"type,omitempty"`
	Updated       string  `json:"updated,omitempty"`
	VisState      int     `json:"vis_state"`
}

// PaymentParams creates or updates a payment
type PaymentParams struct {
	InvoiceID int64  `json:"invoiceid,omitempty"`
	Amount    *Money `json:"amount,omitempty"`
	Date      string `json:"date,omitempty"`
	Type      string `json:"type,omitempty"`
	Note      string `json:"note,omitempty"`
	Gateway   string `json:"gateway,omitempty"`
}

// ========== Projects & time tracking ==========

// ProjectServiceType is a billable service attached to a project
type ProjectServiceType struct {
	BusinessID int64  `json:"business_id"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Billable   bool   `json:"billable"`
	VisState   int    `json:"vis_state"`
}

// Project is a FreshBooks project
type Project struct {
	payload

	ID             int64                 `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	DueDate        *Date                 `json:"due_date,omitempty"`
	ClientID       int64                 `json:"client_id"`
	Internal       bool                  `json:"internal"`
	Budget         *float64              `json:"budget,omitempty"`
	FixedPrice     *Decimal              `json:"fixed_price,omitempty"`
	Rate           *Decimal              `json:"rate,omitempty"`
	BillingMethod  string                `json:"billing_method,omitempty"`
	ProjectType    string                `json:"project_type,omitempty"`
	Active         bool                  `json:"active"`
	Complete       bool                  `json:"complete"`
	Sample         bool                  `json:"sample"`
	CreatedAt      string                `json:"created_at,omitempty"`
	UpdatedAt      string                `json:"updated_at,omitempty"`
	LoggedDuration int64                 `json:"logged_duration"`
	Services       []*ProjectServiceType `json:"services,omitempty"`
	BilledAmount   Decimal               `json:"billed_amount,omitempty"`
	BilledStatus   string                `json:"billed_status,omitempty"`
	RetainerID     *int64                `json:"retainer_id,omitempty"`
}

// ProjectParams creates or updates a project
type ProjectParams struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	ClientID      int64    `json:"client_id,omitempty"`
	DueDate       string   `json:"due_date,omitempty"`
	BillingMethod string   `json:"billing_method,omitempty"`
	ProjectType   string   `json:"project_type,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	FixedPrice    *float64 `json:"fixed_price,omitempty"`
	Rate          *float64 `json:"rate,omitempty"`
	Internal      *bool    `json:"internal,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	Complete      *bool    `json:"complete,omitempty"`
}

// Timer is the running clock on a time entry
type Timer struct {
	ID        int64  `json:"id"`
	IsRunning bool   `json:"is_running"`
	StartedAt string `json:"started_at,omitempty"`
	Duration  int64  `json:"duration"`
}

// TimeEntry is tracked time, in seconds
type TimeEntry struct {
	payload

	ID             int64   `json:"id"`
	IdentityID     int64   `json:"identity_id,omitempty"`
	IsLogged       bool    `json:"is_logged"`
	StartedAt      string  `json:"started_at,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
	ClientID       int64   `json:"client_id,omitempty"`
	ProjectID      int64   `json:"project_id,omitempty"`
	PendingClient  *string `json:"pending_client,omitempty"`
	PendingProject *string `json:"pending_project,omitempty"`
	PendingTask    *string `json:"pending_task,omitempty"`
	TaskID         *int64  `json:"task_id,omitempty"`
	ServiceID      *int64  `json:"service_id,omitempty"`
	Note           *string `json:"note,omitempty"`
	Active         bool    `json:"active"`
	Billable       bool    `json:"billable"`
	Billed         bool    `json:"billed"`
	Internal       bool    `json:"internal"`
	RetainerID     *int64  `json:"retainer_id,omitempty"`
	Duration       int64   `json:"duration"`
	Timer          *Timer  `json:"timer,omitempty"`
}

// TimeEntryParams creates or updates a time entry
type TimeEntryParams struct {
	ProjectID int64  `json:"project_id,omitempty"`
	ClientID  int64  `json:"client_id,omitempty"`
	Duration  *int64 `json:"duration,omitempty"`
	StartedAt string `json:"started_at,omitempty"`
	Note      string `json:"note,omitempty"`
	IsLogged  *bool  `json:"is_logged,omitempty"`
	Billable  *bool  `json:"billable,omitempty"`
	Internal  *bool  `json:"internal,omitempty"`
}

// StaffMember is a team member of the business
type StaffMember struct {
	payload

	ID         int64  `json:"id"`
	IdentityID int64  `json:"identity_id,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Company    string `json:"company,omitempty"`
	BusinessID int64  `json:"business_id,omitempty"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	Rate       *Money `json:"rate,omitempty"`
}

// Retainer is a recurring fee agreement with a client
type Retainer struct {
	payload

	ID         int64   `json:"id"`
	Active     bool    `json:"active"`
	BusinessID int64   `json:"business_id,omitempty"`
	ClientID   int64   `json:"client_id"`
	CreatedAt  string  `json:"created_at,omitempty"`
	EndDate    *Date   `json:"end_date,omitempty"`
	Fee        Decimal `json:"fee"`
	Period     string  `json:"period,omitempty"`
	StartDate  Date    `json:"start_date"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

// RetainerParams creates or updates a retainer
type RetainerParams struct {
	ClientID  int64  `json:"client_id,omitempty"`
	Fee       string `json:"fee,omitempty"`
	Period    string `json:"period,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

// ========== Taxes & items ==========

// Tax is a named tax rate
type Tax struct {
	payload

	ID                 int64   `json:"id"`
	TaxID              int64   `json:"taxid,omitempty"`
	AccountingSystemID string  `json:"accounting_systemid,omitempty"`
	Name               string  `json:"name"`
	Number             *string `json:"number,omitempty"`
	Amount             Decimal `json:"amount"`
	Compound           bool    `json:"compound"`
	Updated            string  `json:"updated,omitempty"`
}

// TaxParams creates or updates a tax
type TaxParams struct {
	Name     string `json:"name,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Number   string `json:"number,omitempty"`
	Compound *bool  `json:"compound,omitempty"`
}

// Item is a saved product or service
type Item struct {
	payload

	ID          int64   `json:"id"`
	AccountID   string  `json:"accountid,omitempty"`
	ItemID      int64   `json:"itemid,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    Decimal `json:"qty,omitempty"`
	Inventory   Decimal `json:"inventory,omitempty"`
	UnitCost    *Money  `json:"unit_cost,omitempty"`
	Tax1        int64   `json:"tax1,omitempty"`
	Tax2        int64   `json:"tax2,omitempty"`
	Updated     string  `json:"updated,omitempty"`
	VisState    int     `json:"vis_state"`
	SKU         string  `json:"sku,omitempty"`
}

// ItemParams creates or updates an item
type ItemParams struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    string `json:"qty,omitempty"`
	Inventory   string `json:"inventory,omitempty"`
	UnitCost    *Money `json:"unit_cost,omitempty"`
	SKU         string `json:"sku,omitempty"`
}

// ========== Bills & vendors ==========

// BillLine is a line on a vendor bill
type BillLine struct {
	ID              int64    `json:"id,omitempty"`
	Amount          *Money   `json:"amount,omitempty"`
	CategoryID      int64    `json:"category_id,omitempty"`
	Description     string   `json:"description,omitempty"`
	ListIndex       int      `json:"list_index,omitempty"`
	Quantity        Decimal  `json:"quantity,omitempty"`
	TaxAmount1      *Decimal `json:"tax_amount1,omitempty"`
	TaxAmount2      *Decimal `json:"tax_amount2,omitempty"`
	TaxAuthorityID1 *int64   `json:"tax_authorityid1,omitempty"`
	TaxAuthorityID2 *int64   `json:"tax_authorityid2,omitempty"`
	TaxName1        *string  `json:"tax_name1,omitempty"`
	TaxName2        *string  `json:"tax_name2,omitempty"`
	TaxPercent1     *Decimal `json:"tax_percent1,omitempty"`
	TaxPercent2     *Decimal `json:"tax_percent2,omitempty"`
	TotalAmount     *Money   `json:"total_amount,omitempty"`
	UnitCost        *Money   `json:"unit_cost,omitempty"`
}

// BillPayment is a payment made against a bill
type BillPayment struct {
	payload

	ID                 int64   `json:"id"`
	Amount             *Money  `json:"amount,omitempty"`
	BillID             int64   `json:"bill_id"`
	MatchedWithExpense bool    `json:"matched_with_expense"`
	Note               *string `json:"note,omitempty"`
	PaidDate           Date    `json:"paid_date"`
	PaymentType        string  `json:"payment_type,omitempty"`
	VisState           int     `json:"vis_state"`
}

// BillPaymentParams records a bill payment
type BillPaymentParams struct {
	Amount      *Money `json:"amount"`
	PaidDate    string `json:"paid_date"`
	PaymentType string `json:"payment_type"`
	Note        string `json:"note,omitempty"`
}

// Bill is a payable owed to a vendor
type Bill struct {
	payload

	ID                 int64          `json:"id"`
	Amount             *Money         `json:"amount,omitempty"`
	Attachment         *Attachment    `json:"attachment,omitempty"`
	BillNumber         *string        `json:"bill_number,omitempty"`
	BillPayments       []*BillPayment `json:"bill_payments,omitempty"`
	CreatedAt          string         `json:"created_at,omitempty"`
	CurrencyCode       string         `json:"currency_code,omitempty"`
	DueDate            *Date          `json:"due_date,omitempty"`
	DueOffsetDays      int            `json:"due_offset_days"`
	IssueDate          Date           `json:"issue_date"`
	Language           string         `json:"language,omitempty"`
	Lines              []*BillLine    `json:"lines,omitempty"`
	Outstanding        *Money         `json:"outstanding,omitempty"`
	OverallCategory    string         `json:"overall_category,omitempty"`
	OverallDescription string         `json:"overall_description,omitempty"`
	Paid               *Money         `json:"paid,omitempty"`
	Status             string         `json:"status,omitempty"`
	TaxAmount          *Money         `json:"tax_amount,omitempty"`
	TotalAmount        *Money         `json:"total_amount,omitempty"`
	UpdatedAt          string         `json:"updated_at,omitempty"`
	VendorID           int64          `json:"vendor_id"`
	VisState           int            `json:"vis_state"`
}

// BillParams creates or updates a bill
type BillParams struct {
	VendorID     int64       `json:"vendor_id,omitempty"`
	BillNumber   string      `json:"bill_number,omitempty"`
	IssueDate    string      `json:"issue_date,omitempty"`
	DueDate      string      `json:"due_date,omitempty"`
	CurrencyCode string      `json:"currency_code,omitempty"`
	Lines        []*BillLine `json:"lines,omitempty"`
}

// TaxDefault links a vendor to a default tax
type TaxDefault struct {
	SystemID int64 `json:"systemid"`
	TaxID    int64 `json:"taxid"`
}

// Vendor is a bill vendor
type Vendor struct {
	payload

	ID                      int64         `json:"id"`
	AccountNumber           *string       `json:"account_number,omitempty"`
	City                    string        `json:"city,omitempty"`
	Country                 string        `json:"country,omitempty"`
	CurrencyCode            string        `json:"currency_code,omitempty"`
	Is1099                  bool          `json:"is_1099"`
	Language                string        `json:"language,omitempty"`
	OutstandingBalance      []*Money      `json:"outstanding_balance,omitempty"`
	OverdueBalance          []*Money      `json:"overdue_balance,omitempty"`
	Phone                   *string       `json:"phone,omitempty"`
	PostalCode              string        `json:"postal_code,omitempty"`
	PrimaryContactEmail     string        `json:"primary_contact_email,omitempty"`
	PrimaryContactFirstName string        `json:"primary_contact_first_name,omitempty"`
	PrimaryContactLastName  string        `json:"primary_contact_last_name,omitempty"`
	Province                string        `json:"province,omitempty"`
	Street                  string        `json:"street,omitempty"`
	Street2                 *string       `json:"street2,omitempty"`
	TaxDefaults             []*TaxDefault `json:"tax_defaults,omitempty"`
	VendorName              string        `json:"vendor_name"`
	VisState                int           `json:"vis_state"`
	Website                 *string       `json:"website,omitempty"`
}

// VendorParams creates or updates a vendor
type VendorParams struct {
	VendorName              string `json:"vendor_name,omitempty"`
	PrimaryContactFirstName string `json:"primary_contact_first_name,omitempty"`
	PrimaryContactLastName  string `json:"primary_contact_last_name,omitempty"`
	PrimaryContactEmail     string `json:"primary_contact_email,omitempty"`
	Phone                   string `json:"phone,omitempty"`
	Website                 string `json:"website,omitempty"`
	Street                  string `json:"street,omitempty"`
	City                    string `json:"city,omitempty"`
	Province                string `json:"province,omitempty"`
	PostalCode              string `json:"postal_code,omitempty"`
	Country                 string `json:"country,omitempty"`
	CurrencyCode            string `json:"currency_code,omitempty"`
	Is1099                  *bool  `json:"is_1099,omitempty"`
}

// ========== Accounting ==========

// Account is a chart-of-accounts entry
type Account struct {
	payload

	ID            int64      `json:"id"`
	AccountName   string     `json:"account_name"`
	AccountNumber string     `json:"account_number,omitempty"`
	AccountType   string     `json:"account_type,omitempty"`
	Balance       *Money     `json:"balance,omitempty"`
	CurrencyCode  string     `json:"currency_code,omitempty"`
	Custom        bool       `json:"custom"`
	ParentID      *int64     `json:"parentid,omitempty"`
	SubAccounts   []*Account `json:"sub_accounts,omitempty"`
}

// JournalEntryDetail is one debit or credit of a journal entry
type JournalEntryDetail struct {
	ID              int64   `json:"id,omitempty"`
	CreditAmount    *Money  `json:"credit_amount,omitempty"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
	DebitAmount     *Money  `json:"debit_amount,omitempty"`
	Description     *string `json:"description,omitempty"`
	Name            string  `json:"name,omitempty"`
	SubAccountID    int64   `json:"sub_accountid"`
	UserEnteredDate string  `json:"user_entered_date,omitempty"`
}

// JournalEntry is a manual ledger adjustment
type JournalEntry struct {
	payload

	ID              int64                 `json:"id"`
	CreatedAt       string                `json:"created_at,omitempty"`
	CurrencyCode    string                `json:"currency_code,omitempty"`
	Description     string                `json:"description,omitempty"`
	Details         []*JournalEntryDetail `json:"details,omitempty"`
	Name            string                `json:"name"`
	UserEnteredDate Date                  `json:"user_entered_date"`
}

// JournalEntryParams creates a journal entry
type JournalEntryParams struct {
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	UserEnteredDate string                `json:"user_entered_date"`
	CurrencyCode    string                `json:"currency_code,omitempty"`
	Details         []*JournalEntryDetail `json:"details"`
}

// ========== Identity ==========

// Business is a business the identity belongs to
type Business struct {
	ID           int64  `json:"id"`
	BusinessUUID string `json:"business_uuid,omitempty"`
	Name         string `json:"name"`
	AccountID    string `json:"account_id,omitempty"`
}

// BusinessMembership ties an identity to a business with a role
type BusinessMembership struct {
	ID       int64     `json:"id"`
	Role     string    `json:"role,omitempty"`
	Business *Business `json:"business,omitempty"`
}

// Identity is the authenticated FreshBooks user
type Identity struct {
	payload

	ID                  int64                 `json:"id"`
	IdentityID          int64                 `json:"identity_id,omitempty"`
	FirstName           string                `json:"first_name,omitempty"`
	LastName            string                `json:"last_name,omitempty"`
	Email               string                `json:"email,omitempty"`
	Language            string                `json:"language,omitempty"`
	BusinessMemberships []*BusinessMembership `json:"business_memberships,omitempty"`
}

// ========== Reports ==========

// Report is a FreshBooks accounting report. Report layouts differ by
// type and region, so the body is kept as decoded JSON.
type Report map[string]interface{}
