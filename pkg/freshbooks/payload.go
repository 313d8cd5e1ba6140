package freshbooks

import (
	"bytes"
	"encoding/json"
)

// payload keeps the document a resource was decoded from. FreshBooks returns
// more fields than the typed structs declare, and re-encoding the typed form
// would drop them and emit zero values the API never sent.
type payload struct {
	raw json.RawMessage
}

func (p *payload) keep(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		p.raw = append(json.RawMessage(nil), trimmed...)
	}
	return nil
}

func (p payload) emit(v interface{}) ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(v)
}

// Raw returns the document exactly as FreshBooks sent it, or nil for values
// built locally.
func (p payload) Raw() json.RawMessage {
	return p.raw
}

func (c *ClientAccount) UnmarshalJSON(data []byte) error {
	type plain ClientAccount
	return c.payload.keep(data, (*plain)(c))
}

func (c ClientAccount) MarshalJSON() ([]byte, error) {
	type plain ClientAccount
	return c.payload.emit(plain(c))
}

func (i *Invoice) UnmarshalJSON(data []byte) error {
	type plain Invoice
	return i.payload.keep(data, (*plain)(i))
}

func (i Invoice) MarshalJSON() ([]byte, error) {
	type plain Invoice
	return i.payload.emit(plain(i))
}

func (e *Estimate) UnmarshalJSON(data []byte) error {
	type plain Estimate
	return e.payload.keep(data, (*plain)(e))
}

func (e Estimate) MarshalJSON() ([]byte, error) {
	type plain Estimate
	return e.payload.emit(plain(e))
}

func (c *CreditNote) UnmarshalJSON(data []byte) error {
	type plain CreditNote
	return c.payload.keep(data, (*plain)(c))
}

func (c CreditNote) MarshalJSON() ([]byte, error) {
	type plain CreditNote
	return c.payload.emit(plain(c))
}

func (r *RecurringProfile) UnmarshalJSON(data []byte) error {
	type plain RecurringProfile
	return r.payload.keep(data, (*plain)(r))
}

func (r RecurringProfile) MarshalJSON() ([]byte, error) {
	type plain RecurringProfile
	return r.payload.emit(plain(r))
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	type plain Expense
	return e.payload.keep(data, (*plain)(e))
}

func (e Expense) MarshalJSON() ([]byte, error) {
	type plain Expense
	return e.payload.emit(plain(e))
}

func (e *ExpenseCategory) UnmarshalJSON(data []byte) error {
	type plain ExpenseCategory
	return e.payload.keep(data, (*plain)(e))
}

func (e ExpenseCategory) MarshalJSON() ([]byte, error) {
	type plain ExpenseCategory
	return e.payload.emit(plain(e))
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	type plain Payment
	return p.payload.keep(data, (*plain)(p))
}

func (p Payment) MarshalJSON() ([]byte, error) {
	type plain Payment
	return p.payload.emit(plain(p))
}

func (p *Project) UnmarshalJSON(data []byte) error {
	type plain Project
	return p.payload.keep(data, (*plain)(p))
}

func (p Project) MarshalJSON() ([]byte, error) {
	type plain Project
	return p.payload.emit(plain(p))
}

func (t *TimeEntry) UnmarshalJSON(data []byte) error {
	type plain TimeEntry
	return t.payload.keep(data, (*plain)(t))
}

func (t TimeEntry) MarshalJSON() ([]byte, error) {
	type plain TimeEntry
	return t.payload.emit(plain(t))
}

func (s *StaffMember) UnmarshalJSON(data []byte) error {
	type plain StaffMember
	return s.payload.keep(data, (*plain)(s))
}

func (s StaffMember) MarshalJSON() ([]byte, error) {
	type plain StaffMember
	return s.payload.emit(plain(s))
}

func (r *Retainer) UnmarshalJSON(data []byte) error {
	type plain Retainer
	return r.payload.keep(data, (*plain)(r))
}

func (r Retainer) MarshalJSON() ([]byte, error) {
	type plain Retainer
	return r.payload.emit(plain(r))
}

func (t *Tax) UnmarshalJSON(data []byte) error {
	type plain Tax
	return t.payload.keep(data, (*plain)(t))
}

func (t Tax) MarshalJSON() ([]byte, error) {
	type plain Tax
	return t.payload.emit(plain(t))
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	return i.payload.keep(data, (*plain)(i))
}

func (i Item) MarshalJSON() ([]byte, error) {
	type plain Item
	return i.payload.emit(plain(i))
}

func (b *Bill) UnmarshalJSON(data []byte) error {
	type plain Bill
	return b.payload.keep(data, (*plain)(b))
}

func (b Bill) MarshalJSON() ([]byte, error) {
	type plain Bill
	return b.payload.emit(plain(b))
}

func (b *BillPayment) UnmarshalJSON(data []byte) error {
	type plain BillPayment
	return b.payload.keep(data, (*plain)(b))
}

func (b BillPayment) MarshalJSON() ([]byte, error) {
	type plain BillPayment
	return b.payload.emit(plain(b))
}

func (v *Vendor) UnmarshalJSON(data []byte) error {
	type plain Vendor
	return v.payload.keep(data, (*plain)(v))
}

func (v Vendor) MarshalJSON() ([]byte, error) {
	type plain Vendor
	return v.payload.emit(plain(v))
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	return a.payload.keep(data, (*plain)(a))
}

func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return a.payload.emit(plain(a))
}

func (j *JournalEntry) UnmarshalJSON(data []byte) error {
	type plain JournalEntry
	return j.payload.keep(data, (*plain)(j))
}

func (j JournalEntry) MarshalJSON() ([]byte, error) {
	type plain JournalEntry
	return j.payload.emit(plain(j))
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	type plain Identity
	return i.payload.keep(data, (*plain)(i))
}

func (i Identity) MarshalJSON() ([]byte, error) {
	type plain Identity
	return i.payload.emit(plain(i))
}
