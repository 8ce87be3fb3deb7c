package biashara

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Blob is the raw text of a persisted value, as read from storage.
//
// It is never trusted: the only way to turn a Blob into a State is Decode.
type Blob struct {
	data    []byte
	present bool
}

// NoBlob is the Blob of a key that holds no value.
var NoBlob = Blob{}

// NewBlob wraps persisted bytes.
func NewBlob(data []byte) Blob { return Blob{data: data, present: true} }

// Absent reports whether no value was stored.
func (b Blob) Absent() bool { return !b.present }

// Bytes returns the raw text.
func (b Blob) Bytes() []byte { return b.data }

// DecodeError reports a persisted value that is not a readable state.
type DecodeError struct {
	Key string // storage key, empty when decoding a file or a stream
	Err error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("cannot decode state: %v", e.Err)
	}
	return fmt.Sprintf("cannot decode state stored under %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// rawState is the persisted shape of a State, as written by any version of
// the application. Fields added over time are pointers so that their
// absence can be told apart from a zero value.
type rawState struct {
	Inventory []InventoryItem `json:"inventory"`
	Sales     []SaleRecord    `json:"sales"`
	Expenses  []Expense       `json:"expenses"`
	Debts     []rawDebt       `json:"debts"`
	Loans     []rawLoan       `json:"loans"`
	Equity    []Equity        `json:"equity"`
}

type rawDebt struct {
	ID         string     `json:"id"`
	Creditor   string     `json:"creditor"`
	Amount     Money      `json:"amount"`
	PaidAmount *Money     `json:"paidAmount"` // introduced with partial payments
	DueDate    string     `json:"dueDate"`
	Status     DebtStatus `json:"status"`
	Date       string     `json:"date"`
}

type rawLoan struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	Principal    Money      `json:"principal"`
	PaidAmount   *Money     `json:"paidAmount"` // introduced with partial payments
	InterestRate float64    `json:"interestRate"`
	TermMonths   int        `json:"termMonths"`
	StartDate    string     `json:"startDate"`
	Status       LoanStatus `json:"status"`
}

// Decode parses a persisted blob into a current State.
//
// An absent blob decodes to the empty state. Text that is not a JSON object
// of the expected shape is a *DecodeError, and the empty state is returned
// alongside so that callers can fall back to it.
func Decode(b Blob) (State, error) {
	if b.Absent() {
		return EmptyState(), nil
	}
	var raw rawState
	dec := json.NewDecoder(bytes.NewReader(b.Bytes()))
	if err := dec.Decode(&raw); err != nil {
		return EmptyState(), &DecodeError{Err: err}
	}
	if dec.More() {
		return EmptyState(), &DecodeError{Err: fmt.Errorf("unexpected data after the state document")}
	}
	return migrate(raw), nil
}

// migrate overlays raw onto the empty state and backfills fields that older
// versions did not store. It is idempotent.
func migrate(raw rawState) State {
	s := EmptyState()
	if raw.Inventory != nil {
		s.Inventory = raw.Inventory
	}
	if raw.Sales != nil {
		s.Sales = raw.Sales
	}
	if raw.Expenses != nil {
		s.Expenses = raw.Expenses
	}
	if raw.Equity != nil {
		s.Equity = raw.Equity
	}
	for _, r := range raw.Debts {
		s.Debts = append(s.Debts, backfillDebt(r))
	}
	for _, r := range raw.Loans {
		s.Loans = append(s.Loans, backfillLoan(r))
	}
	return s
}

// backfillDebt sets a missing paidAmount to the full amount for a paid debt, 0 otherwise.
// An existing paidAmount is never overwritten.
func backfillDebt(r rawDebt) Debt {
	d := Debt{
		ID:       r.ID,
		Creditor: r.Creditor,
		Amount:   r.Amount,
		DueDate:  r.DueDate,
		Status:   r.Status,
		Date:     r.Date,
	}
	switch {
	case r.PaidAmount != nil:
		d.PaidAmount = *r.PaidAmount
	case r.Status == DebtPaid:
		d.PaidAmount = r.Amount
	}
	return d
}

// backfillLoan is backfillDebt for loans, using the principal and the cleared status.
func backfillLoan(r rawLoan) Loan {
	l := Loan{
		ID:           r.ID,
		Source:       r.Source,
		Principal:    r.Principal,
		InterestRate: r.InterestRate,
		TermMonths:   r.TermMonths,
		StartDate:    r.StartDate,
		Status:       r.Status,
	}
	switch {
	case r.PaidAmount != nil:
		l.PaidAmount = *r.PaidAmount
	case r.Status == LoanCleared:
		l.PaidAmount = r.Principal
	}
	return l
}
