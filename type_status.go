package biashara

import (
	"encoding/json"
	"fmt"
)

// DebtStatus tells whether money owed to the shop has been fully collected.
type DebtStatus int

const (
	// DebtPending is the open state of a debt.
	DebtPending DebtStatus = iota
	// DebtPaid means paidAmount reached the amount.
	DebtPaid
)

func (s DebtStatus) String() string {
	switch s {
	case DebtPending:
		return "pending"
	case DebtPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// ParseDebtStatus parses a string into a DebtStatus.
func ParseDebtStatus(s string) (DebtStatus, error) {
	switch s {
	case "pending", "":
		return DebtPending, nil
	case "paid":
		return DebtPaid, nil
	default:
		return 0, fmt.Errorf("unknown debt status: %q", s)
	}
}

func (s DebtStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *DebtStatus) UnmarshalJSON(b []byte) (err error) {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s, err = ParseDebtStatus(str)
	return err
}

// LoanStatus tells whether money borrowed by the shop has been repaid.
type LoanStatus int

const (
	// LoanActive is the open state of a loan.
	LoanActive LoanStatus = iota
	// LoanCleared means paidAmount reached the principal.
	LoanCleared
)

func (s LoanStatus) String() string {
	switch s {
	case LoanActive:
		return "active"
	case LoanCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// ParseLoanStatus parses a string into a LoanStatus.
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch s {
	case "active", "":
		return LoanActive, nil
	case "cleared":
		return LoanCleared, nil
	default:
		return 0, fmt.Errorf("unknown loan status: %q", s)
	}
}

func (s LoanStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s *LoanStatus) UnmarshalJSON(b []byte) (err error) {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s, err = ParseLoanStatus(str)
	return err
}

// EquityType distinguishes money put into the business from money taken out.
type EquityType int

const (
	Investment EquityType = iota
	Drawal
)

func (t EquityType) String() string {
	switch t {
	case Investment:
		return "investment"
	case Drawal:
		return "drawal"
	default:
		return "unknown"
	}
}

// ParseEquityType parses a string into an EquityType.
func ParseEquityType(s string) (EquityType, error) {
	switch s {
	case "investment", "":
		return Investment, nil
	case "drawal", "drawing", "withdrawal":
		return Drawal, nil
	default:
		return 0, fmt.Errorf("unknown equity type: %q", s)
	}
}

func (t EquityType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t *EquityType) UnmarshalJSON(b []byte) (err error) {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*t, err = ParseEquityType(str)
	return err
}
