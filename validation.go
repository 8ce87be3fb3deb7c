package biashara

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors of the update operations, check them with errors.Is.
var (
	ErrInvalid           = errors.New("invalid")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// invalid returns an ErrInvalid error describing a single failure.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the fields of an inventory item.
func (it InventoryItem) Validate() error {
	var errs []error
	if strings.TrimSpace(it.ID) == "" {
		errs = append(errs, invalid("item has no id"))
	}
	if strings.TrimSpace(it.Name) == "" {
		errs = append(errs, invalid("item name is empty"))
	}
	if it.BuyingPrice.IsNegative() {
		errs = append(errs, invalid("buying price must not be negative, got %s", it.BuyingPrice))
	}
	if it.SellingPrice.IsNegative() {
		errs = append(errs, invalid("selling price must not be negative, got %s", it.SellingPrice))
	}
	if it.Stock < 0 {
		errs = append(errs, invalid("stock must not be negative, got %d", it.Stock))
	}
	return errors.Join(errs...)
}

// Validate checks the fields of an expense.
func (e Expense) Validate() error {
	var errs []error
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, invalid("expense description is empty"))
	}
	if !e.Amount.IsPositive() {
		errs = append(errs, invalid("expense amount must be positive, got %s", e.Amount))
	}
	return errors.Join(errs...)
}

// Validate checks the fields of a debt.
func (d Debt) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Creditor) == "" {
		errs = append(errs, invalid("debt creditor is empty"))
	}
	if !d.Amount.IsPositive() {
		errs = append(errs, invalid("debt amount must be positive, got %s", d.Amount))
	}
	if d.PaidAmount.IsNegative() || d.PaidAmount.GreaterThan(d.Amount) {
		errs = append(errs, invalid("debt paid amount %s must be between 0 and %s", d.PaidAmount, d.Amount))
	}
	return errors.Join(errs...)
}

// Validate checks the fields of a loan.
func (l Loan) Validate() error {
	var errs []error
	if strings.TrimSpace(l.Source) == "" {
		errs = append(errs, invalid("loan source is empty"))
	}
	if !l.Principal.IsPositive() {
		errs = append(errs, invalid("loan principal must be positive, got %s", l.Principal))
	}
	if l.PaidAmount.IsNegative() || l.PaidAmount.GreaterThan(l.Principal) {
		errs = append(errs, invalid("loan paid amount %s must be between 0 and %s", l.PaidAmount, l.Principal))
	}
	if l.InterestRate < 0 {
		errs = append(errs, invalid("loan interest rate must not be negative, got %v", l.InterestRate))
	}
	if l.TermMonths < 1 {
		errs = append(errs, invalid("loan term must be at least one month, got %d", l.TermMonths))
	}
	return errors.Join(errs...)
}

// Validate checks the fields of an equity entry.
func (e Equity) Validate() error {
	var errs []error
	if strings.TrimSpace(e.Source) == "" {
		errs = append(errs, invalid("equity source is empty"))
	}
	if !e.Amount.IsPositive() {
		errs = append(errs, invalid("equity amount must be positive, got %s", e.Amount))
	}
	return errors.Join(errs...)
}
