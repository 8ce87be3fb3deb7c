package biashara

import (
	"slices"
	"time"

	"github.com/etnz/biashara/date"
)

// Category used when none is given.
const DefaultCategory = "General"

// LowStockThreshold is the stock level under which an item is flagged.
const LowStockThreshold = 5

// InventoryItem is a product the shop holds in stock.
type InventoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	BuyingPrice  Money  `json:"buyingPrice"`
	SellingPrice Money  `json:"sellingPrice"`
	Stock        int    `json:"stock"`
	Category     string `json:"category"`
}

// SaleRecord is an immutable sale. Item name and prices are copied at sale
// time, editing or deleting the item later does not change history.
type SaleRecord struct {
	ID         string `json:"id"`
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
	TotalPrice Money  `json:"totalPrice"`
	Profit     Money  `json:"profit"`
	Date       string `json:"date"`
}

// UnitPrice is the price each unit was sold at.
func (s SaleRecord) UnitPrice() Money {
	if s.Quantity == 0 {
		return Money{}
	}
	return Money{value: s.TotalPrice.value.Div(M(s.Quantity).value)}
}

// Expense is money spent running the shop.
type Expense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// Debt is money owed to the shop, typically an item booked by a customer.
type Debt struct {
	ID         string     `json:"id"`
	Creditor   string     `json:"creditor"`
	Amount     Money      `json:"amount"`
	PaidAmount Money      `json:"paidAmount"`
	DueDate    string     `json:"dueDate"`
	Status     DebtStatus `json:"status"`
	Date       string     `json:"date"`
}

// Balance is what remains to be collected.
func (d Debt) Balance() Money { return d.Amount.Sub(d.PaidAmount) }

// Loan is money borrowed by the shop.
type Loan struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	Principal    Money      `json:"principal"`
	PaidAmount   Money      `json:"paidAmount"`
	InterestRate float64    `json:"interestRate"` // yearly, in percent
	TermMonths   int        `json:"termMonths"`
	StartDate    string     `json:"startDate"`
	Status       LoanStatus `json:"status"`
}

// Balance is what remains to be repaid.
func (l Loan) Balance() Money { return l.Principal.Sub(l.PaidAmount) }

// Equity is a single owner contribution or drawing.
type Equity struct {
	ID     string     `json:"id"`
	Source string     `json:"source"`
	Amount Money      `json:"amount"`
	Date   string     `json:"date"`
	Type   EquityType `json:"type"`
}

// State is the single aggregate of all the shop records.
//
// Sequences are kept newest first by convention (inventory is in insertion
// order), nothing relies on that order. The State is the unit of
// persistence and of every update.
type State struct {
	Inventory []InventoryItem `json:"inventory"`
	Sales     []SaleRecord    `json:"sales"`
	Expenses  []Expense       `json:"expenses"`
	Debts     []Debt          `json:"debts"`
	Loans     []Loan          `json:"loans"`
	Equity    []Equity        `json:"equity"`
}

// EmptyState returns the canonical empty state: every sequence present and empty.
func EmptyState() State {
	return State{
		Inventory: []InventoryItem{},
		Sales:     []SaleRecord{},
		Expenses:  []Expense{},
		Debts:     []Debt{},
		Loans:     []Loan{},
		Equity:    []Equity{},
	}
}

// Clone returns a deep copy of s. Entities hold only values so cloning the
// sequences is enough.
func (s State) Clone() State {
	return State{
		Inventory: clone(s.Inventory),
		Sales:     clone(s.Sales),
		Expenses:  clone(s.Expenses),
		Debts:     clone(s.Debts),
		Loans:     clone(s.Loans),
		Equity:    clone(s.Equity),
	}
}

// clone never returns nil so that a cloned state always encodes sequences as [].
func clone[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return slices.Clone(list)
}

// Item returns the item with that id.
func (s State) Item(id string) (InventoryItem, bool) {
	i := slices.IndexFunc(s.Inventory, func(it InventoryItem) bool { return it.ID == id })
	if i < 0 {
		return InventoryItem{}, false
	}
	return s.Inventory[i], true
}

// Len returns the total number of records.
func (s State) Len() int {
	return len(s.Inventory) + len(s.Sales) + len(s.Expenses) + len(s.Debts) + len(s.Loans) + len(s.Equity)
}

// now is the clock used to stamp new records.
var now = time.Now

// stamp returns the record timestamp for t, or for now when t is zero.
func stamp(t time.Time) string {
	if t.IsZero() {
		t = now()
	}
	return date.Timestamp(t)
}
