package biashara

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// This file contains the constructors of the records and the pure update
// operations applied through Session.Update.

// NewInventoryItem returns an item with a fresh id and a generated SKU.
func NewInventoryItem(name string, buyingPrice, sellingPrice Money, stock int, category string) InventoryItem {
	return withItemDefaults(InventoryItem{
		ID:           NewID(),
		Name:         strings.TrimSpace(name),
		BuyingPrice:  buyingPrice,
		SellingPrice: sellingPrice,
		Stock:        stock,
		Category:     category,
	})
}

func withItemDefaults(it InventoryItem) InventoryItem {
	if strings.TrimSpace(it.SKU) == "" {
		it.SKU = NewSKU()
	}
	if strings.TrimSpace(it.Category) == "" {
		it.Category = DefaultCategory
	}
	return it
}

// NewSale returns the record of selling quantity units of item at unitPrice.
// Item name and buying price are copied into the record.
func NewSale(item InventoryItem, quantity int, unitPrice Money, at time.Time) SaleRecord {
	return SaleRecord{
		ID:         NewID(),
		ItemID:     item.ID,
		ItemName:   item.Name,
		Quantity:   quantity,
		TotalPrice: unitPrice.Mul(quantity),
		Profit:     unitPrice.Sub(item.BuyingPrice).Mul(quantity),
		Date:       stamp(at),
	}
}

// NewExpense returns an expense with a fresh id.
func NewExpense(description string, amount Money, category string, at time.Time) Expense {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return Expense{
		ID:          NewID(),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Category:    category,
		Date:        stamp(at),
	}
}

// NewDebt returns a pending debt with nothing paid yet.
func NewDebt(creditor string, amount Money, dueDate string, at time.Time) Debt {
	return Debt{
		ID:       NewID(),
		Creditor: strings.TrimSpace(creditor),
		Amount:   amount,
		DueDate:  dueDate,
		Status:   DebtPending,
		Date:     stamp(at),
	}
}

// NewLoan returns an active loan with nothing repaid yet. A zero term means 12 months.
func NewLoan(source string, principal Money, interestRate float64, termMonths int, at time.Time) Loan {
	if termMonths == 0 {
		termMonths = 12
	}
	return Loan{
		ID:           NewID(),
		Source:       strings.TrimSpace(source),
		Principal:    principal,
		InterestRate: interestRate,
		TermMonths:   termMonths,
		StartDate:    stamp(at),
		Status:       LoanActive,
	}
}

// NewEquity returns an owner contribution or drawing.
func NewEquity(source string, amount Money, typ EquityType, at time.Time) Equity {
	return Equity{
		ID:     NewID(),
		Source: strings.TrimSpace(source),
		Amount: amount,
		Date:   stamp(at),
		Type:   typ,
	}
}

// WithKind prefixes a creditor or a loan source with its kind, as in "Booked Item: Jane".
func WithKind(kind, name string) string {
	if kind = strings.TrimSpace(kind); kind == "" {
		return name
	}
	return kind + ": " + name
}

// --- inventory ---

// AddItem appends a new item to the inventory.
func AddItem(it InventoryItem) Update {
	return func(s State) (State, error) {
		it := withItemDefaults(it)
		if err := it.Validate(); err != nil {
			return s, err
		}
		if _, exists := s.Item(it.ID); exists {
			return s, invalid("item %q already exists", it.ID)
		}
		if i := indexSKU(s.Inventory, it.SKU); i >= 0 {
			return s, invalid("SKU %q is already used by %q", it.SKU, s.Inventory[i].Name)
		}
		s.Inventory = append(s.Inventory, it)
		return s, nil
	}
}

// EditItem replaces the item with the same id. Past sales are not affected.
func EditItem(it InventoryItem) Update {
	return func(s State) (State, error) {
		i := indexID(s.Inventory, it.ID, itemID)
		if i < 0 {
			return s, fmt.Errorf("item %q: %w", it.ID, ErrNotFound)
		}
		it := withItemDefaults(it)
		if err := it.Validate(); err != nil {
			return s, err
		}
		if j := indexSKU(s.Inventory, it.SKU); j >= 0 && j != i {
			return s, invalid("SKU %q is already used by %q", it.SKU, s.Inventory[j].Name)
		}
		s.Inventory[i] = it
		return s, nil
	}
}

// DeleteItem removes an item. Past sales keep their copy of its name and prices.
func DeleteItem(id string) Update {
	return deleteByID(func(s *State) *[]InventoryItem { return &s.Inventory }, id, itemID, "item")
}

// RestockItem adds quantity units to an item stock.
func RestockItem(id string, quantity int) Update {
	return func(s State) (State, error) {
		if quantity <= 0 {
			return s, invalid("restock quantity must be positive, got %d", quantity)
		}
		i := indexID(s.Inventory, id, itemID)
		if i < 0 {
			return s, fmt.Errorf("item %q: %w", id, ErrNotFound)
		}
		s.Inventory[i].Stock += quantity
		return s, nil
	}
}

// --- sales ---

// RecordSale sells quantity units of an item at its selling price.
func RecordSale(itemID string, quantity int, at time.Time) Update {
	return recordSale(itemID, quantity, func(it InventoryItem) Money { return it.SellingPrice }, at)
}

// RecordSaleAt sells quantity units of an item at a custom unit price.
func RecordSaleAt(itemID string, quantity int, unitPrice Money, at time.Time) Update {
	return recordSale(itemID, quantity, func(InventoryItem) Money { return unitPrice }, at)
}

// recordSale decrements the stock and prepends the sale record together.
func recordSale(id string, quantity int, price func(InventoryItem) Money, at time.Time) Update {
	return func(s State) (State, error) {
		if quantity < 1 {
			return s, invalid("sale quantity must be at least 1, got %d", quantity)
		}
		i := indexID(s.Inventory, id, itemID)
		if i < 0 {
			return s, fmt.Errorf("item %q: %w", id, ErrNotFound)
		}
		item := s.Inventory[i]
		if item.Stock < quantity {
			return s, fmt.Errorf("cannot sell %d %q, %d in stock: %w", quantity, item.Name, item.Stock, ErrInsufficientStock)
		}
		unit := price(item)
		if unit.IsNegative() {
			return s, invalid("unit price must not be negative, got %s", unit)
		}
		s.Inventory[i].Stock -= quantity
		s.Sales = slices.Insert(s.Sales, 0, NewSale(item, quantity, unit, at))
		return s, nil
	}
}

// DeleteSale removes a sale record. The stock is not given back.
func DeleteSale(id string) Update {
	return deleteByID(func(s *State) *[]SaleRecord { return &s.Sales }, id, func(r SaleRecord) string { return r.ID }, "sale")
}

// --- expenses ---

// AddExpense prepends an expense.
func AddExpense(e Expense) Update {
	return func(s State) (State, error) {
		if e.Category == "" {
			e.Category = DefaultCategory
		}
		if err := e.Validate(); err != nil {
			return s, err
		}
		s.Expenses = slices.Insert(s.Expenses, 0, e)
		return s, nil
	}
}

// DeleteExpense removes an expense.
func DeleteExpense(id string) Update {
	return deleteByID(func(s *State) *[]Expense { return &s.Expenses }, id, func(e Expense) string { return e.ID }, "expense")
}

// --- debts ---

// AddDebt prepends a debt.
func AddDebt(d Debt) Update {
	return func(s State) (State, error) {
		if err := d.Validate(); err != nil {
			return s, err
		}
		s.Debts = slices.Insert(s.Debts, 0, d)
		return s, nil
	}
}

// PayDebt records a payment towards a debt. The paid amount never exceeds the
// debt amount, and the debt becomes paid once it is reached.
func PayDebt(id string, amount Money) Update {
	return func(s State) (State, error) {
		if !amount.IsPositive() {
			return s, invalid("payment must be positive, got %s", amount)
		}
		i := indexID(s.Debts, id, func(d Debt) string { return d.ID })
		if i < 0 {
			return s, fmt.Errorf("debt %q: %w", id, ErrNotFound)
		}
		d := &s.Debts[i]
		var full bool
		d.PaidAmount, full = pay(d.PaidAmount, amount, d.Amount)
		if full {
			d.Status = DebtPaid
		}
		return s, nil
	}
}

// DeleteDebt removes a debt.
func DeleteDebt(id string) Update {
	return deleteByID(func(s *State) *[]Debt { return &s.Debts }, id, func(d Debt) string { return d.ID }, "debt")
}

// --- loans ---

// AddLoan prepends a loan.
func AddLoan(l Loan) Update {
	return func(s State) (State, error) {
		if l.TermMonths == 0 {
			l.TermMonths = 12
		}
		if err := l.Validate(); err != nil {
			return s, err
		}
		s.Loans = slices.Insert(s.Loans, 0, l)
		return s, nil
	}
}

// PayLoan records a repayment of a loan, clamped to its principal. The loan
// is cleared once the principal is repaid.
func PayLoan(id string, amount Money) Update {
	return func(s State) (State, error) {
		if !amount.IsPositive() {
			return s, invalid("repayment must be positive, got %s", amount)
		}
		i := indexID(s.Loans, id, func(l Loan) string { return l.ID })
		if i < 0 {
			return s, fmt.Errorf("loan %q: %w", id, ErrNotFound)
		}
		l := &s.Loans[i]
		var full bool
		l.PaidAmount, full = pay(l.PaidAmount, amount, l.Principal)
		if full {
			l.Status = LoanCleared
		}
		return s, nil
	}
}

// DeleteLoan removes a loan.
func DeleteLoan(id string) Update {
	return deleteByID(func(s *State) *[]Loan { return &s.Loans }, id, func(l Loan) string { return l.ID }, "loan")
}

// --- equity ---

// AddEquity prepends an equity entry.
func AddEquity(e Equity) Update {
	return func(s State) (State, error) {
		if err := e.Validate(); err != nil {
			return s, err
		}
		s.Equity = slices.Insert(s.Equity, 0, e)
		return s, nil
	}
}

// DeleteEquity removes an equity entry.
func DeleteEquity(id string) Update {
	return deleteByID(func(s *State) *[]Equity { return &s.Equity }, id, func(e Equity) string { return e.ID }, "equity entry")
}

// --- helpers ---

// pay returns min(paid+amount, total) and whether total was reached.
func pay(paid, amount, total Money) (Money, bool) {
	next := paid.Add(amount)
	if next.GreaterThanOrEqual(total) {
		return total, true
	}
	return next, false
}

func itemID(it InventoryItem) string { return it.ID }

func indexID[T any](list []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
}

func indexSKU(list []InventoryItem, sku string) int {
	return slices.IndexFunc(list, func(it InventoryItem) bool { return strings.EqualFold(it.SKU, sku) })
}

// deleteByID returns an update removing the record with that id from the sequence selected by field.
func deleteByID[T any](field func(*State) *[]T, id string, idOf func(T) string, what string) Update {
	return func(s State) (State, error) {
		list := field(&s)
		i := indexID(*list, id, idOf)
		if i < 0 {
			return s, fmt.Errorf("%s %q: %w", what, id, ErrNotFound)
		}
		*list = slices.Delete(*list, i, i+1)
		return s, nil
	}
}
