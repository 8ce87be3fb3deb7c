package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/date"
)

// Table is a titled ledger table, the common input of the markdown and Word views.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Right   []int // indexes of right aligned (numeric) columns
}

// Ledgers lists the names accepted by Ledger.
var Ledgers = []string{"inventory", "sales", "expenses", "debts", "loans", "equity"}

// Ledger returns the table of one ledger of the state by name.
func Ledger(name string, s biashara.State) (Table, error) {
	switch strings.ToLower(name) {
	case "inventory":
		return InventoryTable(s), nil
	case "sales":
		return SalesTable(s), nil
	case "expenses":
		return ExpensesTable(s), nil
	case "debts":
		return DebtsTable(s), nil
	case "loans":
		return LoansTable(s), nil
	case "equity":
		return EquityTable(s), nil
	default:
		return Table{}, fmt.Errorf("unknown ledger %q, want one of %s", name, strings.Join(Ledgers, ", "))
	}
}

func InventoryTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Inventory Report",
		Headers: []string{"Name", "SKU", "Category", "Buying Price", "Selling Price", "Stock"},
		Right:   []int{3, 4, 5},
	}
	for _, it := range s.Inventory {
		t.Rows = append(t.Rows, []string{
			it.Name, it.SKU, it.Category,
			it.BuyingPrice.Display(), it.SellingPrice.Display(), strconv.Itoa(it.Stock),
		})
	}
	return t
}

func SalesTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Sales Ledger",
		Headers: []string{"Date", "Time", "Item", "Qty", "Revenue", "Profit"},
		Right:   []int{3, 4, 5},
	}
	for _, r := range s.Sales {
		t.Rows = append(t.Rows, []string{
			Day(r.Date), Clock(r.Date), r.ItemName,
			strconv.Itoa(r.Quantity), r.TotalPrice.Display(), r.Profit.Display(),
		})
	}
	return t
}

func ExpensesTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Expense Audit",
		Headers: []string{"Date", "Description", "Category", "Amount"},
		Right:   []int{3},
	}
	for _, e := range s.Expenses {
		t.Rows = append(t.Rows, []string{Day(e.Date), e.Description, e.Category, e.Amount.Display()})
	}
	return t
}

func DebtsTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Receivables (Debts)",
		Headers: []string{"Date", "Details", "Due Date", "Total", "Paid", "Balance", "Status"},
		Right:   []int{3, 4, 5},
	}
	for _, d := range s.Debts {
		due := d.DueDate
		if due == "" {
			due = "N/A"
		}
		t.Rows = append(t.Rows, []string{
			Day(d.Date), d.Creditor, due,
			d.Amount.Display(), d.PaidAmount.Display(), d.Balance().Display(), d.Status.String(),
		})
	}
	return t
}

func LoansTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Liabilities (Loans)",
		Headers: []string{"Start Date", "Source", "Principal", "Paid", "Balance", "Rate", "Status"},
		Right:   []int{2, 3, 4, 5},
	}
	for _, l := range s.Loans {
		t.Rows = append(t.Rows, []string{
			Day(l.StartDate), l.Source,
			l.Principal.Display(), l.PaidAmount.Display(), l.Balance().Display(),
			strconv.FormatFloat(l.InterestRate, 'f', -1, 64) + "%", l.Status.String(),
		})
	}
	return t
}

func EquityTable(s biashara.State) Table {
	t := Table{
		Title:   "Boutique Equity Log",
		Headers: []string{"Date", "Source", "Amount", "Type"},
		Right:   []int{2},
	}
	for _, e := range s.Equity {
		t.Rows = append(t.Rows, []string{Day(e.Date), e.Source, e.Amount.Display(), e.Type.String()})
	}
	return t
}

// Day returns the calendar day of a record timestamp, or the timestamp itself when it is not one.
func Day(ts string) string {
	d, err := date.FromTimestamp(ts)
	if err != nil {
		return ts
	}
	return d.String()
}

// Clock returns the hour and minute of a record timestamp, empty when it has none.
func Clock(ts string) string {
	t, err := date.ParseTimestamp(ts)
	if err != nil || len(ts) <= len(date.DateFormat) {
		return ""
	}
	return t.UTC().Format("15:04")
}

// ShortID is the prefix of record ids shown to the user; commands accept it in place of the full id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// WithIDs returns t with a leading column of the short ids of the records
// of ledger name, in the table row order.
func WithIDs(t Table, name string, s biashara.State) Table {
	var ids []string
	switch strings.ToLower(name) {
	case "inventory":
		ids = collect(s.Inventory, func(r biashara.InventoryItem) string { return r.ID })
	case "sales":
		ids = collect(s.Sales, func(r biashara.SaleRecord) string { return r.ID })
	case "expenses":
		ids = collect(s.Expenses, func(r biashara.Expense) string { return r.ID })
	case "debts":
		ids = collect(s.Debts, func(r biashara.Debt) string { return r.ID })
	case "loans":
		ids = collect(s.Loans, func(r biashara.Loan) string { return r.ID })
	case "equity":
		ids = collect(s.Equity, func(r biashara.Equity) string { return r.ID })
	}
	if len(ids) != len(t.Rows) {
		return t
	}
	out := Table{Title: t.Title, Headers: append([]string{"ID"}, t.Headers...)}
	for _, i := range t.Right {
		out.Right = append(out.Right, i+1)
	}
	for i, row := range t.Rows {
		out.Rows = append(out.Rows, append([]string{ids[i]}, row...))
	}
	return out
}

func collect[T any](list []T, id func(T) string) []string {
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, ShortID(id(r)))
	}
	return ids
}
