package biashara

import (
	"slices"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Stats are the headline numbers of a shop, recomputed from the state on demand.
type Stats struct {
	Revenue        Money   // Σ sale total price
	GrossProfit    Money   // Σ sale profit
	Expenses       Money   // Σ expense amount
	NetProfit      Money   // GrossProfit − Expenses
	Liabilities    Money   // active loans principal + pending debts amount
	Receivables    Money   // outstanding balance of pending debts
	InventoryValue Money   // Σ buying price × stock
	Investments    Money   // Σ equity investments
	Drawals        Money   // Σ equity drawals
	Margin         float64 // GrossProfit / Revenue in percent, 0 without revenue
	LowStock       int     // items with stock under LowStockThreshold

	Items, SalesCount, ExpensesCount, DebtsCount, LoansCount, EquityCount int
}

// NewStats computes the stats of s.
//
// Liabilities add the gross principal and amount of open loans and debts,
// partial payments are not deducted.
func NewStats(s State) Stats {
	st := Stats{
		Revenue:     Sum(s.Sales, func(r SaleRecord) Money { return r.TotalPrice }),
		GrossProfit: Sum(s.Sales, func(r SaleRecord) Money { return r.Profit }),
		Expenses:    Sum(s.Expenses, func(e Expense) Money { return e.Amount }),
		InventoryValue: Sum(s.Inventory, func(it InventoryItem) Money {
			return it.BuyingPrice.Mul(it.Stock)
		}),
		LowStock: len(LowStockItems(s)),

		Items:         len(s.Inventory),
		SalesCount:    len(s.Sales),
		ExpensesCount: len(s.Expenses),
		DebtsCount:    len(s.Debts),
		LoansCount:    len(s.Loans),
		EquityCount:   len(s.Equity),
	}
	st.NetProfit = st.GrossProfit.Sub(st.Expenses)

	loans := Sum(s.Loans, func(l Loan) Money {
		if l.Status != LoanActive {
			return Money{}
		}
		return l.Principal
	})
	var debts Money
	for _, d := range s.Debts {
		if d.Status != DebtPending {
			continue
		}
		debts = debts.Add(d.Amount)
		st.Receivables = st.Receivables.Add(d.Balance())
	}
	st.Liabilities = loans.Add(debts)

	for _, e := range s.Equity {
		switch e.Type {
		case Investment:
			st.Investments = st.Investments.Add(e.Amount)
		case Drawal:
			st.Drawals = st.Drawals.Add(e.Amount)
		}
	}

	if st.Revenue.IsPositive() {
		st.Margin = st.GrossProfit.Scale(hundred).Ratio(st.Revenue)
	}
	return st
}

// LowStockItems returns the items whose stock is under LowStockThreshold, lowest stock first.
func LowStockItems(s State) []InventoryItem {
	var low []InventoryItem
	for _, it := range s.Inventory {
		if it.Stock < LowStockThreshold {
			low = append(low, it)
		}
	}
	slices.SortStableFunc(low, func(a, b InventoryItem) int { return a.Stock - b.Stock })
	return low
}
