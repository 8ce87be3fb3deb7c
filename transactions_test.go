package biashara

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordSale(t *testing.T) {
	base := mustUpdate(t, EmptyState(), AddItem(dress()))

	tests := []struct {
		name      string
		update    Update
		wantErr   error
		wantStock int
		wantTotal Money
		wantProft Money
	}{
		{"within stock", RecordSale("dress", 2, at), nil, 8, KES(3000), KES(1000)},
		{"whole stock", RecordSale("dress", 10, at), nil, 0, KES(15000), KES(5000)},
		{"custom price", RecordSaleAt("dress", 3, KES(1200), at), nil, 7, KES(3600), KES(600)},
		{"below cost", RecordSaleAt("dress", 1, KES(800), at), nil, 9, KES(800), KES(-200)},
		{"over stock", RecordSale("dress", 11, at), ErrInsufficientStock, 10, Money{}, Money{}},
		{"zero quantity", RecordSale("dress", 0, at), ErrInvalid, 10, Money{}, Money{}},
		{"negative price", RecordSaleAt("dress", 1, KES(-1), at), ErrInvalid, 10, Money{}, Money{}},
		{"unknown item", RecordSale("shoe", 1, at), ErrNotFound, 10, Money{}, Money{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base.Clone()
			got, err := tt.update(in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if diff := cmp.Diff(base, in, equalMoney); diff != "" {
					t.Errorf("state changed on failure (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Inventory[0].Stock != tt.wantStock {
				t.Errorf("stock = %d, want %d", got.Inventory[0].Stock, tt.wantStock)
			}
			if len(got.Sales) != 1 {
				t.Fatalf("got %d sales, want 1", len(got.Sales))
			}
			sale := got.Sales[0]
			if !sale.TotalPrice.Equal(tt.wantTotal) || !sale.Profit.Equal(tt.wantProft) {
				t.Errorf("sale total/profit = %s/%s, want %s/%s", sale.TotalPrice, sale.Profit, tt.wantTotal, tt.wantProft)
			}
			if sale.ItemName != "Dress" || sale.ItemID != "dress" {
				t.Errorf("sale item = %q/%q, want Dress/dress", sale.ItemName, sale.ItemID)
			}
			if sale.Date != "2025-03-02T10:30:00Z" {
				t.Errorf("sale date = %q", sale.Date)
			}
		})
	}
}

func TestSaleHistorySurvivesItemChanges(t *testing.T) {
	s := mustUpdate(t, EmptyState(), AddItem(dress()), RecordSale("dress", 2, at))
	edited := s.Inventory[0]
	edited.Name = "Long Dress"
	edited.SellingPrice = KES(9999)
	s = mustUpdate(t, s, EditItem(edited), DeleteItem("dress"))

	if len(s.Inventory) != 0 {
		t.Errorf("inventory = %v, want empty", s.Inventory)
	}
	if got := s.Sales[0]; got.ItemName != "Dress" || !got.TotalPrice.Equal(KES(3000)) {
		t.Errorf("sale changed with its item: %+v", got)
	}
}

func TestPayments(t *testing.T) {
	debt := Debt{ID: "d", Creditor: "Jane", Amount: KES(100), PaidAmount: KES(80), Status: DebtPending}
	loan := Loan{ID: "l", Source: "Bank", Principal: KES(100), PaidAmount: KES(80), TermMonths: 12, Status: LoanActive}
	base := EmptyState()
	base.Debts = []Debt{debt}
	base.Loans = []Loan{loan}

	tests := []struct {
		name       string
		amount     Money
		wantErr    error
		wantPaid   Money
		wantClosed bool
	}{
		{"overpay is clamped", KES(30), nil, KES(100), true},
		{"exact", KES(20), nil, KES(100), true},
		{"partial", KES(10), nil, KES(90), false},
		{"zero", KES(0), ErrInvalid, KES(80), false},
		{"negative", KES(-5), ErrInvalid, KES(80), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := PayDebt("d", tt.amount)(base.Clone())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PayDebt() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				d := s.Debts[0]
				if !d.PaidAmount.Equal(tt.wantPaid) || (d.Status == DebtPaid) != tt.wantClosed {
					t.Errorf("debt = %s %s, want %s closed=%v", d.PaidAmount, d.Status, tt.wantPaid, tt.wantClosed)
				}
			}

			s, err = PayLoan("l", tt.amount)(base.Clone())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PayLoan() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				l := s.Loans[0]
				if !l.PaidAmount.Equal(tt.wantPaid) || (l.Status == LoanCleared) != tt.wantClosed {
					t.Errorf("loan = %s %s, want %s closed=%v", l.PaidAmount, l.Status, tt.wantPaid, tt.wantClosed)
				}
			}
		})
	}

	if _, err := PayDebt("nope", KES(1))(base.Clone()); !errors.Is(err, ErrNotFound) {
		t.Errorf("PayDebt(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		update  Update
		wantErr error
	}{
		{"item without name", AddItem(NewInventoryItem(" ", KES(1), KES(2), 1, "")), ErrInvalid},
		{"item negative stock", AddItem(NewInventoryItem("Hat", KES(1), KES(2), -1, "")), ErrInvalid},
		{"duplicate item", AddItem(dress()), ErrInvalid},
		{"edit unknown item", EditItem(InventoryItem{ID: "x", Name: "X"}), ErrNotFound},
		{"restock zero", RestockItem("dress", 0), ErrInvalid},
		{"restock unknown", RestockItem("x", 1), ErrNotFound},
		{"expense without description", AddExpense(NewExpense("", KES(5), "", at)), ErrInvalid},
		{"expense of zero", AddExpense(NewExpense("Rent", KES(0), "", at)), ErrInvalid},
		{"debt without amount", AddDebt(NewDebt("Jane", KES(0), "", at)), ErrInvalid},
		{"loan negative rate", AddLoan(NewLoan("Bank", KES(5), -1, 0, at)), ErrInvalid},
		{"equity without source", AddEquity(NewEquity("", KES(5), Investment, at)), ErrInvalid},
		{"delete unknown sale", DeleteSale("x"), ErrNotFound},
		{"delete unknown expense", DeleteExpense("x"), ErrNotFound},
		{"delete unknown debt", DeleteDebt("x"), ErrNotFound},
		{"delete unknown loan", DeleteLoan("x"), ErrNotFound},
		{"delete unknown equity", DeleteEquity("x"), ErrNotFound},
	}
	base := mustUpdate(t, EmptyState(), AddItem(dress()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.update(base.Clone()); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	it := NewInventoryItem("Hat", KES(100), KES(150), 1, "")
	if it.Category != DefaultCategory {
		t.Errorf("category = %q, want %q", it.Category, DefaultCategory)
	}
	if len(it.SKU) != 9 {
		t.Errorf("SKU = %q, want a 9 character token", it.SKU)
	}
	if l := NewLoan("Bank", KES(5), 0, 0, at); l.TermMonths != 12 || l.Status != LoanActive {
		t.Errorf("loan defaults = %d months %s, want 12 months active", l.TermMonths, l.Status)
	}
	if d := NewDebt("Jane", KES(5), "", at); !d.PaidAmount.IsZero() || d.Status != DebtPending {
		t.Errorf("debt defaults = %s %s, want 0 pending", d.PaidAmount, d.Status)
	}
	if got := WithKind("Booked Item", "Jane"); got != "Booked Item: Jane" {
		t.Errorf("WithKind() = %q", got)
	}
	if a, b := NewID(), NewID(); a == b {
		t.Errorf("NewID() returned %q twice", a)
	}
}

func TestDeleteRecords(t *testing.T) {
	s := mustUpdate(t, EmptyState(),
		AddItem(dress()),
		RecordSale("dress", 1, at),
		AddExpense(NewExpense("Rent", KES(50), "Rent", at)),
		AddEquity(NewEquity("Owner", KES(500), Investment, at)),
	)
	s = mustUpdate(t, s,
		DeleteSale(s.Sales[0].ID),
		DeleteExpense(s.Expenses[0].ID),
		DeleteEquity(s.Equity[0].ID),
	)
	if len(s.Sales)+len(s.Expenses)+len(s.Equity) != 0 {
		t.Errorf("records left after delete: %+v", s)
	}
	// deleting a sale does not give the stock back
	if s.Inventory[0].Stock != 9 {
		t.Errorf("stock = %d, want 9", s.Inventory[0].Stock)
	}
}
