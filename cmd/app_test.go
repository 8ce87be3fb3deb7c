package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/etnz/biashara"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

// execute runs the bms command line args on a fresh data directory shared by the test.
func execute(t *testing.T, dir string, args ...string) subcommands.ExitStatus {
	t.Helper()
	*dataDir, *plain = dir, true
	t.Cleanup(func() { *dataDir, *plain = "", false })

	fs := flag.NewFlagSet("bms", flag.ContinueOnError)
	c := subcommands.NewCommander(fs, "bms")
	Register(c)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return c.Execute(context.Background())
}

// books returns the state stored in dir.
func books(t *testing.T, dir string) biashara.State {
	t.Helper()
	s := biashara.Open(biashara.NewDirStorage(dir))
	defer s.Close()
	return s.State()
}

func TestCommandLine(t *testing.T) {
	t.Setenv("BMS_TESTING_NOW", "2025-03-02 10:30:00")
	t.Setenv("BMS_VAULT", "simulated")
	dir := t.TempDir()

	steps := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{[]string{"item", "add", "-name", "Dress", "-sku", "DRS-01", "-buy", "1000", "-sell", "1500", "-stock", "10"}, subcommands.ExitSuccess},
		{[]string{"item", "add", "-name", "Other", "-sku", "drs-01", "-buy", "1", "-sell", "2"}, subcommands.ExitUsageError},
		{[]string{"sell", "-q", "2", "drs-01"}, subcommands.ExitSuccess},
		{[]string{"sell", "-q", "20", "Dress"}, subcommands.ExitUsageError},
		{[]string{"expense", "-amount", "50", "-category", "Transport", "Boda boda"}, subcommands.ExitSuccess},
		{[]string{"debt", "add", "-amount", "600", "-kind", "Booked Item", "Jane"}, subcommands.ExitSuccess},
		{[]string{"equity", "-amount", "5000", "Savings"}, subcommands.ExitSuccess},
		{[]string{"equity", "-amount", "5000", "-type", "gift", "Savings"}, subcommands.ExitUsageError},
		{[]string{"ledger", "-ids", "sales"}, subcommands.ExitSuccess},
		{[]string{"ledger", "payroll"}, subcommands.ExitUsageError},
		{[]string{"dashboard"}, subcommands.ExitSuccess},
		{[]string{"project", "-years", "3"}, subcommands.ExitSuccess},
		{[]string{"item", "frobnicate"}, subcommands.ExitUsageError},
	}
	for _, step := range steps {
		if got := execute(t, dir, step.args...); got != step.want {
			t.Fatalf("bms %s = %v, want %v", strings.Join(step.args, " "), got, step.want)
		}
	}

	s := books(t, dir)
	if len(s.Inventory) != 1 || s.Inventory[0].Stock != 8 {
		t.Fatalf("inventory = %+v, want one item with 8 in stock", s.Inventory)
	}
	if len(s.Sales) != 1 || !s.Sales[0].Profit.Equal(biashara.M(1000)) {
		t.Errorf("sales = %+v, want one sale with a profit of 1000", s.Sales)
	}
	if got := s.Debts[0].Creditor; got != "Booked Item: Jane" {
		t.Errorf("creditor = %q, want %q", got, "Booked Item: Jane")
	}
	if got := biashara.NewStats(s).NetProfit; !got.Equal(biashara.M(950)) {
		t.Errorf("net profit = %v, want 950", got)
	}

	// pay the debt by its id prefix
	if got := execute(t, dir, "debt", "pay", "-amount", "700", s.Debts[0].ID[:8]); got != subcommands.ExitSuccess {
		t.Fatalf("debt pay = %v", got)
	}
	d := books(t, dir).Debts[0]
	if !d.PaidAmount.Equal(biashara.M(600)) || d.Status != biashara.DebtPaid {
		t.Errorf("debt = %+v, want 600 paid", d)
	}

	// delete the expense
	if got := execute(t, dir, "delete", "expenses", s.Expenses[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("delete = %v", got)
	}
	if n := len(books(t, dir).Expenses); n != 0 {
		t.Errorf("got %d expenses after delete, want 0", n)
	}
}

func TestSnapshotRestore(t *testing.T) {
	dir := t.TempDir()
	execute(t, dir, "item", "add", "-name", "Scarf", "-buy", "100", "-sell", "250", "-stock", "3")
	if got := execute(t, dir, "snapshot", "capture", "Before", "delete"); got != subcommands.ExitSuccess {
		t.Fatalf("snapshot capture = %v", got)
	}
	execute(t, dir, "item", "delete", "scarf")
	if n := len(books(t, dir).Inventory); n != 0 {
		t.Fatalf("got %d items, want 0", n)
	}

	st := biashara.NewDirStorage(dir)
	list, err := biashara.LoadSnapshots(st)
	if err != nil || len(list) != 1 {
		t.Fatalf("LoadSnapshots() = %v, %v, want one snapshot", list, err)
	}
	if list[0].Label != "Before delete" {
		t.Errorf("label = %q", list[0].Label)
	}
	if got := execute(t, dir, "snapshot", "restore", strings.ToLower(list[0].ID[:12])); got != subcommands.ExitSuccess {
		t.Fatalf("snapshot restore = %v", got)
	}
	if n := len(books(t, dir).Inventory); n != 1 {
		t.Errorf("got %d items after restore, want 1", n)
	}
}

func TestFindItem(t *testing.T) {
	s := biashara.EmptyState()
	s.Inventory = []biashara.InventoryItem{
		{ID: "id-1", Name: "Dress", SKU: "DRS"},
		{ID: "id-2", Name: "Scarf", SKU: "SCF"},
		{ID: "id-3", Name: "scarf", SKU: "SCF2"},
	}
	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "id-2", want: "id-2"},
		{ref: "drs", want: "id-1"},
		{ref: " Dress ", want: "id-1"},
		{ref: "scf2", want: "id-3"},
		{ref: "Scarf"}, // ambiguous
		{ref: "hat", wantErr: biashara.ErrNotFound},
	}
	for _, tt := range tests {
		got, err := findItem(s, tt.ref)
		if tt.want == "" {
			if err == nil {
				t.Errorf("findItem(%q) = %v, want an error", tt.ref, got.ID)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("findItem(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got.ID != tt.want {
			t.Errorf("findItem(%q) = %q, %v, want %q", tt.ref, got.ID, err, tt.want)
		}
	}
}

func TestFindByID(t *testing.T) {
	list := []string{"abc-1", "abd-2", "xyz-3"}
	id := func(s string) string { return s }

	if got, err := findByID(list, id, "sale", "XY"); err != nil || got != "xyz-3" {
		t.Errorf("findByID(XY) = %q, %v", got, err)
	}
	if _, err := findByID(list, id, "sale", "ab"); err == nil {
		t.Error("findByID(ab) is ambiguous, want an error")
	}
	if _, err := findByID(list, id, "sale", "q"); !errors.Is(err, biashara.ErrNotFound) {
		t.Errorf("findByID(q) error = %v, want ErrNotFound", err)
	}
	if _, err := findByID(list, id, "sale", ""); err == nil {
		t.Error("findByID(\"\") want an error")
	}
}

func TestMoneyFlag(t *testing.T) {
	var m moneyFlag
	if m.String() != "" || m.set {
		t.Fatalf("zero moneyFlag = %q, %v", m.String(), m.set)
	}
	if err := m.Set("1500.50"); err != nil {
		t.Fatal(err)
	}
	if !m.set || !m.value.Equal(biashara.M(1500.5)) || m.String() != "1500.5" {
		t.Errorf("moneyFlag = %q, %v", m.String(), m.set)
	}
	if err := m.Set("lots"); err == nil {
		t.Error("Set(lots) want an error")
	}
}

func TestQuery(t *testing.T) {
	s := biashara.EmptyState()
	s.Inventory = []biashara.InventoryItem{
		{ID: "a", Name: "Dress", Stock: 8},
		{ID: "b", Name: "Scarf", Stock: 2},
	}
	got, err := query(s, "$.inventory[?(@.stock < 5)].name")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"Scarf"}, got); diff != "" {
		t.Errorf("query() mismatch (-want +got):\n%s", diff)
	}
	if _, err := query(s, "$.inventory[?("); err == nil {
		t.Error("query() of a malformed path want an error")
	}
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "": false, "maybe\n": false} {
		if got := confirm(strings.NewReader(input), "Sure?"); got != want {
			t.Errorf("confirm(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestDeletion(t *testing.T) {
	s := biashara.EmptyState()
	if _, err := deletion(s, "inventory", "x"); err == nil {
		t.Error("deletion(inventory) want an error")
	}
	if _, err := deletion(s, "sales", "x"); !errors.Is(err, biashara.ErrNotFound) {
		t.Errorf("deletion(sales) error = %v, want ErrNotFound", err)
	}
}

func TestCheckItemArgs(t *testing.T) {
	tests := []struct {
		action  string
		args    []string
		wantErr string
	}{
		{"list", nil, ""},
		{"add", nil, ""},
		{"edit", []string{"dress"}, ""},
		{"delete", nil, "delete needs exactly one item"},
		{"restock", []string{"a", "b"}, "restock needs exactly one item"},
		{"foo", nil, `unknown action "foo"`},
		{"foo", []string{"dress"}, `unknown action "foo"`},
	}
	for _, tt := range tests {
		err := checkItemArgs(tt.action, tt.args)
		switch {
		case tt.wantErr == "" && err != nil:
			t.Errorf("checkItemArgs(%q, %v) error: %v", tt.action, tt.args, err)
		case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
			t.Errorf("checkItemArgs(%q, %v) = %v, want %q", tt.action, tt.args, err, tt.wantErr)
		}
	}
}

func TestMalformedTestingNow(t *testing.T) {
	t.Setenv(EnvTestingNow, "yesterday")
	before := time.Now()
	if got := Now(); got.Before(before) {
		t.Errorf("Now() = %v, want the wall clock", got)
	}
	if status := execute(t, t.TempDir(), "dashboard"); status != subcommands.ExitFailure {
		t.Errorf("dashboard with a malformed clock = %v, want ExitFailure", status)
	}

	t.Setenv(EnvTestingNow, "2025-03-02 10:30:00")
	if got, want := Now(), time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}
