package biashara

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSessionScenario(t *testing.T) {
	st := NewDirStorage(t.TempDir())
	s := Open(st)

	if err := s.Update(AddItem(dress())); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := s.Update(RecordSale("dress", 2, at)); err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	state := s.State()
	if got := state.Inventory[0].Stock; got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}
	if len(state.Sales) != 1 || !state.Sales[0].TotalPrice.Equal(KES(3000)) || !state.Sales[0].Profit.Equal(KES(1000)) {
		t.Errorf("sales = %+v, want one sale of 3000 with 1000 profit", state.Sales)
	}
	if got := NewStats(state).NetProfit; !got.Equal(KES(1000)) {
		t.Errorf("net profit = %s, want 1000", got)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// a new session on the same directory sees the saved state
	reopened := Open(st)
	if diff := cmp.Diff(state, reopened.State(), equalMoney); diff != "" {
		t.Errorf("reopened state mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionFailClosed(t *testing.T) {
	s := Open(&MemoryStorage{})
	if err := s.Update(AddItem(dress())); err != nil {
		t.Fatal(err)
	}
	before := s.State()

	var statuses []SyncStatus
	s.OnStatus(func(st SyncStatus) { statuses = append(statuses, st) })

	boom := errors.New("boom")
	tests := []struct {
		name   string
		update Update
	}{
		{"error", func(s State) (State, error) {
			s.Inventory[0].Stock = 0
			return s, boom
		}},
		{"panic", func(s State) (State, error) {
			s.Inventory[0].Stock = 0
			var items []InventoryItem
			_ = items[3]
			return s, nil
		}},
		{"insufficient stock", RecordSale("dress", 99, at)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Update(tt.update); err == nil {
				t.Fatal("Update() succeeded, want an error")
			}
			if diff := cmp.Diff(before, s.State(), equalMoney); diff != "" {
				t.Errorf("state changed (-want +got):\n%s", diff)
			}
			if got := s.Status(); got != Synced {
				t.Errorf("status = %s, want synced", got)
			}
		})
	}
	want := []SyncStatus{Syncing, Synced, Syncing, Synced, Syncing, Synced}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Errorf("status transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionSaveFailure(t *testing.T) {
	s := Open(&failingStorage{})
	err := s.Update(AddItem(dress()))
	if !errors.Is(err, errDisk) {
		t.Fatalf("Update() error = %v, want %v", err, errDisk)
	}
	if got := s.Status(); got != Pending {
		t.Errorf("status = %s, want pending", got)
	}
	if len(s.State().Inventory) != 1 {
		t.Errorf("state was not committed in memory")
	}
}

func TestSessionClosed(t *testing.T) {
	s := Open(&MemoryStorage{})
	s.Close()
	if err := s.Update(AddItem(dress())); !errors.Is(err, ErrClosed) {
		t.Errorf("Update() after Close error = %v, want ErrClosed", err)
	}
}

func TestSnapshotLog(t *testing.T) {
	st := &MemoryStorage{}
	s := Open(st)
	var first Snapshot
	for i := range MaxSnapshots + 1 {
		if err := s.Update(AddExpense(NewExpense(fmt.Sprintf("expense %d", i), KES(10), "", at))); err != nil {
			t.Fatal(err)
		}
		snap, err := s.Capture(fmt.Sprintf("after %d", i))
		if err != nil {
			t.Fatalf("Capture() error: %v", err)
		}
		if i == 0 {
			first = snap
		}
	}

	list := s.Snapshots()
	if len(list) != MaxSnapshots {
		t.Fatalf("got %d snapshots, want %d", len(list), MaxSnapshots)
	}
	if list[0].Label != fmt.Sprintf("after %d", MaxSnapshots) {
		t.Errorf("newest snapshot = %q, want the last capture", list[0].Label)
	}
	if _, found := FindSnapshot(list, first.ID); found {
		t.Errorf("oldest snapshot %s was not evicted", first.ID)
	}

	// restore the oldest snapshot still in the log
	oldest := list[len(list)-1]
	if err := s.Restore(oldest.ID); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if got := len(s.State().Expenses); got != 2 {
		t.Errorf("restored state has %d expenses, want 2", got)
	}
	if diff := cmp.Diff(oldest.Data, Load(st, nil), equalMoney); diff != "" {
		t.Errorf("restored state not saved (-want +got):\n%s", diff)
	}
	if err := s.Restore("SNAP-NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := Open(&MemoryStorage{})
	s.Update(AddItem(dress()))
	snap, err := s.Capture("before sale")
	if err != nil {
		t.Fatal(err)
	}
	s.Update(RecordSale("dress", 1, at))
	if got := snap.Data.Inventory[0].Stock; got != 10 {
		t.Errorf("snapshot stock = %d, want 10", got)
	}
}

func TestUnreadableSnapshotLog(t *testing.T) {
	st := &MemoryStorage{}
	st.Set(SnapshotsKey, []byte("{oops"))
	s := Open(st)
	if got := s.Snapshots(); len(got) != 0 {
		t.Errorf("Snapshots() = %v, want empty", got)
	}
	if _, err := s.Capture("fresh"); err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	if got := s.Snapshots(); len(got) != 1 {
		t.Errorf("got %d snapshots, want 1", len(got))
	}
	kept, err := st.Get(UnreadableSnapshotsKey)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(kept.Bytes()); got != "{oops" {
		t.Errorf("unreadable log kept as %q, want %q", got, "{oops")
	}
}

func TestStatusObserverReadsSession(t *testing.T) {
	s := Open(&MemoryStorage{})
	var seen []string
	s.OnStatus(func(status SyncStatus) {
		// reading the session from an observer must not block
		seen = append(seen, fmt.Sprintf("%s/%s/%d", status, s.Status(), len(s.State().Inventory)))
	})

	done := make(chan error, 1)
	go func() { done <- s.Update(AddItem(dress())) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Update() did not return")
	}

	want := []string{"syncing/synced/1", "synced/synced/1"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("observed statuses mismatch (-want +got):\n%s", diff)
	}
}
