package biashara

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// KES is a helper for test to create money from const.
func KES(v float64) Money { return M(v) }

// equalMoney makes cmp compare Money by value, 1500 and 1500.00 are equal.
var equalMoney = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// at is the fixed time stamped on records in tests.
var at = time.Date(2025, time.March, 2, 10, 30, 0, 0, time.UTC)

// mustUpdate applies updates in order and fails the test on the first error.
func mustUpdate(t *testing.T, s State, updates ...Update) State {
	t.Helper()
	for i, u := range updates {
		var err error
		if s, err = u(s.Clone()); err != nil {
			t.Fatalf("update #%d failed: %v", i, err)
		}
	}
	return s
}

// dress is the item of the reference scenario: bought 1000, sold 1500, 10 in stock.
func dress() InventoryItem {
	it := NewInventoryItem("Dress", KES(1000), KES(1500), 10, "Clothing")
	it.ID = "dress"
	return it
}

// failingStorage accepts reads and refuses writes.
type failingStorage struct{ MemoryStorage }

func (f *failingStorage) Set(key string, value []byte) error { return errDisk }

var errDisk = errors.New("disk full")
