package biashara

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestImportExport checks that a backup imports back to the same state.
func TestImportExport(t *testing.T) {
	want := mustUpdate(t, EmptyState(),
		AddItem(dress()),
		RecordSale("dress", 2, at),
		AddLoan(NewLoan("Bank", KES(5000), 10, 6, at)),
	)
	var buf bytes.Buffer
	if err := Export(&buf, want); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"inventory\": [") {
		t.Errorf("Export() is not indented by two spaces:\n%s", buf.String())
	}
	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if diff := cmp.Diff(want, got, equalMoney); diff != "" {
		t.Errorf("Import(Export(s)) mismatch (-want +got):\n%s", diff)
	}
}

func TestImportMalformed(t *testing.T) {
	for _, input := range []string{"", "hello", `{"sales": 3}`} {
		_, err := Import(strings.NewReader(input))
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Import(%q) error = %v, want a *DecodeError", input, err)
		}
	}
}

func TestImportKeepsSessionOnError(t *testing.T) {
	s := Open(&MemoryStorage{})
	s.Update(AddItem(dress()))
	before := s.State()
	if imported, err := Import(strings.NewReader("garbage")); err == nil {
		s.Replace(imported)
	}
	if diff := cmp.Diff(before, s.State(), equalMoney); diff != "" {
		t.Errorf("session changed (-want +got):\n%s", diff)
	}
}
