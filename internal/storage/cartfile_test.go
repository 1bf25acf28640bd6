package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

func testStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("could not create store: %v", err)
	}
	return s
}

func TestCartFileRoundTrip(t *testing.T) {
	s := testStore(t)

	items := []models.CartItem{
		{
			Product: models.Product{
				ID:        "p1",
				Title:     "Hoodie Premium",
				Price:     800,
				Category:  models.CategoryRopa,
				Sizes:     []string{"S", "M"},
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			Quantity:     2,
			SelectedSize: "M",
		},
		{
			Product: models.Product{
				ID:        "p2",
				Title:     "Taza JLV Edición Limitada",
				Price:     150,
				Category:  models.CategoryHogar,
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			Quantity: 1,
		},
	}

	if err := s.Save("cart-a", items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := s.Load("cart-a")
	if !reflect.DeepEqual(items, loaded) {
		t.Fatalf("round trip mismatch:\n saved: %+v\nloaded: %+v", items, loaded)
	}
}

func TestCartFileMissing(t *testing.T) {
	s := testStore(t)
	if got := s.Load("never-saved"); len(got) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(got))
	}
}

func TestCartFileMalformed(t *testing.T) {
	t.Run("garbage content", func(t *testing.T) {
		s := testStore(t)
		path := filepath.Join(s.dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if got := s.Load("bad"); len(got) != 0 {
			t.Fatalf("expected empty cart for malformed file, got %d items", len(got))
		}
	})

	t.Run("non array content", func(t *testing.T) {
		s := testStore(t)
		path := filepath.Join(s.dir, "obj.json")
		if err := os.WriteFile(path, []byte(`{"quantity": 3}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if got := s.Load("obj"); len(got) != 0 {
			t.Fatalf("expected empty cart for non-array content, got %d items", len(got))
		}
	})
}

func TestCartFileSaveNil(t *testing.T) {
	s := testStore(t)
	if err := s.Save("empty", nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, "empty.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array on disk, got %s", data)
	}
}
