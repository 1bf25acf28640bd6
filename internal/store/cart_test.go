package store

import (
	"testing"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

type fakePersister struct {
	saved map[string][]models.CartItem
}

func newFakePersister() *fakePersister {
	return &fakePersister{saved: make(map[string][]models.CartItem)}
}

func (f *fakePersister) Load(cartID string) []models.CartItem {
	return f.saved[cartID]
}

func (f *fakePersister) Save(cartID string, items []models.CartItem) error {
	copied := make([]models.CartItem, len(items))
	copy(copied, items)
	f.saved[cartID] = copied
	return nil
}

func hoodie() models.Product {
	return models.Product{
		ID:       "p1",
		Title:    "Hoodie Premium",
		Price:    800,
		Category: models.CategoryRopa,
		Sizes:    []string{"S", "M", "L"},
	}
}

func mug() models.Product {
	return models.Product{
		ID:       "p2",
		Title:    "Taza JLV Edición Limitada",
		Price:    150,
		Category: models.CategoryHogar,
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("same product and size collapses into one line", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(hoodie(), 2, "M")
		cart.Add(hoodie(), 3, "M")

		items := cart.Items()
		if len(items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(items))
		}
		if items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
		}
	})

	t.Run("same product different size is a distinct line", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(hoodie(), 1, "M")
		cart.Add(hoodie(), 1, "L")

		if got := len(cart.Items()); got != 2 {
			t.Fatalf("expected 2 line items, got %d", got)
		}
	})

	t.Run("empty size only matches empty size", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(hoodie(), 1, "")
		cart.Add(hoodie(), 1, "M")

		if got := len(cart.Items()); got != 2 {
			t.Fatalf("expected 2 line items, got %d", got)
		}
	})

	t.Run("line keeps the price at time of adding", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		p := hoodie()
		cart.Add(p, 1, "M")

		p.Price = 999
		items := cart.Items()
		if items[0].Price != 800 {
			t.Fatalf("expected snapshot price 800, got %v", items[0].Price)
		}
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("removes exactly the matching pair", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(hoodie(), 1, "M")
		cart.Add(hoodie(), 1, "L")
		cart.Add(mug(), 1, "")

		cart.Remove("p1", "M")

		items := cart.Items()
		if len(items) != 2 {
			t.Fatalf("expected 2 line items, got %d", len(items))
		}
		for _, item := range items {
			if item.Matches("p1", "M") {
				t.Fatal("removed line item still present")
			}
		}
	})

	t.Run("unknown pair is a no-op", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(mug(), 2, "")
		cart.Remove("p2", "M")

		if got := len(cart.Items()); got != 1 {
			t.Fatalf("expected 1 line item, got %d", got)
		}
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("sets quantity on the matching line", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(mug(), 1, "")
		cart.SetQuantity("p2", 7, "")

		if got := cart.Items()[0].Quantity; got != 7 {
			t.Fatalf("expected quantity 7, got %d", got)
		}
	})

	t.Run("zero or negative is a no-op", func(t *testing.T) {
		cart := NewCartStore(newFakePersister(), "c1")
		cart.Add(mug(), 3, "")

		cart.SetQuantity("p2", 0, "")
		cart.SetQuantity("p2", -5, "")

		if got := cart.Items()[0].Quantity; got != 3 {
			t.Fatalf("expected quantity 3, got %d", got)
		}
	})
}

func TestCartTotal(t *testing.T) {
	cart := NewCartStore(newFakePersister(), "c1")
	cart.Add(hoodie(), 2, "M")
	cart.Add(mug(), 1, "")

	if got := cart.Total(); got != 1750 {
		t.Fatalf("expected total 1750, got %v", got)
	}

	// El total se recalcula en cada llamada.
	cart.SetQuantity("p2", 2, "")
	if got := cart.Total(); got != 1900 {
		t.Fatalf("expected total 1900 after mutation, got %v", got)
	}
}

func TestCartClear(t *testing.T) {
	persister := newFakePersister()
	cart := NewCartStore(persister, "c1")
	cart.Add(hoodie(), 1, "M")
	cart.Clear()

	if got := len(cart.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d items", got)
	}
	if got := len(persister.saved["c1"]); got != 0 {
		t.Fatalf("expected cleared cart persisted, got %d items", got)
	}
}

func TestCartPersistsEveryMutation(t *testing.T) {
	persister := newFakePersister()
	cart := NewCartStore(persister, "c1")

	cart.Add(hoodie(), 1, "M")
	if got := len(persister.saved["c1"]); got != 1 {
		t.Fatalf("add not persisted: %d items saved", got)
	}

	rehydrated := NewCartStore(persister, "c1")
	if got := len(rehydrated.Items()); got != 1 {
		t.Fatalf("expected rehydrated cart with 1 item, got %d", got)
	}
}
