package checkout

import (
	"strings"
	"testing"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

func TestMessage(t *testing.T) {
	t.Run("item line and total", func(t *testing.T) {
		items := []models.CartItem{
			{
				Product:  models.Product{ID: "p1", Title: "Hoodie", Price: 800},
				Quantity: 2,
			},
		}
		msg := Message(items)

		if !strings.Contains(msg, "2x Hoodie") {
			t.Fatalf("missing item line in: %q", msg)
		}
		if !strings.Contains(msg, "(L. 1600.00)") {
			t.Fatalf("missing line total in: %q", msg)
		}
		if !strings.Contains(msg, "*TOTAL: L. 1600.00*") {
			t.Fatalf("missing grand total in: %q", msg)
		}
		if !strings.HasPrefix(msg, "Hola JLV") {
			t.Fatalf("missing greeting in: %q", msg)
		}
		if !strings.HasSuffix(msg, "Quedo atento para coordinar el pago y envío.") {
			t.Fatalf("missing closing sentence in: %q", msg)
		}
	})

	t.Run("size annotation", func(t *testing.T) {
		items := []models.CartItem{
			{
				Product:      models.Product{ID: "p1", Title: "Camisa", Price: 450},
				Quantity:     1,
				SelectedSize: "M",
			},
		}
		msg := Message(items)
		if !strings.Contains(msg, "1x Camisa (Talla: M)") {
			t.Fatalf("missing size annotation in: %q", msg)
		}
	})

	t.Run("two decimal places", func(t *testing.T) {
		items := []models.CartItem{
			{
				Product:  models.Product{ID: "p1", Title: "Gorra", Price: 250},
				Quantity: 1,
			},
		}
		msg := Message(items)
		if !strings.Contains(msg, "L. 250.00") {
			t.Fatalf("totals must carry two decimals: %q", msg)
		}
	})
}

func TestLink(t *testing.T) {
	link := Link("50497007920", "Hola JLV, pedido: - *2x Hoodie (Talla: M)* (L. 1600.00)")

	if !strings.HasPrefix(link, "https://wa.me/50497007920?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("message must be url-encoded: %q", link)
	}
	// Los espacios van como %20, nunca como '+'.
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must encode as %%20: %q", link)
	}
	if !strings.Contains(link, "Hola%20JLV") {
		t.Fatalf("expected %%20 for spaces: %q", link)
	}
	// Las marcas del mensaje quedan literales, como las codifica el navegador.
	if !strings.Contains(link, "*2x%20Hoodie%20(Talla") {
		t.Fatalf("marks !'()* must stay literal: %q", link)
	}
}
