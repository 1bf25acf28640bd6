package store

import (
	"go.uber.org/zap"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

// CartPersister guarda y recupera el carrito completo de una sesión.
type CartPersister interface {
	Load(cartID string) []models.CartItem
	Save(cartID string, items []models.CartItem) error
}

// CartStore es el carrito de una sesión. Cada mutación serializa el
// carrito completo a través del persister; la hidratación tolerante ya
// ocurrió en Load (datos corruptos equivalen a carrito vacío).
type CartStore struct {
	persister CartPersister
	cartID    string
	items     []models.CartItem
}

func NewCartStore(persister CartPersister, cartID string) *CartStore {
	return &CartStore{
		persister: persister,
		cartID:    cartID,
		items:     persister.Load(cartID),
	}
}

// Add agrega el producto al carrito. Si ya existe una línea con el mismo
// par (id, talla) se suma la cantidad; si no, se agrega una línea nueva
// con una copia del producto tal como está ahora.
func (c *CartStore) Add(product models.Product, quantity int, selectedSize string) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Matches(product.ID, selectedSize) {
			c.items[i].Quantity += quantity
			c.flush()
			return
		}
	}
	snapshot := product
	snapshot.Sizes = append([]string(nil), product.Sizes...)
	c.items = append(c.items, models.CartItem{
		Product:      snapshot,
		Quantity:     quantity,
		SelectedSize: selectedSize,
	})
	c.flush()
}

// Remove elimina la línea que coincide exactamente con el par (id, talla).
// Las demás líneas, incluida la del mismo producto con otra talla, quedan
// intactas.
func (c *CartStore) Remove(productID, selectedSize string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Matches(productID, selectedSize) {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.flush()
}

// SetQuantity fija la cantidad de una línea. Cantidades menores a 1 se
// ignoran: la única vía de borrado es Remove.
func (c *CartStore) SetQuantity(productID string, quantity int, selectedSize string) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].Matches(productID, selectedSize) {
			c.items[i].Quantity = quantity
			c.flush()
			return
		}
	}
}

// Clear vacía el carrito.
func (c *CartStore) Clear() {
	c.items = nil
	c.flush()
}

// Total es la suma de precio × cantidad, recalculada en cada llamada.
func (c *CartStore) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// Items devuelve una copia de las líneas del carrito.
func (c *CartStore) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CartStore) flush() {
	if err := c.persister.Save(c.cartID, c.items); err != nil {
		zap.S().Warnw("could not persist cart", "cart_id", c.cartID, "error", err)
	}
}
