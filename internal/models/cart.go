package models

// CartItem es una línea del carrito: una copia del producto tal como
// estaba al momento de agregarlo, más cantidad y talla opcional.
// La identidad de la línea es el par (ID, SelectedSize).
type CartItem struct {
	Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// Matches indica si la línea corresponde al par (productID, size).
// Una talla vacía sólo coincide con una talla vacía.
func (i CartItem) Matches(productID, size string) bool {
	return i.ID == productID && i.SelectedSize == size
}

// LineTotal es el subtotal de la línea.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
