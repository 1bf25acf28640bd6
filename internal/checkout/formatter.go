package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

const (
	greeting = "Hola JLV, me gustaría realizar el siguiente pedido:"
	closing  = "Quedo atento para coordinar el pago y envío."
)

// Message arma el resumen del pedido: una línea por artículo con cantidad,
// título, talla opcional y subtotal, más la línea de total y la despedida.
// Es una función pura; el llamador decide no invocarla con carrito vacío.
func Message(items []models.CartItem) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	var total float64
	for _, item := range items {
		sizeInfo := ""
		if item.SelectedSize != "" {
			sizeInfo = fmt.Sprintf(" (Talla: %s)", item.SelectedSize)
		}
		lineTotal := item.LineTotal()
		total += lineTotal
		fmt.Fprintf(&b, "- *%dx %s%s* (L. %.2f)\n", item.Quantity, item.Title, sizeInfo, lineTotal)
	}

	fmt.Fprintf(&b, "\n*TOTAL: L. %.2f*\n\n%s", total, closing)
	return b.String()
}

// messageEscaper ajusta la salida de QueryEscape: espacios como %20 y las
// marcas !'()* sin escapar, que es como el navegador codifica el texto del
// enlace. Así el deep link queda idéntico byte a byte.
var messageEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeMessage(message string) string {
	return messageEscaper.Replace(url.QueryEscape(message))
}

// Link construye el deep link de WhatsApp con el mensaje ya codificado.
// No hace ninguna llamada de red; abrir el enlace es cosa del cliente.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, escapeMessage(message))
}
