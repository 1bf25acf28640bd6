package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/NigthMare10/jlv-disenos/internal/checkout"
	"github.com/NigthMare10/jlv-disenos/internal/middleware"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

type CheckoutHandler struct {
	sessions       sessions.Store
	persister      store.CartPersister
	whatsappNumber string
}

func NewCheckoutHandler(sessionStore sessions.Store, persister store.CartPersister, whatsappNumber string) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:       sessionStore,
		persister:      persister,
		whatsappNumber: whatsappNumber,
	}
}

// Checkout arma el resumen del pedido y el deep link de WhatsApp. Con el
// carrito vacío no hay nada que formatear: 400.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cartID, err := middleware.CartID(h.sessions, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open session"})
		return
	}

	cart := store.NewCartStore(h.persister, cartID)
	items := cart.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	message := checkout.Message(items)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"url":     checkout.Link(h.whatsappNumber, message),
		"total":   cart.Total(),
	})
}
