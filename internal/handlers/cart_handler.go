package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/NigthMare10/jlv-disenos/internal/middleware"
	"github.com/NigthMare10/jlv-disenos/internal/models"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

type CartHandler struct {
	catalog   *store.CatalogStore
	sessions  sessions.Store
	persister store.CartPersister
}

func NewCartHandler(catalog *store.CatalogStore, sessionStore sessions.Store, persister store.CartPersister) *CartHandler {
	return &CartHandler{
		catalog:   catalog,
		sessions:  sessionStore,
		persister: persister,
	}
}

// sessionCart hidrata el carrito de la sesión actual.
func (h *CartHandler) sessionCart(c *gin.Context) (*store.CartStore, bool) {
	cartID, err := middleware.CartID(h.sessions, c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open session"})
		return nil, false
	}
	return store.NewCartStore(h.persister, cartID), true
}

func cartResponse(cart *store.CartStore) gin.H {
	items := cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items": items,
		"total": cart.Total(),
	}
}

// GetCart devuelve el carrito de la sesión con su total.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type addItemRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"omitempty,gte=1"`
	SelectedSize string `json:"selected_size"`
}

// AddItem agrega un producto al carrito. El producto se copia del catálogo
// tal como está ahora; cambios de precio posteriores no afectan la línea.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	if req.SelectedSize != "" && !hasSize(product, req.SelectedSize) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "size not available for this product"})
		return
	}

	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}
	cart.Add(product, req.Quantity, req.SelectedSize)
	c.JSON(http.StatusOK, cartResponse(cart))
}

func hasSize(p models.Product, size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type setQuantityRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selected_size"`
}

// SetQuantity fija la cantidad de una línea. Cantidades menores a 1 no
// cambian nada: borrar es trabajo de RemoveItem.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}
	cart.SetQuantity(req.ProductID, req.Quantity, req.SelectedSize)
	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveItem elimina la línea que coincide exactamente con (id, talla).
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}
	selectedSize := c.Query("selected_size")

	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}
	cart.Remove(productID, selectedSize)
	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart vacía el carrito de la sesión.
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}
	cart.Clear()
	c.JSON(http.StatusOK, cartResponse(cart))
}
