package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NigthMare10/jlv-disenos/internal/cache"
	"github.com/NigthMare10/jlv-disenos/internal/models"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

type AdminProductHandler struct {
	catalog *store.CatalogStore
	cache   *cache.Cache
}

func NewAdminProductHandler(catalog *store.CatalogStore, productCache *cache.Cache) *AdminProductHandler {
	return &AdminProductHandler{
		catalog: catalog,
		cache:   productCache,
	}
}

// CreateProduct da de alta un producto a partir del borrador.
func (h *AdminProductHandler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, store.ErrInvalidDraft) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	h.cache.DeleteByPrefix("product")
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza parcialmente un producto. Un id desconocido en
// el almacén remoto no es un error: se registra y se sigue.
func (h *AdminProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.Update(c.Request.Context(), productID, patch); err != nil {
		if errors.Is(err, store.ErrInvalidDraft) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	h.cache.DeleteByPrefix("product")
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct elimina un producto del catálogo.
func (h *AdminProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.catalog.Delete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	h.cache.DeleteByPrefix("product")
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

type bulkPriceRequest struct {
	Percentage *float64 `json:"percentage" binding:"required"`
}

// BulkAdjustPrice aplica un delta porcentual al precio de todos los
// productos. Un porcentaje de cero se rechaza antes de tocar el catálogo.
func (h *AdminProductHandler) BulkAdjustPrice(c *gin.Context) {
	var req bulkPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Percentage == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percentage must not be zero"})
		return
	}

	adjusted, err := h.catalog.BulkAdjustPrice(c.Request.Context(), *req.Percentage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to adjust prices"})
		return
	}

	h.cache.DeleteByPrefix("product")
	c.JSON(http.StatusOK, gin.H{"adjusted": adjusted})
}
