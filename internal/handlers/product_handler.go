package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NigthMare10/jlv-disenos/internal/cache"
	"github.com/NigthMare10/jlv-disenos/internal/models"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

// catalogWait acota la espera por la primera carga del catálogo justo
// después del arranque antes de responder 503.
const catalogWait = 500 * time.Millisecond

type ProductHandler struct {
	catalog *store.CatalogStore
	cache   *cache.Cache
}

func NewProductHandler(catalog *store.CatalogStore, productCache *cache.Cache) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		cache:   productCache,
	}
}

func (h *ProductHandler) catalogReady() bool {
	select {
	case <-h.catalog.Ready():
		return true
	case <-time.After(catalogWait):
		return false
	}
}

// ListProducts lista el catálogo (con caché). Filtro opcional por
// categoría y orden opcional por más vendidos.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if !h.catalogReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is still loading"})
		return
	}

	category := c.Query("category")
	sortBy := c.DefaultQuery("sort", "newest")

	cacheKey := fmt.Sprintf("products:list:cat:%s:sort:%s", category, sortBy)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	var products []models.Product
	switch {
	case category != "":
		products = h.catalog.ListByCategory(category)
	case sortBy == "sold":
		products = h.catalog.ListBySold()
	default:
		products = h.catalog.List()
	}

	response := gin.H{
		"products": products,
		"total":    len(products),
	}
	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GetProduct obtiene un producto por id (con caché).
func (h *ProductHandler) GetProduct(c *gin.Context) {
	if !h.catalogReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is still loading"})
		return
	}

	productID := c.Param("id")
	cacheKey := "product:" + productID

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}
