package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/NigthMare10/jlv-disenos/internal/cache"
	"github.com/NigthMare10/jlv-disenos/internal/config"
	"github.com/NigthMare10/jlv-disenos/internal/handlers"
	"github.com/NigthMare10/jlv-disenos/internal/middleware"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

func RegisterRoutes(router *gin.Engine, catalog *store.CatalogStore, persister store.CartPersister, sessionStore sessions.Store, cfg *config.Config) {
	productCache := cache.New(5 * time.Minute)
	// Cualquier cambio en el catálogo (push remoto o escritura local)
	// invalida las lecturas cacheadas.
	catalog.OnReplace(func() {
		productCache.DeleteByPrefix("product")
	})

	products := handlers.NewProductHandler(catalog, productCache)
	adminProducts := handlers.NewAdminProductHandler(catalog, productCache)
	cart := handlers.NewCartHandler(catalog, sessionStore, persister)
	checkout := handlers.NewCheckoutHandler(sessionStore, persister, cfg.WhatsAppNumber)
	auth := handlers.NewAuthHandler(sessionStore, cfg.AdminPINHash)

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", products.ListProducts)
		v1.GET("/products/:id", products.GetProduct)

		v1.GET("/cart", cart.GetCart)
		v1.POST("/cart/items", cart.AddItem)
		v1.PATCH("/cart/items", cart.SetQuantity)
		v1.DELETE("/cart/items", cart.RemoveItem)
		v1.DELETE("/cart", cart.ClearCart)

		v1.POST("/checkout", checkout.Checkout)

		v1.POST("/admin/login", loginLimiter.Middleware(), auth.Login)
		v1.POST("/admin/logout", auth.Logout)

		admin := v1.Group("/admin", middleware.RequireAdmin(sessionStore))
		{
			admin.POST("/products", adminProducts.CreateProduct)
			admin.PATCH("/products/:id", adminProducts.UpdateProduct)
			admin.DELETE("/products/:id", adminProducts.DeleteProduct)
			admin.POST("/products/bulk-price", adminProducts.BulkAdjustPrice)
		}
	}
}
