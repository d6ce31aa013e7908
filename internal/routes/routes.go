package routes

import (
	"cedra_front_end/internal/handlers"
	"cedra_front_end/internal/middleware"
	"cedra_front_end/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, store *session.Store) {
	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.GetSession)
		auth.POST("/return-to", h.RememberReturnTo)
	}

	// Panier — local, accessible aussi en mode invité
	cart := api.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/add", h.AddToCart)
		cart.POST("/pending", h.RememberPendingItem)
		cart.PUT("/quantity", h.UpdateQuantity)
		cart.DELETE("/clear", h.ClearCart)
		cart.DELETE("/item/:productId", h.RemoveFromCart)
		cart.POST("/sync", middleware.RequireSession(store), h.SyncCart)
	}

	// Liste d'envies — locale pour les invités, synchronisée si connecté
	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/toggle", h.ToggleWishlist)
		wishlist.POST("/refresh", middleware.RequireSession(store), h.RefreshWishlist)
		wishlist.DELETE("/clear", h.ClearWishlist)
	}

	// Catalogue
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)

	// Adresses et commandes — session requise
	authed := api.Group("", middleware.RequireSession(store))
	{
		authed.GET("/addresses", h.ListAddresses)
		authed.POST("/addresses", h.CreateAddress)
		authed.PUT("/addresses/:id", h.UpdateAddress)
		authed.DELETE("/addresses/:id", h.DeleteAddress)

		authed.GET("/orders", h.GetMyOrders)
		authed.GET("/orders/:id", h.GetOrderByID)

		authed.POST("/checkout", h.Checkout)
	}

	// Administration des commandes
	admin := api.Group("/admin", middleware.RequireSession(store), middleware.RequireAdmin(store))
	{
		admin.GET("/orders", h.AdminListOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
	}

	// Synchronisation temps réel vers l'UI
	api.GET("/sync/ws", h.SyncWebSocket)
}
