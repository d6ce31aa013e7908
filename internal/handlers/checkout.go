package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/api"

	"github.com/gin-gonic/gin"
)

// 🟢 POST /api/checkout
// Le backend possède tout le paiement ; le client envoie son panier
// local et ne vide celui-ci qu'une fois la commande confirmée.
func (h *Handler) Checkout(c *gin.Context) {
	var input struct {
		ShippingAddress string `json:"shipping_address_id" binding:"required"`
		BillingAddress  string `json:"billing_address_id"`
		CouponCode      string `json:"coupon_code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items := h.Store.Cart()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})
		return
	}

	result, err := h.API.Checkout(c.Request.Context(), api.CheckoutRequest{
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		CouponCode:      input.CouponCode,
	})
	if err != nil {
		log.Printf("❌ Checkout échoué: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commande impossible, panier conservé"})
		return
	}

	// Commande confirmée côté serveur : le panier local peut être vidé.
	h.Store.ClearCart()

	log.Printf("✅ Commande %s créée", result.OrderID)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Commande créée",
		"order_id":    result.OrderID,
		"payment_url": result.PaymentURL,
	})
}
