package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

// 🔍 GET /api/cart — lecture purement locale
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.Store.Cart(),
		"total": h.Store.CartTotal(),
		"count": h.Store.CartCount(),
	})
}

// 🟢 POST /api/cart/add — mutation locale, jamais d'appel serveur
func (h *Handler) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if item.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit manquant"})
		return
	}
	if item.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	h.Store.AddToCart(item)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   h.Store.Cart(),
	})
}

// ❌ DELETE /api/cart/item/:productId?color=...&model=...
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")
	color := c.Query("color")
	model := c.Query("model")

	h.Store.RemoveFromCart(productID, color, model)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   h.Store.Cart(),
	})
}

// 🔁 PUT /api/cart/quantity
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Color     string `json:"color"`
		Model     string `json:"model"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.Store.UpdateQuantity(input.ProductID, input.Color, input.Model, input.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable dans le panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantité mise à jour",
		"items":   h.Store.Cart(),
	})
}

// 🧹 DELETE /api/cart/clear
func (h *Handler) ClearCart(c *gin.Context) {
	h.Store.ClearCart()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// 🔁 POST /api/cart/sync — réconciliation explicite avec le serveur
func (h *Handler) SyncCart(c *gin.Context) {
	if err := h.Store.ReconcileCartFromServer(c.Request.Context()); err != nil {
		log.Printf("⚠️ Synchro panier demandée par l'UI échouée: %v", err)
		// Le panier local est conservé tel quel : pas d'écrasement partiel.
		c.JSON(http.StatusOK, gin.H{
			"message": "Synchronisation impossible, panier local conservé",
			"synced":  false,
			"items":   h.Store.Cart(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier synchronisé",
		"synced":  true,
		"items":   h.Store.Cart(),
	})
}

// 🟢 POST /api/cart/pending — mémorise l'ajout interrompu d'un invité
func (h *Handler) RememberPendingItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	h.Store.RememberPendingCartItem(item)
	c.JSON(http.StatusOK, gin.H{"message": "Article mémorisé, il sera ajouté après connexion"})
}
