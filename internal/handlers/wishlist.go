package handlers

import (
	"net/http"

	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

// 🔍 GET /api/wishlist — lecture purement locale
func (h *Handler) GetWishlist(c *gin.Context) {
	items := h.Store.Wishlist()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// ⭐ POST /api/wishlist/toggle
// La mutation locale est optimiste ; si la synchro serveur échoue,
// l'état d'avant le toggle est restauré et l'erreur remonte à l'UI.
func (h *Handler) ToggleWishlist(c *gin.Context) {
	var input struct {
		Product      models.Product       `json:"product" binding:"required"`
		VariantModel *models.VariantModel `json:"variant_model"`
		VariantColor *models.VariantColor `json:"variant_color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit manquant"})
		return
	}

	added, err := h.Store.ToggleWishlist(c.Request.Context(), &input.Product, input.VariantModel, input.VariantColor)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Synchronisation de la liste d'envies impossible, réessayez",
			"items": h.Store.Wishlist(),
		})
		return
	}

	message := "Produit retiré de la liste d'envies"
	if added {
		message = "Produit ajouté à la liste d'envies"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"added":   added,
		"items":   h.Store.Wishlist(),
	})
}

// 🔁 POST /api/wishlist/refresh — remplace la liste locale par la
// version serveur (page liste d'envies dédiée)
func (h *Handler) RefreshWishlist(c *gin.Context) {
	if err := h.Store.RefreshWishlistFromServer(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Liste d'envies serveur inaccessible"})
		return
	}

	items := h.Store.Wishlist()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// 🧹 DELETE /api/wishlist/clear — serveur d'abord, local ensuite
func (h *Handler) ClearWishlist(c *gin.Context) {
	if h.Store.IsAuthenticated() {
		if err := h.API.ClearWishlist(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Vidage côté serveur impossible"})
			return
		}
	}

	h.Store.ReplaceWishlist(nil)
	c.JSON(http.StatusOK, gin.H{"message": "Liste d'envies vidée"})
}
