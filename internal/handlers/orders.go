package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🔍 GET /api/orders/mine
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders, err := h.API.FetchMyOrders(c.Request.Context())
	if err != nil {
		log.Printf("❌ Erreur récupération commandes: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commandes inaccessibles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// 🔍 GET /api/orders/:id
func (h *Handler) GetOrderByID(c *gin.Context) {
	order, err := h.API.FetchOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

//
// --- ADMINISTRATION DES COMMANDES (routes protégées par RequireAdmin) ---
//

// 🔍 GET /api/admin/orders
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.API.FetchAllOrders(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		log.Printf("❌ Erreur récupération commandes admin: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commandes inaccessibles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// 🔁 PUT /api/admin/orders/:id/status
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.API.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Mise à jour du statut impossible"})
		return
	}

	log.Printf("✅ Statut de la commande %s → %s", c.Param("id"), input.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour"})
}
