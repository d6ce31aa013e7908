package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// --- HANDLERS ADRESSES (proxy backend, session requise) ---
//

// 🔍 GET /api/addresses
func (h *Handler) ListAddresses(c *gin.Context) {
	addresses, err := h.API.FetchAddresses(c.Request.Context())
	if err != nil {
		log.Printf("❌ Erreur récupération adresses: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Adresses inaccessibles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// 🟢 POST /api/addresses
func (h *Handler) CreateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	created, err := h.API.CreateAddress(c.Request.Context(), addr)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Création d'adresse impossible"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"address": created})
}

// 🔁 PUT /api/addresses/:id
func (h *Handler) UpdateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	addr.ID = c.Param("id")

	if err := h.API.UpdateAddress(c.Request.Context(), addr); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Mise à jour d'adresse impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse mise à jour"})
}

// ❌ DELETE /api/addresses/:id
func (h *Handler) DeleteAddress(c *gin.Context) {
	if err := h.API.DeleteAddress(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Suppression d'adresse impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse supprimée"})
}
