package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🔍 GET /api/products — proxy du catalogue backend
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.API.FetchProducts(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		log.Printf("❌ Erreur récupération catalogue: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalogue inaccessible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// 🔍 GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.API.FetchProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
