package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 🟢 POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	token, user, err := h.API.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		log.Printf("❌ Login refusé pour %s: %v", input.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	// Le login réussit même si la synchronisation du panier échoue ensuite.
	redirect := h.Store.Login(token, user)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Connexion réussie",
		"user":     user,
		"redirect": redirect,
	})
}

// 🟢 POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.API.Register(c.Request.Context(), input.Name, input.Email, input.Password); err != nil {
		log.Printf("❌ Inscription échouée pour %s: %v", input.Email, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Inscription impossible"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Compte créé, vous pouvez vous connecter"})
}

// ❌ POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	redirect := h.Store.Logout()
	c.JSON(http.StatusOK, gin.H{
		"message":  "Déconnexion réussie",
		"redirect": redirect,
	})
}

// 🔍 GET /api/auth/session — état rendu synchroniquement depuis la mémoire
func (h *Handler) GetSession(c *gin.Context) {
	sess := h.Store.Session()
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": sess.IsAuthenticated,
		"isLoading":       sess.IsLoading,
		"isAdmin":         sess.User.IsAdmin(),
		"user":            sess.User,
		"cartCount":       h.Store.CartCount(),
		"wishlistCount":   len(h.Store.Wishlist()),
	})
}

// 🟢 POST /api/auth/return-to — mémorise la page à rouvrir après login
func (h *Handler) RememberReturnTo(c *gin.Context) {
	var input struct {
		Target string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	h.Store.RememberReturnTo(input.Target)
	c.JSON(http.StatusOK, gin.H{"message": "Destination mémorisée"})
}
