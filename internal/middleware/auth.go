package middleware

import (
	"net/http"

	"cedra_front_end/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireSession garde les pages qui exigent un utilisateur connecté.
// L'état vient du store de session, pas d'un décodage de token : le
// backend reste seul juge de la validité du JWT.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "non authentifié",
				"redirect": "/login",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin vérifie que l'utilisateur connecté a le rôle "admin"
func RequireAdmin(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
