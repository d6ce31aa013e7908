package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired décode le JWT stocké localement SANS vérifier la
// signature — seul le backend est juge de la validité — et regarde
// uniquement l'expiration, pour éviter de restaurer une session dont le
// token sera de toute façon refusé. Un token sans claim exp n'est
// jamais considéré expiré localement.
func TokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		// Illisible = inutilisable, on le traite comme expiré.
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
