package session

import "errors"

var (
	// ErrNotAuthenticated : opération réservée à une session connectée.
	ErrNotAuthenticated = errors.New("session non authentifiée")
	// ErrItemNotFound : aucune ligne du panier ne porte cette clé d'identité.
	ErrItemNotFound = errors.New("article introuvable dans le panier")
	// ErrEmptyCart : le checkout exige au moins une ligne.
	ErrEmptyCart = errors.New("le panier est vide")
)
