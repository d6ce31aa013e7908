package handlers

import (
	"cedra_front_end/internal/api"
	"cedra_front_end/internal/session"
)

// Handler porte les dépendances des pages : le store de session (source
// de vérité locale) et l'adaptateur API backend. Construit une seule
// fois au démarrage et injecté — pas d'état global.
type Handler struct {
	Store *session.Store
	API   *api.Client
}

func New(store *session.Store, client *api.Client) *Handler {
	return &Handler{Store: store, API: client}
}
