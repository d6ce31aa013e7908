package models

// Session représente l'état d'authentification du visiteur courant.
// Créée en isLoading=true au démarrage, résolue une seule fois depuis
// le stockage persistant, puis mutée uniquement par login/logout.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user"`
	Token           string `json:"token,omitempty"`
	IsLoading       bool   `json:"isLoading"`
}
