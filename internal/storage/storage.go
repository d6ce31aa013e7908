package storage

// Clés persistantes du miroir local. La mémoire est la source de
// vérité : chaque mutation écrit la mémoire d'abord, puis le miroir ;
// au démarrage le miroir n'est lu qu'une seule fois.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyClientID = "clientId"

	// Clés transitoires des flux "reprendre après login", purgées au logout.
	KeyPendingCartItem  = "pendingCartItem"
	KeyReturnAfterLogin = "returnAfterLogin"
)

// Store est l'équivalent du localStorage navigateur : un simple
// clé/valeur persistant. Une valeur absente est renvoyée comme ("", false),
// jamais comme une erreur.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}
