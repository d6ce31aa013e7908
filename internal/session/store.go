package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
	"cedra_front_end/internal/utils"
)

// Backend regroupe les appels de synchronisation consommés par le store.
// Implémenté par api.Client ; l'API backend reste propriétaire de toute
// la logique métier.
type Backend interface {
	FetchCart(ctx context.Context) ([]models.CartItem, error)
	AddWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error
	RemoveWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error
	FetchWishlist(ctx context.Context) ([]models.WishlistItem, error)
	ClearWishlist(ctx context.Context) error
}

// Store est la source de vérité unique de la session de navigation :
// authentification, panier et liste d'envies. La mémoire fait foi, le
// stockage persistant n'est qu'un miroir écrit après chaque mutation.
type Store struct {
	mu       sync.Mutex
	sess     models.Session
	cart     []models.CartItem
	wishlist []models.WishlistItem

	storage storage.Store
	backend Backend

	// epoch est incrémenté à chaque logout : une réconciliation encore
	// en vol dont l'epoch ne correspond plus est simplement jetée.
	epoch uint64

	// toggleSeq attribue un numéro de séquence par clé d'identité de la
	// liste d'envies : la réponse réseau d'un toggle dépassé par un
	// toggle plus récent sur la même clé est ignorée.
	toggleSeq map[models.WishlistKey]uint64

	subscribers map[int]chan Event
	nextSubID   int
}

// New crée le store en état "chargement" : aucune page dépendante ne
// doit rendre avant Hydrate.
func New(st storage.Store) *Store {
	return &Store{
		sess:        models.Session{IsLoading: true},
		storage:     st,
		toggleSeq:   make(map[models.WishlistKey]uint64),
		subscribers: make(map[int]chan Event),
	}
}

// AttachBackend relie le store à l'adaptateur API. Appelé une seule
// fois au démarrage, avant Hydrate.
func (s *Store) AttachBackend(b Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = b
}

// Hydrate résout la session depuis le stockage persistant. Toute erreur
// est avalée (journalisée) : l'UI ne doit jamais rester bloquée sur un
// échec d'initialisation, isLoading est toujours levé.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()

	defer func() {
		s.sess.IsLoading = false
		s.notifyLocked(EventSession)
		s.mu.Unlock()
	}()

	token, _ := s.storage.Get(storage.KeyToken)
	user := s.readUserLocked()

	s.cart = s.readCartLocked()
	s.wishlist = s.readWishlistLocked()

	if token == "" || user == nil {
		// Mode invité : panier et liste d'envies restent locaux.
		s.sess = models.Session{IsLoading: true}
		return
	}

	if utils.TokenExpired(token) {
		log.Println("🗑️ Token expiré trouvé dans le stockage, session invité")
		_ = s.storage.Delete(storage.KeyToken)
		_ = s.storage.Delete(storage.KeyUser)
		s.sess = models.Session{IsLoading: true}
		return
	}

	s.sess = models.Session{
		IsAuthenticated: true,
		User:            user,
		Token:           token,
		IsLoading:       true,
	}

	// Le panier serveur fait autorité pour un utilisateur connecté ; la
	// récupération est asynchrone et son échec laisse le panier local intact.
	go s.reconcileAsync(ctx)

	log.Printf("✅ Session restaurée pour %s", user.Email)
}

// Login persiste le token et le profil, bascule la session en mode
// connecté et déclenche la réconciliation du panier. Renvoie la page de
// destination : celle mémorisée avant la redirection login, sinon l'accueil.
// Le login réussit même si la synchronisation serveur échoue.
func (s *Store) Login(token string, user *models.User) (redirect string) {
	s.mu.Lock()

	if err := s.storage.Set(storage.KeyToken, token); err != nil {
		log.Printf("⚠️ Échec persistance token: %v", err)
	}
	if raw, err := json.Marshal(user); err == nil {
		if err := s.storage.Set(storage.KeyUser, string(raw)); err != nil {
			log.Printf("⚠️ Échec persistance utilisateur: %v", err)
		}
	}

	s.sess = models.Session{
		IsAuthenticated: true,
		User:            user,
		Token:           token,
	}

	redirect = "/"
	if target, ok := s.storage.Get(storage.KeyReturnAfterLogin); ok && target != "" {
		redirect = target
		_ = s.storage.Delete(storage.KeyReturnAfterLogin)
	}

	epoch := s.epoch
	s.notifyLocked(EventSession)
	s.mu.Unlock()

	go func() {
		s.reconcileAsync(context.Background())
		s.applyPendingCartItem(epoch)
	}()

	log.Printf("✅ Connexion de %s", user.Email)
	return redirect
}

// Logout purge session, panier, liste d'envies et clés transitoires,
// puis repasse en mode invité. Renvoie la page de login. L'epoch est
// incrémenté pour que toute réconciliation encore en vol soit jetée.
func (s *Store) Logout() (redirect string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++

	for _, key := range []string{
		storage.KeyToken, storage.KeyUser, storage.KeyCart, storage.KeyWishlist,
		storage.KeyPendingCartItem, storage.KeyReturnAfterLogin,
	} {
		_ = s.storage.Delete(key)
	}

	s.sess = models.Session{}
	s.cart = nil
	s.wishlist = nil

	s.notifyLocked(EventSession)
	s.notifyLocked(EventCart)
	s.notifyLocked(EventWishlist)

	log.Println("✅ Déconnexion, session invité")
	return "/login"
}

// --- Accesseurs dérivés ---

// Session renvoie une copie de l'état d'authentification courant.
func (s *Store) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.IsAuthenticated
}

// IsAdmin est dérivé du rôle, jamais stocké.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.User.IsAdmin()
}

func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.User
}

// Token renvoie le token courant ("" en mode invité). Passé en closure
// à l'adaptateur API pour que chaque appel porte le token du moment.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Token
}

// --- Clés transitoires "reprendre après login" ---

// RememberReturnTo mémorise la page à rouvrir après authentification.
func (s *Store) RememberReturnTo(target string) {
	if err := s.storage.Set(storage.KeyReturnAfterLogin, target); err != nil {
		log.Printf("⚠️ Échec persistance returnAfterLogin: %v", err)
	}
}

// RememberPendingCartItem mémorise l'article qu'un invité tentait
// d'ajouter quand un flux authentifié l'a interrompu.
func (s *Store) RememberPendingCartItem(item models.CartItem) {
	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err := s.storage.Set(storage.KeyPendingCartItem, string(raw)); err != nil {
		log.Printf("⚠️ Échec persistance pendingCartItem: %v", err)
	}
}

// applyPendingCartItem rejoue l'ajout mémorisé, après la réconciliation
// pour qu'il ne soit pas écrasé par le panier serveur. L'epoch garantit
// qu'un logout survenu entre-temps annule le rejeu.
func (s *Store) applyPendingCartItem(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || !s.sess.IsAuthenticated {
		return
	}

	raw, ok := s.storage.Get(storage.KeyPendingCartItem)
	if !ok || raw == "" {
		return
	}
	_ = s.storage.Delete(storage.KeyPendingCartItem)

	var item models.CartItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		log.Printf("⚠️ pendingCartItem illisible, ignoré: %v", err)
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mergeCartItemLocked(item)
	s.persistCartLocked()
	s.notifyLocked(EventCart)
	log.Printf("✅ Article en attente ajouté au panier: %s", item.ProductID)
}

// --- Lecture du miroir (appelé sous verrou, une seule fois au démarrage) ---

func (s *Store) readUserLocked() *models.User {
	raw, ok := s.storage.Get(storage.KeyUser)
	if !ok || raw == "" {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("⚠️ Utilisateur stocké illisible: %v", err)
		return nil
	}
	return &user
}

func (s *Store) readCartLocked() []models.CartItem {
	raw, ok := s.storage.Get(storage.KeyCart)
	if !ok || raw == "" {
		return nil
	}
	var cart []models.CartItem
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Printf("⚠️ Panier stocké illisible, panier vide: %v", err)
		return nil
	}
	return cart
}

func (s *Store) readWishlistLocked() []models.WishlistItem {
	raw, ok := s.storage.Get(storage.KeyWishlist)
	if !ok || raw == "" {
		return nil
	}
	var wishlist []models.WishlistItem
	if err := json.Unmarshal([]byte(raw), &wishlist); err != nil {
		log.Printf("⚠️ Liste d'envies stockée illisible, liste vide: %v", err)
		return nil
	}
	return wishlist
}
