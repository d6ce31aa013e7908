package session

import (
	"context"
	"encoding/json"
	"log"
	"slices"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
)

// Le panier est avant tout local : aucune des opérations ci-dessous ne
// touche le réseau. Seule la réconciliation interroge le serveur.

// AddToCart fusionne l'article dans le panier : si la clé d'identité
// (product_id, color, model) existe déjà la quantité s'additionne,
// sinon la ligne est ajoutée. color/model absents sont normalisés à "".
func (s *Store) AddToCart(item models.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mergeCartItemLocked(item)
	s.persistCartLocked()
	s.notifyLocked(EventCart)
}

// mergeCartItemLocked applique la règle d'unicité de la clé d'identité.
// Appelé sous verrou.
func (s *Store) mergeCartItemLocked(item models.CartItem) {
	key := item.Key()
	for i := range s.cart {
		if s.cart[i].Key() == key {
			s.cart[i].Quantity += item.Quantity
			return
		}
	}
	s.cart = append(s.cart, item)
}

// RemoveFromCart retire la ligne portant la clé d'identité donnée.
func (s *Store) RemoveFromCart(productID, color, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.CartKey{ProductID: productID, Color: color, Model: model}
	s.cart = slices.DeleteFunc(s.cart, func(i models.CartItem) bool {
		return i.Key() == key
	})

	s.persistCartLocked()
	s.notifyLocked(EventCart)
}

// UpdateQuantity fixe la quantité de la ligne correspondante. Aucune
// borne n'est appliquée ici : le clamp éventuel appartient à l'UI.
func (s *Store) UpdateQuantity(productID, color, model string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.CartKey{ProductID: productID, Color: color, Model: model}
	for i := range s.cart {
		if s.cart[i].Key() == key {
			s.cart[i].Quantity = quantity
			s.persistCartLocked()
			s.notifyLocked(EventCart)
			return nil
		}
	}
	return ErrItemNotFound
}

// ClearCart vide le panier et supprime la copie persistée. Idempotent.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	if err := s.storage.Delete(storage.KeyCart); err != nil {
		log.Printf("⚠️ Échec suppression panier persisté: %v", err)
	}
	s.notifyLocked(EventCart)
}

// ReplaceCart écrase le panier entier : mémoire d'abord, miroir ensuite.
// Utilisé par les flux de synchronisation en masse.
func (s *Store) ReplaceCart(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = slices.Clone(items)
	s.persistCartLocked()
	s.notifyLocked(EventCart)
}

// ReconcileCartFromServer remplace le panier local par le panier
// serveur, qui fait autorité pour un utilisateur connecté. En cas
// d'échec (réseau ou success=false) le panier local reste intact —
// jamais d'écrasement partiel. Une réponse arrivant après un logout
// est jetée.
func (s *Store) ReconcileCartFromServer(ctx context.Context) error {
	s.mu.Lock()
	backend := s.backend
	epoch := s.epoch
	authenticated := s.sess.IsAuthenticated
	s.mu.Unlock()

	if backend == nil || !authenticated {
		return ErrNotAuthenticated
	}

	items, err := backend.FetchCart(ctx)
	if err != nil {
		log.Printf("⚠️ Réconciliation panier échouée, panier local conservé: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		log.Println("🗑️ Réponse de réconciliation arrivée après logout, ignorée")
		return nil
	}

	s.cart = items
	s.persistCartLocked()
	s.notifyLocked(EventCart)

	log.Printf("✅ Panier réconcilié depuis le serveur (%d lignes)", len(items))
	return nil
}

// reconcileAsync est la variante "fire and forget" utilisée par
// Hydrate et Login : l'échec est déjà journalisé, on ne le propage pas.
func (s *Store) reconcileAsync(ctx context.Context) {
	_ = s.ReconcileCartFromServer(ctx)
}

// Cart renvoie une copie du panier courant.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cart)
}

// CartCount renvoie le nombre de lignes du panier.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// CartTotal renvoie le total affiché du panier.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// persistCartLocked écrit le miroir du panier. Appelé sous verrou ; un
// échec d'écriture du miroir n'invalide pas la mutation mémoire.
func (s *Store) persistCartLocked() {
	raw, err := json.Marshal(s.cart)
	if err != nil {
		log.Printf("⚠️ Échec encodage panier: %v", err)
		return
	}
	if err := s.storage.Set(storage.KeyCart, string(raw)); err != nil {
		log.Printf("⚠️ Échec persistance panier: %v", err)
	}
}
