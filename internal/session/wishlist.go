package session

import (
	"context"
	"encoding/json"
	"log"
	"slices"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
)

// ToggleWishlist ajoute ou retire le produit (et sa variante éventuelle)
// de la liste d'envies. La mutation locale est optimiste : mémoire et
// miroir sont écrits avant l'appel serveur. Pour un utilisateur
// connecté, un échec réseau restaure l'instantané pré-toggle et renvoie
// l'erreur à l'appelant ; en mode invité la mutation locale est l'état
// final. Renvoie true si l'article vient d'être ajouté.
//
// Deux toggles rapprochés sur la même clé ne se bloquent pas : chaque
// appel prend un numéro de séquence et la réponse d'un appel dépassé
// est ignorée, l'état appartient au toggle le plus récent.
func (s *Store) ToggleWishlist(ctx context.Context, product *models.Product, variantModel *models.VariantModel, variantColor *models.VariantColor) (added bool, err error) {
	item := buildWishlistItem(product, variantModel, variantColor)
	key := item.Key()

	var (
		snapshot      []models.WishlistItem
		seq           uint64
		authenticated bool
	)

	op := optimisticOp{
		apply: func() {
			snapshot = slices.Clone(s.wishlist)
			authenticated = s.sess.IsAuthenticated

			s.toggleSeq[key]++
			seq = s.toggleSeq[key]

			exists := slices.ContainsFunc(s.wishlist, func(i models.WishlistItem) bool {
				return i.Key() == key
			})
			if exists {
				s.wishlist = slices.DeleteFunc(s.wishlist, func(i models.WishlistItem) bool {
					return i.Key() == key
				})
			} else {
				s.wishlist = append(s.wishlist, item)
				added = true
			}

			s.persistWishlistLocked()
			s.notifyLocked(EventWishlist)
		},
		revert: func() {
			s.wishlist = snapshot
			s.persistWishlistLocked()
			s.notifyLocked(EventWishlist)
		},
		current: func() bool {
			return s.toggleSeq[key] == seq
		},
	}

	// L'effet distant n'est décidé qu'après la mutation locale, une fois
	// connus le sens du toggle et le mode de la session.
	op.remote = func() error {
		s.mu.Lock()
		backend := s.backend
		s.mu.Unlock()

		if !authenticated || backend == nil {
			// Invité : la liste d'envies est purement locale.
			return nil
		}
		if added {
			return backend.AddWishlistItem(ctx, item.ProductID, item.ModelID, item.ColorID)
		}
		return backend.RemoveWishlistItem(ctx, item.ProductID, item.ModelID, item.ColorID)
	}

	if err := s.run(op); err != nil {
		log.Printf("❌ Synchro liste d'envies échouée pour %s, état restauré: %v", item.ProductID, err)
		return !added, err
	}
	return added, nil
}

// ReplaceWishlist écrase la liste d'envies entière depuis un instantané
// serveur (pages dédiées). Pas de sémantique de rollback : ce flux
// n'est pas optimiste.
func (s *Store) ReplaceWishlist(items []models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist = slices.Clone(items)
	s.persistWishlistLocked()
	s.notifyLocked(EventWishlist)
}

// RefreshWishlistFromServer remplace la liste locale par la version serveur.
func (s *Store) RefreshWishlistFromServer(ctx context.Context) error {
	s.mu.Lock()
	backend := s.backend
	authenticated := s.sess.IsAuthenticated
	s.mu.Unlock()

	if backend == nil || !authenticated {
		return ErrNotAuthenticated
	}

	items, err := backend.FetchWishlist(ctx)
	if err != nil {
		log.Printf("⚠️ Rafraîchissement liste d'envies échoué: %v", err)
		return err
	}

	s.ReplaceWishlist(items)
	return nil
}

// Wishlist renvoie une copie de la liste d'envies courante.
func (s *Store) Wishlist() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.wishlist)
}

// InWishlist teste l'appartenance par le triplet complet
// (product_id, model_id, color_id), jamais par product_id seul.
func (s *Store) InWishlist(key models.WishlistKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.wishlist, func(i models.WishlistItem) bool {
		return i.Key() == key
	})
}

// buildWishlistItem construit l'entrée depuis le produit et la variante
// choisie, avec les chaînes de repli prix et image.
func buildWishlistItem(product *models.Product, variantModel *models.VariantModel, variantColor *models.VariantColor) models.WishlistItem {
	item := models.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
	}

	if variantModel != nil {
		id := variantModel.ID
		item.ModelID = &id
	}
	if variantColor != nil {
		id := variantColor.ID
		item.ColorID = &id
	}

	// Prix : couleur choisie, sinon première couleur du modèle, sinon produit.
	switch {
	case variantColor != nil && variantColor.Price > 0:
		item.Price = variantColor.Price
	case variantModel != nil && len(variantModel.Colors) > 0 && variantModel.Colors[0].Price > 0:
		item.Price = variantModel.Colors[0].Price
	default:
		item.Price = product.Price
	}

	// Image : produit, sinon première image de la couleur choisie, sinon
	// première image du produit.
	switch {
	case product.Image != "":
		item.Image = product.Image
	case variantColor != nil && len(variantColor.Images) > 0:
		item.Image = variantColor.Images[0]
	case len(product.Images) > 0:
		item.Image = product.Images[0]
	}

	return item
}

// persistWishlistLocked écrit le miroir de la liste d'envies. Appelé
// sous verrou.
func (s *Store) persistWishlistLocked() {
	raw, err := json.Marshal(s.wishlist)
	if err != nil {
		log.Printf("⚠️ Échec encodage liste d'envies: %v", err)
		return
	}
	if err := s.storage.Set(storage.KeyWishlist, string(raw)); err != nil {
		log.Printf("⚠️ Échec persistance liste d'envies: %v", err)
	}
}
