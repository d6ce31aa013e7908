package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
)

var lamp = models.Product{
	ID:       "P1",
	Name:     "Lampe de bureau",
	Price:    35,
	Category: "luminaires",
	Image:    "lamp.jpg",
}

func TestToggleWishlist(t *testing.T) {
	t.Parallel()

	t.Run("invité : mutation locale sans aucun appel réseau", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		s, _ := newTestStore(t, backend)

		added, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)

		require.NoError(t, err)
		assert.True(t, added)
		require.Len(t, s.Wishlist(), 1)
		assert.True(t, s.InWishlist(models.WishlistKey{ProductID: "P1"}))
		assert.Zero(t, networkCalls(backend), "aucun appel réseau en mode invité")
	})

	t.Run("loi d'inversion : deux toggles reviennent à l'état initial", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		s, _ := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})

		added, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		require.NoError(t, err)
		assert.False(t, added)

		assert.Empty(t, s.Wishlist())
		assert.EqualValues(t, 1, backend.addCalls.Load())
		assert.EqualValues(t, 1, backend.removeCalls.Load())
	})

	t.Run("échec réseau : l'état d'avant le toggle est restauré", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			addItem: func(context.Context, string, *string, *string) error {
				return assert.AnError
			},
		}
		s, st := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})

		before := s.Wishlist()
		_, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)

		assert.Error(t, err, "l'échec remonte à l'appelant pour affichage")
		assert.Equal(t, before, s.Wishlist(), "pas d'état optimiste résiduel")

		raw, _ := st.Get(storage.KeyWishlist)
		assert.NotContains(t, raw, `"P1"`, "le miroir est restauré lui aussi")
	})

	t.Run("échec d'un retrait restaure l'entrée retirée", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			removeItem: func(context.Context, string, *string, *string) error {
				return assert.AnError
			},
		}
		s, _ := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})

		_, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		require.NoError(t, err)

		_, err = s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		assert.Error(t, err)
		require.Len(t, s.Wishlist(), 1, "l'entrée est revenue après le rollback")
	})

	t.Run("l'appartenance compare le triplet complet, pas product_id seul", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore(t, &fakeBackend{})
		product := lamp
		model := models.VariantModel{ID: "m1", Name: "Pied long"}
		color := models.VariantColor{ID: "c1", Name: "Noir", Price: 42}

		_, err := s.ToggleWishlist(context.Background(), &product, &model, &color)
		require.NoError(t, err)
		_, err = s.ToggleWishlist(context.Background(), &product, nil, nil)
		require.NoError(t, err)

		// Même produit, variantes différentes : deux entrées distinctes.
		assert.Len(t, s.Wishlist(), 2)
		assert.True(t, s.InWishlist(models.WishlistKey{ProductID: "P1", ModelID: "m1", ColorID: "c1"}))
		assert.True(t, s.InWishlist(models.WishlistKey{ProductID: "P1"}))
		assert.False(t, s.InWishlist(models.WishlistKey{ProductID: "P1", ModelID: "m1"}))
	})

	t.Run("réponse d'un toggle dépassé par un plus récent ignorée", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		backend := &fakeBackend{
			// Le premier toggle (ajout) reste en vol puis échoue ; entre
			// temps un second toggle (retrait) a pris la main sur la clé.
			addItem: func(context.Context, string, *string, *string) error {
				<-release
				return assert.AnError
			},
		}
		s, _ := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})

		done := make(chan error, 1)
		go func() {
			_, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)
			done <- err
		}()

		assert.Eventually(t, func() bool { return len(s.Wishlist()) == 1 }, 2*time.Second, 10*time.Millisecond)

		// Second toggle sur la même clé : retrait, succès immédiat.
		_, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, s.Wishlist())

		// L'échec du premier arrive trop tard : pas de restauration, l'état
		// appartient au toggle le plus récent.
		close(release)
		assert.Error(t, <-done)
		assert.Empty(t, s.Wishlist())
	})
}

func TestWishlistItemFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("prix : couleur choisie prioritaire", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore(t, nil)
		color := models.VariantColor{ID: "c1", Price: 42}
		_, err := s.ToggleWishlist(context.Background(), &lamp, nil, &color)
		require.NoError(t, err)

		require.Len(t, s.Wishlist(), 1)
		assert.Equal(t, 42.0, s.Wishlist()[0].Price)
	})

	t.Run("prix : première couleur du modèle quand la couleur manque", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore(t, nil)
		model := models.VariantModel{
			ID:     "m1",
			Colors: []models.VariantColor{{ID: "c1", Price: 55}, {ID: "c2", Price: 60}},
		}
		_, err := s.ToggleWishlist(context.Background(), &lamp, &model, nil)
		require.NoError(t, err)

		assert.Equal(t, 55.0, s.Wishlist()[0].Price)
	})

	t.Run("prix : produit en dernier recours", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore(t, nil)
		_, err := s.ToggleWishlist(context.Background(), &lamp, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, 35.0, s.Wishlist()[0].Price)
	})

	t.Run("image : produit, puis couleur, puis première image produit", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore(t, nil)

		noImage := models.Product{ID: "P2", Name: "Tabouret", Price: 10, Images: []string{"fallback.jpg"}}
		color := models.VariantColor{ID: "c1", Images: []string{"color.jpg"}}

		_, err := s.ToggleWishlist(context.Background(), &noImage, nil, &color)
		require.NoError(t, err)
		assert.Equal(t, "color.jpg", s.Wishlist()[0].Image)

		_, err = s.ToggleWishlist(context.Background(), &noImage, nil, nil)
		require.NoError(t, err)
		// Seconde entrée (sans variante) : première image du produit.
		assert.Equal(t, "fallback.jpg", s.Wishlist()[1].Image)

		withImage := lamp
		_, err = s.ToggleWishlist(context.Background(), &withImage, nil, &color)
		require.NoError(t, err)
		assert.Equal(t, "lamp.jpg", s.Wishlist()[2].Image)
	})
}

func TestReplaceWishlist(t *testing.T) {
	t.Parallel()

	s, st := newTestStore(t, nil)
	modelID := "m1"
	items := []models.WishlistItem{
		{ProductID: "P1", ModelID: &modelID, Name: "Lampe", Price: 35, Category: "luminaires"},
		{ProductID: "P2", Name: "Tabouret", Price: 10},
	}

	s.ReplaceWishlist(items)

	assert.Equal(t, items, s.Wishlist())
	raw, ok := st.Get(storage.KeyWishlist)
	require.True(t, ok)
	assert.Contains(t, raw, `"P2"`)
}

func TestRefreshWishlistFromServer(t *testing.T) {
	t.Parallel()

	t.Run("remplace la liste locale par la version serveur", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			fetchList: func(context.Context) ([]models.WishlistItem, error) {
				return []models.WishlistItem{{ProductID: "SRV", Name: "Étagère", Price: 75}}, nil
			},
		}
		s, _ := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})

		require.NoError(t, s.RefreshWishlistFromServer(context.Background()))

		list := s.Wishlist()
		require.Len(t, list, 1)
		assert.Equal(t, "SRV", list[0].ProductID)
	})

	t.Run("échec réseau laisse la liste locale intacte", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			fetchList: func(context.Context) ([]models.WishlistItem, error) {
				return nil, assert.AnError
			},
		}
		s, _ := newTestStore(t, backend)
		s.Login("tok", &models.User{ID: "u1"})
		s.ReplaceWishlist([]models.WishlistItem{{ProductID: "KEEP"}})

		assert.Error(t, s.RefreshWishlistFromServer(context.Background()))
		require.Len(t, s.Wishlist(), 1)
		assert.Equal(t, "KEEP", s.Wishlist()[0].ProductID)
	})
}
